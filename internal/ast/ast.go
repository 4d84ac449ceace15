// Package ast defines the abstract syntax tree produced by the parser
// and walked by the runtime.
package ast

import (
	"strconv"
	"strings"

	"github.com/go-jswalk/jswalk/pkg/token"
)

// Node is the base interface every AST node implements.
type Node interface {
	// Line returns the 1-based source line the node's leading token
	// was emitted on, for error reporting.
	Line() int
	// String returns a debug representation of the node, built up
	// recursively from its children. It is used for the AST dump, not
	// for re-parseable source output.
	String() string
}

// Expression is any node that produces a RuntimeValue when evaluated.
type Expression interface {
	Node
	expressionNode()
}

// Statement is any node that performs an action without itself
// producing a value.
type Statement interface {
	Node
	statementNode()
}

// Program is the root of the AST: an ordered list of top-level statements.
type Program struct {
	Statements []Statement
}

func (p *Program) String() string {
	var parts []string
	for _, s := range p.Statements {
		parts = append(parts, s.String())
	}
	return strings.Join(parts, "\n")
}

// --- Expressions ---

// LiteralExpr wraps a literal value: a number, string, boolean, null, or
// undefined.
type LiteralExpr struct {
	Pos   token.Position
	Value token.LiteralValue
}

func (e *LiteralExpr) expressionNode() {}
func (e *LiteralExpr) Line() int       { return e.Pos.Line }
func (e *LiteralExpr) String() string  { return e.Value.String() }

// IdentifierExpr names a variable or parameter reference.
type IdentifierExpr struct {
	Pos  token.Position
	Name string
}

func (e *IdentifierExpr) expressionNode() {}
func (e *IdentifierExpr) Line() int       { return e.Pos.Line }
func (e *IdentifierExpr) String() string  { return "Identifier(" + strconv.Quote(e.Name) + ")" }

// GroupingExpr preserves a parenthesized sub-expression rather than
// eliding it, so a printer can round-trip the source's grouping.
type GroupingExpr struct {
	Pos   token.Position
	Inner Expression
}

func (e *GroupingExpr) expressionNode() {}
func (e *GroupingExpr) Line() int       { return e.Pos.Line }
func (e *GroupingExpr) String() string  { return "(" + e.Inner.String() + ")" }

// UnaryExpr is a prefix operator applied to a single operand. Op is
// always token.Minus in this language.
type UnaryExpr struct {
	Pos   token.Position
	Op    token.Kind
	Right Expression
}

func (e *UnaryExpr) expressionNode() {}
func (e *UnaryExpr) Line() int       { return e.Pos.Line }
func (e *UnaryExpr) String() string  { return "(" + e.Op.String() + e.Right.String() + ")" }

// BinaryExpr is an arithmetic operation: Op is one of Plus, Minus, Star,
// Slash.
type BinaryExpr struct {
	Pos   token.Position
	Left  Expression
	Op    token.Kind
	Right Expression
}

func (e *BinaryExpr) expressionNode() {}
func (e *BinaryExpr) Line() int       { return e.Pos.Line }
func (e *BinaryExpr) String() string {
	return "(" + e.Left.String() + " " + e.Op.String() + " " + e.Right.String() + ")"
}

// ComparisonExpr is one of the eight comparison operators.
type ComparisonExpr struct {
	Pos   token.Position
	Left  Expression
	Op    token.Kind
	Right Expression
}

func (e *ComparisonExpr) expressionNode() {}
func (e *ComparisonExpr) Line() int       { return e.Pos.Line }
func (e *ComparisonExpr) String() string {
	return "(" + e.Left.String() + " " + e.Op.String() + " " + e.Right.String() + ")"
}

// CallExpr invokes a user-defined function by name. Callee is always a
// bare identifier; indirect/computed callees are not part of this
// language.
type CallExpr struct {
	Pos    token.Position
	Callee string
	Args   []Expression
}

func (e *CallExpr) expressionNode() {}
func (e *CallExpr) Line() int       { return e.Pos.Line }
func (e *CallExpr) String() string {
	var args []string
	for _, a := range e.Args {
		args = append(args, a.String())
	}
	return "Call(" + e.Callee + ", [" + strings.Join(args, ", ") + "])"
}

// --- Statements ---

// ExpressionStatement is an expression evaluated for its side effects
// and printed value.
type ExpressionStatement struct {
	Pos  token.Position
	Expr Expression
}

func (s *ExpressionStatement) statementNode() {}
func (s *ExpressionStatement) Line() int      { return s.Pos.Line }
func (s *ExpressionStatement) String() string { return s.Expr.String() + ";" }

// Declaration is a `let` or `const` binding. Value is nil when the
// source omits an initializer.
type Declaration struct {
	Pos     token.Position
	IsConst bool
	Name    string
	Value   Expression
}

func (s *Declaration) statementNode() {}
func (s *Declaration) Line() int      { return s.Pos.Line }
func (s *Declaration) String() string {
	keyword := "let"
	if s.IsConst {
		keyword = "const"
	}
	if s.Value == nil {
		return keyword + " " + s.Name + ";"
	}
	return keyword + " " + s.Name + " = " + s.Value.String() + ";"
}

// FunctionDeclaration binds params to body under Name. The parser
// guarantees Body is non-empty and its last statement is a Return.
type FunctionDeclaration struct {
	Pos    token.Position
	Name   string
	Params []string
	Body   []Statement
}

func (s *FunctionDeclaration) statementNode() {}
func (s *FunctionDeclaration) Line() int      { return s.Pos.Line }
func (s *FunctionDeclaration) String() string {
	var body []string
	for _, stmt := range s.Body {
		body = append(body, stmt.String())
	}
	return "function " + s.Name + "(" + strings.Join(s.Params, ", ") + ") { " + strings.Join(body, " ") + " }"
}

// ReturnStatement carries the expression to evaluate as the enclosing
// call's result. The parser normalizes a bare `return;` to
// Expr == &LiteralExpr{Value: token.Undefined()}.
type ReturnStatement struct {
	Pos  token.Position
	Expr Expression
}

func (s *ReturnStatement) statementNode() {}
func (s *ReturnStatement) Line() int      { return s.Pos.Line }
func (s *ReturnStatement) String() string { return "return " + s.Expr.String() + ";" }

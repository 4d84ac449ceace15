// Package interp walks the AST produced by internal/parser against a
// mutable Environment, printing per-statement results the way the
// driver's stdout contract requires.
package interp

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-jswalk/jswalk/internal/ast"
	"github.com/go-jswalk/jswalk/pkg/token"
)

// Interpreter evaluates a parsed program against a single top-level
// Environment, writing its "runtime>:" output lines as it goes.
type Interpreter struct {
	out io.Writer
	env *Environment
}

// New creates an Interpreter that writes its output to out.
func New(out io.Writer) *Interpreter {
	return &Interpreter{out: out, env: NewEnvironment()}
}

func (in *Interpreter) printf(format string, args ...interface{}) {
	fmt.Fprintf(in.out, format, args...)
	fmt.Fprintln(in.out)
}

// Run executes every top-level statement in source order. A runtime
// error aborts only the statement it occurred in: it is printed and
// execution continues with the next statement. Run itself never
// returns an error; §6's exit-code contract is 0 regardless of
// in-statement runtime errors.
func (in *Interpreter) Run(program *ast.Program) {
	for _, stmt := range program.Statements {
		if _, err := in.execStatement(stmt, in.env, false); err != nil {
			in.printf("runtime>: %s", err.Error())
		}
	}
}

// execStatement executes a single statement. When inFunction is true
// and stmt is a ReturnStatement, it evaluates the return expression and
// reports it via the returned *token.LiteralValue instead of executing
// further; outside a function, a ReturnStatement is a
// ReturnOutsideFunction error.
func (in *Interpreter) execStatement(stmt ast.Statement, env *Environment, inFunction bool) (*token.LiteralValue, error) {
	switch s := stmt.(type) {
	case *ast.Declaration:
		return nil, in.execDeclaration(s, env)
	case *ast.FunctionDeclaration:
		return nil, in.execFunctionDeclaration(s, env)
	case *ast.ExpressionStatement:
		value, err := in.eval(s.Expr, env)
		if err != nil {
			return nil, err
		}
		in.printf("runtime>: %s", value.String())
		return nil, nil
	case *ast.ReturnStatement:
		if !inFunction {
			return nil, newError(ReturnOutsideFunction, s.Line(), "return statement outside of a function")
		}
		value, err := in.eval(s.Expr, env)
		if err != nil {
			return nil, err
		}
		return &value, nil
	default:
		panic(fmt.Sprintf("interp: unhandled statement type %T", stmt))
	}
}

func (in *Interpreter) execDeclaration(s *ast.Declaration, env *Environment) error {
	if env.IsDeclared(s.Name) {
		return newErrorf(AlreadyDeclared, s.Line(), "%q is already declared", s.Name)
	}

	value := token.Undefined()
	if s.Value != nil {
		v, err := in.eval(s.Value, env)
		if err != nil {
			return err
		}
		value = v
	}

	env.DeclareVariable(s.Name, value, s.IsConst)
	in.printf("runtime>: created %q = %s", s.Name, value.String())
	return nil
}

func (in *Interpreter) execFunctionDeclaration(s *ast.FunctionDeclaration, env *Environment) error {
	if _, ok := env.GetVariable(s.Name); ok {
		return newErrorf(AlreadyDeclared, s.Line(), "%q is already declared as a variable", s.Name)
	}

	env.DefineFunction(&FunctionDef{Name: s.Name, Params: s.Params, Body: s.Body})
	in.printf("runtime>: created %q(%s)", s.Name, strings.Join(s.Params, ", "))
	return nil
}

// eval evaluates an expression to a RuntimeValue, represented by the
// same token.LiteralValue tagged union the tokenizer produces.
func (in *Interpreter) eval(expr ast.Expression, env *Environment) (token.LiteralValue, error) {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		return e.Value, nil
	case *ast.IdentifierExpr:
		if v, ok := env.GetVariable(e.Name); ok {
			return v, nil
		}
		return token.Undefined(), nil
	case *ast.GroupingExpr:
		return in.eval(e.Inner, env)
	case *ast.UnaryExpr:
		return in.evalUnary(e, env)
	case *ast.BinaryExpr:
		return in.evalBinary(e, env)
	case *ast.ComparisonExpr:
		return in.evalComparison(e, env)
	case *ast.CallExpr:
		return in.evalCall(e, env)
	default:
		panic(fmt.Sprintf("interp: unhandled expression type %T", expr))
	}
}

func (in *Interpreter) evalUnary(e *ast.UnaryExpr, env *Environment) (token.LiteralValue, error) {
	right, err := in.eval(e.Right, env)
	if err != nil {
		return token.Undefined(), err
	}
	if right.Kind != token.NumberValue {
		return token.Undefined(), newErrorf(BadUnary, e.Line(), "cannot apply unary - to %s", right.String())
	}
	return token.Number(-right.Num), nil
}

func (in *Interpreter) evalBinary(e *ast.BinaryExpr, env *Environment) (token.LiteralValue, error) {
	left, err := in.eval(e.Left, env)
	if err != nil {
		return token.Undefined(), err
	}
	right, err := in.eval(e.Right, env)
	if err != nil {
		return token.Undefined(), err
	}
	if left.Kind != token.NumberValue || right.Kind != token.NumberValue {
		return token.Undefined(), newErrorf(BadBinary, e.Line(), "cannot apply %s to %s and %s", e.Op, left.String(), right.String())
	}

	switch e.Op {
	case token.Plus:
		return token.Number(left.Num + right.Num), nil
	case token.Minus:
		return token.Number(left.Num - right.Num), nil
	case token.Star:
		return token.Number(left.Num * right.Num), nil
	case token.Slash:
		return token.Number(left.Num / right.Num), nil
	default:
		return token.Undefined(), newErrorf(BadBinary, e.Line(), "unsupported binary operator %s", e.Op)
	}
}

func (in *Interpreter) evalComparison(e *ast.ComparisonExpr, env *Environment) (token.LiteralValue, error) {
	left, err := in.eval(e.Left, env)
	if err != nil {
		return token.Undefined(), err
	}
	right, err := in.eval(e.Right, env)
	if err != nil {
		return token.Undefined(), err
	}

	result, err := compare(left, right, e.Op, e.Line())
	if err != nil {
		return token.Undefined(), err
	}
	return token.Boolean(result), nil
}

func (in *Interpreter) evalCall(e *ast.CallExpr, env *Environment) (token.LiteralValue, error) {
	def, ok := env.GetFunction(e.Callee)
	if !ok {
		return token.Undefined(), newErrorf(UndefinedFunction, e.Line(), "function %q is not defined", e.Callee)
	}

	args := make([]token.LiteralValue, len(e.Args))
	for i, argExpr := range e.Args {
		v, err := in.eval(argExpr, env)
		if err != nil {
			return token.Undefined(), err
		}
		args[i] = v
	}
	in.printf("runtime>: function %q called with %s", e.Callee, joinValues(args))

	callEnv := env.NewCallEnvironment()
	for i, param := range def.Params {
		value := token.Undefined()
		if i < len(args) {
			value = args[i]
		}
		callEnv.DeclareVariable(param, value, false)
	}

	result := token.Undefined()
	for _, stmt := range def.Body {
		returned, err := in.execStatement(stmt, callEnv, true)
		if err != nil {
			return token.Undefined(), err
		}
		if returned != nil {
			result = *returned
			break
		}
	}

	in.printf("runtime>: function %q returned %s", e.Callee, result.String())
	return result, nil
}

func joinValues(values []token.LiteralValue) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.String()
	}
	return strings.Join(parts, ", ")
}

// compare implements the closed-form comparison matrix: operand kinds
// decide which sub-rule applies, then the operator picks the result
// within that rule.
func compare(left, right token.LiteralValue, op token.Kind, line int) (bool, error) {
	switch {
	case left.Kind == right.Kind:
		switch left.Kind {
		case token.NumberValue:
			return compareOrdered(left.Num, right.Num, op), nil
		case token.BooleanValue:
			return compareOrdered(boolRank(left.Bool), boolRank(right.Bool), op), nil
		case token.StringValue:
			return compareStrings(left.Str, right.Str, op), nil
		case token.NullValue:
			return compareNullNull(op), nil
		case token.UndefinedValue:
			return compareUndefinedUndefined(op), nil
		}
	case isNullOrUndefinedPair(left, right):
		return compareNullUndefined(op), nil
	}
	return false, newErrorf(BadComparison, line, "cannot compare %s and %s", left.String(), right.String())
}

func isNullOrUndefinedPair(left, right token.LiteralValue) bool {
	isNullOrUndefined := func(v token.LiteralValue) bool {
		return v.Kind == token.NullValue || v.Kind == token.UndefinedValue
	}
	return isNullOrUndefined(left) && isNullOrUndefined(right) && left.Kind != right.Kind
}

// boolRank lets compareOrdered share its implementation between
// Number and Boolean operands, per the matrix's "false < true" rule.
func boolRank(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func compareOrdered(left, right float64, op token.Kind) bool {
	switch op {
	case token.StrictEqual, token.Equal:
		return left == right
	case token.StrictNotEqual, token.NotEqual:
		return left != right
	case token.LessThan:
		return left < right
	case token.LessThanOrEqual:
		return left <= right
	case token.GreaterThan:
		return left > right
	case token.GreaterThanOrEqual:
		return left >= right
	default:
		return false
	}
}

func compareStrings(left, right string, op token.Kind) bool {
	switch op {
	case token.StrictEqual, token.Equal:
		return left == right
	case token.StrictNotEqual, token.NotEqual:
		return left != right
	case token.LessThan:
		return left < right
	case token.LessThanOrEqual:
		return left <= right
	case token.GreaterThan:
		return left > right
	case token.GreaterThanOrEqual:
		return left >= right
	default:
		return false
	}
}

// compareNullNull follows the matrix's deliberately non-host-faithful
// row: <= and >= are true, < and > are false.
func compareNullNull(op token.Kind) bool {
	switch op {
	case token.StrictEqual, token.Equal, token.LessThanOrEqual, token.GreaterThanOrEqual:
		return true
	default:
		return false
	}
}

// compareUndefinedUndefined: equal under both equality operators, but
// every ordering operator is false (undefined has no ordering).
func compareUndefinedUndefined(op token.Kind) bool {
	switch op {
	case token.StrictEqual, token.Equal:
		return true
	default:
		return false
	}
}

// compareNullUndefined: strictly unequal but loosely equal, matching
// the host language's == coercion between null and undefined; no
// ordering operator holds.
func compareNullUndefined(op token.Kind) bool {
	switch op {
	case token.Equal:
		return true
	case token.NotEqual:
		return false
	case token.StrictEqual:
		return false
	case token.StrictNotEqual:
		return true
	default:
		return false
	}
}

// Package parser implements a recursive-descent, precedence-climbing
// parser over the token stream produced by internal/lexer.
package parser

import (
	"fmt"

	"github.com/go-jswalk/jswalk/internal/ast"
	"github.com/go-jswalk/jswalk/pkg/token"
)

// comparisonOps is the set of token kinds recognized at the comparison
// level of the grammar.
var comparisonOps = map[token.Kind]bool{
	token.Equal:              true,
	token.NotEqual:           true,
	token.StrictEqual:        true,
	token.StrictNotEqual:     true,
	token.GreaterThan:        true,
	token.LessThan:           true,
	token.GreaterThanOrEqual: true,
	token.LessThanOrEqual:    true,
}

// Parser consumes a complete token stream (always Eof-terminated) and
// produces a list of top-level statements. It fails fast: the first
// error encountered aborts parsing.
type Parser struct {
	tokens []token.Token
	pos    int

	// inFunctionBody is non-zero while parsing a function body. Nested
	// function declarations are rejected by parseFunctionBodyStatement;
	// nothing reads this counter.
	inFunctionBody int
}

// New creates a Parser over a complete, Eof-terminated token stream.
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// ParseProgram parses the entire token stream into a *ast.Program, or
// returns the first parse Error encountered.
func ParseProgram(tokens []token.Token) (*ast.Program, error) {
	p := New(tokens)
	return p.Parse()
}

// Parse runs the parser to completion.
func (p *Parser) Parse() (*ast.Program, error) {
	program := &ast.Program{}
	for !p.atEOF() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		program.Statements = append(program.Statements, stmt)
	}
	return program, nil
}

func (p *Parser) cur() token.Token {
	return p.tokens[p.pos]
}

func (p *Parser) atEOF() bool {
	return p.cur().Kind == token.EOF
}

func (p *Parser) advance() token.Token {
	tok := p.cur()
	if tok.Kind != token.EOF {
		p.pos++
	}
	return tok
}

func (p *Parser) check(kind token.Kind) bool {
	return p.cur().Kind == kind
}

// expect advances past the current token if it matches kind, otherwise
// returns an UnexpectedToken error.
func (p *Parser) expect(kind token.Kind, context string) (token.Token, error) {
	if !p.check(kind) {
		return token.Token{}, newError(UnexpectedToken, p.cur().Line(),
			fmt.Sprintf("expected %s %s, got %s", kind, context, p.cur().Kind))
	}
	return p.advance(), nil
}

func (p *Parser) expectSemicolon() error {
	if !p.check(token.Semicolon) {
		return newError(ExpectedSemicolon, p.cur().Line(),
			fmt.Sprintf("expected ';', got %s", p.cur().Kind))
	}
	p.advance()
	return nil
}

// --- Statements ---

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.cur().Kind {
	case token.KeywordLet, token.KeywordConst:
		return p.parseDeclaration()
	case token.Function:
		return p.parseFunctionDeclaration()
	case token.Return:
		return p.parseReturn()
	default:
		return p.parseExpressionStatement()
	}
}

// parseFunctionBodyStatement excludes function_decl, per the grammar's
// fn_body_stmt production.
func (p *Parser) parseFunctionBodyStatement() (ast.Statement, error) {
	switch p.cur().Kind {
	case token.KeywordLet, token.KeywordConst:
		return p.parseDeclaration()
	case token.Function:
		return nil, newError(NestedFunction, p.cur().Line(), "function declarations cannot be nested")
	case token.Return:
		return p.parseReturn()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseDeclaration() (*ast.Declaration, error) {
	kw := p.advance() // KeywordLet or KeywordConst
	name, err := p.expect(token.Identifier, "identifier after let/const")
	if err != nil {
		return nil, err
	}

	decl := &ast.Declaration{Pos: kw.Pos, IsConst: kw.Kind == token.KeywordConst, Name: name.Name}

	if p.check(token.Assign) {
		p.advance()
		value, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		decl.Value = value
	}

	if err := p.expectSemicolon(); err != nil {
		return nil, err
	}
	return decl, nil
}

func (p *Parser) parseFunctionDeclaration() (*ast.FunctionDeclaration, error) {
	kw := p.advance() // Function
	name, err := p.expect(token.Identifier, "function name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LeftParen, "after function name"); err != nil {
		return nil, err
	}

	var params []string
	if !p.check(token.RightParen) {
		for {
			param, err := p.expect(token.Identifier, "parameter name")
			if err != nil {
				return nil, err
			}
			params = append(params, param.Name)
			if !p.check(token.Comma) {
				break
			}
			p.advance()
		}
	}
	if _, err := p.expect(token.RightParen, "to close parameter list"); err != nil {
		return nil, err
	}

	body, err := p.parseFunctionBody()
	if err != nil {
		return nil, err
	}

	return &ast.FunctionDeclaration{Pos: kw.Pos, Name: name.Name, Params: params, Body: body}, nil
}

// parseFunctionBody parses `{ fn_body_stmt* }`, then normalizes it per
// spec.md Invariant 2: if the body has no trailing Return, a synthetic
// Return(Undefined) is appended (an empty body becomes exactly that
// single statement).
func (p *Parser) parseFunctionBody() ([]ast.Statement, error) {
	lbrace, err := p.expect(token.LeftBrace, "to open function body")
	if err != nil {
		return nil, err
	}

	p.inFunctionBody++
	defer func() { p.inFunctionBody-- }()

	var body []ast.Statement
	for !p.check(token.RightBrace) && !p.atEOF() {
		stmt, err := p.parseFunctionBodyStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
	if _, err := p.expect(token.RightBrace, "to close function body"); err != nil {
		return nil, err
	}

	if len(body) == 0 {
		return []ast.Statement{syntheticReturn(lbrace.Pos)}, nil
	}
	if _, ok := body[len(body)-1].(*ast.ReturnStatement); !ok {
		body = append(body, syntheticReturn(lbrace.Pos))
	}
	return body, nil
}

func syntheticReturn(pos token.Position) *ast.ReturnStatement {
	return &ast.ReturnStatement{Pos: pos, Expr: &ast.LiteralExpr{Pos: pos, Value: token.Undefined()}}
}

func (p *Parser) parseReturn() (*ast.ReturnStatement, error) {
	kw := p.advance() // Return

	if p.check(token.Semicolon) {
		p.advance()
		return &ast.ReturnStatement{Pos: kw.Pos, Expr: &ast.LiteralExpr{Pos: kw.Pos, Value: token.Undefined()}}, nil
	}

	expr, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	if err := p.expectSemicolon(); err != nil {
		return nil, err
	}
	return &ast.ReturnStatement{Pos: kw.Pos, Expr: expr}, nil
}

func (p *Parser) parseExpressionStatement() (*ast.ExpressionStatement, error) {
	pos := p.cur().Pos
	expr, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	if err := p.expectSemicolon(); err != nil {
		return nil, err
	}
	return &ast.ExpressionStatement{Pos: pos, Expr: expr}, nil
}

// --- Expressions: comparison < addition < multiplication < unary < primary ---

func (p *Parser) parseComparison() (ast.Expression, error) {
	left, err := p.parseAddition()
	if err != nil {
		return nil, err
	}
	for comparisonOps[p.cur().Kind] {
		op := p.advance()
		right, err := p.parseAddition()
		if err != nil {
			return nil, err
		}
		left = &ast.ComparisonExpr{Pos: op.Pos, Left: left, Op: op.Kind, Right: right}
	}
	return left, nil
}

func (p *Parser) parseAddition() (ast.Expression, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.check(token.Plus) || p.check(token.Minus) {
		op := p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Pos: op.Pos, Left: left, Op: op.Kind, Right: right}
	}
	return left, nil
}

func (p *Parser) parseTerm() (ast.Expression, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.check(token.Star) || p.check(token.Slash) {
		op := p.advance()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Pos: op.Pos, Left: left, Op: op.Kind, Right: right}
	}
	return left, nil
}

func (p *Parser) parseFactor() (ast.Expression, error) {
	switch {
	case p.check(token.Minus):
		op := p.advance()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Pos: op.Pos, Op: op.Kind, Right: right}, nil
	case p.check(token.LeftParen):
		return p.parseGrouping()
	case p.check(token.Identifier):
		return p.parseCallOrIdentifier()
	case p.check(token.Literal):
		lit := p.advance()
		return &ast.LiteralExpr{Pos: lit.Pos, Value: lit.Value}, nil
	default:
		return nil, newError(UnexpectedToken, p.cur().Line(),
			fmt.Sprintf("expected an expression, got %s", p.cur().Kind))
	}
}

func (p *Parser) parseGrouping() (ast.Expression, error) {
	lparen := p.advance() // LeftParen
	inner, err := p.parseAddition()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RightParen, "to close grouping"); err != nil {
		return nil, err
	}
	return &ast.GroupingExpr{Pos: lparen.Pos, Inner: inner}, nil
}

func (p *Parser) parseCallOrIdentifier() (ast.Expression, error) {
	ident := p.advance() // Identifier
	if !p.check(token.LeftParen) {
		return &ast.IdentifierExpr{Pos: ident.Pos, Name: ident.Name}, nil
	}

	p.advance() // LeftParen
	args, err := p.parseArguments()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RightParen, "to close argument list"); err != nil {
		return nil, err
	}
	return &ast.CallExpr{Pos: ident.Pos, Callee: ident.Name, Args: args}, nil
}

// parseArguments parses a comma-separated list of comparison-level
// expressions. A leading comma, a trailing comma, or an empty
// comma-only list is rejected as BadArgumentList; a genuinely empty
// list (no arguments at all) is fine.
func (p *Parser) parseArguments() ([]ast.Expression, error) {
	if p.check(token.RightParen) {
		return nil, nil
	}
	if p.check(token.Comma) {
		return nil, newError(BadArgumentList, p.cur().Line(), "unexpected leading comma in argument list")
	}

	var args []ast.Expression
	for {
		arg, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		if !p.check(token.Comma) {
			break
		}
		p.advance()
		if p.check(token.RightParen) {
			return nil, newError(BadArgumentList, p.cur().Line(), "unexpected trailing comma in argument list")
		}
	}
	return args, nil
}

// Package lexer converts source text into a stream of tokens.
//
// The Lexer is a pure function of its input string aside from the
// *Error it can return: it never mutates anything outside itself and
// never suspends. Callers drive it one token at a time with Next, or
// drain the whole stream with Tokenize.
package lexer

import (
	"strconv"
	"strings"

	"github.com/go-jswalk/jswalk/pkg/token"
)

// Lexer scans a source string into tokens.
type Lexer struct {
	input        string
	position     int // index of ch within input
	readPosition int // index of the next byte to read
	ch           byte
	line         int
}

// New creates a Lexer positioned at the start of input.
func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) atEOF() bool {
	return l.position >= len(l.input)
}

// Tokenize drains the Lexer, returning every token through the
// terminating Eof, or the first tokenizer Error encountered.
func Tokenize(input string) ([]token.Token, error) {
	l := New(input)
	var tokens []token.Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens, nil
		}
	}
}

// Next scans and returns the next token, or an *Error if the source is
// malformed at the current position.
func (l *Lexer) Next() (token.Token, error) {
	if err := l.skipWhitespaceAndComments(); err != nil {
		return token.Token{}, err
	}

	pos := token.Position{Line: l.line}

	if l.atEOF() {
		return token.Token{Kind: token.EOF, Pos: pos}, nil
	}

	if tok, ok := l.readComparisonOperator(pos); ok {
		return tok, nil
	}

	switch c := l.ch; {
	case isSimplePunctuation(c):
		kind := simplePunctuation[c]
		l.readChar()
		return token.Token{Kind: kind, Pos: pos}, nil
	case isDigit(c) || c == '.':
		return l.readNumber(pos)
	case isLetter(c):
		return l.readIdentifierOrKeyword(pos)
	case c == '"' || c == '\'' || c == '`':
		return l.readString(pos)
	default:
		name := string(c)
		l.readChar()
		return token.Token{Kind: token.Unsupported, Pos: pos, Name: name}, nil
	}
}

var simplePunctuation = map[byte]token.Kind{
	'(': token.LeftParen,
	')': token.RightParen,
	'{': token.LeftBrace,
	'}': token.RightBrace,
	'+': token.Plus,
	'-': token.Minus,
	'*': token.Star,
	'/': token.Slash,
	'=': token.Assign,
	',': token.Comma,
	';': token.Semicolon,
}

func isSimplePunctuation(c byte) bool {
	_, ok := simplePunctuation[c]
	return ok
}

// skipWhitespaceAndComments advances past runs of whitespace, line
// comments, and nested block comments. It loops because a comment can
// be immediately followed by more whitespace or another comment.
func (l *Lexer) skipWhitespaceAndComments() error {
	for {
		switch {
		case isWhitespace(l.ch):
			if l.ch == '\n' {
				l.line++
			}
			l.readChar()
		case l.ch == '/' && l.peekChar() == '/':
			l.skipLineComment()
		case l.ch == '/' && l.peekChar() == '*':
			if err := l.skipBlockComment(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func (l *Lexer) skipLineComment() {
	for !l.atEOF() && l.ch != '\n' {
		l.readChar()
	}
}

// skipBlockComment consumes a /* ... */ comment, honoring nesting:
// every interior /* increments depth, every */ decrements it, and the
// comment ends only when depth returns to zero.
func (l *Lexer) skipBlockComment() error {
	startLine := l.line
	l.readChar() // consume '/'
	l.readChar() // consume '*'
	depth := 1

	for depth > 0 {
		if l.atEOF() {
			return newError(UnterminatedComment, startLine, "unterminated block comment")
		}
		switch {
		case l.ch == '/' && l.peekChar() == '*':
			l.readChar()
			l.readChar()
			depth++
		case l.ch == '*' && l.peekChar() == '/':
			l.readChar()
			l.readChar()
			depth--
		default:
			if l.ch == '\n' {
				l.line++
			}
			l.readChar()
		}
	}
	return nil
}

// readComparisonOperator implements maximal-munch scanning of the eight
// comparison operators before the single-character dispatch table runs.
func (l *Lexer) readComparisonOperator(pos token.Position) (token.Token, bool) {
	switch l.ch {
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			if l.ch == '=' {
				l.readChar()
				return token.Token{Kind: token.StrictEqual, Pos: pos}, true
			}
			return token.Token{Kind: token.Equal, Pos: pos}, true
		}
		return token.Token{}, false
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			if l.ch == '=' {
				l.readChar()
				return token.Token{Kind: token.StrictNotEqual, Pos: pos}, true
			}
			return token.Token{Kind: token.NotEqual, Pos: pos}, true
		}
		return token.Token{}, false
	case '>':
		l.readChar()
		if l.ch == '=' {
			l.readChar()
			return token.Token{Kind: token.GreaterThanOrEqual, Pos: pos}, true
		}
		return token.Token{Kind: token.GreaterThan, Pos: pos}, true
	case '<':
		l.readChar()
		if l.ch == '=' {
			l.readChar()
			return token.Token{Kind: token.LessThanOrEqual, Pos: pos}, true
		}
		return token.Token{Kind: token.LessThan, Pos: pos}, true
	default:
		return token.Token{}, false
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isLetter(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlnum(c byte) bool { return isLetter(c) || isDigit(c) }

// readNumber consumes digits, an optional single '.', and more digits.
// A trailing '.' with nothing after it is dropped from the literal text
// before parsing, per spec.md's "123." -> Number(123) rule.
func (l *Lexer) readNumber(pos token.Position) (token.Token, error) {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	text := l.input[start:l.position]
	text = strings.TrimSuffix(text, ".")

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return token.Token{}, newError(BadNumber, pos.Line, "malformed number literal: "+l.input[start:l.position])
	}
	return token.Token{Kind: token.Literal, Pos: pos, Value: token.Number(value)}, nil
}

func (l *Lexer) readIdentifierOrKeyword(pos token.Position) (token.Token, error) {
	start := l.position
	for isAlnum(l.ch) {
		l.readChar()
	}
	text := l.input[start:l.position]

	kind, value, isIdentifier := token.LookupIdentifier(text)
	if isIdentifier {
		return token.Token{Kind: token.Identifier, Pos: pos, Name: text}, nil
	}
	return token.Token{Kind: kind, Pos: pos, Value: value}, nil
}

// readString consumes a quoted string. The opening quote character
// (", ', or `) must match the closing quote; there is no escape
// processing, matching spec.md's "copy characters up to the matching
// closing quote" rule.
func (l *Lexer) readString(pos token.Position) (token.Token, error) {
	quote := l.ch
	l.readChar()
	start := l.position

	for !l.atEOF() && l.ch != quote {
		if l.ch == '\n' {
			l.line++
		}
		l.readChar()
	}

	if l.atEOF() {
		return token.Token{}, newError(UnterminatedString, pos.Line, "unterminated string literal")
	}

	text := l.input[start:l.position]
	l.readChar() // consume closing quote
	return token.Token{Kind: token.Literal, Pos: pos, Value: token.String(text)}, nil
}

// Package token defines the token kinds and literal values produced by
// the lexer and consumed by the parser.
package token

import (
	"fmt"
	"strconv"
)

// Kind identifies the category of a Token. Kinds are grouped below in
// the same order spec.md lists them: punctuation, comparison, keywords,
// payload-carrying kinds, and the end-of-file sentinel.
type Kind int

const (
	LeftParen  Kind = iota // (
	RightParen             // )
	LeftBrace              // {
	RightBrace             // }
	Plus                   // +
	Minus                  // -
	Star                   // *
	Slash                  // /
	Assign                 // =
	Comma                  // ,
	Semicolon              // ;

	Equal              // ==
	NotEqual           // !=
	StrictEqual        // ===
	StrictNotEqual     // !==
	GreaterThan        // >
	LessThan           // <
	GreaterThanOrEqual // >=
	LessThanOrEqual    // <=

	KeywordLet
	KeywordConst
	Function
	Return

	Literal     // carries a LiteralValue (see Value)
	Identifier  // carries a name (see Name)
	Unsupported // carries the raw character (see Name)

	EOF
)

var kindNames = map[Kind]string{
	LeftParen:           "LeftParen",
	RightParen:          "RightParen",
	LeftBrace:           "LeftBrace",
	RightBrace:          "RightBrace",
	Plus:                "Plus",
	Minus:               "Minus",
	Star:                "Star",
	Slash:               "Slash",
	Assign:              "Assign",
	Comma:               "Comma",
	Semicolon:           "Semicolon",
	Equal:               "Equal",
	NotEqual:            "NotEqual",
	StrictEqual:         "StrictEqual",
	StrictNotEqual:      "StrictNotEqual",
	GreaterThan:         "GreaterThan",
	LessThan:            "LessThan",
	GreaterThanOrEqual:  "GreaterThanOrEqual",
	LessThanOrEqual:     "LessThanOrEqual",
	KeywordLet:          "KeywordLet",
	KeywordConst:        "KeywordConst",
	Function:            "Function",
	Return:              "Return",
	Literal:             "Literal",
	Identifier:          "Identifier",
	Unsupported:         "Unsupported",
	EOF:                 "Eof",
}

// String returns the bare kind name, e.g. "Plus" or "Literal".
// It does not include any carried payload; use Token.String for that.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsComparison reports whether k is one of the eight comparison operators.
func (k Kind) IsComparison() bool {
	switch k {
	case Equal, NotEqual, StrictEqual, StrictNotEqual,
		GreaterThan, LessThan, GreaterThanOrEqual, LessThanOrEqual:
		return true
	}
	return false
}

// ValueKind discriminates the case of a LiteralValue.
type ValueKind int

const (
	NumberValue ValueKind = iota
	StringValue
	BooleanValue
	NullValue
	UndefinedValue
)

// LiteralValue is the tagged union carried by Literal tokens (and, later,
// by RuntimeValue): a Number, a String, a Boolean, Null, or Undefined.
// Only the field matching Kind is meaningful.
type LiteralValue struct {
	Kind ValueKind
	Num  float64
	Str  string
	Bool bool
}

func Number(n float64) LiteralValue    { return LiteralValue{Kind: NumberValue, Num: n} }
func String(s string) LiteralValue     { return LiteralValue{Kind: StringValue, Str: s} }
func Boolean(b bool) LiteralValue      { return LiteralValue{Kind: BooleanValue, Bool: b} }
func Null() LiteralValue               { return LiteralValue{Kind: NullValue} }
func Undefined() LiteralValue          { return LiteralValue{Kind: UndefinedValue} }

// String renders the literal the way a debug formatter would, e.g.
// `Number(5.0)`, `String("hi")`, `Boolean(true)`, `Null`, `Undefined`.
func (v LiteralValue) String() string {
	switch v.Kind {
	case NumberValue:
		return fmt.Sprintf("Number(%s)", formatNumber(v.Num))
	case StringValue:
		return fmt.Sprintf("String(%q)", v.Str)
	case BooleanValue:
		return fmt.Sprintf("Boolean(%t)", v.Bool)
	case NullValue:
		return "Null"
	case UndefinedValue:
		return "Undefined"
	default:
		return "Undefined"
	}
}

// formatNumber mimics how a freshly-tokenized or freshly-computed double
// is displayed: always with at least one fractional digit, the way the
// host language's debug formatter would (51 -> "51.0", 1.5 -> "1.5").
func formatNumber(n float64) string {
	s := strconv.FormatFloat(n, 'f', -1, 64)
	for _, c := range s {
		switch c {
		case '.', 'n', 'N': // nN covers NaN/Inf
			return s
		}
	}
	return s + ".0"
}

// Position locates a token in the source text by its 1-based Line. The
// lexer does not fill in Column; it stays 0.
type Position struct {
	Line   int
	Column int
}

// Token is an immutable value: a Kind, a source Position, and whichever
// payload that Kind carries.
type Token struct {
	Kind Kind
	Pos  Position

	Value LiteralValue // populated when Kind == Literal
	Name  string        // populated when Kind == Identifier or Unsupported
}

// Line returns the 1-based source line the token was emitted on.
func (t Token) Line() int { return t.Pos.Line }

// String renders a token the way the interpreter's token dump does:
// `Token { kind: <debug>, line: <n>}`.
func (t Token) String() string {
	return fmt.Sprintf("Token { kind: %s, line: %d}", t.debugKind(), t.Pos.Line)
}

// debugKind renders the payload-aware debug form of the token's kind,
// e.g. `Literal(Number(5.0))`, `Identifier("x")`, `Unsupported("@")`.
func (t Token) debugKind() string {
	switch t.Kind {
	case Literal:
		return fmt.Sprintf("Literal(%s)", t.Value.String())
	case Identifier:
		return fmt.Sprintf("Identifier(%q)", t.Name)
	case Unsupported:
		return fmt.Sprintf("Unsupported(%q)", t.Name)
	default:
		return t.Kind.String()
	}
}

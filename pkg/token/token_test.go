package token

import "testing"

func TestLiteralValueString(t *testing.T) {
	tests := []struct {
		name string
		v    LiteralValue
		want string
	}{
		{"number with fraction", Number(1.5), "Number(1.5)"},
		{"whole number gets trailing .0", Number(51), "Number(51.0)"},
		{"string", String("hi"), `String("hi")`},
		{"true", Boolean(true), "Boolean(true)"},
		{"false", Boolean(false), "Boolean(false)"},
		{"null", Null(), "Null"},
		{"undefined", Undefined(), "Undefined"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		name string
		tok  Token
		want string
	}{
		{
			name: "literal",
			tok:  Token{Kind: Literal, Pos: Position{Line: 3}, Value: Number(5)},
			want: `Token { kind: Literal(Number(5.0)), line: 3}`,
		},
		{
			name: "identifier",
			tok:  Token{Kind: Identifier, Pos: Position{Line: 1}, Name: "x"},
			want: `Token { kind: Identifier("x"), line: 1}`,
		},
		{
			name: "unsupported",
			tok:  Token{Kind: Unsupported, Pos: Position{Line: 7}, Name: "@"},
			want: `Token { kind: Unsupported("@"), line: 7}`,
		},
		{
			name: "eof",
			tok:  Token{Kind: EOF, Pos: Position{Line: 9}},
			want: `Token { kind: Eof, line: 9}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tok.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLookupIdentifier(t *testing.T) {
	tests := []struct {
		text           string
		wantKind       Kind
		wantValue      LiteralValue
		wantIdentifier bool
	}{
		{"let", KeywordLet, LiteralValue{}, false},
		{"const", KeywordConst, LiteralValue{}, false},
		{"function", Function, LiteralValue{}, false},
		{"return", Return, LiteralValue{}, false},
		{"true", Literal, Boolean(true), false},
		{"false", Literal, Boolean(false), false},
		{"null", Literal, Null(), false},
		{"undefined", Literal, Undefined(), false},
		{"foo", Identifier, LiteralValue{}, true},
		{"_bar", Identifier, LiteralValue{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			kind, value, isIdentifier := LookupIdentifier(tt.text)
			if kind != tt.wantKind || isIdentifier != tt.wantIdentifier {
				t.Fatalf("LookupIdentifier(%q) = (%v, %v), want (%v, %v)",
					tt.text, kind, isIdentifier, tt.wantKind, tt.wantIdentifier)
			}
			if !isIdentifier && value != tt.wantValue {
				t.Errorf("LookupIdentifier(%q) value = %v, want %v", tt.text, value, tt.wantValue)
			}
		})
	}
}

func TestIsComparison(t *testing.T) {
	comparisons := []Kind{Equal, NotEqual, StrictEqual, StrictNotEqual, GreaterThan, LessThan, GreaterThanOrEqual, LessThanOrEqual}
	for _, k := range comparisons {
		if !k.IsComparison() {
			t.Errorf("%s.IsComparison() = false, want true", k)
		}
	}
	nonComparisons := []Kind{Plus, Minus, Assign, Identifier, EOF}
	for _, k := range nonComparisons {
		if k.IsComparison() {
			t.Errorf("%s.IsComparison() = true, want false", k)
		}
	}
}

package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-jswalk/jswalk/internal/lexer"
	"github.com/go-jswalk/jswalk/internal/parser"
)

// runSource tokenizes, parses, and interprets src, returning every
// "runtime>:" line the run produced, in order.
func runSource(t *testing.T, src string) []string {
	t.Helper()
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		t.Fatalf("Tokenize(%q) error: %v", src, err)
	}
	program, err := parser.ParseProgram(tokens)
	if err != nil {
		t.Fatalf("ParseProgram(%q) error: %v", src, err)
	}

	var buf bytes.Buffer
	New(&buf).Run(program)

	var lines []string
	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func lastLine(t *testing.T, src string) string {
	t.Helper()
	lines := runSource(t, src)
	if len(lines) == 0 {
		t.Fatalf("runSource(%q) produced no output", src)
	}
	return lines[len(lines)-1]
}

func TestArithmeticPrecedenceAndGrouping(t *testing.T) {
	got := lastLine(t, "1 + 5 * (1 + 9);")
	want := "runtime>: Number(51.0)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestConstAndLetDeclarations(t *testing.T) {
	got := lastLine(t, `const x = 5; let y = x; y;`)
	want := "runtime>: Number(5.0)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFunctionCallReturnsSum(t *testing.T) {
	got := lastLine(t, `function add(x, y) { return x + y; } add(2, 3);`)
	want := `runtime>: function "add" returned Number(5.0)`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmptyFunctionBodyReturnsUndefined(t *testing.T) {
	got := lastLine(t, `function noop() {} noop();`)
	want := "runtime>: Undefined"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNullUndefinedEquality(t *testing.T) {
	if got := lastLine(t, "null == undefined;"); got != "runtime>: Boolean(true)" {
		t.Errorf("null == undefined: got %q", got)
	}
	if got := lastLine(t, "null === undefined;"); got != "runtime>: Boolean(false)" {
		t.Errorf("null === undefined: got %q", got)
	}
}

func TestStringComparisonAndBadBinary(t *testing.T) {
	if got := lastLine(t, `"a" < "b";`); got != "runtime>: Boolean(true)" {
		t.Errorf(`"a" < "b": got %q`, got)
	}

	lines := runSource(t, `"a" + 1;`)
	if len(lines) != 1 || !strings.HasPrefix(lines[0], "runtime>: ") {
		t.Fatalf(`"a" + 1: got %v`, lines)
	}
}

func TestRuntimeErrorAbortsOnlyItsStatement(t *testing.T) {
	lines := runSource(t, `"a" + 1; 2 + 3;`)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %v", len(lines), lines)
	}
	if lines[1] != "runtime>: Number(5.0)" {
		t.Errorf("second statement result = %q, want Number(5.0)", lines[1])
	}
}

func TestFunctionsDoNotCloseOverGlobals(t *testing.T) {
	got := lastLine(t, `let x = 10; function f() { return x; } f();`)
	want := "runtime>: Undefined"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFunctionsCanCallSiblingFunctions(t *testing.T) {
	src := `
		function double(n) { return n * 2; }
		function quad(n) { return double(double(n)); }
		quad(3);
	`
	got := lastLine(t, src)
	want := `runtime>: function "quad" returned Number(12.0)`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMissingArgumentBecomesUndefined(t *testing.T) {
	got := lastLine(t, `function f(a, b) { return b; } f(1);`)
	want := "runtime>: Undefined"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestExcessArgumentsDiscarded(t *testing.T) {
	got := lastLine(t, `function f(a) { return a; } f(1, 2, 3);`)
	want := `runtime>: function "f" returned Number(1.0)`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestUndefinedIdentifierResolvesToUndefined(t *testing.T) {
	got := lastLine(t, "neverDeclared;")
	want := "runtime>: Undefined"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRedeclarationIsRuntimeError(t *testing.T) {
	lines := runSource(t, "let x = 1; let x = 2;")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %v", len(lines), lines)
	}
	if !strings.HasPrefix(lines[1], "runtime>: ") || !strings.Contains(lines[1], "already declared") {
		t.Errorf("second line = %q, want an AlreadyDeclared message", lines[1])
	}
}

func TestCallingUndeclaredFunctionIsRuntimeError(t *testing.T) {
	lines := runSource(t, "ghost();")
	if len(lines) != 1 || !strings.Contains(lines[0], "not defined") {
		t.Errorf("got %v, want a single UndefinedFunction message", lines)
	}
}

func TestReturnOutsideFunctionIsRuntimeError(t *testing.T) {
	lines := runSource(t, "return 1;")
	if len(lines) != 1 || !strings.Contains(lines[0], "outside") {
		t.Errorf("got %v, want a single ReturnOutsideFunction message", lines)
	}
}

func TestUnaryMinusOnNonNumberIsRuntimeError(t *testing.T) {
	lines := runSource(t, `-"a";`)
	if len(lines) != 1 || !strings.HasPrefix(lines[0], "runtime>: ") {
		t.Fatalf("got %v", lines)
	}
}

package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-jswalk/jswalk/internal/errors"
	"github.com/go-jswalk/jswalk/internal/interp"
	"github.com/go-jswalk/jswalk/internal/lexer"
	"github.com/go-jswalk/jswalk/internal/parser"
)

// run drives the full pipeline for a single file: the extension gate,
// the banner-plus-source dump, the token dump, the AST dump, and
// finally interpretation. A lexer or parser failure aborts the run
// with a non-zero exit; a runtime failure is printed and the run
// still exits 0, per the output contract.
func run(out io.Writer, path string) error {
	if ext := filepath.Ext(path); ext != ".js" {
		return fmt.Errorf("jswalk: %q must have a .js extension, got %q", path, ext)
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("jswalk: %w", err)
	}
	src := string(source)

	fmt.Fprintln(out, "--- Source Provided ---")
	fmt.Fprint(out, src)
	if !strings.HasSuffix(src, "\n") {
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out, "-----------------------")
	fmt.Fprintln(out)

	tokens, err := lexer.Tokenize(src)
	if err != nil {
		lexErr := err.(*lexer.Error)
		diag := errors.NewDiagnostic(lexErr.Line, lexErr.Error(), src, path)
		return fmt.Errorf("%s", diag.Format(false))
	}
	for _, tok := range tokens {
		fmt.Fprintln(out, tok.String())
	}

	program, err := parser.ParseProgram(tokens)
	if err != nil {
		parseErr := err.(*parser.Error)
		diag := errors.NewDiagnostic(parseErr.Line, parseErr.Error(), src, path)
		return fmt.Errorf("%s", diag.Format(false))
	}
	fmt.Fprintln(out, program.String())

	interp.New(out).Run(program)
	return nil
}

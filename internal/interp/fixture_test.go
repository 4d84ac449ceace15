package interp

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/go-jswalk/jswalk/internal/lexer"
	"github.com/go-jswalk/jswalk/internal/parser"
)

// TestFixtures runs every .js file under testdata/ through the full
// tokenizer/parser/runtime pipeline and snapshots the runtime's
// printed output with go-snaps.
func TestFixtures(t *testing.T) {
	files, err := filepath.Glob("testdata/*.js")
	if err != nil {
		t.Fatalf("failed to list testdata fixtures: %v", err)
	}
	if len(files) == 0 {
		t.Fatal("no fixtures found under testdata/")
	}

	for _, path := range files {
		name := filepath.Base(path)
		t.Run(name, func(t *testing.T) {
			source, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("ReadFile(%s): %v", path, err)
			}

			tokens, err := lexer.Tokenize(string(source))
			if err != nil {
				t.Fatalf("Tokenize(%s): %v", name, err)
			}
			program, err := parser.ParseProgram(tokens)
			if err != nil {
				t.Fatalf("ParseProgram(%s): %v", name, err)
			}

			var buf bytes.Buffer
			New(&buf).Run(program)

			snaps.MatchSnapshot(t, name, buf.String())
		})
	}
}

// Command jswalk runs the tree-walking interpreter against a single
// source file, printing the tokenizer, parser, and runtime traces
// documented by the jswalk/cmd package.
package main

import (
	"fmt"
	"os"

	"github.com/go-jswalk/jswalk/cmd/jswalk/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

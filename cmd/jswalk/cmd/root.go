// Package cmd wires the cobra command surface: a single positional
// source-file argument, no flags.
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jswalk <file.js>",
	Short: "Tokenize, parse, and run a single .js source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		return run(c.OutOrStdout(), args[0])
	},
	SilenceUsage: true,
}

// Execute runs the root command with os.Args.
func Execute() error {
	return rootCmd.Execute()
}

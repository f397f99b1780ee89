// Package cmd implements the lisp CLI's subcommands (read/run/repl),
// following the teacher's cobra-based command layout.
package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Version is set by build flags.
	Version = "0.1.0-dev"

	verbose    bool
	hostProfile string
)

var rootCmd = &cobra.Command{
	Use:     "lisp",
	Short:   "A Lisp kernel embedded in a JS-like host runtime",
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&hostProfile, "host-profile", "", "YAML file of extra host namespace globals")
}

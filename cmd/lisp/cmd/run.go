package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var runEvalExpr string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a source file or inline expression",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&runEvalExpr, "eval", "e", "", "evaluate inline source instead of a file")
}

func runRun(_ *cobra.Command, args []string) error {
	src, filename, err := readSource(runEvalExpr, args)
	if err != nil {
		return err
	}

	k, err := newKernel()
	if err != nil {
		return err
	}

	if verbose {
		fmt.Printf("Running %s\n", filename)
	}

	result, err := k.RunSource(src)
	if err != nil {
		return err
	}
	if verbose {
		fmt.Println("=>", result.String())
	}
	return nil
}

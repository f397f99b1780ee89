package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var readEvalExpr string

var readCmd = &cobra.Command{
	Use:   "read [file]",
	Short: "Read source and print the parsed top-level forms",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRead,
}

func init() {
	rootCmd.AddCommand(readCmd)
	readCmd.Flags().StringVarP(&readEvalExpr, "eval", "e", "", "read inline source instead of a file")
}

func runRead(_ *cobra.Command, args []string) error {
	src, filename, err := readSource(readEvalExpr, args)
	if err != nil {
		return err
	}

	k, err := newKernel()
	if err != nil {
		return err
	}

	forms, err := k.Read(src)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Printf("Read %s: %d top-level form(s)\n", filename, len(forms))
	}
	for _, f := range forms {
		fmt.Println(f.String())
	}
	return nil
}

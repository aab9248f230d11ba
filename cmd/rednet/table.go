package main

import (
	"os"

	"github.com/rednet-lang/rednet/grammar"
	"github.com/spf13/cobra"
)

var tableFlags = struct {
	output *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "table",
		Short:   "Print the predictive parsing table and the production list",
		Example: `  rednet table -o tabla.txt`,
		Args:    cobra.NoArgs,
		RunE:    runTable,
	}
	tableFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	rootCmd.AddCommand(cmd)
}

func runTable(cmd *cobra.Command, args []string) error {
	table, err := grammar.NewLL1Table()
	if err != nil {
		return err
	}

	w := os.Stdout
	if *tableFlags.output != "" {
		f, err := os.Create(*tableFlags.output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	return table.Export(w)
}

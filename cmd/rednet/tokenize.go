package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rednet-lang/rednet/diag"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "tokenize <archivo>",
		Short:   "Print the token stream of a program",
		Long:    "tokenize runs only the lexical analyzer and prints one token per line. It is primarily aimed at debugging an automaton specification.",
		Example: `  rednet tokenize red1.net`,
		Args:    cobra.ExactArgs(1),
		RunE:    runTokenize,
	}
	rootCmd.AddCommand(cmd)
}

func runTokenize(cmd *cobra.Command, args []string) error {
	c, err := loadConfig()
	if err != nil {
		return err
	}

	src, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	aut, err := loadAutomaton(c)
	if err != nil {
		return err
	}

	tokens, d, err := tokenize(aut, string(src))
	if err != nil {
		return err
	}
	if d != nil {
		newReporter(c).ReportAll([]*diag.Diagnostic{d}, string(src), args[0])
		return errors.New("el análisis léxico falló")
	}

	for _, tok := range tokens {
		fmt.Fprintf(os.Stdout, "%v:%v\t%v\t%#v\n", tok.Line, tok.Column, tok.Type, tok.Lexeme)
	}
	return nil
}

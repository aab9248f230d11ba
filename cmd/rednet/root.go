package main

import (
	"github.com/spf13/cobra"
)

var rootFlags = struct {
	automaton *string
	noColor   *bool
}{}

var rootCmd = &cobra.Command{
	Use:   "rednet",
	Short: "Compile and run network topology programs",
	Long: `rednet compiles and executes programs written in the Red language,
a small Spanish-keyword language for describing Ethernet networks of
machines, hubs (concentradores) and coaxial cables.

The lexical analyzer is driven by an automaton specification that can
be swapped out with --automaton; by default the built-in one is used.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootFlags.automaton = rootCmd.PersistentFlags().String("automaton", "", "path to an automaton specification (default built-in)")
	rootFlags.noColor = rootCmd.PersistentFlags().Bool("no-color", false, "disable colored diagnostics")
}

func Execute() error {
	return rootCmd.Execute()
}

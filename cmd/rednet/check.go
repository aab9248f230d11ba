package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "check <archivo>",
		Short:   "Compile a program without executing it",
		Example: `  rednet check red1.net`,
		Args:    cobra.ExactArgs(1),
		RunE:    runCheck,
	}
	rootCmd.AddCommand(cmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	c, err := loadConfig()
	if err != nil {
		return err
	}

	prog, a, ok, err := compile(c, args[0])
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("la compilación falló")
	}

	fmt.Fprintf(os.Stdout, "%v: sin errores\n", args[0])
	fmt.Fprintf(os.Stdout, "  programa:       %v\n", prog.Name)
	fmt.Fprintf(os.Stdout, "  máquinas:       %v\n", len(a.Table.Maquinas))
	fmt.Fprintf(os.Stdout, "  concentradores: %v\n", len(a.Table.Concentradores))
	fmt.Fprintf(os.Stdout, "  coaxiales:      %v\n", len(a.Table.Coaxiales))
	fmt.Fprintf(os.Stdout, "  módulos:        %v\n", len(a.Table.Modulos))
	return nil
}

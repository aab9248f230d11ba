package main

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rednet-lang/rednet/diag"
	"github.com/rednet-lang/rednet/interpreter"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "run <archivo>",
		Short:   "Compile and execute a program",
		Example: `  rednet run red1.net`,
		Args:    cobra.ExactArgs(1),
		RunE:    runRun,
	}
	rootCmd.AddCommand(cmd)
}

func runRun(cmd *cobra.Command, args []string) (retErr error) {
	defer func() {
		v := recover()
		if v == nil {
			return
		}
		err, ok := v.(error)
		if !ok {
			retErr = fmt.Errorf("an unexpected error occurred: %v", v)
			fmt.Fprintf(os.Stderr, "%v:\n%v", retErr, string(debug.Stack()))
			return
		}
		retErr = err
		fmt.Fprintf(os.Stderr, "%v:\n%v", retErr, string(debug.Stack()))
	}()

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

	in := interpreter.NewInterpreter(a.Table)
	if err := in.Run(prog); err != nil {
		var runErr *interpreter.Error
		if errors.As(err, &runErr) {
			src, readErr := os.ReadFile(args[0])
			if readErr != nil {
				return err
			}
			d := diag.Runtime(runErr.Line, runErr.Column, runErr.Length, runErr.Message)
			newReporter(c).Report(d, string(src), args[0])
			return errors.New("la ejecución falló")
		}
		return err
	}

	if out := in.Env.OutputText(); out != "" {
		fmt.Fprintln(os.Stdout, out)
	}
	return nil
}

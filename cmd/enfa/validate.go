package main

import (
	"errors"
	"fmt"

	"github.com/aretw0/enfa/pkg/adapters/file"
	"github.com/aretw0/enfa/pkg/engine"
	"github.com/aretw0/enfa/pkg/validation"
	"github.com/spf13/cobra"
)

var errInvalid = errors.New("validation failed")

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check an automaton file for consistency",
	Long:  `Reports every problem in the file: undeclared states, symbols outside the alphabet, a missing start state and so on.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		a, err := file.Load(args[0])
		if err != nil {
			problems := validation.ValidationErrors(err)
			if len(problems) == 0 {
				return err
			}
			fmt.Fprintf(out, "%s: %d problem(s)\n", args[0], len(problems))
			for _, p := range problems {
				fmt.Fprintf(out, "  ❌ %v\n", p)
			}
			return errInvalid
		}

		fmt.Fprintf(out, "Automaton is valid! ✅ (%d states, %d symbols)\n", len(a.States), len(a.Symbols))
		if len(a.Finals) == 0 {
			fmt.Fprintln(out, "⚠ No final states: the automaton accepts no strings.")
		}
		if !engine.HasEpsilon(a) {
			fmt.Fprintln(out, "ℹ No ε-transitions found.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

package main

import (
	"github.com/aretw0/enfa/internal/cli"
	"github.com/aretw0/enfa/internal/presentation/table"
	"github.com/aretw0/enfa/pkg/adapters/file"
	"github.com/aretw0/enfa/pkg/domain"
	"github.com/spf13/cobra"
)

var closureCmd = &cobra.Command{
	Use:   "closure <file> [state...]",
	Short: "Print ε-closures of an automaton's states",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := file.Load(args[0])
		if err != nil {
			return err
		}
		conv := cli.NewConverter(cfg, logger, domain.ConversionHooks{})

		states := args[1:]
		if len(states) == 0 {
			closures, err := conv.Closures(cmd.Context(), a)
			if err != nil {
				return err
			}
			return table.WriteClosures(cmd.OutOrStdout(), a.States, closures)
		}

		closures := domain.Closures{}
		for _, s := range states {
			c, err := conv.Closure(a, s)
			if err != nil {
				return err
			}
			closures[s] = c
		}
		return table.WriteClosures(cmd.OutOrStdout(), states, closures)
	},
}

func init() {
	rootCmd.AddCommand(closureCmd)
}

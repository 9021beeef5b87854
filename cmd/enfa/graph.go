package main

import (
	"fmt"

	"github.com/aretw0/enfa/internal/cli"
	"github.com/aretw0/enfa/internal/presentation/graph"
	"github.com/aretw0/enfa/pkg/adapters/file"
	"github.com/aretw0/enfa/pkg/domain"
	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:   "graph <file>",
	Short: "Export an automaton as a Mermaid flowchart",
	Long: `Prints a Mermaid flowchart of the automaton. With --converted, the ε-free
automaton is drawn instead, with new edges dotted and new final states highlighted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := file.Load(args[0])
		if err != nil {
			return err
		}

		if converted, _ := cmd.Flags().GetBool("converted"); !converted {
			fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(a, nil))
			return nil
		}

		conv, err := cli.NewConverter(cfg, logger, domain.ConversionHooks{}).Convert(cmd.Context(), a)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(conv.Automaton(), overlay(conv)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().Bool("converted", false, "Draw the automaton after ε-elimination")
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/enfa/internal/cli"
	"github.com/aretw0/enfa/internal/presentation/graph"
	"github.com/aretw0/enfa/internal/presentation/markdown"
	"github.com/aretw0/enfa/internal/presentation/table"
	"github.com/aretw0/enfa/internal/presentation/tui"
	"github.com/aretw0/enfa/pkg/adapters/file"
	"github.com/aretw0/enfa/pkg/domain"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Remove ε-transitions from an automaton file",
	Long: `Reads a YAML or JSON automaton and prints the equivalent NFA without ε-transitions.

Formats:
  table     closures and transition table (default)
  json      the full conversion: source, closures, transitions, finals
  yaml      the converted automaton as a document enfa can read back
  markdown  a report, styled when printed to a terminal
  mermaid   a flowchart of the converted automaton`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		style, _ := cmd.Flags().GetString("style")

		a, err := file.Load(args[0])
		if err != nil {
			return err
		}

		conv, err := cli.NewConverter(cfg, logger, domain.ConversionHooks{}).Convert(cmd.Context(), a)
		if err != nil {
			return err
		}
		return writeConversion(cmd.OutOrStdout(), conv, format, style)
	},
}

func writeConversion(w io.Writer, conv *domain.Conversion, format, style string) error {
	switch format {
	case "table":
		if !conv.HadEpsilon {
			fmt.Fprintln(w, "ℹ No ε-transitions found. This is already a valid NFA.")
		} else {
			fmt.Fprintln(w, "Epsilon Closures:")
			if err := table.WriteClosures(w, conv.Source.States, conv.Closures); err != nil {
				return err
			}
		}
		return table.WriteSummary(w, conv)

	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(conv)

	case "yaml":
		data, err := file.Encode(conv.Automaton(), file.FormatYAML)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err

	case "markdown":
		md := markdown.Report(conv)
		if f, ok := w.(*os.File); ok && tui.IsTerminal(f) {
			rendered, err := markdown.Render(md, style, 100)
			if err != nil {
				return err
			}
			md = rendered
		}
		_, err := io.WriteString(w, md)
		return err

	case "mermaid":
		_, err := io.WriteString(w, graph.GenerateMermaid(conv.Automaton(), overlay(conv)))
		return err
	}
	return fmt.Errorf("unknown format %q (want table, json, yaml, markdown or mermaid)", format)
}

func overlay(conv *domain.Conversion) *graph.GraphOverlay {
	o := &graph.GraphOverlay{}
	if diff := domain.Diff(conv.Source.Transitions, conv.Transitions); diff != nil {
		o.AddedEdges = diff.Added
	}
	for _, f := range conv.Finals {
		if !conv.Source.IsFinal(f) {
			o.NewFinals = append(o.NewFinals, f)
		}
	}
	return o
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringP("format", "f", "table", "Output format: table, json, yaml, markdown or mermaid")
	convertCmd.Flags().String("style", "", "Markdown style for terminals (dark, light, ascii, ...); empty detects")
}

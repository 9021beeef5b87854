package main

import (
	"io"
	"os"

	"github.com/aretw0/enfa/internal/cli"
	"github.com/aretw0/enfa/internal/presentation/tui"
	"github.com/aretw0/enfa/pkg/domain"
	"github.com/aretw0/enfa/pkg/runner"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Enter automata interactively and convert them",
	Long: `Asks for states, alphabet, start state, final states and transitions,
re-asking whenever an answer is invalid, then prints the ε-closures and the
transition table of the equivalent NFA.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sc := cli.NewSignalContext(cmd.Context())
		defer sc.Cancel()

		opts := []runner.SessionOption{
			runner.WithLogger(logger),
			runner.WithHeader(header),
		}
		if save, _ := cmd.Flags().GetBool("save"); save {
			store, closeStore, err := cli.NewStore(sc, cfg)
			if err != nil {
				return err
			}
			defer closeStore()
			if store != nil {
				opts = append(opts, runner.WithStore(store))
			}
		}

		conv := cli.NewConverter(cfg, logger, domain.ConversionHooks{})
		handler := runner.NewTextHandler(cmd.InOrStdin(), cmd.OutOrStdout())
		handler.MaxLineLength = cfg.MaxLineLength
		session := runner.NewSession(handler, conv, opts...)

		err := session.Run(sc)
		if cli.IsInterrupted(err) {
			logger.Debug("session interrupted", "signal", sc.Signal())
			return nil
		}
		return err
	},
}

func header(w io.Writer) {
	if f, ok := w.(*os.File); ok {
		tui.PrintBanner(f)
		return
	}
	tui.Title(w)
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().Bool("save", false, "Keep each conversion in the configured store")
}

package main

import (
	"github.com/aretw0/enfa/internal/cli"
	"github.com/aretw0/enfa/pkg/adapters/mcp"
	"github.com/aretw0/enfa/pkg/domain"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start a Model Context Protocol server on stdio",
	Long:  `Serves the eliminate_epsilon and epsilon_closure tools over the Model Context Protocol. Logs go to stderr.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeStore, err := cli.NewStore(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer closeStore()

		opts := []mcp.Option{mcp.WithLogger(logger)}
		if store != nil {
			opts = append(opts, mcp.WithStore(store))
		}

		conv := cli.NewConverter(cfg, logger, domain.ConversionHooks{})
		logger.Info("MCP server listening (stdio)")
		return mcp.NewServer(conv, opts...).ServeStdio()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/enfa/internal/cli"
	"github.com/aretw0/enfa/internal/config"
	"github.com/aretw0/enfa/internal/logging"
	"github.com/spf13/cobra"
)

var (
	cfg    = config.Default()
	logger = logging.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "enfa",
	Short: "enfa converts ε-NFAs into equivalent NFAs without ε-transitions",
	Long: `enfa removes ε-transitions from nondeterministic finite automata.
Automata are entered interactively (enfa run) or read from YAML/JSON files.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "YAML configuration file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().Int("workers", 0, "Goroutines used for ε-closures (0 keeps the configured value)")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	c, err := config.Load(path)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("log-level") {
		c.LogLevel, _ = cmd.Flags().GetString("log-level")
	}
	if w, _ := cmd.Flags().GetInt("workers"); w > 0 {
		c.Workers = w
	}

	l, err := cli.NewLogger(c)
	if err != nil {
		return err
	}
	cfg, logger = c, l
	slog.SetDefault(logger)
	return nil
}

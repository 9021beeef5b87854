package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/enfa"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of enfa",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "enfa version %s\n", strings.TrimSpace(enfa.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

package main

import (
	"fmt"
	"strings"

	"github.com/kyriakid1s/portfolio"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of portfolio",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "portfolio version %s\n", strings.TrimSpace(portfolio.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

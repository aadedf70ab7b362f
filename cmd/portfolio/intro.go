package main

import (
	"github.com/kyriakid1s/portfolio/internal/cli"
	"github.com/spf13/cobra"
)

var introCmd = &cobra.Command{
	Use:   "intro",
	Short: "Play the typewriter intro",
	Long:  `Types the intro script from the configuration (or a default one). Press any key to skip.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.RunIntro(globalOptions(cmd), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(introCmd)
}

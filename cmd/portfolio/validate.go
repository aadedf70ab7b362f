package main

import (
	"github.com/kyriakid1s/portfolio/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the configuration and the blog posts",
	Long:  `Loads every post and reports missing titles, malformed dates and bodies that fail to render.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Validate(globalOptions(cmd), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

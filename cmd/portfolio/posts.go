package main

import (
	"github.com/kyriakid1s/portfolio/internal/cli"
	"github.com/spf13/cobra"
)

var postsCmd = &cobra.Command{
	Use:   "posts",
	Short: "List blog posts, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.ListPosts(globalOptions(cmd), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(postsCmd)
}

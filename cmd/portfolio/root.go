package main

import (
	"fmt"
	"os"

	"github.com/kyriakid1s/portfolio/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "A developer portfolio with a terminal you can type into",
	Long: `Portfolio serves a personal site with a blog and a contact form,
and opens the same interactive terminal in your shell or to MCP clients.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// globalOptions reads the persistent flags.
func globalOptions(cmd *cobra.Command) cli.Options {
	configPath, _ := cmd.Flags().GetString("config")
	contentDir, _ := cmd.Flags().GetString("content")
	debug, _ := cmd.Flags().GetBool("debug")

	opts := cli.Options{ConfigPath: configPath, Debug: debug}
	// Only an explicit flag overrides content_dir from the config file.
	if cmd.Flags().Changed("content") {
		opts.ContentDir = contentDir
	}
	return opts
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "portfolio.yaml", "Path to the site configuration (YAML or JSON)")
	rootCmd.PersistentFlags().String("content", "content", "Directory containing the blog posts")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging to stderr")
}

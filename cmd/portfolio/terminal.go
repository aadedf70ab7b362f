package main

import (
	"github.com/kyriakid1s/portfolio/internal/cli"
	"github.com/spf13/cobra"
)

var terminalCmd = &cobra.Command{
	Use:   "terminal",
	Short: "Open the interactive terminal",
	Long: `Opens the portfolio terminal. On a TTY it runs as a full widget with
Tab completion, history recall (Up) and fullscreen (Ctrl+F).
When stdin is piped it reads one command per line.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonMode, _ := cmd.Flags().GetBool("json")
		noBanner, _ := cmd.Flags().GetBool("no-banner")

		return cli.RunTerminal(cli.TerminalOptions{
			Options:  globalOptions(cmd),
			JSON:     jsonMode,
			NoBanner: noBanner,
			In:       cmd.InOrStdin(),
			Out:      cmd.OutOrStdout(),
		})
	},
}

func init() {
	rootCmd.AddCommand(terminalCmd)

	terminalCmd.Flags().Bool("json", false, "Run in JSON mode (NDJSON input/output)")
	terminalCmd.Flags().Bool("no-banner", false, "Skip the banner in line mode")

	// The terminal is what most visitors want.
	rootCmd.RunE = terminalCmd.RunE
	rootCmd.Flags().AddFlagSet(terminalCmd.Flags())
}

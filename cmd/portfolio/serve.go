package main

import (
	"github.com/kyriakid1s/portfolio/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Serves the site pages, the blog API and the contact relay.
Contact submissions are throttled per client IP (Redis when configured,
memory otherwise) and relayed over SMTP.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetString("port")
		redisURL, _ := cmd.Flags().GetString("redis-url")
		dryRun, _ := cmd.Flags().GetBool("mail-dry-run")
		watch, _ := cmd.Flags().GetBool("watch")

		return cli.Serve(cli.ServeOptions{
			Options:    globalOptions(cmd),
			Port:       port,
			RedisURL:   redisURL,
			MailDryRun: dryRun,
			Watch:      watch,
		})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("port", "p", "", "Port to listen on (overrides server.addr)")
	serveCmd.Flags().String("redis-url", "", "Redis URL for the contact rate limiter (overrides REDIS_URL)")
	serveCmd.Flags().Bool("mail-dry-run", false, "Accept contact messages without sending them")
	serveCmd.Flags().BoolP("watch", "w", false, "Re-render posts when their files change")
}

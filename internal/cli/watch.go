package cli

import (
	"context"
	"log/slog"
	"time"

	"github.com/kyriakid1s/portfolio"
)

// watchRetryDelay is the pause before restarting a failed watcher.
const watchRetryDelay = 2 * time.Second

// watchContent keeps the rendered post cache in sync with the content directory.
func watchContent(ctx context.Context, site *portfolio.Site, logger *slog.Logger) {
	logger.Info("Starting Watcher", "path", site.ContentDir)
	for {
		err := site.Watch(ctx)
		if ctx.Err() != nil {
			logger.Info("Stopping watcher")
			return
		}
		if err == nil {
			logger.Info("Watcher finished", "path", site.ContentDir)
			return
		}

		logger.Error("Watcher failed, retrying", "error", err, "delay", watchRetryDelay)
		select {
		case <-ctx.Done():
			return
		case <-time.After(watchRetryDelay):
		}
	}
}

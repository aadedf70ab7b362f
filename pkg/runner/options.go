package runner

import (
	"log/slog"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithInputHandler configures a custom IOHandler.
func WithInputHandler(handler IOHandler) Option {
	return func(r *Runner) {
		r.Handler = handler
	}
}

// WithExitCommands overrides the words that end the loop (default: exit, quit).
// They are host controls and never reach the session.
func WithExitCommands(words ...string) Option {
	return func(r *Runner) {
		r.ExitCommands = words
	}
}

package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/kyriakid1s/portfolio/internal/logging"
	"github.com/kyriakid1s/portfolio/pkg/session"
)

// Runner drives a session from a line-oriented IOHandler.
// It is the non-interactive host: each input line is one submission.
type Runner struct {
	// Handler is the strategy for IO. Defaults to a TextHandler on Stdin/Stdout.
	Handler IOHandler

	// Logger is used for internal debug logging.
	Logger *slog.Logger

	// ExitCommands end the loop without being submitted.
	ExitCommands []string
}

// NewRunner creates a Runner with the given options.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		Logger:       logging.NewNop(),
		ExitCommands: []string{"exit", "quit"},
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.Handler == nil {
		r.Handler = NewTextHandler(os.Stdin, os.Stdout)
	}
	return r
}

// Run prints the current transcript, then submits each input line until EOF,
// an exit command, or ctx cancellation. EOF and exit commands return nil.
func (r *Runner) Run(ctx context.Context, s *session.Session) error {
	shown := s.Transcript()
	if err := r.Handler.Output(ctx, shown); err != nil {
		return fmt.Errorf("output error: %w", err)
	}
	seen := len(shown)

	for {
		line, err := r.Handler.Input(ctx)
		if err != nil {
			switch {
			case errors.Is(err, io.EOF):
				return nil
			case errors.Is(err, ErrInputTooLarge), errors.Is(err, ErrInvalidUTF8):
				r.Logger.Warn("rejected input", "error", err)
				continue
			}
			return err
		}

		if r.isExit(line) {
			r.Logger.Debug("exit requested", "session_id", s.ID())
			s.Close()
			return nil
		}

		s.SetInput(line)
		if !s.Submit() {
			continue
		}

		tr := s.Transcript()
		if len(tr) <= seen {
			if err := r.Handler.Clear(ctx); err != nil {
				return fmt.Errorf("output error: %w", err)
			}
			seen = 0
		}
		if err := r.Handler.Output(ctx, tr[seen:]); err != nil {
			return fmt.Errorf("output error: %w", err)
		}
		seen = len(tr)
	}
}

func (r *Runner) isExit(line string) bool {
	word := strings.ToLower(strings.TrimSpace(line))
	for _, w := range r.ExitCommands {
		if word == w {
			return true
		}
	}
	return false
}

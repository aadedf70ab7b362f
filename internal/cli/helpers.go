package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/kyriakid1s/portfolio"
	"github.com/kyriakid1s/portfolio/internal/config"
	"github.com/kyriakid1s/portfolio/internal/logging"
)

// Options carries the persistent flags shared by every command.
type Options struct {
	ConfigPath string
	ContentDir string // Overrides content_dir from the config file when set
	Debug      bool
}

// SignalContext wraps a context and captures the signal that cancelled it.
type SignalContext struct {
	context.Context
	Cancel func()
	start  sync.Once
	stop   sync.Once
	sigCh  chan os.Signal
	sigVal os.Signal
	mu     sync.Mutex
}

// NewSignalContext creates a context that is cancelled on SIGINT or SIGTERM.
// It acts as a drop-in replacement for signal.NotifyContext but allows retrieving the signal.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{
		Context: ctx,
		Cancel:  cancel,
		sigCh:   make(chan os.Signal, 1),
	}

	sc.start.Do(func() {
		signal.Notify(sc.sigCh, os.Interrupt, syscall.SIGTERM)
		go func() {
			select {
			case sig := <-sc.sigCh:
				sc.mu.Lock()
				sc.sigVal = sig
				sc.mu.Unlock()
				sc.Cancel()
			case <-sc.Context.Done():
			}
			sc.stop.Do(func() {
				signal.Stop(sc.sigCh)
			})
		}()
	})

	return sc
}

// Signal returns the signal that caused the context to be cancelled, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sigVal
}

// createLogger configures the application logger.
// Interactive commands stay silent unless --debug is set; servers always log.
func createLogger(debug, always bool) *slog.Logger {
	if debug || always {
		return logging.New(logging.Level(debug))
	}
	return logging.NewNop()
}

// loadConfig reads the config file and applies the flag overrides.
func loadConfig(opts Options) (*config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.ContentDir != "" {
		cfg.ContentDir = opts.ContentDir
	}
	return cfg, nil
}

// newSite opens the blog in cfg.ContentDir with the standard CLI wiring.
func newSite(cfg *config.Config, logger *slog.Logger, debug bool, extra ...portfolio.Option) (*portfolio.Site, error) {
	siteOpts := []portfolio.Option{portfolio.WithLogger(logger)}
	if debug {
		siteOpts = append(siteOpts, portfolio.WithHooks(logging.DebugHooks(logger)))
	}
	siteOpts = append(siteOpts, extra...)

	site, err := portfolio.New(cfg.ContentDir, siteOpts...)
	if err != nil {
		return nil, fmt.Errorf("error opening content %q: %w", cfg.ContentDir, err)
	}
	return site, nil
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}

func isInterrupted(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, io.EOF)
}

// handleExecutionError maps interruptions to a clean exit.
func handleExecutionError(err error) error {
	if err == nil || isInterrupted(err) {
		return nil
	}
	return err
}

// logCompletion tells the user why the terminal ended.
func logCompletion(w io.Writer, err error, sig os.Signal) {
	switch {
	case sig == os.Interrupt:
		fmt.Fprintf(w, "[CTRL+C]\n")
		printSystemMessage(w, "Interrupted.")
	case sig != nil:
		fmt.Fprintf(w, "\n")
		printSystemMessage(w, "Terminated.")
	case err != nil && !isInterrupted(err):
		printSystemMessage(w, "Stopped: %v", err)
	}
}

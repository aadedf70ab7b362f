package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kyriakid1s/portfolio"
	"github.com/kyriakid1s/portfolio/internal/presentation/tui"
	"github.com/kyriakid1s/portfolio/pkg/runner"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// defaultRenderWidth is used for glamour when the terminal size is unknown.
const defaultRenderWidth = 76

// TerminalOptions configures the terminal command.
type TerminalOptions struct {
	Options
	JSON     bool // JSON Lines in and out, for scripted use
	NoBanner bool

	In  io.Reader
	Out io.Writer
}

// RunTerminal opens the terminal: the bubbletea widget on a TTY, line mode otherwise.
func RunTerminal(opts TerminalOptions) error {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	cfg, err := loadConfig(opts.Options)
	if err != nil {
		return err
	}
	logger := createLogger(opts.Debug, false)

	interactive := !opts.JSON && isTerminal(opts.In)
	siteOpts := []portfolio.Option{}
	if !opts.JSON {
		siteOpts = append(siteOpts, portfolio.WithTerminalRenderer(tui.NewRenderer(renderWidth(opts.Out))))
	}
	site, err := newSite(cfg, logger, opts.Debug, siteOpts...)
	if err != nil {
		return err
	}

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	s := site.NewSession()
	logger.Info("Session Created", "session_id", s.ID(), "interactive", interactive)

	if interactive {
		s.Focus()
		p := tea.NewProgram(tui.NewWidget(s), tea.WithContext(sigCtx), tea.WithInput(opts.In), tea.WithOutput(opts.Out))
		_, err := p.Run()
		if err != nil && sigCtx.Err() != nil {
			err = sigCtx.Err()
		}
		return handleExecutionError(err)
	}

	var handler runner.IOHandler
	if opts.JSON {
		handler = runner.NewJSONHandler(opts.In, opts.Out)
	} else {
		if !opts.NoBanner {
			tui.PrintBanner(opts.Out, cfg.Site.Tagline)
		}
		handler = runner.NewTextHandler(opts.In, opts.Out, runner.WithProfile(outputProfile(opts.Out)))
	}

	r := runner.NewRunner(
		runner.WithLogger(logger),
		runner.WithInputHandler(handler),
	)
	runErr := r.Run(sigCtx, s)
	if sigCtx.Err() != nil && runErr == nil {
		runErr = sigCtx.Err()
	}
	if !opts.JSON {
		logCompletion(opts.Out, runErr, sigCtx.Signal())
	}
	return handleExecutionError(runErr)
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func renderWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 4 {
			return width - 4
		}
	}
	return defaultRenderWidth
}

// outputProfile disables colors when w is not a terminal.
func outputProfile(w io.Writer) termenv.Profile {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return termenv.NewOutput(f).EnvColorProfile()
	}
	return termenv.Ascii
}

// ListPosts prints the blog index the same way the posts command does.
func ListPosts(opts Options, w io.Writer) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	site, err := newSite(cfg, createLogger(opts.Debug, false), opts.Debug)
	if err != nil {
		return err
	}

	cmd, ok := site.Registry().Lookup("posts")
	if !ok {
		return fmt.Errorf("posts command is not registered")
	}
	for _, line := range cmd.Execute(nil).Lines {
		fmt.Fprintln(w, line)
	}
	return nil
}

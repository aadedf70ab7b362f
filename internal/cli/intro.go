package cli

import (
	"context"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kyriakid1s/portfolio/internal/presentation/tui"
)

// RunIntro plays the typewriter intro from the config (or the default script).
func RunIntro(opts Options, out io.Writer) error {
	if out == nil {
		out = os.Stdout
	}
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	p := tea.NewProgram(tui.NewIntro(cfg.Intro, 0), tea.WithContext(sigCtx), tea.WithOutput(out))
	_, err = p.Run()
	if err != nil && sigCtx.Err() != nil {
		err = sigCtx.Err()
	}
	return handleExecutionError(err)
}

package tui

import (
	"github.com/charmbracelet/glamour"
	"github.com/kyriakid1s/portfolio/pkg/commands"
)

// NewRenderer returns a function that renders markdown using glamour,
// wrapped to width columns. If glamour cannot be initialized the
// markdown is passed through unchanged.
func NewRenderer(width int) commands.ContentRenderer {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return commands.PlainText
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

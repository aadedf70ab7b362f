package session

import (
	"fmt"

	"github.com/kyriakid1s/portfolio/pkg/domain"
)

// Style selects how a rendered line is colored.
type Style int

const (
	StyleResult Style = iota
	StyleCommand
	StyleError
)

// ViewLine is one display row.
type ViewLine struct {
	Entry int // Index of the transcript entry the row belongs to
	Text  string
	Style Style
}

// View is a host-independent projection of a Session.
type View struct {
	Lines       []ViewLine
	Input       string
	Suggestions []string
	Status      string
	Focused     bool
	Fullscreen  bool
	Closed      bool
}

// View projects the current state. It has no side effects.
func (s *Session) View() View {
	var lines []ViewLine
	for i, entry := range s.transcript {
		style := styleOf(entry)
		for _, text := range entry.Lines {
			lines = append(lines, ViewLine{Entry: i, Text: text, Style: style})
		}
	}
	return View{
		Lines:       lines,
		Input:       s.input,
		Suggestions: s.Suggestions(),
		Status:      fmt.Sprintf("%d lines", len(s.transcript)),
		Focused:     s.focused,
		Fullscreen:  s.fullscreen,
		Closed:      s.closed,
	}
}

func styleOf(l domain.OutputLine) Style {
	switch {
	case l.IsError():
		return StyleError
	case l.IsCommand():
		return StyleCommand
	default:
		return StyleResult
	}
}

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kyriakid1s/portfolio/pkg/session"
)

const (
	// Windowed size, before Ctrl+F maximizes the widget.
	windowWidth  = 80
	windowHeight = 20

	// Rows taken by the header, suggestions, input and status bar.
	chromeRows = 4
)

// Widget hosts a session as a bubbletea program.
//
// Keys: Tab completes, Enter submits, Up recalls the last command on an empty
// line, Ctrl+F toggles fullscreen, Esc and Ctrl+C close the terminal.
type Widget struct {
	session  *session.Session
	input    textinput.Model
	viewport viewport.Model

	termWidth, termHeight int
	revision              uint64
}

// NewWidget creates a focused widget around s.
func NewWidget(s *session.Session) *Widget {
	ti := textinput.New()
	ti.Prompt = "$ "
	ti.PromptStyle = promptStyle
	ti.CharLimit = 256
	ti.SetValue(s.Input())
	ti.Focus()
	s.Focus()

	w := &Widget{
		session:    s,
		input:      ti,
		viewport:   viewport.New(windowWidth, windowHeight-chromeRows),
		termWidth:  windowWidth,
		termHeight: windowHeight,
	}
	w.refresh(true)
	return w
}

// Session exposes the hosted session.
func (w *Widget) Session() *session.Session { return w.session }

func (w *Widget) Init() tea.Cmd {
	return textinput.Blink
}

func (w *Widget) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.termWidth, w.termHeight = msg.Width, msg.Height
		w.resize()
		return w, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			w.session.Close()
			w.session.Blur()
			return w, tea.Quit

		case tea.KeyCtrlF:
			full := w.session.ToggleFullscreen()
			w.resize()
			if full {
				return w, tea.EnterAltScreen
			}
			return w, tea.ExitAltScreen

		case tea.KeyTab:
			if w.session.Complete() {
				w.syncInput()
			}
			return w, nil

		case tea.KeyEnter:
			w.session.SetInput(w.input.Value())
			w.session.Submit()
			w.syncInput()
			w.refresh(false)
			return w, nil

		case tea.KeyUp:
			if w.session.RecallLast() {
				w.syncInput()
			}
			return w, nil

		case tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			w.viewport, cmd = w.viewport.Update(msg)
			return w, cmd
		}
	}

	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	w.session.SetInput(w.input.Value())
	return w, cmd
}

func (w *Widget) View() string {
	v := w.session.View()
	if v.Closed {
		return ""
	}
	width := w.width()

	var b strings.Builder
	b.WriteString(headerStyle.Width(width).Render("terminal"))
	b.WriteString("\n")
	b.WriteString(w.viewport.View())
	b.WriteString("\n")
	b.WriteString(renderSuggestions(v.Suggestions))
	b.WriteString("\n")
	b.WriteString(w.input.View())
	b.WriteString("\n")
	b.WriteString(statusStyle.Width(width).Render(v.Status + " · UTF-8 · zsh"))

	if v.Fullscreen {
		return b.String()
	}
	return frameStyle.Render(b.String())
}

// syncInput copies the session buffer into the text field.
func (w *Widget) syncInput() {
	w.input.SetValue(w.session.Input())
	w.input.CursorEnd()
}

// refresh re-renders the transcript when it changed and scrolls to the end.
func (w *Widget) refresh(force bool) {
	rev := w.session.Revision()
	if !force && rev == w.revision {
		return
	}
	w.revision = rev
	w.viewport.SetContent(renderLines(w.session.View().Lines, w.viewport.Width))
	w.viewport.GotoBottom()
	if w.session.Focused() {
		w.input.Focus()
	}
}

func (w *Widget) resize() {
	width := w.width()
	height := windowHeight
	if w.session.Fullscreen() {
		height = w.termHeight
	} else if w.termHeight > 0 && w.termHeight < height {
		height = w.termHeight
	}
	w.viewport.Width = width
	w.viewport.Height = max(height-chromeRows, 1)
	w.input.Width = max(width-len(w.input.Prompt)-1, 1)
	w.refresh(true)
}

func (w *Widget) width() int {
	if w.session.Fullscreen() || (w.termWidth > 0 && w.termWidth < windowWidth) {
		return w.termWidth
	}
	return windowWidth
}

func renderLines(lines []session.ViewLine, width int) string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = lineStyles[l.Style].Width(width).Render(l.Text)
	}
	return strings.Join(out, "\n")
}

func renderSuggestions(suggestions []string) string {
	if len(suggestions) == 0 {
		return ""
	}
	parts := make([]string, len(suggestions))
	for i, s := range suggestions {
		if i == 0 {
			parts[i] = activeSuggestionStyle.Render(s)
		} else {
			parts[i] = suggestionStyle.Render(s)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

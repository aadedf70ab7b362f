package tui

import (
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kyriakid1s/portfolio/pkg/session"
	"github.com/kyriakid1s/portfolio/pkg/typewriter"
)

// DefaultIntro is played when the configuration has no script.
var DefaultIntro = []typewriter.Entry{
	{Command: "whoami", Response: "Full Stack Developer"},
	{Command: "cat skills.txt", Response: "Go · Node.js · Python · PostgreSQL · Redis · Docker"},
	{Command: "portfolio terminal", Response: `Type "help" to begin`},
}

type introTickMsg struct{}

// Intro plays a typewriter script and quits when it is done (or on any key).
type Intro struct {
	tw         *typewriter.Typewriter
	rng        *rand.Rand
	startDelay time.Duration
	started    bool
	done       bool
}

// NewIntro creates the animation. startDelay postpones the first character.
func NewIntro(script []typewriter.Entry, startDelay time.Duration) *Intro {
	if len(script) == 0 {
		script = DefaultIntro
	}
	return &Intro{
		tw:         typewriter.New(script),
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		startDelay: startDelay,
	}
}

func (m *Intro) Init() tea.Cmd {
	return tick(m.startDelay)
}

func (m *Intro) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case tea.KeyMsg:
		m.done = true
		return m, tea.Quit
	case introTickMsg:
		if !m.started {
			m.started = true
		} else {
			m.tw.Step()
		}
		if m.tw.Done() {
			m.done = true
			return m, tea.Quit
		}
		return m, tick(m.tw.Delay(m.rng))
	}
	return m, nil
}

// Done reports whether the animation finished or was skipped.
func (m *Intro) Done() bool { return m.done }

func (m *Intro) View() string {
	if !m.started {
		return ""
	}
	var b strings.Builder
	for _, f := range m.tw.Frames() {
		b.WriteString(promptStyle.Render("$"))
		b.WriteString(" ")
		b.WriteString(f.Command)
		b.WriteString("\n")
		if f.ShowResponse {
			b.WriteString(lineStyles[session.StyleResult].Render(f.Response))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	if !m.tw.Done() {
		b.WriteString(cursorStyle.Render(" "))
	}
	return b.String()
}

var cursorStyle = lipgloss.NewStyle().Background(lipgloss.Color("#4ade80"))

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return introTickMsg{} })
}

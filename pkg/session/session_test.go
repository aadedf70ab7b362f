package session_test

import (
	"strings"
	"testing"
	"time"

	"github.com/kyriakid1s/portfolio/pkg/commands"
	"github.com/kyriakid1s/portfolio/pkg/domain"
	"github.com/kyriakid1s/portfolio/pkg/registry"
	"github.com/kyriakid1s/portfolio/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T, opts ...session.Option) *session.Session {
	t.Helper()
	return session.New(commands.Default(), opts...)
}

func submit(s *session.Session, input string) bool {
	s.SetInput(input)
	return s.Submit()
}

func TestNew_Welcome(t *testing.T) {
	s := newSession(t)

	tr := s.Transcript()
	require.Len(t, tr, 3)
	for i, want := range session.WelcomeLines {
		assert.Equal(t, []string{want}, tr[i].Lines)
		assert.False(t, tr[i].IsCommand())
		assert.False(t, tr[i].IsError())
	}
	assert.Equal(t, session.StateIdle, s.State())
	assert.False(t, s.Focused())
	assert.NotEmpty(t, s.ID())
}

func TestSetInput_NoTranscriptEffect(t *testing.T) {
	s := newSession(t)
	rev := s.Revision()

	s.SetInput("he")
	assert.Equal(t, "he", s.Input())
	assert.Equal(t, session.StateEditing, s.State())
	assert.Equal(t, rev, s.Revision())
	assert.Len(t, s.Transcript(), 3)
}

func TestSuggestions(t *testing.T) {
	s := newSession(t)

	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"h", []string{"help"}},
		{"s", []string{"skills", "sudo"}},
		{"C", []string{"contact", "clear"}},
		{"help ", nil},
		{"x", nil},
	}
	for _, tt := range tests {
		s.SetInput(tt.input)
		assert.Equal(t, tt.want, s.Suggestions(), "input %q", tt.input)
	}
}

func TestSubmit_Help(t *testing.T) {
	s := newSession(t)
	require.True(t, submit(s, "help"))

	tr := s.Transcript()
	require.Len(t, tr, 5)
	assert.True(t, tr[3].IsCommand())
	assert.Equal(t, []string{"$ help"}, tr[3].Lines)
	assert.Equal(t, commands.HelpLines(s.Registry()), tr[4].Lines)
	assert.Equal(t, "", s.Input())
	assert.Empty(t, s.Suggestions())
}

func TestSubmit_CaseInsensitiveWithArgs(t *testing.T) {
	s := newSession(t)
	require.True(t, submit(s, "ABOUT me please"))

	tr := s.Transcript()
	assert.Equal(t, []string{"$ ABOUT me please"}, tr[3].Lines, "echo keeps raw input")
	assert.Equal(t, "Full Stack Developer", tr[4].Lines[0])
}

func TestSubmit_Unknown(t *testing.T) {
	s := newSession(t)
	require.True(t, submit(s, "Foo bar"))

	tr := s.Transcript()
	require.Len(t, tr, 5)
	last := tr[4]
	assert.True(t, last.IsError())
	assert.Equal(t, []string{"Command not found: foo", `Type "help" for available commands`}, last.Lines)
}

func TestSubmit_Blank(t *testing.T) {
	s := newSession(t)
	rev := s.Revision()

	for _, input := range []string{"", "   ", "\t"} {
		s.SetInput(input)
		assert.False(t, s.Submit(), "input %q", input)
	}
	assert.Equal(t, rev, s.Revision())
	assert.Len(t, s.Transcript(), 3)
	assert.Equal(t, "\t", s.Input(), "blank submit leaves the buffer alone")
}

func TestSubmit_Clear(t *testing.T) {
	s := newSession(t)
	submit(s, "help")
	require.True(t, submit(s, "clear"))

	assert.Empty(t, s.Transcript(), "clear drops its own echo too")
	assert.Equal(t, "0 lines", s.View().Status)
}

func TestSubmit_TextNeverClears(t *testing.T) {
	reg := registry.MustNew(registry.Command{
		Name:    "echo",
		Execute: func(args []string) domain.Result { return domain.Text(strings.Join(args, " ")) },
	})
	s := session.New(reg)
	require.True(t, submit(s, "echo CLEAR_TERMINAL"))

	tr := s.Transcript()
	require.Len(t, tr, 5)
	assert.Equal(t, []string{"CLEAR_TERMINAL"}, tr[4].Lines)
}

func TestSubmit_TranscriptGrowsByAppend(t *testing.T) {
	s := newSession(t)
	before := s.Transcript()

	submit(s, "skills")
	after := s.Transcript()

	require.Len(t, after, len(before)+2)
	assert.Equal(t, before, after[:len(before)])
}

func TestComplete(t *testing.T) {
	s := newSession(t)

	s.SetInput("cl")
	require.True(t, s.Complete())
	assert.Equal(t, "clear", s.Input())
	assert.Len(t, s.Transcript(), 3, "Tab never submits")

	s.SetInput("co")
	require.True(t, s.Complete())
	assert.Equal(t, "contact", s.Input())

	s.SetInput("c")
	require.True(t, s.Complete())
	assert.Equal(t, "contact", s.Input(), "first in registry order")

	s.SetInput("zz")
	assert.False(t, s.Complete())
	assert.Equal(t, "zz", s.Input())

	s.SetInput("")
	assert.False(t, s.Complete())
}

func TestRecallLast(t *testing.T) {
	t.Run("Fresh session", func(t *testing.T) {
		s := newSession(t)
		assert.False(t, s.RecallLast())
		assert.Equal(t, "", s.Input())
	})

	t.Run("Latest command", func(t *testing.T) {
		s := newSession(t)
		submit(s, "about")
		submit(s, "nope  x")

		require.True(t, s.RecallLast())
		assert.Equal(t, "nope  x", s.Input())
	})

	t.Run("Only with empty buffer", func(t *testing.T) {
		s := newSession(t)
		submit(s, "about")
		s.SetInput("he")

		assert.False(t, s.RecallLast())
		assert.Equal(t, "he", s.Input())
	})

	t.Run("After clear", func(t *testing.T) {
		s := newSession(t)
		submit(s, "about")
		submit(s, "clear")
		assert.False(t, s.RecallLast())
	})

	t.Run("Result text that looks like a prompt", func(t *testing.T) {
		reg := registry.MustNew(registry.Command{
			Name:    "fake",
			Execute: func([]string) domain.Result { return domain.Text("$ rm -rf /") },
		})
		s := session.New(reg)
		submit(s, "fake")
		require.True(t, s.RecallLast())
		assert.Equal(t, "fake", s.Input())
	})
}

func TestRevision(t *testing.T) {
	s := newSession(t)
	r0 := s.Revision()

	submit(s, "help")
	r1 := s.Revision()
	assert.Greater(t, r1, r0)

	s.SetInput("ab")
	s.Complete()
	assert.Equal(t, r1, s.Revision())

	submit(s, "clear")
	assert.Greater(t, s.Revision(), r1)
}

func TestFlags(t *testing.T) {
	s := newSession(t)

	s.Focus()
	assert.True(t, s.Focused())
	s.Blur()
	assert.False(t, s.Focused())

	assert.True(t, s.ToggleFullscreen())
	assert.True(t, s.Fullscreen())
	assert.False(t, s.ToggleFullscreen())

	assert.False(t, s.Closed())
	s.Close()
	assert.True(t, s.Closed())
}

func TestHooks(t *testing.T) {
	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	var cmds []*domain.CommandEvent
	var clears []*domain.ClearEvent

	s := newSession(t,
		session.WithID("sess-1"),
		session.WithClock(func() time.Time { return fixed }),
		session.WithHooks(domain.LifecycleHooks{
			OnCommand: func(e *domain.CommandEvent) { cmds = append(cmds, e) },
			OnClear:   func(e *domain.ClearEvent) { clears = append(clears, e) },
		}),
	)

	submit(s, "Help me")
	submit(s, "nope")
	submit(s, "clear")

	require.Len(t, cmds, 3)
	assert.Equal(t, "help", cmds[0].Name)
	assert.Equal(t, []string{"me"}, cmds[0].Args)
	assert.True(t, cmds[0].Found)
	assert.Equal(t, "sess-1", cmds[0].SessionID)
	assert.Equal(t, fixed, cmds[0].Timestamp)
	assert.Equal(t, domain.EventCommand, cmds[0].Type)
	assert.False(t, cmds[1].Found)

	require.Len(t, clears, 1)
	assert.Equal(t, 8, clears[0].Discarded)
	assert.Equal(t, domain.EventClear, clears[0].Type)
}

func TestSubmit_EveryCommandAppendsItsOutput(t *testing.T) {
	reg := commands.Default()

	for _, cmd := range reg.Commands() {
		t.Run(cmd.Name, func(t *testing.T) {
			s := session.New(reg)
			require.True(t, submit(s, cmd.Name))

			want := cmd.Execute(nil)
			tr := s.Transcript()
			if want.IsClear() {
				assert.Empty(t, tr)
				return
			}
			require.GreaterOrEqual(t, len(tr), 2)
			assert.Equal(t, domain.NewEchoLine(cmd.Name), tr[len(tr)-2])
			last := tr[len(tr)-1]
			assert.Equal(t, domain.LineResult, last.Kind)
			assert.Equal(t, want.Lines, last.Lines)
		})
	}
}

func TestSubmit_HelpIsIdempotent(t *testing.T) {
	s := newSession(t)
	start := len(s.Transcript())

	require.True(t, submit(s, "help"))
	require.True(t, submit(s, "help"))

	tr := s.Transcript()[start:]
	require.Len(t, tr, 4)
	assert.Equal(t, tr[0], tr[2], "echo lines")
	assert.True(t, tr[2].IsCommand())
	assert.Equal(t, tr[1], tr[3], "help output")
	assert.Equal(t, commands.HelpLines(s.Registry()), tr[3].Lines)
}

func TestSubmit_HelpClearUnknownScenario(t *testing.T) {
	s := newSession(t)
	start := len(s.Transcript())

	require.True(t, submit(s, "help"))
	tr := s.Transcript()[start:]
	require.Len(t, tr, 2)
	assert.Equal(t, []string{"$ help"}, tr[0].Lines)
	help := tr[1].Text()
	for _, cmd := range s.Registry().Commands() {
		assert.Contains(t, help, cmd.Name)
		assert.Contains(t, help, cmd.Description)
	}

	require.True(t, submit(s, "clear"))
	assert.Len(t, s.Transcript(), 0)

	require.True(t, submit(s, "xyz"))
	tr = s.Transcript()
	require.Len(t, tr, 2)
	assert.Equal(t, []string{"$ xyz"}, tr[0].Lines)
	assert.True(t, tr[1].IsError())
	assert.Contains(t, tr[1].Text(), "Command not found: xyz")
}

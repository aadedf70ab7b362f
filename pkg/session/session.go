package session

import (
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kyriakid1s/portfolio/internal/logging"
	"github.com/kyriakid1s/portfolio/pkg/domain"
	"github.com/kyriakid1s/portfolio/pkg/registry"
)

// WelcomeLines greet every new session.
var WelcomeLines = []string{
	"Welcome to my developer terminal!",
	`Type "help" to begin`,
	"Press Tab to auto complete commands",
}

// State is derived from the input buffer.
type State int

const (
	StateIdle    State = iota // Buffer is empty
	StateEditing              // Buffer holds text
)

func (s State) String() string {
	if s == StateEditing {
		return "editing"
	}
	return "idle"
}

// Session is one terminal instance.
type Session struct {
	id       string
	registry *registry.Registry
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
	now      func() time.Time

	transcript []domain.OutputLine
	input      string
	focused    bool
	fullscreen bool
	closed     bool
	revision   uint64
}

// Option configures a Session.
type Option func(*Session)

// WithID sets the session ID reported in events. Defaults to a random UUID.
func WithID(id string) Option {
	return func(s *Session) {
		s.id = id
	}
}

// WithHooks registers lifecycle callbacks.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(s *Session) {
		s.hooks = s.hooks.Merge(hooks)
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithClock overrides the event timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// New creates an unfocused session seeded with one entry per welcome line.
func New(reg *registry.Registry, opts ...Option) *Session {
	s := &Session{
		id:       uuid.NewString(),
		registry: reg,
		logger:   logging.NewNop(),
		now:      time.Now,
	}
	for _, line := range WelcomeLines {
		s.transcript = append(s.transcript, domain.NewResultLine(line))
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Registry returns the command set the session resolves against.
func (s *Session) Registry() *registry.Registry { return s.registry }

// SetInput replaces the input buffer. It never touches the transcript.
func (s *Session) SetInput(text string) {
	s.input = text
}

// Input returns the current buffer.
func (s *Session) Input() string { return s.input }

// State reports whether the user is editing.
func (s *Session) State() State {
	if s.input == "" {
		return StateIdle
	}
	return StateEditing
}

// Suggestions returns the commands completing the buffer, in registry order.
func (s *Session) Suggestions() []string {
	return s.registry.Suggest(s.input)
}

// Submit resolves and executes the buffer.
// It reports false, leaving everything untouched, when the buffer is blank.
func (s *Session) Submit() bool {
	raw := s.input
	if strings.TrimSpace(raw) == "" {
		return false
	}

	s.append(domain.NewEchoLine(raw))

	fields := strings.Fields(raw)
	name := strings.ToLower(fields[0])
	args := fields[1:]

	cmd, found := s.registry.Lookup(name)
	s.logger.Debug("command", "session_id", s.id, "name", name, "args", len(args), "found", found)
	if s.hooks.OnCommand != nil {
		s.hooks.OnCommand(&domain.CommandEvent{
			EventBase: s.event(domain.EventCommand),
			Name:      name,
			Args:      args,
			Found:     found,
		})
	}

	switch {
	case !found:
		s.append(domain.NewErrorLine(
			"Command not found: "+name,
			`Type "help" for available commands`,
		))
	default:
		res := cmd.Execute(args)
		if res.IsClear() {
			s.clear()
		} else {
			s.append(domain.NewResultLine(res.Lines...))
		}
	}

	s.input = ""
	return true
}

// Complete replaces the buffer with the first suggestion (Tab).
// It reports false when nothing matches.
func (s *Session) Complete() bool {
	suggestions := s.Suggestions()
	if len(suggestions) == 0 {
		return false
	}
	s.input = suggestions[0]
	return true
}

// RecallLast loads the most recent submitted command into an empty buffer (Arrow-Up).
// It reports false when the buffer is not empty or no command was submitted since
// the last clear.
func (s *Session) RecallLast() bool {
	if s.input != "" {
		return false
	}
	for i := len(s.transcript) - 1; i >= 0; i-- {
		if raw, ok := s.transcript[i].RawCommand(); ok {
			s.input = raw
			return true
		}
	}
	return false
}

// Transcript returns a copy of the entries.
func (s *Session) Transcript() []domain.OutputLine {
	return append([]domain.OutputLine(nil), s.transcript...)
}

// Revision increments on every transcript mutation.
// Hosts compare it across events to decide when to scroll to the end.
func (s *Session) Revision() uint64 { return s.revision }

func (s *Session) Focus()        { s.focused = true }
func (s *Session) Blur()         { s.focused = false }
func (s *Session) Focused() bool { return s.focused }

// ToggleFullscreen flips the maximized flag and returns the new value.
func (s *Session) ToggleFullscreen() bool {
	s.fullscreen = !s.fullscreen
	return s.fullscreen
}

func (s *Session) Fullscreen() bool { return s.fullscreen }

// Close marks the widget closed. Further submissions still work; hosts stop rendering.
func (s *Session) Close()        { s.closed = true }
func (s *Session) Closed() bool { return s.closed }

func (s *Session) append(line domain.OutputLine) {
	s.transcript = append(s.transcript, line)
	s.revision++
}

func (s *Session) clear() {
	discarded := len(s.transcript)
	s.transcript = nil
	s.revision++

	s.logger.Debug("clear", "session_id", s.id, "discarded", discarded)
	if s.hooks.OnClear != nil {
		s.hooks.OnClear(&domain.ClearEvent{
			EventBase: s.event(domain.EventClear),
			Discarded: discarded,
		})
	}
}

func (s *Session) event(t domain.EventType) domain.EventBase {
	return domain.EventBase{Timestamp: s.now(), Type: t, SessionID: s.id}
}

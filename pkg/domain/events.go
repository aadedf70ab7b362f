package domain

import (
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventCommand EventType = "command"
	EventClear   EventType = "clear"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	SessionID string    `json:"session_id"`
}

// CommandEvent describes one resolved (or unresolved) submission.
type CommandEvent struct {
	EventBase
	Name  string   `json:"name"`
	Args  []string `json:"args,omitempty"`
	Found bool     `json:"found"`
}

// ClearEvent is emitted after a session transcript was emptied.
type ClearEvent struct {
	EventBase
	Discarded int `json:"discarded"` // Entries dropped, including the echo of "clear"
}

// LifecycleHooks defines callbacks for session observability.
// Hooks run synchronously inside the submission that triggered them.
type LifecycleHooks struct {
	OnCommand func(*CommandEvent)
	OnClear   func(*ClearEvent)
}

// Merge combines two hook sets; both callbacks run, h first.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnCommand: chain(h.OnCommand, other.OnCommand),
		OnClear:   chain(h.OnClear, other.OnClear),
	}
}

func chain[E any](a, b func(*E)) func(*E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(e *E) {
		a(e)
		b(e)
	}
}

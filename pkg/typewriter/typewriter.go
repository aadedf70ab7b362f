// Package typewriter animates a scripted terminal transcript one character at a time.
//
// It is presentational only: nothing is executed and no session is involved.
// The host owns the clock and calls Step after each Delay.
package typewriter

import (
	"math/rand"
	"time"
)

const (
	CharDelayMin  = 30 * time.Millisecond
	CharDelayMax  = 50 * time.Millisecond
	ResponsePause = 300 * time.Millisecond
)

// Entry is one scripted command and the response revealed after it is typed.
type Entry struct {
	Command  string `json:"command" yaml:"command"`
	Response string `json:"response" yaml:"response"`
}

// Displayed is what the host should currently show for an entry.
type Displayed struct {
	Command      string
	Response     string
	ShowResponse bool
}

// Typewriter tracks the animation progress through a script.
type Typewriter struct {
	script []Entry
	index  int // Entry being typed
	typed  int // Runes of script[index].Command shown
	frames []Displayed
}

// New creates a typewriter positioned before the first character.
func New(script []Entry) *Typewriter {
	return &Typewriter{script: append([]Entry(nil), script...)}
}

// Done reports whether every response has been revealed.
func (t *Typewriter) Done() bool {
	return t.index >= len(t.script)
}

// Typing reports whether the next Step types a character (as opposed to revealing a response).
func (t *Typewriter) Typing() bool {
	return !t.Done() && t.typed < len([]rune(t.script[t.index].Command))
}

// Step advances the animation by one tick and reports whether anything changed.
// While the current command is incomplete it types one more rune; once complete,
// the next Step reveals its response and moves to the following entry.
func (t *Typewriter) Step() bool {
	if t.Done() {
		return false
	}
	if len(t.frames) <= t.index {
		t.frames = append(t.frames, Displayed{})
	}

	cmd := []rune(t.script[t.index].Command)
	if t.typed < len(cmd) {
		t.typed++
		t.frames[t.index].Command = string(cmd[:t.typed])
		return true
	}

	t.frames[t.index].Response = t.script[t.index].Response
	t.frames[t.index].ShowResponse = true
	t.index++
	t.typed = 0
	return true
}

// Frames returns the entries displayed so far.
func (t *Typewriter) Frames() []Displayed {
	return append([]Displayed(nil), t.frames...)
}

// Delay is how long the host waits before the next Step.
// Characters take a random 30-50ms; a response appears 300ms after its command.
func (t *Typewriter) Delay(rng *rand.Rand) time.Duration {
	if !t.Typing() {
		return ResponsePause
	}
	jitter := CharDelayMax - CharDelayMin
	if rng == nil {
		return CharDelayMin + time.Duration(rand.Int63n(int64(jitter)))
	}
	return CharDelayMin + time.Duration(rng.Int63n(int64(jitter)))
}

package domain

import "strings"

// LineKind tags a transcript entry.
type LineKind string

const (
	LineResult  LineKind = "result"  // Output of a command
	LineCommand LineKind = "command" // Echo of what the user typed
	LineError   LineKind = "error"   // Resolution failure
)

// CommandPrompt prefixes every echoed command in the transcript.
const CommandPrompt = "$ "

// OutputLine is one entry of the session transcript.
// Lines holds the payload; a single-string payload is a one-element slice.
type OutputLine struct {
	Lines []string `json:"lines"`
	Kind  LineKind `json:"kind"`
}

// NewEchoLine records a submitted command exactly as typed.
func NewEchoLine(raw string) OutputLine {
	return OutputLine{Lines: []string{CommandPrompt + raw}, Kind: LineCommand}
}

// NewResultLine wraps the lines produced by a command.
func NewResultLine(lines ...string) OutputLine {
	return OutputLine{Lines: append([]string(nil), lines...), Kind: LineResult}
}

// NewErrorLine wraps a user-facing failure.
func NewErrorLine(lines ...string) OutputLine {
	return OutputLine{Lines: append([]string(nil), lines...), Kind: LineError}
}

// IsCommand reports whether the entry echoes user input.
func (l OutputLine) IsCommand() bool { return l.Kind == LineCommand }

// IsError reports whether the entry is an error.
func (l OutputLine) IsError() bool { return l.Kind == LineError }

// Text joins the payload with newlines.
func (l OutputLine) Text() string {
	return strings.Join(l.Lines, "\n")
}

// RawCommand returns the typed input of an echo entry.
// ok is false for non-echo entries and multi-line payloads.
func (l OutputLine) RawCommand() (raw string, ok bool) {
	if !l.IsCommand() || len(l.Lines) != 1 {
		return "", false
	}
	return strings.TrimPrefix(l.Lines[0], CommandPrompt), true
}

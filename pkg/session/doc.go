/*
Package session implements the terminal session state machine.

A Session owns the transcript, the input buffer and the UI flags of one
terminal widget. Hosts (the bubbletea widget, the line runner, the MCP tools)
forward user events to it:

  - SetInput on every keystroke,
  - Submit on Enter,
  - Complete on Tab,
  - RecallLast on Arrow-Up.

Suggestions and View are pure projections of the current state and are never
stored. A Session is not safe for concurrent use; the owning host serializes
events.
*/
package session

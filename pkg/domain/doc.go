/*
Package domain contains the core models of the portfolio: the terminal transcript,
command results, blog posts and contact messages.

It is kept pure and free of I/O so that every host (TUI widget, line runner,
HTTP server, MCP server) shares the same vocabulary.

# Key Entities

  - Result: what a command asks for, either text to display or a transcript clear.
  - OutputLine: one transcript entry (command echo, result or error).
  - LifecycleHooks: synchronous callbacks fired by a session on every submission.
  - Post / PostSummary: a markdown blog post and its listing view.
  - ContactMessage: a visitor submission relayed by email.
*/
package domain

package domain

import "errors"

// ErrPostNotFound is returned when a post ID does not resolve to a markdown file.
var ErrPostNotFound = errors.New("post not found")

// ErrInvalidContact is returned when a contact form submission fails validation.
var ErrInvalidContact = errors.New("invalid contact message")

// ErrRateLimited is returned when a client exhausted its contact allowance.
var ErrRateLimited = errors.New("rate limit exceeded")

// ErrDuplicateCommand is returned when two commands share a name in one registry.
var ErrDuplicateCommand = errors.New("duplicate command")

// ErrInvalidCommandName is returned for empty, upper-case or whitespace command names.
var ErrInvalidCommandName = errors.New("invalid command name")

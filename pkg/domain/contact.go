package domain

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"
)

const (
	MaxContactNameLength    = 200
	MaxContactMessageLength = 10000
)

// ContactMessage is a visitor submission from the contact form.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Normalize trims surrounding whitespace from every field.
func (m ContactMessage) Normalize() ContactMessage {
	return ContactMessage{
		Name:    strings.TrimSpace(m.Name),
		Email:   strings.TrimSpace(m.Email),
		Message: strings.TrimSpace(m.Message),
	}
}

// Validate checks that the message can be relayed.
// Returned errors wrap ErrInvalidContact.
func (m ContactMessage) Validate() error {
	switch {
	case m.Name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidContact)
	case m.Email == "":
		return fmt.Errorf("%w: email is required", ErrInvalidContact)
	case m.Message == "":
		return fmt.Errorf("%w: message is required", ErrInvalidContact)
	}
	if utf8.RuneCountInString(m.Name) > MaxContactNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidContact, MaxContactNameLength)
	}
	if utf8.RuneCountInString(m.Message) > MaxContactMessageLength {
		return fmt.Errorf("%w: message exceeds %d characters", ErrInvalidContact, MaxContactMessageLength)
	}
	if strings.ContainsAny(m.Name, "\r\n") {
		return fmt.Errorf("%w: name must be a single line", ErrInvalidContact)
	}
	addr, err := mail.ParseAddress(m.Email)
	if err != nil || addr.Address != m.Email {
		return fmt.Errorf("%w: email is not a valid address", ErrInvalidContact)
	}
	return nil
}

// Package smtp relays contact form messages through an SMTP server (go-mail).
package smtp

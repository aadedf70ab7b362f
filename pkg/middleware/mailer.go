package middleware

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/kyriakid1s/portfolio/pkg/domain"
	"github.com/kyriakid1s/portfolio/pkg/ports"
)

// Middleware allows wrapping a Mailer to add behavior.
type Middleware func(ports.Mailer) ports.Mailer

// MailerFunc adapts a function to ports.Mailer.
type MailerFunc func(ctx context.Context, msg domain.ContactMessage) error

func (f MailerFunc) Send(ctx context.Context, msg domain.ContactMessage) error {
	return f(ctx, msg)
}

// Chain wraps m so the first middleware is the outermost.
func Chain(m ports.Mailer, mws ...Middleware) ports.Mailer {
	for i := len(mws) - 1; i >= 0; i-- {
		m = mws[i](m)
	}
	return m
}

// WithTimeout bounds every send by d.
func WithTimeout(d time.Duration) Middleware {
	return func(next ports.Mailer) ports.Mailer {
		return MailerFunc(func(ctx context.Context, msg domain.ContactMessage) error {
			ctx, cancel := context.WithTimeout(ctx, d)
			defer cancel()
			return next.Send(ctx, msg)
		})
	}
}

// WithLogging logs every send with the visitor address masked.
func WithLogging(logger *slog.Logger) Middleware {
	return func(next ports.Mailer) ports.Mailer {
		return MailerFunc(func(ctx context.Context, msg domain.ContactMessage) error {
			start := time.Now()
			err := next.Send(ctx, msg)
			attrs := []any{
				"from", MaskEmail(msg.Email),
				"bytes", len(msg.Message),
				"duration", time.Since(start),
			}
			if err != nil {
				logger.Error("Contact relay failed", append(attrs, "error", err)...)
				return err
			}
			logger.Info("Contact message relayed", attrs...)
			return nil
		})
	}
}

// MaskEmail keeps the first character of the local part and the domain:
// "ada@example.com" becomes "a***@example.com".
func MaskEmail(addr string) string {
	at := strings.LastIndex(addr, "@")
	if at <= 0 {
		return "***"
	}
	_, size := utf8.DecodeRuneInString(addr)
	if size >= at {
		size = at
	}
	return addr[:size] + "***" + addr[at:]
}

package smtp

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"

	"github.com/kyriakid1s/portfolio/internal/logging"
	"github.com/kyriakid1s/portfolio/pkg/domain"
	"github.com/wneessen/go-mail"
)

// Config holds the SMTP relay settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string // Envelope sender; defaults to Username
	To       string // Owner inbox; defaults to From
	TLS      string // "mandatory" (default), "opportunistic", "ssl" or "none"
}

// Mailer implements ports.Mailer over SMTP.
type Mailer struct {
	cfg    Config
	logger *slog.Logger
	send   func(ctx context.Context, m *mail.Msg) error
}

// Option configures the Mailer.
type Option func(*Mailer)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Mailer) {
		m.logger = logger
	}
}

// New creates a mailer. It does not connect until the first Send.
func New(cfg Config, opts ...Option) (*Mailer, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("smtp host is required")
	}
	if cfg.From == "" {
		cfg.From = cfg.Username
	}
	if cfg.To == "" {
		cfg.To = cfg.From
	}
	if cfg.From == "" {
		return nil, fmt.Errorf("smtp sender address is required")
	}

	m := &Mailer{
		cfg:    cfg,
		logger: logging.NewNop(),
	}
	m.send = m.dialAndSend
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Send relays a contact message to the site owner.
// Reply-To is the visitor so the owner can answer directly.
func (m *Mailer) Send(ctx context.Context, msg domain.ContactMessage) error {
	out, err := m.compose(msg)
	if err != nil {
		return err
	}
	if err := m.send(ctx, out); err != nil {
		return fmt.Errorf("smtp send failed: %w", err)
	}
	return nil
}

func (m *Mailer) compose(msg domain.ContactMessage) (*mail.Msg, error) {
	out := mail.NewMsg()
	if err := out.From(m.cfg.From); err != nil {
		return nil, fmt.Errorf("invalid sender: %w", err)
	}
	if err := out.To(m.cfg.To); err != nil {
		return nil, fmt.Errorf("invalid recipient: %w", err)
	}
	if err := out.ReplyTo(msg.Email); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidContact, err)
	}
	out.Subject(Subject(msg))
	out.SetBodyString(mail.TypeTextPlain, msg.Message)
	out.AddAlternativeString(mail.TypeTextHTML, HTMLBody(msg))
	return out, nil
}

func (m *Mailer) dialAndSend(ctx context.Context, out *mail.Msg) error {
	opts := []mail.Option{
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.Username),
		mail.WithPassword(m.cfg.Password),
	}
	switch strings.ToLower(m.cfg.TLS) {
	case "ssl":
		opts = append(opts, mail.WithSSL())
	case "opportunistic":
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	case "none":
		opts = append(opts, mail.WithTLSPolicy(mail.NoTLS))
	default:
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	}
	if m.cfg.Port > 0 {
		opts = append(opts, mail.WithPort(m.cfg.Port))
	}

	client, err := mail.NewClient(m.cfg.Host, opts...)
	if err != nil {
		return err
	}
	m.logger.Debug("Dialing SMTP server", "host", m.cfg.Host, "port", m.cfg.Port, "tls", m.cfg.TLS)
	return client.DialAndSendWithContext(ctx, out)
}

// Subject is the subject line of a relayed message.
func Subject(msg domain.ContactMessage) string {
	return fmt.Sprintf("New message from %s (%s)", msg.Name, msg.Email)
}

// HTMLBody renders the HTML alternative with every field escaped.
func HTMLBody(msg domain.ContactMessage) string {
	var b strings.Builder
	b.WriteString("<h2>New Contact Form Submission</h2>\n")
	fmt.Fprintf(&b, "<p><strong>Name:</strong> %s</p>\n", html.EscapeString(msg.Name))
	fmt.Fprintf(&b, "<p><strong>Email:</strong> %s</p>\n", html.EscapeString(msg.Email))
	b.WriteString("<p><strong>Message:</strong></p>\n")
	fmt.Fprintf(&b, "<p>%s</p>\n", strings.ReplaceAll(html.EscapeString(msg.Message), "\n", "<br>"))
	return b.String()
}

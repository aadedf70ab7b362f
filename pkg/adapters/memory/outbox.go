package memory

import (
	"context"
	"sync"

	"github.com/kyriakid1s/portfolio/pkg/domain"
)

// Outbox implements ports.Mailer by keeping messages in memory.
// It backs --mail-dry-run and tests.
type Outbox struct {
	mu       sync.Mutex
	messages []domain.ContactMessage

	// Err, when set, is returned by Send instead of recording the message.
	Err error
}

// NewOutbox creates an empty outbox.
func NewOutbox() *Outbox {
	return &Outbox{}
}

func (o *Outbox) Send(ctx context.Context, msg domain.ContactMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.Err != nil {
		return o.Err
	}
	o.messages = append(o.messages, msg)
	return nil
}

// Messages returns a copy of everything sent so far.
func (o *Outbox) Messages() []domain.ContactMessage {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]domain.ContactMessage(nil), o.messages...)
}

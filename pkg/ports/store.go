package ports

import (
	"context"
	"time"

	"github.com/kyriakid1s/portfolio/pkg/domain"
)

// PostReader defines how the site retrieves blog posts.
// This allows the storage layer (Loam, Memory) to be decoupled.
type PostReader interface {
	// ListPosts returns every post summary, newest first.
	ListPosts(ctx context.Context) ([]domain.PostSummary, error)

	// GetPost returns a full post (markdown body, no HTML).
	// Returns domain.ErrPostNotFound if the ID does not resolve.
	GetPost(ctx context.Context, id string) (*domain.Post, error)
}

// Watchable defines an interface for stores that can notify about content changes.
// This is typically used to invalidate rendered HTML in dev mode.
type Watchable interface {
	// Watch returns a channel carrying the ID of each changed post.
	Watch(ctx context.Context) (<-chan string, error)
}

// Mailer relays contact messages to the site owner.
type Mailer interface {
	Send(ctx context.Context, msg domain.ContactMessage) error
}

// RateLimiter decides whether a client may perform one more action.
type RateLimiter interface {
	// Allow consumes one unit for key. It reports false once the allowance for the
	// current window is exhausted; retryAfter is the time left in that window.
	Allow(ctx context.Context, key string) (ok bool, retryAfter time.Duration, err error)
}

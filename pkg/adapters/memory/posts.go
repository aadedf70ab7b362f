package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/kyriakid1s/portfolio/pkg/domain"
)

// PostStore implements ports.PostReader in memory.
// Safe for concurrent use.
type PostStore struct {
	mu    sync.RWMutex
	posts map[string]domain.Post
}

// NewPostStore creates a store seeded with posts, keyed by their ID.
func NewPostStore(posts ...domain.Post) *PostStore {
	s := &PostStore{posts: make(map[string]domain.Post, len(posts))}
	for _, p := range posts {
		s.posts[p.ID] = p
	}
	return s
}

// Put adds or replaces a post.
func (s *PostStore) Put(p domain.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts[p.ID] = p
}

// ListPosts returns summaries sorted by date descending, then by ID.
func (s *PostStore) ListPosts(ctx context.Context) ([]domain.PostSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.PostSummary, 0, len(s.posts))
	for _, p := range s.posts {
		out = append(out, p.PostSummary)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// GetPost returns a copy of the post without rendered HTML.
func (s *PostStore) GetPost(ctx context.Context, id string) (*domain.Post, error) {
	if id == "" || strings.ContainsAny(id, `/\`) || strings.Contains(id, "..") {
		return nil, domain.ErrPostNotFound
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.posts[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	p.HTML = ""
	return &p, nil
}

package portfolio

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/kyriakid1s/portfolio/internal/logging"
	"github.com/kyriakid1s/portfolio/internal/presentation/html"
	loamAdapter "github.com/kyriakid1s/portfolio/pkg/adapters/loam"
	"github.com/kyriakid1s/portfolio/pkg/commands"
	"github.com/kyriakid1s/portfolio/pkg/domain"
	"github.com/kyriakid1s/portfolio/pkg/ports"
	"github.com/kyriakid1s/portfolio/pkg/registry"
	"github.com/kyriakid1s/portfolio/pkg/session"
)

// MarkdownRenderer converts a post body to HTML.
type MarkdownRenderer func(markdown string) (string, error)

// Site is the high-level entry point of the portfolio.
// It ties the blog store to its renderers and builds terminal sessions.
type Site struct {
	store       ports.PostReader
	render      MarkdownRenderer
	terminal    commands.ContentRenderer
	hooks       domain.LifecycleHooks
	logger      *slog.Logger
	withoutBlog bool
	ContentDir  string

	mu    sync.RWMutex
	cache map[string]*domain.Post
	gen   map[string]uint64 // bumped by Invalidate; stale renders are not cached
}

// Option defines a functional option for configuring the Site.
type Option func(*Site)

// WithPostStore injects a custom PostReader, bypassing the default Loam initialization.
func WithPostStore(store ports.PostReader) Option {
	return func(s *Site) {
		s.store = store
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Site) {
		s.logger = logger
	}
}

// WithHooks registers observability hooks on every session the site creates.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(s *Site) {
		s.hooks = s.hooks.Merge(hooks)
	}
}

// WithMarkdownRenderer replaces the default goldmark HTML renderer.
func WithMarkdownRenderer(r MarkdownRenderer) Option {
	return func(s *Site) {
		s.render = r
	}
}

// WithTerminalRenderer sets how the read command formats posts (default: plain markdown).
func WithTerminalRenderer(r commands.ContentRenderer) Option {
	return func(s *Site) {
		s.terminal = r
	}
}

// WithoutBlog leaves the posts and read commands out of the shell.
func WithoutBlog() Option {
	return func(s *Site) {
		s.withoutBlog = true
	}
}

// New initializes a Site.
// By default, posts are read from a Loam repository at contentDir.
// If WithPostStore is provided, contentDir is only a label.
func New(contentDir string, opts ...Option) (*Site, error) {
	s := &Site{
		ContentDir: contentDir,
		cache:      make(map[string]*domain.Post),
		gen:        make(map[string]uint64),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.store == nil {
		if contentDir == "" {
			return nil, fmt.Errorf("contentDir is required when no custom post store is provided")
		}
		store, err := loamAdapter.Open(contentDir)
		if err != nil {
			return nil, err
		}
		s.store = store
	}
	if s.logger == nil {
		s.logger = logging.NewNop()
	}
	if s.render == nil {
		s.render = html.New().Render
	}
	return s, nil
}

// Store returns the underlying post reader.
func (s *Site) Store() ports.PostReader { return s.store }

// Logger returns the site logger.
func (s *Site) Logger() *slog.Logger { return s.logger }

// Posts lists post summaries, newest first.
func (s *Site) Posts(ctx context.Context) ([]domain.PostSummary, error) {
	return s.store.ListPosts(ctx)
}

// Post returns a post with its HTML body. Rendered posts are cached until invalidated.
func (s *Site) Post(ctx context.Context, id string) (*domain.Post, error) {
	s.mu.RLock()
	cached, ok := s.cache[id]
	gen := s.gen[id]
	s.mu.RUnlock()
	if ok {
		cp := *cached
		return &cp, nil
	}

	post, err := s.store.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}
	rendered, err := s.render(post.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to render post %s: %w", id, err)
	}
	post.HTML = rendered

	s.mu.Lock()
	if s.gen[id] == gen {
		s.cache[id] = post
	}
	s.mu.Unlock()

	cp := *post
	return &cp, nil
}

// Invalidate drops the cached HTML of one post.
func (s *Site) Invalidate(id string) {
	s.mu.Lock()
	delete(s.cache, id)
	s.gen[id]++
	s.mu.Unlock()
}

// Registry builds the shell command set: the built-ins, the blog commands, then extra.
func (s *Site) Registry(extra ...registry.Command) *registry.Registry {
	var cmds []registry.Command
	if !s.withoutBlog {
		cmds = append(cmds, commands.Blog(s.store, s.terminal)...)
	}
	return commands.Default(append(cmds, extra...)...)
}

// NewSession creates a terminal session wired to the site hooks and logger.
func (s *Site) NewSession(opts ...session.Option) *session.Session {
	base := []session.Option{
		session.WithLogger(s.logger),
		session.WithHooks(s.hooks),
	}
	return session.New(s.Registry(), append(base, opts...)...)
}

// Watch invalidates cached HTML whenever a post changes.
// It blocks until ctx is done. Stores that cannot watch return immediately.
func (s *Site) Watch(ctx context.Context) error {
	w, ok := s.store.(ports.Watchable)
	if !ok {
		s.logger.Debug("post store does not support watching")
		return nil
	}
	changes, err := w.Watch(ctx)
	if err != nil {
		return err
	}
	for id := range changes {
		s.logger.Info("post changed", "id", id)
		s.Invalidate(id)
	}
	return ctx.Err()
}

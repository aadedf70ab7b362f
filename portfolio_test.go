package portfolio_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/kyriakid1s/portfolio"
	"github.com/kyriakid1s/portfolio/pkg/adapters/memory"
	"github.com/kyriakid1s/portfolio/pkg/domain"
	"github.com/kyriakid1s/portfolio/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore() *memory.PostStore {
	return memory.NewPostStore(domain.Post{
		PostSummary: domain.PostSummary{ID: "hello", Title: "Hello", Date: "2024-01-01"},
		Content:     "# Hi",
	})
}

func TestSite_LoamIntegration(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "first.md"), []byte("---\ntitle: First\ndate: \"2024-02-02\"\n---\nHello **there**\n"), 0644))

	site, err := portfolio.New(dir)
	require.NoError(t, err)

	posts, err := site.Posts(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "first", posts[0].ID)

	post, err := site.Post(context.Background(), "first")
	require.NoError(t, err)
	assert.Contains(t, post.HTML, "<strong>there</strong>")
}

func TestNew_RequiresContent(t *testing.T) {
	_, err := portfolio.New("")
	assert.Error(t, err)

	_, err = portfolio.New(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestSite_PostCache(t *testing.T) {
	calls := 0
	render := func(md string) (string, error) {
		calls++
		return "<p>" + md + "</p>", nil
	}
	store := newStore()
	site, err := portfolio.New("", portfolio.WithPostStore(store), portfolio.WithMarkdownRenderer(render))
	require.NoError(t, err)
	ctx := context.Background()

	p1, err := site.Post(ctx, "hello")
	require.NoError(t, err)
	p1.HTML = "mutated"

	p2, err := site.Post(ctx, "hello")
	require.NoError(t, err)
	assert.Equal(t, "<p># Hi</p>", p2.HTML)
	assert.Equal(t, 1, calls)

	store.Put(domain.Post{PostSummary: domain.PostSummary{ID: "hello"}, Content: "changed"})
	site.Invalidate("hello")
	p3, err := site.Post(ctx, "hello")
	require.NoError(t, err)
	assert.Equal(t, "<p>changed</p>", p3.HTML)
	assert.Equal(t, 2, calls)
}

// gatedStore blocks the first GetPost after fetching, until release is closed.
type gatedStore struct {
	*memory.PostStore
	once    sync.Once
	fetched chan struct{}
	release chan struct{}
}

func (g *gatedStore) GetPost(ctx context.Context, id string) (*domain.Post, error) {
	post, err := g.PostStore.GetPost(ctx, id)
	g.once.Do(func() {
		close(g.fetched)
		<-g.release
	})
	return post, err
}

func TestSite_InvalidateDuringRender(t *testing.T) {
	store := &gatedStore{
		PostStore: memory.NewPostStore(domain.Post{PostSummary: domain.PostSummary{ID: "p"}, Content: "old"}),
		fetched:   make(chan struct{}),
		release:   make(chan struct{}),
	}
	site, err := portfolio.New("", portfolio.WithPostStore(store),
		portfolio.WithMarkdownRenderer(func(md string) (string, error) { return md, nil }))
	require.NoError(t, err)

	done := make(chan *domain.Post)
	go func() {
		post, err := site.Post(context.Background(), "p")
		assert.NoError(t, err)
		done <- post
	}()

	<-store.fetched
	store.Put(domain.Post{PostSummary: domain.PostSummary{ID: "p"}, Content: "new"})
	site.Invalidate("p")
	close(store.release)

	inFlight := <-done
	require.NotNil(t, inFlight)
	assert.Equal(t, "old", inFlight.HTML)

	post, err := site.Post(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, "new", post.HTML)

	// Once nothing races, renders are cached again.
	store.Put(domain.Post{PostSummary: domain.PostSummary{ID: "p"}, Content: "newer"})
	post, err = site.Post(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, "new", post.HTML)
}

func TestSite_PostErrors(t *testing.T) {
	site, err := portfolio.New("", portfolio.WithPostStore(newStore()),
		portfolio.WithMarkdownRenderer(func(string) (string, error) { return "", errors.New("bad markdown") }))
	require.NoError(t, err)

	_, err = site.Post(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrPostNotFound)

	_, err = site.Post(context.Background(), "hello")
	assert.ErrorContains(t, err, "bad markdown")
}

func TestSite_Registry(t *testing.T) {
	site, err := portfolio.New("", portfolio.WithPostStore(newStore()))
	require.NoError(t, err)

	extra := registry.Command{Name: "ping", Execute: func([]string) domain.Result { return domain.Text("pong") }}
	assert.Equal(t, []string{"help", "about", "skills", "contact", "clear", "sudo", "posts", "read", "ping"}, site.Registry(extra).Names())

	bare, err := portfolio.New("", portfolio.WithPostStore(newStore()), portfolio.WithoutBlog())
	require.NoError(t, err)
	assert.Equal(t, 6, bare.Registry().Len())
}

func TestSite_SessionHooks(t *testing.T) {
	var names []string
	site, err := portfolio.New("", portfolio.WithPostStore(newStore()), portfolio.WithHooks(domain.LifecycleHooks{
		OnCommand: func(e *domain.CommandEvent) { names = append(names, e.Name) },
	}))
	require.NoError(t, err)

	s := site.NewSession()
	s.SetInput("read hello")
	require.True(t, s.Submit())

	assert.Equal(t, []string{"read"}, names)
	last := s.Transcript()[4]
	assert.Equal(t, "Hello", last.Lines[0])
	assert.Contains(t, last.Lines, "# Hi")
}

func TestSite_WatchUnsupported(t *testing.T) {
	site, err := portfolio.New("", portfolio.WithPostStore(newStore()))
	require.NoError(t, err)
	assert.NoError(t, site.Watch(context.Background()))
}

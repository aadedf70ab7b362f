package ports

import (
	"context"
	"testing"
	"time"

	"github.com/kyriakid1s/portfolio/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ContractPosts is the fixture every PostReader contract run must be seeded with.
// The map key is the post ID; dates are deliberately out of order.
var ContractPosts = map[string]domain.Post{
	"hello-world": {
		PostSummary: domain.PostSummary{ID: "hello-world", Title: "Hello World", Date: "2024-01-10", Excerpt: "First post"},
		Content:     "# Hello\n\nFirst post body.",
	},
	"go-generics": {
		PostSummary: domain.PostSummary{ID: "go-generics", Title: "Go Generics", Date: "2024-06-01"},
		Content:     "Generics are here.",
	},
	"older": {
		PostSummary: domain.PostSummary{ID: "older", Title: "Older", Date: "2023-03-15"},
		Content:     "Old news.",
	},
}

// RunPostReaderContract verifies that a PostReader seeded with ContractPosts
// adheres to the interface contract.
func RunPostReaderContract(t *testing.T, reader PostReader) {
	ctx := context.Background()

	t.Run("List is sorted newest first", func(t *testing.T) {
		posts, err := reader.ListPosts(ctx)
		require.NoError(t, err)
		require.Len(t, posts, len(ContractPosts))

		ids := make([]string, len(posts))
		for i, p := range posts {
			ids[i] = p.ID
		}
		assert.Equal(t, []string{"go-generics", "hello-world", "older"}, ids)
	})

	t.Run("Summary carries front matter", func(t *testing.T) {
		posts, err := reader.ListPosts(ctx)
		require.NoError(t, err)
		for _, p := range posts {
			if p.ID == "hello-world" {
				assert.Equal(t, "Hello World", p.Title)
				assert.Equal(t, "2024-01-10", p.Date)
				assert.Equal(t, "First post", p.Excerpt)
			}
		}
	})

	t.Run("Get returns body", func(t *testing.T) {
		post, err := reader.GetPost(ctx, "hello-world")
		require.NoError(t, err)
		assert.Equal(t, "hello-world", post.ID)
		assert.Equal(t, "Hello World", post.Title)
		assert.Contains(t, post.Content, "First post body.")
		assert.Empty(t, post.HTML, "readers never render")
	})

	t.Run("Missing post", func(t *testing.T) {
		_, err := reader.GetPost(ctx, "does-not-exist")
		assert.ErrorIs(t, err, domain.ErrPostNotFound)
	})

	t.Run("Path traversal", func(t *testing.T) {
		for _, id := range []string{"../secret", "a/b", "", ".."} {
			_, err := reader.GetPost(ctx, id)
			assert.ErrorIs(t, err, domain.ErrPostNotFound, "id %q", id)
		}
	})
}

// RunRateLimiterContract verifies a RateLimiter configured with limit 2 per window.
// advance moves the limiter clock past the window.
func RunRateLimiterContract(t *testing.T, limiter RateLimiter, advance func(time.Duration), window time.Duration) {
	ctx := context.Background()
	key := "contract-" + time.Now().Format("150405.000000")

	ok, _, err := limiter.Allow(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok, "first hit allowed")

	ok, _, err = limiter.Allow(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok, "second hit allowed")

	ok, retry, err := limiter.Allow(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok, "third hit denied")
	assert.Greater(t, retry, time.Duration(0))
	assert.LessOrEqual(t, retry, window)

	other, _, err := limiter.Allow(ctx, key+"-other")
	require.NoError(t, err)
	assert.True(t, other, "keys are independent")

	advance(window + time.Second)

	ok, _, err = limiter.Allow(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok, "window reset")
}

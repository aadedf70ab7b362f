package commands_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/kyriakid1s/portfolio/pkg/commands"
	"github.com/kyriakid1s/portfolio/pkg/domain"
	"github.com/kyriakid1s/portfolio/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Order(t *testing.T) {
	reg := commands.Default()
	assert.Equal(t, []string{"help", "about", "skills", "contact", "clear", "sudo"}, reg.Names())
}

func TestDefault_HelpListsEveryCommand(t *testing.T) {
	extra := registry.Command{
		Name:        "ping",
		Description: "Pong",
		Execute:     func([]string) domain.Result { return domain.Text("pong") },
	}
	reg := commands.Default(extra)

	cmd, ok := reg.Lookup("help")
	require.True(t, ok)
	res := cmd.Execute(nil)

	require.Equal(t, domain.ResultText, res.Kind)
	require.Len(t, res.Lines, reg.Len())
	assert.Equal(t, "help           Show available commands", res.Lines[0])
	assert.Equal(t, "clear          Clear the terminal", res.Lines[4])
	assert.Equal(t, "ping           Pong", res.Lines[6])
	for _, line := range res.Lines {
		assert.Equal(t, byte(' '), line[commands.HelpColumnWidth-1], "description starts at column %d: %q", commands.HelpColumnWidth, line)
	}
}

func TestDefault_Clear(t *testing.T) {
	cmd, ok := commands.Default().Lookup("clear")
	require.True(t, ok)
	assert.True(t, cmd.Execute(nil).IsClear())
}

func TestDefault_StaticCopy(t *testing.T) {
	reg := commands.Default()

	tests := []struct {
		name  string
		first string
	}{
		{"about", "Full Stack Developer"},
		{"skills", "Languages: Node.js, Python, Go, SQL, JavaScript/TypeScript, C/C++"},
		{"contact", "Email: dimitriiskyr@gmail.com"},
		{"sudo", `Permission denied: Try "contact" instead 😊`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, ok := reg.Lookup(tt.name)
			require.True(t, ok)
			res := cmd.Execute([]string{"ignored", "args"})
			assert.False(t, res.IsClear())
			require.NotEmpty(t, res.Lines)
			assert.Equal(t, tt.first, res.Lines[0])
		})
	}
}

type stubReader struct {
	posts []domain.PostSummary
	full  map[string]*domain.Post
	err   error
}

func (s *stubReader) ListPosts(ctx context.Context) ([]domain.PostSummary, error) {
	return s.posts, s.err
}

func (s *stubReader) GetPost(ctx context.Context, id string) (*domain.Post, error) {
	if s.err != nil {
		return nil, s.err
	}
	p, ok := s.full[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	return p, nil
}

func blogRegistry(store *stubReader, render commands.ContentRenderer) *registry.Registry {
	return commands.Default(commands.Blog(store, render)...)
}

func TestBlog_Posts(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		cmd, _ := blogRegistry(&stubReader{}, nil).Lookup("posts")
		assert.Equal(t, []string{"No posts yet."}, cmd.Execute(nil).Lines)
	})

	t.Run("Listing", func(t *testing.T) {
		store := &stubReader{posts: []domain.PostSummary{
			{ID: "b", Title: "Second", Date: "2024-02-01"},
			{ID: "a", Title: "First", Date: "2024-01-01"},
		}}
		cmd, _ := blogRegistry(store, nil).Lookup("posts")
		assert.Equal(t, []string{"2024-02-01  b  Second", "2024-01-01  a  First"}, cmd.Execute(nil).Lines)
	})

	t.Run("Store failure is shown, not raised", func(t *testing.T) {
		cmd, _ := blogRegistry(&stubReader{err: errors.New("disk on fire")}, nil).Lookup("posts")
		res := cmd.Execute(nil)
		require.Len(t, res.Lines, 1)
		assert.Contains(t, res.Lines[0], "disk on fire")
	})
}

func TestBlog_Read(t *testing.T) {
	store := &stubReader{full: map[string]*domain.Post{
		"hello": {
			PostSummary: domain.PostSummary{ID: "hello", Title: "Hello", Date: "2024-01-01"},
			Content:     "line one\nline two\n",
		},
	}}

	t.Run("Usage", func(t *testing.T) {
		cmd, _ := blogRegistry(store, nil).Lookup("read")
		assert.Equal(t, "Usage: read <id>", cmd.Execute(nil).Lines[0])
	})

	t.Run("Unknown", func(t *testing.T) {
		cmd, _ := blogRegistry(store, nil).Lookup("read")
		assert.Equal(t, []string{"Post not found: nope"}, cmd.Execute([]string{"nope"}).Lines)
	})

	t.Run("Plain", func(t *testing.T) {
		cmd, _ := blogRegistry(store, nil).Lookup("read")
		assert.Equal(t, []string{"Hello", "2024-01-01", "", "line one", "line two"}, cmd.Execute([]string{"hello"}).Lines)
	})

	t.Run("Rendered", func(t *testing.T) {
		upper := func(md string) (string, error) { return strings.ToUpper(md), nil }
		cmd, _ := blogRegistry(store, upper).Lookup("read")
		lines := cmd.Execute([]string{"hello"}).Lines
		assert.Equal(t, "LINE ONE", lines[3])
	})

	t.Run("Renderer failure falls back to markdown", func(t *testing.T) {
		broken := func(string) (string, error) { return "", errors.New("boom") }
		cmd, _ := blogRegistry(store, broken).Lookup("read")
		assert.Equal(t, "line one", cmd.Execute([]string{"hello"}).Lines[3])
	})
}

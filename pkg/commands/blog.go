package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kyriakid1s/portfolio/pkg/domain"
	"github.com/kyriakid1s/portfolio/pkg/ports"
	"github.com/kyriakid1s/portfolio/pkg/registry"
)

// ContentRenderer turns a markdown body into displayable text.
type ContentRenderer func(markdown string) (string, error)

// PlainText is the ContentRenderer used when no terminal renderer is available.
func PlainText(markdown string) (string, error) {
	return markdown, nil
}

// Blog returns the posts and read commands backed by store.
// A nil render falls back to PlainText.
func Blog(store ports.PostReader, render ContentRenderer) []registry.Command {
	if render == nil {
		render = PlainText
	}
	return []registry.Command{
		{
			Name:        "posts",
			Description: "List blog posts",
			Execute: func(args []string) domain.Result {
				return domain.Text(postLines(context.Background(), store)...)
			},
		},
		{
			Name:        "read",
			Description: "Read a blog post: read <id>",
			Execute: func(args []string) domain.Result {
				if len(args) == 0 {
					return domain.Text("Usage: read <id>", `Type "posts" to list post ids`)
				}
				return domain.Text(readLines(context.Background(), store, render, args[0])...)
			},
		},
	}
}

func postLines(ctx context.Context, store ports.PostReader) []string {
	posts, err := store.ListPosts(ctx)
	if err != nil {
		return []string{fmt.Sprintf("Unable to load posts: %v", err)}
	}
	if len(posts) == 0 {
		return []string{"No posts yet."}
	}
	lines := make([]string, 0, len(posts))
	for _, p := range posts {
		lines = append(lines, fmt.Sprintf("%s  %s  %s", p.Date, p.ID, p.Title))
	}
	return lines
}

func readLines(ctx context.Context, store ports.PostReader, render ContentRenderer, id string) []string {
	post, err := store.GetPost(ctx, id)
	if errors.Is(err, domain.ErrPostNotFound) {
		return []string{"Post not found: " + id}
	}
	if err != nil {
		return []string{fmt.Sprintf("Unable to load post %s: %v", id, err)}
	}

	body, err := render(post.Content)
	if err != nil {
		body = post.Content
	}

	lines := []string{post.Title, post.Date, ""}
	lines = append(lines, strings.Split(strings.TrimRight(body, "\n"), "\n")...)
	return lines
}

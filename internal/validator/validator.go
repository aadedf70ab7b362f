package validator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kyriakid1s/portfolio/pkg/ports"
)

// DateLayout is the front matter date format posts must use.
const DateLayout = "2006-01-02"

// Renderer turns a post body into HTML.
type Renderer func(markdown string) (string, error)

// ValidateContent loads every post and reports missing titles, malformed dates,
// unreadable files and bodies the renderer rejects. All problems are reported at once.
func ValidateContent(ctx context.Context, store ports.PostReader, render Renderer) error {
	posts, err := store.ListPosts(ctx)
	if err != nil {
		return fmt.Errorf("failed to list posts: %w", err)
	}

	var errors []string
	for _, summary := range posts {
		if strings.TrimSpace(summary.Title) == "" {
			errors = append(errors, fmt.Sprintf("'%s': missing title", summary.ID))
		}
		if _, err := time.Parse(DateLayout, summary.Date); err != nil {
			errors = append(errors, fmt.Sprintf("'%s': date %q is not YYYY-MM-DD", summary.ID, summary.Date))
		}

		post, err := store.GetPost(ctx, summary.ID)
		if err != nil {
			errors = append(errors, fmt.Sprintf("'%s': load error: %v", summary.ID, err))
			continue
		}
		if strings.TrimSpace(post.Content) == "" {
			errors = append(errors, fmt.Sprintf("'%s': empty body", summary.ID))
			continue
		}
		if render != nil {
			if _, err := render(post.Content); err != nil {
				errors = append(errors, fmt.Sprintf("'%s': render error: %v", summary.ID, err))
			}
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("found %d errors:\n- %s", len(errors), strings.Join(errors, "\n- "))
	}
	return nil
}

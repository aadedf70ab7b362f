package loam

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/loam"
	"github.com/kyriakid1s/portfolio/pkg/domain"
)

const postExt = ".md"

// PostStore adapts a Loam repository of markdown files to ports.PostReader.
// Only top-level .md documents are posts; the ID is the file name without extension.
type PostStore struct {
	Repo *loam.TypedRepository[PostMetadata]
	dir  string
}

// New wraps an initialized repository rooted at dir.
func New(repo *loam.TypedRepository[PostMetadata], dir string) *PostStore {
	return &PostStore{
		Repo: repo,
		dir:  dir,
	}
}

// Open initializes a read-only Loam repository over the content directory.
func Open(dir string) (*PostStore, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}
	if info, err := os.Stat(absPath); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("content directory %s is not readable", absPath)
	}

	// The site never writes posts; ReadOnly keeps Loam from creating its sandbox.
	repo, err := loam.Init(absPath,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loam: %w", err)
	}
	return New(loam.NewTypedRepository[PostMetadata](repo), absPath), nil
}

// ListPosts returns the post summaries sorted by date, newest first.
func (s *PostStore) ListPosts(ctx context.Context) ([]domain.PostSummary, error) {
	docs, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	posts := make([]domain.PostSummary, 0, len(docs))
	for _, doc := range docs {
		id, ok := postID(doc.ID)
		if !ok || !s.isPost(id) {
			continue
		}
		posts = append(posts, summary(id, doc.Data))
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date > posts[j].Date
	})
	return posts, nil
}

// GetPost loads one post by ID.
func (s *PostStore) GetPost(ctx context.Context, id string) (*domain.Post, error) {
	if !validID(id) {
		return nil, fmt.Errorf("%w: %q", domain.ErrPostNotFound, id)
	}
	// Loam resolves "id" to any extension; only the markdown file counts.
	if _, err := os.Stat(s.path(id)); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrPostNotFound, id)
		}
		return nil, err
	}

	doc, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loam get failed for %s: %w", id, err)
	}

	return &domain.Post{
		PostSummary: summary(id, doc.Data),
		Content:     strings.TrimLeft(doc.Content, "\n"),
	}, nil
}

// Watch implements ports.Watchable.
func (s *PostStore) Watch(ctx context.Context) (<-chan string, error) {
	events, err := s.Repo.Watch(ctx, "*"+postExt)
	if err != nil {
		return nil, fmt.Errorf("failed to start loam watcher: %w", err)
	}

	ch := make(chan string, 1)

	go func() {
		defer close(ch)
		for {
			select {
			case <-ctx.Done():
				return
			case evt, ok := <-events:
				if !ok {
					return
				}
				// Removed posts are forwarded too, so no existence check here.
				id, ok := postID(evt.ID)
				if !ok {
					continue
				}
				select {
				case ch <- id:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return ch, nil
}

func summary(id string, meta PostMetadata) domain.PostSummary {
	return domain.PostSummary{
		ID:      id,
		Title:   meta.Title,
		Date:    dateString(meta.Date),
		Excerpt: meta.Excerpt,
		Tags:    meta.Tags,
		Extra:   meta.Extra,
	}
}

// postID maps a Loam document ID to a post ID. Loam reports IDs without
// the extension; nested documents are not posts.
func postID(docID string) (string, bool) {
	id := trimExtension(filepath.ToSlash(docID))
	if id == "" || strings.Contains(id, "/") {
		return "", false
	}
	return id, true
}

func trimExtension(id string) string {
	return strings.TrimSuffix(id, filepath.Ext(id))
}

func (s *PostStore) path(id string) string {
	return filepath.Join(s.dir, id+postExt)
}

// isPost reports whether id is backed by a markdown file rather than
// another format Loam also understands.
func (s *PostStore) isPost(id string) bool {
	_, err := os.Stat(s.path(id))
	return err == nil
}

func validID(id string) bool {
	return id != "" && !strings.ContainsAny(id, `/\`) && !strings.Contains(id, "..")
}

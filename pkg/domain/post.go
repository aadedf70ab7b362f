package domain

// PostSummary is the listing view of a blog post (no body).
type PostSummary struct {
	ID      string         `json:"id"`
	Title   string         `json:"title"`
	Date    string         `json:"date"`
	Excerpt string         `json:"excerpt"`
	Tags    []string       `json:"tags,omitempty"`
	Extra   map[string]any `json:"extra,omitempty"`
}

// Post is a full blog post.
// Content is the markdown body without front matter; HTML is filled by the site renderer.
type Post struct {
	PostSummary
	Content string `json:"-"`
	HTML    string `json:"contentHtml,omitempty"`
}

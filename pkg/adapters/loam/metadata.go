package loam

import (
	"fmt"
	"time"
)

// PostMetadata is the front matter of a blog post.
// It uses "mapstructure" tags to match the YAML keys written by authors.
type PostMetadata struct {
	Title   string   `json:"title" mapstructure:"title"`
	Date    any      `json:"date" mapstructure:"date"`
	Excerpt string   `json:"excerpt" mapstructure:"excerpt"`
	Tags    []string `json:"tags" mapstructure:"tags"`

	// Extra collects keys the site does not interpret (cover images, series, ...).
	Extra map[string]any `json:"-" mapstructure:",remain"`
}

// dateString normalizes YAML dates. Quoted dates arrive as strings;
// unquoted ones may be decoded as time.Time.
func dateString(v any) string {
	switch d := v.(type) {
	case nil:
		return ""
	case string:
		return d
	case time.Time:
		if d.Hour() == 0 && d.Minute() == 0 && d.Second() == 0 {
			return d.Format("2006-01-02")
		}
		return d.Format(time.RFC3339)
	default:
		return fmt.Sprint(d)
	}
}

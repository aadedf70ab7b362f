package http

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/kyriakid1s/portfolio/internal/config"
	"github.com/kyriakid1s/portfolio/pkg/domain"
	"github.com/kyriakid1s/portfolio/pkg/session"
)

//go:embed templates/*.html
var templateFS embed.FS

// recentPosts is how many summaries the home page lists.
const recentPosts = 3

var pageNames = []string{"home", "about", "projects", "blog", "post", "contact", "not_found"}

type pageData struct {
	Site    config.Site
	Title   string
	Active  string
	Welcome []string
	Posts   []domain.PostSummary
	Post    *domain.Post
	Content template.HTML
	Year    int
}

// parsePages clones the layout once per page so every page can define "content".
func parsePages() (map[string]*template.Template, error) {
	layout, err := template.ParseFS(templateFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := layout.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := t.ParseFS(templateFS, "templates/"+name+".html"); err != nil {
			return nil, fmt.Errorf("parse page %q: %w", name, err)
		}
		pages[name] = t
	}
	return pages, nil
}

func (s *Server) page(title, active string) pageData {
	return pageData{
		Site:   s.Info,
		Title:  title,
		Active: active,
		Year:   time.Now().Year(),
	}
}

// render executes into a buffer so a template failure never leaves a half-written page.
func (s *Server) render(w http.ResponseWriter, status int, name string, data pageData) {
	t, ok := s.pages[name]
	if !ok {
		http.Error(w, "Unknown page", http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		s.Logger.Error("page render failed", "page", name, "error", err)
		http.Error(w, "Render error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// HomePage handles the GET / request.
func (s *Server) HomePage(w http.ResponseWriter, r *http.Request) {
	data := s.page(s.Info.Title, "home")
	data.Welcome = session.WelcomeLines
	posts, err := s.Site.Posts(r.Context())
	if err != nil {
		s.Logger.Warn("HomePage: posts unavailable", "error", err)
	}
	if len(posts) > recentPosts {
		posts = posts[:recentPosts]
	}
	data.Posts = posts
	s.render(w, http.StatusOK, "home", data)
}

// AboutPage handles the GET /about request.
func (s *Server) AboutPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "about", s.page("About", "about"))
}

// ProjectsPage handles the GET /projects request.
func (s *Server) ProjectsPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "projects", s.page("Projects", "projects"))
}

// BlogPage handles the GET /blog request.
func (s *Server) BlogPage(w http.ResponseWriter, r *http.Request) {
	posts, err := s.Site.Posts(r.Context())
	if err != nil {
		s.Logger.Error("BlogPage failed", "error", err)
		http.Error(w, "Unable to load posts", http.StatusInternalServerError)
		return
	}
	data := s.page("Blog", "blog")
	data.Posts = posts
	s.render(w, http.StatusOK, "blog", data)
}

// PostPage handles the GET /blog/{id} request.
func (s *Server) PostPage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	post, err := s.Site.Post(r.Context(), id)
	switch {
	case errors.Is(err, domain.ErrPostNotFound):
		s.NotFoundPage(w, r)
		return
	case err != nil:
		s.Logger.Error("PostPage failed", "id", id, "error", err)
		http.Error(w, "Unable to load post", http.StatusInternalServerError)
		return
	}
	data := s.page(post.Title, "blog")
	data.Post = post
	// goldmark runs without the unsafe option, so raw HTML in posts is already dropped.
	data.Content = template.HTML(post.HTML)
	s.render(w, http.StatusOK, "post", data)
}

// ContactPage handles the GET /contact request.
func (s *Server) ContactPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "contact", s.page("Contact", "contact"))
}

// NotFoundPage renders the 404 page.
func (s *Server) NotFoundPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusNotFound, "not_found", s.page("Not found", ""))
}

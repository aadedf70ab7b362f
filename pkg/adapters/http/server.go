package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kyriakid1s/portfolio"
	"github.com/kyriakid1s/portfolio/internal/config"
	"github.com/kyriakid1s/portfolio/internal/metrics"
	"github.com/kyriakid1s/portfolio/pkg/domain"
	"github.com/kyriakid1s/portfolio/pkg/ports"
)

// AppName is reported by GET /info.
const AppName = "portfolio-http"

// Server serves the portfolio pages, the blog API and the contact relay.
type Server struct {
	Site    *portfolio.Site
	Info    config.Site
	Mailer  ports.Mailer
	Limiter ports.RateLimiter
	Metrics *metrics.Metrics
	Logger  *slog.Logger

	spec  *openapi3.T
	pages map[string]*template.Template
}

// Option configures the Server.
type Option func(*Server)

// WithSiteInfo sets the copy rendered on the HTML pages.
func WithSiteInfo(info config.Site) Option {
	return func(s *Server) {
		s.Info = info
	}
}

// WithMailer enables POST /api/send-email.
func WithMailer(m ports.Mailer) Option {
	return func(s *Server) {
		s.Mailer = m
	}
}

// WithRateLimiter throttles POST /api/send-email per client IP.
func WithRateLimiter(l ports.RateLimiter) Option {
	return func(s *Server) {
		s.Limiter = l
	}
}

// WithMetrics instruments every route and mounts GET /metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Server) {
		s.Metrics = m
	}
}

// WithLogger overrides the site logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// NewServer validates the embedded OpenAPI document and parses the page templates.
func NewServer(site *portfolio.Site, opts ...Option) (*Server, error) {
	if site == nil {
		return nil, errors.New("http: site is required")
	}
	s := &Server{
		Site:   site,
		Logger: site.Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}

	spec, err := LoadSpec(context.Background())
	if err != nil {
		return nil, err
	}
	s.spec = spec

	pages, err := parsePages()
	if err != nil {
		return nil, err
	}
	s.pages = pages
	return s, nil
}

// NewHandler creates the HTTP handler for the site.
func NewHandler(site *portfolio.Site, opts ...Option) (http.Handler, error) {
	s, err := NewServer(site, opts...)
	if err != nil {
		return nil, err
	}
	return s.Routes(), nil
}

// Routes builds the chi router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.Logger))
	r.Use(middleware.Recoverer)
	if s.Metrics != nil {
		r.Use(s.Metrics.Middleware)
		r.Method(http.MethodGet, "/metrics", s.Metrics.Handler())
	}

	r.Get("/", s.HomePage)
	r.Get("/about", s.AboutPage)
	r.Get("/projects", s.ProjectsPage)
	r.Get("/blog", s.BlogPage)
	r.Get("/blog/{id}", s.PostPage)
	r.Get("/contact", s.ContactPage)

	r.Route("/api", func(r chi.Router) {
		r.Get("/posts", s.ListPosts)
		r.Get("/posts/{id}", s.GetPost)
		r.Post("/send-email", s.SendEmail)
	})

	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(rawSpec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})
	r.NotFound(s.NotFoundPage)

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if s.spec != nil && s.spec.Info != nil {
		apiVersion = s.spec.Info.Version
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"app":         AppName,
		"version":     strings.TrimSpace(portfolio.Version),
		"api_version": apiVersion,
	})
}

// ListPosts handles the GET /api/posts request.
func (s *Server) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := s.Site.Posts(r.Context())
	if err != nil {
		s.Logger.Error("ListPosts failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Unable to load posts")
		return
	}
	if posts == nil {
		posts = []domain.PostSummary{}
	}
	writeJSON(w, http.StatusOK, posts)
}

// GetPost handles the GET /api/posts/{id} request.
func (s *Server) GetPost(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	post, err := s.Site.Post(r.Context(), id)
	switch {
	case errors.Is(err, domain.ErrPostNotFound):
		writeError(w, http.StatusNotFound, fmt.Sprintf("Post not found: %s", id))
		return
	case err != nil:
		s.Logger.Error("GetPost failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Unable to load post")
		return
	}
	writeJSON(w, http.StatusOK, post)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

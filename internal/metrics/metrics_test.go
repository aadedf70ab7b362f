package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/kyriakid1s/portfolio/pkg/domain"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHooks(t *testing.T) {
	m := New()
	hooks := m.Hooks()

	hooks.OnCommand(&domain.CommandEvent{Name: "help", Found: true})
	hooks.OnCommand(&domain.CommandEvent{Name: "help", Found: true})
	hooks.OnCommand(&domain.CommandEvent{Name: "rm", Found: false})
	hooks.OnClear(&domain.ClearEvent{Discarded: 4})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Commands.WithLabelValues("help", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Commands.WithLabelValues("unknown", "false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Clears))
}

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	m := New()
	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/blog/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, path := range []string{"/blog/a", "/blog/b"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Requests.WithLabelValues("GET", "/blog/{id}", "404")))
}

func TestHandler(t *testing.T) {
	m := New()
	m.ContactMessages.WithLabelValues("sent").Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `portfolio_contact_messages_total{outcome="sent"} 1`)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

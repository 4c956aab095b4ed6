package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bitlatte/showcase/internal/content"
)

func TestCollectorsAreIndependent(t *testing.T) {
	a := New("showcase")
	b := New("showcase")

	a.CacheHit()
	a.CacheHit()
	b.CacheMiss()

	assert.Equal(t, 2.0, testutil.ToFloat64(a.CacheHits))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.CacheHits))
	assert.Equal(t, 1.0, testutil.ToFloat64(b.CacheMisses))

	families, err := a.Registry().Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "showcase_listing_cache_hits_total")
}

func TestReloaded(t *testing.T) {
	c := New("showcase")
	sample := content.Sample()
	sample.Projects = sample.Projects[:2]

	c.Reloaded(sample)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.ContentReloads))
	assert.Equal(t, 5.0, testutil.ToFloat64(c.ContentItems.WithLabelValues("blog")))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.ContentItems.WithLabelValues("project")))
}

func TestMiddlewareUsesRoutePattern(t *testing.T) {
	c := New("showcase")
	r := chi.NewRouter()
	r.Use(c.Middleware)
	r.Get("/posts/{slug}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	r.Handle("/metrics", c.Handler())

	for _, slug := range []string{"a", "b"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/posts/"+slug, nil))
	}
	assert.Equal(t, 2.0, testutil.ToFloat64(c.HTTPRequests.WithLabelValues("GET", "/posts/{slug}", "418")))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "showcase_http_requests_total")
}

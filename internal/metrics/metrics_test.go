package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_DomainCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordUserRegistered()
	c.RecordExerciseAdded()
	c.RecordExerciseAdded()

	assert.Equal(t, 1.0, testutil.ToFloat64(c.usersRegistered))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.exercisesAdded))
}

func TestCollector_Middleware(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	r := chi.NewRouter()
	r.Use(c.Middleware)
	r.Get("/api/exercise/users", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for range 3 {
		req := httptest.NewRequest(http.MethodGet, "/api/exercise/users", nil)
		r.ServeHTTP(httptest.NewRecorder(), req)
	}
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, 3.0, testutil.ToFloat64(c.requests.WithLabelValues("/api/exercise/users", http.MethodGet, "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.requests.WithLabelValues("unmatched", http.MethodGet, "404")))
}

func TestHandler_Exposition(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordUserRegistered()

	w := httptest.NewRecorder()
	Handler(reg).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "tracker_users_registered_total 1"))
}

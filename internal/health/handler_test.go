// AngelaMos | 2026
// handler_test.go

package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

var (
	healthy   = pingFunc(func(context.Context) error { return nil })
	unhealthy = pingFunc(func(context.Context) error { return errors.New("down") })
)

func get(t *testing.T, h *Handler, path string) (*httptest.ResponseRecorder, ReadinessResponse) {
	t.Helper()

	r := chi.NewRouter()
	h.RegisterRoutes(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	var body ReadinessResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return rec, body
}

func TestReadiness(t *testing.T) {
	tests := []struct {
		name   string
		deps   []Dependency
		code   int
		status string
	}{
		{
			name:   "all healthy",
			deps:   []Dependency{{Name: "database", Checker: healthy}},
			code:   http.StatusOK,
			status: "ok",
		},
		{
			name: "optional down",
			deps: []Dependency{
				{Name: "database", Checker: healthy},
				{Name: "redis", Checker: unhealthy, Optional: true},
			},
			code:   http.StatusOK,
			status: "degraded",
		},
		{
			name: "required down",
			deps: []Dependency{
				{Name: "redis", Checker: unhealthy, Optional: true},
				{Name: "database", Checker: unhealthy},
			},
			code:   http.StatusServiceUnavailable,
			status: "unavailable",
		},
		{
			name:   "missing checker",
			deps:   []Dependency{{Name: "database"}},
			code:   http.StatusServiceUnavailable,
			status: "unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := get(t, NewHandler(tt.deps...), "/readyz")

			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, tt.status, body.Status)
			assert.Len(t, body.Checks, len(tt.deps))
		})
	}
}

func TestLivenessAndShutdown(t *testing.T) {
	h := NewHandler(Dependency{Name: "database", Checker: healthy})

	rec, body := get(t, h, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body.Status)

	h.SetShutdown(true)
	rec, body = get(t, h, "/livez")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "shutting_down", body.Status)

	rec, body = get(t, h, "/readyz")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "shutting_down", body.Status)
}

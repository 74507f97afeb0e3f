package reqlog_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/kajbondu/kajbondu-server/internal/app/system/reqlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newRouter(log *zap.Logger, seen *string) http.Handler {
	r := chi.NewRouter()
	r.Use(reqlog.Middleware(log))
	r.Get("/things/{id}", func(w http.ResponseWriter, r *http.Request) {
		*seen = reqlog.ID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	})
	return r
}

func TestMiddleware_GeneratesID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	var seen string
	h := newRouter(zap.New(core), &seen)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/things/42", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(reqlog.Header))

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "/things/{id}", fields["route"])
	assert.EqualValues(t, http.StatusTeapot, fields["status"])
	assert.Equal(t, seen, fields["request_id"])
}

func TestMiddleware_ReusesInboundID(t *testing.T) {
	var seen string
	h := newRouter(zap.NewNop(), &seen)

	req := httptest.NewRequest("GET", "/things/1", nil)
	req.Header.Set(reqlog.Header, "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", rec.Header().Get(reqlog.Header))
}

package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/kajbondu/kajbondu-server/internal/app/features/home"
	"github.com/kajbondu/kajbondu-server/internal/app/system/reqlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// newTestRouter builds the full handler over a client that never reaches a
// server. mongo.Connect is lazy, so only routes that avoid the database are
// exercised here.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	client, err := mongo.Connect(context.Background(),
		options.Client().ApplyURI("mongodb://127.0.0.1:1").SetServerSelectionTimeout(100*time.Millisecond))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	deps := DBDeps{
		KajBonduMongoClient:   client,
		KajBonduMongoDatabase: client.Database("kajBondu"),
	}
	h, err := BuildHandler(nil, validAppConfig(), deps, zap.NewNop())
	require.NoError(t, err)
	return h
}

func do(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestBuildHandler_Root(t *testing.T) {
	rec := do(newTestRouter(t), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, home.Welcome, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(reqlog.Header))
}

func TestBuildHandler_MalformedIDsRejectedBeforeStore(t *testing.T) {
	h := newTestRouter(t)

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/services/id/not-an-id", nil),
		httptest.NewRequest(http.MethodDelete, "/bookings/not-an-id", nil),
		httptest.NewRequest(http.MethodDelete, "/worker/not-an-id", nil),
	} {
		rec := do(h, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "%s %s", req.Method, req.URL.Path)
	}
}

func TestBuildHandler_BadBodiesRejectedBeforeStore(t *testing.T) {
	h := newTestRouter(t)

	for _, target := range []string{"/bookings", "/worker"} {
		req := httptest.NewRequest(http.MethodPost, target, strings.NewReader("[1,2]"))
		req.Header.Set("Content-Type", "application/json")
		rec := do(h, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestBuildHandler_UnknownRoute(t *testing.T) {
	rec := do(newTestRouter(t), httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBuildHandler_Metrics(t *testing.T) {
	h := newTestRouter(t)
	do(h, httptest.NewRequest(http.MethodGet, "/", nil))

	rec := do(h, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "kajbondu_http_requests_total")
}

func TestBuildHandler_CORSAllowedOrigin(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/services", nil)
	req.Header.Set("Origin", "https://kajbondu.web.app")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)

	rec := do(newTestRouter(t), req)

	assert.Equal(t, "https://kajbondu.web.app", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestBuildHandler_CORSUnknownOrigin(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example")

	rec := do(newTestRouter(t), req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

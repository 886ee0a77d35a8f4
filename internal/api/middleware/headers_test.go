package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chalkline/blog-api/internal/api/middleware"
	"github.com/chalkline/blog-api/internal/api/shared"
)

func traceIDFromRequest(r *http.Request) string {
	return shared.GetTraceID(r.Context())
}

func TestSecurityHeaders(t *testing.T) {
	t.Parallel()

	handler := middleware.SecurityHeaders(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	headers := rec.Header()
	assert.Equal(t, "nosniff", headers.Get("X-Content-Type-Options"))
	assert.Equal(t, "no-referrer", headers.Get("Referrer-Policy"))
	assert.Equal(t, "geolocation=()", headers.Get("Permissions-Policy"))
	assert.Equal(t, "same-origin", headers.Get("Cross-Origin-Opener-Policy"))
}

func TestTraceMiddleware(t *testing.T) {
	t.Parallel()

	var gotTraceID string
	handler := middleware.TraceMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTraceID = traceIDFromRequest(r)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.NotEmpty(t, gotTraceID)
	assert.Len(t, gotTraceID, 32)
}

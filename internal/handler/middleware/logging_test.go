//go:build unit

package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rovera-leads/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoggedRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := NewLogger(config.LogConfig{Level: "error", TimeZone: "UTC", TimeFormat: "15:04:05"})

	router := gin.New()
	router.Use(logger.LoggingMiddleware())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})
	return router
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	router := newLoggedRouter(t)

	t.Run("generates an id when the caller sends none", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		id := w.Header().Get(RequestIDHeader)
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("keeps the caller's id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "edge-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "edge-123", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "edge-123", w.Body.String())
	})

	t.Run("replaces an oversized id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, strings.Repeat("x", maxRequestIDLength+1))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		_, err := uuid.Parse(w.Header().Get(RequestIDHeader))
		assert.NoError(t, err)
	})
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		status   int
		expected slog.Level
	}{
		{name: "success", path: "/api/leads", status: http.StatusOK, expected: slog.LevelInfo},
		{name: "client error", path: "/api/leads", status: http.StatusBadRequest, expected: slog.LevelWarn},
		{name: "server error", path: "/api/leads", status: http.StatusInternalServerError, expected: slog.LevelError},
		{name: "health check", path: "/health", status: http.StatusOK, expected: slog.LevelDebug},
		{name: "failing health check", path: "/health", status: http.StatusServiceUnavailable, expected: slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, levelFor(tt.path, tt.status))
		})
	}
}

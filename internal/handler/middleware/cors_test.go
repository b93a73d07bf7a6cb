//go:build unit

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rovera-leads/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func preflight(router *gin.Engine, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodOptions, "/api/leads", nil)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestNewCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	base := config.CORSConfig{
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           time.Hour,
	}

	t.Run("listed origin gets credentials", func(t *testing.T) {
		cfg := base
		cfg.AllowOrigins = []string{"http://localhost:3000"}
		router := gin.New()
		router.Use(NewCORSMiddleware(cfg))

		w := preflight(router, "http://localhost:3000")

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("unlisted origin is refused", func(t *testing.T) {
		cfg := base
		cfg.AllowOrigins = []string{"http://localhost:3000"}
		router := gin.New()
		router.Use(NewCORSMiddleware(cfg))

		w := preflight(router, "http://evil.example")

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("wildcard drops credentials", func(t *testing.T) {
		cfg := base
		cfg.AllowOrigins = []string{"*"}
		router := gin.New()
		router.Use(NewCORSMiddleware(cfg))

		w := preflight(router, "http://anywhere.example")

		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
	})
}

func TestWithHeader(t *testing.T) {
	headers := []string{"Origin"}

	assert.Equal(t, []string{"Origin", RequestIDHeader}, withHeader(headers, RequestIDHeader))
	assert.Equal(t, []string{"Origin"}, headers)
	assert.Equal(t, []string{RequestIDHeader}, withHeader([]string{RequestIDHeader}, RequestIDHeader))
}

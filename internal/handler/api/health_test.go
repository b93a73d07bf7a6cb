//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"rovera-leads/internal/handler/api"
	"rovera-leads/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		pingErr    error
		wantCode   int
		wantStatus string
		wantDB     string
	}{
		{name: "database reachable", wantCode: http.StatusOK, wantStatus: "ok", wantDB: "ok"},
		{name: "database down", pingErr: errors.New("server selection timeout"), wantCode: http.StatusServiceUnavailable, wantStatus: "degraded", wantDB: "unreachable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/health", api.NewHealthHandler(stubPinger{err: tt.pingErr}).Check)

			rec := httptest.PerformRequest(t, router, http.MethodGet, "/health", nil, "")

			assert.Equal(t, tt.wantCode, rec.Code)
			var body map[string]string
			httptest.DecodeResponseBody(t, rec.Body, &body)
			assert.Equal(t, map[string]string{"status": tt.wantStatus, "database": tt.wantDB}, body)
		})
	}
}

//go:build unit

package middleware

import (
	"net/http"
	"testing"

	"rovera-leads/tests/common/httptest"

	"github.com/gin-gonic/gin"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Metrics())
	router.GET("/leads/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	t.Run("requests are labelled by route template", func(t *testing.T) {
		counter := httpRequestsTotal.WithLabelValues(http.MethodGet, "/leads/:id", "204")
		before := promtest.ToFloat64(counter)

		httptest.PerformRequest(t, router, http.MethodGet, "/leads/abc", nil, "")
		httptest.PerformRequest(t, router, http.MethodGet, "/leads/def", nil, "")

		assert.Equal(t, before+2, promtest.ToFloat64(counter))
	})

	t.Run("unknown routes share one label", func(t *testing.T) {
		counter := httpRequestsTotal.WithLabelValues(http.MethodGet, "unmatched", "404")
		before := promtest.ToFloat64(counter)

		httptest.PerformRequest(t, router, http.MethodGet, "/nope/1", nil, "")
		httptest.PerformRequest(t, router, http.MethodGet, "/nope/2", nil, "")

		assert.Equal(t, before+2, promtest.ToFloat64(counter))
	})

	t.Run("lead counters", func(t *testing.T) {
		anon := leadsCreated.WithLabelValues("false")
		beforeAnon := promtest.ToFloat64(anon)
		beforeDeleted := promtest.ToFloat64(leadsDeleted)

		RecordLeadCreated(false)
		RecordLeadDeleted()

		assert.Equal(t, beforeAnon+1, promtest.ToFloat64(anon))
		assert.Equal(t, beforeDeleted+1, promtest.ToFloat64(leadsDeleted))
	})
}

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"apicatalog/internal/metrics"
	"apicatalog/internal/middleware"
)

func TestMetrics_CountsByRoute(t *testing.T) {
	r := gin.New()
	r.Use(middleware.Metrics())
	r.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	ok := metrics.HTTPRequests.WithLabelValues(http.MethodGet, "/items/:id", "204")
	missing := metrics.HTTPRequests.WithLabelValues(http.MethodGet, "unmatched", "404")
	okBefore, missingBefore := testutil.ToFloat64(ok), testutil.ToFloat64(missing)

	for _, path := range []string{"/items/1", "/items/2", "/nothing"} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, path, http.NoBody)
		r.ServeHTTP(w, req)
	}

	assert.Equal(t, okBefore+2, testutil.ToFloat64(ok))
	assert.Equal(t, missingBefore+1, testutil.ToFloat64(missing))
}

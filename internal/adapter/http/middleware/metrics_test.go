package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_CountsMatchedRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Metrics())
	r.GET("/v1/bookings/:key", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("/v1/bookings/:key", http.MethodGet, "204"))
	for _, key := range []string{"-a", "-b"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/bookings/"+key, nil))
	}
	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("/v1/bookings/:key", http.MethodGet, "204"))

	if after-before != 2 {
		t.Fatalf("expected 2 requests counted under the route template, got %v", after-before)
	}
}

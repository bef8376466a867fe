package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

func TestMiddlewareRecordsRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	collector := NewCollector(reg)

	r := gin.New()
	r.Use(collector.Middleware())
	r.GET("/biodata/:id", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/metrics", Handler(reg))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/biodata/abc123", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("request failed: %d", w.Code)
	}

	scrape := httptest.NewRecorder()
	r.ServeHTTP(scrape, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := scrape.Body.String()
	if !strings.Contains(body, "biokeeper_http_requests_total") {
		t.Error("request counter missing from scrape")
	}
	// Labels use the route template, not the concrete path.
	if !strings.Contains(body, `route="/biodata/:id"`) {
		t.Errorf("expected route template label, got:\n%s", body)
	}
	if strings.Contains(body, "abc123") {
		t.Error("concrete path leaked into metric labels")
	}
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

type recordedRequest struct {
	route  string
	status int
}

type fakeObserver struct {
	seen []recordedRequest
}

func (f *fakeObserver) ObserveRequest(route string, status int, _ time.Duration) {
	f.seen = append(f.seen, recordedRequest{route: route, status: status})
}

func TestMetricsUsesRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	obs := &fakeObserver{}
	router := gin.New()
	router.Use(Metrics(obs))
	router.GET("/api/portfolio/:section", func(c *gin.Context) { c.Status(http.StatusOK) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/portfolio/skills", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	if len(obs.seen) != 2 {
		t.Fatalf("expected 2 observations, got %d", len(obs.seen))
	}
	if obs.seen[0].route != "/api/portfolio/:section" || obs.seen[0].status != http.StatusOK {
		t.Fatalf("unexpected first observation: %+v", obs.seen[0])
	}
	if obs.seen[1].route != "unmatched" || obs.seen[1].status != http.StatusNotFound {
		t.Fatalf("unexpected second observation: %+v", obs.seen[1])
	}
}

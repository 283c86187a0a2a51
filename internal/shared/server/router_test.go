package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/portfolio"
	"portfolio-backend/internal/services/health"
	"portfolio-backend/internal/shared/config"
	"portfolio-backend/internal/shared/metrics"
	"portfolio-backend/internal/statuschecks"
)

func newTestRouter(t *testing.T, cfg config.Config, rec *metrics.Recorder) *gin.Engine {
	t.Helper()
	portfolioSvc, err := portfolio.NewService()
	if err != nil {
		t.Fatalf("portfolio service: %v", err)
	}
	return NewRouter(RouterDeps{
		Config:           cfg,
		PortfolioHandler: portfolio.NewHandler(portfolioSvc),
		StatusHandler:    statuschecks.NewHandler(statuschecks.NewService(statuschecks.NewMemoryRepo(), rec)),
		HealthHandler:    health.NewHandler(health.NewService()),
		Metrics:          rec,
	})
}

func TestAddr(t *testing.T) {
	cases := map[string]string{"": ":8080", "9000": ":9000", ":7000": ":7000"}
	for in, want := range cases {
		if got := Addr(in); got != want {
			t.Fatalf("Addr(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRouterMountsAPIGroup(t *testing.T) {
	r := newTestRouter(t, config.Config{CORSAllowOrigin: []string{"*"}}, nil)

	for _, path := range []string{"/api/", "/api/profile", "/api/skills", "/api/experience", "/api/projects", "/api/health", "/api/status"} {
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, path, nil))
		if resp.Code != http.StatusOK {
			t.Fatalf("GET %s expected 200, got %d", path, resp.Code)
		}
		if resp.Header().Get("X-Request-Id") == "" {
			t.Fatalf("GET %s missing request id header", path)
		}
	}

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/profile", nil))
	if resp.Code != http.StatusNotFound {
		t.Fatalf("root-level duplicate route should not exist, got %d", resp.Code)
	}

	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if resp.Code != http.StatusNotFound {
		t.Fatalf("metrics should be absent without a recorder, got %d", resp.Code)
	}
}

func TestRouterRateLimitsStatusWrites(t *testing.T) {
	r := newTestRouter(t, config.Config{StatusRateLimit: 0.001, StatusRateBurst: 1}, nil)

	post := func() int {
		req := httptest.NewRequest(http.MethodPost, "/api/status", strings.NewReader(`{"client_name":"qa-bot"}`))
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)
		return resp.Code
	}

	if code := post(); code != http.StatusCreated {
		t.Fatalf("first write expected 201, got %d", code)
	}
	if code := post(); code != http.StatusTooManyRequests {
		t.Fatalf("second write expected 429, got %d", code)
	}

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/status", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("reads should not be limited, got %d", resp.Code)
	}
}

func TestRouterServesMetrics(t *testing.T) {
	rec := metrics.New()
	r := newTestRouter(t, config.Config{}, rec)

	req := httptest.NewRequest(http.MethodPost, "/api/status", strings.NewReader(`{"client_name":"qa-bot"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(httptest.NewRecorder(), req)
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/profile", nil))

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	body := resp.Body.String()
	for _, want := range []string{
		`portfolio_http_requests_total{route="/api/profile",status="200"} 1`,
		`portfolio_status_checks_created_total 1`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("metrics output missing %q", want)
		}
	}
}

func TestRouterCountsRecoveredPanics(t *testing.T) {
	rec := metrics.New()
	r := newTestRouter(t, config.Config{}, rec)
	r.GET("/api/boom", func(*gin.Context) { panic("boom") })

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/boom", nil))
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}

	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	want := `portfolio_http_requests_total{route="/api/boom",status="500"} 1`
	if !strings.Contains(resp.Body.String(), want) {
		t.Fatalf("metrics output missing %q", want)
	}
}

package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newStatusRouter(limiter Limiter, rule RateLimitRule) *gin.Engine {
	r := gin.New()
	api := r.Group("/api")
	api.Use(RateLimit(RateLimitConfig{
		GroupFor: StatusWriteGroup,
		Limiter:  limiter,
		Rules: map[string]RateLimitRule{
			GroupStatusWrite: rule,
		},
	}))
	api.POST("/status", func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})
	api.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestRateLimitOnlyAppliesToStatusWrites(t *testing.T) {
	gin.SetMode(gin.TestMode)
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(func() time.Time { return now })
	r := newStatusRouter(limiter, RateLimitRule{Rate: 1, Burst: 2})

	for i := 0; i < 5; i++ {
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/status", nil))
		if resp.Code != http.StatusOK {
			t.Fatalf("read request %d expected 200, got %d", i+1, resp.Code)
		}
	}

	for i := 0; i < 2; i++ {
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/api/status", strings.NewReader(`{}`)))
		if resp.Code != http.StatusCreated {
			t.Fatalf("write request %d expected 201, got %d", i+1, resp.Code)
		}
	}

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/api/status", strings.NewReader(`{}`)))
	if resp.Code != http.StatusTooManyRequests {
		t.Fatalf("write request 3 expected 429, got %d", resp.Code)
	}
}

func TestRateLimit429IncludesRetryAfter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(func() time.Time { return now })
	r := newStatusRouter(limiter, RateLimitRule{Rate: 1, Burst: 1})

	resp1 := httptest.NewRecorder()
	r.ServeHTTP(resp1, httptest.NewRequest(http.MethodPost, "/api/status", nil))
	if resp1.Code != http.StatusCreated {
		t.Fatalf("expected first request 201, got %d", resp1.Code)
	}

	resp2 := httptest.NewRecorder()
	r.ServeHTTP(resp2, httptest.NewRequest(http.MethodPost, "/api/status", nil))
	if resp2.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", resp2.Code)
	}
	if resp2.Header().Get("Retry-After") != "1" {
		t.Fatalf("expected Retry-After 1, got %q", resp2.Header().Get("Retry-After"))
	}

	var payload struct {
		Error struct {
			Code         string `json:"code"`
			RetryAfterMs int    `json:"retryAfterMs"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp2.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Error.Code != "rate_limited" {
		t.Fatalf("expected code rate_limited, got %q", payload.Error.Code)
	}
	if payload.Error.RetryAfterMs != 1000 {
		t.Fatalf("expected retryAfterMs 1000, got %d", payload.Error.RetryAfterMs)
	}
}

func TestRateLimiterRefillsOverTime(t *testing.T) {
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(func() time.Time { return now })
	rule := RateLimitRule{Rate: 2, Burst: 1}

	if ok, _ := limiter.Allow("k", rule); !ok {
		t.Fatalf("expected first call allowed")
	}
	ok, wait := limiter.Allow("k", rule)
	if ok {
		t.Fatalf("expected second call limited")
	}
	if wait != 500*time.Millisecond {
		t.Fatalf("expected 500ms wait, got %s", wait)
	}

	now = now.Add(500 * time.Millisecond)
	if ok, _ := limiter.Allow("k", rule); !ok {
		t.Fatalf("expected call allowed after refill")
	}
}

func TestRateLimiterDisabledRuleAllows(t *testing.T) {
	limiter := NewRateLimiter(nil)
	for i := 0; i < 10; i++ {
		if ok, _ := limiter.Allow("k", RateLimitRule{}); !ok {
			t.Fatalf("expected zero rule to allow")
		}
	}
}

func TestNewRedisLimiterRejectsBadURL(t *testing.T) {
	if _, err := NewRedisLimiter(context.Background(), "not-a-url"); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestRedisLimiterNilAllows(t *testing.T) {
	var l *RedisLimiter
	if ok, _ := l.Allow("k", RateLimitRule{Rate: 1, Burst: 1}); !ok {
		t.Fatalf("expected nil limiter to allow")
	}
	if err := l.Close(); err != nil {
		t.Fatalf("close nil limiter: %v", err)
	}
	if err := l.Ping(context.Background()); err == nil {
		t.Fatalf("expected ping on nil limiter to fail")
	}
}

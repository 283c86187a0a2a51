package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadyAllPassing(t *testing.T) {
	svc := NewService(
		NewCheck("status_store", func(context.Context) error { return nil }),
		nil,
	)

	ok, results := svc.Ready(context.Background())

	assert.True(t, ok)
	require.Len(t, results, 1)
	assert.Equal(t, Result{Name: "status_store", OK: true}, results[0])
}

func TestReadyReportsFailureAndTimeout(t *testing.T) {
	svc := NewService(
		NewCheck("mongo", func(context.Context) error { return errors.New("no reachable servers") }),
		NewCheck("slow", func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		}),
	)
	svc.timeout = 10 * time.Millisecond

	ok, results := svc.Ready(context.Background())

	assert.False(t, ok)
	require.Len(t, results, 2)
	assert.Equal(t, "no reachable servers", results[0].Error)
	assert.Equal(t, "timeout", results[1].Error)
}

func TestHandlerProbes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	down := true
	svc := NewService(NewCheck("status_store", func(context.Context) error {
		if down {
			return errors.New("down")
		}
		return nil
	}))
	r := gin.New()
	NewHandler(svc).RegisterRoutes(r.Group("/api"))

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if resp.Code != http.StatusOK || strings.TrimSpace(resp.Body.String()) != `{"ok":true}` {
		t.Fatalf("unexpected health response: %d %s", resp.Code, resp.Body.String())
	}

	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/ready", nil))
	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 while down, got %d", resp.Code)
	}

	down = false
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/ready", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 once up, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), `"status":"ready"`) {
		t.Fatalf("unexpected ready body: %s", resp.Body.String())
	}
}

// Package apicheck runs black-box assertions against a running portfolio API.
package apicheck

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// Checker issues requests against BaseURL (without the /api suffix).
type Checker struct {
	BaseURL    string
	Client     *http.Client
	ClientName string
}

// Result is the outcome of one named check.
type Result struct {
	Name     string        `json:"name"`
	Passed   bool          `json:"passed"`
	Error    string        `json:"error,omitempty"`
	Duration time.Duration `json:"duration"`
}

// Report collects results in run order.
type Report struct {
	Results []Result `json:"results"`
}

// Passed reports whether every check passed.
func (r Report) Passed() bool {
	for _, res := range r.Results {
		if !res.Passed {
			return false
		}
	}
	return len(r.Results) > 0
}

// Counts returns the number of passed and total checks.
func (r Report) Counts() (passed, total int) {
	for _, res := range r.Results {
		if res.Passed {
			passed++
		}
	}
	return passed, len(r.Results)
}

type check struct {
	name string
	run  func(ctx context.Context, c *Checker) error
}

var checks = []check{
	{"root", checkRoot},
	{"profile", checkProfile},
	{"skills", checkSkills},
	{"experience", checkExperience},
	{"projects", checkProjects},
	{"status_round_trip", checkStatusRoundTrip},
}

// New returns a Checker with a bounded default client.
func New(baseURL string) *Checker {
	return &Checker{
		BaseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		Client:     &http.Client{Timeout: defaultTimeout},
		ClientName: "apicheck",
	}
}

// Run executes every check. A failing check does not stop later ones.
func (c *Checker) Run(ctx context.Context) Report {
	var report Report
	for _, ch := range checks {
		start := time.Now()
		err := ch.run(ctx, c)
		res := Result{Name: ch.name, Passed: err == nil, Duration: time.Since(start)}
		if err != nil {
			res.Error = err.Error()
		}
		report.Results = append(report.Results, res)
	}
	return report
}

func (c *Checker) url(path string) string {
	return c.BaseURL + "/api" + path
}

func (c *Checker) do(ctx context.Context, method, path string, body any, wantStatus int, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.url(path), reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := c.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode != wantStatus {
		return fmt.Errorf("%s %s: expected status %d, got %d", method, path, wantStatus, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%s %s: decode json: %w", method, path, err)
	}
	return nil
}

func (c *Checker) getObject(ctx context.Context, path string) (map[string]any, error) {
	var out map[string]any
	err := c.do(ctx, http.MethodGet, path, nil, http.StatusOK, &out)
	return out, err
}

func (c *Checker) getList(ctx context.Context, path string) ([]map[string]any, error) {
	var out []map[string]any
	if err := c.do(ctx, http.MethodGet, path, nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("GET %s: expected a non-empty list", path)
	}
	return out, nil
}

func requireKeys(obj map[string]any, keys ...string) error {
	var missing []string
	for _, k := range keys {
		if _, ok := obj[k]; !ok {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

func requireValues(items []map[string]any, field string, want ...string) error {
	have := make(map[string]struct{}, len(items))
	for _, item := range items {
		if s, ok := item[field].(string); ok {
			have[s] = struct{}{}
		}
	}
	var errs []error
	for _, w := range want {
		if _, ok := have[w]; !ok {
			errs = append(errs, fmt.Errorf("missing %s %q", field, w))
		}
	}
	return errors.Join(errs...)
}

package health

import (
	"context"
	"errors"
	"time"
)

const defaultTimeout = 2 * time.Second

// Checker reports whether one dependency is reachable.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

type funcChecker struct {
	name string
	fn   func(ctx context.Context) error
}

func (f funcChecker) Name() string                    { return f.name }
func (f funcChecker) Check(ctx context.Context) error { return f.fn(ctx) }

// NewCheck adapts a ping func into a Checker.
func NewCheck(name string, fn func(ctx context.Context) error) Checker {
	return funcChecker{name: name, fn: fn}
}

// Result is the outcome of a single check.
type Result struct {
	Name  string `json:"name"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// Service encapsulates health-related checks.
type Service struct {
	checkers []Checker
	timeout  time.Duration
}

// NewService constructs a new health service.
func NewService(checkers ...Checker) *Service {
	var kept []Checker
	for _, c := range checkers {
		if c != nil {
			kept = append(kept, c)
		}
	}
	return &Service{checkers: kept, timeout: defaultTimeout}
}

// Status returns a simple liveness payload.
func (s *Service) Status() map[string]bool {
	return map[string]bool{"ok": true}
}

// Ready runs every check and reports whether all passed.
func (s *Service) Ready(ctx context.Context) (bool, []Result) {
	results := make([]Result, 0, len(s.checkers))
	ok := true
	for _, c := range s.checkers {
		checkCtx, cancel := context.WithTimeout(ctx, s.timeout)
		err := c.Check(checkCtx)
		cancel()
		res := Result{Name: c.Name(), OK: err == nil}
		if err != nil {
			ok = false
			res.Error = err.Error()
			if errors.Is(err, context.DeadlineExceeded) {
				res.Error = "timeout"
			}
		}
		results = append(results, res)
	}
	return ok, results
}

package statuschecks

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu     sync.RWMutex
	checks []StatusCheck
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (r *MemoryRepo) Insert(ctx context.Context, check StatusCheck) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checks = append(r.checks, check)
	return nil
}

func (r *MemoryRepo) List(ctx context.Context, limit int) ([]StatusCheck, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	start := 0
	if limit > 0 && len(r.checks) > limit {
		start = len(r.checks) - limit
	}
	out := make([]StatusCheck, len(r.checks)-start)
	copy(out, r.checks[start:])
	return out, nil
}

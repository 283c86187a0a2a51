package statuschecks

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Observer receives status log events; satisfied by *metrics.Recorder.
type Observer interface {
	IncStatusCheckCreated()
	IncStoreError(op string)
}

// Service implements the status log on top of a Repo.
type Service struct {
	Repo    Repo
	Metrics Observer
	Now     func() time.Time
	NewID   func() string
}

func NewService(repo Repo, metrics Observer) *Service {
	return &Service{Repo: repo, Metrics: metrics}
}

// Create stores a new status check for clientName, which may be empty, and returns it. Timestamps
// are UTC and truncated to milliseconds, the coarsest precision among the
// supported stores, so the returned record equals what List later yields.
func (s *Service) Create(ctx context.Context, clientName string) (StatusCheck, error) {
	if s == nil || s.Repo == nil {
		return StatusCheck{}, fmt.Errorf("%w: status service not configured", ErrStoreUnavailable)
	}

	check := StatusCheck{
		ID:         s.newID(),
		ClientName: clientName,
		Timestamp:  s.now().UTC().Truncate(time.Millisecond),
	}
	if err := s.Repo.Insert(ctx, check); err != nil {
		s.storeError("insert")
		return StatusCheck{}, fmt.Errorf("%w: insert status check: %w", ErrStoreUnavailable, err)
	}
	if s.Metrics != nil {
		s.Metrics.IncStatusCheckCreated()
	}
	return check, nil
}

// List returns up to DefaultListLimit of the most recent status checks.
func (s *Service) List(ctx context.Context) ([]StatusCheck, error) {
	if s == nil || s.Repo == nil {
		return nil, fmt.Errorf("%w: status service not configured", ErrStoreUnavailable)
	}
	checks, err := s.Repo.List(ctx, DefaultListLimit)
	if err != nil {
		s.storeError("list")
		return nil, fmt.Errorf("%w: list status checks: %w", ErrStoreUnavailable, err)
	}
	return checks, nil
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}

func (s *Service) storeError(op string) {
	if s.Metrics != nil {
		s.Metrics.IncStoreError(op)
	}
}

package runs

import (
	"context"

	"raildiff/core/history"

	"go.uber.org/zap"
)

// Source provides read access to recorded comparison runs.
type Source interface {
	Recent(ctx context.Context, limit int) ([]history.Run, error)
	Get(ctx context.Context, id string) (*history.Run, error)
}

// Service handles run history queries.
type Service struct {
	source Source
	logger *zap.Logger
}

// NewService creates a new runs service.
func NewService(source Source, logger *zap.Logger) *Service {
	return &Service{
		source: source,
		logger: logger,
	}
}

// Recent returns the most recent runs, newest first.
func (s *Service) Recent(ctx context.Context, limit int) ([]history.Run, error) {
	return s.source.Recent(ctx, limit)
}

// Get returns a single run by id.
func (s *Service) Get(ctx context.Context, id string) (*history.Run, error) {
	return s.source.Get(ctx, id)
}

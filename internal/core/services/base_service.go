package services

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/cyberledger/cyberledger_backend/internal/core/ports/repositories"
	"github.com/cyberledger/cyberledger_backend/internal/middleware"
)

// BaseService provides the store handle, snapshot persistence, and logging
// helpers shared by all services.
type BaseService struct {
	store     portsrepo.LedgerStoreFacade
	snapshots portsrepo.SnapshotRepositoryFacade
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// persist writes the whole current snapshot through the snapshot repository.
// Called after every mutating operation; a nil repository (tests, ephemeral
// mode) makes this a no-op. The in-memory mutation has already happened, so a
// failed save is surfaced but does not roll anything back.
func (s *BaseService) persist(ctx context.Context) error {
	if s.snapshots == nil {
		return nil
	}
	if err := s.snapshots.Save(ctx, s.store.Snapshot()); err != nil {
		s.LogError(ctx, err, "failed to persist ledger snapshot")
		return fmt.Errorf("failed to persist snapshot: %w", err)
	}
	return nil
}

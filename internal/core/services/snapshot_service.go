package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/cyberledger/cyberledger_backend/internal/apperrors"
	"github.com/cyberledger/cyberledger_backend/internal/core/domain"
	portsrepo "github.com/cyberledger/cyberledger_backend/internal/core/ports/repositories"
	portssvc "github.com/cyberledger/cyberledger_backend/internal/core/ports/services"
	"github.com/cyberledger/cyberledger_backend/internal/utils/dates"
)

type snapshotService struct {
	BaseService
}

// NewSnapshotService creates the backup export/import service.
func NewSnapshotService(store portsrepo.LedgerStoreFacade, snapshots portsrepo.SnapshotRepositoryFacade) portssvc.SnapshotSvcFacade {
	return &snapshotService{BaseService{store: store, snapshots: snapshots}}
}

// Export wraps the current state in the backup envelope.
func (s *snapshotService) Export(ctx context.Context) (*domain.Backup, error) {
	return &domain.Backup{
		Version:   domain.BackupVersion,
		Timestamp: dates.NowTimestamp(),
		Data:      s.store.Snapshot(),
	}, nil
}

// Import replaces the whole ledger state with the backup payload. Every
// transaction in the payload must be structurally sound before anything is
// touched; a bad backup leaves the current state intact.
func (s *snapshotService) Import(ctx context.Context, backup domain.Backup) error {
	for _, tx := range backup.Data.Transactions {
		if tx.ID == "" || tx.Date == "" {
			return fmt.Errorf("%w: backup contains a malformed transaction", apperrors.ErrValidation)
		}
	}
	s.store.Restore(backup.Data)
	if err := s.persist(ctx); err != nil {
		return err
	}
	s.LogInfo(ctx, "ledger restored from backup",
		"backup_version", backup.Version,
		"transactions", len(backup.Data.Transactions))
	return nil
}

// RestoreFromStorage loads the persisted snapshot into the store at startup.
// A missing snapshot means a fresh install and is not an error.
func (s *snapshotService) RestoreFromStorage(ctx context.Context) error {
	if s.snapshots == nil {
		return nil
	}
	snap, err := s.snapshots.Load(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogInfo(ctx, "no persisted snapshot, starting with an empty ledger")
			return nil
		}
		return fmt.Errorf("failed to load persisted snapshot: %w", err)
	}
	s.store.Restore(*snap)
	s.LogInfo(ctx, "ledger restored from storage", "transactions", len(snap.Transactions))
	return nil
}

package repositories

import (
	"context"

	"github.com/cyberledger/cyberledger_backend/internal/core/domain"
)

// SnapshotRepositoryFacade persists the wholesale ledger state. There is no
// incremental write path: every save replaces the previous snapshot entirely
// and the last writer wins, mirroring how the product syncs between devices.
type SnapshotRepositoryFacade interface {
	// Save overwrites the stored snapshot.
	Save(ctx context.Context, snap domain.Snapshot) error
	// Load returns the stored snapshot, or apperrors.ErrNotFound when none
	// has been saved yet.
	Load(ctx context.Context) (*domain.Snapshot, error)
}

package services

import (
	"context"

	"github.com/cyberledger/cyberledger_backend/internal/core/domain"
)

// SnapshotSvcFacade moves the whole ledger state in and out of the process.
type SnapshotSvcFacade interface {
	// Export wraps the current snapshot in a versioned backup envelope.
	Export(ctx context.Context) (*domain.Backup, error)
	// Import replaces the entire ledger state with the backup payload and
	// persists the result. The previous state is not recoverable.
	Import(ctx context.Context, backup domain.Backup) error
	// RestoreFromStorage loads the persisted snapshot into the in-memory
	// store. A missing snapshot leaves the store empty and is not an error.
	RestoreFromStorage(ctx context.Context) error
}

package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cyberledger/cyberledger_backend/internal/apperrors"
	"github.com/cyberledger/cyberledger_backend/internal/core/domain"
	portsrepo "github.com/cyberledger/cyberledger_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxSnapshotRepository persists the whole ledger state as a single jsonb row.
// There is deliberately no relational schema for transactions: the store is
// the source of truth in memory and is replaced wholesale on load, so the
// persistence layer only needs last-writer-wins snapshot semantics.
type PgxSnapshotRepository struct {
	Pool *pgxpool.Pool
}

// NewPgxSnapshotRepository creates a new repository for ledger snapshots.
func NewPgxSnapshotRepository(pool *pgxpool.Pool) portsrepo.SnapshotRepositoryFacade {
	return &PgxSnapshotRepository{Pool: pool}
}

// Ensure implementation matches interface
var _ portsrepo.SnapshotRepositoryFacade = (*PgxSnapshotRepository)(nil)

// Save overwrites the stored snapshot. The single-row upsert makes the write
// atomic; whichever writer commits last wins.
func (r *PgxSnapshotRepository) Save(ctx context.Context, snap domain.Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	query := `
		INSERT INTO ledger_snapshots (snapshot_id, payload, saved_at)
		VALUES (1, $1, $2)
		ON CONFLICT (snapshot_id) DO UPDATE SET
			payload = EXCLUDED.payload,
			saved_at = EXCLUDED.saved_at;
	`
	if _, err := r.Pool.Exec(ctx, query, payload, time.Now()); err != nil {
		return fmt.Errorf("failed to save ledger snapshot: %w", err)
	}
	return nil
}

// Load returns the stored snapshot.
func (r *PgxSnapshotRepository) Load(ctx context.Context) (*domain.Snapshot, error) {
	query := `SELECT payload FROM ledger_snapshots WHERE snapshot_id = 1;`

	var payload []byte
	err := r.Pool.QueryRow(ctx, query).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load ledger snapshot: %w", err)
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode ledger snapshot: %w", err)
	}
	return &snap, nil
}

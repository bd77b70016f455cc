package services

import (
	"context"

	"github.com/cyberledger/cyberledger_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReconciliationSvcFacade converts a user-declared "this account should read
// X" into an auditable correcting transaction. Opening balances are never
// rewritten.
type ReconciliationSvcFacade interface {
	// Reconcile appends one synthetic calibration transaction when the
	// declared balance differs from the replayed one by more than 0.01, and
	// returns it; it returns nil when the account is already within tolerance.
	Reconcile(ctx context.Context, accountID string, targetBalance decimal.Decimal) (*domain.Transaction, error)
}

package services

import (
	"context"

	"github.com/cyberledger/cyberledger_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReimbursementSvcFacade tracks expenses fronted by the user and settles them.
type ReimbursementSvcFacade interface {
	// Pending returns the unsettled reimbursable expenses and their sum.
	Pending(ctx context.Context) ([]domain.Transaction, decimal.Decimal)
	// Settle marks the expense as reimbursed and appends the compensating
	// income credit to the account it was paid from. Settling an already
	// settled transaction is rejected, never double-credited.
	Settle(ctx context.Context, txID string) (*domain.Transaction, error)
}

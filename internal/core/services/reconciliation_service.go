package services

import (
	"context"
	"fmt"

	"github.com/cyberledger/cyberledger_backend/internal/core/domain"
	portsrepo "github.com/cyberledger/cyberledger_backend/internal/core/ports/repositories"
	portssvc "github.com/cyberledger/cyberledger_backend/internal/core/ports/services"
	"github.com/cyberledger/cyberledger_backend/internal/utils/dates"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// reconcileTolerance is the largest difference between declared and replayed
// balance that counts as "already correct". Anything below it is rounding
// noise, not a missing transaction.
var reconcileTolerance = decimal.NewFromFloat(0.01)

type reconciliationService struct {
	BaseService
	balance portssvc.BalanceSvcFacade
}

// NewReconciliationService creates the account reconciliation service.
func NewReconciliationService(store portsrepo.LedgerStoreFacade, snapshots portsrepo.SnapshotRepositoryFacade, balance portssvc.BalanceSvcFacade) portssvc.ReconciliationSvcFacade {
	return &reconciliationService{BaseService: BaseService{store: store, snapshots: snapshots}, balance: balance}
}

// Reconcile brings the replayed balance to the user-declared target by
// appending one calibration transaction. The opening balance is never
// rewritten; the correction flows through the same log every replay reads.
// Calibration entries carry no category, so they never touch budget sums.
func (s *reconciliationService) Reconcile(ctx context.Context, accountID string, targetBalance decimal.Decimal) (*domain.Transaction, error) {
	current, err := s.balance.CurrentBalance(ctx, accountID)
	if err != nil {
		return nil, err
	}

	diff := targetBalance.Sub(current)
	if diff.Abs().LessThanOrEqual(reconcileTolerance) {
		return nil, nil
	}

	tx := domain.Transaction{
		ID:     uuid.NewString(),
		Amount: diff.Abs(),
		Date:   dates.Today(),
		Note:   "Balance calibration",
	}
	if diff.IsPositive() {
		tx.Type = domain.Income
		tx.ToAccountID = accountID
	} else {
		tx.Type = domain.Expense
		tx.FromAccountID = accountID
	}

	if err := s.store.Append(tx); err != nil {
		return nil, fmt.Errorf("failed to append calibration transaction: %w", err)
	}
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "account reconciled", "account_id", accountID, "adjustment", diff.String())
	return &tx, nil
}

package services

import (
	"context"
	"fmt"

	"github.com/cyberledger/cyberledger_backend/internal/apperrors"
	"github.com/cyberledger/cyberledger_backend/internal/core/domain"
	portsrepo "github.com/cyberledger/cyberledger_backend/internal/core/ports/repositories"
	portssvc "github.com/cyberledger/cyberledger_backend/internal/core/ports/services"
	"github.com/cyberledger/cyberledger_backend/internal/utils/dates"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type reimbursementService struct {
	BaseService
}

// NewReimbursementService creates the reimbursement ledger service.
func NewReimbursementService(store portsrepo.LedgerStoreFacade, snapshots portsrepo.SnapshotRepositoryFacade) portssvc.ReimbursementSvcFacade {
	return &reimbursementService{BaseService{store: store, snapshots: snapshots}}
}

// Pending lists the expenses fronted by the user that have not been paid
// back, plus their sum.
func (s *reimbursementService) Pending(ctx context.Context) ([]domain.Transaction, decimal.Decimal) {
	pending := s.store.Query(func(tx domain.Transaction) bool { return tx.IsPendingReimbursement() })
	sum := decimal.Zero
	for _, tx := range pending {
		sum = sum.Add(tx.Amount)
	}
	return pending, sum
}

// Settle marks the expense as reimbursed and credits the money back to the
// account it was paid from, dated today. The original entry keeps every
// other field; the settlement is a second event, never a balance edit. The
// store rejects a second settle of the same transaction, so the credit can
// never be appended twice.
func (s *reimbursementService) Settle(ctx context.Context, txID string) (*domain.Transaction, error) {
	original, ok := s.store.TransactionByID(txID)
	if !ok {
		return nil, fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, txID)
	}

	credit := domain.Transaction{
		ID:          uuid.NewString(),
		Type:        domain.Income,
		Amount:      original.Amount,
		ToAccountID: original.FromAccountID,
		Date:        dates.Today(),
		Note:        fmt.Sprintf("Reimbursement received: %s", original.Note),
	}
	if err := s.store.Settle(txID, credit); err != nil {
		return nil, err
	}
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "reimbursement settled", "transaction_id", txID, "credit_id", credit.ID)
	return &credit, nil
}

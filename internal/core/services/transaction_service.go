package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/cyberledger/cyberledger_backend/internal/apperrors"
	"github.com/cyberledger/cyberledger_backend/internal/core/domain"
	portsrepo "github.com/cyberledger/cyberledger_backend/internal/core/ports/repositories"
	portssvc "github.com/cyberledger/cyberledger_backend/internal/core/ports/services"
	"github.com/cyberledger/cyberledger_backend/internal/dto"
	"github.com/cyberledger/cyberledger_backend/internal/utils/dates"
	"github.com/google/uuid"
)

type transactionService struct {
	BaseService
}

// NewTransactionService creates the transaction log service.
func NewTransactionService(store portsrepo.LedgerStoreFacade, snapshots portsrepo.SnapshotRepositoryFacade) portssvc.TransactionSvcFacade {
	return &transactionService{BaseService{store: store, snapshots: snapshots}}
}

func (s *transactionService) AppendTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	tx := domain.Transaction{
		ID:             uuid.NewString(),
		Type:           req.Type,
		Amount:         req.Amount,
		CategoryID:     req.CategoryID,
		FromAccountID:  req.FromAccountID,
		ToAccountID:    req.ToAccountID,
		Date:           req.Date,
		Note:           req.Note,
		Tags:           req.Tags,
		IsReimbursable: req.IsReimbursable,
	}
	if err := tx.Validate(); err != nil {
		return nil, err
	}
	if err := s.store.Append(tx); err != nil {
		return nil, fmt.Errorf("failed to append transaction: %w", err)
	}
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "transaction appended", "transaction_id", tx.ID, "type", string(tx.Type))
	return &tx, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, txID string) error {
	if err := s.store.Delete(txID); err != nil {
		return err
	}
	if err := s.persist(ctx); err != nil {
		return err
	}
	s.LogInfo(ctx, "transaction deleted", "transaction_id", txID)
	return nil
}

// ListTransactions returns entries sorted by date descending, the whole log
// when month is empty. Ties keep append order within the same date.
func (s *transactionService) ListTransactions(ctx context.Context, month string) ([]domain.Transaction, error) {
	var txs []domain.Transaction
	if month == "" {
		txs = s.store.Transactions()
	} else {
		if !dates.IsValidMonth(month) {
			return nil, fmt.Errorf("%w: invalid month %q", apperrors.ErrValidation, month)
		}
		txs = s.store.Query(func(tx domain.Transaction) bool { return tx.InMonth(month) })
	}
	sort.SliceStable(txs, func(i, j int) bool { return txs[i].Date > txs[j].Date })
	return txs, nil
}

// AvailableMonths returns the distinct months with activity, newest first.
// The current month is always present so the UI has somewhere to land.
func (s *transactionService) AvailableMonths(ctx context.Context) []string {
	seen := map[string]bool{dates.CurrentMonth(): true}
	for _, tx := range s.store.Transactions() {
		seen[dates.MonthOf(tx.Date)] = true
	}
	months := make([]string, 0, len(seen))
	for m := range seen {
		months = append(months, m)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))
	return months
}

// FireQuickAdd appends a transaction from a stored template, dated today.
func (s *transactionService) FireQuickAdd(ctx context.Context, quickAddID string) (*domain.Transaction, error) {
	qa, ok := s.store.QuickAddByID(quickAddID)
	if !ok {
		return nil, fmt.Errorf("%w: quick add %s", apperrors.ErrNotFound, quickAddID)
	}

	note := fmt.Sprintf("Quick add: %s", qa.Name)
	var tx domain.Transaction
	switch qa.Type {
	case domain.Income:
		tx = domain.NewIncome(uuid.NewString(), qa.Amount, qa.CategoryID, qa.AccountID, dates.Today(), note)
	default:
		tx = domain.NewExpense(uuid.NewString(), qa.Amount, qa.CategoryID, qa.AccountID, dates.Today(), note)
	}
	if err := tx.Validate(); err != nil {
		return nil, err
	}
	if err := s.store.Append(tx); err != nil {
		return nil, fmt.Errorf("failed to append quick add transaction: %w", err)
	}
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "quick add fired", "quick_add_id", quickAddID, "transaction_id", tx.ID)
	return &tx, nil
}

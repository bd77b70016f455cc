package services

import (
	"context"

	"github.com/cyberledger/cyberledger_backend/internal/core/domain"
	"github.com/cyberledger/cyberledger_backend/internal/dto"
)

// TransactionSvcFacade covers the user-facing life of the transaction log:
// manual entry, quick-add firing, listing, and explicit deletion.
type TransactionSvcFacade interface {
	// AppendTransaction validates and appends a new ledger entry.
	AppendTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	// DeleteTransaction removes an entry; the next replay simply omits it.
	DeleteTransaction(ctx context.Context, txID string) error
	// ListTransactions returns entries sorted by date descending. An empty
	// month returns the whole log; otherwise only entries in that YYYY-MM.
	ListTransactions(ctx context.Context, month string) ([]domain.Transaction, error)
	// AvailableMonths returns the sorted-descending set of months with
	// activity, always including the current month.
	AvailableMonths(ctx context.Context) []string
	// FireQuickAdd appends a transaction from a stored template, dated today.
	FireQuickAdd(ctx context.Context, quickAddID string) (*domain.Transaction, error)
}

package domain

import (
	"fmt"

	"github.com/cyberledger/cyberledger_backend/internal/apperrors"
	"github.com/cyberledger/cyberledger_backend/internal/utils/dates"
	"github.com/shopspring/decimal"
)

func init() {
	// Snapshot JSON must round-trip amounts as plain numbers, matching the
	// persisted contract, not as quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// TransactionType discriminates the three transaction variants.
type TransactionType string

const (
	Expense  TransactionType = "expense"
	Income   TransactionType = "income"
	Transfer TransactionType = "transfer"
)

// Transaction is a single immutable ledger entry. Once appended, only the two
// reimbursement flags may change; every derived number in the system is
// recomputed from the full set of these records.
//
// Field presence follows the variant: expense and income carry a categoryId
// and exactly one account endpoint (from for expense, to for income);
// transfer carries both endpoints and no category.
type Transaction struct {
	ID             string          `json:"id"`
	Type           TransactionType `json:"type"`
	Amount         decimal.Decimal `json:"amount"`
	CategoryID     string          `json:"categoryId,omitempty"`
	FromAccountID  string          `json:"fromAccountId,omitempty"`
	ToAccountID    string          `json:"toAccountId,omitempty"`
	Date           string          `json:"date"` // local calendar date, YYYY-MM-DD
	Note           string          `json:"note,omitempty"`
	Tags           []string        `json:"tags,omitempty"`
	IsReimbursable bool            `json:"isReimbursable"`
	IsReimbursed   bool            `json:"isReimbursed"`
}

// NewExpense builds an expense transaction drawing from the given account.
func NewExpense(id string, amount decimal.Decimal, categoryID, fromAccountID, date, note string) Transaction {
	return Transaction{
		ID:            id,
		Type:          Expense,
		Amount:        amount,
		CategoryID:    categoryID,
		FromAccountID: fromAccountID,
		Date:          date,
		Note:          note,
	}
}

// NewIncome builds an income transaction crediting the given account.
func NewIncome(id string, amount decimal.Decimal, categoryID, toAccountID, date, note string) Transaction {
	return Transaction{
		ID:          id,
		Type:        Income,
		Amount:      amount,
		CategoryID:  categoryID,
		ToAccountID: toAccountID,
		Date:        date,
		Note:        note,
	}
}

// NewTransfer builds a transfer moving money between two accounts.
func NewTransfer(id string, amount decimal.Decimal, fromAccountID, toAccountID, date, note string) Transaction {
	return Transaction{
		ID:            id,
		Type:          Transfer,
		Amount:        amount,
		FromAccountID: fromAccountID,
		ToAccountID:   toAccountID,
		Date:          date,
		Note:          note,
	}
}

// Validate enforces the variant shape and the core invariants. It is called
// before any append; a transaction that fails validation never reaches the log.
func (t Transaction) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("%w: transaction id is required", apperrors.ErrValidation)
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive, got %s", apperrors.ErrValidation, t.Amount)
	}
	if !dates.IsValid(t.Date) {
		return fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, t.Date)
	}
	switch t.Type {
	case Expense:
		if t.CategoryID == "" {
			return fmt.Errorf("%w: expense requires a category", apperrors.ErrValidation)
		}
		if t.FromAccountID == "" || t.ToAccountID != "" {
			return fmt.Errorf("%w: expense requires exactly a source account", apperrors.ErrValidation)
		}
	case Income:
		if t.CategoryID == "" {
			return fmt.Errorf("%w: income requires a category", apperrors.ErrValidation)
		}
		if t.ToAccountID == "" || t.FromAccountID != "" {
			return fmt.Errorf("%w: income requires exactly a destination account", apperrors.ErrValidation)
		}
	case Transfer:
		if t.CategoryID != "" {
			return fmt.Errorf("%w: transfer carries no category", apperrors.ErrValidation)
		}
		if t.FromAccountID == "" || t.ToAccountID == "" {
			return fmt.Errorf("%w: transfer requires both accounts", apperrors.ErrValidation)
		}
		if t.FromAccountID == t.ToAccountID {
			return fmt.Errorf("%w: transfer endpoints must differ", apperrors.ErrValidation)
		}
	case "":
		return fmt.Errorf("%w: transaction type is required", apperrors.ErrValidation)
	default:
		return fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, t.Type)
	}
	if t.IsReimbursable && t.Type != Expense {
		return fmt.Errorf("%w: only expenses can be reimbursable", apperrors.ErrValidation)
	}
	return nil
}

// IsPendingReimbursement reports whether the transaction is money fronted by
// the user that has not been paid back yet.
func (t Transaction) IsPendingReimbursement() bool {
	return t.IsReimbursable && !t.IsReimbursed
}

// InMonth reports whether the transaction is dated inside the YYYY-MM month.
func (t Transaction) InMonth(month string) bool {
	return dates.MonthOf(t.Date) == month
}

// BeforeMonth reports whether the transaction is dated strictly before the
// YYYY-MM month. Lexical comparison is valid because dates are fixed width.
func (t Transaction) BeforeMonth(month string) bool {
	return dates.MonthOf(t.Date) < month
}

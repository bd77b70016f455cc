package dto

import (
	"github.com/cyberledger/cyberledger_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UnknownLabel is the placeholder shown when a transaction references a
// category or account that no longer exists. Historical entries stay readable
// instead of failing referential integrity.
const UnknownLabel = "unknown"

// CreateTransactionRequest is the payload for appending a ledger entry.
// Variant-specific field requirements are enforced by domain validation after
// binding.
type CreateTransactionRequest struct {
	Type           domain.TransactionType `json:"type" binding:"required,oneof=expense income transfer"`
	Amount         decimal.Decimal        `json:"amount" binding:"required"`
	CategoryID     string                 `json:"categoryId"`
	FromAccountID  string                 `json:"fromAccountId"`
	ToAccountID    string                 `json:"toAccountId"`
	Date           string                 `json:"date" binding:"required"`
	Note           string                 `json:"note"`
	Tags           []string               `json:"tags"`
	IsReimbursable bool                   `json:"isReimbursable"`
}

// TransactionResponse is a ledger entry enriched with display names.
type TransactionResponse struct {
	ID              string                 `json:"id"`
	Type            domain.TransactionType `json:"type"`
	Amount          decimal.Decimal        `json:"amount"`
	CategoryID      string                 `json:"categoryId,omitempty"`
	CategoryName    string                 `json:"categoryName,omitempty"`
	FromAccountID   string                 `json:"fromAccountId,omitempty"`
	FromAccountName string                 `json:"fromAccountName,omitempty"`
	ToAccountID     string                 `json:"toAccountId,omitempty"`
	ToAccountName   string                 `json:"toAccountName,omitempty"`
	Date            string                 `json:"date"`
	Note            string                 `json:"note,omitempty"`
	Tags            []string               `json:"tags,omitempty"`
	IsReimbursable  bool                   `json:"isReimbursable"`
	IsReimbursed    bool                   `json:"isReimbursed"`
}

// NameIndex resolves record IDs to display names for responses.
type NameIndex struct {
	Categories map[string]string
	Accounts   map[string]string
}

func (n NameIndex) category(id string) string {
	if id == "" {
		return ""
	}
	if name, ok := n.Categories[id]; ok {
		return name
	}
	return UnknownLabel
}

func (n NameIndex) account(id string) string {
	if id == "" {
		return ""
	}
	if name, ok := n.Accounts[id]; ok {
		return name
	}
	return UnknownLabel
}

// ToTransactionResponse converts a domain transaction, resolving names with
// the "unknown" fallback for dangling references.
func ToTransactionResponse(tx domain.Transaction, names NameIndex) TransactionResponse {
	return TransactionResponse{
		ID:              tx.ID,
		Type:            tx.Type,
		Amount:          tx.Amount,
		CategoryID:      tx.CategoryID,
		CategoryName:    names.category(tx.CategoryID),
		FromAccountID:   tx.FromAccountID,
		FromAccountName: names.account(tx.FromAccountID),
		ToAccountID:     tx.ToAccountID,
		ToAccountName:   names.account(tx.ToAccountID),
		Date:            tx.Date,
		Note:            tx.Note,
		Tags:            tx.Tags,
		IsReimbursable:  tx.IsReimbursable,
		IsReimbursed:    tx.IsReimbursed,
	}
}

// ToTransactionResponses converts a slice of transactions.
func ToTransactionResponses(txs []domain.Transaction, names NameIndex) []TransactionResponse {
	out := make([]TransactionResponse, len(txs))
	for i, tx := range txs {
		out[i] = ToTransactionResponse(tx, names)
	}
	return out
}

// ListTransactionsResponse carries a transaction listing plus the set of
// months that have activity (for the month selector).
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Months       []string              `json:"months"`
}

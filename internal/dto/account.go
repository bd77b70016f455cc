package dto

import (
	"github.com/cyberledger/cyberledger_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest is the payload for creating an account. Balance is the
// opening baseline and is never edited afterwards.
type CreateAccountRequest struct {
	Name    string             `json:"name" binding:"required"`
	Type    domain.AccountType `json:"type" binding:"omitempty,oneof=standard saving"`
	Balance decimal.Decimal    `json:"balance"`
}

// UpdateAccountRequest renames an account. Balance corrections go through
// reconciliation, not through this request.
type UpdateAccountRequest struct {
	Name string `json:"name" binding:"required"`
}

// ReconcileAccountRequest declares what the account should currently read.
type ReconcileAccountRequest struct {
	TargetBalance decimal.Decimal `json:"targetBalance"`
}

// AccountResponse is an account with its replayed live balance.
type AccountResponse struct {
	ID             string               `json:"id"`
	Name           string               `json:"name"`
	Type           domain.AccountType   `json:"type,omitempty"`
	Balance        decimal.Decimal      `json:"balance"`
	CurrentBalance decimal.Decimal      `json:"currentBalance"`
	Status         domain.AccountStatus `json:"status,omitempty"`
}

// ToAccountResponse converts a replayed account balance.
func ToAccountResponse(ab domain.AccountBalance) AccountResponse {
	return AccountResponse{
		ID:             ab.Account.ID,
		Name:           ab.Account.Name,
		Type:           ab.Account.Type,
		Balance:        ab.Account.Balance,
		CurrentBalance: ab.CurrentBalance,
		Status:         ab.Account.Status,
	}
}

// ToAccountResponses converts a slice of replayed balances.
func ToAccountResponses(abs []domain.AccountBalance) []AccountResponse {
	out := make([]AccountResponse, len(abs))
	for i, ab := range abs {
		out[i] = ToAccountResponse(ab)
	}
	return out
}

// ReconcileAccountResponse reports the outcome of a reconciliation.
// Adjustment is nil when the account was already within tolerance.
type ReconcileAccountResponse struct {
	Adjusted       bool                 `json:"adjusted"`
	Adjustment     *TransactionResponse `json:"adjustment,omitempty"`
	CurrentBalance decimal.Decimal      `json:"currentBalance"`
}

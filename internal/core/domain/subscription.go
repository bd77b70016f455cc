package domain

import (
	"fmt"

	"github.com/cyberledger/cyberledger_backend/internal/apperrors"
	"github.com/cyberledger/cyberledger_backend/internal/utils/dates"
	"github.com/shopspring/decimal"
)

// SubscriptionCycle is the renewal period of a subscription.
type SubscriptionCycle string

const (
	Monthly SubscriptionCycle = "monthly"
	Yearly  SubscriptionCycle = "yearly"
)

// Subscription is a configuration record for a recurring charge. Renewal is
// always user-triggered; the record only remembers when the next charge is due.
type Subscription struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Amount      decimal.Decimal   `json:"amount"`
	Cycle       SubscriptionCycle `json:"cycle"`
	NextPayDate string            `json:"nextPayDate"`
	CategoryID  string            `json:"categoryId"`
	AccountID   string            `json:"accountId"`
}

// Validate checks the subscription configuration before it is stored.
func (s Subscription) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("%w: subscription id is required", apperrors.ErrValidation)
	}
	if s.Name == "" {
		return fmt.Errorf("%w: subscription name is required", apperrors.ErrValidation)
	}
	if !s.Amount.IsPositive() {
		return fmt.Errorf("%w: subscription amount must be positive", apperrors.ErrValidation)
	}
	if s.Cycle != Monthly && s.Cycle != Yearly {
		return fmt.Errorf("%w: unknown cycle %q", apperrors.ErrValidation, s.Cycle)
	}
	if !dates.IsValid(s.NextPayDate) {
		return fmt.Errorf("%w: invalid next pay date %q", apperrors.ErrValidation, s.NextPayDate)
	}
	if s.CategoryID == "" || s.AccountID == "" {
		return fmt.Errorf("%w: subscription requires a category and an account", apperrors.ErrValidation)
	}
	return nil
}

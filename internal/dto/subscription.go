package dto

import (
	"github.com/cyberledger/cyberledger_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateSubscriptionRequest is the payload for registering a recurring charge.
type CreateSubscriptionRequest struct {
	Name        string                   `json:"name" binding:"required"`
	Amount      decimal.Decimal          `json:"amount" binding:"required"`
	Cycle       domain.SubscriptionCycle `json:"cycle" binding:"required,oneof=monthly yearly"`
	NextPayDate string                   `json:"nextPayDate" binding:"required"`
	CategoryID  string                   `json:"categoryId" binding:"required"`
	AccountID   string                   `json:"accountId" binding:"required"`
}

// SubscriptionResponse mirrors a stored subscription.
type SubscriptionResponse struct {
	ID          string                   `json:"id"`
	Name        string                   `json:"name"`
	Amount      decimal.Decimal          `json:"amount"`
	Cycle       domain.SubscriptionCycle `json:"cycle"`
	NextPayDate string                   `json:"nextPayDate"`
	CategoryID  string                   `json:"categoryId"`
	AccountID   string                   `json:"accountId"`
}

// ToSubscriptionResponse converts a subscription record.
func ToSubscriptionResponse(s domain.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		ID:          s.ID,
		Name:        s.Name,
		Amount:      s.Amount,
		Cycle:       s.Cycle,
		NextPayDate: s.NextPayDate,
		CategoryID:  s.CategoryID,
		AccountID:   s.AccountID,
	}
}

// ToSubscriptionResponses converts a slice of subscriptions.
func ToSubscriptionResponses(subs []domain.Subscription) []SubscriptionResponse {
	out := make([]SubscriptionResponse, len(subs))
	for i, s := range subs {
		out[i] = ToSubscriptionResponse(s)
	}
	return out
}

// DueSubscriptionResponse is a subscription inside the due-soon window.
type DueSubscriptionResponse struct {
	SubscriptionResponse
	DaysUntilDue int  `json:"daysUntilDue"`
	Overdue      bool `json:"overdue"`
}

// ToDueSubscriptionResponses converts due-list entries.
func ToDueSubscriptionResponses(dues []domain.SubscriptionDue) []DueSubscriptionResponse {
	out := make([]DueSubscriptionResponse, len(dues))
	for i, d := range dues {
		out[i] = DueSubscriptionResponse{
			SubscriptionResponse: ToSubscriptionResponse(d.Subscription),
			DaysUntilDue:         d.DaysUntilDue,
			Overdue:              d.DaysUntilDue < 0,
		}
	}
	return out
}

package services

import (
	"context"

	"github.com/cyberledger/cyberledger_backend/internal/core/domain"
	"github.com/cyberledger/cyberledger_backend/internal/dto"
)

// SubscriptionSvcFacade manages recurring charges. Renewal is always a user
// action; nothing here runs unattended.
type SubscriptionSvcFacade interface {
	CreateSubscription(ctx context.Context, req dto.CreateSubscriptionRequest) (*domain.Subscription, error)
	ListSubscriptions(ctx context.Context) []domain.Subscription
	DeleteSubscription(ctx context.Context, id string) error
	// DueSoon returns subscriptions whose next charge is at most 7 days away
	// or overdue by at most 365 days.
	DueSoon(ctx context.Context) ([]domain.SubscriptionDue, error)
	// Renew appends the charge as an expense dated today and advances the
	// next pay date by exactly one cycle with end-of-month clamping.
	Renew(ctx context.Context, id string) (*domain.Subscription, error)
}

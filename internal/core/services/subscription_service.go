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

// dueSoonAheadDays and dueSoonOverdueDays bound the due-list window: a
// subscription shows up to a week before its charge and stays listed as
// overdue for up to a year, after which it drops off without being touched.
const (
	dueSoonAheadDays   = 7
	dueSoonOverdueDays = 365
)

type subscriptionService struct {
	BaseService
}

// NewSubscriptionService creates the subscription scheduler service.
func NewSubscriptionService(store portsrepo.LedgerStoreFacade, snapshots portsrepo.SnapshotRepositoryFacade) portssvc.SubscriptionSvcFacade {
	return &subscriptionService{BaseService{store: store, snapshots: snapshots}}
}

func (s *subscriptionService) CreateSubscription(ctx context.Context, req dto.CreateSubscriptionRequest) (*domain.Subscription, error) {
	sub := domain.Subscription{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Amount:      req.Amount,
		Cycle:       req.Cycle,
		NextPayDate: req.NextPayDate,
		CategoryID:  req.CategoryID,
		AccountID:   req.AccountID,
	}
	if err := sub.Validate(); err != nil {
		return nil, err
	}
	s.store.SaveSubscription(sub)
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "subscription created", "subscription_id", sub.ID, "name", sub.Name)
	return &sub, nil
}

func (s *subscriptionService) ListSubscriptions(ctx context.Context) []domain.Subscription {
	return s.store.Subscriptions()
}

func (s *subscriptionService) DeleteSubscription(ctx context.Context, id string) error {
	if err := s.store.DeleteSubscription(id); err != nil {
		return err
	}
	if err := s.persist(ctx); err != nil {
		return err
	}
	s.LogInfo(ctx, "subscription deleted", "subscription_id", id)
	return nil
}

// DueSoon returns subscriptions whose next charge falls inside the window,
// most urgent first. A malformed next pay date keeps the record out of the
// due-list rather than failing the whole listing.
func (s *subscriptionService) DueSoon(ctx context.Context) ([]domain.SubscriptionDue, error) {
	today := dates.Today()
	due := []domain.SubscriptionDue{}
	for _, sub := range s.store.Subscriptions() {
		days, err := dates.DiffDays(sub.NextPayDate, today)
		if err != nil {
			s.LogError(ctx, err, "skipping subscription with malformed next pay date", "subscription_id", sub.ID)
			continue
		}
		if days >= -dueSoonOverdueDays && days <= dueSoonAheadDays {
			due = append(due, domain.SubscriptionDue{Subscription: sub, DaysUntilDue: days})
		}
	}
	sort.SliceStable(due, func(i, j int) bool { return due[i].DaysUntilDue < due[j].DaysUntilDue })
	return due, nil
}

// Renew appends the charge to the log and advances the next pay date by one
// cycle. A renewal is always an explicit user action.
func (s *subscriptionService) Renew(ctx context.Context, id string) (*domain.Subscription, error) {
	sub, ok := s.store.SubscriptionByID(id)
	if !ok {
		return nil, fmt.Errorf("%w: subscription %s", apperrors.ErrNotFound, id)
	}

	tx := domain.NewExpense(uuid.NewString(), sub.Amount, sub.CategoryID, sub.AccountID, dates.Today(), fmt.Sprintf("Subscription renewal: %s", sub.Name))
	if err := tx.Validate(); err != nil {
		return nil, err
	}

	var next string
	var err error
	if sub.Cycle == domain.Yearly {
		next, err = dates.AddYearsClamped(sub.NextPayDate, 1)
	} else {
		next, err = dates.AddMonthsClamped(sub.NextPayDate, 1)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: subscription %s has invalid next pay date: %v", apperrors.ErrValidation, id, err)
	}

	if err := s.store.Append(tx); err != nil {
		return nil, fmt.Errorf("failed to append renewal transaction: %w", err)
	}
	sub.NextPayDate = next
	s.store.SaveSubscription(sub)
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "subscription renewed", "subscription_id", id, "next_pay_date", next)
	return &sub, nil
}

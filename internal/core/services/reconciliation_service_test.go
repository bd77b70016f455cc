package services_test

import (
	"context"
	"testing"

	"github.com/cyberledger/cyberledger_backend/internal/apperrors"
	"github.com/cyberledger/cyberledger_backend/internal/core/domain"
	portssvc "github.com/cyberledger/cyberledger_backend/internal/core/ports/services"
	"github.com/cyberledger/cyberledger_backend/internal/core/services"
	"github.com/cyberledger/cyberledger_backend/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ReconciliationServiceTestSuite struct {
	suite.Suite
	store   *memory.LedgerStore
	balance portssvc.BalanceSvcFacade
	svc     portssvc.ReconciliationSvcFacade
}

func (s *ReconciliationServiceTestSuite) SetupTest() {
	s.store = memory.NewLedgerStore()
	s.balance = services.NewBalanceService(s.store)
	s.svc = services.NewReconciliationService(s.store, nil, s.balance)

	s.store.SaveAccount(domain.Account{ID: "acc-a", Name: "Checking", Balance: decimal.NewFromInt(1000)})
}

func (s *ReconciliationServiceTestSuite) TestWithinToleranceIsNoOp() {
	tx, err := s.svc.Reconcile(context.Background(), "acc-a", decimal.NewFromFloat(1000.01))
	s.Require().NoError(err)
	s.Nil(tx)
	s.Empty(s.store.Transactions())
}

func (s *ReconciliationServiceTestSuite) TestShortfallAppendsIncome() {
	tx, err := s.svc.Reconcile(context.Background(), "acc-a", decimal.NewFromFloat(1012.50))
	s.Require().NoError(err)
	s.Require().NotNil(tx)

	s.Equal(domain.Income, tx.Type)
	s.Equal("acc-a", tx.ToAccountID)
	s.True(tx.Amount.Equal(decimal.NewFromFloat(12.50)))
	s.Empty(tx.CategoryID, "calibration entries must stay out of budget sums")

	balance, err := s.balance.CurrentBalance(context.Background(), "acc-a")
	s.Require().NoError(err)
	s.True(balance.Equal(decimal.NewFromFloat(1012.50)))
}

func (s *ReconciliationServiceTestSuite) TestOverageAppendsExpense() {
	tx, err := s.svc.Reconcile(context.Background(), "acc-a", decimal.NewFromInt(950))
	s.Require().NoError(err)
	s.Require().NotNil(tx)

	s.Equal(domain.Expense, tx.Type)
	s.Equal("acc-a", tx.FromAccountID)
	s.True(tx.Amount.Equal(decimal.NewFromInt(50)))

	balance, err := s.balance.CurrentBalance(context.Background(), "acc-a")
	s.Require().NoError(err)
	s.True(balance.Equal(decimal.NewFromInt(950)))
}

func (s *ReconciliationServiceTestSuite) TestReconcileIsIdempotentAtTarget() {
	target := decimal.NewFromFloat(1200.75)

	first, err := s.svc.Reconcile(context.Background(), "acc-a", target)
	s.Require().NoError(err)
	s.Require().NotNil(first)

	second, err := s.svc.Reconcile(context.Background(), "acc-a", target)
	s.Require().NoError(err)
	s.Nil(second)
	s.Len(s.store.Transactions(), 1)
}

func (s *ReconciliationServiceTestSuite) TestUnknownAccount() {
	_, err := s.svc.Reconcile(context.Background(), "missing", decimal.NewFromInt(100))
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func TestReconciliationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReconciliationServiceTestSuite))
}

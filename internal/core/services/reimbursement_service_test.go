package services_test

import (
	"context"
	"testing"

	"github.com/cyberledger/cyberledger_backend/internal/apperrors"
	"github.com/cyberledger/cyberledger_backend/internal/core/domain"
	portssvc "github.com/cyberledger/cyberledger_backend/internal/core/ports/services"
	"github.com/cyberledger/cyberledger_backend/internal/core/services"
	"github.com/cyberledger/cyberledger_backend/internal/repositories/memory"
	"github.com/cyberledger/cyberledger_backend/internal/utils/dates"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ReimbursementServiceTestSuite struct {
	suite.Suite
	store   *memory.LedgerStore
	svc     portssvc.ReimbursementSvcFacade
	balance portssvc.BalanceSvcFacade
}

func (s *ReimbursementServiceTestSuite) SetupTest() {
	s.store = memory.NewLedgerStore()
	s.svc = services.NewReimbursementService(s.store, nil)
	s.balance = services.NewBalanceService(s.store)

	s.store.SaveAccount(domain.Account{ID: "acc-a", Name: "Checking", Balance: decimal.NewFromInt(1000)})
}

func (s *ReimbursementServiceTestSuite) appendFronted(id string, amount int64) {
	tx := domain.NewExpense(id, decimal.NewFromInt(amount), "cat-food", "acc-a", "2025-02-03", "team lunch")
	tx.IsReimbursable = true
	s.Require().NoError(s.store.Append(tx))
}

func (s *ReimbursementServiceTestSuite) TestPendingListsUnsettledOnly() {
	s.appendFronted("tx-1", 80)
	s.appendFronted("tx-2", 120)
	s.Require().NoError(s.store.Append(domain.NewExpense("tx-own", decimal.NewFromInt(30), "cat-food", "acc-a", "2025-02-04", "")))

	pending, total := s.svc.Pending(context.Background())
	s.Len(pending, 2)
	s.True(total.Equal(decimal.NewFromInt(200)))

	_, err := s.svc.Settle(context.Background(), "tx-1")
	s.Require().NoError(err)

	pending, total = s.svc.Pending(context.Background())
	s.Require().Len(pending, 1)
	s.Equal("tx-2", pending[0].ID)
	s.True(total.Equal(decimal.NewFromInt(120)))
}

func (s *ReimbursementServiceTestSuite) TestSettleCreditsOriginalAccountToday() {
	s.appendFronted("tx-1", 80)

	credit, err := s.svc.Settle(context.Background(), "tx-1")
	s.Require().NoError(err)
	s.Equal(domain.Income, credit.Type)
	s.Equal("acc-a", credit.ToAccountID)
	s.Equal(dates.Today(), credit.Date)
	s.True(credit.Amount.Equal(decimal.NewFromInt(80)))
	s.Empty(credit.CategoryID)

	original, ok := s.store.TransactionByID("tx-1")
	s.Require().True(ok)
	s.True(original.IsReimbursed)

	// Expense and credit cancel out in the replayed balance.
	balance, err := s.balance.CurrentBalance(context.Background(), "acc-a")
	s.Require().NoError(err)
	s.True(balance.Equal(decimal.NewFromInt(1000)))
}

func (s *ReimbursementServiceTestSuite) TestSettleTwiceConflicts() {
	s.appendFronted("tx-1", 80)

	_, err := s.svc.Settle(context.Background(), "tx-1")
	s.Require().NoError(err)

	_, err = s.svc.Settle(context.Background(), "tx-1")
	s.ErrorIs(err, apperrors.ErrConflict)

	credits := s.store.Query(func(tx domain.Transaction) bool { return tx.Type == domain.Income })
	s.Len(credits, 1, "double settle must never append a second credit")
}

func (s *ReimbursementServiceTestSuite) TestSettleNonReimbursable() {
	s.Require().NoError(s.store.Append(domain.NewExpense("tx-own", decimal.NewFromInt(30), "cat-food", "acc-a", "2025-02-04", "")))

	_, err := s.svc.Settle(context.Background(), "tx-own")
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *ReimbursementServiceTestSuite) TestSettleUnknownTransaction() {
	_, err := s.svc.Settle(context.Background(), "missing")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func TestReimbursementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReimbursementServiceTestSuite))
}

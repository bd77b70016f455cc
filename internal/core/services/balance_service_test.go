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

type BalanceServiceTestSuite struct {
	suite.Suite
	store *memory.LedgerStore
	svc   portssvc.BalanceSvcFacade
}

func (s *BalanceServiceTestSuite) SetupTest() {
	s.store = memory.NewLedgerStore()
	s.svc = services.NewBalanceService(s.store)

	s.store.SaveAccount(domain.Account{ID: "acc-a", Name: "Checking", Balance: decimal.NewFromInt(1000)})
	s.store.SaveAccount(domain.Account{ID: "acc-b", Name: "Savings", Type: domain.Saving, Balance: decimal.NewFromInt(5000)})
}

func (s *BalanceServiceTestSuite) TestOpeningBalanceWithoutTransactions() {
	balance, err := s.svc.CurrentBalance(context.Background(), "acc-a")
	s.Require().NoError(err)
	s.True(balance.Equal(decimal.NewFromInt(1000)))
}

func (s *BalanceServiceTestSuite) TestUnknownAccount() {
	_, err := s.svc.CurrentBalance(context.Background(), "missing")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *BalanceServiceTestSuite) TestReplayAcrossAllTransactionTypes() {
	s.Require().NoError(s.store.Append(domain.NewExpense("t1", decimal.NewFromInt(200), "cat-1", "acc-a", "2025-01-10", "")))
	s.Require().NoError(s.store.Append(domain.NewIncome("t2", decimal.NewFromInt(300), "cat-2", "acc-a", "2025-01-15", "")))
	s.Require().NoError(s.store.Append(domain.NewTransfer("t3", decimal.NewFromInt(100), "acc-a", "acc-b", "2025-01-20", "")))

	balanceA, err := s.svc.CurrentBalance(context.Background(), "acc-a")
	s.Require().NoError(err)
	s.True(balanceA.Equal(decimal.NewFromInt(1000)), "1000 - 200 + 300 - 100")

	balanceB, err := s.svc.CurrentBalance(context.Background(), "acc-b")
	s.Require().NoError(err)
	s.True(balanceB.Equal(decimal.NewFromInt(5100)))
}

func (s *BalanceServiceTestSuite) TestReplayIsOrderIndependent() {
	txs := []domain.Transaction{
		domain.NewExpense("t1", decimal.NewFromInt(50), "cat-1", "acc-a", "2025-03-01", ""),
		domain.NewIncome("t2", decimal.NewFromInt(75), "cat-2", "acc-a", "2025-01-01", ""),
		domain.NewTransfer("t3", decimal.NewFromInt(25), "acc-b", "acc-a", "2025-02-01", ""),
	}
	for _, tx := range txs {
		s.Require().NoError(s.store.Append(tx))
	}
	forward, err := s.svc.CurrentBalance(context.Background(), "acc-a")
	s.Require().NoError(err)

	reversed := memory.NewLedgerStore()
	reversed.SaveAccount(domain.Account{ID: "acc-a", Balance: decimal.NewFromInt(1000)})
	reversed.SaveAccount(domain.Account{ID: "acc-b", Balance: decimal.NewFromInt(5000)})
	for i := len(txs) - 1; i >= 0; i-- {
		s.Require().NoError(reversed.Append(txs[i]))
	}
	backward, err := services.NewBalanceService(reversed).CurrentBalance(context.Background(), "acc-a")
	s.Require().NoError(err)

	s.True(forward.Equal(backward))
	s.True(forward.Equal(decimal.NewFromInt(1050)))
}

func (s *BalanceServiceTestSuite) TestAccountBalancesSkipInactive() {
	s.store.SaveAccount(domain.Account{ID: "acc-old", Name: "Closed", Status: domain.AccountInactive, Balance: decimal.NewFromInt(10)})
	balances := s.svc.AccountBalances(context.Background())
	s.Len(balances, 2)
	for _, ab := range balances {
		s.NotEqual("acc-old", ab.Account.ID)
	}
}

func (s *BalanceServiceTestSuite) TestTotalsKeepTransfersNeutral() {
	s.Require().NoError(s.store.Append(domain.NewIncome("t1", decimal.NewFromInt(500), "cat-2", "acc-a", "2025-01-01", "")))
	s.Require().NoError(s.store.Append(domain.NewExpense("t2", decimal.NewFromInt(120), "cat-1", "acc-a", "2025-01-02", "")))
	s.Require().NoError(s.store.Append(domain.NewTransfer("t3", decimal.NewFromInt(999), "acc-a", "acc-b", "2025-01-03", "")))

	totals := s.svc.Totals(context.Background())
	s.True(totals.TotalIncome.Equal(decimal.NewFromInt(500)))
	s.True(totals.TotalExpense.Equal(decimal.NewFromInt(120)))
	s.True(totals.NetDelta.Equal(decimal.NewFromInt(380)))
	s.True(totals.TotalAssets.Equal(decimal.NewFromInt(6380)), "transfer moves assets between accounts only")
}

func (s *BalanceServiceTestSuite) TestTotalsIncludePendingReimbursements() {
	pending := domain.NewExpense("t1", decimal.NewFromInt(60), "cat-1", "acc-a", "2025-01-02", "")
	pending.IsReimbursable = true
	s.Require().NoError(s.store.Append(pending))

	totals := s.svc.Totals(context.Background())
	s.True(totals.TotalExpense.Equal(decimal.NewFromInt(60)), "the money left the account either way")
}

func TestBalanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BalanceServiceTestSuite))
}

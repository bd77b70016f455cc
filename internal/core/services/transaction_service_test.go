package services_test

import (
	"context"
	"testing"

	"github.com/cyberledger/cyberledger_backend/internal/apperrors"
	"github.com/cyberledger/cyberledger_backend/internal/core/domain"
	portssvc "github.com/cyberledger/cyberledger_backend/internal/core/ports/services"
	"github.com/cyberledger/cyberledger_backend/internal/core/services"
	"github.com/cyberledger/cyberledger_backend/internal/dto"
	"github.com/cyberledger/cyberledger_backend/internal/repositories/memory"
	"github.com/cyberledger/cyberledger_backend/internal/utils/dates"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	store *memory.LedgerStore
	svc   portssvc.TransactionSvcFacade
}

func (s *TransactionServiceTestSuite) SetupTest() {
	s.store = memory.NewLedgerStore()
	s.svc = services.NewTransactionService(s.store, nil)
}

func (s *TransactionServiceTestSuite) TestAppendValidatesVariant() {
	created, err := s.svc.AppendTransaction(context.Background(), dto.CreateTransactionRequest{
		Type:          domain.Expense,
		Amount:        decimal.NewFromInt(30),
		CategoryID:    "cat-food",
		FromAccountID: "acc-a",
		Date:          "2025-02-03",
	})
	s.Require().NoError(err)
	s.NotEmpty(created.ID)
	s.Len(s.store.Transactions(), 1)

	// An expense without a source account never reaches the log.
	_, err = s.svc.AppendTransaction(context.Background(), dto.CreateTransactionRequest{
		Type:       domain.Expense,
		Amount:     decimal.NewFromInt(30),
		CategoryID: "cat-food",
		Date:       "2025-02-03",
	})
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Len(s.store.Transactions(), 1)
}

func (s *TransactionServiceTestSuite) TestDeleteTransaction() {
	s.Require().NoError(s.store.Append(domain.NewExpense("tx-1", decimal.NewFromInt(10), "cat-food", "acc-a", "2025-02-03", "")))

	s.Require().NoError(s.svc.DeleteTransaction(context.Background(), "tx-1"))
	s.Empty(s.store.Transactions())

	s.ErrorIs(s.svc.DeleteTransaction(context.Background(), "tx-1"), apperrors.ErrNotFound)
}

func (s *TransactionServiceTestSuite) TestListSortsNewestFirst() {
	s.Require().NoError(s.store.Append(domain.NewExpense("tx-1", decimal.NewFromInt(10), "cat-food", "acc-a", "2025-02-03", "")))
	s.Require().NoError(s.store.Append(domain.NewExpense("tx-2", decimal.NewFromInt(20), "cat-food", "acc-a", "2025-02-20", "")))
	s.Require().NoError(s.store.Append(domain.NewExpense("tx-3", decimal.NewFromInt(30), "cat-food", "acc-a", "2025-01-15", "")))

	all, err := s.svc.ListTransactions(context.Background(), "")
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal("tx-2", all[0].ID)
	s.Equal("tx-1", all[1].ID)
	s.Equal("tx-3", all[2].ID)

	feb, err := s.svc.ListTransactions(context.Background(), "2025-02")
	s.Require().NoError(err)
	s.Require().Len(feb, 2)
	s.Equal("tx-2", feb[0].ID)

	_, err = s.svc.ListTransactions(context.Background(), "2025/02")
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *TransactionServiceTestSuite) TestAvailableMonths() {
	s.Require().NoError(s.store.Append(domain.NewExpense("tx-1", decimal.NewFromInt(10), "cat-food", "acc-a", "2024-11-03", "")))
	s.Require().NoError(s.store.Append(domain.NewExpense("tx-2", decimal.NewFromInt(20), "cat-food", "acc-a", "2025-01-20", "")))

	months := s.svc.AvailableMonths(context.Background())
	s.Contains(months, "2024-11")
	s.Contains(months, "2025-01")
	s.Contains(months, dates.CurrentMonth())

	for i := 1; i < len(months); i++ {
		s.Less(months[i], months[i-1], "months must be newest first")
	}
}

func (s *TransactionServiceTestSuite) TestFireQuickAdd() {
	s.store.SaveQuickAdd(domain.QuickAdd{
		ID:         "qa-coffee",
		Name:       "Coffee",
		Type:       domain.Expense,
		Amount:     decimal.NewFromInt(4),
		CategoryID: "cat-food",
		AccountID:  "acc-a",
	})

	tx, err := s.svc.FireQuickAdd(context.Background(), "qa-coffee")
	s.Require().NoError(err)
	s.Equal(domain.Expense, tx.Type)
	s.Equal("acc-a", tx.FromAccountID)
	s.Equal(dates.Today(), tx.Date)
	s.Equal("Quick add: Coffee", tx.Note)

	_, err = s.svc.FireQuickAdd(context.Background(), "missing")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}

package memory_test

import (
	"testing"

	"github.com/cyberledger/cyberledger_backend/internal/apperrors"
	"github.com/cyberledger/cyberledger_backend/internal/core/domain"
	"github.com/cyberledger/cyberledger_backend/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type LedgerStoreTestSuite struct {
	suite.Suite
	store *memory.LedgerStore
}

func (s *LedgerStoreTestSuite) SetupTest() {
	s.store = memory.NewLedgerStore()
}

func (s *LedgerStoreTestSuite) expense(id string, amount int64) domain.Transaction {
	return domain.NewExpense(id, decimal.NewFromInt(amount), "cat-1", "acc-1", "2025-01-15", "")
}

func (s *LedgerStoreTestSuite) TestAppendRejectsDuplicateID() {
	s.Require().NoError(s.store.Append(s.expense("tx-1", 10)))
	err := s.store.Append(s.expense("tx-1", 20))
	s.ErrorIs(err, apperrors.ErrDuplicate)
	s.Len(s.store.Transactions(), 1)
}

func (s *LedgerStoreTestSuite) TestDeleteRemovesEntry() {
	s.Require().NoError(s.store.Append(s.expense("tx-1", 10)))
	s.Require().NoError(s.store.Delete("tx-1"))
	s.Empty(s.store.Transactions())

	s.ErrorIs(s.store.Delete("tx-1"), apperrors.ErrNotFound)
}

func (s *LedgerStoreTestSuite) TestVersionBumpsOnEveryMutation() {
	v0 := s.store.Version()
	s.Require().NoError(s.store.Append(s.expense("tx-1", 10)))
	v1 := s.store.Version()
	s.Greater(v1, v0)

	s.store.SaveAccount(domain.Account{ID: "acc-1", Name: "Cash"})
	s.Greater(s.store.Version(), v1)
}

func (s *LedgerStoreTestSuite) TestSettleFlipsFlagAndAppendsCredit() {
	tx := s.expense("tx-1", 80)
	tx.IsReimbursable = true
	s.Require().NoError(s.store.Append(tx))

	credit := domain.Transaction{ID: "tx-credit", Type: domain.Income, Amount: decimal.NewFromInt(80), ToAccountID: "acc-1", Date: "2025-02-01"}
	s.Require().NoError(s.store.Settle("tx-1", credit))

	settled, ok := s.store.TransactionByID("tx-1")
	s.Require().True(ok)
	s.True(settled.IsReimbursed)
	s.Len(s.store.Transactions(), 2)
}

func (s *LedgerStoreTestSuite) TestSettleGuards() {
	plain := s.expense("tx-plain", 10)
	s.Require().NoError(s.store.Append(plain))
	credit := domain.Transaction{ID: "c-1", Type: domain.Income, Amount: decimal.NewFromInt(10), ToAccountID: "acc-1", Date: "2025-02-01"}

	s.ErrorIs(s.store.Settle("tx-plain", credit), apperrors.ErrValidation, "not reimbursable")
	s.ErrorIs(s.store.Settle("missing", credit), apperrors.ErrNotFound)

	reimbursable := s.expense("tx-r", 20)
	reimbursable.IsReimbursable = true
	s.Require().NoError(s.store.Append(reimbursable))
	credit2 := domain.Transaction{ID: "c-2", Type: domain.Income, Amount: decimal.NewFromInt(20), ToAccountID: "acc-1", Date: "2025-02-01"}
	s.Require().NoError(s.store.Settle("tx-r", credit2))

	credit3 := credit2
	credit3.ID = "c-3"
	s.ErrorIs(s.store.Settle("tx-r", credit3), apperrors.ErrConflict, "second settle")
	// The guard means the credit was appended exactly once.
	s.Len(s.store.Transactions(), 3)
}

func (s *LedgerStoreTestSuite) TestSnapshotDetachesFromStoreState() {
	s.store.SaveAccount(domain.Account{ID: "acc-1", Name: "Cash"})
	snap := s.store.Snapshot()
	snap.Accounts[0].Name = "Mutated"
	snap.Budget.CategoryLimits["cat-1"] = decimal.NewFromInt(99)

	account, ok := s.store.AccountByID("acc-1")
	s.Require().True(ok)
	s.Equal("Cash", account.Name)
	s.Empty(s.store.Budget().CategoryLimits)
}

func (s *LedgerStoreTestSuite) TestRestoreNormalizesNilCollections() {
	s.store.Restore(domain.Snapshot{})
	s.NotNil(s.store.Transactions())
	s.NotNil(s.store.Budget().CategoryLimits)
	s.NotNil(s.store.Budget().RolloverBalances)
}

func (s *LedgerStoreTestSuite) TestBudgetRoundTrip() {
	s.store.SetBudget(domain.Budget{
		MonthlyTotal:   decimal.NewFromInt(1500),
		CategoryLimits: map[string]decimal.Decimal{"cat-1": decimal.NewFromInt(100)},
	})
	budget := s.store.Budget()
	s.True(budget.MonthlyTotal.Equal(decimal.NewFromInt(1500)))
	s.True(budget.LimitFor("cat-1").Equal(decimal.NewFromInt(100)))
	s.True(budget.LimitFor("unknown").IsZero())
	s.True(budget.BaselineFor("cat-1").IsZero())
}

func (s *LedgerStoreTestSuite) TestSaveAccountUpserts() {
	s.store.SaveAccount(domain.Account{ID: "acc-1", Name: "Cash"})
	s.store.SaveAccount(domain.Account{ID: "acc-1", Name: "Wallet"})
	s.Len(s.store.Accounts(), 1)
	account, _ := s.store.AccountByID("acc-1")
	s.Equal("Wallet", account.Name)
}

func TestLedgerStoreTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerStoreTestSuite))
}

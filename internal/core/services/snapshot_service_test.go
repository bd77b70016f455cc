package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/cyberledger/cyberledger_backend/internal/apperrors"
	"github.com/cyberledger/cyberledger_backend/internal/core/domain"
	portssvc "github.com/cyberledger/cyberledger_backend/internal/core/ports/services"
	"github.com/cyberledger/cyberledger_backend/internal/core/services"
	"github.com/cyberledger/cyberledger_backend/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SnapshotRepository ---
type MockSnapshotRepository struct {
	mock.Mock
}

func (m *MockSnapshotRepository) Save(ctx context.Context, snap domain.Snapshot) error {
	args := m.Called(ctx, snap)
	return args.Error(0)
}

func (m *MockSnapshotRepository) Load(ctx context.Context) (*domain.Snapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Snapshot), args.Error(1)
}

type SnapshotServiceTestSuite struct {
	suite.Suite
	store    *memory.LedgerStore
	mockRepo *MockSnapshotRepository
	svc      portssvc.SnapshotSvcFacade
}

func (s *SnapshotServiceTestSuite) SetupTest() {
	s.store = memory.NewLedgerStore()
	s.mockRepo = new(MockSnapshotRepository)
	s.svc = services.NewSnapshotService(s.store, s.mockRepo)
}

func (s *SnapshotServiceTestSuite) TestExportWrapsCurrentState() {
	s.store.SaveAccount(domain.Account{ID: "acc-a", Name: "Checking", Balance: decimal.NewFromInt(1000)})
	s.Require().NoError(s.store.Append(domain.NewExpense("tx-1", decimal.NewFromInt(50), "cat-food", "acc-a", "2025-02-03", "")))

	backup, err := s.svc.Export(context.Background())
	s.Require().NoError(err)

	s.Equal(domain.BackupVersion, backup.Version)
	s.NotEmpty(backup.Timestamp)
	s.Require().Len(backup.Data.Transactions, 1)
	s.Equal("tx-1", backup.Data.Transactions[0].ID)
	s.Require().Len(backup.Data.Accounts, 1)
}

func (s *SnapshotServiceTestSuite) TestImportReplacesStateAndPersists() {
	s.Require().NoError(s.store.Append(domain.NewExpense("tx-old", decimal.NewFromInt(10), "cat-food", "acc-a", "2025-01-01", "")))

	incoming := domain.Snapshot{
		Transactions: []domain.Transaction{
			domain.NewIncome("tx-new", decimal.NewFromInt(500), "", "acc-b", "2025-02-01", "salary"),
		},
		Accounts: []domain.Account{{ID: "acc-b", Name: "Savings"}},
	}
	s.mockRepo.On("Save", mock.Anything, mock.MatchedBy(func(snap domain.Snapshot) bool {
		return len(snap.Transactions) == 1 && snap.Transactions[0].ID == "tx-new"
	})).Return(nil).Once()

	err := s.svc.Import(context.Background(), domain.Backup{Version: domain.BackupVersion, Data: incoming})
	s.Require().NoError(err)

	txs := s.store.Transactions()
	s.Require().Len(txs, 1)
	s.Equal("tx-new", txs[0].ID)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *SnapshotServiceTestSuite) TestImportRejectsMalformedTransactions() {
	s.Require().NoError(s.store.Append(domain.NewExpense("tx-old", decimal.NewFromInt(10), "cat-food", "acc-a", "2025-01-01", "")))

	bad := domain.Backup{Data: domain.Snapshot{
		Transactions: []domain.Transaction{{Type: domain.Expense, Amount: decimal.NewFromInt(5)}},
	}}

	err := s.svc.Import(context.Background(), bad)
	s.ErrorIs(err, apperrors.ErrValidation)

	// The current state is untouched and nothing was persisted.
	txs := s.store.Transactions()
	s.Require().Len(txs, 1)
	s.Equal("tx-old", txs[0].ID)
	s.mockRepo.AssertNotCalled(s.T(), "Save", mock.Anything, mock.Anything)
}

func (s *SnapshotServiceTestSuite) TestRestoreFromStorage() {
	snap := &domain.Snapshot{
		Transactions: []domain.Transaction{
			domain.NewExpense("tx-1", decimal.NewFromInt(42), "cat-food", "acc-a", "2025-02-03", ""),
		},
	}
	s.mockRepo.On("Load", mock.Anything).Return(snap, nil).Once()

	s.Require().NoError(s.svc.RestoreFromStorage(context.Background()))
	s.Require().Len(s.store.Transactions(), 1)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *SnapshotServiceTestSuite) TestRestoreFromStorageFreshInstall() {
	s.mockRepo.On("Load", mock.Anything).Return(nil, apperrors.ErrNotFound).Once()

	s.Require().NoError(s.svc.RestoreFromStorage(context.Background()))
	s.Empty(s.store.Transactions())
}

func (s *SnapshotServiceTestSuite) TestRestoreFromStorageSurfacesLoadFailure() {
	loadErr := errors.New("connection refused")
	s.mockRepo.On("Load", mock.Anything).Return(nil, loadErr).Once()

	err := s.svc.RestoreFromStorage(context.Background())
	s.ErrorIs(err, loadErr)
}

func TestSnapshotServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SnapshotServiceTestSuite))
}

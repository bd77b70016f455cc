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

type RolloverServiceTestSuite struct {
	suite.Suite
	store *memory.LedgerStore
	svc   portssvc.RolloverSvcFacade
}

func (s *RolloverServiceTestSuite) SetupTest() {
	s.store = memory.NewLedgerStore()
	s.svc = services.NewRolloverService(s.store)

	s.store.SaveCategory(domain.Category{ID: "cat-food", Name: "Food", IsRollover: true})
	s.store.SetBudget(domain.Budget{
		MonthlyTotal:   decimal.NewFromInt(500),
		CategoryLimits: map[string]decimal.Decimal{"cat-food": decimal.NewFromInt(100)},
	})
}

func (s *RolloverServiceTestSuite) appendExpense(id string, amount int64, categoryID, date string) {
	s.Require().NoError(s.store.Append(domain.NewExpense(id, decimal.NewFromInt(amount), categoryID, "acc-a", date, "")))
}

func (s *RolloverServiceTestSuite) row(report *domain.MonthlyBudget, categoryID string) domain.CategoryRollover {
	for _, row := range report.Categories {
		if row.CategoryID == categoryID {
			return row
		}
	}
	s.Require().FailNowf("missing category row", "category %s not in report", categoryID)
	return domain.CategoryRollover{}
}

func (s *RolloverServiceTestSuite) TestPastOverspendExhaustsReserve() {
	s.appendExpense("tx-1", 200, "cat-food", "2025-01-15")
	s.appendExpense("tx-2", 50, "cat-food", "2025-02-10")

	report, err := s.svc.MonthlyReport(context.Background(), "2025-02")
	s.Require().NoError(err)

	row := s.row(report, "cat-food")
	s.True(row.ComputedRollover.IsZero(), "overspend is forgiven, not carried as debt")
	s.True(row.TotalLimit.Equal(decimal.NewFromInt(100)))
	s.True(row.SpendFromRollover.IsZero())
	s.True(row.SpendFromCurrent.Equal(decimal.NewFromInt(50)))
	s.True(report.GrossMonthExpense.Equal(decimal.NewFromInt(50)))
	s.True(report.CurrentMonthExpense.Equal(decimal.NewFromInt(50)))
	s.True(report.Remaining.Equal(decimal.NewFromInt(450)))
}

func (s *RolloverServiceTestSuite) TestReserveDrawnBeforeFreshAllocation() {
	// Ledger starts in January with no food spend, so by March the category
	// has accrued two untouched monthly allocations.
	s.appendExpense("tx-anchor", 10, "cat-other", "2025-01-05")
	s.appendExpense("tx-1", 250, "cat-food", "2025-03-08")

	report, err := s.svc.MonthlyReport(context.Background(), "2025-03")
	s.Require().NoError(err)

	row := s.row(report, "cat-food")
	s.True(row.ComputedRollover.Equal(decimal.NewFromInt(200)))
	s.True(row.TotalLimit.Equal(decimal.NewFromInt(300)))
	s.True(row.SpendFromRollover.Equal(decimal.NewFromInt(200)))
	s.True(row.SpendFromCurrent.Equal(decimal.NewFromInt(50)))
	s.True(row.SpendFromRollover.Add(row.SpendFromCurrent).Equal(row.CurrentSpent))
	s.InDelta(200.0/300.0, row.RolloverFraction, 1e-9)
	s.InDelta(100.0/300.0, row.AllocationFraction, 1e-9)

	// The 200 covered by the reserve is credited back to this month's bar.
	s.True(report.GrossMonthExpense.Equal(decimal.NewFromInt(250)))
	s.True(report.CurrentMonthExpense.Equal(decimal.NewFromInt(50)))
}

func (s *RolloverServiceTestSuite) TestBaselineSeedsReserve() {
	budget := s.store.Budget()
	budget.RolloverBalances = map[string]decimal.Decimal{"cat-food": decimal.NewFromInt(50)}
	s.store.SetBudget(budget)

	s.appendExpense("tx-1", 120, "cat-food", "2025-01-15")

	report, err := s.svc.MonthlyReport(context.Background(), "2025-02")
	s.Require().NoError(err)

	// pastBudget = 1×100 + 50 baseline, minus 120 already spent.
	row := s.row(report, "cat-food")
	s.True(row.ComputedRollover.Equal(decimal.NewFromInt(30)))
}

func (s *RolloverServiceTestSuite) TestPendingReimbursementsExcluded() {
	fronted := domain.NewExpense("tx-fronted", decimal.NewFromInt(80), "cat-food", "acc-a", "2025-02-03", "team lunch")
	fronted.IsReimbursable = true
	s.Require().NoError(s.store.Append(fronted))
	s.appendExpense("tx-own", 40, "cat-food", "2025-02-04")

	report, err := s.svc.MonthlyReport(context.Background(), "2025-02")
	s.Require().NoError(err)

	row := s.row(report, "cat-food")
	s.True(row.CurrentSpent.Equal(decimal.NewFromInt(40)))
	s.True(report.GrossMonthExpense.Equal(decimal.NewFromInt(40)))

	// Once settled the expense counts like any other.
	credit := domain.NewIncome("tx-credit", decimal.NewFromInt(80), "", "acc-a", "2025-02-10", "")
	s.Require().NoError(s.store.Settle("tx-fronted", credit))

	report, err = s.svc.MonthlyReport(context.Background(), "2025-02")
	s.Require().NoError(err)
	s.True(s.row(report, "cat-food").CurrentSpent.Equal(decimal.NewFromInt(120)))
}

func (s *RolloverServiceTestSuite) TestAnnualFixedExcludedFromGross() {
	s.store.SaveCategory(domain.Category{ID: "cat-rent", Name: "Rent", IsAnnualFixed: true})
	s.appendExpense("tx-rent", 900, "cat-rent", "2025-02-01")
	s.appendExpense("tx-food", 30, "cat-food", "2025-02-02")

	report, err := s.svc.MonthlyReport(context.Background(), "2025-02")
	s.Require().NoError(err)
	s.True(report.GrossMonthExpense.Equal(decimal.NewFromInt(30)))
}

func (s *RolloverServiceTestSuite) TestZeroLimitLeavesFractionsZero() {
	s.store.SaveCategory(domain.Category{ID: "cat-misc", Name: "Misc", IsRollover: true})
	s.appendExpense("tx-1", 25, "cat-misc", "2025-02-14")

	report, err := s.svc.MonthlyReport(context.Background(), "2025-02")
	s.Require().NoError(err)

	row := s.row(report, "cat-misc")
	s.True(row.TotalLimit.IsZero())
	s.Zero(row.RolloverFraction)
	s.Zero(row.AllocationFraction)
	s.True(row.SpendFromCurrent.Equal(decimal.NewFromInt(25)))
}

func (s *RolloverServiceTestSuite) TestEmptyLedgerHasNoAccrual() {
	report, err := s.svc.MonthlyReport(context.Background(), "2025-06")
	s.Require().NoError(err)

	row := s.row(report, "cat-food")
	s.True(row.ComputedRollover.IsZero())
	s.True(row.TotalLimit.Equal(decimal.NewFromInt(100)))
}

func (s *RolloverServiceTestSuite) TestInvalidMonthRejected() {
	_, err := s.svc.MonthlyReport(context.Background(), "2025-2")
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.svc.CategorySpends(context.Background(), "February")
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *RolloverServiceTestSuite) TestCategorySpends() {
	s.appendExpense("tx-1", 30, "cat-food", "2025-02-01")
	s.appendExpense("tx-2", 20, "cat-food", "2025-02-15")
	s.appendExpense("tx-3", 15, "cat-gone", "2025-02-20")
	s.appendExpense("tx-other-month", 99, "cat-food", "2025-03-01")

	spends, err := s.svc.CategorySpends(context.Background(), "2025-02")
	s.Require().NoError(err)
	s.Require().Len(spends, 2)

	s.Equal("Food", spends[0].CategoryName)
	s.True(spends[0].Total.Equal(decimal.NewFromInt(50)))
	s.Equal(dto.UnknownLabel, spends[1].CategoryName)
	s.True(spends[1].Total.Equal(decimal.NewFromInt(15)))
}

func (s *RolloverServiceTestSuite) TestCalibrationAdjustmentsStayOutOfBudget() {
	s.store.SaveAccount(domain.Account{ID: "acc-a", Name: "Checking", Balance: decimal.NewFromInt(1000)})
	recon := services.NewReconciliationService(s.store, nil, services.NewBalanceService(s.store))

	adjustment, err := recon.Reconcile(context.Background(), "acc-a", decimal.NewFromInt(700))
	s.Require().NoError(err)
	s.Require().NotNil(adjustment)

	report, err := s.svc.MonthlyReport(context.Background(), dates.CurrentMonth())
	s.Require().NoError(err)
	s.True(report.GrossMonthExpense.IsZero())
	s.True(report.CurrentMonthExpense.IsZero())
}

func (s *RolloverServiceTestSuite) TestDanglingCategoryStaysOutOfGross() {
	s.appendExpense("tx-gone", 75, "cat-deleted", "2025-02-05")
	s.appendExpense("tx-food", 30, "cat-food", "2025-02-06")

	report, err := s.svc.MonthlyReport(context.Background(), "2025-02")
	s.Require().NoError(err)
	s.True(report.GrossMonthExpense.Equal(decimal.NewFromInt(30)))
}

func TestRolloverServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RolloverServiceTestSuite))
}

package services

import (
	"context"
	"fmt"

	"github.com/cyberledger/cyberledger_backend/internal/apperrors"
	"github.com/cyberledger/cyberledger_backend/internal/core/domain"
	portsrepo "github.com/cyberledger/cyberledger_backend/internal/core/ports/repositories"
	portssvc "github.com/cyberledger/cyberledger_backend/internal/core/ports/services"
	"github.com/cyberledger/cyberledger_backend/internal/dto"
	"github.com/cyberledger/cyberledger_backend/internal/utils/dates"
	"github.com/shopspring/decimal"
)

// rolloverService is the single home of the budget rollover formula. Every
// surface that shows budget progress reads from here, so the numbers can
// never disagree between views.
//
// Expenses that are fronted for reimbursement and not yet settled are
// excluded from every spend sum in this service: they are not the user's own
// spending until the reimbursement falls through.
type rolloverService struct {
	BaseService
}

// NewRolloverService creates the budget rollover calculator.
func NewRolloverService(store portsrepo.LedgerStoreFacade) portssvc.RolloverSvcFacade {
	return &rolloverService{BaseService{store: store}}
}

// MonthlyReport computes the budget view for one YYYY-MM month.
func (s *rolloverService) MonthlyReport(ctx context.Context, month string) (*domain.MonthlyBudget, error) {
	if !dates.IsValidMonth(month) {
		return nil, fmt.Errorf("%w: invalid month %q", apperrors.ErrValidation, month)
	}

	budget := s.store.Budget()
	transactions := s.store.Transactions()
	categories := s.store.Categories()

	activePastMonths := s.activePastMonths(transactions, month)

	report := &domain.MonthlyBudget{
		Month:               month,
		GrossMonthExpense:   decimal.Zero,
		SpendFromRollover:   decimal.Zero,
		CurrentMonthExpense: decimal.Zero,
		MonthlyTotal:        budget.MonthlyTotal,
		Remaining:           decimal.Zero,
		Categories:          []domain.CategoryRollover{},
	}

	catByID := map[string]domain.Category{}
	for _, cat := range categories {
		catByID[cat.ID] = cat
	}

	// Aggregate discretionary spend for the month. Annual-fixed categories
	// stay out of the monthly bar; they are budgeted yearly. Expenses with no
	// resolvable category (calibration adjustments, references to deleted
	// categories) stay out too.
	for _, tx := range transactions {
		if tx.Type != domain.Expense || !tx.InMonth(month) || tx.IsPendingReimbursement() {
			continue
		}
		cat, ok := catByID[tx.CategoryID]
		if !ok || cat.IsAnnualFixed {
			continue
		}
		report.GrossMonthExpense = report.GrossMonthExpense.Add(tx.Amount)
	}

	for _, cat := range categories {
		if !cat.IsRollover {
			continue
		}
		row := s.categoryRollover(cat, budget, transactions, month, activePastMonths)
		report.SpendFromRollover = report.SpendFromRollover.Add(row.SpendFromRollover)
		report.Categories = append(report.Categories, row)
	}

	// Spend covered by carried reserves does not count against this month's
	// fresh budget.
	report.CurrentMonthExpense = decimal.Max(decimal.Zero, report.GrossMonthExpense.Sub(report.SpendFromRollover))
	report.Remaining = budget.MonthlyTotal.Sub(report.CurrentMonthExpense)

	return report, nil
}

// CategorySpends sums the month's expenses per category for the stats charts.
// Categories with no spend in the month are omitted.
func (s *rolloverService) CategorySpends(ctx context.Context, month string) ([]domain.CategorySpend, error) {
	if !dates.IsValidMonth(month) {
		return nil, fmt.Errorf("%w: invalid month %q", apperrors.ErrValidation, month)
	}

	names := map[string]string{}
	order := []string{}
	totals := map[string]decimal.Decimal{}
	for _, cat := range s.store.Categories() {
		names[cat.ID] = cat.Name
	}
	for _, tx := range s.store.Transactions() {
		if tx.Type != domain.Expense || !tx.InMonth(month) || tx.IsPendingReimbursement() {
			continue
		}
		if _, seen := totals[tx.CategoryID]; !seen {
			order = append(order, tx.CategoryID)
		}
		totals[tx.CategoryID] = totals[tx.CategoryID].Add(tx.Amount)
	}

	out := make([]domain.CategorySpend, 0, len(order))
	for _, id := range order {
		name, ok := names[id]
		if !ok {
			name = dto.UnknownLabel
		}
		out = append(out, domain.CategorySpend{CategoryID: id, CategoryName: name, Total: totals[id]})
	}
	return out, nil
}

// activePastMonths is the whole-month distance from the month of the earliest
// transaction in the entire ledger to the target month, floored at zero. The
// anchor is deliberately ledger-wide, not per-category: a category enrolled
// in rollover later inherits accrual from the ledger's start, matching how
// the budget has always been presented to the user.
func (s *rolloverService) activePastMonths(transactions []domain.Transaction, month string) int {
	earliest := ""
	for _, tx := range transactions {
		if earliest == "" || tx.Date < earliest {
			earliest = tx.Date
		}
	}
	if earliest == "" {
		return 0
	}
	months, err := dates.MonthsBetween(dates.MonthOf(earliest), month)
	if err != nil || months < 0 {
		return 0
	}
	return months
}

func (s *rolloverService) categoryRollover(cat domain.Category, budget domain.Budget, transactions []domain.Transaction, month string, activePastMonths int) domain.CategoryRollover {
	limit := budget.LimitFor(cat.ID)
	baseline := budget.BaselineFor(cat.ID)

	pastSpent := decimal.Zero
	currentSpent := decimal.Zero
	for _, tx := range transactions {
		if tx.Type != domain.Expense || tx.CategoryID != cat.ID || tx.IsPendingReimbursement() {
			continue
		}
		if tx.BeforeMonth(month) {
			pastSpent = pastSpent.Add(tx.Amount)
		} else if tx.InMonth(month) {
			currentSpent = currentSpent.Add(tx.Amount)
		}
	}

	pastBudget := limit.Mul(decimal.NewFromInt(int64(activePastMonths))).Add(baseline)
	// Overspending in past months is forgiven, never carried as debt.
	computedRollover := decimal.Max(decimal.Zero, pastBudget.Sub(pastSpent))
	totalLimit := computedRollover.Add(limit)
	// The carried reserve is drawn before the fresh allocation.
	spendFromRollover := decimal.Min(currentSpent, computedRollover)
	spendFromCurrent := decimal.Max(decimal.Zero, currentSpent.Sub(computedRollover))

	row := domain.CategoryRollover{
		CategoryID:        cat.ID,
		CategoryName:      cat.Name,
		Allocated:         limit,
		ComputedRollover:  computedRollover,
		TotalLimit:        totalLimit,
		CurrentSpent:      currentSpent,
		SpendFromRollover: spendFromRollover,
		SpendFromCurrent:  spendFromCurrent,
	}
	if totalLimit.IsPositive() {
		row.RolloverFraction, _ = computedRollover.Div(totalLimit).Float64()
		row.AllocationFraction, _ = limit.Div(totalLimit).Float64()
	}
	return row
}

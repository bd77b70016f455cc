package dto

import (
	"github.com/cyberledger/cyberledger_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpdateBudgetRequest replaces the budget configuration. Missing maps are
// treated as empty; unknown categories default to zero at read time.
type UpdateBudgetRequest struct {
	MonthlyTotal     decimal.Decimal            `json:"monthlyTotal"`
	AnnualTotal      decimal.Decimal            `json:"annualTotal"`
	CategoryLimits   map[string]decimal.Decimal `json:"categoryLimits"`
	RolloverBalances map[string]decimal.Decimal `json:"rolloverBalances"`
}

// BudgetResponse mirrors the stored budget configuration.
type BudgetResponse struct {
	MonthlyTotal     decimal.Decimal            `json:"monthlyTotal"`
	AnnualTotal      decimal.Decimal            `json:"annualTotal"`
	CategoryLimits   map[string]decimal.Decimal `json:"categoryLimits"`
	RolloverBalances map[string]decimal.Decimal `json:"rolloverBalances"`
}

// ToBudgetResponse converts the budget configuration.
func ToBudgetResponse(b domain.Budget) BudgetResponse {
	return BudgetResponse{
		MonthlyTotal:     b.MonthlyTotal,
		AnnualTotal:      b.AnnualTotal,
		CategoryLimits:   b.CategoryLimits,
		RolloverBalances: b.RolloverBalances,
	}
}

// CategoryRolloverResponse is one rollover category's monthly breakdown.
type CategoryRolloverResponse struct {
	CategoryID         string          `json:"categoryId"`
	CategoryName       string          `json:"categoryName"`
	Allocated          decimal.Decimal `json:"allocated"`
	ComputedRollover   decimal.Decimal `json:"computedRollover"`
	TotalLimit         decimal.Decimal `json:"totalLimit"`
	CurrentSpent       decimal.Decimal `json:"currentSpent"`
	SpendFromRollover  decimal.Decimal `json:"spendFromRollover"`
	SpendFromCurrent   decimal.Decimal `json:"spendFromCurrent"`
	RolloverFraction   float64         `json:"rolloverFraction"`
	AllocationFraction float64         `json:"allocationFraction"`
}

// MonthlyBudgetResponse is the budget view for one month.
type MonthlyBudgetResponse struct {
	Month               string                     `json:"month"`
	GrossMonthExpense   decimal.Decimal            `json:"grossMonthExpense"`
	SpendFromRollover   decimal.Decimal            `json:"spendFromRollover"`
	CurrentMonthExpense decimal.Decimal            `json:"currentMonthExpense"`
	MonthlyTotal        decimal.Decimal            `json:"monthlyTotal"`
	Remaining           decimal.Decimal            `json:"remaining"`
	Categories          []CategoryRolloverResponse `json:"categories"`
}

// ToMonthlyBudgetResponse converts a monthly budget report.
func ToMonthlyBudgetResponse(mb *domain.MonthlyBudget) MonthlyBudgetResponse {
	cats := make([]CategoryRolloverResponse, len(mb.Categories))
	for i, c := range mb.Categories {
		cats[i] = CategoryRolloverResponse{
			CategoryID:         c.CategoryID,
			CategoryName:       c.CategoryName,
			Allocated:          c.Allocated,
			ComputedRollover:   c.ComputedRollover,
			TotalLimit:         c.TotalLimit,
			CurrentSpent:       c.CurrentSpent,
			SpendFromRollover:  c.SpendFromRollover,
			SpendFromCurrent:   c.SpendFromCurrent,
			RolloverFraction:   c.RolloverFraction,
			AllocationFraction: c.AllocationFraction,
		}
	}
	return MonthlyBudgetResponse{
		Month:               mb.Month,
		GrossMonthExpense:   mb.GrossMonthExpense,
		SpendFromRollover:   mb.SpendFromRollover,
		CurrentMonthExpense: mb.CurrentMonthExpense,
		MonthlyTotal:        mb.MonthlyTotal,
		Remaining:           mb.Remaining,
		Categories:          cats,
	}
}

// CategorySpendResponse is one category's expense total in a month.
type CategorySpendResponse struct {
	CategoryID   string          `json:"categoryId"`
	CategoryName string          `json:"categoryName"`
	Total        decimal.Decimal `json:"total"`
}

// ToCategorySpendResponses converts chart input rows.
func ToCategorySpendResponses(spends []domain.CategorySpend) []CategorySpendResponse {
	out := make([]CategorySpendResponse, len(spends))
	for i, s := range spends {
		out[i] = CategorySpendResponse{CategoryID: s.CategoryID, CategoryName: s.CategoryName, Total: s.Total}
	}
	return out
}

// TotalsResponse carries the whole-ledger derived figures.
type TotalsResponse struct {
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	NetDelta     decimal.Decimal `json:"netDelta"`
	TotalAssets  decimal.Decimal `json:"totalAssets"`
}

// ToTotalsResponse converts ledger totals.
func ToTotalsResponse(t domain.LedgerTotals) TotalsResponse {
	return TotalsResponse{
		TotalIncome:  t.TotalIncome,
		TotalExpense: t.TotalExpense,
		NetDelta:     t.NetDelta,
		TotalAssets:  t.TotalAssets,
	}
}

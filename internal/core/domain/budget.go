package domain

import (
	"github.com/shopspring/decimal"
)

// Budget is the single budget configuration record.
//
// CategoryLimits maps a rollover category to its fresh monthly allocation.
// RolloverBalances maps a category to the one-time baseline reserve injected
// when the category was enrolled in rollover accounting. Both default to zero
// for unknown categories rather than erroring.
type Budget struct {
	MonthlyTotal     decimal.Decimal            `json:"monthlyTotal"`
	AnnualTotal      decimal.Decimal            `json:"annualTotal,omitempty"`
	CategoryLimits   map[string]decimal.Decimal `json:"categoryLimits"`
	RolloverBalances map[string]decimal.Decimal `json:"rolloverBalances"`
}

// LimitFor returns the monthly allocation for a category, zero when unset.
func (b Budget) LimitFor(categoryID string) decimal.Decimal {
	if v, ok := b.CategoryLimits[categoryID]; ok {
		return v
	}
	return decimal.Zero
}

// BaselineFor returns the enrollment reserve for a category, zero when unset.
func (b Budget) BaselineFor(categoryID string) decimal.Decimal {
	if v, ok := b.RolloverBalances[categoryID]; ok {
		return v
	}
	return decimal.Zero
}

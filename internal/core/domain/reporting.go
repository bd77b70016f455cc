package domain

import "github.com/shopspring/decimal"

// AccountBalance pairs an account with its replayed live balance. The value
// exists only in responses; nothing derived is ever written back to the store.
type AccountBalance struct {
	Account        Account
	CurrentBalance decimal.Decimal
}

// LedgerTotals are the whole-ledger derived figures. Transfers are neutral:
// they move money between accounts without touching income or expense.
type LedgerTotals struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	NetDelta     decimal.Decimal
	TotalAssets  decimal.Decimal
}

// CategoryRollover is the per-category breakdown for one target month.
//
// The carried reserve (ComputedRollover) is drawn before the fresh monthly
// allocation, so SpendFromRollover + SpendFromCurrent always equals
// CurrentSpent and SpendFromRollover never exceeds the reserve.
type CategoryRollover struct {
	CategoryID         string
	CategoryName       string
	Allocated          decimal.Decimal
	ComputedRollover   decimal.Decimal
	TotalLimit         decimal.Decimal
	CurrentSpent       decimal.Decimal
	SpendFromRollover  decimal.Decimal
	SpendFromCurrent   decimal.Decimal
	RolloverFraction   float64
	AllocationFraction float64
}

// MonthlyBudget is the top-level budget view for one month: the aggregate
// discretionary spend (annual-fixed categories excluded, rollover draws
// credited back) plus every rollover category's breakdown.
type MonthlyBudget struct {
	Month               string
	GrossMonthExpense   decimal.Decimal
	SpendFromRollover   decimal.Decimal
	CurrentMonthExpense decimal.Decimal
	MonthlyTotal        decimal.Decimal
	Remaining           decimal.Decimal
	Categories          []CategoryRollover
}

// CategorySpend is a month's expense total for one category (chart input).
type CategorySpend struct {
	CategoryID   string
	CategoryName string
	Total        decimal.Decimal
}

// SubscriptionDue is a subscription inside the due-soon window. DaysUntilDue
// is negative when the charge is overdue.
type SubscriptionDue struct {
	Subscription Subscription
	DaysUntilDue int
}

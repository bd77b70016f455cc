package services

import (
	"context"

	"github.com/cyberledger/cyberledger_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceSvcFacade is the balance replay engine: every figure is recomputed
// from the opening balances and the full transaction log on each call.
type BalanceSvcFacade interface {
	// CurrentBalance replays one account's live balance.
	CurrentBalance(ctx context.Context, accountID string) (decimal.Decimal, error)
	// AccountBalances replays all active accounts.
	AccountBalances(ctx context.Context) []domain.AccountBalance
	// Totals returns the whole-ledger income/expense/net/assets figures.
	Totals(ctx context.Context) domain.LedgerTotals
}

// RolloverSvcFacade is the budget rollover calculator. It is the single
// source of the rollover formula; every display surface reads from here.
type RolloverSvcFacade interface {
	// MonthlyReport computes the budget view for a YYYY-MM month, including
	// the per-rollover-category breakdown and the aggregate monthly expense.
	MonthlyReport(ctx context.Context, month string) (*domain.MonthlyBudget, error)
	// CategorySpends sums a month's expenses per category (chart input).
	CategorySpends(ctx context.Context, month string) ([]domain.CategorySpend, error)
}

package services

import (
	"context"
	"fmt"

	"github.com/cyberledger/cyberledger_backend/internal/apperrors"
	"github.com/cyberledger/cyberledger_backend/internal/core/domain"
	portsrepo "github.com/cyberledger/cyberledger_backend/internal/core/ports/repositories"
	portssvc "github.com/cyberledger/cyberledger_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// balanceService replays the transaction log into live balances. No balance
// is ever stored; every call walks the full log, which is cheap at personal
// transaction volumes.
type balanceService struct {
	BaseService
}

// NewBalanceService creates the balance replay engine.
func NewBalanceService(store portsrepo.LedgerStoreFacade) portssvc.BalanceSvcFacade {
	return &balanceService{BaseService{store: store}}
}

// CurrentBalance replays one account: opening balance plus every credit to
// it, minus every debit from it. Transfers touch both endpoints.
func (s *balanceService) CurrentBalance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	account, ok := s.store.AccountByID(accountID)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}
	return s.replay(account), nil
}

// AccountBalances replays every active account.
func (s *balanceService) AccountBalances(ctx context.Context) []domain.AccountBalance {
	accounts := s.store.Accounts()
	out := make([]domain.AccountBalance, 0, len(accounts))
	for _, a := range accounts {
		if !a.IsActive() {
			continue
		}
		out = append(out, domain.AccountBalance{Account: a, CurrentBalance: s.replay(a)})
	}
	return out
}

// Totals sums the whole log. Transfers are neutral here: they appear in
// neither income nor expense. Pending reimbursements stay included; their
// isolation applies to budget displays only, not to the money that actually
// moved.
func (s *balanceService) Totals(ctx context.Context) domain.LedgerTotals {
	totals := domain.LedgerTotals{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
		NetDelta:     decimal.Zero,
		TotalAssets:  decimal.Zero,
	}
	for _, tx := range s.store.Transactions() {
		switch tx.Type {
		case domain.Income:
			totals.TotalIncome = totals.TotalIncome.Add(tx.Amount)
		case domain.Expense:
			totals.TotalExpense = totals.TotalExpense.Add(tx.Amount)
		}
	}
	totals.NetDelta = totals.TotalIncome.Sub(totals.TotalExpense)
	for _, ab := range s.AccountBalances(ctx) {
		totals.TotalAssets = totals.TotalAssets.Add(ab.CurrentBalance)
	}
	return totals
}

func (s *balanceService) replay(account domain.Account) decimal.Decimal {
	balance := account.Balance
	for _, tx := range s.store.Transactions() {
		if tx.ToAccountID == account.ID {
			balance = balance.Add(tx.Amount)
		}
		if tx.FromAccountID == account.ID {
			balance = balance.Sub(tx.Amount)
		}
	}
	return balance
}

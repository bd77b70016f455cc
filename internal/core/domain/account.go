package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType distinguishes everyday accounts from savings.
type AccountType string

const (
	Standard AccountType = "standard"
	Saving   AccountType = "saving"
)

// AccountStatus is the lifecycle flag of an account. Accounts are never
// deleted; deactivation hides them from derived aggregates while historical
// transactions keep referencing them.
type AccountStatus string

const (
	AccountActive   AccountStatus = "active"
	AccountInactive AccountStatus = "inactive"
)

// Account is a configuration record. Balance is the opening baseline fixed at
// creation; the live balance is always replayed from the transaction log and
// never stored.
type Account struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Type    AccountType     `json:"type,omitempty"`
	Balance decimal.Decimal `json:"balance"`
	Status  AccountStatus   `json:"status,omitempty"`
}

// IsActive reports whether the account participates in derived aggregates.
// An empty status counts as active for compatibility with older snapshots.
func (a Account) IsActive() bool {
	return a.Status != AccountInactive
}

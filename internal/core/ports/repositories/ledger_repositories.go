package repositories

import (
	"github.com/cyberledger/cyberledger_backend/internal/core/domain"
)

// TransactionPredicate selects transactions from the log.
type TransactionPredicate func(domain.Transaction) bool

// TransactionStoreFacade is the append-only view of the transaction log.
// Entries are immutable after append except for the reimbursement flags,
// which change only through Settle.
type TransactionStoreFacade interface {
	// Append validates nothing; callers validate first. It rejects duplicate IDs.
	Append(tx domain.Transaction) error
	// Delete removes a transaction from the log entirely; the next replay
	// simply no longer sees it.
	Delete(txID string) error
	// Settle atomically flips the reimbursement flag on the identified
	// transaction and appends the compensating credit entry.
	Settle(txID string, credit domain.Transaction) error
	TransactionByID(txID string) (domain.Transaction, bool)
	Transactions() []domain.Transaction
	Query(pred TransactionPredicate) []domain.Transaction
}

// ConfigStoreFacade is the in-place-editable configuration side of the store.
type ConfigStoreFacade interface {
	Accounts() []domain.Account
	AccountByID(id string) (domain.Account, bool)
	SaveAccount(a domain.Account)

	Categories() []domain.Category
	CategoryByID(id string) (domain.Category, bool)
	SaveCategory(c domain.Category)
	DeleteCategory(id string) error

	Budget() domain.Budget
	SetBudget(b domain.Budget)

	Subscriptions() []domain.Subscription
	SubscriptionByID(id string) (domain.Subscription, bool)
	SaveSubscription(s domain.Subscription)
	DeleteSubscription(id string) error

	QuickAdds() []domain.QuickAdd
	QuickAddByID(id string) (domain.QuickAdd, bool)
	SaveQuickAdd(q domain.QuickAdd)
	DeleteQuickAdd(id string) error

	Tags() []domain.Tag
	SaveTag(t domain.Tag)
	DeleteTag(id string) error

	AutoDLPrices() []domain.AutoDLPrice
	SaveAutoDLPrice(p domain.AutoDLPrice)
	DeleteAutoDLPrice(id string) error

	APIModels() []domain.APIModel
	SaveAPIModel(m domain.APIModel)
	DeleteAPIModel(id string) error
}

// LedgerStoreFacade is the full process-wide mutable state: the transaction
// log, the configuration records, and wholesale snapshot exchange. Version
// increases on every mutation so derived values can be memoized against it.
type LedgerStoreFacade interface {
	TransactionStoreFacade
	ConfigStoreFacade

	Version() uint64
	Snapshot() domain.Snapshot
	// Restore replaces the entire state atomically (last-writer-wins).
	Restore(snap domain.Snapshot)
}

// Package memory holds the in-process ledger state. The whole application
// state lives here for the duration of the session; durability comes from the
// snapshot repository persisting the state wholesale after each mutation.
package memory

import (
	"fmt"
	"sync"

	"github.com/cyberledger/cyberledger_backend/internal/apperrors"
	"github.com/cyberledger/cyberledger_backend/internal/core/domain"
	portsrepo "github.com/cyberledger/cyberledger_backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// LedgerStore is the single process-wide mutable state: an append-only
// transaction log plus the editable configuration collections. All reads and
// writes go through one RWMutex; there is exactly one logical writer at a
// time (the user's current action), so no finer discipline is needed.
type LedgerStore struct {
	mu      sync.RWMutex
	version uint64
	state   domain.Snapshot
}

var _ portsrepo.LedgerStoreFacade = (*LedgerStore)(nil)

// NewLedgerStore returns an empty store.
func NewLedgerStore() *LedgerStore {
	return &LedgerStore{state: emptySnapshot()}
}

func emptySnapshot() domain.Snapshot {
	return domain.Snapshot{
		Transactions:  []domain.Transaction{},
		Accounts:      []domain.Account{},
		Categories:    []domain.Category{},
		Budget:        normalizeBudget(domain.Budget{}),
		QuickAdds:     []domain.QuickAdd{},
		Tags:          []domain.Tag{},
		Subscriptions: []domain.Subscription{},
		AutoDLPrices:  []domain.AutoDLPrice{},
		APIModels:     []domain.APIModel{},
	}
}

// normalizeBudget guarantees non-nil maps so lookups default to zero.
func normalizeBudget(b domain.Budget) domain.Budget {
	if b.CategoryLimits == nil {
		b.CategoryLimits = map[string]decimal.Decimal{}
	}
	if b.RolloverBalances == nil {
		b.RolloverBalances = map[string]decimal.Decimal{}
	}
	return b
}

// Version returns the mutation counter. Any derived value computed at version
// V stays valid until the version changes.
func (s *LedgerStore) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// --- transaction log ---

// Append adds a transaction to the log. The caller validates beforehand;
// the store only guards identifier uniqueness.
func (s *LedgerStore) Append(tx domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.state.Transactions {
		if existing.ID == tx.ID {
			return fmt.Errorf("%w: transaction %s", apperrors.ErrDuplicate, tx.ID)
		}
	}
	s.state.Transactions = append(s.state.Transactions, tx)
	s.version++
	return nil
}

// Delete removes a transaction from the log. No tombstone is kept; the entry
// simply stops existing for the next replay.
func (s *LedgerStore) Delete(txID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, tx := range s.state.Transactions {
		if tx.ID == txID {
			s.state.Transactions = append(s.state.Transactions[:i], s.state.Transactions[i+1:]...)
			s.version++
			return nil
		}
	}
	return fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, txID)
}

// Settle flips isReimbursed on the identified transaction and appends the
// compensating credit in one critical section, so a replay never observes the
// flag without the credit or vice versa.
func (s *LedgerStore) Settle(txID string, credit domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, tx := range s.state.Transactions {
		if tx.ID != txID {
			continue
		}
		if !tx.IsReimbursable {
			return fmt.Errorf("%w: transaction %s is not reimbursable", apperrors.ErrValidation, txID)
		}
		if tx.IsReimbursed {
			return fmt.Errorf("%w: transaction %s already settled", apperrors.ErrConflict, txID)
		}
		s.state.Transactions[i].IsReimbursed = true
		s.state.Transactions = append(s.state.Transactions, credit)
		s.version++
		return nil
	}
	return fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, txID)
}

// TransactionByID looks up a single log entry.
func (s *LedgerStore) TransactionByID(txID string) (domain.Transaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, tx := range s.state.Transactions {
		if tx.ID == txID {
			return tx, true
		}
	}
	return domain.Transaction{}, false
}

// Transactions returns a copy of the full log.
func (s *LedgerStore) Transactions() []domain.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Transaction, len(s.state.Transactions))
	copy(out, s.state.Transactions)
	return out
}

// Query returns the log entries matching the predicate.
func (s *LedgerStore) Query(pred portsrepo.TransactionPredicate) []domain.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Transaction
	for _, tx := range s.state.Transactions {
		if pred(tx) {
			out = append(out, tx)
		}
	}
	return out
}

// --- configuration collections ---

func (s *LedgerStore) Accounts() []domain.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Account, len(s.state.Accounts))
	copy(out, s.state.Accounts)
	return out
}

func (s *LedgerStore) AccountByID(id string) (domain.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.state.Accounts {
		if a.ID == id {
			return a, true
		}
	}
	return domain.Account{}, false
}

// SaveAccount inserts or replaces an account record.
func (s *LedgerStore) SaveAccount(a domain.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.state.Accounts {
		if existing.ID == a.ID {
			s.state.Accounts[i] = a
			s.version++
			return
		}
	}
	s.state.Accounts = append(s.state.Accounts, a)
	s.version++
}

func (s *LedgerStore) Categories() []domain.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Category, len(s.state.Categories))
	copy(out, s.state.Categories)
	return out
}

func (s *LedgerStore) CategoryByID(id string) (domain.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.state.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Category{}, false
}

func (s *LedgerStore) SaveCategory(c domain.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.state.Categories {
		if existing.ID == c.ID {
			s.state.Categories[i] = c
			s.version++
			return
		}
	}
	s.state.Categories = append(s.state.Categories, c)
	s.version++
}

func (s *LedgerStore) DeleteCategory(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.state.Categories {
		if c.ID == id {
			s.state.Categories = append(s.state.Categories[:i], s.state.Categories[i+1:]...)
			s.version++
			return nil
		}
	}
	return fmt.Errorf("%w: category %s", apperrors.ErrNotFound, id)
}

func (s *LedgerStore) Budget() domain.Budget {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyBudget(s.state.Budget)
}

func (s *LedgerStore) SetBudget(b domain.Budget) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Budget = copyBudget(normalizeBudget(b))
	s.version++
}

// copyBudget detaches the maps so callers never alias store state.
func copyBudget(b domain.Budget) domain.Budget {
	limits := make(map[string]decimal.Decimal, len(b.CategoryLimits))
	for k, v := range b.CategoryLimits {
		limits[k] = v
	}
	baselines := make(map[string]decimal.Decimal, len(b.RolloverBalances))
	for k, v := range b.RolloverBalances {
		baselines[k] = v
	}
	b.CategoryLimits = limits
	b.RolloverBalances = baselines
	return b
}

func (s *LedgerStore) Subscriptions() []domain.Subscription {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Subscription, len(s.state.Subscriptions))
	copy(out, s.state.Subscriptions)
	return out
}

func (s *LedgerStore) SubscriptionByID(id string) (domain.Subscription, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sub := range s.state.Subscriptions {
		if sub.ID == id {
			return sub, true
		}
	}
	return domain.Subscription{}, false
}

func (s *LedgerStore) SaveSubscription(sub domain.Subscription) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.state.Subscriptions {
		if existing.ID == sub.ID {
			s.state.Subscriptions[i] = sub
			s.version++
			return
		}
	}
	s.state.Subscriptions = append(s.state.Subscriptions, sub)
	s.version++
}

func (s *LedgerStore) DeleteSubscription(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sub := range s.state.Subscriptions {
		if sub.ID == id {
			s.state.Subscriptions = append(s.state.Subscriptions[:i], s.state.Subscriptions[i+1:]...)
			s.version++
			return nil
		}
	}
	return fmt.Errorf("%w: subscription %s", apperrors.ErrNotFound, id)
}

func (s *LedgerStore) QuickAdds() []domain.QuickAdd {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.QuickAdd, len(s.state.QuickAdds))
	copy(out, s.state.QuickAdds)
	return out
}

func (s *LedgerStore) QuickAddByID(id string) (domain.QuickAdd, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, q := range s.state.QuickAdds {
		if q.ID == id {
			return q, true
		}
	}
	return domain.QuickAdd{}, false
}

func (s *LedgerStore) SaveQuickAdd(q domain.QuickAdd) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.state.QuickAdds {
		if existing.ID == q.ID {
			s.state.QuickAdds[i] = q
			s.version++
			return
		}
	}
	s.state.QuickAdds = append(s.state.QuickAdds, q)
	s.version++
}

func (s *LedgerStore) DeleteQuickAdd(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, q := range s.state.QuickAdds {
		if q.ID == id {
			s.state.QuickAdds = append(s.state.QuickAdds[:i], s.state.QuickAdds[i+1:]...)
			s.version++
			return nil
		}
	}
	return fmt.Errorf("%w: quick-add %s", apperrors.ErrNotFound, id)
}

func (s *LedgerStore) Tags() []domain.Tag {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Tag, len(s.state.Tags))
	copy(out, s.state.Tags)
	return out
}

func (s *LedgerStore) SaveTag(t domain.Tag) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.state.Tags {
		if existing.ID == t.ID {
			s.state.Tags[i] = t
			s.version++
			return
		}
	}
	s.state.Tags = append(s.state.Tags, t)
	s.version++
}

func (s *LedgerStore) DeleteTag(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.state.Tags {
		if t.ID == id {
			s.state.Tags = append(s.state.Tags[:i], s.state.Tags[i+1:]...)
			s.version++
			return nil
		}
	}
	return fmt.Errorf("%w: tag %s", apperrors.ErrNotFound, id)
}

func (s *LedgerStore) AutoDLPrices() []domain.AutoDLPrice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.AutoDLPrice, len(s.state.AutoDLPrices))
	copy(out, s.state.AutoDLPrices)
	return out
}

func (s *LedgerStore) SaveAutoDLPrice(p domain.AutoDLPrice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.state.AutoDLPrices {
		if existing.ID == p.ID {
			s.state.AutoDLPrices[i] = p
			s.version++
			return
		}
	}
	s.state.AutoDLPrices = append(s.state.AutoDLPrices, p)
	s.version++
}

func (s *LedgerStore) DeleteAutoDLPrice(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.state.AutoDLPrices {
		if p.ID == id {
			s.state.AutoDLPrices = append(s.state.AutoDLPrices[:i], s.state.AutoDLPrices[i+1:]...)
			s.version++
			return nil
		}
	}
	return fmt.Errorf("%w: price entry %s", apperrors.ErrNotFound, id)
}

func (s *LedgerStore) APIModels() []domain.APIModel {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.APIModel, len(s.state.APIModels))
	copy(out, s.state.APIModels)
	return out
}

func (s *LedgerStore) SaveAPIModel(m domain.APIModel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.state.APIModels {
		if existing.ID == m.ID {
			s.state.APIModels[i] = m
			s.version++
			return
		}
	}
	s.state.APIModels = append(s.state.APIModels, m)
	s.version++
}

func (s *LedgerStore) DeleteAPIModel(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, m := range s.state.APIModels {
		if m.ID == id {
			s.state.APIModels = append(s.state.APIModels[:i], s.state.APIModels[i+1:]...)
			s.version++
			return nil
		}
	}
	return fmt.Errorf("%w: model entry %s", apperrors.ErrNotFound, id)
}

// --- wholesale state exchange ---

// Snapshot returns a copy of the full state for persistence or export.
func (s *LedgerStore) Snapshot() domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := s.state
	snap.Transactions = append([]domain.Transaction{}, s.state.Transactions...)
	snap.Accounts = append([]domain.Account{}, s.state.Accounts...)
	snap.Categories = append([]domain.Category{}, s.state.Categories...)
	snap.Budget = copyBudget(s.state.Budget)
	snap.QuickAdds = append([]domain.QuickAdd{}, s.state.QuickAdds...)
	snap.Tags = append([]domain.Tag{}, s.state.Tags...)
	snap.Subscriptions = append([]domain.Subscription{}, s.state.Subscriptions...)
	snap.AutoDLPrices = append([]domain.AutoDLPrice{}, s.state.AutoDLPrices...)
	snap.APIModels = append([]domain.APIModel{}, s.state.APIModels...)
	return snap
}

// Restore replaces the entire state with the given snapshot. The previous
// state is discarded without merging; the incoming writer wins.
func (s *LedgerStore) Restore(snap domain.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if snap.Transactions == nil {
		snap.Transactions = []domain.Transaction{}
	}
	if snap.Accounts == nil {
		snap.Accounts = []domain.Account{}
	}
	if snap.Categories == nil {
		snap.Categories = []domain.Category{}
	}
	snap.Budget = normalizeBudget(snap.Budget)
	if snap.QuickAdds == nil {
		snap.QuickAdds = []domain.QuickAdd{}
	}
	if snap.Tags == nil {
		snap.Tags = []domain.Tag{}
	}
	if snap.Subscriptions == nil {
		snap.Subscriptions = []domain.Subscription{}
	}
	if snap.AutoDLPrices == nil {
		snap.AutoDLPrices = []domain.AutoDLPrice{}
	}
	if snap.APIModels == nil {
		snap.APIModels = []domain.APIModel{}
	}
	s.state = snap
	s.version++
}

package domain

// CategoryType tells whether a category classifies expenses or income.
type CategoryType string

const (
	CategoryExpense CategoryType = "expense"
	CategoryIncome  CategoryType = "income"
)

// Category is a configuration record for classifying transactions.
//
// IsAnnualFixed categories (yearly fees, domains, servers) are excluded from
// the monthly budget aggregate. IsRollover categories accumulate unspent
// monthly allocation into future months. IsAutoDL and IsAPI are presentation
// hints consumed only by the calculator widgets; the engine ignores them but
// preserves them through snapshots.
type Category struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Type          CategoryType `json:"type"`
	IsAnnualFixed bool         `json:"isAnnualFixed"`
	IsRollover    bool         `json:"isRollover"`
	IsAutoDL      bool         `json:"isAutoDL,omitempty"`
	IsAPI         bool         `json:"isAPI,omitempty"`
}

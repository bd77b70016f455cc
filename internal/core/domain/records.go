package domain

import "github.com/shopspring/decimal"

// QuickAdd is a stored template for one-tap entry of a frequent transaction.
type QuickAdd struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Icon       string          `json:"icon,omitempty"`
	Type       TransactionType `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
	CategoryID string          `json:"categoryId,omitempty"`
	AccountID  string          `json:"accountId"`
}

// Tag is a free-form label attachable to transactions.
type Tag struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// AutoDLPrice is a GPU rental price dictionary entry consumed by the
// presentation-side compute-cost calculator.
type AutoDLPrice struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	PricePerHour decimal.Decimal `json:"pricePerHour"`
}

// APIModel is a model token-price dictionary entry consumed by the
// presentation-side API-cost calculator.
type APIModel struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	PricePer1M decimal.Decimal `json:"pricePer1M"`
}

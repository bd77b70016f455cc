package dto

import (
	"github.com/cyberledger/cyberledger_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCategoryRequest is the payload for creating a category.
type CreateCategoryRequest struct {
	Name          string              `json:"name" binding:"required"`
	Type          domain.CategoryType `json:"type" binding:"required,oneof=expense income"`
	IsAnnualFixed bool                `json:"isAnnualFixed"`
	IsRollover    bool                `json:"isRollover"`
	IsAutoDL      bool                `json:"isAutoDL"`
	IsAPI         bool                `json:"isAPI"`
}

// CreateQuickAddRequest is the payload for storing a quick-add template.
type CreateQuickAddRequest struct {
	Name       string                 `json:"name" binding:"required"`
	Icon       string                 `json:"icon"`
	Type       domain.TransactionType `json:"type" binding:"required,oneof=expense income"`
	Amount     decimal.Decimal        `json:"amount" binding:"required"`
	CategoryID string                 `json:"categoryId" binding:"required"`
	AccountID  string                 `json:"accountId" binding:"required"`
}

// CreateTagRequest is the payload for creating a tag.
type CreateTagRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color"`
}

// CreateAutoDLPriceRequest adds a GPU price dictionary entry.
type CreateAutoDLPriceRequest struct {
	Name         string          `json:"name" binding:"required"`
	PricePerHour decimal.Decimal `json:"pricePerHour" binding:"required"`
}

// CreateAPIModelRequest adds a model price dictionary entry.
type CreateAPIModelRequest struct {
	Name      string          `json:"name" binding:"required"`
	PricePer1M decimal.Decimal `json:"pricePer1M" binding:"required"`
}

package services

import (
	"context"

	"github.com/cyberledger/cyberledger_backend/internal/core/domain"
	"github.com/cyberledger/cyberledger_backend/internal/dto"
)

// ConfigSvcFacade manages the user-edited configuration records: accounts,
// categories, the budget, quick-add templates, tags, and the two price
// dictionaries.
type ConfigSvcFacade interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)
	RenameAccount(ctx context.Context, id string, req dto.UpdateAccountRequest) (*domain.Account, error)
	// DeactivateAccount hides the account from derived aggregates. The
	// record and its historical transactions stay intact.
	DeactivateAccount(ctx context.Context, id string) error
	ListAccounts(ctx context.Context) []domain.Account

	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	ListCategories(ctx context.Context) []domain.Category

	GetBudget(ctx context.Context) domain.Budget
	UpdateBudget(ctx context.Context, req dto.UpdateBudgetRequest) (*domain.Budget, error)

	CreateQuickAdd(ctx context.Context, req dto.CreateQuickAddRequest) (*domain.QuickAdd, error)
	DeleteQuickAdd(ctx context.Context, id string) error
	ListQuickAdds(ctx context.Context) []domain.QuickAdd

	CreateTag(ctx context.Context, req dto.CreateTagRequest) (*domain.Tag, error)
	DeleteTag(ctx context.Context, id string) error
	ListTags(ctx context.Context) []domain.Tag

	CreateAutoDLPrice(ctx context.Context, req dto.CreateAutoDLPriceRequest) (*domain.AutoDLPrice, error)
	DeleteAutoDLPrice(ctx context.Context, id string) error
	ListAutoDLPrices(ctx context.Context) []domain.AutoDLPrice

	CreateAPIModel(ctx context.Context, req dto.CreateAPIModelRequest) (*domain.APIModel, error)
	DeleteAPIModel(ctx context.Context, id string) error
	ListAPIModels(ctx context.Context) []domain.APIModel

	// NameIndex returns the id-to-name maps used to label responses.
	NameIndex(ctx context.Context) dto.NameIndex
}

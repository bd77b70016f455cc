package services

import (
	"context"
	"fmt"

	"github.com/cyberledger/cyberledger_backend/internal/apperrors"
	"github.com/cyberledger/cyberledger_backend/internal/core/domain"
	portsrepo "github.com/cyberledger/cyberledger_backend/internal/core/ports/repositories"
	portssvc "github.com/cyberledger/cyberledger_backend/internal/core/ports/services"
	"github.com/cyberledger/cyberledger_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type configService struct {
	BaseService
}

// NewConfigService creates the configuration records service.
func NewConfigService(store portsrepo.LedgerStoreFacade, snapshots portsrepo.SnapshotRepositoryFacade) portssvc.ConfigSvcFacade {
	return &configService{BaseService{store: store, snapshots: snapshots}}
}

// --- accounts ---

func (s *configService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	accountType := req.Type
	if accountType == "" {
		accountType = domain.Standard
	}
	account := domain.Account{
		ID:      uuid.NewString(),
		Name:    req.Name,
		Type:    accountType,
		Balance: req.Balance,
		Status:  domain.AccountActive,
	}
	s.store.SaveAccount(account)
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "account created", "account_id", account.ID, "name", account.Name)
	return &account, nil
}

func (s *configService) RenameAccount(ctx context.Context, id string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	account, ok := s.store.AccountByID(id)
	if !ok {
		return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, id)
	}
	account.Name = req.Name
	s.store.SaveAccount(account)
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return &account, nil
}

// DeactivateAccount flips the account inactive. The record and every
// transaction referencing it stay in the ledger.
func (s *configService) DeactivateAccount(ctx context.Context, id string) error {
	account, ok := s.store.AccountByID(id)
	if !ok {
		return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, id)
	}
	account.Status = domain.AccountInactive
	s.store.SaveAccount(account)
	if err := s.persist(ctx); err != nil {
		return err
	}
	s.LogInfo(ctx, "account deactivated", "account_id", id)
	return nil
}

func (s *configService) ListAccounts(ctx context.Context) []domain.Account {
	return s.store.Accounts()
}

// --- categories ---

func (s *configService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	categoryType := req.Type
	if categoryType == "" {
		categoryType = domain.CategoryExpense
	}
	if categoryType != domain.CategoryExpense && categoryType != domain.CategoryIncome {
		return nil, fmt.Errorf("%w: unknown category type %q", apperrors.ErrValidation, categoryType)
	}
	category := domain.Category{
		ID:            uuid.NewString(),
		Name:          req.Name,
		Type:          categoryType,
		IsAnnualFixed: req.IsAnnualFixed,
		IsRollover:    req.IsRollover,
		IsAutoDL:      req.IsAutoDL,
		IsAPI:         req.IsAPI,
	}
	s.store.SaveCategory(category)
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "category created", "category_id", category.ID, "name", category.Name)
	return &category, nil
}

// DeleteCategory removes the record. Historical transactions keep their
// dangling categoryId and display as "unknown".
func (s *configService) DeleteCategory(ctx context.Context, id string) error {
	if err := s.store.DeleteCategory(id); err != nil {
		return err
	}
	return s.persist(ctx)
}

func (s *configService) ListCategories(ctx context.Context) []domain.Category {
	return s.store.Categories()
}

// --- budget ---

func (s *configService) GetBudget(ctx context.Context) domain.Budget {
	return s.store.Budget()
}

func (s *configService) UpdateBudget(ctx context.Context, req dto.UpdateBudgetRequest) (*domain.Budget, error) {
	if req.MonthlyTotal.IsNegative() || req.AnnualTotal.IsNegative() {
		return nil, fmt.Errorf("%w: budget totals must not be negative", apperrors.ErrValidation)
	}
	for id, limit := range req.CategoryLimits {
		if limit.IsNegative() {
			return nil, fmt.Errorf("%w: negative limit for category %s", apperrors.ErrValidation, id)
		}
	}
	budget := domain.Budget{
		MonthlyTotal:     req.MonthlyTotal,
		AnnualTotal:      req.AnnualTotal,
		CategoryLimits:   req.CategoryLimits,
		RolloverBalances: req.RolloverBalances,
	}
	if budget.CategoryLimits == nil {
		budget.CategoryLimits = map[string]decimal.Decimal{}
	}
	if budget.RolloverBalances == nil {
		budget.RolloverBalances = map[string]decimal.Decimal{}
	}
	s.store.SetBudget(budget)
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "budget updated")
	return &budget, nil
}

// --- quick adds ---

func (s *configService) CreateQuickAdd(ctx context.Context, req dto.CreateQuickAddRequest) (*domain.QuickAdd, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: quick add amount must be positive", apperrors.ErrValidation)
	}
	qa := domain.QuickAdd{
		ID:         uuid.NewString(),
		Name:       req.Name,
		Icon:       req.Icon,
		Type:       req.Type,
		Amount:     req.Amount,
		CategoryID: req.CategoryID,
		AccountID:  req.AccountID,
	}
	s.store.SaveQuickAdd(qa)
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return &qa, nil
}

func (s *configService) DeleteQuickAdd(ctx context.Context, id string) error {
	if err := s.store.DeleteQuickAdd(id); err != nil {
		return err
	}
	return s.persist(ctx)
}

func (s *configService) ListQuickAdds(ctx context.Context) []domain.QuickAdd {
	return s.store.QuickAdds()
}

// --- tags ---

func (s *configService) CreateTag(ctx context.Context, req dto.CreateTagRequest) (*domain.Tag, error) {
	tag := domain.Tag{ID: uuid.NewString(), Name: req.Name, Color: req.Color}
	s.store.SaveTag(tag)
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return &tag, nil
}

func (s *configService) DeleteTag(ctx context.Context, id string) error {
	if err := s.store.DeleteTag(id); err != nil {
		return err
	}
	return s.persist(ctx)
}

func (s *configService) ListTags(ctx context.Context) []domain.Tag {
	return s.store.Tags()
}

// --- price dictionaries ---

func (s *configService) CreateAutoDLPrice(ctx context.Context, req dto.CreateAutoDLPriceRequest) (*domain.AutoDLPrice, error) {
	price := domain.AutoDLPrice{ID: uuid.NewString(), Name: req.Name, PricePerHour: req.PricePerHour}
	s.store.SaveAutoDLPrice(price)
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return &price, nil
}

func (s *configService) DeleteAutoDLPrice(ctx context.Context, id string) error {
	if err := s.store.DeleteAutoDLPrice(id); err != nil {
		return err
	}
	return s.persist(ctx)
}

func (s *configService) ListAutoDLPrices(ctx context.Context) []domain.AutoDLPrice {
	return s.store.AutoDLPrices()
}

func (s *configService) CreateAPIModel(ctx context.Context, req dto.CreateAPIModelRequest) (*domain.APIModel, error) {
	model := domain.APIModel{ID: uuid.NewString(), Name: req.Name, PricePer1M: req.PricePer1M}
	s.store.SaveAPIModel(model)
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return &model, nil
}

func (s *configService) DeleteAPIModel(ctx context.Context, id string) error {
	if err := s.store.DeleteAPIModel(id); err != nil {
		return err
	}
	return s.persist(ctx)
}

func (s *configService) ListAPIModels(ctx context.Context) []domain.APIModel {
	return s.store.APIModels()
}

// NameIndex builds the id-to-name maps used to label responses.
func (s *configService) NameIndex(ctx context.Context) dto.NameIndex {
	idx := dto.NameIndex{
		Categories: map[string]string{},
		Accounts:   map[string]string{},
	}
	for _, cat := range s.store.Categories() {
		idx.Categories[cat.ID] = cat.Name
	}
	for _, account := range s.store.Accounts() {
		idx.Accounts[account.ID] = account.Name
	}
	return idx
}

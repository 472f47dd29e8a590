package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Gopher0727/RaidLedger/internal/model"
	"github.com/Gopher0727/RaidLedger/internal/repository"
)

var (
	ErrInvalidIlvlRange   = errors.New("min item level must not exceed max item level")
	ErrFloorOutOfRange    = errors.New("floor must be between 1 and 4")
	ErrCurrencyNotFound   = errors.New("currency not found")
	ErrRequirementExists  = errors.New("item already has a requirement for this currency")
	ErrNonPositiveAmount  = errors.New("requirement amount must be positive")
	ErrNegativeWeeklyCap  = errors.New("weekly cap must not be negative")
	ErrItemLevelOutOfRaid = errors.New("item level is outside the raid's item level range")
	ErrItemTypeNotFound   = errors.New("item type not found")
)

// CreateRaidRequest represents a raid definition request
type CreateRaidRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=100"`
	Tier    string `json:"tier" binding:"required,max=20"`
	Patch   string `json:"patch" binding:"required,max=10"`
	MinIlvl int    `json:"min_ilvl" binding:"required"`
	MaxIlvl int    `json:"max_ilvl" binding:"required"`
}

// UpdateRaidRequest updates a raid; nil fields are left untouched
type UpdateRaidRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=1,max=100"`
	Tier    *string `json:"tier" binding:"omitempty,max=20"`
	Patch   *string `json:"patch" binding:"omitempty,max=10"`
	MinIlvl *int    `json:"min_ilvl"`
	MaxIlvl *int    `json:"max_ilvl"`
}

// CreateItemRequest represents an item definition request
type CreateItemRequest struct {
	Name       string   `json:"name" binding:"required,min=1,max=100"`
	ItemTypeID string   `json:"item_type_id" binding:"required"`
	ItemLevel  int      `json:"item_level" binding:"required"`
	RaidID     string   `json:"raid_id" binding:"required"`
	Floor      int      `json:"floor" binding:"required"`
	IsWeapon   bool     `json:"is_weapon"`
	JobIDs     []string `json:"job_ids"`
}

// UpdateItemRequest updates an item; nil fields are left untouched
type UpdateItemRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=1,max=100"`
	ItemLevel *int    `json:"item_level"`
	Floor     *int    `json:"floor"`
	IsWeapon  *bool   `json:"is_weapon"`
}

// CreateCurrencyRequest represents a currency definition request
type CreateCurrencyRequest struct {
	Name      string `json:"name" binding:"required,min=1,max=50"`
	RaidID    string `json:"raid_id" binding:"required"`
	WeeklyCap int    `json:"weekly_cap"`
}

// CreateRequirementRequest attaches a currency price to an item
type CreateRequirementRequest struct {
	ItemID     string `json:"item_id" binding:"required"`
	CurrencyID string `json:"currency_id" binding:"required"`
	Amount     int    `json:"amount" binding:"required"`
}

// ICatalogService manages the raid/item/currency reference data
type ICatalogService interface {
	CreateRaid(ctx context.Context, req *CreateRaidRequest) (*model.Raid, error)
	GetRaid(ctx context.Context, id string) (*model.Raid, error)
	ListRaids(ctx context.Context) ([]*model.Raid, error)
	UpdateRaid(ctx context.Context, id string, req *UpdateRaidRequest) (*model.Raid, error)
	DeleteRaid(ctx context.Context, id string) error

	CreateItem(ctx context.Context, req *CreateItemRequest) (*model.Item, error)
	GetItem(ctx context.Context, id string) (*model.Item, error)
	ListItems(ctx context.Context, raidID string) ([]*model.Item, error)
	UpdateItem(ctx context.Context, id string, req *UpdateItemRequest) (*model.Item, error)
	DeleteItem(ctx context.Context, id string) error

	ListItemTypes(ctx context.Context) ([]*model.ItemType, error)
	ListJobs(ctx context.Context) ([]*model.Job, error)

	CreateCurrency(ctx context.Context, req *CreateCurrencyRequest) (*model.Currency, error)
	ListCurrencies(ctx context.Context, raidID string) ([]*model.Currency, error)
	CreateRequirement(ctx context.Context, req *CreateRequirementRequest) (*model.CurrencyRequirement, error)
}

// CatalogService implements the ICatalogService interface
type CatalogService struct {
	raidRepo repository.IRaidRepository
	itemRepo repository.IItemRepository
}

// NewCatalogService creates a new ICatalogService instance
func NewCatalogService(raidRepo repository.IRaidRepository, itemRepo repository.IItemRepository) ICatalogService {
	return &CatalogService{
		raidRepo: raidRepo,
		itemRepo: itemRepo,
	}
}

// CreateRaid creates a raid definition
func (s *CatalogService) CreateRaid(ctx context.Context, req *CreateRaidRequest) (*model.Raid, error) {
	if req.MinIlvl < model.MinItemLevel || req.MaxIlvl > model.MaxItemLevel {
		return nil, ErrItemLevelOutOfRange
	}
	if req.MinIlvl > req.MaxIlvl {
		return nil, ErrInvalidIlvlRange
	}

	raid := &model.Raid{
		ID:      uuid.New().String(),
		Name:    req.Name,
		Tier:    req.Tier,
		Patch:   req.Patch,
		MinIlvl: req.MinIlvl,
		MaxIlvl: req.MaxIlvl,
	}
	if err := s.raidRepo.Create(ctx, raid); err != nil {
		return nil, fmt.Errorf("failed to create raid: %w", err)
	}
	return raid, nil
}

// GetRaid finds a raid by ID
func (s *CatalogService) GetRaid(ctx context.Context, id string) (*model.Raid, error) {
	raid, err := s.raidRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRaidNotFound
		}
		return nil, fmt.Errorf("failed to find raid: %w", err)
	}
	return raid, nil
}

// ListRaids lists every raid, newest patch first
func (s *CatalogService) ListRaids(ctx context.Context) ([]*model.Raid, error) {
	return s.raidRepo.FindAll(ctx)
}

// UpdateRaid applies the provided raid fields
func (s *CatalogService) UpdateRaid(ctx context.Context, id string, req *UpdateRaidRequest) (*model.Raid, error) {
	raid, err := s.GetRaid(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		raid.Name = *req.Name
	}
	if req.Tier != nil {
		raid.Tier = *req.Tier
	}
	if req.Patch != nil {
		raid.Patch = *req.Patch
	}
	if req.MinIlvl != nil {
		raid.MinIlvl = *req.MinIlvl
	}
	if req.MaxIlvl != nil {
		raid.MaxIlvl = *req.MaxIlvl
	}

	if raid.MinIlvl < model.MinItemLevel || raid.MaxIlvl > model.MaxItemLevel {
		return nil, ErrItemLevelOutOfRange
	}
	if raid.MinIlvl > raid.MaxIlvl {
		return nil, ErrInvalidIlvlRange
	}

	if err := s.raidRepo.Update(ctx, raid); err != nil {
		return nil, fmt.Errorf("failed to update raid: %w", err)
	}
	return raid, nil
}

// DeleteRaid removes a raid definition
func (s *CatalogService) DeleteRaid(ctx context.Context, id string) error {
	if _, err := s.GetRaid(ctx, id); err != nil {
		return err
	}
	return s.raidRepo.Delete(ctx, id)
}

// CreateItem creates an item, validated against its raid's item level range
func (s *CatalogService) CreateItem(ctx context.Context, req *CreateItemRequest) (*model.Item, error) {
	raid, err := s.GetRaid(ctx, req.RaidID)
	if err != nil {
		return nil, err
	}

	if req.Floor < model.MinFloor || req.Floor > model.MaxFloor {
		return nil, ErrFloorOutOfRange
	}
	if req.ItemLevel < raid.MinIlvl || req.ItemLevel > raid.MaxIlvl {
		return nil, ErrItemLevelOutOfRaid
	}

	types, err := s.itemRepo.FindItemTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load item types: %w", err)
	}
	typeKnown := false
	for _, t := range types {
		if t.ID == req.ItemTypeID {
			typeKnown = true
			break
		}
	}
	if !typeKnown {
		return nil, ErrItemTypeNotFound
	}

	var restrictions []model.Job
	for _, jobID := range req.JobIDs {
		job, err := s.itemRepo.FindJobByID(ctx, jobID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrJobNotFound
			}
			return nil, fmt.Errorf("failed to find job: %w", err)
		}
		restrictions = append(restrictions, *job)
	}

	item := &model.Item{
		ID:              uuid.New().String(),
		Name:            req.Name,
		ItemTypeID:      req.ItemTypeID,
		ItemLevel:       req.ItemLevel,
		RaidID:          req.RaidID,
		Floor:           req.Floor,
		IsWeapon:        req.IsWeapon,
		JobRestrictions: restrictions,
	}
	if err := s.itemRepo.CreateItem(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}
	return item, nil
}

// GetItem finds an item by ID
func (s *CatalogService) GetItem(ctx context.Context, id string) (*model.Item, error) {
	item, err := s.itemRepo.FindItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to find item: %w", err)
	}
	return item, nil
}

// ListItems lists items, optionally filtered by raid
func (s *CatalogService) ListItems(ctx context.Context, raidID string) ([]*model.Item, error) {
	if raidID != "" {
		if _, err := s.GetRaid(ctx, raidID); err != nil {
			return nil, err
		}
	}
	return s.itemRepo.FindItems(ctx, raidID)
}

// UpdateItem applies the provided item fields, re-validated against the
// item's raid.
func (s *CatalogService) UpdateItem(ctx context.Context, id string, req *UpdateItemRequest) (*model.Item, error) {
	item, err := s.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}
	raid, err := s.GetRaid(ctx, item.RaidID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.ItemLevel != nil {
		item.ItemLevel = *req.ItemLevel
	}
	if req.Floor != nil {
		item.Floor = *req.Floor
	}
	if req.IsWeapon != nil {
		item.IsWeapon = *req.IsWeapon
	}

	if item.Floor < model.MinFloor || item.Floor > model.MaxFloor {
		return nil, ErrFloorOutOfRange
	}
	if item.ItemLevel < raid.MinIlvl || item.ItemLevel > raid.MaxIlvl {
		return nil, ErrItemLevelOutOfRaid
	}

	if err := s.itemRepo.UpdateItem(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}
	return item, nil
}

// DeleteItem removes an item definition
func (s *CatalogService) DeleteItem(ctx context.Context, id string) error {
	if _, err := s.GetItem(ctx, id); err != nil {
		return err
	}
	return s.itemRepo.DeleteItem(ctx, id)
}

// ListItemTypes lists equipment slot categories in display order
func (s *CatalogService) ListItemTypes(ctx context.Context) ([]*model.ItemType, error) {
	return s.itemRepo.FindItemTypes(ctx)
}

// ListJobs lists every job
func (s *CatalogService) ListJobs(ctx context.Context) ([]*model.Job, error) {
	return s.itemRepo.FindJobs(ctx)
}

// CreateCurrency creates a currency definition
func (s *CatalogService) CreateCurrency(ctx context.Context, req *CreateCurrencyRequest) (*model.Currency, error) {
	if req.WeeklyCap < 0 {
		return nil, ErrNegativeWeeklyCap
	}
	if _, err := s.GetRaid(ctx, req.RaidID); err != nil {
		return nil, err
	}

	currency := &model.Currency{
		ID:        uuid.New().String(),
		Name:      req.Name,
		RaidID:    req.RaidID,
		WeeklyCap: req.WeeklyCap,
	}
	if err := s.itemRepo.CreateCurrency(ctx, currency); err != nil {
		return nil, fmt.Errorf("failed to create currency: %w", err)
	}
	return currency, nil
}

// ListCurrencies lists currencies, optionally filtered by raid
func (s *CatalogService) ListCurrencies(ctx context.Context, raidID string) ([]*model.Currency, error) {
	if raidID != "" {
		if _, err := s.GetRaid(ctx, raidID); err != nil {
			return nil, err
		}
	}
	return s.itemRepo.FindCurrencies(ctx, raidID)
}

// CreateRequirement attaches a currency price to an item. Each (item,
// currency) pair carries at most one requirement.
func (s *CatalogService) CreateRequirement(ctx context.Context, req *CreateRequirementRequest) (*model.CurrencyRequirement, error) {
	if req.Amount <= 0 {
		return nil, ErrNonPositiveAmount
	}

	if _, err := s.GetItem(ctx, req.ItemID); err != nil {
		return nil, err
	}

	currencies, err := s.itemRepo.FindCurrencies(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to load currencies: %w", err)
	}
	currencyKnown := false
	for _, c := range currencies {
		if c.ID == req.CurrencyID {
			currencyKnown = true
			break
		}
	}
	if !currencyKnown {
		return nil, ErrCurrencyNotFound
	}

	existing, err := s.itemRepo.FindRequirementsByItemIDs(ctx, []string{req.ItemID})
	if err != nil {
		return nil, fmt.Errorf("failed to check requirements: %w", err)
	}
	for _, r := range existing {
		if r.CurrencyID == req.CurrencyID {
			return nil, ErrRequirementExists
		}
	}

	requirement := &model.CurrencyRequirement{
		ID:         uuid.New().String(),
		ItemID:     req.ItemID,
		CurrencyID: req.CurrencyID,
		Amount:     req.Amount,
	}
	if err := s.itemRepo.CreateRequirement(ctx, requirement); err != nil {
		return nil, fmt.Errorf("failed to create requirement: %w", err)
	}
	return requirement, nil
}

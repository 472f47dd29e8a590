package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Gopher0727/RaidLedger/internal/model"
)

// IItemRepository defines the interface for the item/currency catalog
type IItemRepository interface {
	CreateItem(ctx context.Context, item *model.Item) error
	FindItemByID(ctx context.Context, id string) (*model.Item, error)
	FindItems(ctx context.Context, raidID string) ([]*model.Item, error)
	UpdateItem(ctx context.Context, item *model.Item) error
	DeleteItem(ctx context.Context, id string) error

	FindItemTypes(ctx context.Context) ([]*model.ItemType, error)
	FindJobs(ctx context.Context) ([]*model.Job, error)
	FindJobByID(ctx context.Context, id string) (*model.Job, error)

	CreateCurrency(ctx context.Context, currency *model.Currency) error
	FindCurrencies(ctx context.Context, raidID string) ([]*model.Currency, error)

	CreateRequirement(ctx context.Context, req *model.CurrencyRequirement) error
	// FindRequirementsByItemIDs returns all currency requirements for the
	// given items with their currencies preloaded.
	FindRequirementsByItemIDs(ctx context.Context, itemIDs []string) ([]*model.CurrencyRequirement, error)
}

// ItemRepository implements IItemRepository interface
type ItemRepository struct {
	db *gorm.DB
}

// NewItemRepository creates a new IItemRepository instance
func NewItemRepository(db *gorm.DB) IItemRepository {
	return &ItemRepository{db: db}
}

// CreateItem creates a new item with its job restrictions
func (r *ItemRepository) CreateItem(ctx context.Context, item *model.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// FindItemByID finds an item with type and restrictions preloaded
func (r *ItemRepository) FindItemByID(ctx context.Context, id string) (*model.Item, error) {
	var item model.Item
	err := r.db.WithContext(ctx).
		Preload("ItemType").
		Preload("JobRestrictions").
		Where("id = ?", id).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// FindItems lists items, optionally filtered by source raid
func (r *ItemRepository) FindItems(ctx context.Context, raidID string) ([]*model.Item, error) {
	query := r.db.WithContext(ctx).Preload("ItemType")
	if raidID != "" {
		query = query.Where("raid_id = ?", raidID)
	}

	var items []*model.Item
	err := query.Order("floor, item_level desc").Find(&items).Error
	return items, err
}

// UpdateItem updates an existing item
func (r *ItemRepository) UpdateItem(ctx context.Context, item *model.Item) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// DeleteItem removes an item
func (r *ItemRepository) DeleteItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Item{}).Error
}

// FindItemTypes lists slot categories in display order
func (r *ItemRepository) FindItemTypes(ctx context.Context) ([]*model.ItemType, error) {
	var types []*model.ItemType
	err := r.db.WithContext(ctx).Order("sort_order").Find(&types).Error
	return types, err
}

// FindJobs lists every job
func (r *ItemRepository) FindJobs(ctx context.Context) ([]*model.Job, error) {
	var jobs []*model.Job
	err := r.db.WithContext(ctx).Order("name").Find(&jobs).Error
	return jobs, err
}

// FindJobByID finds a job by ID
func (r *ItemRepository) FindJobByID(ctx context.Context, id string) (*model.Job, error) {
	var job model.Job
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&job).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// CreateCurrency creates a new currency
func (r *ItemRepository) CreateCurrency(ctx context.Context, currency *model.Currency) error {
	return r.db.WithContext(ctx).Create(currency).Error
}

// FindCurrencies lists currencies, optionally filtered by raid
func (r *ItemRepository) FindCurrencies(ctx context.Context, raidID string) ([]*model.Currency, error) {
	query := r.db.WithContext(ctx)
	if raidID != "" {
		query = query.Where("raid_id = ?", raidID)
	}

	var currencies []*model.Currency
	err := query.Order("name").Find(&currencies).Error
	return currencies, err
}

// CreateRequirement creates a currency requirement for an item
func (r *ItemRepository) CreateRequirement(ctx context.Context, req *model.CurrencyRequirement) error {
	return r.db.WithContext(ctx).Create(req).Error
}

// FindRequirementsByItemIDs returns requirements for the given items
func (r *ItemRepository) FindRequirementsByItemIDs(ctx context.Context, itemIDs []string) ([]*model.CurrencyRequirement, error) {
	var reqs []*model.CurrencyRequirement
	if len(itemIDs) == 0 {
		return reqs, nil
	}
	err := r.db.WithContext(ctx).
		Preload("Currency").
		Where("item_id IN ?", itemIDs).
		Find(&reqs).Error
	return reqs, err
}

package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Gopher0727/RaidLedger/internal/model"
)

// IRaidRepository defines the interface for raid catalog operations
type IRaidRepository interface {
	Create(ctx context.Context, raid *model.Raid) error
	FindByID(ctx context.Context, id string) (*model.Raid, error)
	FindAll(ctx context.Context) ([]*model.Raid, error)
	Update(ctx context.Context, raid *model.Raid) error
	Delete(ctx context.Context, id string) error
}

// RaidRepository implements IRaidRepository interface
type RaidRepository struct {
	db *gorm.DB
}

// NewRaidRepository creates a new IRaidRepository instance
func NewRaidRepository(db *gorm.DB) IRaidRepository {
	return &RaidRepository{db: db}
}

// Create creates a new raid
func (r *RaidRepository) Create(ctx context.Context, raid *model.Raid) error {
	return r.db.WithContext(ctx).Create(raid).Error
}

// FindByID finds a raid by ID
func (r *RaidRepository) FindByID(ctx context.Context, id string) (*model.Raid, error) {
	var raid model.Raid
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&raid).Error
	if err != nil {
		return nil, err
	}
	return &raid, nil
}

// FindAll lists every raid
func (r *RaidRepository) FindAll(ctx context.Context) ([]*model.Raid, error) {
	var raids []*model.Raid
	err := r.db.WithContext(ctx).Order("patch desc, name").Find(&raids).Error
	return raids, err
}

// Update updates an existing raid
func (r *RaidRepository) Update(ctx context.Context, raid *model.Raid) error {
	return r.db.WithContext(ctx).Save(raid).Error
}

// Delete removes a raid
func (r *RaidRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Raid{}).Error
}

package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Gopher0727/RaidLedger/internal/model"
)

// IDistributionRepository defines the interface for the loot audit log
type IDistributionRepository interface {
	Create(ctx context.Context, dist *model.ItemDistribution) error
	// FindByGroup lists a group's distribution history, newest first
	FindByGroup(ctx context.Context, groupID string) ([]*model.ItemDistribution, error)
}

// DistributionRepository implements IDistributionRepository interface
type DistributionRepository struct {
	db *gorm.DB
}

// NewDistributionRepository creates a new IDistributionRepository instance
func NewDistributionRepository(db *gorm.DB) IDistributionRepository {
	return &DistributionRepository{db: db}
}

// Create appends a distribution record. Records are never updated or
// deleted afterwards.
func (r *DistributionRepository) Create(ctx context.Context, dist *model.ItemDistribution) error {
	return r.db.WithContext(ctx).Create(dist).Error
}

// FindByGroup lists a group's distribution history, newest first
func (r *DistributionRepository) FindByGroup(ctx context.Context, groupID string) ([]*model.ItemDistribution, error) {
	var dists []*model.ItemDistribution
	err := r.db.WithContext(ctx).
		Preload("Player").
		Preload("Item").
		Where("raid_group_id = ?", groupID).
		Order("distributed_at desc").
		Find(&dists).Error
	return dists, err
}

package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Gopher0727/RaidLedger/internal/model"
)

// IRaidGroupRepository defines the interface for raid group data operations
type IRaidGroupRepository interface {
	// CreateWithLeader creates a group and the leader's own player record
	// in one transaction.
	CreateWithLeader(ctx context.Context, group *model.RaidGroup, leader *model.Player) error
	FindByID(ctx context.Context, id string) (*model.RaidGroup, error)
	FindByIDs(ctx context.Context, ids []string) ([]*model.RaidGroup, error)
	FindByLeader(ctx context.Context, leaderID string) ([]*model.RaidGroup, error)
	FindAll(ctx context.Context) ([]*model.RaidGroup, error)
	Update(ctx context.Context, group *model.RaidGroup) error
}

// RaidGroupRepository implements IRaidGroupRepository interface
type RaidGroupRepository struct {
	db *gorm.DB
}

// NewRaidGroupRepository creates a new IRaidGroupRepository instance
func NewRaidGroupRepository(db *gorm.DB) IRaidGroupRepository {
	return &RaidGroupRepository{db: db}
}

// CreateWithLeader creates the group and inserts the leader as its first
// active player atomically.
func (r *RaidGroupRepository) CreateWithLeader(ctx context.Context, group *model.RaidGroup, leader *model.Player) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(group).Error; err != nil {
			return err
		}
		leader.RaidGroupID = group.ID
		return tx.Create(leader).Error
	})
}

// FindByID finds a raid group by ID
func (r *RaidGroupRepository) FindByID(ctx context.Context, id string) (*model.RaidGroup, error) {
	var group model.RaidGroup
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&group).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// FindByIDs finds raid groups matching any of the given IDs
func (r *RaidGroupRepository) FindByIDs(ctx context.Context, ids []string) ([]*model.RaidGroup, error) {
	var groups []*model.RaidGroup
	if len(ids) == 0 {
		return groups, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&groups).Error
	return groups, err
}

// FindByLeader finds every group led by the given user
func (r *RaidGroupRepository) FindByLeader(ctx context.Context, leaderID string) ([]*model.RaidGroup, error) {
	var groups []*model.RaidGroup
	err := r.db.WithContext(ctx).Where("leader_id = ?", leaderID).Find(&groups).Error
	return groups, err
}

// FindAll lists every raid group
func (r *RaidGroupRepository) FindAll(ctx context.Context) ([]*model.RaidGroup, error) {
	var groups []*model.RaidGroup
	err := r.db.WithContext(ctx).Order("created_at").Find(&groups).Error
	return groups, err
}

// Update updates an existing raid group
func (r *RaidGroupRepository) Update(ctx context.Context, group *model.RaidGroup) error {
	return r.db.WithContext(ctx).Save(group).Error
}

package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Gopher0727/RaidLedger/internal/model"
)

// IPlayerRepository defines the interface for roster membership records
type IPlayerRepository interface {
	Create(ctx context.Context, player *model.Player) error
	Update(ctx context.Context, player *model.Player) error
	FindByID(ctx context.Context, id string) (*model.Player, error)
	FindByUserAndGroup(ctx context.Context, userID, groupID string) (*model.Player, error)
	// FindByGroup returns the group's players ordered by join time, which
	// is the enumeration order the priority ranking must preserve on ties.
	FindByGroup(ctx context.Context, groupID string, activeOnly bool) ([]*model.Player, error)
	CountActive(ctx context.Context, groupID string) (int64, error)
	FindGroupIDsByUser(ctx context.Context, userID string) ([]string, error)
	// InTx runs fn against a transactional copy of the repository so
	// check-then-insert sequences stay atomic under concurrent joins.
	InTx(ctx context.Context, fn func(repo IPlayerRepository) error) error
}

// PlayerRepository implements IPlayerRepository interface
type PlayerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new IPlayerRepository instance
func NewPlayerRepository(db *gorm.DB) IPlayerRepository {
	return &PlayerRepository{db: db}
}

// Create creates a new player record
func (r *PlayerRepository) Create(ctx context.Context, player *model.Player) error {
	return r.db.WithContext(ctx).Create(player).Error
}

// Update updates an existing player record
func (r *PlayerRepository) Update(ctx context.Context, player *model.Player) error {
	return r.db.WithContext(ctx).Save(player).Error
}

// FindByID finds a player by ID with the job preloaded
func (r *PlayerRepository) FindByID(ctx context.Context, id string) (*model.Player, error) {
	var player model.Player
	err := r.db.WithContext(ctx).Preload("Job").Where("id = ?", id).First(&player).Error
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// FindByUserAndGroup finds the membership record for a (user, group) pair
func (r *PlayerRepository) FindByUserAndGroup(ctx context.Context, userID, groupID string) (*model.Player, error) {
	var player model.Player
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND raid_group_id = ?", userID, groupID).
		First(&player).Error
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// FindByGroup returns the group's players ordered by join time then ID
func (r *PlayerRepository) FindByGroup(ctx context.Context, groupID string, activeOnly bool) ([]*model.Player, error) {
	query := r.db.WithContext(ctx).Preload("Job").Where("raid_group_id = ?", groupID)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var players []*model.Player
	err := query.Order("joined_at, id").Find(&players).Error
	return players, err
}

// CountActive counts the group's active players
func (r *PlayerRepository) CountActive(ctx context.Context, groupID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Player{}).
		Where("raid_group_id = ? AND is_active = ?", groupID, true).
		Count(&count).Error
	return count, err
}

// FindGroupIDsByUser returns the IDs of groups the user is an active member of
func (r *PlayerRepository) FindGroupIDsByUser(ctx context.Context, userID string) ([]string, error) {
	var groupIDs []string
	err := r.db.WithContext(ctx).Model(&model.Player{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Pluck("raid_group_id", &groupIDs).Error
	return groupIDs, err
}

// InTx runs fn inside a database transaction
func (r *PlayerRepository) InTx(ctx context.Context, fn func(repo IPlayerRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PlayerRepository{db: tx})
	})
}

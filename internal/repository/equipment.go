package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Gopher0727/RaidLedger/internal/model"
)

// IEquipmentRepository defines the interface for equipment set storage
type IEquipmentRepository interface {
	CreateSet(ctx context.Context, set *model.EquipmentSet) error
	// FindSetByID loads a set with its equipments and their items
	FindSetByID(ctx context.Context, id string) (*model.EquipmentSet, error)
	FindSetByPlayerAndType(ctx context.Context, playerID, setType string) (*model.EquipmentSet, error)
	FindSetsByPlayer(ctx context.Context, playerID string) ([]*model.EquipmentSet, error)
	// ReplaceEquipments swaps the set's entries for the given ones atomically
	ReplaceEquipments(ctx context.Context, setID string, equipments []model.Equipment) error
}

// EquipmentRepository implements IEquipmentRepository interface
type EquipmentRepository struct {
	db *gorm.DB
}

// NewEquipmentRepository creates a new IEquipmentRepository instance
func NewEquipmentRepository(db *gorm.DB) IEquipmentRepository {
	return &EquipmentRepository{db: db}
}

// CreateSet creates a new equipment set
func (r *EquipmentRepository) CreateSet(ctx context.Context, set *model.EquipmentSet) error {
	return r.db.WithContext(ctx).Create(set).Error
}

// FindSetByID loads a set with its equipments and their items
func (r *EquipmentRepository) FindSetByID(ctx context.Context, id string) (*model.EquipmentSet, error) {
	var set model.EquipmentSet
	err := r.db.WithContext(ctx).
		Preload("Equipments").
		Preload("Equipments.Item").
		Where("id = ?", id).
		First(&set).Error
	if err != nil {
		return nil, err
	}
	return &set, nil
}

// FindSetByPlayerAndType finds a player's set of the given type
func (r *EquipmentRepository) FindSetByPlayerAndType(ctx context.Context, playerID, setType string) (*model.EquipmentSet, error) {
	var set model.EquipmentSet
	err := r.db.WithContext(ctx).
		Preload("Equipments").
		Preload("Equipments.Item").
		Where("player_id = ? AND set_type = ?", playerID, setType).
		First(&set).Error
	if err != nil {
		return nil, err
	}
	return &set, nil
}

// FindSetsByPlayer lists all of a player's sets
func (r *EquipmentRepository) FindSetsByPlayer(ctx context.Context, playerID string) ([]*model.EquipmentSet, error) {
	var sets []*model.EquipmentSet
	err := r.db.WithContext(ctx).
		Preload("Equipments").
		Preload("Equipments.Item").
		Where("player_id = ?", playerID).
		Order("set_type").
		Find(&sets).Error
	return sets, err
}

// ReplaceEquipments swaps the set's entries inside one transaction
func (r *EquipmentRepository) ReplaceEquipments(ctx context.Context, setID string, equipments []model.Equipment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("equipment_set_id = ?", setID).Delete(&model.Equipment{}).Error; err != nil {
			return err
		}
		if len(equipments) == 0 {
			return nil
		}
		for i := range equipments {
			equipments[i].EquipmentSetID = setID
		}
		return tx.Create(&equipments).Error
	})
}

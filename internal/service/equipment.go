package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Gopher0727/RaidLedger/internal/gearing"
	"github.com/Gopher0727/RaidLedger/internal/model"
	"github.com/Gopher0727/RaidLedger/internal/repository"
)

var (
	ErrSetAlreadyExists = errors.New("player already has a set of this type")
	ErrInvalidSetType   = errors.New("set type must be start, current or target")
	ErrNotSetOwner      = errors.New("equipment set belongs to another user")
	ErrItemNotFound     = errors.New("item not found")
	ErrDuplicateItem    = errors.New("item appears more than once in the set")
)

// CreateSetRequest represents an equipment set creation request
type CreateSetRequest struct {
	PlayerID string `json:"player_id" binding:"required"`
	SetType  string `json:"set_type" binding:"required,oneof=start current target"`
}

// EquipmentInput is one entry of a bulk equipment replacement
type EquipmentInput struct {
	ItemID        string `json:"item_id" binding:"required"`
	IsPentamelded bool   `json:"is_pentamelded"`
}

// ReplaceEquipmentsRequest replaces a set's entire contents
type ReplaceEquipmentsRequest struct {
	Equipments []EquipmentInput `json:"equipments" binding:"required,dive"`
}

// EquipmentSetDetail bundles a set with its computed gear level
type EquipmentSetDetail struct {
	Set       *model.EquipmentSet `json:"set"`
	GearLevel int                 `json:"gear_level"`
}

// IEquipmentService manages players' equipment sets
type IEquipmentService interface {
	CreateSet(ctx context.Context, userID string, req *CreateSetRequest) (*model.EquipmentSet, error)
	GetSet(ctx context.Context, setID string) (*EquipmentSetDetail, error)
	ListSetsByPlayer(ctx context.Context, playerID string) ([]*EquipmentSetDetail, error)
	ReplaceEquipments(ctx context.Context, userID, setID string, req *ReplaceEquipmentsRequest) (*EquipmentSetDetail, error)
}

// EquipmentService implements the IEquipmentService interface
type EquipmentService struct {
	equipmentRepo repository.IEquipmentRepository
	playerRepo    repository.IPlayerRepository
	itemRepo      repository.IItemRepository
}

// NewEquipmentService creates a new IEquipmentService instance
func NewEquipmentService(
	equipmentRepo repository.IEquipmentRepository,
	playerRepo repository.IPlayerRepository,
	itemRepo repository.IItemRepository,
) IEquipmentService {
	return &EquipmentService{
		equipmentRepo: equipmentRepo,
		playerRepo:    playerRepo,
		itemRepo:      itemRepo,
	}
}

// CreateSet creates an empty equipment set. Each player holds at most one
// set per type; the caller must own the player record.
func (s *EquipmentService) CreateSet(ctx context.Context, userID string, req *CreateSetRequest) (*model.EquipmentSet, error) {
	switch req.SetType {
	case model.SetTypeStart, model.SetTypeCurrent, model.SetTypeTarget:
	default:
		return nil, ErrInvalidSetType
	}

	player, err := s.playerRepo.FindByID(ctx, req.PlayerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to find player: %w", err)
	}
	if player.UserID != userID {
		return nil, ErrNotSetOwner
	}

	_, err = s.equipmentRepo.FindSetByPlayerAndType(ctx, req.PlayerID, req.SetType)
	if err == nil {
		return nil, ErrSetAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing set: %w", err)
	}

	set := &model.EquipmentSet{
		ID:       uuid.New().String(),
		PlayerID: req.PlayerID,
		SetType:  req.SetType,
	}
	if err := s.equipmentRepo.CreateSet(ctx, set); err != nil {
		return nil, fmt.Errorf("failed to create set: %w", err)
	}
	return set, nil
}

// GetSet returns a set with its computed gear level
func (s *EquipmentService) GetSet(ctx context.Context, setID string) (*EquipmentSetDetail, error) {
	set, err := s.equipmentRepo.FindSetByID(ctx, setID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSetNotFound
		}
		return nil, fmt.Errorf("failed to find set: %w", err)
	}
	return detailOf(set), nil
}

// ListSetsByPlayer lists a player's sets with computed gear levels
func (s *EquipmentService) ListSetsByPlayer(ctx context.Context, playerID string) ([]*EquipmentSetDetail, error) {
	if _, err := s.playerRepo.FindByID(ctx, playerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to find player: %w", err)
	}

	sets, err := s.equipmentRepo.FindSetsByPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sets: %w", err)
	}

	details := make([]*EquipmentSetDetail, len(sets))
	for i, set := range sets {
		details[i] = detailOf(set)
	}
	return details, nil
}

// ReplaceEquipments swaps a set's contents in one shot. Every referenced
// item must exist and appear at most once; only the owning user may edit.
func (s *EquipmentService) ReplaceEquipments(ctx context.Context, userID, setID string, req *ReplaceEquipmentsRequest) (*EquipmentSetDetail, error) {
	set, err := s.equipmentRepo.FindSetByID(ctx, setID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSetNotFound
		}
		return nil, fmt.Errorf("failed to find set: %w", err)
	}

	player, err := s.playerRepo.FindByID(ctx, set.PlayerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find player: %w", err)
	}
	if player.UserID != userID {
		return nil, ErrNotSetOwner
	}

	seen := make(map[string]struct{}, len(req.Equipments))
	equipments := make([]model.Equipment, 0, len(req.Equipments))
	for _, in := range req.Equipments {
		if _, dup := seen[in.ItemID]; dup {
			return nil, ErrDuplicateItem
		}
		seen[in.ItemID] = struct{}{}

		if _, err := s.itemRepo.FindItemByID(ctx, in.ItemID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrItemNotFound
			}
			return nil, fmt.Errorf("failed to find item: %w", err)
		}

		equipments = append(equipments, model.Equipment{
			ID:            uuid.New().String(),
			ItemID:        in.ItemID,
			IsPentamelded: in.IsPentamelded,
		})
	}

	if err := s.equipmentRepo.ReplaceEquipments(ctx, setID, equipments); err != nil {
		return nil, fmt.Errorf("failed to replace equipments: %w", err)
	}

	updated, err := s.equipmentRepo.FindSetByID(ctx, setID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload set: %w", err)
	}
	return detailOf(updated), nil
}

func detailOf(set *model.EquipmentSet) *EquipmentSetDetail {
	return &EquipmentSetDetail{
		Set:       set,
		GearLevel: gearing.EffectiveItemLevel(setEntries(set)),
	}
}

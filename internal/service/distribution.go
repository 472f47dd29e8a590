package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Gopher0727/RaidLedger/internal/model"
	"github.com/Gopher0727/RaidLedger/internal/repository"
)

var (
	ErrNotGroupLeader   = errors.New("only the group leader may record distributions")
	ErrPlayerNotInGroup = errors.New("player does not belong to this group")
)

// RecordDistributionRequest represents a loot award entry
type RecordDistributionRequest struct {
	PlayerID   string `json:"player_id" binding:"required"`
	ItemID     string `json:"item_id" binding:"required"`
	WeekNumber int    `json:"week_number" binding:"required,min=1"`
	Notes      string `json:"notes"`
}

// IDistributionService records and lists loot awards.
// The log is append-only; there is no update or delete.
type IDistributionService interface {
	Record(ctx context.Context, userID, groupID string, req *RecordDistributionRequest) (*model.ItemDistribution, error)
	History(ctx context.Context, groupID string) ([]*model.ItemDistribution, error)
}

// DistributionService implements the IDistributionService interface
type DistributionService struct {
	distRepo   repository.IDistributionRepository
	groupRepo  repository.IRaidGroupRepository
	playerRepo repository.IPlayerRepository
	itemRepo   repository.IItemRepository
}

// NewDistributionService creates a new IDistributionService instance
func NewDistributionService(
	distRepo repository.IDistributionRepository,
	groupRepo repository.IRaidGroupRepository,
	playerRepo repository.IPlayerRepository,
	itemRepo repository.IItemRepository,
) IDistributionService {
	return &DistributionService{
		distRepo:   distRepo,
		groupRepo:  groupRepo,
		playerRepo: playerRepo,
		itemRepo:   itemRepo,
	}
}

// Record appends a distribution entry. Only the group leader may record,
// and the awarded player must be an active member of the group.
func (s *DistributionService) Record(ctx context.Context, userID, groupID string, req *RecordDistributionRequest) (*model.ItemDistribution, error) {
	group, err := s.groupRepo.FindByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to find group: %w", err)
	}
	if group.LeaderID != userID {
		return nil, ErrNotGroupLeader
	}

	player, err := s.playerRepo.FindByID(ctx, req.PlayerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to find player: %w", err)
	}
	if player.RaidGroupID != groupID || !player.IsActive {
		return nil, ErrPlayerNotInGroup
	}

	if _, err := s.itemRepo.FindItemByID(ctx, req.ItemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to find item: %w", err)
	}

	dist := &model.ItemDistribution{
		ID:            uuid.New().String(),
		RaidGroupID:   groupID,
		PlayerID:      req.PlayerID,
		ItemID:        req.ItemID,
		DistributedAt: time.Now(),
		WeekNumber:    req.WeekNumber,
		Notes:         req.Notes,
	}
	if err := s.distRepo.Create(ctx, dist); err != nil {
		return nil, fmt.Errorf("failed to record distribution: %w", err)
	}
	return dist, nil
}

// History lists a group's distribution log, newest first
func (s *DistributionService) History(ctx context.Context, groupID string) ([]*model.ItemDistribution, error) {
	if _, err := s.groupRepo.FindByID(ctx, groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to find group: %w", err)
	}
	return s.distRepo.FindByGroup(ctx, groupID)
}

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

// MaxGroupMembers is the hard cap on active members per raid group
const MaxGroupMembers = 8

var (
	ErrGroupNotFound             = errors.New("raid group not found")
	ErrRaidNotFound              = errors.New("raid not found")
	ErrJobNotFound               = errors.New("job not found")
	ErrGroupFull                 = errors.New("raid group is full")
	ErrAlreadyMember             = errors.New("user is already a member of this group")
	ErrNotMember                 = errors.New("user is not a member of this group")
	ErrLeaderCannotLeave         = errors.New("the group leader cannot leave the group")
	ErrItemLevelOutOfRange       = errors.New("item level must be between 1 and 999")
	ErrInvalidDistributionMethod = errors.New("distribution method must be priority or rotation")
)

// CreateGroupRequest represents a raid group creation request.
// The leader fields are optional; missing values fall back to the raid's
// minimum item level and the creator's character name.
type CreateGroupRequest struct {
	Name               string `json:"name" binding:"required,min=1,max=100"`
	RaidID             string `json:"raid_id" binding:"required"`
	DistributionMethod string `json:"distribution_method" binding:"omitempty,oneof=priority rotation"`

	LeaderJobID         string `json:"leader_job_id"`
	LeaderCharacterName string `json:"leader_character_name" binding:"max=50"`
	LeaderItemLevel     int    `json:"leader_item_level"`
}

// JoinGroupRequest represents a join request
type JoinGroupRequest struct {
	JobID         string `json:"job_id"`
	CharacterName string `json:"character_name" binding:"required,min=1,max=50"`
	ItemLevel     int    `json:"item_level" binding:"required"`
}

// GroupDetail bundles a group with its roster
type GroupDetail struct {
	Group       *model.RaidGroup `json:"group"`
	Players     []*model.Player  `json:"players"`
	PlayerCount int              `json:"player_count"`
}

// IRosterService manages raid groups and their membership lifecycle
type IRosterService interface {
	CreateGroup(ctx context.Context, leaderID string, req *CreateGroupRequest) (*model.RaidGroup, error)
	GetGroup(ctx context.Context, groupID string) (*GroupDetail, error)
	MyGroups(ctx context.Context, userID string) ([]*model.RaidGroup, error)
	JoinGroup(ctx context.Context, userID, groupID string, req *JoinGroupRequest) (*model.Player, error)
	LeaveGroup(ctx context.Context, userID, groupID string) error
	ListPlayers(ctx context.Context, groupID string, activeOnly bool) ([]*model.Player, error)
}

// RosterService implements the IRosterService interface
type RosterService struct {
	groupRepo  repository.IRaidGroupRepository
	playerRepo repository.IPlayerRepository
	raidRepo   repository.IRaidRepository
	itemRepo   repository.IItemRepository
	userRepo   repository.IUserRepository
}

// NewRosterService creates a new IRosterService instance
func NewRosterService(
	groupRepo repository.IRaidGroupRepository,
	playerRepo repository.IPlayerRepository,
	raidRepo repository.IRaidRepository,
	itemRepo repository.IItemRepository,
	userRepo repository.IUserRepository,
) IRosterService {
	return &RosterService{
		groupRepo:  groupRepo,
		playerRepo: playerRepo,
		raidRepo:   raidRepo,
		itemRepo:   itemRepo,
		userRepo:   userRepo,
	}
}

// CreateGroup creates a raid group and enrolls the creator as its leader
// and first active player.
func (s *RosterService) CreateGroup(ctx context.Context, leaderID string, req *CreateGroupRequest) (*model.RaidGroup, error) {
	raid, err := s.raidRepo.FindByID(ctx, req.RaidID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRaidNotFound
		}
		return nil, fmt.Errorf("failed to find raid: %w", err)
	}

	leader, err := s.userRepo.FindByID(ctx, leaderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find leader: %w", err)
	}

	method := req.DistributionMethod
	switch method {
	case "":
		method = model.DistributionPriority
	case model.DistributionPriority, model.DistributionRotation:
	default:
		return nil, ErrInvalidDistributionMethod
	}

	group := &model.RaidGroup{
		ID:                 uuid.New().String(),
		Name:               req.Name,
		RaidID:             raid.ID,
		LeaderID:           leader.ID,
		DistributionMethod: method,
		IsActive:           true,
	}

	// Defaults when the leader supplied no character details
	characterName := req.LeaderCharacterName
	if characterName == "" {
		characterName = leader.CharacterName
		if characterName == "" {
			characterName = leader.UserName
		}
	}
	itemLevel := req.LeaderItemLevel
	if itemLevel == 0 {
		itemLevel = raid.MinIlvl
	}
	if itemLevel < model.MinItemLevel || itemLevel > model.MaxItemLevel {
		return nil, ErrItemLevelOutOfRange
	}

	var jobID *string
	if req.LeaderJobID != "" {
		job, err := s.itemRepo.FindJobByID(ctx, req.LeaderJobID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrJobNotFound
			}
			return nil, fmt.Errorf("failed to find job: %w", err)
		}
		jobID = &job.ID
	}

	player := &model.Player{
		ID:            uuid.New().String(),
		UserID:        leader.ID,
		JobID:         jobID,
		CharacterName: characterName,
		ItemLevel:     itemLevel,
		IsActive:      true,
	}

	if err := s.groupRepo.CreateWithLeader(ctx, group, player); err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}
	return group, nil
}

// GetGroup returns a group with its active roster
func (s *RosterService) GetGroup(ctx context.Context, groupID string) (*GroupDetail, error) {
	group, err := s.groupRepo.FindByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to find group: %w", err)
	}

	players, err := s.playerRepo.FindByGroup(ctx, groupID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}

	return &GroupDetail{
		Group:       group,
		Players:     players,
		PlayerCount: len(players),
	}, nil
}

// MyGroups lists every group the user leads or is an active member of
func (s *RosterService) MyGroups(ctx context.Context, userID string) ([]*model.RaidGroup, error) {
	memberIDs, err := s.playerRepo.FindGroupIDsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}

	groups, err := s.groupRepo.FindByIDs(ctx, memberIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load groups: %w", err)
	}

	led, err := s.groupRepo.FindByLeader(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load led groups: %w", err)
	}

	seen := make(map[string]struct{}, len(groups))
	for _, g := range groups {
		seen[g.ID] = struct{}{}
	}
	for _, g := range led {
		if _, ok := seen[g.ID]; !ok {
			groups = append(groups, g)
		}
	}
	return groups, nil
}

// JoinGroup moves the (user, group) membership from absent or inactive to
// active. The count check and insert run in one transaction so concurrent
// joins cannot oversubscribe the cap or double-insert a member.
func (s *RosterService) JoinGroup(ctx context.Context, userID, groupID string, req *JoinGroupRequest) (*model.Player, error) {
	if req.ItemLevel < model.MinItemLevel || req.ItemLevel > model.MaxItemLevel {
		return nil, ErrItemLevelOutOfRange
	}

	if _, err := s.groupRepo.FindByID(ctx, groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to find group: %w", err)
	}

	var jobID *string
	if req.JobID != "" {
		job, err := s.itemRepo.FindJobByID(ctx, req.JobID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrJobNotFound
			}
			return nil, fmt.Errorf("failed to find job: %w", err)
		}
		jobID = &job.ID
	}

	var joined *model.Player
	err := s.playerRepo.InTx(ctx, func(repo repository.IPlayerRepository) error {
		existing, err := repo.FindByUserAndGroup(ctx, userID, groupID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check membership: %w", err)
		}

		if existing != nil {
			if existing.IsActive {
				return ErrAlreadyMember
			}
			// Rejoin: reactivate the soft-left record with fresh details
			existing.JobID = jobID
			existing.CharacterName = req.CharacterName
			existing.ItemLevel = req.ItemLevel
			existing.IsActive = true
			if err := repo.Update(ctx, existing); err != nil {
				return fmt.Errorf("failed to reactivate player: %w", err)
			}
			joined = existing
			return nil
		}

		count, err := repo.CountActive(ctx, groupID)
		if err != nil {
			return fmt.Errorf("failed to count members: %w", err)
		}
		if count >= MaxGroupMembers {
			return ErrGroupFull
		}

		player := &model.Player{
			ID:            uuid.New().String(),
			UserID:        userID,
			RaidGroupID:   groupID,
			JobID:         jobID,
			CharacterName: req.CharacterName,
			ItemLevel:     req.ItemLevel,
			IsActive:      true,
		}
		if err := repo.Create(ctx, player); err != nil {
			return fmt.Errorf("failed to create player: %w", err)
		}
		joined = player
		return nil
	})
	if err != nil {
		return nil, err
	}
	return joined, nil
}

// LeaveGroup deactivates the user's membership. The player row is kept so
// distribution history stays intact; the leader cannot leave at all.
func (s *RosterService) LeaveGroup(ctx context.Context, userID, groupID string) error {
	group, err := s.groupRepo.FindByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGroupNotFound
		}
		return fmt.Errorf("failed to find group: %w", err)
	}

	if group.LeaderID == userID {
		return ErrLeaderCannotLeave
	}

	player, err := s.playerRepo.FindByUserAndGroup(ctx, userID, groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotMember
		}
		return fmt.Errorf("failed to find player: %w", err)
	}
	if !player.IsActive {
		return ErrNotMember
	}

	player.IsActive = false
	if err := s.playerRepo.Update(ctx, player); err != nil {
		return fmt.Errorf("failed to deactivate player: %w", err)
	}
	return nil
}

// ListPlayers lists a group's players
func (s *RosterService) ListPlayers(ctx context.Context, groupID string, activeOnly bool) ([]*model.Player, error) {
	if _, err := s.groupRepo.FindByID(ctx, groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to find group: %w", err)
	}
	return s.playerRepo.FindByGroup(ctx, groupID, activeOnly)
}

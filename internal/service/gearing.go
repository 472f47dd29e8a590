package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Gopher0727/RaidLedger/internal/gearing"
	"github.com/Gopher0727/RaidLedger/internal/model"
	"github.com/Gopher0727/RaidLedger/internal/repository"
)

var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrSetNotFound    = errors.New("equipment set not found")
	ErrNoTargetSet    = errors.New("player has no target equipment set")
)

// GearLevelResult reports the effective item level of one equipment set
type GearLevelResult struct {
	SetID     string `json:"set_id"`
	SetType   string `json:"set_type"`
	GearLevel int    `json:"gear_level"`
	ItemCount int    `json:"item_count"`
}

// OutstandingItemsResult lists the target items a player still lacks
type OutstandingItemsResult struct {
	PlayerID string        `json:"player_id"`
	Items    []*model.Item `json:"items"`
}

// CurrencyNeedsResult maps currency names to the total amount still needed
type CurrencyNeedsResult struct {
	PlayerID string         `json:"player_id"`
	Needs    map[string]int `json:"needs"`
}

// PriorityEntry is one row of a group's distribution priority ranking
type PriorityEntry struct {
	PlayerID      string `json:"player_id"`
	CharacterName string `json:"character_name"`
	TotalNeeded   int    `json:"total_needed"`
	ItemsNeeded   int    `json:"items_needed"`
}

// IGearingService computes gear progression values from stored equipment.
// Results are derived on every call and never cached.
type IGearingService interface {
	ComputeGearLevel(ctx context.Context, setID string) (*GearLevelResult, error)
	ComputeOutstandingItems(ctx context.Context, playerID string) (*OutstandingItemsResult, error)
	ComputeCurrencyNeeds(ctx context.Context, playerID string) (*CurrencyNeedsResult, error)
	ComputeDistributionPriority(ctx context.Context, groupID string) ([]PriorityEntry, error)
}

// GearingService implements the IGearingService interface
type GearingService struct {
	equipmentRepo repository.IEquipmentRepository
	playerRepo    repository.IPlayerRepository
	groupRepo     repository.IRaidGroupRepository
	itemRepo      repository.IItemRepository
}

// NewGearingService creates a new IGearingService instance
func NewGearingService(
	equipmentRepo repository.IEquipmentRepository,
	playerRepo repository.IPlayerRepository,
	groupRepo repository.IRaidGroupRepository,
	itemRepo repository.IItemRepository,
) IGearingService {
	return &GearingService{
		equipmentRepo: equipmentRepo,
		playerRepo:    playerRepo,
		groupRepo:     groupRepo,
		itemRepo:      itemRepo,
	}
}

// ComputeGearLevel computes the weapon-weighted effective item level of a set
func (s *GearingService) ComputeGearLevel(ctx context.Context, setID string) (*GearLevelResult, error) {
	set, err := s.equipmentRepo.FindSetByID(ctx, setID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSetNotFound
		}
		return nil, fmt.Errorf("failed to find set: %w", err)
	}

	return &GearLevelResult{
		SetID:     set.ID,
		SetType:   set.SetType,
		GearLevel: gearing.EffectiveItemLevel(setEntries(set)),
		ItemCount: len(set.Equipments),
	}, nil
}

// ComputeOutstandingItems diffs the player's target set against the current
// one. A missing current set means nothing is owned yet, so every target
// item is outstanding. A missing target set is an error.
func (s *GearingService) ComputeOutstandingItems(ctx context.Context, playerID string) (*OutstandingItemsResult, error) {
	if _, err := s.playerRepo.FindByID(ctx, playerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to find player: %w", err)
	}

	items, err := s.outstandingItems(ctx, playerID)
	if err != nil {
		return nil, err
	}

	return &OutstandingItemsResult{
		PlayerID: playerID,
		Items:    items,
	}, nil
}

// ComputeCurrencyNeeds sums the currency prices of every outstanding item,
// keyed by currency name. Uncapped totals: weekly caps bound acquisition
// rate, not demand.
func (s *GearingService) ComputeCurrencyNeeds(ctx context.Context, playerID string) (*CurrencyNeedsResult, error) {
	if _, err := s.playerRepo.FindByID(ctx, playerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to find player: %w", err)
	}

	needs, _, err := s.currencyNeeds(ctx, playerID)
	if err != nil {
		return nil, err
	}

	return &CurrencyNeedsResult{
		PlayerID: playerID,
		Needs:    needs,
	}, nil
}

// ComputeDistributionPriority ranks the group's active players by total
// outstanding currency need, highest first. Players without a target set
// are skipped rather than ranked at zero. Ties keep roster order, which is
// join time then ID.
func (s *GearingService) ComputeDistributionPriority(ctx context.Context, groupID string) ([]PriorityEntry, error) {
	if _, err := s.groupRepo.FindByID(ctx, groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to find group: %w", err)
	}

	players, err := s.playerRepo.FindByGroup(ctx, groupID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}

	needs := make([]gearing.PlayerNeed, 0, len(players))
	byPlayer := make(map[string]*model.Player, len(players))
	for _, p := range players {
		byPlayer[p.ID] = p

		perCurrency, itemCount, err := s.currencyNeeds(ctx, p.ID)
		if err != nil {
			if errors.Is(err, ErrNoTargetSet) {
				continue
			}
			return nil, err
		}

		total := 0
		for _, amount := range perCurrency {
			total += amount
		}
		needs = append(needs, gearing.PlayerNeed{
			PlayerID:    p.ID,
			TotalNeeded: total,
			ItemsNeeded: itemCount,
		})
	}

	gearing.SortByTotalNeed(needs)

	ranking := make([]PriorityEntry, len(needs))
	for i, n := range needs {
		ranking[i] = PriorityEntry{
			PlayerID:      n.PlayerID,
			CharacterName: byPlayer[n.PlayerID].CharacterName,
			TotalNeeded:   n.TotalNeeded,
			ItemsNeeded:   n.ItemsNeeded,
		}
	}
	return ranking, nil
}

// outstandingItems loads the target and current sets and returns the target
// items the player does not own yet, in target-set order.
func (s *GearingService) outstandingItems(ctx context.Context, playerID string) ([]*model.Item, error) {
	target, err := s.equipmentRepo.FindSetByPlayerAndType(ctx, playerID, model.SetTypeTarget)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoTargetSet
		}
		return nil, fmt.Errorf("failed to find target set: %w", err)
	}

	var currentIDs []string
	current, err := s.equipmentRepo.FindSetByPlayerAndType(ctx, playerID, model.SetTypeCurrent)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to find current set: %w", err)
	}
	if current != nil {
		for _, eq := range current.Equipments {
			currentIDs = append(currentIDs, eq.ItemID)
		}
	}

	targetIDs := make([]string, 0, len(target.Equipments))
	itemsByID := make(map[string]*model.Item, len(target.Equipments))
	for i := range target.Equipments {
		eq := &target.Equipments[i]
		targetIDs = append(targetIDs, eq.ItemID)
		itemsByID[eq.ItemID] = eq.Item
	}

	missingIDs := gearing.MissingItems(targetIDs, currentIDs)

	items := make([]*model.Item, 0, len(missingIDs))
	for _, id := range missingIDs {
		items = append(items, itemsByID[id])
	}
	return items, nil
}

// currencyNeeds aggregates the currency requirements of the player's
// outstanding items. Returns the per-currency map and the item count.
func (s *GearingService) currencyNeeds(ctx context.Context, playerID string) (map[string]int, int, error) {
	items, err := s.outstandingItems(ctx, playerID)
	if err != nil {
		return nil, 0, err
	}

	itemIDs := make([]string, len(items))
	for i, item := range items {
		itemIDs[i] = item.ID
	}

	dbReqs, err := s.itemRepo.FindRequirementsByItemIDs(ctx, itemIDs)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load requirements: %w", err)
	}

	reqs := make([]gearing.Requirement, 0, len(dbReqs))
	for _, r := range dbReqs {
		if r.Currency == nil {
			continue
		}
		reqs = append(reqs, gearing.Requirement{
			Currency: r.Currency.Name,
			Amount:   r.Amount,
		})
	}

	return gearing.AggregateNeeds(reqs), len(items), nil
}

func setEntries(set *model.EquipmentSet) []gearing.Entry {
	entries := make([]gearing.Entry, 0, len(set.Equipments))
	for _, eq := range set.Equipments {
		if eq.Item == nil {
			continue
		}
		entries = append(entries, gearing.Entry{
			ItemLevel: eq.Item.ItemLevel,
			Weapon:    eq.Item.IsWeapon,
		})
	}
	return entries
}

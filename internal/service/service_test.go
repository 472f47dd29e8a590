package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Gopher0727/RaidLedger/internal/model"
	"github.com/Gopher0727/RaidLedger/internal/repository"
	"github.com/Gopher0727/RaidLedger/internal/storage"
)

// testEnv wires every repository and service against one in-memory database
type testEnv struct {
	db *gorm.DB

	userRepo      repository.IUserRepository
	raidRepo      repository.IRaidRepository
	groupRepo     repository.IRaidGroupRepository
	playerRepo    repository.IPlayerRepository
	itemRepo      repository.IItemRepository
	equipmentRepo repository.IEquipmentRepository
	distRepo      repository.IDistributionRepository
	scheduleRepo  repository.IScheduleRepository

	roster       IRosterService
	gearing      IGearingService
	equipment    IEquipmentService
	catalog      ICatalogService
	distribution IDistributionService
	schedule     IScheduleService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	// A named shared-cache database so every pooled connection sees the
	// same schema; the name keeps parallel tests isolated.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, storage.Migrate(db))

	env := &testEnv{
		db:            db,
		userRepo:      repository.NewUserRepository(db),
		raidRepo:      repository.NewRaidRepository(db),
		groupRepo:     repository.NewRaidGroupRepository(db),
		playerRepo:    repository.NewPlayerRepository(db),
		itemRepo:      repository.NewItemRepository(db),
		equipmentRepo: repository.NewEquipmentRepository(db),
		distRepo:      repository.NewDistributionRepository(db),
		scheduleRepo:  repository.NewScheduleRepository(db),
	}
	env.roster = NewRosterService(env.groupRepo, env.playerRepo, env.raidRepo, env.itemRepo, env.userRepo)
	env.gearing = NewGearingService(env.equipmentRepo, env.playerRepo, env.groupRepo, env.itemRepo)
	env.equipment = NewEquipmentService(env.equipmentRepo, env.playerRepo, env.itemRepo)
	env.catalog = NewCatalogService(env.raidRepo, env.itemRepo)
	env.distribution = NewDistributionService(env.distRepo, env.groupRepo, env.playerRepo, env.itemRepo)
	env.schedule = NewScheduleService(env.scheduleRepo, env.groupRepo)
	return env
}

func (e *testEnv) createUser(t *testing.T, username string) *model.User {
	t.Helper()
	user := &model.User{
		ID:           uuid.New().String(),
		UserName:     username,
		Email:        username + "@raid.test",
		PasswordHash: "x",
	}
	require.NoError(t, e.userRepo.Create(context.Background(), user))
	return user
}

func (e *testEnv) createRaid(t *testing.T, name string, minIlvl, maxIlvl int) *model.Raid {
	t.Helper()
	raid := &model.Raid{
		ID:      uuid.New().String(),
		Name:    name,
		Tier:    "savage",
		Patch:   "7.2",
		MinIlvl: minIlvl,
		MaxIlvl: maxIlvl,
	}
	require.NoError(t, e.raidRepo.Create(context.Background(), raid))
	return raid
}

func (e *testEnv) createJob(t *testing.T, name, role string) *model.Job {
	t.Helper()
	job := &model.Job{ID: uuid.New().String(), Name: name, Role: role}
	require.NoError(t, e.db.Create(job).Error)
	return job
}

func (e *testEnv) createItemType(t *testing.T, name string, order int) *model.ItemType {
	t.Helper()
	it := &model.ItemType{ID: uuid.New().String(), Name: name, Slot: name, SortOrder: order}
	require.NoError(t, e.db.Create(it).Error)
	return it
}

func (e *testEnv) createItem(t *testing.T, raid *model.Raid, typeID, name string, ilvl int, weapon bool) *model.Item {
	t.Helper()
	item := &model.Item{
		ID:         uuid.New().String(),
		Name:       name,
		ItemTypeID: typeID,
		ItemLevel:  ilvl,
		RaidID:     raid.ID,
		Floor:      1,
		IsWeapon:   weapon,
	}
	require.NoError(t, e.itemRepo.CreateItem(context.Background(), item))
	return item
}

func (e *testEnv) createCurrency(t *testing.T, raid *model.Raid, name string, cap int) *model.Currency {
	t.Helper()
	currency := &model.Currency{ID: uuid.New().String(), Name: name, RaidID: raid.ID, WeeklyCap: cap}
	require.NoError(t, e.itemRepo.CreateCurrency(context.Background(), currency))
	return currency
}

func (e *testEnv) requireCurrency(t *testing.T, item *model.Item, currency *model.Currency, amount int) {
	t.Helper()
	req := &model.CurrencyRequirement{
		ID:         uuid.New().String(),
		ItemID:     item.ID,
		CurrencyID: currency.ID,
		Amount:     amount,
	}
	require.NoError(t, e.itemRepo.CreateRequirement(context.Background(), req))
}

// createPlayer inserts a membership record directly, with an explicit join
// time so roster order is deterministic in tests.
func (e *testEnv) createPlayer(t *testing.T, user *model.User, groupID, name string, ilvl int, joinedAt time.Time) *model.Player {
	t.Helper()
	player := &model.Player{
		ID:            uuid.New().String(),
		UserID:        user.ID,
		RaidGroupID:   groupID,
		CharacterName: name,
		ItemLevel:     ilvl,
		IsActive:      true,
		JoinedAt:      joinedAt,
	}
	require.NoError(t, e.playerRepo.Create(context.Background(), player))
	return player
}

// setWithItems creates an equipment set holding the given items
func (e *testEnv) setWithItems(t *testing.T, playerID, setType string, items ...*model.Item) *model.EquipmentSet {
	t.Helper()
	set := &model.EquipmentSet{
		ID:       uuid.New().String(),
		PlayerID: playerID,
		SetType:  setType,
	}
	require.NoError(t, e.equipmentRepo.CreateSet(context.Background(), set))

	equipments := make([]model.Equipment, len(items))
	for i, item := range items {
		equipments[i] = model.Equipment{ID: uuid.New().String(), ItemID: item.ID}
	}
	require.NoError(t, e.equipmentRepo.ReplaceEquipments(context.Background(), set.ID, equipments))
	return set
}

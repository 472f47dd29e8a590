package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gopher0727/RaidLedger/internal/model"
)

func (e *testEnv) soloPlayer(t *testing.T, username string) (*model.User, *model.Player, *model.Raid) {
	t.Helper()
	raid := e.createRaid(t, "Alpha", 690, 735)
	user := e.createUser(t, username)
	group, err := e.roster.CreateGroup(context.Background(), user.ID, &CreateGroupRequest{Name: "G", RaidID: raid.ID})
	require.NoError(t, err)
	players, err := e.roster.ListPlayers(context.Background(), group.ID, true)
	require.NoError(t, err)
	return user, players[0], raid
}

func TestCreateSet(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user, player, _ := env.soloPlayer(t, "lead")

	set, err := env.equipment.CreateSet(ctx, user.ID, &CreateSetRequest{
		PlayerID: player.ID,
		SetType:  model.SetTypeTarget,
	})
	require.NoError(t, err)
	assert.Equal(t, player.ID, set.PlayerID)
	assert.Equal(t, model.SetTypeTarget, set.SetType)
}

func TestCreateSetDuplicateType(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user, player, _ := env.soloPlayer(t, "lead")

	_, err := env.equipment.CreateSet(ctx, user.ID, &CreateSetRequest{PlayerID: player.ID, SetType: model.SetTypeTarget})
	require.NoError(t, err)

	_, err = env.equipment.CreateSet(ctx, user.ID, &CreateSetRequest{PlayerID: player.ID, SetType: model.SetTypeTarget})
	assert.ErrorIs(t, err, ErrSetAlreadyExists)

	// A different type is still fine
	_, err = env.equipment.CreateSet(ctx, user.ID, &CreateSetRequest{PlayerID: player.ID, SetType: model.SetTypeCurrent})
	assert.NoError(t, err)
}

func TestCreateSetOwnership(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	_, player, _ := env.soloPlayer(t, "lead")
	stranger := env.createUser(t, "stranger")

	_, err := env.equipment.CreateSet(ctx, stranger.ID, &CreateSetRequest{PlayerID: player.ID, SetType: model.SetTypeTarget})
	assert.ErrorIs(t, err, ErrNotSetOwner)
}

func TestReplaceEquipments(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user, player, raid := env.soloPlayer(t, "lead")

	slot := env.createItemType(t, "Weapon", 1)
	weapon := env.createItem(t, raid, slot.ID, "Savage Sword", 735, true)
	body := env.createItem(t, raid, slot.ID, "Savage Mail", 730, false)

	set, err := env.equipment.CreateSet(ctx, user.ID, &CreateSetRequest{PlayerID: player.ID, SetType: model.SetTypeCurrent})
	require.NoError(t, err)

	detail, err := env.equipment.ReplaceEquipments(ctx, user.ID, set.ID, &ReplaceEquipmentsRequest{
		Equipments: []EquipmentInput{
			{ItemID: weapon.ID},
			{ItemID: body.ID, IsPentamelded: true},
		},
	})
	require.NoError(t, err)
	assert.Len(t, detail.Set.Equipments, 2)
	assert.Equal(t, 733, detail.GearLevel)

	// Replacing again swaps, not appends
	detail, err = env.equipment.ReplaceEquipments(ctx, user.ID, set.ID, &ReplaceEquipmentsRequest{
		Equipments: []EquipmentInput{{ItemID: body.ID}},
	})
	require.NoError(t, err)
	assert.Len(t, detail.Set.Equipments, 1)
	assert.Equal(t, 730, detail.GearLevel)
}

func TestReplaceEquipmentsValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user, player, raid := env.soloPlayer(t, "lead")

	slot := env.createItemType(t, "Body", 2)
	body := env.createItem(t, raid, slot.ID, "Savage Mail", 730, false)

	set, err := env.equipment.CreateSet(ctx, user.ID, &CreateSetRequest{PlayerID: player.ID, SetType: model.SetTypeCurrent})
	require.NoError(t, err)

	_, err = env.equipment.ReplaceEquipments(ctx, user.ID, set.ID, &ReplaceEquipmentsRequest{
		Equipments: []EquipmentInput{{ItemID: "missing"}},
	})
	assert.ErrorIs(t, err, ErrItemNotFound)

	_, err = env.equipment.ReplaceEquipments(ctx, user.ID, set.ID, &ReplaceEquipmentsRequest{
		Equipments: []EquipmentInput{{ItemID: body.ID}, {ItemID: body.ID}},
	})
	assert.ErrorIs(t, err, ErrDuplicateItem)

	stranger := env.createUser(t, "stranger")
	_, err = env.equipment.ReplaceEquipments(ctx, stranger.ID, set.ID, &ReplaceEquipmentsRequest{
		Equipments: []EquipmentInput{{ItemID: body.ID}},
	})
	assert.ErrorIs(t, err, ErrNotSetOwner)
}

func TestListSetsByPlayer(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user, player, raid := env.soloPlayer(t, "lead")

	slot := env.createItemType(t, "Body", 2)
	body := env.createItem(t, raid, slot.ID, "Savage Mail", 730, false)

	set, err := env.equipment.CreateSet(ctx, user.ID, &CreateSetRequest{PlayerID: player.ID, SetType: model.SetTypeCurrent})
	require.NoError(t, err)
	_, err = env.equipment.ReplaceEquipments(ctx, user.ID, set.ID, &ReplaceEquipmentsRequest{
		Equipments: []EquipmentInput{{ItemID: body.ID}},
	})
	require.NoError(t, err)

	_, err = env.equipment.CreateSet(ctx, user.ID, &CreateSetRequest{PlayerID: player.ID, SetType: model.SetTypeTarget})
	require.NoError(t, err)

	details, err := env.equipment.ListSetsByPlayer(ctx, player.ID)
	require.NoError(t, err)
	require.Len(t, details, 2)
	assert.Equal(t, 730, details[0].GearLevel)
	assert.Equal(t, 0, details[1].GearLevel)
}

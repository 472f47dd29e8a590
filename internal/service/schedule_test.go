package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gopher0727/RaidLedger/internal/model"
)

func scheduleFixture(t *testing.T) (*testEnv, *model.User, *model.RaidGroup) {
	t.Helper()
	env := newTestEnv(t)
	raid := env.createRaid(t, "Alpha", 690, 735)
	leader := env.createUser(t, "lead")
	group, err := env.roster.CreateGroup(context.Background(), leader.ID, &CreateGroupRequest{Name: "G", RaidID: raid.ID})
	require.NoError(t, err)
	return env, leader, group
}

func TestCreateSchedule(t *testing.T) {
	env, leader, group := scheduleFixture(t)
	ctx := context.Background()

	schedule, err := env.schedule.Create(ctx, leader.ID, group.ID, &CreateScheduleRequest{
		Title:     "Prog night",
		Weekday:   1,
		StartTime: "20:00",
		EndTime:   "23:00",
	})
	require.NoError(t, err)
	assert.True(t, schedule.IsRecurring)
	assert.Equal(t, leader.ID, schedule.CreatedByID)
}

func TestCreateScheduleValidation(t *testing.T) {
	env, leader, group := scheduleFixture(t)
	ctx := context.Background()

	cases := []struct {
		name string
		req  CreateScheduleRequest
		want error
	}{
		{"bad weekday", CreateScheduleRequest{Title: "x", Weekday: 7, StartTime: "20:00", EndTime: "23:00"}, ErrInvalidWeekday},
		{"bad time format", CreateScheduleRequest{Title: "x", Weekday: 1, StartTime: "8pm", EndTime: "23:00"}, ErrInvalidTime},
		{"out of range hour", CreateScheduleRequest{Title: "x", Weekday: 1, StartTime: "25:00", EndTime: "26:00"}, ErrInvalidTime},
		{"inverted range", CreateScheduleRequest{Title: "x", Weekday: 1, StartTime: "23:00", EndTime: "20:00"}, ErrInvalidTimeRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.schedule.Create(ctx, leader.ID, group.ID, &tc.req)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestScheduleLeaderOnly(t *testing.T) {
	env, leader, group := scheduleFixture(t)
	ctx := context.Background()

	member := env.createUser(t, "member")
	_, err := env.roster.JoinGroup(ctx, member.ID, group.ID, &JoinGroupRequest{CharacterName: "M", ItemLevel: 700})
	require.NoError(t, err)

	_, err = env.schedule.Create(ctx, member.ID, group.ID, &CreateScheduleRequest{
		Title: "x", Weekday: 1, StartTime: "20:00", EndTime: "23:00",
	})
	assert.ErrorIs(t, err, ErrNotScheduleOwner)

	schedule, err := env.schedule.Create(ctx, leader.ID, group.ID, &CreateScheduleRequest{
		Title: "x", Weekday: 1, StartTime: "20:00", EndTime: "23:00",
	})
	require.NoError(t, err)

	err = env.schedule.Delete(ctx, member.ID, schedule.ID)
	assert.ErrorIs(t, err, ErrNotScheduleOwner)
}

func TestUpdateAndListSchedules(t *testing.T) {
	env, leader, group := scheduleFixture(t)
	ctx := context.Background()

	late, err := env.schedule.Create(ctx, leader.ID, group.ID, &CreateScheduleRequest{
		Title: "Reclear", Weekday: 3, StartTime: "21:00", EndTime: "23:00",
	})
	require.NoError(t, err)
	_, err = env.schedule.Create(ctx, leader.ID, group.ID, &CreateScheduleRequest{
		Title: "Prog", Weekday: 1, StartTime: "20:00", EndTime: "23:00",
	})
	require.NoError(t, err)

	title := "Reclear (moved)"
	weekday := 5
	updated, err := env.schedule.Update(ctx, leader.ID, late.ID, &UpdateScheduleRequest{
		Title:   &title,
		Weekday: &weekday,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Weekday)
	assert.Equal(t, "21:00", updated.StartTime)

	// Ordered by weekday then start time
	schedules, err := env.schedule.ListByGroup(ctx, group.ID)
	require.NoError(t, err)
	require.Len(t, schedules, 2)
	assert.Equal(t, "Prog", schedules[0].Title)
	assert.Equal(t, title, schedules[1].Title)
}

func TestDeleteSchedule(t *testing.T) {
	env, leader, group := scheduleFixture(t)
	ctx := context.Background()

	schedule, err := env.schedule.Create(ctx, leader.ID, group.ID, &CreateScheduleRequest{
		Title: "x", Weekday: 1, StartTime: "20:00", EndTime: "23:00",
	})
	require.NoError(t, err)

	require.NoError(t, env.schedule.Delete(ctx, leader.ID, schedule.ID))

	schedules, err := env.schedule.ListByGroup(ctx, group.ID)
	require.NoError(t, err)
	assert.Empty(t, schedules)

	err = env.schedule.Delete(ctx, leader.ID, schedule.ID)
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

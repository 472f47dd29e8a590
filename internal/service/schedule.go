package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Gopher0727/RaidLedger/internal/model"
	"github.com/Gopher0727/RaidLedger/internal/repository"
)

var (
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrInvalidWeekday   = errors.New("weekday must be between 0 (Monday) and 6 (Sunday)")
	ErrInvalidTime      = errors.New("time must be formatted as HH:MM")
	ErrInvalidTimeRange = errors.New("start time must come before end time")
	ErrNotScheduleOwner = errors.New("only the group leader may manage schedules")
)

var timeOfDay = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// CreateScheduleRequest represents a schedule slot creation request
type CreateScheduleRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=100"`
	Weekday     int    `json:"weekday"`
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time" binding:"required"`
	IsRecurring *bool  `json:"is_recurring"`
	Description string `json:"description"`
}

// UpdateScheduleRequest updates a schedule; nil fields are left untouched
type UpdateScheduleRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=100"`
	Weekday     *int    `json:"weekday"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
	IsRecurring *bool   `json:"is_recurring"`
	Description *string `json:"description"`
}

// IScheduleService manages a group's raid schedule
type IScheduleService interface {
	Create(ctx context.Context, userID, groupID string, req *CreateScheduleRequest) (*model.RaidSchedule, error)
	ListByGroup(ctx context.Context, groupID string) ([]*model.RaidSchedule, error)
	Update(ctx context.Context, userID, scheduleID string, req *UpdateScheduleRequest) (*model.RaidSchedule, error)
	Delete(ctx context.Context, userID, scheduleID string) error
}

// ScheduleService implements the IScheduleService interface
type ScheduleService struct {
	scheduleRepo repository.IScheduleRepository
	groupRepo    repository.IRaidGroupRepository
}

// NewScheduleService creates a new IScheduleService instance
func NewScheduleService(scheduleRepo repository.IScheduleRepository, groupRepo repository.IRaidGroupRepository) IScheduleService {
	return &ScheduleService{
		scheduleRepo: scheduleRepo,
		groupRepo:    groupRepo,
	}
}

// Create adds a schedule slot to the group. Leader only.
func (s *ScheduleService) Create(ctx context.Context, userID, groupID string, req *CreateScheduleRequest) (*model.RaidSchedule, error) {
	group, err := s.groupRepo.FindByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to find group: %w", err)
	}
	if group.LeaderID != userID {
		return nil, ErrNotScheduleOwner
	}

	if err := validateSlot(req.Weekday, req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	recurring := true
	if req.IsRecurring != nil {
		recurring = *req.IsRecurring
	}

	schedule := &model.RaidSchedule{
		ID:          uuid.New().String(),
		RaidGroupID: groupID,
		Title:       req.Title,
		Weekday:     req.Weekday,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		IsRecurring: recurring,
		Description: req.Description,
		CreatedByID: userID,
	}
	if err := s.scheduleRepo.Create(ctx, schedule); err != nil {
		return nil, fmt.Errorf("failed to create schedule: %w", err)
	}
	return schedule, nil
}

// ListByGroup lists the group's schedule, ordered by weekday then start time
func (s *ScheduleService) ListByGroup(ctx context.Context, groupID string) ([]*model.RaidSchedule, error) {
	if _, err := s.groupRepo.FindByID(ctx, groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to find group: %w", err)
	}
	return s.scheduleRepo.FindByGroup(ctx, groupID)
}

// Update applies the provided schedule fields. Leader only.
func (s *ScheduleService) Update(ctx context.Context, userID, scheduleID string, req *UpdateScheduleRequest) (*model.RaidSchedule, error) {
	schedule, err := s.authorize(ctx, userID, scheduleID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		schedule.Title = *req.Title
	}
	if req.Weekday != nil {
		schedule.Weekday = *req.Weekday
	}
	if req.StartTime != nil {
		schedule.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		schedule.EndTime = *req.EndTime
	}
	if req.IsRecurring != nil {
		schedule.IsRecurring = *req.IsRecurring
	}
	if req.Description != nil {
		schedule.Description = *req.Description
	}

	if err := validateSlot(schedule.Weekday, schedule.StartTime, schedule.EndTime); err != nil {
		return nil, err
	}

	if err := s.scheduleRepo.Update(ctx, schedule); err != nil {
		return nil, fmt.Errorf("failed to update schedule: %w", err)
	}
	return schedule, nil
}

// Delete removes a schedule slot. Leader only.
func (s *ScheduleService) Delete(ctx context.Context, userID, scheduleID string) error {
	if _, err := s.authorize(ctx, userID, scheduleID); err != nil {
		return err
	}
	return s.scheduleRepo.Delete(ctx, scheduleID)
}

// authorize loads the schedule and checks the caller leads its group
func (s *ScheduleService) authorize(ctx context.Context, userID, scheduleID string) (*model.RaidSchedule, error) {
	schedule, err := s.scheduleRepo.FindByID(ctx, scheduleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, fmt.Errorf("failed to find schedule: %w", err)
	}

	group, err := s.groupRepo.FindByID(ctx, schedule.RaidGroupID)
	if err != nil {
		return nil, fmt.Errorf("failed to find group: %w", err)
	}
	if group.LeaderID != userID {
		return nil, ErrNotScheduleOwner
	}
	return schedule, nil
}

func validateSlot(weekday int, start, end string) error {
	if weekday < 0 || weekday > 6 {
		return ErrInvalidWeekday
	}
	if !timeOfDay.MatchString(start) || !timeOfDay.MatchString(end) {
		return ErrInvalidTime
	}
	// "HH:MM" compares correctly as a string
	if start >= end {
		return ErrInvalidTimeRange
	}
	return nil
}

package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Gopher0727/RaidLedger/internal/model"
)

// IScheduleRepository defines the interface for raid schedule storage
type IScheduleRepository interface {
	Create(ctx context.Context, schedule *model.RaidSchedule) error
	FindByID(ctx context.Context, id string) (*model.RaidSchedule, error)
	FindByGroup(ctx context.Context, groupID string) ([]*model.RaidSchedule, error)
	Update(ctx context.Context, schedule *model.RaidSchedule) error
	Delete(ctx context.Context, id string) error
}

// ScheduleRepository implements IScheduleRepository interface
type ScheduleRepository struct {
	db *gorm.DB
}

// NewScheduleRepository creates a new IScheduleRepository instance
func NewScheduleRepository(db *gorm.DB) IScheduleRepository {
	return &ScheduleRepository{db: db}
}

// Create creates a new schedule entry
func (r *ScheduleRepository) Create(ctx context.Context, schedule *model.RaidSchedule) error {
	return r.db.WithContext(ctx).Create(schedule).Error
}

// FindByID finds a schedule by ID
func (r *ScheduleRepository) FindByID(ctx context.Context, id string) (*model.RaidSchedule, error) {
	var schedule model.RaidSchedule
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&schedule).Error
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

// FindByGroup lists a group's schedule, ordered by weekday then start time
func (r *ScheduleRepository) FindByGroup(ctx context.Context, groupID string) ([]*model.RaidSchedule, error) {
	var schedules []*model.RaidSchedule
	err := r.db.WithContext(ctx).
		Where("raid_group_id = ?", groupID).
		Order("weekday, start_time").
		Find(&schedules).Error
	return schedules, err
}

// Update updates an existing schedule
func (r *ScheduleRepository) Update(ctx context.Context, schedule *model.RaidSchedule) error {
	return r.db.WithContext(ctx).Save(schedule).Error
}

// Delete removes a schedule entry
func (r *ScheduleRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.RaidSchedule{}).Error
}

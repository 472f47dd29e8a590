package model

import "time"

// RaidSchedule is a recurring or one-off meeting slot for a
// raid group. Weekday is 0=Monday .. 6=Sunday, times are "HH:MM".
type RaidSchedule struct {
	ID          string `gorm:"primaryKey;type:varchar(64)" json:"id"`
	RaidGroupID string `gorm:"index;not null;type:varchar(64)" json:"raid_group_id"`
	Title       string `gorm:"not null;type:varchar(100)" json:"title"`
	Weekday     int    `gorm:"not null" json:"weekday"`
	StartTime   string `gorm:"not null;type:varchar(5)" json:"start_time"`
	EndTime     string `gorm:"not null;type:varchar(5)" json:"end_time"`
	IsRecurring bool   `gorm:"not null;default:true" json:"is_recurring"`
	Description string `gorm:"type:text" json:"description"`
	CreatedByID string `gorm:"not null;type:varchar(64)" json:"created_by_id"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (RaidSchedule) TableName() string {
	return "raid_schedules"
}

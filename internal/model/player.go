package model

import "time"

// Player binds a user account to one raid group.
// An inactive player is a soft-leave marker, the row is never deleted
// so distribution history keeps its references.
type Player struct {
	ID            string  `gorm:"primaryKey;type:varchar(64)" json:"id"`
	UserID        string  `gorm:"uniqueIndex:idx_players_user_group;not null;type:varchar(64)" json:"user_id"`
	RaidGroupID   string  `gorm:"uniqueIndex:idx_players_user_group;not null;type:varchar(64)" json:"raid_group_id"`
	JobID         *string `gorm:"type:varchar(64)" json:"job_id"`
	CharacterName string  `gorm:"not null;type:varchar(50)" json:"character_name"`
	ItemLevel     int     `gorm:"not null" json:"item_level"`
	IsActive      bool    `gorm:"not null;default:true" json:"is_active"`

	Job *Job `gorm:"foreignKey:JobID;constraint:OnDelete:SET NULL" json:"job,omitempty"`

	JoinedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"joined_at"`
}

func (Player) TableName() string {
	return "players"
}

// Item level bounds shared by player profiles and join requests
const (
	MinItemLevel = 1
	MaxItemLevel = 999
)

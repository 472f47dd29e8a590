package model

import "time"

// Raid is a raid instance definition
type Raid struct {
	ID      string `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name    string `gorm:"not null;type:varchar(100)" json:"name"`
	Tier    string `gorm:"not null;type:varchar(20)" json:"tier"`
	Patch   string `gorm:"not null;type:varchar(10)" json:"patch"`
	MinIlvl int    `gorm:"not null" json:"min_ilvl"`
	MaxIlvl int    `gorm:"not null" json:"max_ilvl"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Raid) TableName() string {
	return "raids"
}

// Distribution methods for a raid group. Only the label is stored;
// rotation bookkeeping is handled by the raid lead outside the system.
const (
	DistributionPriority = "priority"
	DistributionRotation = "rotation"
)

// RaidGroup is a fixed roster progressing through a raid together
type RaidGroup struct {
	ID                 string `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name               string `gorm:"not null;type:varchar(100)" json:"name"`
	RaidID             string `gorm:"index;not null;type:varchar(64)" json:"raid_id"`
	LeaderID           string `gorm:"index;not null;type:varchar(64)" json:"leader_id"`
	DistributionMethod string `gorm:"not null;default:priority;type:varchar(20)" json:"distribution_method"`
	IsActive           bool   `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (RaidGroup) TableName() string {
	return "raid_groups"
}

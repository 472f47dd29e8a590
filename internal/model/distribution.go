package model

import "time"

// ItemDistribution is an append-only audit log of items
// awarded to players; rows are never mutated.
type ItemDistribution struct {
	ID          string `gorm:"primaryKey;type:varchar(64)" json:"id"`
	RaidGroupID string `gorm:"index;not null;type:varchar(64)" json:"raid_group_id"`
	PlayerID    string `gorm:"index;not null;type:varchar(64)" json:"player_id"`
	ItemID      string `gorm:"not null;type:varchar(64)" json:"item_id"`

	DistributedAt time.Time `gorm:"not null" json:"distributed_at"`
	WeekNumber    int       `gorm:"not null" json:"week_number"`
	Notes         string    `gorm:"type:text" json:"notes"`

	Player *Player `gorm:"foreignKey:PlayerID" json:"player,omitempty"`
	Item   *Item   `gorm:"foreignKey:ItemID" json:"item,omitempty"`
}

func (ItemDistribution) TableName() string {
	return "item_distributions"
}

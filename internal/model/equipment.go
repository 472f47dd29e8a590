package model

import "time"

// Equipment set types
const (
	SetTypeStart   = "start"
	SetTypeCurrent = "current"
	SetTypeTarget  = "target"
)

// EquipmentSet is a named snapshot of gear for one player,
// unique per (player, set type).
type EquipmentSet struct {
	ID       string `gorm:"primaryKey;type:varchar(64)" json:"id"`
	PlayerID string `gorm:"uniqueIndex:idx_equipment_sets_player_type;not null;type:varchar(64)" json:"player_id"`
	SetType  string `gorm:"uniqueIndex:idx_equipment_sets_player_type;not null;type:varchar(10)" json:"set_type"`

	Equipments []Equipment `gorm:"foreignKey:EquipmentSetID" json:"equipments,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (EquipmentSet) TableName() string {
	return "equipment_sets"
}

// Equipment is a single entry in a set, unique per (set, item)
type Equipment struct {
	ID             string `gorm:"primaryKey;type:varchar(64)" json:"id"`
	EquipmentSetID string `gorm:"uniqueIndex:idx_equipments_set_item;not null;type:varchar(64)" json:"equipment_set_id"`
	ItemID         string `gorm:"uniqueIndex:idx_equipments_set_item;not null;type:varchar(64)" json:"item_id"`
	IsPentamelded  bool   `gorm:"not null;default:false" json:"is_pentamelded"`

	Item *Item `gorm:"foreignKey:ItemID" json:"item,omitempty"`
}

func (Equipment) TableName() string {
	return "equipments"
}

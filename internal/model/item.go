package model

// ItemType is an equipment slot category
type ItemType struct {
	ID        string `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name      string `gorm:"uniqueIndex;not null;type:varchar(30)" json:"name"`
	Slot      string `gorm:"not null;type:varchar(30)" json:"slot"`
	SortOrder int    `gorm:"not null;default:0" json:"order"`
}

func (ItemType) TableName() string {
	return "item_types"
}

// Item is a piece of raid gear
type Item struct {
	ID         string `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name       string `gorm:"not null;type:varchar(100)" json:"name"`
	ItemTypeID string `gorm:"index;not null;type:varchar(64)" json:"item_type_id"`
	ItemLevel  int    `gorm:"not null" json:"item_level"`
	RaidID     string `gorm:"index;not null;type:varchar(64)" json:"raid_id"`
	Floor      int    `gorm:"not null" json:"floor"` // 1..4
	IsWeapon   bool   `gorm:"not null;default:false" json:"is_weapon"`

	ItemType        *ItemType `gorm:"foreignKey:ItemTypeID" json:"item_type,omitempty"`
	JobRestrictions []Job     `gorm:"many2many:item_job_restrictions" json:"job_restrictions,omitempty"`
}

func (Item) TableName() string {
	return "items"
}

// Floor bounds for raid items
const (
	MinFloor = 1
	MaxFloor = 4
)

// Currency is an in-game token. A weekly cap of 0 means uncapped
// (exchange-only currencies).
type Currency struct {
	ID        string `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name      string `gorm:"uniqueIndex;not null;type:varchar(50)" json:"name"`
	RaidID    string `gorm:"index;not null;type:varchar(64)" json:"raid_id"`
	WeeklyCap int    `gorm:"not null;default:0" json:"weekly_cap"`
}

func (Currency) TableName() string {
	return "currencies"
}

// CurrencyRequirement is the price of an item
// in a given currency, unique per (item, currency) pair.
type CurrencyRequirement struct {
	ID         string `gorm:"primaryKey;type:varchar(64)" json:"id"`
	ItemID     string `gorm:"uniqueIndex:idx_currency_reqs_item_currency;not null;type:varchar(64)" json:"item_id"`
	CurrencyID string `gorm:"uniqueIndex:idx_currency_reqs_item_currency;not null;type:varchar(64)" json:"currency_id"`
	Amount     int    `gorm:"not null" json:"amount"`

	Currency *Currency `gorm:"foreignKey:CurrencyID" json:"currency,omitempty"`
}

func (CurrencyRequirement) TableName() string {
	return "currency_requirements"
}

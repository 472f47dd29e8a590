package model

// Job roles
const (
	RoleTank   = "tank"
	RoleHealer = "healer"
	RoleMelee  = "melee"
	RoleRanged = "ranged"
	RoleCaster = "caster"
)

// Job is static reference data for playable jobs
type Job struct {
	ID   string `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name string `gorm:"uniqueIndex;not null;type:varchar(30)" json:"name"`
	Role string `gorm:"not null;type:varchar(10)" json:"role"`
	Icon string `gorm:"type:varchar(100)" json:"icon"`
}

func (Job) TableName() string {
	return "jobs"
}

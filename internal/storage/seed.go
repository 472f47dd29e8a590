package storage

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Gopher0727/RaidLedger/internal/model"
)

// defaultJobs is the playable job roster. Jobs are read-only reference
// data; the seed runs at startup and is idempotent.
var defaultJobs = []model.Job{
	{Name: "Paladin", Role: model.RoleTank},
	{Name: "Warrior", Role: model.RoleTank},
	{Name: "Dark Knight", Role: model.RoleTank},
	{Name: "Gunbreaker", Role: model.RoleTank},
	{Name: "White Mage", Role: model.RoleHealer},
	{Name: "Scholar", Role: model.RoleHealer},
	{Name: "Astrologian", Role: model.RoleHealer},
	{Name: "Sage", Role: model.RoleHealer},
	{Name: "Monk", Role: model.RoleMelee},
	{Name: "Dragoon", Role: model.RoleMelee},
	{Name: "Ninja", Role: model.RoleMelee},
	{Name: "Samurai", Role: model.RoleMelee},
	{Name: "Reaper", Role: model.RoleMelee},
	{Name: "Viper", Role: model.RoleMelee},
	{Name: "Bard", Role: model.RoleRanged},
	{Name: "Machinist", Role: model.RoleRanged},
	{Name: "Dancer", Role: model.RoleRanged},
	{Name: "Black Mage", Role: model.RoleCaster},
	{Name: "Summoner", Role: model.RoleCaster},
	{Name: "Red Mage", Role: model.RoleCaster},
	{Name: "Pictomancer", Role: model.RoleCaster},
}

// SeedJobs inserts any missing default jobs, keyed by name.
func SeedJobs(db *gorm.DB) error {
	for _, job := range defaultJobs {
		row := model.Job{
			ID:   uuid.New().String(),
			Name: job.Name,
			Role: job.Role,
		}
		err := db.Where("name = ?", job.Name).FirstOrCreate(&row).Error
		if err != nil {
			return fmt.Errorf("failed to seed job %s: %w", job.Name, err)
		}
	}
	return nil
}

package database

import (
	"gorm.io/gorm"

	"krishi-sakhi-be/internal/model"
)

// Migrate creates or updates the schema for every table the service owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.ChatTurn{},
		&model.FarmRecord{},
		&model.WeatherCacheEntry{},
		&model.MarketPrice{},
	)
}

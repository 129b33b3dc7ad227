package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type WeatherCacheEntry struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Location  string         `gorm:"type:varchar(100);not null;index"`
	Data      datatypes.JSON `gorm:"not null"`
	CreatedAt time.Time      `gorm:"autoCreateTime;index"`
}

func (WeatherCacheEntry) TableName() string {
	return "weather_cache"
}

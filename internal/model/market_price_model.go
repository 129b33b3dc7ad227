package model

import (
	"time"

	"github.com/google/uuid"
)

type MarketPrice struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CropName   string    `gorm:"type:varchar(100);not null"`
	District   string    `gorm:"type:varchar(100);index"`
	PricePerKg float64   `gorm:"not null"`
	Unit       string    `gorm:"type:varchar(20)"`
	MarketName string    `gorm:"type:varchar(100)"`
	CreatedAt  time.Time `gorm:"autoCreateTime;index"`
}

func (MarketPrice) TableName() string {
	return "market_prices"
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

type MarketPrice struct {
	Id         uuid.UUID
	CropName   string
	District   string
	PricePerKg float64
	Unit       string
	MarketName string
	CreatedAt  time.Time
}

package dto

import (
	"time"

	"github.com/google/uuid"
)

type MarketPriceResponse struct {
	Id         uuid.UUID `json:"id"`
	CropName   string    `json:"crop_name"`
	District   string    `json:"district"`
	PricePerKg float64   `json:"price_per_kg"`
	Unit       string    `json:"unit"`
	MarketName string    `json:"market_name"`
	CreatedAt  time.Time `json:"created_at"`
}

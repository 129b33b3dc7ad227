package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateFarmRecordRequest struct {
	CropType     string  `json:"crop_type" validate:"required"`
	PlantingDate string  `json:"planting_date" validate:"omitempty,datetime=2006-01-02"`
	HarvestDate  string  `json:"harvest_date" validate:"omitempty,datetime=2006-01-02"`
	AreaAcres    float64 `json:"area_acres" validate:"omitempty,gte=0"`
	YieldKg      float64 `json:"yield_kg" validate:"omitempty,gte=0"`
	CostInvested float64 `json:"cost_invested" validate:"omitempty,gte=0"`
	Revenue      float64 `json:"revenue" validate:"omitempty,gte=0"`
	Notes        string  `json:"notes"`
}

type FarmRecordResponse struct {
	Id           uuid.UUID  `json:"id"`
	CropType     string     `json:"crop_type"`
	PlantingDate *time.Time `json:"planting_date,omitempty"`
	HarvestDate  *time.Time `json:"harvest_date,omitempty"`
	AreaAcres    float64    `json:"area_acres"`
	YieldKg      float64    `json:"yield_kg"`
	CostInvested float64    `json:"cost_invested"`
	Revenue      float64    `json:"revenue"`
	Notes        string     `json:"notes,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

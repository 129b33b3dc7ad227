package entity

import (
	"time"

	"github.com/google/uuid"
)

type FarmRecord struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	CropType     string
	PlantingDate *time.Time
	HarvestDate  *time.Time
	AreaAcres    float64
	YieldKg      float64
	CostInvested float64
	Revenue      float64
	Notes        string
	CreatedAt    time.Time
}

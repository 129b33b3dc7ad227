package model

import (
	"time"

	"github.com/google/uuid"
)

type FarmRecord struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId       uuid.UUID `gorm:"type:uuid;not null;index"`
	CropType     string    `gorm:"type:varchar(100)"`
	PlantingDate *time.Time
	HarvestDate  *time.Time
	AreaAcres    float64
	YieldKg      float64
	CostInvested float64
	Revenue      float64
	Notes        string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"autoCreateTime;index"`
}

func (FarmRecord) TableName() string {
	return "farm_data"
}

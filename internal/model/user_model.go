package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Phone        string    `gorm:"type:varchar(20);uniqueIndex;not null"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Email        string    `gorm:"type:varchar(255)"`
	Aadhaar      string    `gorm:"type:varchar(20)"`
	Pincode      string    `gorm:"type:varchar(10)"`
	District     string    `gorm:"type:varchar(100)"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	LastLogin    *time.Time
}

func (User) TableName() string {
	return "users"
}

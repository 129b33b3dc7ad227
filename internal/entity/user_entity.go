package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id           uuid.UUID
	Phone        string
	Name         string
	Email        string
	Aadhaar      string
	Pincode      string
	District     string
	PasswordHash string
	CreatedAt    time.Time
	LastLogin    *time.Time
}

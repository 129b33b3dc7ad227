package specification

import (
	"gorm.io/gorm"

	"github.com/google/uuid"
)

type ByPhone struct {
	Phone string
}

func (s ByPhone) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("phone = ?", s.Phone)
}

type UserOwnedBy struct {
	UserID uuid.UUID
}

func (s UserOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

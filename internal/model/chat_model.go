package model

import (
	"time"

	"github.com/google/uuid"
)

type ChatTurn struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Message   string    `gorm:"type:text;not null"`
	Response  string    `gorm:"type:text;not null"`
	Language  string    `gorm:"type:varchar(10);not null;default:'en'"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

func (ChatTurn) TableName() string {
	return "chat_history"
}

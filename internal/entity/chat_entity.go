package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatTurn is one row of the append-only chat log: the user message and
// the sanitized model reply.
type ChatTurn struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Message   string
	Response  string
	Language  string
	CreatedAt time.Time
}

package events

import (
	"time"

	"github.com/google/uuid"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "USER_LOGIN").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// Activity event codes published on the farmer activity topic.
const (
	TypeUserRegistered  = "USER_REGISTERED"
	TypeUserLogin       = "USER_LOGIN"
	TypeChatCompleted   = "CHAT_COMPLETED"
	TypeFarmRecordAdded = "FARM_RECORD_ADDED"
)

// BaseEvent carries the common fields for concrete events.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

func NewUserRegistered(userId uuid.UUID, district string) Event {
	return BaseEvent{
		Type: TypeUserRegistered,
		Data: map[string]interface{}{
			"user_id":  userId.String(),
			"district": district,
		},
		OccurredAt: time.Now(),
	}
}

func NewUserLogin(userId uuid.UUID) Event {
	return BaseEvent{
		Type: TypeUserLogin,
		Data: map[string]interface{}{
			"user_id": userId.String(),
		},
		OccurredAt: time.Now(),
	}
}

func NewChatCompleted(userId uuid.UUID, language string, insightType string) Event {
	return BaseEvent{
		Type: TypeChatCompleted,
		Data: map[string]interface{}{
			"user_id":      userId.String(),
			"language":     language,
			"insight_type": insightType,
		},
		OccurredAt: time.Now(),
	}
}

func NewFarmRecordAdded(userId uuid.UUID, cropType string) Event {
	return BaseEvent{
		Type: TypeFarmRecordAdded,
		Data: map[string]interface{}{
			"user_id":   userId.String(),
			"crop_type": cropType,
		},
		OccurredAt: time.Now(),
	}
}

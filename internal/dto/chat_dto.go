package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type ChatHistoryItem struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatImage struct {
	Mime     string `json:"mime"`
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

// ResolvedMime accepts both field spellings clients use.
func (i ChatImage) ResolvedMime() string {
	if i.Mime != "" {
		return i.Mime
	}
	return i.MimeType
}

type ChatRequest struct {
	Message     string            `json:"message" validate:"required"`
	History     []ChatHistoryItem `json:"history"`
	Model       string            `json:"model"`
	Lang        string            `json:"lang"`
	Images      []ChatImage       `json:"images"`
	Temperature *float64          `json:"temperature"`
}

type ChatInsight struct {
	Type         string   `json:"type"`
	Suggestion   string   `json:"suggestion"`
	QuickActions []string `json:"quick_actions"`
}

type ChatResponse struct {
	Reply    string          `json:"reply"`
	Raw      json.RawMessage `json:"raw"`
	Insights *ChatInsight    `json:"insights,omitempty"`
}

type ChatTurnResponse struct {
	Id        uuid.UUID `json:"id"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	Language  string    `json:"language"`
	CreatedAt time.Time `json:"created_at"`
}

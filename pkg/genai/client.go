package genai

import (
	"context"
	"encoding/json"
)

const (
	ChatMessageRoleUser  = "user"
	ChatMessageRoleModel = "model"
)

// Message is a single conversational turn sent to the model.
type Message struct {
	Role string
	Text string
}

// InlineImage carries base64-encoded image bytes alongside a prompt.
type InlineImage struct {
	MimeType string
	Data     string
}

type GenerateRequest struct {
	SystemPrompt string
	Model        string // optional per-request override of the default model
	Messages     []*Message
	Images       []*InlineImage
	Temperature  float64
}

// GenerateResult carries the assembled text of the first candidate plus
// the decoded upstream body for clients that want the full response.
type GenerateResult struct {
	Text string
	Raw  json.RawMessage
}

// Client generates a model response for an assembled conversation.
type Client interface {
	GenerateContent(ctx context.Context, req *GenerateRequest) (*GenerateResult, error)
}

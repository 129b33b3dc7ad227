package genai

import (
	"context"
	"encoding/json"
)

// MockClient returns a fixed reply and records the last request. Used in
// tests and when running without an API key in development.
type MockClient struct {
	Reply       string
	Raw         json.RawMessage
	Err         error
	LastRequest *GenerateRequest
	Calls       int
}

var _ Client = &MockClient{}

func (m *MockClient) GenerateContent(ctx context.Context, req *GenerateRequest) (*GenerateResult, error) {
	m.Calls++
	m.LastRequest = req
	if m.Err != nil {
		return nil, m.Err
	}
	return &GenerateResult{Text: m.Reply, Raw: m.Raw}, nil
}

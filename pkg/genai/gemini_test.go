package genai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"krishi-sakhi-be/internal/pkg/apperror"
)

func newTestClient(url string) *GeminiClient {
	return NewGeminiClient(url, "test-key", "gemini-2.0-flash", 5*time.Second)
}

func TestGeminiClientGenerateContent(t *testing.T) {
	t.Run("success returns candidate text and raw body", func(t *testing.T) {
		var captured geminiRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/models/gemini-2.0-flash:generateContent", r.URL.Path)
			assert.Equal(t, "test-key", r.URL.Query().Get("key"))
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

			_ = json.NewEncoder(w).Encode(geminiResponse{
				Candidates: []*geminiCandidate{{
					Content: &geminiContent{
						Parts: []*geminiPart{{Text: "Water the paddy in the morning."}},
					},
				}},
			})
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		res, err := client.GenerateContent(context.Background(), &GenerateRequest{
			SystemPrompt: "You are a farming assistant.",
			Messages: []*Message{
				{Role: ChatMessageRoleUser, Text: "When should I water?"},
			},
			Temperature: 0.7,
		})

		assert.NoError(t, err)
		assert.Equal(t, "Water the paddy in the morning.", res.Text)
		assert.True(t, json.Valid(res.Raw))
		assert.Contains(t, string(res.Raw), "candidates")

		assert.NotNil(t, captured.SystemInstruction)
		assert.Equal(t, "You are a farming assistant.", captured.SystemInstruction.Parts[0].Text)
		assert.Len(t, captured.Contents, 1)
		assert.Equal(t, ChatMessageRoleUser, captured.Contents[0].Role)
		assert.NotNil(t, captured.GenerationConfig)
		assert.Equal(t, 0.7, captured.GenerationConfig.Temperature)
	})

	t.Run("multi part candidate text is concatenated", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(geminiResponse{
				Candidates: []*geminiCandidate{{
					Content: &geminiContent{
						Parts: []*geminiPart{
							{Text: "Namaskaram. "},
							{Text: "Water the paddy at dawn."},
						},
					},
				}},
			})
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		res, err := client.GenerateContent(context.Background(), &GenerateRequest{
			Messages:    []*Message{{Role: ChatMessageRoleUser, Text: "hi"}},
			Temperature: 0.7,
		})

		assert.NoError(t, err)
		assert.Equal(t, "Namaskaram. Water the paddy at dawn.", res.Text)
	})

	t.Run("request model overrides the default", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/models/gemini-2.0-pro:generateContent", r.URL.Path)
			_ = json.NewEncoder(w).Encode(geminiResponse{
				Candidates: []*geminiCandidate{{
					Content: &geminiContent{Parts: []*geminiPart{{Text: "ok"}}},
				}},
			})
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		_, err := client.GenerateContent(context.Background(), &GenerateRequest{
			Model:       "gemini-2.0-pro",
			Messages:    []*Message{{Role: ChatMessageRoleUser, Text: "hi"}},
			Temperature: 0.7,
		})
		assert.NoError(t, err)
	})

	t.Run("images attach to the last turn", func(t *testing.T) {
		var captured geminiRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
			_ = json.NewEncoder(w).Encode(geminiResponse{
				Candidates: []*geminiCandidate{{
					Content: &geminiContent{Parts: []*geminiPart{{Text: "Looks like leaf blight."}}},
				}},
			})
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		_, err := client.GenerateContent(context.Background(), &GenerateRequest{
			Messages: []*Message{
				{Role: ChatMessageRoleModel, Text: "Namaskaram!"},
				{Role: ChatMessageRoleUser, Text: "What is wrong with this leaf?"},
			},
			Images: []*InlineImage{
				{MimeType: "image/jpeg", Data: "aGVsbG8="},
			},
			Temperature: 0.7,
		})
		assert.NoError(t, err)

		assert.Len(t, captured.Contents, 2)
		assert.Len(t, captured.Contents[0].Parts, 1)
		last := captured.Contents[1]
		assert.Len(t, last.Parts, 2)
		assert.NotNil(t, last.Parts[1].InlineData)
		assert.Equal(t, "image/jpeg", last.Parts[1].InlineData.MimeType)
		assert.Equal(t, "aGVsbG8=", last.Parts[1].InlineData.Data)
	})

	t.Run("upstream error status and message propagate", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":{"message":"Quota exceeded"}}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		_, err := client.GenerateContent(context.Background(), &GenerateRequest{
			Messages:    []*Message{{Role: ChatMessageRoleUser, Text: "hi"}},
			Temperature: 0.7,
		})

		appErr, ok := apperror.As(err)
		assert.True(t, ok)
		assert.Equal(t, http.StatusTooManyRequests, appErr.Status)
		assert.Equal(t, "Quota exceeded", appErr.Message)
	})

	t.Run("unparseable error body keeps generic message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("boom"))
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		_, err := client.GenerateContent(context.Background(), &GenerateRequest{
			Messages:    []*Message{{Role: ChatMessageRoleUser, Text: "hi"}},
			Temperature: 0.7,
		})

		appErr, ok := apperror.As(err)
		assert.True(t, ok)
		assert.Equal(t, http.StatusInternalServerError, appErr.Status)
		assert.Equal(t, "language model request failed", appErr.Message)
	})

	t.Run("empty candidates is empty text, not an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"candidates":[]}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		res, err := client.GenerateContent(context.Background(), &GenerateRequest{
			Messages:    []*Message{{Role: ChatMessageRoleUser, Text: "hi"}},
			Temperature: 0.7,
		})

		assert.NoError(t, err)
		assert.Equal(t, "", res.Text)
		assert.JSONEq(t, `{"candidates":[]}`, string(res.Raw))
	})

	t.Run("connection failure is a network error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		client := newTestClient(server.URL)
		_, err := client.GenerateContent(context.Background(), &GenerateRequest{
			Messages:    []*Message{{Role: ChatMessageRoleUser, Text: "hi"}},
			Temperature: 0.7,
		})

		appErr, ok := apperror.As(err)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadGateway, appErr.Status)
		assert.Error(t, appErr.Err)
	})
}

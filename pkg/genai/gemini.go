package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"krishi-sakhi-be/internal/pkg/apperror"
)

type GeminiClient struct {
	BaseURL   string
	APIKey    string
	ModelName string
	Client    *http.Client
}

// Ensure GeminiClient implements Client
var _ Client = &GeminiClient{}

func NewGeminiClient(baseURL, apiKey, modelName string, timeout time.Duration) *GeminiClient {
	return &GeminiClient{
		BaseURL:   baseURL,
		APIKey:    apiKey,
		ModelName: modelName,
		Client: &http.Client{
			Timeout: timeout,
		},
	}
}

// --- Request/Response structs (Internal to this package) ---

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiContent struct {
	Parts []*geminiPart `json:"parts"`
	Role  string        `json:"role,omitempty"`
}

type geminiGenerationConfig struct {
	Temperature float64 `json:"temperature"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent          `json:"systemInstruction,omitempty"`
	Contents          []*geminiContent        `json:"contents"`
	GenerationConfig  *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiCandidate struct {
	Content *geminiContent `json:"content"`
}

type geminiResponse struct {
	Candidates []*geminiCandidate `json:"candidates"`
}

type geminiErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// --- Interface Implementation ---

func (g *GeminiClient) GenerateContent(ctx context.Context, genReq *GenerateRequest) (*GenerateResult, error) {
	modelName := genReq.Model
	if modelName == "" {
		modelName = g.ModelName
	}

	contents := make([]*geminiContent, 0, len(genReq.Messages))
	for _, msg := range genReq.Messages {
		contents = append(contents, &geminiContent{
			Parts: []*geminiPart{{Text: msg.Text}},
			Role:  msg.Role,
		})
	}

	// Inline images ride on the last user turn.
	if len(genReq.Images) > 0 && len(contents) > 0 {
		last := contents[len(contents)-1]
		for _, img := range genReq.Images {
			last.Parts = append(last.Parts, &geminiPart{
				InlineData: &geminiInlineData{
					MimeType: img.MimeType,
					Data:     img.Data,
				},
			})
		}
	}

	payload := geminiRequest{
		Contents: contents,
		GenerationConfig: &geminiGenerationConfig{
			Temperature: genReq.Temperature,
		},
	}
	if genReq.SystemPrompt != "" {
		payload.SystemInstruction = &geminiContent{
			Parts: []*geminiPart{{Text: genReq.SystemPrompt}},
		}
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		g.BaseURL, modelName, url.QueryEscape(g.APIKey))

	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.Client.Do(req)
	if err != nil {
		return nil, apperror.Network(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperror.Network(err)
	}

	if resp.StatusCode != http.StatusOK {
		message := "language model request failed"
		var errRes geminiErrorResponse
		if json.Unmarshal(bodyBytes, &errRes) == nil && errRes.Error.Message != "" {
			message = errRes.Error.Message
		}
		return nil, apperror.Upstream(resp.StatusCode, message, "model "+modelName)
	}

	var geminiRes geminiResponse
	if err := json.Unmarshal(bodyBytes, &geminiRes); err != nil {
		return nil, apperror.Network(fmt.Errorf("unmarshal response: %w", err))
	}

	// The model splits long replies across parts; missing candidates mean
	// empty text, callers decide the fallback.
	var text strings.Builder
	if len(geminiRes.Candidates) > 0 && geminiRes.Candidates[0].Content != nil {
		for _, part := range geminiRes.Candidates[0].Content.Parts {
			text.WriteString(part.Text)
		}
	}

	return &GenerateResult{Text: text.String(), Raw: bodyBytes}, nil
}

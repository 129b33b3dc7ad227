package service

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"krishi-sakhi-be/internal/constant"
	"krishi-sakhi-be/internal/dto"
	"krishi-sakhi-be/internal/pkg/apperror"
)

type ITranscribeService interface {
	Transcribe(ctx context.Context, lang string, audio []byte, contentType string) (*dto.TranscribeResponse, error)
}

type transcribeService struct {
	apiURL  string
	apiKey  string
	useMock bool
	client  *http.Client
}

func NewTranscribeService(apiURL, apiKey string, useMock bool) ITranscribeService {
	return &transcribeService{
		apiURL:  apiURL,
		apiKey:  apiKey,
		useMock: useMock || apiURL == "",
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func (s *transcribeService) Transcribe(ctx context.Context, lang string, audio []byte, contentType string) (*dto.TranscribeResponse, error) {
	lang = strings.ToLower(lang)
	if lang == "" {
		lang = constant.LanguageEnglish
	}

	if s.useMock {
		return s.mockTranscript(lang), nil
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.apiURL+"?lang="+lang, bytes.NewReader(audio))
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, apperror.Network(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperror.Network(err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, apperror.Upstream(resp.StatusCode, "transcription request failed", "")
	}

	var parsed struct {
		Transcript string `json:"transcript"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, apperror.Network(err)
	}

	return &dto.TranscribeResponse{
		Transcript: parsed.Transcript,
		Lang:       lang,
		Status:     "success",
	}, nil
}

func (s *transcribeService) mockTranscript(lang string) *dto.TranscribeResponse {
	transcripts, ok := constant.MockTranscripts[lang]
	if !ok {
		transcripts = constant.MockTranscripts[constant.LanguageEnglish]
	}

	return &dto.TranscribeResponse{
		Transcript: transcripts[rand.Intn(len(transcripts))],
		Lang:       lang,
		Status:     "success",
	}
}

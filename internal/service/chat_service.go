package service

import (
	"context"
	"strings"
	"time"

	"krishi-sakhi-be/internal/constant"
	"krishi-sakhi-be/internal/dto"
	"krishi-sakhi-be/internal/entity"
	"krishi-sakhi-be/internal/pkg/apperror"
	"krishi-sakhi-be/internal/repository/specification"
	"krishi-sakhi-be/internal/repository/unitofwork"
	"krishi-sakhi-be/pkg/events"
	"krishi-sakhi-be/pkg/genai"
	"krishi-sakhi-be/pkg/sanitize"

	"github.com/google/uuid"
)

type IChatService interface {
	Chat(ctx context.Context, userId uuid.UUID, req *dto.ChatRequest) (*dto.ChatResponse, error)
	History(ctx context.Context, userId uuid.UUID) ([]*dto.ChatTurnResponse, error)
}

type chatService struct {
	uowFactory unitofwork.RepositoryFactory
	client     genai.Client
	publisher  IPublisherService
}

func NewChatService(uowFactory unitofwork.RepositoryFactory, client genai.Client, publisher IPublisherService) IChatService {
	return &chatService{
		uowFactory: uowFactory,
		client:     client,
		publisher:  publisher,
	}
}

// buildMessages converts the client supplied history into model turns.
// Only the most recent turns are kept and empty entries are dropped.
func buildMessages(req *dto.ChatRequest) []*genai.Message {
	history := req.History
	if len(history) > constant.MaxHistoryTurns {
		history = history[len(history)-constant.MaxHistoryTurns:]
	}

	messages := make([]*genai.Message, 0, len(history)+1)
	for _, item := range history {
		if item.Content == "" {
			continue
		}
		role := genai.ChatMessageRoleModel
		if item.Role == "user" {
			role = genai.ChatMessageRoleUser
		}
		messages = append(messages, &genai.Message{Role: role, Text: item.Content})
	}

	messages = append(messages, &genai.Message{
		Role: genai.ChatMessageRoleUser,
		Text: req.Message,
	})
	return messages
}

func buildImages(req *dto.ChatRequest) []*genai.InlineImage {
	images := make([]*genai.InlineImage, 0, constant.MaxInlineImages)
	for _, img := range req.Images {
		if len(images) == constant.MaxInlineImages {
			break
		}
		mime := img.ResolvedMime()
		if mime == "" || img.Data == "" {
			continue
		}
		images = append(images, &genai.InlineImage{MimeType: mime, Data: img.Data})
	}
	return images
}

// detectInsight scans the farmer's message for known concern keywords.
// The first matching rule wins.
func detectInsight(message string) *dto.ChatInsight {
	lower := strings.ToLower(message)
	for _, rule := range constant.InsightRules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lower, keyword) {
				return &dto.ChatInsight{
					Type:         rule.Type,
					Suggestion:   rule.Suggestion,
					QuickActions: rule.QuickActions,
				}
			}
		}
	}
	return nil
}

func (s *chatService) Chat(ctx context.Context, userId uuid.UUID, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		return nil, apperror.Validation("Message is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		return nil, apperror.Auth("User not found")
	}

	lang := strings.ToLower(req.Lang)
	if lang == "" {
		lang = constant.LanguageEnglish
	}

	userContext := constant.UserContext(user.Name, user.District, user.Pincode)
	systemPrompt := constant.EnglishSystemPrompt(userContext)
	if lang == constant.LanguageMalayalam {
		systemPrompt = constant.MalayalamSystemPrompt(userContext)
	}

	temperature := constant.DefaultTemperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}

	result, err := s.client.GenerateContent(ctx, &genai.GenerateRequest{
		SystemPrompt: systemPrompt,
		Model:        req.Model,
		Messages:     buildMessages(req),
		Images:       buildImages(req),
		Temperature:  temperature,
	})
	if err != nil {
		return nil, err
	}

	reply := sanitize.PlainText(result.Text)

	turn := &entity.ChatTurn{
		Id:        uuid.New(),
		UserId:    userId,
		Message:   req.Message,
		Response:  reply,
		Language:  lang,
		CreatedAt: time.Now(),
	}
	if err := uow.ChatTurnRepository().Create(ctx, turn); err != nil {
		return nil, apperror.Internal(err)
	}

	insight := detectInsight(req.Message)

	if s.publisher != nil {
		insightType := ""
		if insight != nil {
			insightType = insight.Type
		}
		_ = s.publisher.Publish(ctx, events.NewChatCompleted(userId, lang, insightType))
	}

	if reply == "" {
		reply = "No content returned."
	}

	return &dto.ChatResponse{
		Reply:    reply,
		Raw:      result.Raw,
		Insights: insight,
	}, nil
}

func (s *chatService) History(ctx context.Context, userId uuid.UUID) ([]*dto.ChatTurnResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	turns, err := uow.ChatTurnRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: constant.ChatHistoryPageSize, Offset: 0},
	)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	responses := make([]*dto.ChatTurnResponse, len(turns))
	for i, turn := range turns {
		responses[i] = &dto.ChatTurnResponse{
			Id:        turn.Id,
			Message:   turn.Message,
			Response:  turn.Response,
			Language:  turn.Language,
			CreatedAt: turn.CreatedAt,
		}
	}
	return responses, nil
}

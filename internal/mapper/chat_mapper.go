package mapper

import (
	"krishi-sakhi-be/internal/entity"
	"krishi-sakhi-be/internal/model"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

func (m *ChatMapper) ToEntity(t *model.ChatTurn) *entity.ChatTurn {
	if t == nil {
		return nil
	}
	return &entity.ChatTurn{
		Id:        t.Id,
		UserId:    t.UserId,
		Message:   t.Message,
		Response:  t.Response,
		Language:  t.Language,
		CreatedAt: t.CreatedAt,
	}
}

func (m *ChatMapper) ToModel(t *entity.ChatTurn) *model.ChatTurn {
	if t == nil {
		return nil
	}
	return &model.ChatTurn{
		Id:        t.Id,
		UserId:    t.UserId,
		Message:   t.Message,
		Response:  t.Response,
		Language:  t.Language,
		CreatedAt: t.CreatedAt,
	}
}

func (m *ChatMapper) ToEntities(turns []*model.ChatTurn) []*entity.ChatTurn {
	entities := make([]*entity.ChatTurn, len(turns))
	for i, t := range turns {
		entities[i] = m.ToEntity(t)
	}
	return entities
}

func (m *ChatMapper) ToModels(turns []*entity.ChatTurn) []*model.ChatTurn {
	models := make([]*model.ChatTurn, len(turns))
	for i, t := range turns {
		models[i] = m.ToModel(t)
	}
	return models
}

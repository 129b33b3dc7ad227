package mapper

import (
	"krishi-sakhi-be/internal/entity"
	"krishi-sakhi-be/internal/model"
)

type MarketMapper struct{}

func NewMarketMapper() *MarketMapper {
	return &MarketMapper{}
}

func (m *MarketMapper) ToEntity(p *model.MarketPrice) *entity.MarketPrice {
	if p == nil {
		return nil
	}
	return &entity.MarketPrice{
		Id:         p.Id,
		CropName:   p.CropName,
		District:   p.District,
		PricePerKg: p.PricePerKg,
		Unit:       p.Unit,
		MarketName: p.MarketName,
		CreatedAt:  p.CreatedAt,
	}
}

func (m *MarketMapper) ToModel(p *entity.MarketPrice) *model.MarketPrice {
	if p == nil {
		return nil
	}
	return &model.MarketPrice{
		Id:         p.Id,
		CropName:   p.CropName,
		District:   p.District,
		PricePerKg: p.PricePerKg,
		Unit:       p.Unit,
		MarketName: p.MarketName,
		CreatedAt:  p.CreatedAt,
	}
}

func (m *MarketMapper) ToEntities(prices []*model.MarketPrice) []*entity.MarketPrice {
	entities := make([]*entity.MarketPrice, len(prices))
	for i, p := range prices {
		entities[i] = m.ToEntity(p)
	}
	return entities
}

func (m *MarketMapper) ToModels(prices []*entity.MarketPrice) []*model.MarketPrice {
	models := make([]*model.MarketPrice, len(prices))
	for i, p := range prices {
		models[i] = m.ToModel(p)
	}
	return models
}

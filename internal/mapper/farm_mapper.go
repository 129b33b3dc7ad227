package mapper

import (
	"krishi-sakhi-be/internal/entity"
	"krishi-sakhi-be/internal/model"
)

type FarmMapper struct{}

func NewFarmMapper() *FarmMapper {
	return &FarmMapper{}
}

func (m *FarmMapper) ToEntity(r *model.FarmRecord) *entity.FarmRecord {
	if r == nil {
		return nil
	}
	return &entity.FarmRecord{
		Id:           r.Id,
		UserId:       r.UserId,
		CropType:     r.CropType,
		PlantingDate: r.PlantingDate,
		HarvestDate:  r.HarvestDate,
		AreaAcres:    r.AreaAcres,
		YieldKg:      r.YieldKg,
		CostInvested: r.CostInvested,
		Revenue:      r.Revenue,
		Notes:        r.Notes,
		CreatedAt:    r.CreatedAt,
	}
}

func (m *FarmMapper) ToModel(r *entity.FarmRecord) *model.FarmRecord {
	if r == nil {
		return nil
	}
	return &model.FarmRecord{
		Id:           r.Id,
		UserId:       r.UserId,
		CropType:     r.CropType,
		PlantingDate: r.PlantingDate,
		HarvestDate:  r.HarvestDate,
		AreaAcres:    r.AreaAcres,
		YieldKg:      r.YieldKg,
		CostInvested: r.CostInvested,
		Revenue:      r.Revenue,
		Notes:        r.Notes,
		CreatedAt:    r.CreatedAt,
	}
}

func (m *FarmMapper) ToEntities(records []*model.FarmRecord) []*entity.FarmRecord {
	entities := make([]*entity.FarmRecord, len(records))
	for i, r := range records {
		entities[i] = m.ToEntity(r)
	}
	return entities
}

func (m *FarmMapper) ToModels(records []*entity.FarmRecord) []*model.FarmRecord {
	models := make([]*model.FarmRecord, len(records))
	for i, r := range records {
		models[i] = m.ToModel(r)
	}
	return models
}

package mapper

import (
	"gorm.io/datatypes"

	"krishi-sakhi-be/internal/entity"
	"krishi-sakhi-be/internal/model"
)

type WeatherMapper struct{}

func NewWeatherMapper() *WeatherMapper {
	return &WeatherMapper{}
}

func (m *WeatherMapper) ToEntity(e *model.WeatherCacheEntry) *entity.WeatherCacheEntry {
	if e == nil {
		return nil
	}
	return &entity.WeatherCacheEntry{
		Id:        e.Id,
		Location:  e.Location,
		Data:      []byte(e.Data),
		CreatedAt: e.CreatedAt,
	}
}

func (m *WeatherMapper) ToModel(e *entity.WeatherCacheEntry) *model.WeatherCacheEntry {
	if e == nil {
		return nil
	}
	return &model.WeatherCacheEntry{
		Id:        e.Id,
		Location:  e.Location,
		Data:      datatypes.JSON(e.Data),
		CreatedAt: e.CreatedAt,
	}
}

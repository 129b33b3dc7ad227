package contract

import (
	"context"

	"krishi-sakhi-be/internal/entity"
	"krishi-sakhi-be/internal/repository/specification"
)

type WeatherCacheRepository interface {
	Create(ctx context.Context, entry *entity.WeatherCacheEntry) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.WeatherCacheEntry, error)
}

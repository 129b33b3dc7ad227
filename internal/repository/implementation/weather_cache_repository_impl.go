package implementation

import (
	"context"
	"errors"

	"krishi-sakhi-be/internal/entity"
	"krishi-sakhi-be/internal/mapper"
	"krishi-sakhi-be/internal/model"
	"krishi-sakhi-be/internal/repository/contract"
	"krishi-sakhi-be/internal/repository/specification"

	"gorm.io/gorm"
)

type WeatherCacheRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.WeatherMapper
}

func NewWeatherCacheRepository(db *gorm.DB) contract.WeatherCacheRepository {
	return &WeatherCacheRepositoryImpl{
		db:     db,
		mapper: mapper.NewWeatherMapper(),
	}
}

func (r *WeatherCacheRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *WeatherCacheRepositoryImpl) Create(ctx context.Context, entry *entity.WeatherCacheEntry) error {
	modelEntry := r.mapper.ToModel(entry)
	if err := r.db.WithContext(ctx).Create(modelEntry).Error; err != nil {
		return err
	}
	*entry = *r.mapper.ToEntity(modelEntry)
	return nil
}

func (r *WeatherCacheRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.WeatherCacheEntry, error) {
	var modelEntry model.WeatherCacheEntry
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelEntry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelEntry), nil
}

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

type MarketPriceRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MarketMapper
}

func NewMarketPriceRepository(db *gorm.DB) contract.MarketPriceRepository {
	return &MarketPriceRepositoryImpl{
		db:     db,
		mapper: mapper.NewMarketMapper(),
	}
}

func (r *MarketPriceRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *MarketPriceRepositoryImpl) Create(ctx context.Context, price *entity.MarketPrice) error {
	modelPrice := r.mapper.ToModel(price)
	if err := r.db.WithContext(ctx).Create(modelPrice).Error; err != nil {
		return err
	}
	*price = *r.mapper.ToEntity(modelPrice)
	return nil
}

func (r *MarketPriceRepositoryImpl) CreateBatch(ctx context.Context, prices []*entity.MarketPrice) error {
	if len(prices) == 0 {
		return nil
	}
	modelPrices := r.mapper.ToModels(prices)
	if err := r.db.WithContext(ctx).Create(&modelPrices).Error; err != nil {
		return err
	}
	for i, m := range modelPrices {
		*prices[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *MarketPriceRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.MarketPrice, error) {
	var modelPrice model.MarketPrice
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelPrice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelPrice), nil
}

func (r *MarketPriceRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MarketPrice, error) {
	var modelPrices []*model.MarketPrice
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelPrices).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelPrices), nil
}

func (r *MarketPriceRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.MarketPrice{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

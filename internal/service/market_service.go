package service

import (
	"context"
	"time"

	"krishi-sakhi-be/internal/constant"
	"krishi-sakhi-be/internal/dto"
	"krishi-sakhi-be/internal/entity"
	"krishi-sakhi-be/internal/pkg/apperror"
	"krishi-sakhi-be/internal/repository/specification"
	"krishi-sakhi-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IMarketService interface {
	Prices(ctx context.Context, district string) ([]*dto.MarketPriceResponse, error)
}

type marketService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewMarketService(uowFactory unitofwork.RepositoryFactory) IMarketService {
	return &marketService{
		uowFactory: uowFactory,
	}
}

// MockMarketPrices is the seed set used when no fresh rows exist. Shared
// with the seeder command.
func MockMarketPrices() []*entity.MarketPrice {
	now := time.Now()
	rows := []*entity.MarketPrice{
		{CropName: "Rice", District: "Thrissur", PricePerKg: 28.50, Unit: "kg", MarketName: "Thrissur Market"},
		{CropName: "Coconut", District: "Kozhikode", PricePerKg: 12.00, Unit: "piece", MarketName: "Kozhikode Market"},
		{CropName: "Pepper", District: "Idukki", PricePerKg: 450.00, Unit: "kg", MarketName: "Idukki Market"},
		{CropName: "Banana", District: "Palakkad", PricePerKg: 35.00, Unit: "kg", MarketName: "Palakkad Market"},
		{CropName: "Rubber", District: "Kottayam", PricePerKg: 180.00, Unit: "kg", MarketName: "Kottayam Market"},
	}
	for _, row := range rows {
		row.Id = uuid.New()
		row.CreatedAt = now
	}
	return rows
}

func toPriceResponses(prices []*entity.MarketPrice) []*dto.MarketPriceResponse {
	responses := make([]*dto.MarketPriceResponse, len(prices))
	for i, price := range prices {
		responses[i] = &dto.MarketPriceResponse{
			Id:         price.Id,
			CropName:   price.CropName,
			District:   price.District,
			PricePerKg: price.PricePerKg,
			Unit:       price.Unit,
			MarketName: price.MarketName,
			CreatedAt:  price.CreatedAt,
		}
	}
	return responses
}

func (s *marketService) Prices(ctx context.Context, district string) ([]*dto.MarketPriceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.CreatedAfter{Cutoff: time.Now().Add(-constant.MarketCacheTTL)},
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if district != "" {
		specs = append(specs, specification.ByDistrict{District: district})
	}

	prices, err := uow.MarketPriceRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	if len(prices) > 0 {
		return toPriceResponses(prices), nil
	}

	// Cache miss: seed the mock rows and return them. Concurrent callers
	// may both insert; duplicate rows are acceptable, reads pick newest.
	seed := MockMarketPrices()
	if err := uow.MarketPriceRepository().CreateBatch(ctx, seed); err != nil {
		return nil, apperror.Internal(err)
	}

	return toPriceResponses(seed), nil
}

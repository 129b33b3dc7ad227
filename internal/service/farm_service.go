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
	"krishi-sakhi-be/pkg/events"

	"github.com/google/uuid"
)

type IFarmService interface {
	Records(ctx context.Context, userId uuid.UUID) ([]*dto.FarmRecordResponse, error)
	AddRecord(ctx context.Context, userId uuid.UUID, req *dto.CreateFarmRecordRequest) (*dto.FarmRecordResponse, error)
	Dashboard(ctx context.Context, userId uuid.UUID) (*dto.DashboardResponse, error)
}

type farmService struct {
	uowFactory     unitofwork.RepositoryFactory
	weatherService IWeatherService
	marketService  IMarketService
	publisher      IPublisherService
}

func NewFarmService(
	uowFactory unitofwork.RepositoryFactory,
	weatherService IWeatherService,
	marketService IMarketService,
	publisher IPublisherService,
) IFarmService {
	return &farmService{
		uowFactory:     uowFactory,
		weatherService: weatherService,
		marketService:  marketService,
		publisher:      publisher,
	}
}

func parseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil
	}
	return &parsed
}

func toRecordResponse(record *entity.FarmRecord) *dto.FarmRecordResponse {
	return &dto.FarmRecordResponse{
		Id:           record.Id,
		CropType:     record.CropType,
		PlantingDate: record.PlantingDate,
		HarvestDate:  record.HarvestDate,
		AreaAcres:    record.AreaAcres,
		YieldKg:      record.YieldKg,
		CostInvested: record.CostInvested,
		Revenue:      record.Revenue,
		Notes:        record.Notes,
		CreatedAt:    record.CreatedAt,
	}
}

func (s *farmService) recordsFor(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, limit int) ([]*dto.FarmRecordResponse, error) {
	specs := []specification.Specification{
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if limit > 0 {
		specs = append(specs, specification.Pagination{Limit: limit, Offset: 0})
	}

	records, err := uow.FarmRecordRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	responses := make([]*dto.FarmRecordResponse, len(records))
	for i, record := range records {
		responses[i] = toRecordResponse(record)
	}
	return responses, nil
}

func (s *farmService) Records(ctx context.Context, userId uuid.UUID) ([]*dto.FarmRecordResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.recordsFor(ctx, uow, userId, 0)
}

func (s *farmService) AddRecord(ctx context.Context, userId uuid.UUID, req *dto.CreateFarmRecordRequest) (*dto.FarmRecordResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	record := &entity.FarmRecord{
		Id:           uuid.New(),
		UserId:       userId,
		CropType:     req.CropType,
		PlantingDate: parseDate(req.PlantingDate),
		HarvestDate:  parseDate(req.HarvestDate),
		AreaAcres:    req.AreaAcres,
		YieldKg:      req.YieldKg,
		CostInvested: req.CostInvested,
		Revenue:      req.Revenue,
		Notes:        req.Notes,
		CreatedAt:    time.Now(),
	}

	if err := uow.FarmRecordRepository().Create(ctx, record); err != nil {
		return nil, apperror.Internal(err)
	}

	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, events.NewFarmRecordAdded(userId, record.CropType))
	}

	return toRecordResponse(record), nil
}

func (s *farmService) Dashboard(ctx context.Context, userId uuid.UUID) (*dto.DashboardResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		return nil, apperror.Auth("User not found")
	}

	farmData, err := s.recordsFor(ctx, uow, userId, constant.DashboardFarmRecords)
	if err != nil {
		return nil, err
	}

	weather, err := s.weatherService.Report(ctx, user.District)
	if err != nil {
		return nil, err
	}

	marketPrices, err := s.marketService.Prices(ctx, user.District)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardResponse{
		User:         toProfile(user),
		FarmData:     farmData,
		Weather:      weather,
		MarketPrices: marketPrices,
	}, nil
}

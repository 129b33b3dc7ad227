package service

import (
	"context"
	"encoding/json"
	"time"

	"krishi-sakhi-be/internal/constant"
	"krishi-sakhi-be/internal/dto"
	"krishi-sakhi-be/internal/entity"
	"krishi-sakhi-be/internal/pkg/apperror"
	"krishi-sakhi-be/internal/repository/specification"
	"krishi-sakhi-be/internal/repository/unitofwork"
	"krishi-sakhi-be/pkg/agro"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

type IWeatherService interface {
	Report(ctx context.Context, location string) (*dto.WeatherReport, error)
}

type weatherService struct {
	uowFactory unitofwork.RepositoryFactory
	hotCache   *gocache.Cache
}

func NewWeatherService(uowFactory unitofwork.RepositoryFactory) IWeatherService {
	return &weatherService{
		uowFactory: uowFactory,
		hotCache:   gocache.New(constant.WeatherCacheTTL, 10*time.Minute),
	}
}

// currentConditions stands in for a real weather provider. The values
// are representative for the Kerala coast during the monsoon shoulder.
func currentConditions(location string) *dto.WeatherReport {
	conditions := agro.Conditions{
		Temperature: 28,
		Humidity:    75,
		Condition:   "Partly Cloudy",
		Rainfall:    15,
	}

	return &dto.WeatherReport{
		Location:    location,
		Temperature: conditions.Temperature,
		Humidity:    conditions.Humidity,
		Rainfall:    conditions.Rainfall,
		WindSpeed:   12,
		Pressure:    1013,
		UVIndex:     6,
		Visibility:  10,
		Condition:   conditions.Condition,
		Forecast: []dto.ForecastDay{
			{Day: "Today", High: 30, Low: 24, Condition: "Partly Cloudy", RainChance: 20},
			{Day: "Tomorrow", High: 32, Low: 26, Condition: "Sunny", RainChance: 10},
			{Day: "Day After", High: 29, Low: 25, Condition: "Light Rain", RainChance: 60},
		},
		FarmingAdvice: agro.FarmingAdvice(conditions),
		Alerts:        agro.WeatherAlerts(conditions),
	}
}

func (s *weatherService) Report(ctx context.Context, location string) (*dto.WeatherReport, error) {
	if cached, found := s.hotCache.Get(location); found {
		return cached.(*dto.WeatherReport), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	entry, err := uow.WeatherCacheRepository().FindOne(ctx,
		specification.ByLocation{Location: location},
		specification.CreatedAfter{Cutoff: time.Now().Add(-constant.WeatherCacheTTL)},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	if entry != nil {
		var report dto.WeatherReport
		if err := json.Unmarshal(entry.Data, &report); err == nil {
			s.hotCache.Set(location, &report, gocache.DefaultExpiration)
			return &report, nil
		}
		// Corrupt cache rows fall through to a fresh fetch.
	}

	report := currentConditions(location)

	data, err := json.Marshal(report)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	if err := uow.WeatherCacheRepository().Create(ctx, &entity.WeatherCacheEntry{
		Id:        uuid.New(),
		Location:  location,
		Data:      data,
		CreatedAt: time.Now(),
	}); err != nil {
		return nil, apperror.Internal(err)
	}

	s.hotCache.Set(location, report, gocache.DefaultExpiration)
	return report, nil
}

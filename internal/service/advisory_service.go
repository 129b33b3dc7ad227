package service

import (
	"context"

	"krishi-sakhi-be/internal/dto"
	"krishi-sakhi-be/pkg/agro"
)

type IAdvisoryService interface {
	CropRecommendations(ctx context.Context, req *dto.CropRecommendationRequest) []agro.CropRecommendation
	IrrigationSchedule(ctx context.Context, req *dto.IrrigationScheduleRequest) (*dto.IrrigationScheduleResponse, error)
}

type advisoryService struct {
	weatherService IWeatherService
}

func NewAdvisoryService(weatherService IWeatherService) IAdvisoryService {
	return &advisoryService{
		weatherService: weatherService,
	}
}

func (s *advisoryService) CropRecommendations(ctx context.Context, req *dto.CropRecommendationRequest) []agro.CropRecommendation {
	return agro.CropRecommendations(req.SoilType, req.Season, req.District)
}

func (s *advisoryService) IrrigationSchedule(ctx context.Context, req *dto.IrrigationScheduleRequest) (*dto.IrrigationScheduleResponse, error) {
	location := req.Location
	if location == "" {
		location = "Kerala"
	}

	weather, err := s.weatherService.Report(ctx, location)
	if err != nil {
		return nil, err
	}

	schedule := agro.Irrigation(req.Crop, agro.Conditions{
		Temperature: weather.Temperature,
		Humidity:    weather.Humidity,
		Condition:   weather.Condition,
		Rainfall:    weather.Rainfall,
	})

	return &dto.IrrigationScheduleResponse{
		Crop:     req.Crop,
		Schedule: schedule,
	}, nil
}

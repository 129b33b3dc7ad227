package dto

import "krishi-sakhi-be/pkg/agro"

type CropRecommendationRequest struct {
	SoilType string `json:"soil_type"`
	Season   string `json:"season"`
	District string `json:"district"`
}

type IrrigationScheduleRequest struct {
	Crop         string  `json:"crop" validate:"required"`
	SoilMoisture float64 `json:"soil_moisture"`
	Location     string  `json:"location"`
}

type IrrigationScheduleResponse struct {
	Crop     string                  `json:"crop"`
	Schedule agro.IrrigationSchedule `json:"schedule"`
}

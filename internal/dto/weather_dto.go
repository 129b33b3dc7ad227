package dto

import "krishi-sakhi-be/pkg/agro"

type ForecastDay struct {
	Day        string `json:"day"`
	High       int    `json:"high"`
	Low        int    `json:"low"`
	Condition  string `json:"condition"`
	RainChance int    `json:"rain_chance"`
}

type WeatherReport struct {
	Location      string            `json:"location"`
	Temperature   float64           `json:"temperature"`
	Humidity      float64           `json:"humidity"`
	Rainfall      float64           `json:"rainfall"`
	WindSpeed     float64           `json:"wind_speed"`
	Pressure      float64           `json:"pressure"`
	UVIndex       float64           `json:"uv_index"`
	Visibility    float64           `json:"visibility"`
	Condition     string            `json:"condition"`
	Forecast      []ForecastDay     `json:"forecast"`
	FarmingAdvice map[string]string `json:"farming_advice"`
	Alerts        []agro.Alert      `json:"alerts"`
}

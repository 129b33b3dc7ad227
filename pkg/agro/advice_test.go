package agro

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFarmingAdvice(t *testing.T) {
	t.Run("moderate weather", func(t *testing.T) {
		advice := FarmingAdvice(Conditions{Temperature: 28, Humidity: 75, Condition: "Partly Cloudy"})

		assert.Equal(t, "Normal watering schedule recommended", advice[AdviceIrrigation])
		assert.Equal(t, "Ideal conditions for most crops", advice[AdvicePlanting])
		assert.Equal(t, "Perfect weather for harvesting", advice[AdviceHarvest])
		assert.Equal(t, "Normal pest monitoring recommended", advice[AdvicePestControl])
		assert.NotContains(t, advice, AdviceStorage)
	})

	t.Run("rain overrides temperature irrigation advice", func(t *testing.T) {
		advice := FarmingAdvice(Conditions{Temperature: 38, Humidity: 60, Condition: "Heavy Rain"})

		assert.Equal(t, "No irrigation needed - natural rainfall sufficient", advice[AdviceIrrigation])
		assert.Equal(t, "Avoid harvesting during rain, wait for dry conditions", advice[AdviceHarvest])
	})

	t.Run("humidity overrides temperature harvest advice", func(t *testing.T) {
		advice := FarmingAdvice(Conditions{Temperature: 20, Humidity: 90, Condition: "Cloudy"})

		assert.Equal(t, "Check for moisture before harvesting, dry properly", advice[AdviceHarvest])
		assert.Equal(t, "Store crops in dry conditions to prevent mold", advice[AdviceStorage])
	})

	t.Run("hot and dry", func(t *testing.T) {
		advice := FarmingAdvice(Conditions{Temperature: 36, Humidity: 30, Condition: "Sunny"})

		// Dry air overwrites the heat irrigation advice, then the sunny
		// condition overwrites it again.
		assert.Equal(t, "Monitor soil moisture, sunny days increase evaporation", advice[AdviceIrrigation])
		assert.Equal(t, "Low humidity - watch for spider mites, increase humidity if possible", advice[AdvicePestControl])
	})

	t.Run("condition match is case insensitive", func(t *testing.T) {
		advice := FarmingAdvice(Conditions{Temperature: 28, Humidity: 60, Condition: "LIGHT RAIN"})
		assert.Equal(t, "No irrigation needed - natural rainfall sufficient", advice[AdviceIrrigation])
	})
}

func TestWeatherAlerts(t *testing.T) {
	t.Run("no alerts in moderate weather", func(t *testing.T) {
		alerts := WeatherAlerts(Conditions{Temperature: 25, Humidity: 60, Condition: "Cloudy"})
		assert.Empty(t, alerts)
	})

	t.Run("one alert per category in fixed order", func(t *testing.T) {
		alerts := WeatherAlerts(Conditions{Temperature: 40, Humidity: 90, Condition: "Rain"})

		assert.Len(t, alerts, 3)
		assert.Equal(t, "warning", alerts[0].Type)
		assert.Contains(t, alerts[0].Message, "High temperature")
		assert.Contains(t, alerts[1].Message, "High humidity")
		assert.Contains(t, alerts[2].Message, "Rain expected")
	})

	t.Run("cool weather is informational", func(t *testing.T) {
		alerts := WeatherAlerts(Conditions{Temperature: 12, Humidity: 35, Condition: "Clear"})

		assert.Len(t, alerts, 2)
		assert.Equal(t, "info", alerts[0].Type)
		assert.Contains(t, alerts[0].Message, "Cool weather")
		assert.Contains(t, alerts[1].Message, "Low humidity")
	})
}

func TestIrrigation(t *testing.T) {
	t.Run("known crop base schedule", func(t *testing.T) {
		schedule := Irrigation("rice", Conditions{Temperature: 25, Rainfall: 0})

		assert.Equal(t, "daily", schedule.Frequency)
		assert.Equal(t, "2 hours", schedule.Duration)
		assert.Equal(t, "Follow normal schedule", schedule.Recommendation)
	})

	t.Run("unknown crop falls back to default", func(t *testing.T) {
		schedule := Irrigation("tapioca", Conditions{Temperature: 25, Rainfall: 0})
		assert.Equal(t, "every 2 days", schedule.Frequency)
	})

	t.Run("rainfall wins over heat", func(t *testing.T) {
		schedule := Irrigation("banana", Conditions{Temperature: 35, Rainfall: 20})
		assert.Equal(t, "Skip irrigation - sufficient rainfall", schedule.Recommendation)
	})

	t.Run("heat increases frequency", func(t *testing.T) {
		schedule := Irrigation("coconut", Conditions{Temperature: 34, Rainfall: 2})
		assert.Equal(t, "Increase frequency due to high temperature", schedule.Recommendation)
	})
}

func TestCropRecommendations(t *testing.T) {
	recs := CropRecommendations("laterite", "monsoon", "Thrissur")

	assert.Len(t, recs, 5)
	assert.Equal(t, "rice", recs[0].Crop)
	assert.Equal(t, "rubber", recs[4].Crop)
	for _, rec := range recs {
		assert.True(t, rec.Suitable)
		assert.NotEmpty(t, rec.YieldPotential)
		assert.NotEmpty(t, rec.WaterRequirement)
	}
}

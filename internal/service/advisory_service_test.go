package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"krishi-sakhi-be/internal/dto"
)

func TestAdvisoryService(t *testing.T) {
	ctx := context.Background()

	t.Run("crop recommendations come from the static table", func(t *testing.T) {
		factory, _ := newTestFactory(t)
		svc := NewAdvisoryService(NewWeatherService(factory))

		recs := svc.CropRecommendations(ctx, &dto.CropRecommendationRequest{
			SoilType: "laterite",
			Season:   "monsoon",
			District: "Thrissur",
		})
		assert.Len(t, recs, 5)
		assert.Equal(t, "rice", recs[0].Crop)
	})

	t.Run("irrigation schedule reflects current weather", func(t *testing.T) {
		factory, _ := newTestFactory(t)
		svc := NewAdvisoryService(NewWeatherService(factory))

		res, err := svc.IrrigationSchedule(ctx, &dto.IrrigationScheduleRequest{Crop: "rice"})
		assert.NoError(t, err)
		assert.Equal(t, "rice", res.Crop)
		assert.Equal(t, "daily", res.Schedule.Frequency)
		// The weather feed reports 15mm rainfall, so irrigation is skipped.
		assert.Equal(t, "Skip irrigation - sufficient rainfall", res.Schedule.Recommendation)
	})

	t.Run("location defaults to the state feed", func(t *testing.T) {
		factory, _ := newTestFactory(t)
		weather := NewWeatherService(factory)
		svc := NewAdvisoryService(weather)

		_, err := svc.IrrigationSchedule(ctx, &dto.IrrigationScheduleRequest{Crop: "banana"})
		assert.NoError(t, err)

		report, err := weather.Report(ctx, "Kerala")
		assert.NoError(t, err)
		assert.Equal(t, "Kerala", report.Location)
	})
}

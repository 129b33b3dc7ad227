package agro

import "strings"

type Alert struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Icon    string `json:"icon"`
}

func hasAny(condition string, subs ...string) bool {
	lower := strings.ToLower(condition)
	for _, sub := range subs {
		if strings.Contains(lower, sub) {
			return true
		}
	}
	return false
}

// WeatherAlerts emits at most one alert per category, temperature first,
// then humidity, then rainfall.
func WeatherAlerts(c Conditions) []Alert {
	alerts := []Alert{}

	if c.Temperature > 35 {
		alerts = append(alerts, Alert{
			Type:    "warning",
			Message: "High temperature alert - Protect crops from heat stress",
			Icon:    "🌡️",
		})
	} else if c.Temperature < 15 {
		alerts = append(alerts, Alert{
			Type:    "info",
			Message: "Cool weather - Good for cool-season crops",
			Icon:    "❄️",
		})
	}

	if c.Humidity > 80 {
		alerts = append(alerts, Alert{
			Type:    "warning",
			Message: "High humidity - Watch for fungal diseases",
			Icon:    "💧",
		})
	} else if c.Humidity < 40 {
		alerts = append(alerts, Alert{
			Type:    "info",
			Message: "Low humidity - Increase irrigation frequency",
			Icon:    "🌵",
		})
	}

	if hasAny(c.Condition, "rain") {
		alerts = append(alerts, Alert{
			Type:    "info",
			Message: "Rain expected - No irrigation needed",
			Icon:    "🌧️",
		})
	}

	return alerts
}

// Package agro holds the weather driven agronomy rules: field advice,
// alerts, irrigation schedules and crop recommendations for Kerala farms.
package agro

// Conditions is the weather snapshot the rules evaluate against.
type Conditions struct {
	Temperature float64
	Humidity    float64
	Condition   string
	Rainfall    float64
}

// Advice keys
const (
	AdviceIrrigation  = "irrigation"
	AdvicePlanting    = "planting"
	AdviceHarvest     = "harvest"
	AdvicePestControl = "pest_control"
	AdviceStorage     = "storage"
)

type adviceRule struct {
	when   func(Conditions) bool
	advice map[string]string
}

// Rules run in order and later matches overwrite earlier keys, so the
// condition rules (rain, sun) take priority over the temperature bands.
var adviceRules = []adviceRule{
	{
		when: func(c Conditions) bool { return c.Temperature > 35 },
		advice: map[string]string{
			AdviceIrrigation: "Increase watering frequency due to high temperature",
			AdvicePlanting:   "Avoid planting during peak heat hours (10 AM - 4 PM)",
			AdviceHarvest:    "Harvest early morning or late evening to avoid heat stress",
		},
	},
	{
		when: func(c Conditions) bool { return c.Temperature < 15 },
		advice: map[string]string{
			AdviceIrrigation: "Reduce watering, plants need less water in cool weather",
			AdvicePlanting:   "Good time for cool-season crops like cabbage, cauliflower",
			AdviceHarvest:    "Normal harvesting time suitable",
		},
	},
	{
		when: func(c Conditions) bool { return c.Temperature >= 15 && c.Temperature <= 35 },
		advice: map[string]string{
			AdviceIrrigation: "Normal watering schedule recommended",
			AdvicePlanting:   "Ideal conditions for most crops",
			AdviceHarvest:    "Perfect weather for harvesting",
		},
	},
	{
		when: func(c Conditions) bool { return c.Humidity > 80 },
		advice: map[string]string{
			AdvicePestControl: "High humidity - monitor for fungal diseases, ensure good ventilation",
			AdviceHarvest:     "Check for moisture before harvesting, dry properly",
			AdviceStorage:     "Store crops in dry conditions to prevent mold",
		},
	},
	{
		when: func(c Conditions) bool { return c.Humidity < 40 },
		advice: map[string]string{
			AdvicePestControl: "Low humidity - watch for spider mites, increase humidity if possible",
			AdviceIrrigation:  "Increase watering due to low humidity",
			AdvicePlanting:    "Water newly planted seeds more frequently",
		},
	},
	{
		when: func(c Conditions) bool { return c.Humidity >= 40 && c.Humidity <= 80 },
		advice: map[string]string{
			AdvicePestControl: "Normal pest monitoring recommended",
			AdviceIrrigation:  "Standard irrigation schedule",
		},
	},
	{
		when: func(c Conditions) bool { return hasAny(c.Condition, "rain") },
		advice: map[string]string{
			AdviceIrrigation: "No irrigation needed - natural rainfall sufficient",
			AdviceHarvest:    "Avoid harvesting during rain, wait for dry conditions",
			AdvicePlanting:   "Good time for planting, soil will be moist",
		},
	},
	{
		when: func(c Conditions) bool { return hasAny(c.Condition, "clear", "sun") },
		advice: map[string]string{
			AdviceIrrigation: "Monitor soil moisture, sunny days increase evaporation",
			AdviceHarvest:    "Perfect weather for harvesting and drying crops",
			AdvicePlanting:   "Good conditions for planting, ensure adequate watering",
		},
	},
}

// FarmingAdvice evaluates the rule table against the current conditions.
func FarmingAdvice(c Conditions) map[string]string {
	advice := make(map[string]string)
	for _, rule := range adviceRules {
		if !rule.when(c) {
			continue
		}
		for key, text := range rule.advice {
			advice[key] = text
		}
	}
	return advice
}

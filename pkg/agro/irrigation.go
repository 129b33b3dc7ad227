package agro

type IrrigationSchedule struct {
	Frequency      string `json:"frequency"`
	Duration       string `json:"duration"`
	Amount         string `json:"amount"`
	Recommendation string `json:"recommendation"`
}

var baseSchedules = map[string]IrrigationSchedule{
	"rice":    {Frequency: "daily", Duration: "2 hours", Amount: "5-7 cm"},
	"coconut": {Frequency: "every 3 days", Duration: "1 hour", Amount: "3-4 cm"},
	"pepper":  {Frequency: "every 2 days", Duration: "1.5 hours", Amount: "4-5 cm"},
	"banana":  {Frequency: "daily", Duration: "2.5 hours", Amount: "6-8 cm"},
	"rubber":  {Frequency: "every 4 days", Duration: "1 hour", Amount: "3-4 cm"},
}

var defaultSchedule = IrrigationSchedule{
	Frequency: "every 2 days",
	Duration:  "1 hour",
	Amount:    "4-5 cm",
}

// Irrigation looks up the base schedule for the crop and adjusts the
// recommendation for recent rainfall and heat. Unknown crops get the
// default schedule.
func Irrigation(crop string, c Conditions) IrrigationSchedule {
	schedule, ok := baseSchedules[crop]
	if !ok {
		schedule = defaultSchedule
	}

	switch {
	case c.Rainfall > 10:
		schedule.Recommendation = "Skip irrigation - sufficient rainfall"
	case c.Temperature > 30:
		schedule.Recommendation = "Increase frequency due to high temperature"
	default:
		schedule.Recommendation = "Follow normal schedule"
	}

	return schedule
}

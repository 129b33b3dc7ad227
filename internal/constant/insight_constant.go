package constant

// Insight types attached to chat replies when the farmer's message hints
// at a known concern. First matching category wins.
const (
	InsightDiseaseHelp    = "disease_help"
	InsightWeatherRelated = "weather_related"
	InsightMarketRelated  = "market_related"
)

type InsightRule struct {
	Type         string
	Keywords     []string
	Suggestion   string
	QuickActions []string
}

var InsightRules = []InsightRule{
	{
		Type:       InsightDiseaseHelp,
		Keywords:   []string{"disease", "pest", "problem", "sick", "damage"},
		Suggestion: "Upload an image of the affected plant for better diagnosis",
		QuickActions: []string{
			"Check common diseases for your crop",
			"Get treatment recommendations",
			"Prevention tips",
		},
	},
	{
		Type:       InsightWeatherRelated,
		Keywords:   []string{"weather", "rain", "temperature"},
		Suggestion: "Check current weather conditions and farming advice",
		QuickActions: []string{
			"View weather widget",
			"Get irrigation recommendations",
			"Check planting conditions",
		},
	},
	{
		Type:       InsightMarketRelated,
		Keywords:   []string{"price", "market", "sell", "cost"},
		Suggestion: "Check current market prices and trends",
		QuickActions: []string{
			"View market prices",
			"Get selling recommendations",
			"Check price trends",
		},
	},
}

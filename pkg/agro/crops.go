package agro

type CropRecommendation struct {
	Crop             string `json:"crop"`
	Suitable         bool   `json:"suitable"`
	YieldPotential   string `json:"yield_potential"`
	WaterRequirement string `json:"water_requirement"`
}

// CropRecommendations lists the staple Kerala crops. Soil type, season
// and district are accepted for future refinement but the current table
// is static.
func CropRecommendations(soilType, season, district string) []CropRecommendation {
	return []CropRecommendation{
		{Crop: "rice", Suitable: true, YieldPotential: "High", WaterRequirement: "High"},
		{Crop: "coconut", Suitable: true, YieldPotential: "Medium", WaterRequirement: "Medium"},
		{Crop: "pepper", Suitable: true, YieldPotential: "High", WaterRequirement: "Medium"},
		{Crop: "banana", Suitable: true, YieldPotential: "High", WaterRequirement: "High"},
		{Crop: "rubber", Suitable: true, YieldPotential: "Medium", WaterRequirement: "Medium"},
	}
}

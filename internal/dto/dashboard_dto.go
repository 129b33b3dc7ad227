package dto

type DashboardResponse struct {
	User         UserProfileResponse    `json:"user"`
	FarmData     []*FarmRecordResponse  `json:"farm_data"`
	Weather      *WeatherReport         `json:"weather"`
	MarketPrices []*MarketPriceResponse `json:"market_prices"`
}

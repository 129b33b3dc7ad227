package constant

import "time"

const (
	// Chat assembly
	MaxHistoryTurns    = 10
	MaxInlineImages    = 4
	DefaultTemperature = 0.7

	// Listing limits
	ChatHistoryPageSize  = 50
	DashboardFarmRecords = 10

	// Cache freshness windows
	WeatherCacheTTL = 30 * time.Minute
	MarketCacheTTL  = 6 * time.Hour

	// Session token lifetime
	TokenTTL = 24 * time.Hour
)

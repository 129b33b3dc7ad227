package main

import (
	"context"
	"log"

	"krishi-sakhi-be/internal/config"
	"krishi-sakhi-be/internal/repository/implementation"
	"krishi-sakhi-be/internal/service"
	"krishi-sakhi-be/pkg/database"

	"github.com/fatih/color"
)

// Seeds the market price table with the mock Kerala rows so a fresh
// install has data before the first cache miss.
func main() {
	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Unable to connect to GORM DB: %v", err)
	}
	if err := database.Migrate(gormDB); err != nil {
		log.Fatalf("Unable to migrate database: %v", err)
	}

	repo := implementation.NewMarketPriceRepository(gormDB)
	rows := service.MockMarketPrices()

	if err := repo.CreateBatch(context.Background(), rows); err != nil {
		color.Red("Seeding failed: %v", err)
		return
	}

	for _, row := range rows {
		color.Green("Seeded %s (%s): %.2f per %s at %s",
			row.CropName, row.District, row.PricePerKg, row.Unit, row.MarketName)
	}
	color.Cyan("Done, %d market price rows inserted.", len(rows))
}

package unitofwork

import (
	"context"

	"krishi-sakhi-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ChatTurnRepository() contract.ChatTurnRepository
	FarmRecordRepository() contract.FarmRecordRepository
	WeatherCacheRepository() contract.WeatherCacheRepository
	MarketPriceRepository() contract.MarketPriceRepository
}

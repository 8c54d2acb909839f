// Package usecase implements the business logic for candle data operations.
package usecase

import (
	"context"

	"tse_backend/internal/feature/candles/domain/entity"
)

const (
	// DefaultInterval is the default time interval for candle queries.
	DefaultInterval = "1day"
	// DefaultOutputSize is the default number of candles returned.
	DefaultOutputSize = 200
	// MaxOutputSize is the maximum number of candles returned.
	MaxOutputSize = 5000
)

// CandleRepository abstracts the read/write layer for candle data.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type CandleRepository interface {
	// Find returns candles for a symbol and interval, newest first.
	Find(ctx context.Context, symbol, interval string, outputsize int) ([]entity.Candle, error)

	// UpsertBatch inserts or updates a batch of candles.
	UpsertBatch(ctx context.Context, candles []entity.Candle) error
}

// candlesUsecase implements candle query operations.
type candlesUsecase struct {
	candle CandleRepository
}

// NewCandlesUsecase creates a new candlesUsecase.
func NewCandlesUsecase(candle CandleRepository) *candlesUsecase {
	return &candlesUsecase{candle: candle}
}

// GetCandles returns candle data for the given symbol and interval.
func (cu *candlesUsecase) GetCandles(ctx context.Context, symbol, interval string, outputsize int) ([]entity.Candle, error) {
	if interval == "" {
		interval = DefaultInterval
	}
	if outputsize <= 0 || outputsize > MaxOutputSize {
		outputsize = DefaultOutputSize
	}

	return cu.candle.Find(ctx, symbol, interval, outputsize)
}

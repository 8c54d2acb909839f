package usecase

import (
	"context"
	"log/slog"

	"tse_backend/internal/feature/candles/domain/entity"
	"tse_backend/internal/shared/ratelimiter"
)

// ingestHistoryDays is how far back one ingest request reaches.
const ingestHistoryDays = 365

// MarketRepository abstracts the external source of historical price data.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (platform/brsapi).
type MarketRepository interface {
	// GetHistory returns daily candles for a symbol covering the last `days` days.
	GetHistory(ctx context.Context, symbol string, days int) ([]entity.Candle, error)
}

// IngestUsecase pulls historical data from the external API and persists it.
type IngestUsecase struct {
	market      MarketRepository
	candle      CandleRepository
	rateLimiter ratelimiter.RateLimiterInterface
}

// NewIngestUsecase creates a new IngestUsecase.
func NewIngestUsecase(market MarketRepository, candle CandleRepository, rateLimiter ratelimiter.RateLimiterInterface) *IngestUsecase {
	return &IngestUsecase{market: market, candle: candle, rateLimiter: rateLimiter}
}

// ingestOne fetches the daily history of one symbol and upserts it.
func (iu *IngestUsecase) ingestOne(ctx context.Context, symbol string, days int) error {
	cs, err := iu.market.GetHistory(ctx, symbol, days)
	if err != nil {
		return err
	}

	for i := range cs {
		cs[i].Symbol = symbol
		cs[i].Interval = DefaultInterval
	}
	return iu.candle.UpsertBatch(ctx, cs)
}

// IngestAll fetches and persists history for every given symbol, pacing
// requests with the rate limiter. A failing symbol is logged and skipped so
// one bad ticker cannot abort the whole run.
func (iu *IngestUsecase) IngestAll(ctx context.Context, symbols []string) error {
	for _, s := range symbols {
		if err := ctx.Err(); err != nil {
			return err
		}
		iu.rateLimiter.WaitIfNeeded()
		if err := iu.ingestOne(ctx, s, ingestHistoryDays); err != nil {
			slog.Error("failed to ingest history", "symbol", s, "error", err)
			continue
		}
	}
	return nil
}

// Package di provides dependency injection factories for creating application components.
package di

import (
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	candleusecase "tse_backend/internal/feature/candles/usecase"
	quoteusecase "tse_backend/internal/feature/quotes/usecase"
	"tse_backend/internal/platform/brsapi"
	"tse_backend/internal/platform/cache"
	infrahttp "tse_backend/internal/platform/http"
)

// defaultQuoteTTL matches the provider's refresh cadence for the
// market-watch snapshot.
const defaultQuoteTTL = 300 * time.Second

// NewMarket creates a fully configured BrsAPIMarket with HTTP client.
func NewMarket() (*brsapi.BrsAPIMarket, error) {
	cfg := brsapi.LoadConfig()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return brsapi.NewBrsAPIMarket(cfg, httpClient), nil
}

// QuoteTTL returns the realtime quote cache TTL, overridable via
// CACHE_TTL_SECONDS.
func QuoteTTL() time.Duration {
	if v := os.Getenv("CACHE_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return defaultQuoteTTL
}

// NewQuoteRepository wraps the market client in a Redis cache when Redis is
// available. The second return value feeds the /cache/stats endpoint and is
// nil without Redis.
func NewQuoteRepository(rdb *redis.Client, market *brsapi.BrsAPIMarket) (quoteusecase.QuoteRepository, *cache.CachingQuoteRepository) {
	if rdb == nil {
		return market, nil
	}
	cached := cache.NewCachingQuoteRepository(rdb, QuoteTTL(), market, "quotes")
	return cached, cached
}

// NewCandleRepository wraps the given candle store in a Redis cache when
// Redis is available. Daily candles stay valid until the next market open.
func NewCandleRepository(rdb *redis.Client, inner candleusecase.CandleRepository) candleusecase.CandleRepository {
	if rdb == nil {
		return inner
	}
	return cache.NewCachingCandleRepository(rdb, cache.TimeUntilNextMarketOpen(), inner, "candles")
}

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"tse_backend/internal/feature/quotes/domain/entity"
	"tse_backend/internal/feature/quotes/usecase"
)

// Stats reports the cache behavior of a decorated repository.
type Stats struct {
	Hits     int64   `json:"hits"`
	Misses   int64   `json:"misses"`
	HitRatio float64 `json:"hit_ratio"`
}

// CachingQuoteRepository decorates a QuoteRepository with Redis caching.
// Market-watch snapshots, per-symbol quotes and index values are cached
// under separate keys, all with the same TTL. Hit/miss counters feed the
// cache diagnostics endpoint.
type CachingQuoteRepository struct {
	inner     usecase.QuoteRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string

	hits   atomic.Int64
	misses atomic.Int64
}

var _ usecase.QuoteRepository = (*CachingQuoteRepository)(nil)

// NewCachingQuoteRepository decorates a QuoteRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "quotes".
func NewCachingQuoteRepository(rdb *redis.Client, ttl time.Duration, inner usecase.QuoteRepository, namespace string) *CachingQuoteRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "quotes"
	}
	return &CachingQuoteRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// MarketWatch returns the cached snapshot or fetches a fresh one.
func (c *CachingQuoteRepository) MarketWatch(ctx context.Context) ([]entity.Quote, error) {
	if c.rdb == nil {
		return c.inner.MarketWatch(ctx)
	}

	key := c.namespace + ":marketwatch"
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Quote
		if err := json.Unmarshal(b, &out); err == nil {
			c.hits.Add(1)
			return out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}
	c.misses.Add(1)

	out, err := c.inner.MarketWatch(ctx)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return out, nil
}

// SymbolInfo returns the cached quote for one symbol or fetches it.
// Not-found results are not cached; the directory changes rarely but a
// mistyped symbol should not occupy cache space.
func (c *CachingQuoteRepository) SymbolInfo(ctx context.Context, symbol string) (*entity.Quote, error) {
	if c.rdb == nil {
		return c.inner.SymbolInfo(ctx, symbol)
	}

	key := fmt.Sprintf("%s:symbol:%s", c.namespace, safe(symbol))
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.Quote
		if err := json.Unmarshal(b, &out); err == nil {
			c.hits.Add(1)
			return &out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}
	c.misses.Add(1)

	out, err := c.inner.SymbolInfo(ctx, symbol)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return out, nil
}

// Index returns the cached index snapshot or fetches it.
func (c *CachingQuoteRepository) Index(ctx context.Context, name string) (*entity.IndexQuote, error) {
	if c.rdb == nil {
		return c.inner.Index(ctx, name)
	}

	key := fmt.Sprintf("%s:index:%s", c.namespace, safe(name))
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.IndexQuote
		if err := json.Unmarshal(b, &out); err == nil {
			c.hits.Add(1)
			return &out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}
	c.misses.Add(1)

	out, err := c.inner.Index(ctx, name)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return out, nil
}

// Stats returns the hit/miss counters accumulated since startup.
func (c *CachingQuoteRepository) Stats() Stats {
	hits := c.hits.Load()
	misses := c.misses.Load()
	s := Stats{Hits: hits, Misses: misses}
	if total := hits + misses; total > 0 {
		s.HitRatio = float64(hits) / float64(total)
	}
	return s
}

package brsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// ErrRateLimited is recorded when the provider answers HTTP 429.
var ErrRateLimited = errors.New("brsapi: rate limited")

// BrsApi expects a browser-like client; requests with a bare Go User-Agent
// get filtered.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// BrsAPIMarket fetches Tehran Stock Exchange data from the BrsApi provider.
// It implements the market repository interfaces of the symbols, quotes and
// candles usecases.
type BrsAPIMarket struct {
	cfg    Config
	client *http.Client
}

// NewBrsAPIMarket creates a BrsAPIMarket with the given configuration and
// HTTP client.
func NewBrsAPIMarket(cfg Config, client *http.Client) *BrsAPIMarket {
	return &BrsAPIMarket{cfg: cfg, client: client}
}

// getJSON performs a GET against one endpoint and decodes the JSON body
// into out. Network errors are retried with exponential backoff; HTTP 429
// waits out the provider's rate-limit window before retrying. Other HTTP
// errors are not retried.
func (b *BrsAPIMarket) getJSON(ctx context.Context, endpoint string, params url.Values, out any) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("key", b.cfg.APIKey)
	u := fmt.Sprintf("%s/%s?%s", b.cfg.BaseURL, endpoint, params.Encode())

	var lastErr error
	for attempt := 0; attempt < b.cfg.RetryCount; attempt++ {
		if attempt > 0 {
			wait := time.Duration(1<<uint(attempt)) * time.Second
			if errors.Is(lastErr, ErrRateLimited) {
				wait = b.rateLimitWait()
			}
			if err := sleepCtx(ctx, wait); err != nil {
				return err
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return err
		}
		req.Header.Set("User-Agent", userAgent)
		req.Header.Set("Accept", "application/json, text/plain, */*")
		req.Header.Set("Accept-Language", "fa-IR,fa;q=0.9,en;q=0.8")

		res, err := b.client.Do(req)
		if err != nil {
			lastErr = err
			slog.Warn("brsapi request failed", "endpoint", endpoint, "attempt", attempt+1, "error", err)
			continue
		}

		switch {
		case res.StatusCode == http.StatusTooManyRequests:
			closeBody(res)
			lastErr = ErrRateLimited
			slog.Warn("brsapi rate limit hit", "endpoint", endpoint, "attempt", attempt+1)
			continue
		case res.StatusCode >= 400:
			closeBody(res)
			return fmt.Errorf("brsapi %s: http %d", endpoint, res.StatusCode)
		}

		err = json.NewDecoder(res.Body).Decode(out)
		closeBody(res)
		if err != nil {
			return fmt.Errorf("brsapi %s: decode: %w", endpoint, err)
		}
		return nil
	}
	return fmt.Errorf("brsapi %s: %d attempts failed: %w", endpoint, b.cfg.RetryCount, lastErr)
}

// rateLimitWait returns the configured 429 backoff, defaulting when a
// hand-built Config leaves it zero.
func (b *BrsAPIMarket) rateLimitWait() time.Duration {
	if b.cfg.RateLimitWait > 0 {
		return b.cfg.RateLimitWait
	}
	return DefaultRateLimitWait
}

func closeBody(res *http.Response) {
	if err := res.Body.Close(); err != nil {
		slog.Warn("failed to close response body", "error", err)
	}
}

// sleepCtx sleeps for d or until the context is cancelled.
func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

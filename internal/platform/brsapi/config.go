// Package brsapi provides a client for the BrsApi.ir Tehran Stock Exchange data API.
package brsapi

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// DefaultBaseURL is the production endpoint of the BrsApi Tsetmc API.
const DefaultBaseURL = "https://BrsApi.ir/Api/Tsetmc"

// placeholder keys shipped in .env.example that must never reach production.
var placeholderKeys = map[string]struct{}{
	"your_api_key_here": {},
	"YourApiKey":        {},
}

// DefaultRateLimitWait is how long the client backs off after a 429
// before the next attempt. The provider resets its per-minute window
// quickly, so a short bounded wait beats the blanket 60s sleep.
const DefaultRateLimitWait = 15 * time.Second

// Config holds configuration for the BrsApi client.
type Config struct {
	APIKey        string        // API key passed as the `key` query parameter
	BaseURL       string        // Base URL for the API
	Timeout       time.Duration // HTTP request timeout
	RetryCount    int           // Attempts per request before giving up
	RateLimitWait time.Duration // Backoff after a 429 response
}

// LoadConfig loads BrsApi configuration from environment variables.
// BRS_API_KEY is required; the rest have defaults matching the provider.
func LoadConfig() Config {
	cfg := Config{
		APIKey:        os.Getenv("BRS_API_KEY"),
		BaseURL:       os.Getenv("BRS_BASE_URL"),
		Timeout:       30 * time.Second,
		RetryCount:    3,
		RateLimitWait: DefaultRateLimitWait,
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if v := os.Getenv("BRS_API_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Timeout = time.Duration(n) * time.Second
		}
	}
	if v := os.Getenv("BRS_API_RETRY_COUNT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RetryCount = n
		}
	}
	if v := os.Getenv("BRS_API_RATE_LIMIT_WAIT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RateLimitWait = time.Duration(n) * time.Second
		}
	}
	return cfg
}

// Validate rejects missing, placeholder or implausibly short API keys so a
// misconfigured deployment fails at startup instead of on the first request.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return errors.New("BRS_API_KEY must be set")
	}
	if _, ok := placeholderKeys[c.APIKey]; ok {
		return fmt.Errorf("BRS_API_KEY is still the placeholder value %q", c.APIKey)
	}
	if len(c.APIKey) < 10 {
		return errors.New("BRS_API_KEY is too short to be a valid key")
	}
	return nil
}

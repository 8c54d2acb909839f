// Package handler provides HTTP handlers for the quotes feature.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tse_backend/internal/api"
	"tse_backend/internal/feature/quotes/domain/entity"
	"tse_backend/internal/feature/quotes/usecase"
	"tse_backend/internal/platform/cache"
)

// MarketUsecase defines the usecase for market-watch operations.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type MarketUsecase interface {
	GetSymbolInfo(ctx context.Context, symbol string) (*entity.Quote, error)
	FilterMarketWatch(ctx context.Context, f usecase.QuoteFilter) ([]entity.Quote, error)
	GetMarketSummary(ctx context.Context) (*entity.MarketSummary, error)
	GetIndex(ctx context.Context, name string) (*entity.IndexQuote, error)
}

// CacheStatsProvider exposes hit/miss counters of the quote cache.
type CacheStatsProvider interface {
	Stats() cache.Stats
}

// MarketHandler handles HTTP requests for live market data.
type MarketHandler struct {
	uc    MarketUsecase
	stats CacheStatsProvider
}

// NewMarketHandler creates a new MarketHandler. stats may be nil when no
// cache is configured.
func NewMarketHandler(uc MarketUsecase, stats CacheStatsProvider) *MarketHandler {
	return &MarketHandler{uc: uc, stats: stats}
}

// Watch returns the market-watch snapshot, optionally filtered by the
// min_volume, min_price and positive_only query parameters.
func (h *MarketHandler) Watch(c *gin.Context) {
	var f usecase.QuoteFilter

	if v := c.Query("min_volume"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid min_volume"})
			return
		}
		f.MinVolume = n
	}
	if v := c.Query("min_price"); v != "" {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid min_price"})
			return
		}
		f.MinPrice = n
	}
	if v := c.Query("positive_only"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid positive_only"})
			return
		}
		f.PositiveChange = b
	}

	quotes, err := h.uc.FilterMarketWatch(c.Request.Context(), f)
	if err != nil {
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "market data unavailable"})
		return
	}
	c.JSON(http.StatusOK, quotes)
}

// SymbolInfo returns the live quote for a single symbol.
func (h *MarketHandler) SymbolInfo(c *gin.Context) {
	code := c.Param("code")

	quote, err := h.uc.GetSymbolInfo(c.Request.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidSymbol):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid symbol"})
		case errors.Is(err, usecase.ErrSymbolNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "symbol not found"})
		default:
			c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "market data unavailable"})
		}
		return
	}
	c.JSON(http.StatusOK, quote)
}

// Summary returns headline figures aggregated over the whole market.
func (h *MarketHandler) Summary(c *gin.Context) {
	summary, err := h.uc.GetMarketSummary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "market data unavailable"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Index returns a market index snapshot. The name query parameter defaults
// to TEDPIX.
func (h *MarketHandler) Index(c *gin.Context) {
	index, err := h.uc.GetIndex(c.Request.Context(), c.Query("name"))
	if err != nil {
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "market data unavailable"})
		return
	}
	c.JSON(http.StatusOK, index)
}

// CacheStats reports quote cache hit/miss counters.
func (h *MarketHandler) CacheStats(c *gin.Context) {
	if h.stats == nil {
		c.JSON(http.StatusOK, cache.Stats{})
		return
	}
	c.JSON(http.StatusOK, h.stats.Stats())
}

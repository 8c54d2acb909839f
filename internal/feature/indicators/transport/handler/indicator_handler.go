// Package handler provides HTTP handlers for the indicators feature.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tse_backend/internal/api"
	"tse_backend/internal/feature/indicators/domain/entity"
	"tse_backend/internal/feature/indicators/usecase"
)

// IndicatorUsecase defines the usecase for indicator calculations.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type IndicatorUsecase interface {
	GetIndicator(ctx context.Context, symbol, interval, indicator string, period int) (*entity.Series, error)
}

// IndicatorHandler handles HTTP requests for technical indicators.
type IndicatorHandler struct {
	uc IndicatorUsecase
}

// NewIndicatorHandler creates a new IndicatorHandler.
func NewIndicatorHandler(uc IndicatorUsecase) *IndicatorHandler {
	return &IndicatorHandler{uc: uc}
}

// GetIndicator computes an indicator series for a symbol.
//
// Example:
// GET /indicators/:code?type=rsi&interval=1day&period=14
func (h *IndicatorHandler) GetIndicator(c *gin.Context) {
	code := c.Param("code")
	indicator := c.DefaultQuery("type", "sma")
	interval := c.DefaultQuery("interval", "1day")

	period := 0
	if v := c.Query("period"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid period"})
			return
		}
		period = n
	}

	series, err := h.uc.GetIndicator(c.Request.Context(), code, interval, indicator, period)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUnknownIndicator):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "unknown indicator type"})
		case errors.Is(err, usecase.ErrInsufficientData):
			c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{Error: "not enough history for this period"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, series)
}

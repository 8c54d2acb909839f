// Package handler provides the HTTP handler for the backtest feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"tse_backend/internal/feature/backtest/domain/entity"
	"tse_backend/internal/feature/backtest/usecase"
)

// BacktestUsecase defines the behavior the handler needs.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type BacktestUsecase interface {
	Run(ctx context.Context, req usecase.Request) (*entity.Report, error)
}

// BacktestHandler handles POST /backtest.
type BacktestHandler struct {
	uc BacktestUsecase
}

// NewBacktestHandler creates a new BacktestHandler.
func NewBacktestHandler(uc BacktestUsecase) *BacktestHandler {
	return &BacktestHandler{uc: uc}
}

// Run binds the request, executes the backtest and returns its report.
func (h *BacktestHandler) Run(c *gin.Context) {
	var req usecase.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	report, err := h.uc.Run(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUnknownStrategy):
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown strategy"})
		case errors.Is(err, usecase.ErrNoData):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "no candle data for symbol"})
		default:
			slog.Error("backtest failed", "symbol", req.Symbol, "strategy", req.Strategy, "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, report)
}

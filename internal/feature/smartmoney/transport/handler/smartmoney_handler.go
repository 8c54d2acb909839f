// Package handler provides HTTP handlers for the smartmoney feature.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"tse_backend/internal/api"
	"tse_backend/internal/feature/smartmoney/domain/entity"
	"tse_backend/internal/feature/smartmoney/usecase"
)

// SmartMoneyUsecase defines the usecase for smart money scans.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type SmartMoneyUsecase interface {
	Scan(ctx context.Context) (*entity.ScanReport, error)
}

// SmartMoneyHandler handles HTTP requests for smart money detection.
type SmartMoneyHandler struct {
	uc SmartMoneyUsecase
}

// NewSmartMoneyHandler creates a new SmartMoneyHandler.
func NewSmartMoneyHandler(uc SmartMoneyUsecase) *SmartMoneyHandler {
	return &SmartMoneyHandler{uc: uc}
}

// Scan runs a full market scan and returns the JSON report.
func (h *SmartMoneyHandler) Scan(c *gin.Context) {
	report, err := h.uc.Scan(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "market data unavailable"})
		return
	}
	c.JSON(http.StatusOK, report)
}

// Telegram runs a scan and returns the Persian plain-text summary used
// for Telegram channel posts.
func (h *SmartMoneyHandler) Telegram(c *gin.Context) {
	report, err := h.uc.Scan(c.Request.Context())
	if err != nil {
		c.String(http.StatusBadGateway, "❌ خطا: داده بازار در دسترس نیست")
		return
	}
	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.String(http.StatusOK, usecase.FormatTelegram(report))
}

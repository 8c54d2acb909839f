// Package handler provides HTTP handlers for the symbols feature.
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tse_backend/internal/api"
	"tse_backend/internal/feature/symbols/domain/entity"
	"tse_backend/internal/feature/symbols/transport/http/dto"
	"tse_backend/internal/feature/symbols/usecase"
)

// SymbolUsecase defines the usecase for symbol listing and search.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type SymbolUsecase interface {
	ListActiveSymbols(ctx context.Context) ([]entity.Symbol, error)
	SearchSymbols(ctx context.Context, query string) ([]entity.Symbol, error)
}

// SymbolHandler handles HTTP requests for symbol information.
type SymbolHandler struct {
	uc SymbolUsecase
}

// NewSymbolHandler creates a new SymbolHandler.
func NewSymbolHandler(uc SymbolUsecase) *SymbolHandler {
	return &SymbolHandler{uc: uc}
}

// List returns the active symbol list as JSON.
func (h *SymbolHandler) List(c *gin.Context) {
	symbols, err := h.uc.ListActiveSymbols(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, toSymbolItems(symbols))
}

// Search looks up symbols matching the q query parameter.
// Returns 400 when the query is empty.
func (h *SymbolHandler) Search(c *gin.Context) {
	query := c.Query("q")
	symbols, err := h.uc.SearchSymbols(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyQuery) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "query parameter q is required"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, toSymbolItems(symbols))
}

func toSymbolItems(symbols []entity.Symbol) []dto.SymbolItem {
	out := make([]dto.SymbolItem, 0, len(symbols))
	for _, s := range symbols {
		out = append(out, dto.SymbolItem{
			Code:     s.Code,
			Name:     s.Name,
			Market:   s.Market,
			Industry: s.Industry,
		})
	}
	return out
}

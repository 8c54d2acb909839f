package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tse_backend/internal/feature/symbols/domain/entity"
	"tse_backend/internal/feature/symbols/transport/http/dto"
	"tse_backend/internal/feature/symbols/usecase"
)

// mockSymbolUsecase is a mock implementation of the SymbolUsecase interface.
type mockSymbolUsecase struct {
	ListActiveSymbolsFunc func(ctx context.Context) ([]entity.Symbol, error)
	SearchSymbolsFunc     func(ctx context.Context, query string) ([]entity.Symbol, error)
}

func (m *mockSymbolUsecase) ListActiveSymbols(ctx context.Context) ([]entity.Symbol, error) {
	if m.ListActiveSymbolsFunc != nil {
		return m.ListActiveSymbolsFunc(ctx)
	}
	return nil, nil
}

func (m *mockSymbolUsecase) SearchSymbols(ctx context.Context, query string) ([]entity.Symbol, error) {
	if m.SearchSymbolsFunc != nil {
		return m.SearchSymbolsFunc(ctx, query)
	}
	return nil, nil
}

func TestSymbolHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success: returns symbol items", func(t *testing.T) {
		mockUC := &mockSymbolUsecase{
			ListActiveSymbolsFunc: func(ctx context.Context) ([]entity.Symbol, error) {
				return []entity.Symbol{
					{Code: "فولاد", Name: "فولاد مبارکه اصفهان", Market: "bourse", Industry: "فلزات اساسی"},
					{Code: "خودرو", Name: "ایران خودرو", Market: "bourse", Industry: "خودرو"},
				}, nil
			},
		}
		router := gin.New()
		router.GET("/symbols", NewSymbolHandler(mockUC).List)

		req, _ := http.NewRequest(http.MethodGet, "/symbols", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var got []dto.SymbolItem
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "فولاد", got[0].Code)
		assert.Equal(t, "فولاد مبارکه اصفهان", got[0].Name)
	})

	t.Run("success: empty list serializes as empty array", func(t *testing.T) {
		mockUC := &mockSymbolUsecase{
			ListActiveSymbolsFunc: func(ctx context.Context) ([]entity.Symbol, error) {
				return nil, nil
			},
		}
		router := gin.New()
		router.GET("/symbols", NewSymbolHandler(mockUC).List)

		req, _ := http.NewRequest(http.MethodGet, "/symbols", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("failure: usecase error returns 500", func(t *testing.T) {
		mockUC := &mockSymbolUsecase{
			ListActiveSymbolsFunc: func(ctx context.Context) ([]entity.Symbol, error) {
				return nil, errors.New("db down")
			},
		}
		router := gin.New()
		router.GET("/symbols", NewSymbolHandler(mockUC).List)

		req, _ := http.NewRequest(http.MethodGet, "/symbols", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestSymbolHandler_Search(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success: forwards query to usecase", func(t *testing.T) {
		var gotQuery string
		mockUC := &mockSymbolUsecase{
			SearchSymbolsFunc: func(ctx context.Context, query string) ([]entity.Symbol, error) {
				gotQuery = query
				return []entity.Symbol{{Code: "فملی", Name: "ملی صنایع مس ایران"}}, nil
			},
		}
		router := gin.New()
		router.GET("/symbols/search", NewSymbolHandler(mockUC).Search)

		req, _ := http.NewRequest(http.MethodGet, "/symbols/search?q="+"%D9%81%D9%85%D9%84%DB%8C", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "فملی", gotQuery)

		var got []dto.SymbolItem
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "فملی", got[0].Code)
	})

	t.Run("failure: empty query returns 400", func(t *testing.T) {
		mockUC := &mockSymbolUsecase{
			SearchSymbolsFunc: func(ctx context.Context, query string) ([]entity.Symbol, error) {
				return nil, usecase.ErrEmptyQuery
			},
		}
		router := gin.New()
		router.GET("/symbols/search", NewSymbolHandler(mockUC).Search)

		req, _ := http.NewRequest(http.MethodGet, "/symbols/search", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("failure: provider error returns 500", func(t *testing.T) {
		mockUC := &mockSymbolUsecase{
			SearchSymbolsFunc: func(ctx context.Context, query string) ([]entity.Symbol, error) {
				return nil, errors.New("upstream unavailable")
			},
		}
		router := gin.New()
		router.GET("/symbols/search", NewSymbolHandler(mockUC).Search)

		req, _ := http.NewRequest(http.MethodGet, "/symbols/search?q=x", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

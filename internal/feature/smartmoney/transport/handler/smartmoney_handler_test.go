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

	"tse_backend/internal/feature/smartmoney/domain/entity"
)

// mockSmartMoneyUsecase is a mock implementation of the SmartMoneyUsecase interface.
type mockSmartMoneyUsecase struct {
	ScanFunc func(ctx context.Context) (*entity.ScanReport, error)
}

func (m *mockSmartMoneyUsecase) Scan(ctx context.Context) (*entity.ScanReport, error) {
	return m.ScanFunc(ctx)
}

func sampleReport() *entity.ScanReport {
	return &entity.ScanReport{
		TotalSymbols:     100,
		SmartMoneyCount:  1,
		HasAnySmartMoney: true,
		Matches: []entity.Result{
			{
				Symbol:        "فولاد",
				HasSmartMoney: true,
				Conditions:    entity.Conditions{Volume: true, Flow: true, Price: true, Change: true},
				Volume:        20_000_000,
				AvgVolume5D:   10_000_000,
				ChangePercent: 2.5,
			},
		},
	}
}

func TestSmartMoneyHandler_Scan(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success: report returned as JSON", func(t *testing.T) {
		mock := &mockSmartMoneyUsecase{
			ScanFunc: func(ctx context.Context) (*entity.ScanReport, error) {
				return sampleReport(), nil
			},
		}
		router := gin.New()
		router.GET("/market/smart-money", NewSmartMoneyHandler(mock).Scan)

		req, _ := http.NewRequest(http.MethodGet, "/market/smart-money", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var got entity.ScanReport
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, 100, got.TotalSymbols)
		require.Len(t, got.Matches, 1)
		assert.Equal(t, "فولاد", got.Matches[0].Symbol)
		assert.True(t, got.Matches[0].Conditions.Volume)
	})

	t.Run("failure: scan error returns 502", func(t *testing.T) {
		mock := &mockSmartMoneyUsecase{
			ScanFunc: func(ctx context.Context) (*entity.ScanReport, error) {
				return nil, errors.New("upstream timeout")
			},
		}
		router := gin.New()
		router.GET("/market/smart-money", NewSmartMoneyHandler(mock).Scan)

		req, _ := http.NewRequest(http.MethodGet, "/market/smart-money", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestSmartMoneyHandler_Telegram(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success: plain-text Persian summary", func(t *testing.T) {
		mock := &mockSmartMoneyUsecase{
			ScanFunc: func(ctx context.Context) (*entity.ScanReport, error) {
				return sampleReport(), nil
			},
		}
		router := gin.New()
		router.GET("/market/smart-money/telegram", NewSmartMoneyHandler(mock).Telegram)

		req, _ := http.NewRequest(http.MethodGet, "/market/smart-money/telegram", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
		assert.Contains(t, w.Body.String(), "پول هوشمند شناسایی شد")
		assert.Contains(t, w.Body.String(), "فولاد")
	})

	t.Run("failure: scan error returns 502 text", func(t *testing.T) {
		mock := &mockSmartMoneyUsecase{
			ScanFunc: func(ctx context.Context) (*entity.ScanReport, error) {
				return nil, errors.New("upstream timeout")
			},
		}
		router := gin.New()
		router.GET("/market/smart-money/telegram", NewSmartMoneyHandler(mock).Telegram)

		req, _ := http.NewRequest(http.MethodGet, "/market/smart-money/telegram", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Contains(t, w.Body.String(), "خطا")
	})
}

package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	candleentity "tse_backend/internal/feature/candles/domain/entity"
)

// mockCandleRepository is a mock implementation of the CandleRepository interface.
type mockCandleRepository struct {
	FindFunc func(ctx context.Context, symbol, interval string, outputsize int) ([]candleentity.Candle, error)
}

func (m *mockCandleRepository) Find(ctx context.Context, symbol, interval string, outputsize int) ([]candleentity.Candle, error) {
	return m.FindFunc(ctx, symbol, interval, outputsize)
}

// candleHistory returns n daily candles newest first, closes rising toward
// the most recent day.
func candleHistory(n int) []candleentity.Candle {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	out := make([]candleentity.Candle, n)
	for i := 0; i < n; i++ {
		day := n - 1 - i
		close := 5000 + float64(day)*10
		out[i] = candleentity.Candle{
			Symbol:   "فولاد",
			Interval: "1day",
			Time:     base.AddDate(0, 0, day),
			Open:     close - 5,
			High:     close + 20,
			Low:      close - 20,
			Close:    close,
			Volume:   1000,
		}
	}
	return out
}

func TestIndicatorUsecase_GetIndicator(t *testing.T) {
	t.Parallel()

	repo := &mockCandleRepository{
		FindFunc: func(ctx context.Context, symbol, interval string, outputsize int) ([]candleentity.Candle, error) {
			return candleHistory(60), nil
		},
	}
	uc := NewIndicatorUsecase(repo)

	t.Run("sma: single line aligned to newest candles", func(t *testing.T) {
		t.Parallel()

		series, err := uc.GetIndicator(context.Background(), "فولاد", "1day", "sma", 20)

		require.NoError(t, err)
		assert.Equal(t, "sma", series.Indicator)
		assert.Equal(t, 20, series.Period)

		line := series.Lines["sma"]
		require.Len(t, line, 41)
		assert.Equal(t, "2024-02-29", line[len(line)-1].Time, "last point should be the newest candle")

		// closes rise 10/day, so a 20-day SMA trails the close by 95
		assert.InDelta(t, 5590-95, line[len(line)-1].Value, 1e-9)
	})

	t.Run("rsi: rising closes read 100", func(t *testing.T) {
		t.Parallel()

		series, err := uc.GetIndicator(context.Background(), "فولاد", "1day", "rsi", 14)

		require.NoError(t, err)
		line := series.Lines["rsi"]
		require.NotEmpty(t, line)
		assert.InDelta(t, 100.0, line[len(line)-1].Value, 1e-9)
	})

	t.Run("macd: three lines of equal length", func(t *testing.T) {
		t.Parallel()

		series, err := uc.GetIndicator(context.Background(), "فولاد", "1day", "macd", 0)

		require.NoError(t, err)
		assert.Zero(t, series.Period, "macd uses fixed 12/26/9 periods")
		require.NotEmpty(t, series.Lines["macd"])
		assert.Len(t, series.Lines["signal"], len(series.Lines["macd"]))
		assert.Len(t, series.Lines["histogram"], len(series.Lines["macd"]))
	})

	t.Run("bollinger: bands bracket the middle", func(t *testing.T) {
		t.Parallel()

		series, err := uc.GetIndicator(context.Background(), "فولاد", "1day", "bollinger", 20)

		require.NoError(t, err)
		middle := series.Lines["middle"]
		upper := series.Lines["upper"]
		lower := series.Lines["lower"]
		require.NotEmpty(t, middle)
		require.Len(t, upper, len(middle))
		require.Len(t, lower, len(middle))
		last := len(middle) - 1
		assert.Greater(t, upper[last].Value, middle[last].Value)
		assert.Less(t, lower[last].Value, middle[last].Value)
	})

	t.Run("defaults: blank interval and zero period", func(t *testing.T) {
		t.Parallel()

		var gotInterval string
		checkRepo := &mockCandleRepository{
			FindFunc: func(ctx context.Context, symbol, interval string, outputsize int) ([]candleentity.Candle, error) {
				gotInterval = interval
				return candleHistory(60), nil
			},
		}
		series, err := NewIndicatorUsecase(checkRepo).GetIndicator(context.Background(), "فولاد", "", "RSI", 0)

		require.NoError(t, err)
		assert.Equal(t, "1day", gotInterval)
		assert.Equal(t, DefaultPeriod, series.Period)
		assert.Equal(t, "rsi", series.Indicator, "indicator name should be normalized")
	})

	t.Run("failure: unknown indicator", func(t *testing.T) {
		t.Parallel()

		_, err := uc.GetIndicator(context.Background(), "فولاد", "1day", "vwap", 14)
		assert.ErrorIs(t, err, ErrUnknownIndicator)
	})

	t.Run("failure: not enough history", func(t *testing.T) {
		t.Parallel()

		short := &mockCandleRepository{
			FindFunc: func(ctx context.Context, symbol, interval string, outputsize int) ([]candleentity.Candle, error) {
				return candleHistory(5), nil
			},
		}
		_, err := NewIndicatorUsecase(short).GetIndicator(context.Background(), "فولاد", "1day", "sma", 20)
		assert.ErrorIs(t, err, ErrInsufficientData)
	})

	t.Run("failure: repository error is returned", func(t *testing.T) {
		t.Parallel()

		failing := &mockCandleRepository{
			FindFunc: func(ctx context.Context, symbol, interval string, outputsize int) ([]candleentity.Candle, error) {
				return nil, errors.New("db down")
			},
		}
		_, err := NewIndicatorUsecase(failing).GetIndicator(context.Background(), "فولاد", "1day", "sma", 20)
		assert.Error(t, err)
	})
}

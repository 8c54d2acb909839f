// Package usecase implements technical indicator calculations over stored candles.
package usecase

import (
	"context"
	"strings"

	candleentity "tse_backend/internal/feature/candles/domain/entity"
	"tse_backend/internal/feature/indicators/domain/entity"
)

const (
	// DefaultPeriod applies when the request does not name one.
	DefaultPeriod = 14
	// BollingerCoef is the band width in standard deviations.
	BollingerCoef = 2.0

	macdFast   = 12
	macdSlow   = 26
	macdSignal = 9

	// fetchSize bounds how much history one calculation loads.
	fetchSize = 500

	timeLayout = "2006-01-02"
)

// CandleRepository abstracts the candle store the indicators read from.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type CandleRepository interface {
	// Find returns candles for a symbol and interval, newest first.
	Find(ctx context.Context, symbol, interval string, outputsize int) ([]candleentity.Candle, error)
}

// IndicatorUsecase computes indicator series from stored candle history.
type IndicatorUsecase struct {
	candles CandleRepository
}

// NewIndicatorUsecase creates a new IndicatorUsecase.
func NewIndicatorUsecase(candles CandleRepository) *IndicatorUsecase {
	return &IndicatorUsecase{candles: candles}
}

// GetIndicator computes the named indicator for a symbol. Supported types:
// sma, ema, rsi, macd, bollinger. period is ignored for macd.
func (u *IndicatorUsecase) GetIndicator(ctx context.Context, symbol, interval, indicator string, period int) (*entity.Series, error) {
	indicator = strings.ToLower(strings.TrimSpace(indicator))
	if interval == "" {
		interval = "1day"
	}
	if period <= 0 {
		period = DefaultPeriod
	}

	candles, err := u.candles.Find(ctx, symbol, interval, fetchSize)
	if err != nil {
		return nil, err
	}
	// stored newest first, indicators run oldest first
	reverse(candles)

	closes := make([]float64, len(candles))
	times := make([]string, len(candles))
	for i, c := range candles {
		closes[i] = c.Close
		times[i] = c.Time.UTC().Format(timeLayout)
	}

	series := &entity.Series{
		Symbol:    symbol,
		Interval:  interval,
		Indicator: indicator,
		Period:    period,
		Lines:     map[string][]entity.Point{},
	}

	switch indicator {
	case "sma":
		line := SMA(closes, period)
		if line == nil {
			return nil, ErrInsufficientData
		}
		series.Lines["sma"] = toPoints(times, line)

	case "ema":
		line := EMA(closes, period)
		if line == nil {
			return nil, ErrInsufficientData
		}
		series.Lines["ema"] = toPoints(times, line)

	case "rsi":
		line := RSI(closes, period)
		if line == nil {
			return nil, ErrInsufficientData
		}
		series.Lines["rsi"] = toPoints(times, line)

	case "macd":
		series.Period = 0
		macd, signal, histogram := MACD(closes, macdFast, macdSlow, macdSignal)
		if macd == nil {
			return nil, ErrInsufficientData
		}
		series.Lines["macd"] = toPoints(times, macd)
		series.Lines["signal"] = toPoints(times, signal)
		series.Lines["histogram"] = toPoints(times, histogram)

	case "bollinger":
		windows := make([]BollingerWindow, len(candles))
		for i, c := range candles {
			windows[i] = BollingerWindow{High: c.High, Low: c.Low, Close: c.Close}
		}
		middle, upper, lower := Bollinger(windows, period, BollingerCoef)
		if middle == nil {
			return nil, ErrInsufficientData
		}
		series.Lines["middle"] = toPoints(times, middle)
		series.Lines["upper"] = toPoints(times, upper)
		series.Lines["lower"] = toPoints(times, lower)

	default:
		return nil, ErrUnknownIndicator
	}

	return series, nil
}

// toPoints pairs a line with the newest timestamps; indicator lines are
// shorter than the candle series so they align to its tail.
func toPoints(times []string, line []float64) []entity.Point {
	offset := len(times) - len(line)
	points := make([]entity.Point, len(line))
	for i, v := range line {
		points[i] = entity.Point{Time: times[offset+i], Value: v}
	}
	return points
}

func reverse(candles []candleentity.Candle) {
	for i, j := 0, len(candles)-1; i < j; i, j = i+1, j-1 {
		candles[i], candles[j] = candles[j], candles[i]
	}
}

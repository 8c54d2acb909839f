// Package usecase implements strategy backtesting over stored candle history.
package usecase

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"tse_backend/internal/feature/backtest/domain/entity"
	candleentity "tse_backend/internal/feature/candles/domain/entity"
)

const (
	// DefaultInitialCapital is the starting cash when the request leaves
	// it unset (rial).
	DefaultInitialCapital = 100_000_000
	// DefaultCommissionRate approximates TSE round-trip fees per fill.
	DefaultCommissionRate = 0.005

	defaultFast   = 10
	defaultSlow   = 30
	defaultPeriod = 20
	defaultCoef   = 2.0

	// FetchSize bounds how much history one run loads.
	FetchSize = 2000
)

// CandleRepository abstracts the candle store backtests read from.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type CandleRepository interface {
	// Find returns candles for a symbol and interval, newest first.
	Find(ctx context.Context, symbol, interval string, outputsize int) ([]candleentity.Candle, error)
}

// Request describes one backtest run. Zero values take defaults.
type Request struct {
	Symbol         string  `json:"symbol" binding:"required"`
	Interval       string  `json:"interval"`
	Strategy       string  `json:"strategy" binding:"required"`
	Fast           int     `json:"fast"`
	Slow           int     `json:"slow"`
	Period         int     `json:"period"`
	InitialCapital float64 `json:"initial_capital"`
	CommissionRate float64 `json:"commission_rate"`
}

// BacktestUsecase runs strategies over stored history.
type BacktestUsecase struct {
	candles CandleRepository
}

// NewBacktestUsecase creates a new BacktestUsecase.
func NewBacktestUsecase(candles CandleRepository) *BacktestUsecase {
	return &BacktestUsecase{candles: candles}
}

// buildStrategy maps a request to a concrete strategy.
func buildStrategy(req Request) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(req.Strategy)) {
	case "sma_cross":
		fast, slow := req.Fast, req.Slow
		if fast <= 0 {
			fast = defaultFast
		}
		if slow <= 0 {
			slow = defaultSlow
		}
		if fast >= slow {
			return nil, ErrUnknownStrategy
		}
		return SMACross{Fast: fast, Slow: slow}, nil

	case "bollinger_reversion":
		period := req.Period
		if period <= 0 {
			period = defaultPeriod
		}
		return BollingerReversion{Period: period, Coef: defaultCoef}, nil

	default:
		return nil, ErrUnknownStrategy
	}
}

// Run executes the requested backtest and returns its report.
func (u *BacktestUsecase) Run(ctx context.Context, req Request) (*entity.Report, error) {
	strategy, err := buildStrategy(req)
	if err != nil {
		return nil, err
	}

	interval := req.Interval
	if interval == "" {
		interval = "1day"
	}

	candles, err := u.candles.Find(ctx, req.Symbol, interval, FetchSize)
	if err != nil {
		return nil, err
	}
	if len(candles) == 0 {
		return nil, ErrNoData
	}
	// stored newest first, the engine steps oldest first
	for i, j := 0, len(candles)-1; i < j; i, j = i+1, j-1 {
		candles[i], candles[j] = candles[j], candles[i]
	}

	capital := req.InitialCapital
	if capital <= 0 {
		capital = DefaultInitialCapital
	}
	commission := req.CommissionRate
	if commission < 0 {
		commission = 0
	}
	if commission == 0 && req.CommissionRate == 0 {
		commission = DefaultCommissionRate
	}

	engine := NewEngine(decimal.NewFromFloat(capital), decimal.NewFromFloat(commission))
	return engine.Run(req.Symbol, interval, candles, strategy), nil
}

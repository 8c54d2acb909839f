package usecase

import (
	"github.com/shopspring/decimal"

	"tse_backend/internal/feature/backtest/domain/entity"
	candleentity "tse_backend/internal/feature/candles/domain/entity"
)

// Signal is a strategy's verdict for one candle.
type Signal int

const (
	SignalNone Signal = iota
	SignalBuy
	SignalSell
)

// Strategy emits signals while the engine steps through history.
// OnCandle sees candles[:i+1] of an oldest-first series; the engine fills
// the signal at the next candle's open.
type Strategy interface {
	Name() string
	OnCandle(candles []candleentity.Candle, i int) Signal
}

// Engine simulates a single-position long-only portfolio over a candle
// series. All money arithmetic uses decimals so commission rounding does
// not drift.
type Engine struct {
	InitialCapital decimal.Decimal
	CommissionRate decimal.Decimal
}

// NewEngine creates an Engine with the given starting cash and commission
// rate (e.g. 0.005 for half a percent per fill).
func NewEngine(initialCapital, commissionRate decimal.Decimal) *Engine {
	return &Engine{InitialCapital: initialCapital, CommissionRate: commissionRate}
}

// Run replays the candle series through the strategy. Candles must be
// ordered oldest first. Signals fire on candle i and fill at the open of
// candle i+1; the last candle therefore never opens a trade.
func (e *Engine) Run(symbol, interval string, candles []candleentity.Candle, strategy Strategy) *entity.Report {
	one := decimal.NewFromInt(1)

	cash := e.InitialCapital
	position := decimal.Zero
	entryCost := decimal.Zero

	report := &entity.Report{
		Symbol:         symbol,
		Interval:       interval,
		Strategy:       strategy.Name(),
		InitialCapital: e.InitialCapital,
		Trades:         []entity.Trade{},
		EquityCurve:    make([]entity.EquityPoint, 0, len(candles)),
	}

	wins := 0
	closed := 0

	for i := range candles {
		if i < len(candles)-1 {
			next := candles[i+1]
			price := decimal.NewFromFloat(next.Open)

			switch strategy.OnCandle(candles, i) {
			case SignalBuy:
				if position.IsZero() && cash.IsPositive() && price.IsPositive() {
					entryCost = cash
					spend := cash.Div(one.Add(e.CommissionRate))
					position = spend.Div(price)
					cash = decimal.Zero
					report.Trades = append(report.Trades, entity.Trade{
						Side:     "buy",
						Time:     next.Time,
						Price:    price,
						Quantity: position,
					})
				}
			case SignalSell:
				if position.IsPositive() {
					proceeds := position.Mul(price)
					commission := proceeds.Mul(e.CommissionRate)
					cash = proceeds.Sub(commission)
					profit := cash.Sub(entryCost)
					report.Trades = append(report.Trades, entity.Trade{
						Side:     "sell",
						Time:     next.Time,
						Price:    price,
						Quantity: position,
						Profit:   profit,
					})
					if profit.IsPositive() {
						wins++
					}
					closed++
					position = decimal.Zero
					entryCost = decimal.Zero
				}
			}
		}

		equity := cash.Add(position.Mul(decimal.NewFromFloat(candles[i].Close)))
		report.EquityCurve = append(report.EquityCurve, entity.EquityPoint{
			Time:   candles[i].Time,
			Equity: equity,
		})
	}

	if len(report.EquityCurve) > 0 {
		report.FinalEquity = report.EquityCurve[len(report.EquityCurve)-1].Equity
	} else {
		report.FinalEquity = e.InitialCapital
	}

	if e.InitialCapital.IsPositive() {
		ret, _ := report.FinalEquity.Sub(e.InitialCapital).
			Div(e.InitialCapital).Mul(decimal.NewFromInt(100)).Float64()
		report.TotalReturnPct = ret
	}
	report.MaxDrawdownPct = maxDrawdown(report.EquityCurve)
	report.TotalTrades = len(report.Trades)
	if closed > 0 {
		report.WinRate = float64(wins) / float64(closed) * 100
	}

	return report
}

// maxDrawdown returns the deepest peak-to-trough equity loss in percent.
func maxDrawdown(curve []entity.EquityPoint) float64 {
	if len(curve) == 0 {
		return 0
	}
	peak := curve[0].Equity
	maxDD := decimal.Zero
	for _, p := range curve {
		if p.Equity.GreaterThan(peak) {
			peak = p.Equity
		}
		if peak.IsPositive() {
			dd := peak.Sub(p.Equity).Div(peak)
			if dd.GreaterThan(maxDD) {
				maxDD = dd
			}
		}
	}
	out, _ := maxDD.Mul(decimal.NewFromInt(100)).Float64()
	return out
}

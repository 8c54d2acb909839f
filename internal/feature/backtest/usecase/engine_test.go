package usecase

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	candleentity "tse_backend/internal/feature/candles/domain/entity"
)

// scriptStrategy replays a fixed set of signals keyed by candle index.
type scriptStrategy struct {
	signals map[int]Signal
}

func (s scriptStrategy) Name() string { return "script" }

func (s scriptStrategy) OnCandle(_ []candleentity.Candle, i int) Signal {
	return s.signals[i]
}

// testCandles builds an oldest-first daily series from (open, close) pairs.
func testCandles(prices ...[2]float64) []candleentity.Candle {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	candles := make([]candleentity.Candle, 0, len(prices))
	for i, p := range prices {
		candles = append(candles, candleentity.Candle{
			Symbol:   "فولاد",
			Interval: "1day",
			Time:     base.AddDate(0, 0, i),
			Open:     p[0],
			High:     p[1],
			Low:      p[0],
			Close:    p[1],
			Volume:   1000,
		})
	}
	return candles
}

func TestEngine_Run_RoundTrip(t *testing.T) {
	t.Parallel()

	candles := testCandles(
		[2]float64{10, 10},
		[2]float64{10, 12},
		[2]float64{12, 14},
		[2]float64{15, 15},
	)
	strategy := scriptStrategy{signals: map[int]Signal{0: SignalBuy, 2: SignalSell}}

	engine := NewEngine(decimal.NewFromInt(1000), decimal.Zero)
	report := engine.Run("فولاد", "1day", candles, strategy)

	require.Len(t, report.Trades, 2)

	buy := report.Trades[0]
	assert.Equal(t, "buy", buy.Side)
	assert.Equal(t, candles[1].Time, buy.Time)
	assert.True(t, buy.Price.Equal(decimal.NewFromInt(10)))
	assert.True(t, buy.Quantity.Equal(decimal.NewFromInt(100)), "all-in fill at next open")

	sell := report.Trades[1]
	assert.Equal(t, "sell", sell.Side)
	assert.Equal(t, candles[3].Time, sell.Time)
	assert.True(t, sell.Price.Equal(decimal.NewFromInt(15)))
	assert.True(t, sell.Profit.Equal(decimal.NewFromInt(500)))

	assert.True(t, report.FinalEquity.Equal(decimal.NewFromInt(1500)))
	assert.InDelta(t, 50.0, report.TotalReturnPct, 1e-9)
	assert.Equal(t, 2, report.TotalTrades)
	assert.InDelta(t, 100.0, report.WinRate, 1e-9)

	require.Len(t, report.EquityCurve, 4)
	assert.True(t, report.EquityCurve[0].Equity.Equal(decimal.NewFromInt(1000)))
	assert.True(t, report.EquityCurve[1].Equity.Equal(decimal.NewFromInt(1200)))
	assert.True(t, report.EquityCurve[3].Equity.Equal(decimal.NewFromInt(1500)))
}

func TestEngine_Run_CommissionBothSides(t *testing.T) {
	t.Parallel()

	candles := testCandles(
		[2]float64{10, 10},
		[2]float64{10, 12},
		[2]float64{12, 14},
		[2]float64{15, 15},
	)
	strategy := scriptStrategy{signals: map[int]Signal{0: SignalBuy, 2: SignalSell}}

	rate := decimal.NewFromFloat(0.01)
	engine := NewEngine(decimal.NewFromInt(1000), rate)
	report := engine.Run("فولاد", "1day", candles, strategy)

	require.Len(t, report.Trades, 2)

	// spend 1000/1.01 at 10 per share, sell at 15 minus 1% of proceeds
	one := decimal.NewFromInt(1)
	qty := decimal.NewFromInt(1000).Div(one.Add(rate)).Div(decimal.NewFromInt(10))
	assert.True(t, report.Trades[0].Quantity.Equal(qty))

	proceeds := qty.Mul(decimal.NewFromInt(15))
	wantCash := proceeds.Sub(proceeds.Mul(rate))
	assert.True(t, report.FinalEquity.Equal(wantCash))
	assert.True(t, report.Trades[1].Profit.Equal(wantCash.Sub(decimal.NewFromInt(1000))))
}

func TestEngine_Run_OpenPositionMarkedToMarket(t *testing.T) {
	t.Parallel()

	candles := testCandles(
		[2]float64{10, 10},
		[2]float64{10, 12},
		[2]float64{12, 9},
		[2]float64{9, 11},
	)
	strategy := scriptStrategy{signals: map[int]Signal{0: SignalBuy}}

	engine := NewEngine(decimal.NewFromInt(1000), decimal.Zero)
	report := engine.Run("فولاد", "1day", candles, strategy)

	require.Len(t, report.Trades, 1)
	assert.True(t, report.FinalEquity.Equal(decimal.NewFromInt(1100)))
	assert.InDelta(t, 10.0, report.TotalReturnPct, 1e-9)
	// equity ran 1200 down to 900
	assert.InDelta(t, 25.0, report.MaxDrawdownPct, 1e-9)
	assert.Zero(t, report.WinRate, "no closed round trips")
}

func TestEngine_Run_IgnoresRedundantSignals(t *testing.T) {
	t.Parallel()

	candles := testCandles(
		[2]float64{10, 10},
		[2]float64{10, 11},
		[2]float64{11, 12},
		[2]float64{12, 13},
	)
	// sell with no position, then buy twice in a row
	strategy := scriptStrategy{signals: map[int]Signal{0: SignalSell, 1: SignalBuy, 2: SignalBuy}}

	engine := NewEngine(decimal.NewFromInt(1000), decimal.Zero)
	report := engine.Run("فولاد", "1day", candles, strategy)

	require.Len(t, report.Trades, 1)
	assert.Equal(t, "buy", report.Trades[0].Side)
	assert.Equal(t, candles[2].Time, report.Trades[0].Time)
}

func TestEngine_Run_SignalOnLastCandleNeverFills(t *testing.T) {
	t.Parallel()

	candles := testCandles(
		[2]float64{10, 10},
		[2]float64{10, 11},
	)
	strategy := scriptStrategy{signals: map[int]Signal{1: SignalBuy}}

	engine := NewEngine(decimal.NewFromInt(1000), decimal.Zero)
	report := engine.Run("فولاد", "1day", candles, strategy)

	assert.Empty(t, report.Trades)
	assert.True(t, report.FinalEquity.Equal(decimal.NewFromInt(1000)))
}

func TestEngine_Run_EmptySeries(t *testing.T) {
	t.Parallel()

	engine := NewEngine(decimal.NewFromInt(1000), decimal.Zero)
	report := engine.Run("فولاد", "1day", nil, scriptStrategy{})

	assert.Empty(t, report.Trades)
	assert.Empty(t, report.EquityCurve)
	assert.True(t, report.FinalEquity.Equal(decimal.NewFromInt(1000)))
	assert.Zero(t, report.TotalReturnPct)
	assert.Zero(t, report.MaxDrawdownPct)
}

package usecase

import (
	"fmt"
	"math"

	candleentity "tse_backend/internal/feature/candles/domain/entity"
)

// SMACross goes long when the fast moving average crosses above the slow
// one and exits on the opposite cross.
type SMACross struct {
	Fast int
	Slow int
}

func (s SMACross) Name() string {
	return fmt.Sprintf("sma_cross_%d_%d", s.Fast, s.Slow)
}

func (s SMACross) OnCandle(candles []candleentity.Candle, i int) Signal {
	// a cross needs the averages of this candle and the previous one
	if i < s.Slow {
		return SignalNone
	}

	fastNow := smaAt(candles, i, s.Fast)
	slowNow := smaAt(candles, i, s.Slow)
	fastPrev := smaAt(candles, i-1, s.Fast)
	slowPrev := smaAt(candles, i-1, s.Slow)

	if fastPrev <= slowPrev && fastNow > slowNow {
		return SignalBuy
	}
	if fastPrev >= slowPrev && fastNow < slowNow {
		return SignalSell
	}
	return SignalNone
}

// BollingerReversion buys when the close drops below the lower band and
// sells when it recovers past the middle band.
type BollingerReversion struct {
	Period int
	Coef   float64
}

func (s BollingerReversion) Name() string {
	return fmt.Sprintf("bollinger_reversion_%d", s.Period)
}

func (s BollingerReversion) OnCandle(candles []candleentity.Candle, i int) Signal {
	if i < s.Period-1 {
		return SignalNone
	}

	window := candles[i-s.Period+1 : i+1]

	var sum float64
	for _, c := range window {
		sum += (c.High + c.Low + c.Close) / 3
	}
	mean := sum / float64(s.Period)

	sum = 0
	for _, c := range window {
		sum += math.Pow(c.Close-mean, 2)
	}
	sd := math.Sqrt(sum / float64(s.Period))

	last := candles[i].Close
	switch {
	case last < mean-s.Coef*sd:
		return SignalBuy
	case last > mean:
		return SignalSell
	default:
		return SignalNone
	}
}

// smaAt is the simple moving average of the n closes ending at index i.
func smaAt(candles []candleentity.Candle, i, n int) float64 {
	var sum float64
	for j := i - n + 1; j <= i; j++ {
		sum += candles[j].Close
	}
	return sum / float64(n)
}

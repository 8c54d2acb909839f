package usecase

import "math"

// SMA returns the simple moving average of values over the given period.
// The result has len(values)-period+1 entries, the first covering
// values[0:period].
func SMA(values []float64, period int) []float64 {
	if period <= 0 || len(values) < period {
		return nil
	}
	out := make([]float64, 0, len(values)-period+1)
	var sum float64
	for i, v := range values {
		sum += v
		if i >= period {
			sum -= values[i-period]
		}
		if i >= period-1 {
			out = append(out, sum/float64(period))
		}
	}
	return out
}

// EMA returns the exponential moving average of values over the given
// period, seeded with the SMA of the first period values.
func EMA(values []float64, period int) []float64 {
	if period <= 0 || len(values) < period {
		return nil
	}
	k := 2.0 / float64(period+1)

	var seed float64
	for _, v := range values[:period] {
		seed += v
	}
	seed /= float64(period)

	out := make([]float64, 0, len(values)-period+1)
	out = append(out, seed)
	prev := seed
	for _, v := range values[period:] {
		prev = v*k + prev*(1-k)
		out = append(out, prev)
	}
	return out
}

// RSI returns the relative strength index with Wilder smoothing.
// The result has len(values)-period entries.
func RSI(values []float64, period int) []float64 {
	if period <= 0 || len(values) < period+1 {
		return nil
	}

	var avgGain, avgLoss float64
	for i := 1; i <= period; i++ {
		delta := values[i] - values[i-1]
		if delta > 0 {
			avgGain += delta
		} else {
			avgLoss -= delta
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)

	out := make([]float64, 0, len(values)-period)
	out = append(out, rsiValue(avgGain, avgLoss))
	for i := period + 1; i < len(values); i++ {
		delta := values[i] - values[i-1]
		gain, loss := 0.0, 0.0
		if delta > 0 {
			gain = delta
		} else {
			loss = -delta
		}
		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
		out = append(out, rsiValue(avgGain, avgLoss))
	}
	return out
}

func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100
	}
	rs := avgGain / avgLoss
	return 100 - 100/(1+rs)
}

// MACD returns the MACD line (EMA12-EMA26), its signal line (EMA9 of the
// MACD line) and the histogram. All three are aligned to the signal line.
func MACD(values []float64, fast, slow, signal int) (macd, signalLine, histogram []float64) {
	if fast <= 0 || slow <= fast || signal <= 0 || len(values) < slow+signal-1 {
		return nil, nil, nil
	}

	fastEMA := EMA(values, fast)
	slowEMA := EMA(values, slow)

	// fastEMA starts (slow-fast) entries earlier than slowEMA
	offset := slow - fast
	line := make([]float64, len(slowEMA))
	for i := range slowEMA {
		line[i] = fastEMA[i+offset] - slowEMA[i]
	}

	signalLine = EMA(line, signal)
	macd = line[len(line)-len(signalLine):]
	histogram = make([]float64, len(signalLine))
	for i := range signalLine {
		histogram[i] = macd[i] - signalLine[i]
	}
	return macd, signalLine, histogram
}

// BollingerWindow holds one candle's prices needed for band calculation.
type BollingerWindow struct {
	High  float64
	Low   float64
	Close float64
}

// Bollinger returns the middle, upper and lower bands over the given window.
// The middle band is the mean of typical prices (H+L+C)/3; the band width is
// coef standard deviations of the closes.
func Bollinger(candles []BollingerWindow, period int, coef float64) (middle, upper, lower []float64) {
	if period <= 0 || len(candles) < period {
		return nil, nil, nil
	}

	n := len(candles) - period + 1
	middle = make([]float64, n)
	upper = make([]float64, n)
	lower = make([]float64, n)

	for i := 0; i < n; i++ {
		window := candles[i : i+period]

		var sum float64
		for _, c := range window {
			sum += (c.High + c.Low + c.Close) / 3
		}
		mean := sum / float64(period)

		sum = 0
		for _, c := range window {
			sum += math.Pow(c.Close-mean, 2)
		}
		sd := math.Sqrt(sum / float64(period))

		middle[i] = mean
		upper[i] = mean + coef*sd
		lower[i] = mean - coef*sd
	}
	return middle, upper, lower
}

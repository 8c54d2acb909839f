// Package entity defines the domain models for the candles feature.
package entity

import "time"

// Candle represents OHLCV (Open, High, Low, Close, Volume) candlestick data
// for a symbol at a specific time interval.
type Candle struct {
	Symbol   string    // Ticker code (e.g. "فولاد")
	Interval string    // Time interval (e.g. "1day", "1week")
	Time     time.Time // Timestamp for the start of this candle period
	Open     float64   // Opening price
	High     float64   // Highest price during this period
	Low      float64   // Lowest price during this period
	Close    float64   // Closing price
	Volume   int64     // Trading volume
}

// Package entity defines the domain models for the quotes feature.
package entity

import "time"

// Quote is a live market-watch row for one symbol: the latest traded prices
// together with the volume breakdown between individual (retail) and legal
// (institutional) participants published by TSETMC.
type Quote struct {
	Symbol        string    `json:"symbol"`         // Ticker code (Persian, e.g. "فولاد")
	Name          string    `json:"name"`           // Company name
	Last          float64   `json:"last"`           // Last traded price
	Close         float64   `json:"close"`          // Closing (weighted average) price of the session
	PrevClose     float64   `json:"prev_close"`     // Previous session's closing price
	ChangePercent float64   `json:"change_percent"` // Percent change of the last price vs previous close
	Volume        int64     `json:"volume"`         // Traded volume of the session
	Value         float64   `json:"value"`          // Traded value of the session (rial)
	Trades        int64     `json:"trades"`         // Number of trades
	AvgVolume5D   float64   `json:"avg_volume_5d"`  // Average daily volume over the last five sessions
	Time          time.Time `json:"time"`           // Snapshot timestamp

	// Individual (retail) order-flow breakdown.
	IndividualBuyVolume  float64 `json:"individual_buy_volume"`
	IndividualBuyCount   int64   `json:"individual_buy_count"`
	IndividualSellVolume float64 `json:"individual_sell_volume"`
	IndividualSellCount  int64   `json:"individual_sell_count"`
}

// IndexQuote is a snapshot of a market index such as TEDPIX.
type IndexQuote struct {
	Name          string    `json:"name"`
	Value         float64   `json:"value"`
	Change        float64   `json:"change"`
	ChangePercent float64   `json:"change_percent"`
	Time          time.Time `json:"time"`
}

// MarketSummary aggregates a market-watch snapshot into headline figures.
type MarketSummary struct {
	TotalSymbols    int     `json:"total_symbols"`
	PositiveSymbols int     `json:"positive_symbols"`
	NegativeSymbols int     `json:"negative_symbols"`
	NeutralSymbols  int     `json:"neutral_symbols"`
	TotalVolume     int64   `json:"total_volume"`
	TotalValue      float64 `json:"total_value"`
	PositiveRatio   float64 `json:"positive_ratio"`
}

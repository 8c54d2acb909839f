// Package entity defines the domain models for the backtest feature.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trade is one fill produced by the engine. Profit is only set on sells
// and holds the realized result of the round trip, commissions included.
type Trade struct {
	Side     string          `json:"side"` // "buy" or "sell"
	Time     time.Time       `json:"time"`
	Price    decimal.Decimal `json:"price"`
	Quantity decimal.Decimal `json:"quantity"`
	Profit   decimal.Decimal `json:"profit"`
}

// EquityPoint is the portfolio value at one candle close.
type EquityPoint struct {
	Time   time.Time       `json:"time"`
	Equity decimal.Decimal `json:"equity"`
}

// Report is the outcome of one backtest run. An open position at the end
// of the series is marked to market in FinalEquity.
type Report struct {
	Symbol         string          `json:"symbol"`
	Interval       string          `json:"interval"`
	Strategy       string          `json:"strategy"`
	InitialCapital decimal.Decimal `json:"initial_capital"`
	FinalEquity    decimal.Decimal `json:"final_equity"`
	TotalReturnPct float64         `json:"total_return_pct"`
	MaxDrawdownPct float64         `json:"max_drawdown_pct"`
	WinRate        float64         `json:"win_rate"`
	TotalTrades    int             `json:"total_trades"`
	Trades         []Trade         `json:"trades"`
	EquityCurve    []EquityPoint   `json:"equity_curve"`
}

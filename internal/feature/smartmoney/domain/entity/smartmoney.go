// Package entity defines the domain models for the smartmoney feature.
package entity

// Conditions is the per-symbol breakdown of the four smart money checks.
type Conditions struct {
	Volume bool `json:"volume_condition"` // today's volume > 1.25x the 5-day average
	Flow   bool `json:"flow_condition"`   // average retail buy >= average retail sell
	Price  bool `json:"price_condition"`  // last price >= previous close
	Change bool `json:"change_condition"` // positive change percent
}

// Result is the smart money evaluation of one symbol.
type Result struct {
	Symbol        string     `json:"symbol"`
	Name          string     `json:"name,omitempty"`
	HasSmartMoney bool       `json:"has_smart_money"`
	Conditions    Conditions `json:"conditions"`

	Volume        int64   `json:"volume_today"`
	AvgVolume5D   float64 `json:"avg_volume_5d"`
	Last          float64 `json:"price_current"`
	PrevClose     float64 `json:"price_yesterday"`
	ChangePercent float64 `json:"change_percent"`
	AvgRetailBuy  float64 `json:"avg_retail_buy"`
	AvgRetailSell float64 `json:"avg_retail_sell"`
}

// ScanReport is the outcome of a full market scan.
type ScanReport struct {
	TotalSymbols     int      `json:"total_symbols"`
	SmartMoneyCount  int      `json:"smart_money_count"`
	HasAnySmartMoney bool     `json:"has_any_smart_money"`
	Matches          []Result `json:"symbols_with_smart_money"`
}

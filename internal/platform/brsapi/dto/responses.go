// Package dto defines data transfer objects for BrsApi responses.
//
// BrsApi serializes every numeric field as a string and may use Persian
// digits, so all values are kept as strings here and parsed by the client.
package dto

// SymbolRow is one row of the AllSymbols, MarketWatch, SymbolInfo and
// Search endpoints. Endpoints that do not publish order-flow data simply
// leave those fields empty.
type SymbolRow struct {
	Symbol        string `json:"symbol"`
	Name          string `json:"name"`
	Market        string `json:"market,omitempty"`
	Industry      string `json:"industry,omitempty"`
	LastPrice     string `json:"last_price,omitempty"`
	ClosePrice    string `json:"close_price,omitempty"`
	PreviousClose string `json:"previous_close,omitempty"`
	ChangePercent string `json:"change_percent,omitempty"`
	Volume        string `json:"volume,omitempty"`
	Value         string `json:"value,omitempty"`
	Trades        string `json:"trades,omitempty"`
	AvgVolume5D   string `json:"avg_volume_5d,omitempty"`
	Time          string `json:"time,omitempty"`

	IndividualBuyVolume  string `json:"individual_buy_volume,omitempty"`
	IndividualBuyCount   string `json:"individual_buy_count,omitempty"`
	IndividualSellVolume string `json:"individual_sell_volume,omitempty"`
	IndividualSellCount  string `json:"individual_sell_count,omitempty"`
}

// HistoryRow is one daily record of the History endpoint.
type HistoryRow struct {
	Date   string `json:"date"`
	Open   string `json:"open"`
	High   string `json:"high"`
	Low    string `json:"low"`
	Close  string `json:"close"`
	Volume string `json:"volume"`
}

// IndexResponse is the body of the Index endpoint (e.g. TEDPIX).
type IndexResponse struct {
	Name          string `json:"name"`
	Value         string `json:"value"`
	Change        string `json:"change"`
	ChangePercent string `json:"change_percent"`
	Time          string `json:"time"`
}

// ErrorResponse is the error envelope some BrsApi endpoints return with
// HTTP 200, so the client has to inspect the body as well as the status.
type ErrorResponse struct {
	Status  string `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
}

// Package api defines the shared request/response types of the HTTP API.
package api

// ErrorResponse is the standard error body returned by all endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is a generic success body.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse carries the token pair issued on login and refresh.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

// CandleResponse is the wire representation of a single candle.
type CandleResponse struct {
	Time   string  `json:"time"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}

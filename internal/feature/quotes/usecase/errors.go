// Package usecase implements the business logic for market quote operations.
package usecase

import "errors"

var (
	// ErrSymbolNotFound is returned when the provider has no data for a symbol.
	ErrSymbolNotFound = errors.New("symbol not found")

	// ErrInvalidSymbol is returned when a symbol code is empty or malformed.
	ErrInvalidSymbol = errors.New("invalid symbol")
)

package usecase

import "errors"

var (
	// ErrUnknownStrategy is returned for an unsupported strategy name.
	ErrUnknownStrategy = errors.New("unknown strategy")

	// ErrNoData is returned when no stored candles cover the request.
	ErrNoData = errors.New("no candle data for symbol")
)

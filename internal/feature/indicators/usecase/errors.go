package usecase

import "errors"

var (
	// ErrUnknownIndicator is returned for an unsupported indicator type.
	ErrUnknownIndicator = errors.New("unknown indicator")

	// ErrInsufficientData is returned when the stored history is too short
	// for the requested period.
	ErrInsufficientData = errors.New("insufficient data for indicator")
)

// Package usecase implements the business logic for symbol directory operations.
package usecase

import "errors"

// ErrEmptyQuery is returned when a symbol search is attempted with no query.
var ErrEmptyQuery = errors.New("search query is empty")

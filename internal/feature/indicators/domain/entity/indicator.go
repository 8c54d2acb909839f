// Package entity defines the domain models for the indicators feature.
package entity

// Point is one value of an indicator line at a point in time.
type Point struct {
	Time  string  `json:"time"`
	Value float64 `json:"value"`
}

// Series is a computed indicator for a symbol. Lines maps line names
// (e.g. "sma", "upper", "signal") to their points, oldest first.
type Series struct {
	Symbol    string             `json:"symbol"`
	Interval  string             `json:"interval"`
	Indicator string             `json:"indicator"`
	Period    int                `json:"period"`
	Lines     map[string][]Point `json:"lines"`
}

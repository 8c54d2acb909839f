// Package persian provides helpers for normalizing Persian market data text.
package persian

import (
	"strconv"
	"strings"
)

// digitMap converts Persian and Arabic-Indic digits to their ASCII form.
var digitMap = map[rune]rune{
	'۰': '0', '۱': '1', '۲': '2', '۳': '3', '۴': '4',
	'۵': '5', '۶': '6', '۷': '7', '۸': '8', '۹': '9',
	'٠': '0', '١': '1', '٢': '2', '٣': '3', '٤': '4',
	'٥': '5', '٦': '6', '٧': '7', '٨': '8', '٩': '9',
}

// NormalizeDigits replaces Persian and Arabic-Indic digits with ASCII digits
// and collapses surrounding whitespace.
func NormalizeDigits(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if d, ok := digitMap[r]; ok {
			return d
		}
		return r
	}, s)
}

// NormalizeSymbol trims a symbol code and unifies the Arabic forms of ي/ك
// with their Persian equivalents so lookups match regardless of keyboard layout.
func NormalizeSymbol(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "ي", "ی")
	s = strings.ReplaceAll(s, "ك", "ک")
	return NormalizeDigits(s)
}

// ParseNumber parses a numeric string that may contain Persian digits and
// thousands separators. The zero value is returned for empty input.
func ParseNumber(s string) (float64, error) {
	s = NormalizeDigits(s)
	s = strings.ReplaceAll(s, ",", "")
	if s == "" || s == "-" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

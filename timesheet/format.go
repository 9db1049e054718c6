package timesheet

import (
	"strconv"
	"strings"
)

// FormatHours renders an hour value with trailing fractional zeros
// trimmed: 8 -> "8", 7.5 -> "7.5", 8.25 -> "8.25".
func FormatHours(value float64) string {
	text := strconv.FormatFloat(value, 'f', 2, 64)
	text = strings.TrimRight(text, "0")
	return strings.TrimSuffix(text, ".")
}

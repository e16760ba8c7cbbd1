package utils

import (
	"regexp"
	"strconv"
)

var priceDigits = regexp.MustCompile(`[\d.]+`)

// ParsePrice extracts the numeric value from a display price string.
// Catalog prices are display strings ("38", "39.20", sometimes with
// currency noise around them); anything that does not parse is worth 0.
func ParsePrice(display string) float64 {
	match := priceDigits.FindString(display)
	if match == "" {
		return 0
	}
	value, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	return value
}

// FormatPrice renders a computed total back into the display form used
// across the tray ("10", "39.2").
func FormatPrice(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

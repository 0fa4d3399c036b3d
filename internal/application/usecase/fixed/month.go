// Package fixed contains recurring-template and monthly-snapshot use cases.
package fixed

import "time"

// Months are 0-based everywhere in this package (0 = January .. 11 =
// December), matching the convention the stored snapshot rows use.

// IsCurrentMonth reports whether (year, month) is the calendar month
// containing now.
func IsCurrentMonth(year, month int, now time.Time) bool {
	return year == now.Year() && month == int(now.Month())-1
}

// PreviousMonth returns the calendar month before the one containing
// now. January maps to December of the prior year.
func PreviousMonth(now time.Time) (year, month int) {
	if now.Month() == time.January {
		return now.Year() - 1, 11
	}
	return now.Year(), int(now.Month()) - 2
}

// isValidMonth reports whether month is within 0..11.
func isValidMonth(month int) bool {
	return month >= 0 && month <= 11
}

// Package util holds small formatting helpers shared across layers.
package util

import "strconv"

var byteUnits = [...]string{"KB", "MB", "GB", "TB"}

// FormatBytes renders n with binary units, e.g. 10485760 as "10.0 MB".
func FormatBytes(n int64) string {
	if n < 1024 {
		return strconv.FormatInt(n, 10) + " B"
	}

	value := float64(n) / 1024
	unit := 0
	for value >= 1024 && unit < len(byteUnits)-1 {
		value /= 1024
		unit++
	}

	return strconv.FormatFloat(value, 'f', 1, 64) + " " + byteUnits[unit]
}

// Package units converts raw byte and ratio values into the figures shown to
// the user. Conversions round exactly once; callers store the result and must
// not round again, so repeated renders of one collection are identical.
package units

import "math"

const (
	kb = 1024
	mb = 1024 * kb
	gb = 1024 * mb
)

// Round rounds v to the given number of decimal places.
func Round(v float64, decimals int) float64 {
	shift := math.Pow(10, float64(decimals))
	return math.Round(v*shift) / shift
}

// BytesToGB converts bytes to gigabytes with two decimal places.
func BytesToGB(b uint64) float64 {
	return Round(float64(b)/gb, 2)
}

// BytesToMB converts bytes to megabytes with one decimal place.
func BytesToMB(b uint64) float64 {
	return Round(float64(b)/mb, 1)
}

// KBToMB converts kilobytes to megabytes with one decimal place.
func KBToMB(kilobytes float64) float64 {
	return Round(kilobytes/kb, 1)
}

// KBToGB converts kilobytes to gigabytes with two decimal places.
func KBToGB(kilobytes float64) float64 {
	return Round(kilobytes/mb, 2)
}

// Percent rounds a percentage to one decimal place.
func Percent(v float64) float64 {
	return Round(v, 1)
}

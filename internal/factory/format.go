package factory

import (
	"math"
	"strconv"
)

// FormatFuel renders a fuel amount the way the readout shows it: rounded to
// tenths, whole amounts without a fraction.
func FormatFuel(f float64) string {
	r := math.Round(f*10) / 10
	if r == 0 {
		r = 0 // no "-0"
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

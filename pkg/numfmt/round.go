// Package numfmt rounds numeric cell values for display.
package numfmt

import (
	"math"
	"strconv"
	"strings"
)

// DefaultDecimals is the number of fractional digits used when none is given.
const DefaultDecimals = 2

// Round rounds value to decimals fractional digits.
//
// The scaling is done on the decimal exponent of value's shortest textual
// representation, so 1.005 rounds to 1.01 rather than 1.00. Halves round
// toward positive infinity. A decimals of 0 is treated as DefaultDecimals;
// negative decimals round to tens, hundreds, and so on.
func Round(value float64, decimals int) float64 {
	if decimals == 0 {
		decimals = DefaultDecimals
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return value
	}
	scaled := shiftExponent(value, decimals)
	if math.IsInf(scaled, 0) {
		// Too large to carry the requested fraction; there is nothing to round.
		return value
	}
	return shiftExponent(roundHalfUp(scaled), -decimals)
}

// shiftExponent returns v * 10^exp computed by rewriting the exponent of v's
// decimal form, which avoids the representation error of a multiplication.
func shiftExponent(v float64, exp int) float64 {
	if math.IsInf(v, 0) {
		return v
	}
	mantissa, e, _ := strings.Cut(strconv.FormatFloat(v, 'e', -1, 64), "e")
	n, err := strconv.Atoi(e)
	if err != nil {
		return v
	}
	// ParseFloat reports ErrRange on overflow but still returns ±Inf or 0.
	out, _ := strconv.ParseFloat(mantissa+"e"+strconv.Itoa(n+exp), 64)
	return out
}

func roundHalfUp(v float64) float64 {
	f := math.Floor(v)
	if v-f >= 0.5 {
		f++
	}
	return f
}

package solver

import (
	"math"
	"strconv"
)

// FormatFloat renders v with the given number of significant digits;
// digits <= 0 means the shortest exact representation.
func FormatFloat(v float64, digits int) string {
	if digits <= 0 {
		digits = -1
	}
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(v, 'g', digits, 64)
}

// Format renders the root value, marking the imaginary part with "*i".
func (r Root) Format(digits int) string {
	re, im := real(r.Value), imag(r.Value)
	switch {
	case im == 0:
		return FormatFloat(re, digits)
	case re == 0:
		return FormatFloat(im, digits) + "*i"
	case im < 0:
		return FormatFloat(re, digits) + " - " + FormatFloat(math.Abs(im), digits) + "*i"
	default:
		return FormatFloat(re, digits) + " + " + FormatFloat(im, digits) + "*i"
	}
}

func (r Root) String() string { return r.Format(-1) }

package plural

import (
	"math"
	"strconv"
	"strings"
)

// maxFractionDigits caps the visible fraction digits taken into account.
const maxFractionDigits = 3

// Operands holds the CLDR numeric operands of a number.
type Operands struct {
	// N is the source value.
	N float64
	// I is the integer part, rounded half up.
	I int64
	// V is the number of visible fraction digits.
	V int
	// F is the visible fraction digits with trailing zeros.
	F int64
	// T is the visible fraction digits without trailing zeros.
	T int64
}

// NewOperands computes the operands of n. With precision 0 fraction digits are not
// visible (v = f = t = 0). A positive precision writes n with that many significant
// digits and counts up to three fraction digits, so 1.5 at precision 3 reads as 1.50.
func NewOperands(n float64, precision int) Operands {
	o := Operands{
		N: n,
		I: int64(math.Floor(n + 0.5)),
	}
	if precision > 0 {
		o.V = min(visibleDecimals(n, precision), maxFractionDigits)
	}
	base := math.Pow(10, float64(o.V))
	o.F = int64(math.Mod(math.Floor(n*base), base))
	o.T = o.F
	if o.T == 0 {
		return o
	}
	for o.T%10 == 0 {
		o.T /= 10
		o.V--
	}
	return o
}

// visibleDecimals counts the fraction digits of n written with precision significant
// digits, trailing zeros included.
func visibleDecimals(n float64, precision int) int {
	s := strconv.FormatFloat(n, 'e', precision-1, 64)
	idx := strings.LastIndexByte(s, 'e')
	if idx < 0 {
		return 0
	}
	exp, err := strconv.Atoi(s[idx+1:])
	if err != nil {
		return 0
	}
	return max(precision-1-exp, 0)
}

package risk

import (
	"math"
	"strconv"
)

// SignificantDigits is the precision every derived distance is rounded to
// before it is compared with zero or used as a divisor.
const SignificantDigits = 12

// minRelativeDistance is the smallest entry/stop gap, relative to the larger
// price, that survives normalization.
const minRelativeDistance = 1e-12

// Normalize rounds x to SignificantDigits significant digits so that
// representation noise such as 0.30000000000000004 or 1e-13 left over from a
// subtraction collapses to the value the decimal inputs describe.
func Normalize(x float64) float64 {
	if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	v, err := strconv.ParseFloat(strconv.FormatFloat(x, 'g', SignificantDigits, 64), 64)
	if err != nil {
		return x
	}
	return v
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func positive(x float64) bool {
	return finite(x) && x > 0
}

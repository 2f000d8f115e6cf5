// Package numeric provides small float comparison helpers shared by the
// table packages.
package numeric

import "math"

const defaultEpsilon = 1e-12

// NearlyEqual reports whether a and b are equal within eps, compared
// absolutely for small magnitudes and relatively otherwise.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

package surrogate

import "math"

// infinitesimal value to check float equality
const DefaultEpsilon = 1e-9

// RelativeError of a value with respect to a (non-zero) reference value.
func RelativeError(value, reference float64) float64 {
	return (value - reference) / reference
}

// A variable x is relatively within a given tolerance from a value
func WithinTolerance(x, value, tolerance float64) bool {
	if x == value {
		return true
	}
	if value == 0 || tolerance < 0 {
		return false
	}
	return math.Abs(RelativeError(x, value)) <= tolerance
}

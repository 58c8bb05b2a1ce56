// Package angles provides the circular arithmetic used by every longitude
// and aspect computation in aspectra. All angles are in degrees. Functions
// here are pure and safe for vectorized or point-wise use; both yield
// identical results.
package angles

import "math"

// Wrap folds any angle into the range [0, 360). Negative inputs wrap
// upward, so Wrap(-30) == 330.
func Wrap(x float64) float64 {
	x = math.Mod(x, 360)
	if x < 0 {
		x += 360
	}
	return x
}

// SignedDelta returns the shortest signed angular path from b to a on the
// circle, in the range (-180, 180]. This avoids the false "large distance"
// that plain subtraction reports near the 0/360 boundary.
func SignedDelta(a, b float64) float64 {
	d := Wrap(a - b)
	if d > 180 {
		d -= 360
	}
	return d
}

// NearestDistance returns the unsigned distance (0..180) from delta to the
// closest angle in targets. For antipodal pairs such as trine's {120, 240}
// the nearer of the two wins; distances are never averaged or summed.
//
// Precondition: targets must be non-empty. Callers own this invariant; it
// is not checked at runtime.
func NearestDistance(delta float64, targets []float64) float64 {
	best := math.MaxFloat64
	for _, t := range targets {
		if d := math.Abs(SignedDelta(delta, t)); d < best {
			best = d
		}
	}
	return best
}

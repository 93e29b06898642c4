// Package interp provides the scalar interpolation helpers shared by the
// resampler, the trajectory builders and the sinewave renderer.
package interp

import "math"

// Lerp returns the linear interpolation between a and b at t in [0, 1].
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// CosineEase returns the cosine-eased interpolation between a and b at
// t in [0, 1]. The curve has zero slope at both endpoints.
func CosineEase(a, b, t float64) float64 {
	eased := 0.5 - 0.5*math.Cos(t*math.Pi)
	return a + (b-a)*eased
}

// Clamp limits x to the range [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

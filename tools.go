package sketch

// Lerp interpolates linearly between a and b.
func Lerp(a, b, t float64) float64 {
	return (1-t)*a + t*b
}

// Map re-maps x from the range [a, b] to the range [c, d].
// The result is not clamped.
func Map(x, a, b, c, d float64) float64 {
	return (x-a)/(b-a)*(d-c) + c
}

package utils

import (
	"math"
)

// Clamp restricts value to [min, max]. If the range is empty, min wins.
func Clamp(value, min, max float64) float64 {
	if value > max {
		value = max
	}
	if value < min {
		value = min
	}
	return value
}

// Sign returns -1 for negative values and 1 otherwise.
func Sign(value float64) float64 {
	if value < 0 {
		return -1
	}
	return 1
}

// MinAbsIndex returns the index of the value with the smallest magnitude.
// Ties resolve to the lowest index, so callers control preference through ordering.
func MinAbsIndex(values ...float64) int {
	if len(values) == 0 {
		panic("MinAbsIndex needs at least one value")
	}
	best := 0
	for i := 1; i < len(values); i++ {
		if math.Abs(values[i]) < math.Abs(values[best]) {
			best = i
		}
	}
	return best
}

// Lerp interpolates between a and b; t=0 gives a, t=1 gives b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// FlipY converts a y-up world coordinate into a y-down screen coordinate.
func FlipY(y, height float64) float64 {
	return height - y
}

// Scale maps a world length onto a target length, used when the screen is not world-sized.
func Scale(value, world, target float64) float64 {
	if world == 0 {
		return 0
	}
	return value * target / world
}

package vmath

import "math"

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Approach moves current toward target by the frame-rate independent exponential factor 1-e^(-rate*dt)
func Approach(current, target, rate, dt float64) float64 {
	if dt <= 0 {
		return current
	}
	return current + (target-current)*(1-math.Exp(-rate*dt))
}

// Blend moves current toward target by a fixed fraction
func Blend(current, target, coeff float64) float64 {
	return current + (target-current)*coeff
}

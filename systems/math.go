package systems

import "math"

// normalizeAngle wraps an angle to [-pi, pi].
func normalizeAngle(a float32) float32 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// clampFloat clamps v to [min, max].
func clampFloat(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// clamp01 clamps v to [0, 1].
func clamp01(v float32) float32 {
	return clampFloat(v, 0, 1)
}

// absf returns the absolute value of v.
func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// Package gamemath holds small numeric helpers shared by the rules engine.
package gamemath

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// ClampInt clamps v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// HorizontalIntent maps two held directions to -1, 0 or +1. Holding both
// cancels out.
func HorizontalIntent(left, right bool) int {
	switch {
	case right && !left:
		return 1
	case left && !right:
		return -1
	}
	return 0
}

// StepToward moves pos by step in direction dir (-1, 0 or +1) and stops at
// limit when one is given. Only the bound in the direction of travel applies.
func StepToward(pos, step float64, dir int, limit *float64) float64 {
	next := pos + float64(dir)*step
	if limit == nil || dir == 0 {
		return next
	}
	if dir > 0 && next > *limit {
		return *limit
	}
	if dir < 0 && next < *limit {
		return *limit
	}
	return next
}

package audio

import "math"

// volumeToPower maps a 0.0-1.0 linear volume to beep's base-2 exponent.
// 1.0 is unity gain; values at or below 0.01 are treated as silent.
func volumeToPower(vol float64) float64 {
	if vol <= 0.01 {
		return -10 // Silent
	}
	return math.Log2(vol)
}

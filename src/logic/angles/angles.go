// Package angles holds the degree arithmetic shared by drawing, hit-testing
// and animation planning. Wheel-space angles are degrees with 0 at twelve
// o'clock, growing clockwise, and are never stored normalized.
package angles

import "math"

// CanvasOffset converts wheel-space to canvas arc space, where 0 is three o'clock.
const CanvasOffset float64 = 90

func DegToRad(d float64) float64 {
	return d * math.Pi / 180
}

func RadToDeg(r float64) float64 {
	return r * 180 / math.Pi
}

// PercentToDegrees maps (0, 100] onto the circle. Anything else is 0.
func PercentToDegrees(percent float64) float64 {
	if percent > 0 && percent <= 100 {
		return percent / 100 * 360
	}
	return 0
}

// DegreesToPercent is the inverse of PercentToDegrees for (0, 360].
func DegreesToPercent(degrees float64) float64 {
	if degrees > 0 && degrees <= 360 {
		return degrees / 360 * 100
	}
	return 0
}

// Normalize folds any finite rotation into [0, 360).
func Normalize(angle float64) float64 {
	var n float64
	if angle >= 0 {
		n = angle - 360*math.Floor(angle/360)
	} else {
		n = angle - 360*math.Ceil(angle/360) + 360
	}
	// float rounding on tiny negatives lands exactly on 360
	if n >= 360 || n < 0 {
		return 0
	}
	return n
}

// ToCanvasRad turns a wheel-space angle plus rotation into a canvas arc angle.
func ToCanvasRad(angle, rotation float64) float64 {
	return DegToRad(angle + rotation - CanvasOffset)
}

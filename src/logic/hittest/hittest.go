package hittest

import (
	"math"

	"spinwheel/src/base"
	"spinwheel/src/logic/angles"
)

// State is the live wheel geometry a lookup needs. Center and radii are in
// unscaled units; Scale multiplies them, never the angles.
type State struct {
	CenterX     float64
	CenterY     float64
	InnerRadius float64
	OuterRadius float64
	Scale       float64
	Rotation    float64
	Spans       []base.Span
}

func (s State) scale() float64 {
	if s.Scale == 0 {
		return 1
	}
	return s.Scale
}

// Bearing is the screen-space angle of (x, y) seen from the center, 0 at
// twelve o'clock and clockwise, together with the distance from the center.
func Bearing(x, y, centerX, centerY float64) (angle, distance float64) {
	var adjacent, opposite float64
	right := x > centerX
	bottom := y > centerY
	if right {
		adjacent = x - centerX
	} else {
		adjacent = centerX - x
	}
	if bottom {
		opposite = y - centerY
	} else {
		opposite = centerY - y
	}

	r := angles.RadToDeg(math.Atan(opposite / adjacent))
	switch {
	case !bottom && right:
		angle = 90 - r
	case bottom && right:
		angle = r + 90
	case bottom && !right:
		angle = 90 - r + 180
	default:
		angle = r + 270
	}
	return angle, math.Hypot(opposite, adjacent)
}

// Locate returns the index of the segment under canvas point (x, y). Points
// off the ring or at an undefined bearing find nothing. Segment bounds are
// inclusive so a point on a shared edge belongs to the earlier segment.
func Locate(x, y float64, st State) (int, bool) {
	sc := st.scale()
	cx, cy := st.CenterX*sc, st.CenterY*sc
	inner, outer := st.InnerRadius*sc, st.OuterRadius*sc

	bearing, dist := Bearing(x, y, cx, cy)
	if math.IsNaN(bearing) || dist < inner || dist > outer {
		return -1, false
	}

	local := bearing
	if st.Rotation != 0 {
		local = bearing - angles.Normalize(st.Rotation)
		if local < 0 {
			local = 360 - math.Abs(local)
		}
	}
	return findSpan(local, st.Spans)
}

// Indicated returns the segment that sits under a fixed pointer angle.
func Indicated(pointerAngle, rotation float64, spans []base.Span) (int, bool) {
	return findSpan(relative(pointerAngle, rotation), spans)
}

// CurrentPin returns the pin at the pointer. Clockwise spins report the pin that
// has just gone past rather than the one arriving.
func CurrentPin(pointerAngle, rotation float64, pinCount int, clockwise bool) int {
	if pinCount <= 0 {
		return 0
	}
	rel := relative(pointerAngle, rotation)
	spacing := 360 / float64(pinCount)

	current := 0
	total := 0.0
	for i := 0; i < pinCount; i++ {
		if rel >= total && rel <= total+spacing {
			current = i
			break
		}
		total += spacing
	}
	if clockwise {
		current++
		if current >= pinCount {
			current = 0
		}
	}
	return current
}

func relative(pointerAngle, rotation float64) float64 {
	return angles.Normalize(pointerAngle - angles.Normalize(rotation))
}

func findSpan(angle float64, spans []base.Span) (int, bool) {
	for i, s := range spans {
		if s.Contains(angle) {
			return i, true
		}
	}
	return -1, false
}

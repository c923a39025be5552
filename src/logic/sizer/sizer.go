package sizer

import "spinwheel/src/base"

// ComputeSpans lays segments clockwise from 0 in array order. Explicit sizes are
// kept as given; the arc they leave is shared evenly by the nil entries. Sizes
// summing past 360 are not clamped, the shared size just goes to zero or below.
func ComputeSpans(sizes []*float64) []base.Span {
	used := 0.0
	unsized := 0
	for _, s := range sizes {
		if s != nil {
			used += *s
		} else {
			unsized++
		}
	}

	each := 0.0
	if unsized > 0 {
		each = (360 - used) / float64(unsized)
	}

	spans := make([]base.Span, len(sizes))
	current := 0.0
	for i, s := range sizes {
		spans[i].Start = current
		if s != nil {
			current += *s
		} else {
			current += each
		}
		spans[i].End = current
	}
	return spans
}

// Size is a convenience for building explicit size entries.
func Size(v float64) *float64 {
	return &v
}

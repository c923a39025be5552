package hittest

import (
	"math"
	"testing"

	"spinwheel/src/base"
	"spinwheel/src/logic/angles"
	"spinwheel/src/logic/sizer"

	"github.com/stretchr/testify/assert"
)

// pointAt places a canvas point at a screen bearing and distance from the center.
func pointAt(cx, cy, bearing, dist float64) (float64, float64) {
	rad := angles.DegToRad(bearing)
	return cx + dist*math.Sin(rad), cy - dist*math.Cos(rad)
}

func TestBearingQuadrants(t *testing.T) {
	for _, b := range []float64{10, 30, 89, 120, 179, 210, 260, 300, 350} {
		x, y := pointAt(200, 200, b, 100)
		got, dist := Bearing(x, y, 200, 200)
		assert.InDelta(t, b, got, 1e-9, "bearing %v", b)
		assert.InDelta(t, 100, dist, 1e-9)
	}
}

func TestLocateRoundTrip(t *testing.T) {
	spans := sizer.ComputeSpans([]*float64{nil, sizer.Size(40), nil, nil, sizer.Size(100)})
	for _, rotation := range []float64{0, 90, 359, 720, -45} {
		st := State{CenterX: 250, CenterY: 250, InnerRadius: 40, OuterRadius: 200, Scale: 1, Rotation: rotation, Spans: spans}
		for i, sp := range spans {
			bearing := sp.Mid() + angles.Normalize(rotation)
			x, y := pointAt(250, 250, bearing, 120)
			got, ok := Locate(x, y, st)
			assert.True(t, ok, "rotation %v segment %d", rotation, i)
			assert.Equal(t, i, got, "rotation %v", rotation)
		}
	}
}

func TestLocateRespectsRing(t *testing.T) {
	spans := sizer.ComputeSpans([]*float64{nil, nil})
	st := State{CenterX: 100, CenterY: 100, InnerRadius: 30, OuterRadius: 90, Spans: spans}

	x, y := pointAt(100, 100, 45, 20)
	_, ok := Locate(x, y, st)
	assert.False(t, ok, "inside the hole")

	x, y = pointAt(100, 100, 45, 95)
	_, ok = Locate(x, y, st)
	assert.False(t, ok, "outside the wheel")

	x, y = pointAt(100, 100, 270, 60)
	idx, ok := Locate(x, y, st)
	assert.True(t, ok)
	assert.Equal(t, 1, idx)
}

func TestLocateScaled(t *testing.T) {
	spans := sizer.ComputeSpans([]*float64{nil, nil, nil, nil})
	st := State{CenterX: 100, CenterY: 100, OuterRadius: 100, Scale: 0.5, Spans: spans}
	// scaled center is (50, 50), radius 50
	x, y := pointAt(50, 50, 135, 40)
	idx, ok := Locate(x, y, st)
	assert.True(t, ok)
	assert.Equal(t, 1, idx)

	x, y = pointAt(50, 50, 135, 60)
	_, ok = Locate(x, y, st)
	assert.False(t, ok)
}

func TestLocateSharedEdgePrefersEarlier(t *testing.T) {
	spans := []base.Span{{0, 90}, {90, 180}, {180, 270}, {270, 360}}
	idx, ok := Locate(300, 200, State{CenterX: 200, CenterY: 200, OuterRadius: 150, Spans: spans})
	assert.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestIndicated(t *testing.T) {
	spans := sizer.ComputeSpans([]*float64{nil, nil, nil, nil})
	idx, ok := Indicated(0, 0, spans)
	assert.True(t, ok)
	assert.Equal(t, 0, idx)

	// rotating the wheel 100 clockwise brings the third quarter under a top pointer
	idx, _ = Indicated(0, 100, spans)
	assert.Equal(t, 2, idx)

	// 5 spins plus 360-45 lands the 45 degree mark under the pointer
	idx, _ = Indicated(0, 5*360+315, spans)
	assert.Equal(t, 0, idx)

	idx, _ = Indicated(0, -100, spans)
	assert.Equal(t, 1, idx)
}

func TestCurrentPin(t *testing.T) {
	assert.Equal(t, 0, CurrentPin(0, 0, 0, true))
	assert.Equal(t, 2, CurrentPin(0, -25, 36, false))
	assert.Equal(t, 3, CurrentPin(0, -25, 36, true))
	// the last bucket wraps to the first pin when spinning clockwise
	assert.Equal(t, 0, CurrentPin(0, 5, 36, true))
}

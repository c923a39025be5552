package angles

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{90, 90},
		{360, 0},
		{720, 0},
		{725.5, 5.5},
		{-45, 315},
		{-360, 0},
		{-725, 355},
		{359.999, 359.999},
	}
	for _, c := range cases {
		assert.InDelta(t, c.want, Normalize(c.in), 1e-9, "normalize(%v)", c.in)
	}
}

func TestNormalizeIdempotentAndInRange(t *testing.T) {
	for x := -5000.0; x <= 5000; x += 13.37 {
		n := Normalize(x)
		assert.GreaterOrEqual(t, n, 0.0)
		assert.Less(t, n, 360.0)
		assert.Equal(t, n, Normalize(n))
	}
	assert.Less(t, Normalize(-1e-20), 360.0)
}

func TestConversions(t *testing.T) {
	assert.InDelta(t, math.Pi, DegToRad(180), 1e-12)
	assert.InDelta(t, 90, RadToDeg(math.Pi/2), 1e-12)
	assert.InDelta(t, -math.Pi/2, ToCanvasRad(0, 0), 1e-12)
	assert.InDelta(t, 0, ToCanvasRad(45, 45), 1e-12)

	assert.Equal(t, 90.0, PercentToDegrees(25))
	assert.Equal(t, 0.0, PercentToDegrees(0))
	assert.Equal(t, 0.0, PercentToDegrees(120))
	assert.Equal(t, 50.0, DegreesToPercent(180))
}

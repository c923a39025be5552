package tween

import (
	"fmt"
	"math"
	"strings"

	"spinwheel/src/base"
)

// Easing maps linear progress in [0,1] to eased progress.
type Easing func(t float64) float64

// DefaultEase is used when no easing id is given.
const DefaultEase = "Power1.easeOut"

// powers maps the GSAP family names onto polynomial exponents.
var powers = map[string]float64{
	"power0": 1,
	"power1": 2, "quad": 2,
	"power2": 3, "cubic": 3,
	"power3": 4, "quart": 4,
	"power4": 5, "quint": 5, "strong": 5,
}

// Ease resolves a GSAP style id such as "Power3.easeOut", "Linear.easeNone"
// or the shorter "power2.inOut". A family without a kind eases out.
func Ease(id string) (Easing, error) {
	if strings.TrimSpace(id) == "" {
		id = DefaultEase
	}
	family, kind := splitID(id)

	if family == "linear" || family == "none" || family == "power0" {
		return linear, nil
	}
	if exp, ok := powers[family]; ok {
		return byKind(kind, powIn(exp))
	}
	switch family {
	case "sine":
		return byKind(kind, sineIn)
	case "expo":
		return byKind(kind, expoIn)
	case "back":
		return byKind(kind, backIn)
	case "bounce":
		return byKind(kind, bounceIn)
	}
	return nil, fmt.Errorf("%w: %q", base.ErrUnknownEasing, id)
}

func splitID(id string) (family, kind string) {
	s := strings.ToLower(strings.TrimSpace(id))
	family, kind, _ = strings.Cut(s, ".")
	kind = strings.TrimPrefix(kind, "ease")
	if kind == "" {
		kind = "out"
	}
	return family, kind
}

func byKind(kind string, in Easing) (Easing, error) {
	switch kind {
	case "in":
		return in, nil
	case "out":
		return func(t float64) float64 { return 1 - in(1-t) }, nil
	case "inout":
		return func(t float64) float64 {
			if t < 0.5 {
				return in(t*2) / 2
			}
			return 1 - in((1-t)*2)/2
		}, nil
	}
	return nil, fmt.Errorf("%w: kind %q", base.ErrUnknownEasing, kind)
}

func linear(t float64) float64 { return t }

func powIn(exp float64) Easing {
	return func(t float64) float64 { return math.Pow(t, exp) }
}

func sineIn(t float64) float64 {
	return 1 - math.Cos(t*math.Pi/2)
}

func expoIn(t float64) float64 {
	if t == 0 {
		return 0
	}
	return math.Pow(2, 10*(t-1))
}

func backIn(t float64) float64 {
	const s = 1.70158
	return t * t * ((s+1)*t - s)
}

func bounceIn(t float64) float64 {
	return 1 - bounceOut(1-t)
}

func bounceOut(t float64) float64 {
	const n, d = 7.5625, 2.75
	switch {
	case t < 1/d:
		return n * t * t
	case t < 2/d:
		t -= 1.5 / d
		return n*t*t + 0.75
	case t < 2.5/d:
		t -= 2.25 / d
		return n*t*t + 0.9375
	default:
		t -= 2.625 / d
		return n*t*t + 0.984375
	}
}

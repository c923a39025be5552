package planner

import (
	"fmt"
	"math"
	"math/rand/v2"

	"spinwheel/src/base"
	"spinwheel/src/logic/angles"
)

const (
	DefaultSpins = 5

	EaseLinear       = "Linear.easeNone"
	EaseDecelerate   = "Power3.easeOut"
	EaseAccelDecel   = "Power2.easeInOut"
	RepeatForever    = -1
	randomStopBucket = 359
)

// Intent is the declarative animation request. Nil fields take the per-kind
// defaults; Custom intents must carry everything themselves. A zero Type is
// SpinOngoing and a zero Direction is Clockwise.
type Intent struct {
	Type          base.AnimationType
	Direction     base.SpinDirection
	Spins         *float64
	StopAngle     *float64
	Repeat        *int
	Yoyo          *bool
	Easing        string
	PropertyName  string  // custom only
	PropertyValue float64 // custom only: the full delta
}

// Plan is what the tween driver receives: animate PropertyName from its
// current value (From) to To.
type Plan struct {
	PropertyName string
	From         float64
	To           float64
	Delta        float64
	Repeat       int
	Yoyo         bool
	Easing       string
	// ResolvedStop is the internal stop term, 360 minus the user-facing angle.
	ResolvedStop float64
}

type Planner struct {
	// Rand yields [0, 1). Nil uses math/rand/v2.
	Rand func() float64
}

func New() *Planner {
	return &Planner{}
}

func (p *Planner) random() float64 {
	if p.Rand != nil {
		return p.Rand()
	}
	return rand.Float64()
}

// Plan turns an intent into concrete tween values. current is the live value of
// the animated property. For stop kinds the target is laid onto the full turn
// at or below current, so repeated spins keep a monotonic rotation history and
// still land on the requested angle.
func (p *Planner) Plan(in Intent, pointerAngle, current float64) (Plan, error) {
	dir := in.Direction
	if dir == 0 {
		dir = base.Clockwise
	}
	if dir != base.Clockwise && dir != base.AntiClockwise {
		return Plan{}, fmt.Errorf("%w: %d", base.ErrUnknownSpinDirection, dir)
	}

	typ := in.Type
	if typ == 0 {
		typ = base.SpinOngoing
	}

	plan := Plan{PropertyName: base.PropertyRotationAngle, From: current, Easing: in.Easing}
	spins := float64(DefaultSpins)
	if in.Spins != nil {
		spins = *in.Spins
	}

	switch typ {
	case base.SpinOngoing:
		plan.Repeat = intOr(in.Repeat, RepeatForever)
		plan.Yoyo = boolOr(in.Yoyo, false)
		plan.Easing = strOr(in.Easing, EaseLinear)
		plan.Delta = spins * 360
		if dir == base.AntiClockwise {
			plan.Delta = -plan.Delta
		}
		plan.To = current + plan.Delta

	case base.SpinToStop:
		plan.Repeat = intOr(in.Repeat, 0)
		plan.Yoyo = boolOr(in.Yoyo, false)
		plan.Easing = strOr(in.Easing, EaseDecelerate)
		if in.StopAngle == nil {
			plan.ResolvedStop = math.Floor(p.random() * randomStopBucket)
		} else {
			plan.ResolvedStop = 360 - *in.StopAngle + pointerAngle
		}
		plan.Delta = stopDelta(spins, plan.ResolvedStop, dir)
		plan.To = turnBase(current) + plan.Delta

	case base.SpinAndBack:
		plan.Repeat = intOr(in.Repeat, 1)
		plan.Yoyo = true
		plan.Easing = strOr(in.Easing, EaseAccelDecel)
		if in.StopAngle != nil {
			plan.ResolvedStop = 360 - *in.StopAngle
		}
		plan.Delta = stopDelta(spins, plan.ResolvedStop, dir)
		plan.To = turnBase(current) + plan.Delta

	case base.Custom:
		if in.PropertyName != "" {
			plan.PropertyName = in.PropertyName
		}
		plan.Repeat = intOr(in.Repeat, 0)
		plan.Yoyo = boolOr(in.Yoyo, false)
		plan.Easing = strOr(in.Easing, EaseLinear)
		plan.Delta = in.PropertyValue
		plan.To = current + plan.Delta

	default:
		return Plan{}, fmt.Errorf("%w: %d", base.ErrUnknownAnimationType, in.Type)
	}
	return plan, nil
}

func stopDelta(spins, stop float64, dir base.SpinDirection) float64 {
	d := spins * 360
	if dir == base.AntiClockwise {
		return -d - (360 - stop)
	}
	return d + stop
}

func turnBase(current float64) float64 {
	return current - angles.Normalize(current)
}

func intOr(v *int, def int) int {
	if v != nil {
		return *v
	}
	return def
}

func boolOr(v *bool, def bool) bool {
	if v != nil {
		return *v
	}
	return def
}

func strOr(v string, def string) string {
	if v != "" {
		return v
	}
	return def
}

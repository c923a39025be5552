package tween

import (
	"fmt"

	"spinwheel/src/logx"
)

// RepeatForever keeps a tween cycling until it is killed.
const RepeatForever = -1

// Target is anything with numeric properties a tween can drive. The tween
// reads the start value once and afterwards only pushes values in.
type Target interface {
	Property(name string) (float64, error)
	SetProperty(name string, value float64) error
}

// Props describes one tween: animate Name to To.
type Props struct {
	Name       string
	To         float64
	Repeat     int
	Yoyo       bool
	Ease       string
	OnUpdate   func()
	OnComplete func()
}

// Control is what callers keep of a running tween.
type Control interface {
	Pause()
	Play()
	Kill()
	Active() bool
	Paused() bool
}

// Driver starts tweens.
type Driver interface {
	Tween(target Target, seconds float64, props Props) (Control, error)
}

type Handle struct {
	target   Target
	props    Props
	ease     Easing
	from     float64
	duration float64
	elapsed  float64
	cycle    int
	reversed bool
	paused   bool
	dead     bool
}

func (h *Handle) Pause()       { h.paused = true }
func (h *Handle) Play()        { h.paused = false }
func (h *Handle) Kill()        { h.dead = true }
func (h *Handle) Active() bool { return !h.dead }
func (h *Handle) Paused() bool { return h.paused }

// Cycle is the zero based repeat currently playing.
func (h *Handle) Cycle() int { return h.cycle }

// Ticker is a frame driven Driver: nothing moves until Advance is called,
// which the GUI does once per frame and tests do by hand.
type Ticker struct {
	logger logx.Logger
	tweens []*Handle
}

func NewTicker(logger logx.Logger) *Ticker {
	return &Ticker{logger: logger}
}

func (tk *Ticker) Tween(target Target, seconds float64, props Props) (Control, error) {
	if props.Repeat < RepeatForever {
		return nil, fmt.Errorf("repeat must be >= %d, got %d", RepeatForever, props.Repeat)
	}
	if seconds <= 0 && props.Repeat == RepeatForever {
		return nil, fmt.Errorf("endless tween needs a positive duration")
	}
	ease, err := Ease(props.Ease)
	if err != nil {
		return nil, err
	}
	from, err := target.Property(props.Name)
	if err != nil {
		return nil, err
	}
	h := &Handle{target: target, props: props, ease: ease, from: from, duration: seconds}
	tk.tweens = append(tk.tweens, h)
	tk.logger.Debugf("tween %s %.2f -> %.2f over %.2fs (repeat %d, yoyo %v, %s)",
		props.Name, from, props.To, seconds, props.Repeat, props.Yoyo, props.Ease)
	return h, nil
}

// Active counts tweens that have neither completed nor been killed.
func (tk *Ticker) Active() int {
	n := 0
	for _, h := range tk.tweens {
		if !h.dead {
			n++
		}
	}
	return n
}

func (tk *Ticker) KillAll() {
	for _, h := range tk.tweens {
		h.dead = true
	}
	tk.tweens = nil
}

// Advance moves every running tween forward by dt seconds. Tweens started
// from callbacks during this call begin on the next one.
func (tk *Ticker) Advance(dt float64) {
	current := tk.tweens
	for _, h := range current {
		if h.dead || h.paused {
			continue
		}
		tk.step(h, dt)
	}

	alive := tk.tweens[:0]
	for _, h := range tk.tweens {
		if !h.dead {
			alive = append(alive, h)
		}
	}
	for i := len(alive); i < len(tk.tweens); i++ {
		tk.tweens[i] = nil
	}
	tk.tweens = alive
}

func (tk *Ticker) step(h *Handle, dt float64) {
	h.elapsed += dt
	for h.duration > 0 && h.elapsed >= h.duration && h.more() {
		h.elapsed -= h.duration
		h.cycle++
		if h.props.Yoyo {
			h.reversed = !h.reversed
		}
	}

	if h.duration <= 0 || h.elapsed >= h.duration {
		final := h.props.To
		if h.reversed {
			final = h.from
		}
		if !tk.push(h, final) {
			return
		}
		h.dead = true
		if h.props.OnComplete != nil {
			h.props.OnComplete()
		}
		return
	}

	p := h.elapsed / h.duration
	if h.reversed {
		p = 1 - p
	}
	tk.push(h, h.from+(h.props.To-h.from)*h.ease(p))
}

func (tk *Ticker) push(h *Handle, v float64) bool {
	if err := h.target.SetProperty(h.props.Name, v); err != nil {
		tk.logger.Errorf("tween %s: %v", h.props.Name, err)
		h.dead = true
		return false
	}
	if h.props.OnUpdate != nil {
		h.props.OnUpdate()
	}
	return !h.dead
}

func (h *Handle) more() bool {
	return h.props.Repeat == RepeatForever || h.cycle < h.props.Repeat
}

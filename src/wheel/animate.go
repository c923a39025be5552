package wheel

import (
	"spinwheel/src/base"
	"spinwheel/src/logic/planner"
	"spinwheel/src/tween"
)

// StartAnimation plans anim against the wheel's current state and hands the
// result to the driver. Any spin already running is killed first, without
// its finished callback.
func (w *Wheel) StartAnimation(anim Animation) (planner.Plan, error) {
	if w.Options.Driver == nil {
		return planner.Plan{}, base.ErrNoDriver
	}
	if anim.Type == 0 {
		anim.Type = base.SpinOngoing
	}

	in := planner.Intent{
		Type:          anim.Type,
		Direction:     anim.Direction,
		Spins:         anim.Spins,
		StopAngle:     anim.StopAngle,
		Repeat:        anim.Repeat,
		Yoyo:          anim.Yoyo,
		Easing:        anim.Easing,
		PropertyName:  anim.PropertyName,
		PropertyValue: anim.PropertyValue,
	}
	name := base.PropertyRotationAngle
	if anim.Type == base.Custom && anim.PropertyName != "" {
		name = anim.PropertyName
	}
	current, err := w.Property(name)
	if err != nil {
		return planner.Plan{}, err
	}
	plan, err := w.planner.Plan(in, w.Options.PointerAngle, current)
	if err != nil {
		return planner.Plan{}, err
	}

	w.killTween()
	w.animation = anim
	ctl, err := w.Options.Driver.Tween(w, anim.Seconds(), tween.Props{
		Name:       plan.PropertyName,
		To:         plan.To,
		Repeat:     plan.Repeat,
		Yoyo:       plan.Yoyo,
		Ease:       plan.Easing,
		OnUpdate:   w.animationFrame,
		OnComplete: func() { w.finish(true) },
	})
	if err != nil {
		return planner.Plan{}, err
	}
	w.tween = ctl
	w.logger.Infof("%s %s: %s %.1f -> %.1f in %.1fs",
		anim.Type, plan.Easing, plan.PropertyName, plan.From, plan.To, anim.Seconds())
	return plan, nil
}

// StopAnimation kills the running spin. With canCallback the finished
// callback still receives the segment now under the pointer.
func (w *Wheel) StopAnimation(canCallback bool) {
	if w.tween == nil {
		return
	}
	w.killTween()
	w.finish(canCallback)
}

func (w *Wheel) PauseAnimation() {
	if w.tween != nil {
		w.tween.Pause()
	}
}

func (w *Wheel) ResumeAnimation() {
	if w.tween != nil {
		w.tween.Play()
	}
}

// AnimationPaused reports whether a spin is in flight but held by
// PauseAnimation.
func (w *Wheel) AnimationPaused() bool {
	return w.Animating() && w.tween.Paused()
}

// Animating reports whether a spin is in flight, paused or not.
func (w *Wheel) Animating() bool {
	return w.tween != nil && w.tween.Active()
}

func (w *Wheel) killTween() {
	if w.tween != nil {
		w.tween.Kill()
		w.tween = nil
	}
}

// animationFrame runs after every value the driver pushes.
func (w *Wheel) animationFrame() {
	a := &w.animation
	if w.canvas != nil && (a.ClearTheCanvas == nil || *a.ClearTheCanvas) {
		w.canvas.Clear()
	}
	if a.Before != nil {
		a.Before()
	}
	w.draw(false)
	if a.After != nil {
		a.After()
	}
	if a.Sound != nil {
		w.triggerSound()
	}
}

// triggerSound fires the sound callback whenever the pin or segment at the
// pointer differs from the one seen on the previous frame.
func (w *Wheel) triggerSound() {
	var current int
	if w.animation.SoundTrigger == base.TriggerPin {
		current = w.CurrentPinNumber()
	} else {
		current, _ = w.IndicatedSegmentNumber()
	}
	if current != w.lastTrigger {
		w.animation.Sound()
		w.lastTrigger = current
	}
}

func (w *Wheel) finish(canCallback bool) {
	w.tween = nil
	if !canCallback || w.animation.Finished == nil {
		return
	}
	i, ok := w.IndicatedSegmentNumber()
	if !ok {
		w.animation.Finished(-1, nil)
		return
	}
	w.animation.Finished(i, w.segments[i])
}

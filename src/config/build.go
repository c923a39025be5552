package config

import (
	"fmt"

	"spinwheel/src/base"
	"spinwheel/src/logic/angles"
	"spinwheel/src/wheel"
)

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// enum converts an optional string option with parse, naming the field in
// the error.
func enum[T any](field string, s *string, parse func(string) (T, error)) (*T, error) {
	if s == nil {
		return nil, nil
	}
	v, err := parse(*s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}
	return &v, nil
}

// WheelOptions converts the wheel, pins and pointer guide sections. Runtime
// collaborators (logger, driver, image source) are left for the caller.
func (f *File) WheelOptions() (wheel.Options, error) {
	o := wheel.DefaultOptions()
	w := f.Wheel

	mode, err := enum("wheel.drawMode", w.DrawMode, base.DrawModeFromString)
	if err != nil {
		return o, err
	}
	set(&o.DrawMode, mode)
	if o.DrawMode == base.DrawImage || o.DrawMode == base.DrawSegmentImage {
		// image wheels carry their own colours and lettering
		o.FillStyle = ""
		o.StrokeStyle = "red"
		o.DrawText = false
	}

	o.CenterX, o.CenterY, o.OuterRadius = w.CenterX, w.CenterY, w.OuterRadius
	set(&o.InnerRadius, w.InnerRadius)
	set(&o.RotationAngle, w.RotationAngle)
	set(&o.PointerAngle, w.PointerAngle)
	set(&o.ScaleFactor, w.ScaleFactor)
	set(&o.ClearTheCanvas, w.ClearTheCanvas)
	set(&o.DrawText, w.DrawText)
	set(&o.ImageOverlay, w.ImageOverlay)
	set(&o.WheelImage, w.WheelImage)
	set(&o.FillStyle, w.FillStyle)
	set(&o.StrokeStyle, w.StrokeStyle)
	set(&o.LineWidth, w.LineWidth)

	dir, err := enum("wheel.imageDirection", w.ImageDirection, base.ImageDirectionFromString)
	if err != nil {
		return o, err
	}
	set(&o.ImageDirection, dir)

	set(&o.TextFontFamily, w.TextFontFamily)
	set(&o.TextFontSize, w.TextFontSize)
	set(&o.TextFontWeight, w.TextFontWeight)
	o.TextMargin = w.TextMargin
	set(&o.TextFillStyle, w.TextFillStyle)
	set(&o.TextStrokeStyle, w.TextStrokeStyle)
	set(&o.TextLineWidth, w.TextLineWidth)
	ts, err := w.TextStyle.enums("wheel")
	if err != nil {
		return o, err
	}
	set(&o.TextOrientation, ts.orientation)
	set(&o.TextAlignment, ts.alignment)
	set(&o.TextDirection, ts.direction)

	if f.Pins != nil {
		p := wheel.DefaultPins()
		set(&p.Visible, f.Pins.Visible)
		set(&p.Number, f.Pins.Number)
		set(&p.OuterRadius, f.Pins.OuterRadius)
		set(&p.FillStyle, f.Pins.FillStyle)
		set(&p.StrokeStyle, f.Pins.StrokeStyle)
		set(&p.LineWidth, f.Pins.LineWidth)
		set(&p.Margin, f.Pins.Margin)
		p.Responsive = f.Pins.Responsive
		if p.Number < 0 {
			return o, fmt.Errorf("pins.number must not be negative, got %d", p.Number)
		}
		o.Pins = p
	}
	if g := f.PointerGuide; g != nil {
		o.PointerGuide.Display = g.Display
		set(&o.PointerGuide.StrokeStyle, g.StrokeStyle)
		set(&o.PointerGuide.LineWidth, g.LineWidth)
	}
	return o, nil
}

type textEnums struct {
	orientation *base.Orientation
	alignment   *base.Alignment
	direction   *base.Direction
}

func (t TextStyle) enums(prefix string) (textEnums, error) {
	var out textEnums
	var err error
	if out.orientation, err = enum(prefix+".textOrientation", t.TextOrientation, base.OrientationFromString); err != nil {
		return out, err
	}
	if out.alignment, err = enum(prefix+".textAlignment", t.TextAlignment, base.AlignmentFromString); err != nil {
		return out, err
	}
	if out.direction, err = enum(prefix+".textDirection", t.TextDirection, base.DirectionFromString); err != nil {
		return out, err
	}
	return out, nil
}

// SegmentOptions converts the segment list, keeping unset options nil so
// they follow the wheel.
func (f *File) SegmentOptions() ([]wheel.SegmentOptions, error) {
	out := make([]wheel.SegmentOptions, 0, len(f.Segments))
	for i, s := range f.Segments {
		prefix := fmt.Sprintf("segments[%d]", i)
		so := wheel.SegmentOptions{
			Text:            s.Text,
			Size:            s.Size,
			FillStyle:       s.FillStyle,
			StrokeStyle:     s.StrokeStyle,
			LineWidth:       s.LineWidth,
			TextFontFamily:  s.TextFontFamily,
			TextFontSize:    s.TextFontSize,
			TextFontWeight:  s.TextFontWeight,
			TextMargin:      s.TextMargin,
			TextFillStyle:   s.TextFillStyle,
			TextStrokeStyle: s.TextStrokeStyle,
			TextLineWidth:   s.TextLineWidth,
			Image:           s.Image,
		}
		if s.Size == nil && s.SizePercent != nil {
			so.Size = ptr(angles.PercentToDegrees(*s.SizePercent))
		}
		ts, err := s.TextStyle.enums(prefix)
		if err != nil {
			return nil, err
		}
		so.TextOrientation, so.TextAlignment, so.TextDirection = ts.orientation, ts.alignment, ts.direction
		if so.ImageDirection, err = enum(prefix+".imageDirection", s.ImageDirection, base.ImageDirectionFromString); err != nil {
			return nil, err
		}
		out = append(out, so)
	}
	return out, nil
}

// AnimationOptions converts the animation section. Callbacks are attached
// by the caller.
func (f *File) AnimationOptions() (wheel.Animation, error) {
	a := f.Animation
	out := wheel.Animation{
		Type:           base.SpinToStop,
		Direction:      base.Clockwise,
		Duration:       a.Duration,
		Spins:          a.Spins,
		StopAngle:      a.StopAngle,
		Repeat:         a.Repeat,
		Yoyo:           a.Yoyo,
		Easing:         a.Easing,
		PropertyName:   a.PropertyName,
		PropertyValue:  a.PropertyValue,
		ClearTheCanvas: a.ClearTheCanvas,
		SoundTrigger:   base.TriggerSegment,
	}
	if a.Type != "" {
		t, err := base.AnimationTypeFromString(a.Type)
		if err != nil {
			return out, fmt.Errorf("animation.type: %w", err)
		}
		out.Type = t
	}
	if a.Direction != "" {
		d, err := base.SpinDirectionFromString(a.Direction)
		if err != nil {
			return out, fmt.Errorf("animation.direction: %w", err)
		}
		out.Direction = d
	}
	if a.SoundTrigger != "" {
		st, err := base.SoundTriggerFromString(a.SoundTrigger)
		if err != nil {
			return out, fmt.Errorf("animation.soundTrigger: %w", err)
		}
		out.SoundTrigger = st
	}
	return out, nil
}

package wheel

import (
	"fmt"
	"math"

	"spinwheel/src/assets"
	"spinwheel/src/base"
	"spinwheel/src/logx"
	"spinwheel/src/tween"
)

// ImageSource loads bitmaps. The returned bitmap reads zero-sized until
// onLoad has run.
type ImageSource interface {
	Load(src string, onLoad func(*assets.Bitmap)) *assets.Bitmap
}

// Options are the wheel level settings. Segment options left nil fall back
// to these at draw time, so editing them later restyles every segment that
// did not override the value.
//
// CenterX, CenterY, OuterRadius and TextMargin are derived when nil: the
// canvas center, the largest radius that fits with the line width, and
// TextFontSize/1.7.
type Options struct {
	CenterX     *float64
	CenterY     *float64
	OuterRadius *float64
	InnerRadius float64

	DrawMode       base.DrawMode
	RotationAngle  float64
	PointerAngle   float64
	ScaleFactor    float64
	ClearTheCanvas bool
	DrawText       bool
	ImageOverlay   bool
	WheelImage     string
	ImageDirection base.ImageDirection

	FillStyle   string
	StrokeStyle string
	LineWidth   float64

	TextFontFamily  string
	TextFontSize    float64
	TextFontWeight  string
	TextOrientation base.Orientation
	TextAlignment   base.Alignment
	TextDirection   base.Direction
	TextMargin      *float64
	TextFillStyle   string
	TextStrokeStyle string
	TextLineWidth   float64

	Pins         *Pins
	PointerGuide PointerGuide

	Logger logx.Logger
	Driver tween.Driver
	Images ImageSource
}

func DefaultOptions() Options {
	return Options{
		DrawMode:        base.DrawCode,
		ScaleFactor:     1,
		ClearTheCanvas:  true,
		DrawText:        true,
		ImageDirection:  base.FacingN,
		FillStyle:       "silver",
		StrokeStyle:     "black",
		LineWidth:       1,
		TextFontFamily:  "Arial",
		TextFontSize:    20,
		TextFontWeight:  "bold",
		TextOrientation: base.Horizontal,
		TextAlignment:   base.AlignCenter,
		TextDirection:   base.Normal,
		TextFillStyle:   "black",
		TextLineWidth:   1,
		PointerGuide:    DefaultPointerGuide(),
	}
}

// Validate reports the first setting that holds none of its enum's values.
// Drawing skips a wheel whose DrawMode is unknown.
func (o *Options) Validate() error {
	return checkEnums("wheel",
		enumField{"drawMode", o.DrawMode, base.ErrUnknownDrawMode},
		enumField{"imageDirection", o.ImageDirection, base.ErrUnknownImageDirection},
		enumField{"textOrientation", o.TextOrientation, base.ErrUnknownOrientation},
		enumField{"textAlignment", o.TextAlignment, base.ErrUnknownAlignment},
		enumField{"textDirection", o.TextDirection, base.ErrUnknownDirection},
	)
}

// Pins are the small circles around the rim that tick past the pointer.
type Pins struct {
	Visible     bool
	Number      int
	OuterRadius float64
	FillStyle   string
	StrokeStyle string
	LineWidth   float64
	Margin      float64
	// Responsive scales pin size and margin with the wheel.
	Responsive bool
}

func DefaultPins() *Pins {
	return &Pins{
		Visible:     true,
		Number:      36,
		OuterRadius: 3,
		FillStyle:   "grey",
		StrokeStyle: "black",
		LineWidth:   1,
		Margin:      3,
	}
}

// PointerGuide draws a line from the center along the pointer angle.
type PointerGuide struct {
	Display     bool
	StrokeStyle string
	LineWidth   float64
}

func DefaultPointerGuide() PointerGuide {
	return PointerGuide{StrokeStyle: "red", LineWidth: 3}
}

// SegmentOptions hold per segment overrides; nil inherits from the wheel.
type SegmentOptions struct {
	Size *float64
	Text string

	FillStyle   *string
	StrokeStyle *string
	LineWidth   *float64

	TextFontFamily  *string
	TextFontSize    *float64
	TextFontWeight  *string
	TextOrientation *base.Orientation
	TextAlignment   *base.Alignment
	TextDirection   *base.Direction
	TextMargin      *float64
	TextFillStyle   *string
	TextStrokeStyle *string
	TextLineWidth   *float64

	Image          string
	ImageDirection *base.ImageDirection
}

// Validate checks the overrides that are set; nil ones are inherited and
// checked with the wheel.
func (so *SegmentOptions) Validate() error {
	return checkEnums("segment",
		enumField{"textOrientation", optional(so.TextOrientation), base.ErrUnknownOrientation},
		enumField{"textAlignment", optional(so.TextAlignment), base.ErrUnknownAlignment},
		enumField{"textDirection", optional(so.TextDirection), base.ErrUnknownDirection},
		enumField{"imageDirection", optional(so.ImageDirection), base.ErrUnknownImageDirection},
	)
}

type enumField struct {
	name  string
	value fmt.Stringer
	err   error
}

func checkEnums(scope string, fields ...enumField) error {
	for _, f := range fields {
		if f.value != nil && f.value.String() == "invalid" {
			return fmt.Errorf("%w: %s.%s = %d", f.err, scope, f.name, f.value)
		}
	}
	return nil
}

func optional[T fmt.Stringer](p *T) fmt.Stringer {
	if p == nil {
		return nil
	}
	return *p
}

func resolve[T any](own *T, def T) T {
	if own != nil {
		return *own
	}
	return def
}

// segmentStyle is a segment's effective styling for one draw. It is built
// fresh every time and never stored.
type segmentStyle struct {
	fillStyle   string
	strokeStyle string
	lineWidth   float64

	fontFamily  string
	fontSize    float64
	fontWeight  string
	orientation base.Orientation
	alignment   base.Alignment
	direction   base.Direction
	margin      float64
	textFill    string
	textStroke  string
	textWidth   float64

	imageDirection base.ImageDirection
}

func (w *Wheel) resolveStyle(s *Segment) segmentStyle {
	o := &w.Options
	so := &s.Options
	return segmentStyle{
		fillStyle:      resolve(so.FillStyle, o.FillStyle),
		strokeStyle:    resolve(so.StrokeStyle, o.StrokeStyle),
		lineWidth:      resolve(so.LineWidth, o.LineWidth),
		fontFamily:     resolve(so.TextFontFamily, o.TextFontFamily),
		fontSize:       resolve(so.TextFontSize, o.TextFontSize),
		fontWeight:     resolve(so.TextFontWeight, o.TextFontWeight),
		orientation:    resolve(so.TextOrientation, o.TextOrientation),
		alignment:      resolve(so.TextAlignment, o.TextAlignment),
		direction:      resolve(so.TextDirection, o.TextDirection),
		margin:         resolve(so.TextMargin, w.textMargin()),
		textFill:       resolve(so.TextFillStyle, o.TextFillStyle),
		textStroke:     resolve(so.TextStrokeStyle, o.TextStrokeStyle),
		textWidth:      resolve(so.TextLineWidth, o.TextLineWidth),
		imageDirection: resolve(so.ImageDirection, o.ImageDirection),
	}
}

func (w *Wheel) textMargin() float64 {
	return resolve(w.Options.TextMargin, w.Options.TextFontSize/1.7)
}

func (w *Wheel) centerX() float64 {
	if w.Options.CenterX != nil {
		return *w.Options.CenterX
	}
	if w.canvas == nil {
		return 0
	}
	cw, _ := w.canvas.Size()
	return float64(cw) / 2
}

func (w *Wheel) centerY() float64 {
	if w.Options.CenterY != nil {
		return *w.Options.CenterY
	}
	if w.canvas == nil {
		return 0
	}
	_, ch := w.canvas.Size()
	return float64(ch) / 2
}

func (w *Wheel) outerRadius() float64 {
	if w.Options.OuterRadius != nil {
		return *w.Options.OuterRadius
	}
	if w.canvas == nil {
		return 0
	}
	cw, ch := w.canvas.Size()
	return math.Min(float64(cw), float64(ch))/2 - w.Options.LineWidth
}

func (w *Wheel) scale() float64 {
	if w.Options.ScaleFactor == 0 {
		return 1
	}
	return w.Options.ScaleFactor
}

// Animation describes one spin. Nil and zero fields take the defaults of
// the chosen Type; a zero Type spins ongoing.
type Animation struct {
	Type      base.AnimationType
	Direction base.SpinDirection
	// Duration in seconds; zero means DefaultDuration.
	Duration  float64
	Spins     *float64
	StopAngle *float64
	Repeat    *int
	Yoyo      *bool
	Easing    string

	// Custom animations only.
	PropertyName  string
	PropertyValue float64

	// ClearTheCanvas nil clears before every animation frame.
	ClearTheCanvas *bool
	SoundTrigger   base.SoundTrigger

	Finished func(index int, seg *Segment)
	Before   func()
	After    func()
	Sound    func()
}

const DefaultDuration = 10.0

// Seconds is the tween length, DefaultDuration when unset.
func (a Animation) Seconds() float64 {
	if a.Duration <= 0 {
		return DefaultDuration
	}
	return a.Duration
}

// Package wheel is the prize wheel itself: segments, drawing, lookups and
// the spin lifecycle.
package wheel

import (
	"fmt"
	"math"
	"math/rand/v2"

	"spinwheel/src/assets"
	"spinwheel/src/base"
	"spinwheel/src/logic/angles"
	"spinwheel/src/logic/hittest"
	"spinwheel/src/logic/planner"
	"spinwheel/src/logic/sizer"
	"spinwheel/src/logx"
	"spinwheel/src/render"
	"spinwheel/src/tween"
)

// Segment is one slice of the wheel. Its span is owned by the wheel and
// recomputed whenever segments are added, removed or resized; Options may be
// edited at any time and show up on the next draw.
type Segment struct {
	Options SegmentOptions

	startAngle float64
	endAngle   float64
	bitmap     *assets.Bitmap
}

func (s *Segment) StartAngle() float64 { return s.startAngle }
func (s *Segment) EndAngle() float64   { return s.endAngle }

func (s *Segment) Span() base.Span {
	return base.Span{Start: s.startAngle, End: s.endAngle}
}

// Bitmap is the segment image, nil when none was set.
func (s *Segment) Bitmap() *assets.Bitmap { return s.bitmap }

type Wheel struct {
	Options Options

	canvas   render.Canvas
	logger   logx.Logger
	segments []*Segment
	image    *assets.Bitmap

	planner     *planner.Planner
	rand        func() float64
	animation   Animation
	tween       tween.Control
	lastTrigger int
}

// New builds a wheel drawing on canvas. canvas may be nil until SetCanvas;
// drawing is skipped while it is.
func New(canvas render.Canvas, opts Options, segs ...SegmentOptions) *Wheel {
	w := &Wheel{
		Options: opts,
		canvas:  canvas,
		logger:  opts.Logger,
		planner: planner.New(),
		rand:    rand.Float64,
	}
	if w.logger == nil {
		w.logger = logx.NewNopLogx()
	}
	w.planner.Rand = func() float64 { return w.rand() }

	for _, so := range segs {
		w.segments = append(w.segments, w.newSegment(so))
	}
	w.Resize()

	if opts.WheelImage != "" {
		w.SetWheelImage(opts.WheelImage)
	}
	return w
}

// SetRand replaces the random source used for random stop angles.
func (w *Wheel) SetRand(r func() float64) {
	w.rand = r
}

func (w *Wheel) Canvas() render.Canvas {
	return w.canvas
}

func (w *Wheel) SetCanvas(c render.Canvas) {
	w.canvas = c
}

// Validate checks the wheel options and every segment's overrides. New does
// not call it since Options stay editable after construction.
func (w *Wheel) Validate() error {
	if err := w.Options.Validate(); err != nil {
		return err
	}
	for i, s := range w.segments {
		if err := s.Options.Validate(); err != nil {
			return fmt.Errorf("segments[%d]: %w", i, err)
		}
	}
	return nil
}

// SetOptions swaps in opts once they validate; on error the wheel keeps
// its current options.
func (w *Wheel) SetOptions(opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	w.Options = opts
	if opts.Logger != nil {
		w.logger = opts.Logger
	}
	return nil
}

func (w *Wheel) newSegment(so SegmentOptions) *Segment {
	s := &Segment{Options: so}
	if so.Image != "" {
		s.bitmap = w.loadImage(so.Image)
	}
	return s
}

func (w *Wheel) loadImage(src string) *assets.Bitmap {
	if w.Options.Images == nil {
		w.logger.Warnf("no image source configured, %q not loaded", src)
		return nil
	}
	return w.Options.Images.Load(src, func(*assets.Bitmap) {
		if w.imagesReady() {
			w.Draw()
		}
	})
}

func (w *Wheel) imagesReady() bool {
	if w.image != nil && !w.image.Loaded() {
		return false
	}
	for _, s := range w.segments {
		if s.bitmap != nil && !s.bitmap.Loaded() {
			return false
		}
	}
	return true
}

// SetWheelImage swaps the whole-wheel image used by the image draw mode.
func (w *Wheel) SetWheelImage(src string) {
	w.Options.WheelImage = src
	w.image = w.loadImage(src)
}

// SetSegmentImage swaps one segment's image.
func (w *Wheel) SetSegmentImage(index int, src string, dir *base.ImageDirection) error {
	s, err := w.Segment(index)
	if err != nil {
		return err
	}
	s.Options.Image = src
	if dir != nil {
		s.Options.ImageDirection = dir
	}
	s.bitmap = nil
	if src != "" {
		s.bitmap = w.loadImage(src)
	}
	return nil
}

// Resize recomputes every segment span from the configured sizes.
func (w *Wheel) Resize() {
	sizes := make([]*float64, len(w.segments))
	for i, s := range w.segments {
		sizes[i] = s.Options.Size
	}
	for i, sp := range sizer.ComputeSpans(sizes) {
		w.segments[i].startAngle = sp.Start
		w.segments[i].endAngle = sp.End
	}
}

func (w *Wheel) NumSegments() int {
	return len(w.segments)
}

func (w *Wheel) Segments() []*Segment {
	return w.segments
}

func (w *Wheel) Segment(index int) (*Segment, error) {
	if index < 0 || index >= len(w.segments) {
		return nil, fmt.Errorf("%w: %d of %d", base.ErrSegmentOutOfRange, index, len(w.segments))
	}
	return w.segments[index], nil
}

func (w *Wheel) spans() []base.Span {
	out := make([]base.Span, len(w.segments))
	for i, s := range w.segments {
		out[i] = s.Span()
	}
	return out
}

// AddSegment inserts a segment before position, or appends when position
// is negative or past the end, and returns it.
func (w *Wheel) AddSegment(so SegmentOptions, position int) *Segment {
	s := w.newSegment(so)
	if position < 0 || position >= len(w.segments) {
		w.segments = append(w.segments, s)
	} else {
		w.segments = append(w.segments, nil)
		copy(w.segments[position+1:], w.segments[position:])
		w.segments[position] = s
	}
	w.Resize()
	return s
}

// DeleteSegment removes the segment at position, or the last one when
// position is out of range. The final segment is never removed.
func (w *Wheel) DeleteSegment(position int) {
	n := len(w.segments)
	if n <= 1 {
		return
	}
	if position < 0 || position >= n {
		position = n - 1
	}
	copy(w.segments[position:], w.segments[position+1:])
	w.segments[n-1] = nil
	w.segments = w.segments[:n-1]
	w.Resize()
}

// SetSegmentSize changes one segment's explicit size; nil shares the
// remaining arc again.
func (w *Wheel) SetSegmentSize(index int, size *float64) error {
	s, err := w.Segment(index)
	if err != nil {
		return err
	}
	s.Options.Size = size
	w.Resize()
	return nil
}

func (w *Wheel) Rotation() float64 {
	return w.Options.RotationAngle
}

// SetRotation is the setter animation drivers push each new angle through.
func (w *Wheel) SetRotation(deg float64) {
	w.Options.RotationAngle = deg
}

// RotationPosition is the rotation folded into [0, 360).
func (w *Wheel) RotationPosition() float64 {
	return angles.Normalize(w.Options.RotationAngle)
}

func (w *Wheel) SetScaleFactor(f float64) {
	w.Options.ScaleFactor = f
}

// Property implements tween.Target.
func (w *Wheel) Property(name string) (float64, error) {
	switch name {
	case base.PropertyRotationAngle:
		return w.Options.RotationAngle, nil
	case "pointerAngle":
		return w.Options.PointerAngle, nil
	case "scaleFactor":
		return w.scale(), nil
	case "innerRadius":
		return w.Options.InnerRadius, nil
	case "outerRadius":
		return w.outerRadius(), nil
	}
	return 0, fmt.Errorf("%w: %q", base.ErrUnknownProperty, name)
}

// SetProperty implements tween.Target.
func (w *Wheel) SetProperty(name string, v float64) error {
	switch name {
	case base.PropertyRotationAngle:
		w.SetRotation(v)
	case "pointerAngle":
		w.Options.PointerAngle = v
	case "scaleFactor":
		w.SetScaleFactor(v)
	case "innerRadius":
		w.Options.InnerRadius = v
	case "outerRadius":
		w.Options.OuterRadius = &v
	default:
		return fmt.Errorf("%w: %q", base.ErrUnknownProperty, name)
	}
	return nil
}

func (w *Wheel) hitState() hittest.State {
	return hittest.State{
		CenterX:     w.centerX(),
		CenterY:     w.centerY(),
		InnerRadius: w.Options.InnerRadius,
		OuterRadius: w.outerRadius(),
		Scale:       w.scale(),
		Rotation:    w.Options.RotationAngle,
		Spans:       w.spans(),
	}
}

// SegmentNumberAt returns the index of the segment under canvas point (x, y).
func (w *Wheel) SegmentNumberAt(x, y float64) (int, bool) {
	return hittest.Locate(x, y, w.hitState())
}

// SegmentAt is SegmentNumberAt returning the segment, nil when none.
func (w *Wheel) SegmentAt(x, y float64) *Segment {
	i, ok := w.SegmentNumberAt(x, y)
	if !ok {
		return nil
	}
	return w.segments[i]
}

// IndicatedSegmentNumber is the index of the segment under the pointer.
func (w *Wheel) IndicatedSegmentNumber() (int, bool) {
	return hittest.Indicated(w.Options.PointerAngle, w.Options.RotationAngle, w.spans())
}

func (w *Wheel) IndicatedSegment() *Segment {
	i, ok := w.IndicatedSegmentNumber()
	if !ok {
		return nil
	}
	return w.segments[i]
}

// CurrentPinNumber is the pin at the pointer; 0 when the wheel has no pins.
func (w *Wheel) CurrentPinNumber() int {
	if w.Options.Pins == nil {
		return 0
	}
	clockwise := w.animation.Direction != base.AntiClockwise
	return hittest.CurrentPin(w.Options.PointerAngle, w.Options.RotationAngle, w.Options.Pins.Number, clockwise)
}

// RandomForSegment picks a whole-degree stop angle inside the segment, at
// least one degree clear of either edge. Segments too narrow for that get
// their mid angle.
func (w *Wheel) RandomForSegment(index int) (float64, error) {
	s, err := w.Segment(index)
	if err != nil {
		return 0, err
	}
	span := s.Span()
	r := span.Size() - 2
	if r <= 0 {
		w.logger.Warnf("segment %d is too small (%.2f deg) for a random stop angle, using its middle", index, span.Size())
		return span.Mid(), nil
	}
	return span.Start + 1 + math.Floor(w.rand()*r), nil
}

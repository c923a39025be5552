package wheel

import (
	"errors"
	"testing"

	"spinwheel/src/base"
	"spinwheel/src/logic/sizer"
	"spinwheel/src/logx"
	"spinwheel/src/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func texts(n int) []SegmentOptions {
	out := make([]SegmentOptions, n)
	for i := range out {
		out[i].Text = string(rune('A' + i))
	}
	return out
}

func observed() (logx.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return logx.NewLogxFromCore(core), logs
}

func spans(w *Wheel) []base.Span {
	return w.spans()
}

func TestFourEvenSegmentsThenDelete(t *testing.T) {
	w := New(nil, DefaultOptions(), texts(4)...)
	assert.Equal(t, []base.Span{{0, 90}, {90, 180}, {180, 270}, {270, 360}}, spans(w))

	w.DeleteSegment(1)
	require.Equal(t, 3, w.NumSegments())
	got := spans(w)
	want := []base.Span{{0, 120}, {120, 240}, {240, 360}}
	for i := range want {
		assert.InDelta(t, want[i].Start, got[i].Start, 1e-9)
		assert.InDelta(t, want[i].End, got[i].End, 1e-9)
	}
	assert.Equal(t, "C", w.Segments()[1].Options.Text)
}

func TestAddSegmentPositions(t *testing.T) {
	w := New(nil, DefaultOptions(), texts(2)...)

	w.AddSegment(SegmentOptions{Text: "front"}, 0)
	w.AddSegment(SegmentOptions{Text: "tail"}, -1)
	w.AddSegment(SegmentOptions{Text: "far"}, 99)
	s := w.AddSegment(SegmentOptions{Text: "mid"}, 2)

	var got []string
	for _, seg := range w.Segments() {
		got = append(got, seg.Options.Text)
	}
	assert.Equal(t, []string{"front", "A", "mid", "B", "tail", "far"}, got)
	assert.Equal(t, 120.0, s.StartAngle())
	assert.Equal(t, 180.0, s.EndAngle())
	assert.Equal(t, 360.0, w.Segments()[5].EndAngle())
}

func TestDeleteSegmentGuards(t *testing.T) {
	w := New(nil, DefaultOptions(), texts(3)...)
	w.DeleteSegment(-1)
	assert.Equal(t, "B", w.Segments()[w.NumSegments()-1].Options.Text)
	w.DeleteSegment(42)
	w.DeleteSegment(0)
	require.Equal(t, 1, w.NumSegments())
	assert.Equal(t, "A", w.Segments()[0].Options.Text)
	assert.Equal(t, base.Span{Start: 0, End: 360}, w.Segments()[0].Span())
}

func TestExplicitSizes(t *testing.T) {
	segs := texts(3)
	segs[0].Size = sizer.Size(180)
	w := New(nil, DefaultOptions(), segs...)
	assert.Equal(t, []base.Span{{0, 180}, {180, 270}, {270, 360}}, spans(w))

	require.NoError(t, w.SetSegmentSize(0, nil))
	assert.Equal(t, base.Span{Start: 0, End: 120}, w.Segments()[0].Span())

	err := w.SetSegmentSize(7, sizer.Size(1))
	assert.True(t, errors.Is(err, base.ErrSegmentOutOfRange))
}

func TestSegmentAtFollowsRotation(t *testing.T) {
	w := New(render.NewRecorder(400, 400), DefaultOptions(), texts(4)...)

	// right of center is 90 degrees, the start of segment 1
	i, ok := w.SegmentNumberAt(300, 210)
	require.True(t, ok)
	assert.Equal(t, 1, i)

	w.SetRotation(90)
	i, ok = w.SegmentNumberAt(300, 210)
	require.True(t, ok)
	assert.Equal(t, 0, i)
	assert.Same(t, w.Segments()[0], w.SegmentAt(300, 210))

	_, ok = w.SegmentNumberAt(399, 399)
	assert.False(t, ok, "corner lies outside the wheel")
	assert.Nil(t, w.SegmentAt(399, 399))
}

func TestIndicatedSegment(t *testing.T) {
	w := New(nil, DefaultOptions(), texts(4)...)
	w.SetRotation(5*360 + 135)
	i, ok := w.IndicatedSegmentNumber()
	require.True(t, ok)
	assert.Equal(t, 2, i)
	assert.Equal(t, "C", w.IndicatedSegment().Options.Text)

	w.Options.PointerAngle = 90
	i, _ = w.IndicatedSegmentNumber()
	assert.Equal(t, 3, i)
}

func TestCurrentPinNumber(t *testing.T) {
	w := New(nil, DefaultOptions(), texts(2)...)
	assert.Equal(t, 0, w.CurrentPinNumber(), "no pins")

	opts := DefaultOptions()
	opts.Pins = DefaultPins()
	opts.Pins.Number = 4
	w = New(nil, opts, texts(2)...)
	w.SetRotation(-100)
	assert.Equal(t, 2, w.CurrentPinNumber())
	w.animation.Direction = base.AntiClockwise
	assert.Equal(t, 1, w.CurrentPinNumber())
}

func TestRandomForSegment(t *testing.T) {
	w := New(nil, DefaultOptions(), texts(4)...)
	w.SetRand(func() float64 { return 0.5 })
	a, err := w.RandomForSegment(2)
	require.NoError(t, err)
	assert.Equal(t, 180+1+44.0, a)

	w.SetRand(func() float64 { return 0.999999 })
	a, _ = w.RandomForSegment(0)
	assert.Less(t, a, 90.0)
	assert.Greater(t, a, 0.0)

	_, err = w.RandomForSegment(4)
	assert.True(t, errors.Is(err, base.ErrSegmentOutOfRange))
}

func TestRandomForTinySegmentLogsAndUsesMiddle(t *testing.T) {
	logger, logs := observed()
	opts := DefaultOptions()
	opts.Logger = logger
	segs := texts(2)
	segs[0].Size = sizer.Size(1.5)
	w := New(nil, opts, segs...)

	a, err := w.RandomForSegment(0)
	require.NoError(t, err)
	assert.Equal(t, 0.75, a)
	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.WarnLevel).Len())
}

func TestProperties(t *testing.T) {
	w := New(render.NewRecorder(200, 100), DefaultOptions(), texts(1)...)
	v, err := w.Property("outerRadius")
	require.NoError(t, err)
	assert.Equal(t, 49.0, v)

	require.NoError(t, w.SetProperty(base.PropertyRotationAngle, 725))
	assert.Equal(t, 725.0, w.Rotation())
	assert.Equal(t, 5.0, w.RotationPosition())

	require.NoError(t, w.SetProperty("outerRadius", 30))
	v, _ = w.Property("outerRadius")
	assert.Equal(t, 30.0, v)

	_, err = w.Property("colour")
	assert.True(t, errors.Is(err, base.ErrUnknownProperty))
	assert.True(t, errors.Is(w.SetProperty("colour", 1), base.ErrUnknownProperty))
}

func TestDefaultsResolveAtDrawTime(t *testing.T) {
	red := "red"
	segs := texts(2)
	segs[1].FillStyle = &red
	w := New(nil, DefaultOptions(), segs...)

	st := w.resolveStyle(w.Segments()[0])
	assert.Equal(t, "silver", st.fillStyle)
	assert.InDelta(t, 20/1.7, st.margin, 1e-12)

	w.Options.FillStyle = "gold"
	w.Options.TextFontSize = 34
	assert.Equal(t, "gold", w.resolveStyle(w.Segments()[0]).fillStyle)
	assert.Equal(t, "red", w.resolveStyle(w.Segments()[1]).fillStyle)
	assert.InDelta(t, 20.0, w.resolveStyle(w.Segments()[0]).margin, 1e-12)
}

func TestValidateRejectsUnknownEnums(t *testing.T) {
	w := New(nil, DefaultOptions(), texts(3)...)
	require.NoError(t, w.Validate())

	w.Options.DrawMode = base.DrawMode(9)
	assert.True(t, errors.Is(w.Validate(), base.ErrUnknownDrawMode))
	w.Options.DrawMode = base.DrawCode

	bad := base.Orientation(7)
	w.Segments()[1].Options.TextOrientation = &bad
	err := w.Validate()
	assert.True(t, errors.Is(err, base.ErrUnknownOrientation))
	assert.Contains(t, err.Error(), "segments[1]")

	ok := base.Curved
	w.Segments()[1].Options.TextOrientation = &ok
	assert.NoError(t, w.Validate())
}

func TestSetOptionsKeepsCurrentOnError(t *testing.T) {
	w := New(nil, DefaultOptions(), texts(2)...)

	opts := DefaultOptions()
	opts.FillStyle = "gold"
	opts.DrawMode = 0
	assert.True(t, errors.Is(w.SetOptions(opts), base.ErrUnknownDrawMode))
	assert.Equal(t, "silver", w.Options.FillStyle)
	assert.Equal(t, base.DrawCode, w.Options.DrawMode)

	opts.DrawMode = base.DrawImage
	opts.TextAlignment = base.Alignment(5)
	assert.True(t, errors.Is(w.SetOptions(opts), base.ErrUnknownAlignment))

	opts.TextAlignment = base.AlignOuter
	require.NoError(t, w.SetOptions(opts))
	assert.Equal(t, "gold", w.Options.FillStyle)
	assert.Equal(t, base.DrawImage, w.Options.DrawMode)
}

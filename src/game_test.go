package src

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"spinwheel/src/base"
	"spinwheel/src/config"
	"spinwheel/src/logx"
	"spinwheel/src/wheel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 4))
	img.Set(1, 1, color.White)
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
}

func TestCreateDefaultWheel(t *testing.T) {
	wb := NewWheelBuilder(logx.NewNopLogx())
	defer wb.Close()
	require.NoError(t, wb.CreateFromFile(""))

	assert.Equal(t, 8, wb.Wheel().NumSegments())
	w, h := wb.Canvas().Size()
	assert.Equal(t, 500, w)
	assert.Equal(t, 500, h)
	assert.Equal(t, base.SpinToStop, wb.Animation().Type)
	wb.Mute()

	wb.Resize(300, 200)
	w, h = wb.Canvas().Size()
	assert.Equal(t, 300, w)
	assert.Equal(t, 200, h)
	assert.Equal(t, 300, wb.Config().Window.Width)
	assert.Same(t, wb.Canvas(), wb.Wheel().Canvas())
}

func TestCreateFromFileResolvesImagesNextToIt(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "a.png"))
	path := filepath.Join(dir, "wheel.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
window: {width: 200, height: 200}
wheel: {drawMode: segmentImage}
segments:
  - {text: a, image: a.png}
  - {text: b, image: missing.png}
`), 0644))

	wb := NewWheelBuilder(logx.NewNopLogx())
	defer wb.Close()
	require.NoError(t, wb.CreateFromFile(path))
	require.NoError(t, wb.WaitImages(context.Background()))

	segs := wb.Wheel().Segments()
	assert.True(t, segs[0].Bitmap().Loaded())
	assert.Equal(t, 8, segs[0].Bitmap().Width())
	assert.False(t, segs[1].Bitmap().Loaded())
}

func TestRecreateReleasesPendingImages(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "a.png"))
	conf := config.Default()
	conf.Sound.Enabled = false
	conf.Segments = nil
	for i := 0; i < 40; i++ {
		conf.Segments = append(conf.Segments, config.Segment{Text: "x", Image: "a.png"})
	}

	wb := NewWheelBuilder(logx.NewNopLogx())
	defer wb.Close()
	require.NoError(t, wb.CreateFromConfig(&conf, dir))
	first := wb.loader
	assert.Equal(t, 40, first.Pending())

	def := config.Default()
	def.Sound.Enabled = false
	require.NoError(t, wb.CreateFromConfig(&def, dir))
	assert.NotSame(t, first, wb.loader)
	assert.Equal(t, 0, first.Pending())
	assert.Equal(t, 0, first.Poll())
	require.NoError(t, wb.WaitImages(context.Background()))
}

func TestCreateFromConfigRejectsBadOptions(t *testing.T) {
	wb := NewWheelBuilder(logx.NewNopLogx())
	conf := config.Default()
	bad := "sideways"
	conf.Wheel.TextOrientation = &bad
	err := wb.CreateFromConfig(&conf, ".")
	assert.ErrorIs(t, err, base.ErrUnknownOrientation)
	assert.Nil(t, wb.Wheel())

	dir := t.TempDir()
	path := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0644))
	assert.Error(t, wb.CreateFromFile(path))
}

func TestSpinPicksSegment(t *testing.T) {
	conf := config.Default()
	conf.Sound.Enabled = false
	conf.Animation.Duration = 0.5
	wb := NewWheelBuilder(logx.NewNopLogx())
	defer wb.Close()
	require.NoError(t, wb.CreateFromConfig(&conf, "."))

	run := func(segment int) int {
		won := -2
		_, err := wb.Spin(segment, func(i int, _ *wheel.Segment) { won = i })
		require.NoError(t, err)
		for i := 0; i < 60 && wb.Wheel().Animating(); i++ {
			wb.Tick(1.0 / 60)
		}
		return won
	}
	assert.Equal(t, 6, run(6))
	assert.Equal(t, 0, run(0))
	got := run(-1)
	assert.True(t, got >= 0 && got < 8, "random segment %d", got)

	_, err := wb.Spin(8, nil)
	assert.ErrorIs(t, err, base.ErrSegmentOutOfRange)
}

func TestSpinEmptyWheelHasNoWinner(t *testing.T) {
	conf := config.Default()
	conf.Sound.Enabled = false
	conf.Animation.Duration = 0.25
	conf.Segments = nil
	wb := NewWheelBuilder(logx.NewNopLogx())
	defer wb.Close()
	require.NoError(t, wb.CreateFromConfig(&conf, "."))
	require.Equal(t, 0, wb.Wheel().NumSegments())

	won := -2
	var seg *wheel.Segment
	require.NotPanics(t, func() {
		_, err := wb.Spin(-1, func(i int, s *wheel.Segment) { won, seg = i, s })
		require.NoError(t, err)
	})
	for i := 0; i < 60 && wb.Wheel().Animating(); i++ {
		wb.Tick(1.0 / 60)
	}
	assert.False(t, wb.Wheel().Animating())
	assert.Equal(t, -1, won)
	assert.Nil(t, seg)

	_, err := wb.Spin(0, nil)
	assert.ErrorIs(t, err, base.ErrSegmentOutOfRange)
}

func TestSpinKeepsConfiguredStopAngle(t *testing.T) {
	conf := config.Default()
	conf.Sound.Enabled = false
	conf.Animation.Duration = 0.25
	conf.Animation.StopAngle = fptr(100)
	wb := NewWheelBuilder(logx.NewNopLogx())
	defer wb.Close()
	require.NoError(t, wb.CreateFromConfig(&conf, "."))

	plan, err := wb.Spin(-1, nil)
	require.NoError(t, err)
	assert.Equal(t, 260.0, plan.ResolvedStop)
}

func fptr(v float64) *float64 { return &v }

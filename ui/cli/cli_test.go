package cli

import (
	"bytes"
	"context"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"spinwheel/src"
	"spinwheel/src/config"
	"spinwheel/src/logx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fptr(v float64) *float64 { return &v }

func testBuilder(t *testing.T) *src.WheelBuilder {
	t.Helper()
	conf := config.Default()
	conf.Sound.Enabled = false
	conf.Window = config.Window{Width: 160, Height: 160, Title: "test"}
	conf.Wheel.OuterRadius = nil
	conf.Wheel.InnerRadius = fptr(20)
	conf.Wheel.TextFontSize = fptr(10)
	conf.Animation.Duration = 1

	b := src.NewWheelBuilder(logx.NewNopLogx())
	require.NoError(t, b.CreateFromConfig(&conf, t.TempDir()))
	t.Cleanup(b.Close)
	return b
}

func TestSimulateLandsOnRequestedSegment(t *testing.T) {
	var out bytes.Buffer
	c := NewCLIWith(testBuilder(t), nil, &out)

	r, err := c.Simulate(context.Background(), 2, "")
	require.NoError(t, err)
	assert.Equal(t, 2, r.Index)
	require.NotNil(t, r.Segment)
	assert.Equal(t, "Prize 3", r.Segment.Options.Text)
	assert.InDelta(t, 60, r.Frames, 2)
	assert.Contains(t, out.String(), "spinning")

	out.Reset()
	require.NoError(t, c.PrintWinner(context.Background(), 5, ""))
	assert.Contains(t, out.String(), `winner: #5 "Prize 6"`)
}

func TestSimulateRejectsUnknownSegment(t *testing.T) {
	c := NewCLIWith(testBuilder(t), nil, &bytes.Buffer{})
	_, err := c.Simulate(context.Background(), 42, "")
	assert.Error(t, err)
}

func TestSimulateCancelled(t *testing.T) {
	b := testBuilder(t)
	c := NewCLIWith(b, nil, &bytes.Buffer{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Simulate(ctx, 1, "")
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, b.Wheel().Animating())
}

func TestSimulateWritesGIF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spin.gif")
	var out bytes.Buffer
	c := NewCLIWith(testBuilder(t), nil, &out)

	_, err := c.Simulate(context.Background(), 0, path)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	g, err := gif.DecodeAll(f)
	require.NoError(t, err)
	assert.Greater(t, len(g.Image), 10)
	assert.Equal(t, 5, g.Delay[0])
	assert.Equal(t, 160, g.Config.Width)
	assert.Contains(t, out.String(), "frames written to")
}

func TestRenderWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wheel.png")
	b := testBuilder(t)
	c := NewCLIWith(b, nil, &bytes.Buffer{})

	require.NoError(t, c.Render(context.Background(), path, 30))
	assert.Equal(t, 30.0, b.Wheel().Rotation())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 160, img.Bounds().Dx())
	assert.Equal(t, 160, img.Bounds().Dy())
}

func TestGIFRecorderWithoutFrames(t *testing.T) {
	g := NewGIFRecorder(0)
	assert.Error(t, g.Encode(&bytes.Buffer{}))
	assert.Error(t, g.Save(filepath.Join(t.TempDir(), "x.gif")))
}

func TestPrintSegments(t *testing.T) {
	b := testBuilder(t)
	var plain bytes.Buffer
	PrintSegments(&plain, b.Wheel(), 1, false)
	s := plain.String()
	assert.Contains(t, s, "Prize 1")
	assert.Contains(t, s, "Prize 8")
	assert.Contains(t, s, "45.0")
	assert.Contains(t, s, "<")
	assert.NotContains(t, s, "\033[")

	var colored bytes.Buffer
	PrintSegments(&colored, b.Wheel(), -1, true)
	assert.Contains(t, colored.String(), "\033[48;2;234;229;111m")
}

func TestKeyAction(t *testing.T) {
	assert.Equal(t, actSpin, keyAction(' '))
	assert.Equal(t, actSpin, keyAction('\r'))
	assert.Equal(t, actPause, keyAction('p'))
	assert.Equal(t, actStop, keyAction('S'))
	assert.Equal(t, actList, keyAction('l'))
	assert.Equal(t, actQuit, keyAction(3))
	assert.Equal(t, actQuit, keyAction('q'))
	assert.Equal(t, actNone, keyAction('x'))
}

func TestCRLFWriter(t *testing.T) {
	var out bytes.Buffer
	n, err := crlfWriter{&out}.Write([]byte("a\nb\n"))
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, "a\r\nb\r\n", out.String())
}

func TestRunFallsBackToLineMode(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	_, err = w.WriteString("3\nbanana\nlist\n9\nq\n")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	var out bytes.Buffer
	c := NewCLIWith(testBuilder(t), r, &out)
	require.NoError(t, c.Run())

	s := out.String()
	assert.Contains(t, s, `winner: #3 "Prize 4"`)
	assert.Contains(t, s, "Invalid segment: banana")
	assert.Contains(t, s, "Invalid segment: 9")
}

package assets

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"runtime"
	"strconv"
	"testing"
	"testing/fstest"
	"time"

	"spinwheel/src/logx"
	"spinwheel/src/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestImageLoaderDeliversOnWait(t *testing.T) {
	fsys := fstest.MapFS{
		"prize.png":  {Data: pngBytes(t, 7, 3)},
		"broken.png": {Data: []byte("not an image")},
	}
	l := NewImageLoader(fsys, logx.NewNopLogx())

	var got []string
	ok := l.Load("prize.png", func(b *Bitmap) { got = append(got, b.Src()) })
	bad := l.Load("broken.png", func(b *Bitmap) { got = append(got, b.Src()) })
	missing := l.Load("missing.png", nil)

	assert.Equal(t, 0, ok.Width(), "nothing lands before delivery")
	assert.Equal(t, 3, l.Pending())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, l.Wait(ctx))

	assert.Equal(t, []string{"prize.png"}, got)
	assert.True(t, ok.Loaded())
	assert.Equal(t, 7, ok.Width())
	assert.Equal(t, 3, ok.Height())
	assert.False(t, bad.Loaded())
	assert.False(t, missing.Loaded())
	assert.Equal(t, 0, l.Pending())
}

func TestImageLoaderPoll(t *testing.T) {
	l := NewImageLoader(fstest.MapFS{"a.png": {Data: pngBytes(t, 2, 2)}}, logx.NewNopLogx())
	b := l.Load("a.png", nil)
	assert.Eventually(t, func() bool {
		l.Poll()
		return b.Loaded()
	}, 5*time.Second, 5*time.Millisecond)
	assert.Equal(t, 0, l.Poll())
}

func TestImageLoaderCloseReleasesLoads(t *testing.T) {
	data := pngBytes(t, 2, 2)
	fsys := fstest.MapFS{}
	for i := 0; i < 40; i++ {
		fsys["img"+strconv.Itoa(i)+".png"] = &fstest.MapFile{Data: data}
	}
	baseline := runtime.NumGoroutine()

	l := NewImageLoader(fsys, logx.NewNopLogx())
	var bitmaps []*Bitmap
	for name := range fsys {
		bitmaps = append(bitmaps, l.Load(name, func(*Bitmap) { t.Error("delivered after close") }))
	}
	assert.Equal(t, 40, l.Pending())

	l.Close()
	l.Close()
	assert.Equal(t, 0, l.Pending())
	assert.Eventually(t, func() bool {
		return runtime.NumGoroutine() <= baseline
	}, 5*time.Second, 5*time.Millisecond, "loads blocked after close")

	assert.Equal(t, 0, l.Poll())
	require.NoError(t, l.Wait(context.Background()))
	for _, b := range bitmaps {
		assert.False(t, b.Loaded())
	}
	late := l.Load("img0.png", nil)
	assert.Equal(t, 0, l.Pending())
	assert.False(t, late.Loaded())
}

func TestNilBitmapReadsEmpty(t *testing.T) {
	var b *Bitmap
	assert.Equal(t, 0, b.Width())
	assert.Nil(t, b.Image())
	assert.False(t, b.Loaded())
}

func TestFontCache(t *testing.T) {
	fc, err := NewFontCache()
	require.NoError(t, err)
	defer fc.Close()

	f := render.Font{Family: "Arial", Weight: "bold", Size: 20}
	a, err := fc.Face(f)
	require.NoError(t, err)
	b, err := fc.Face(f)
	require.NoError(t, err)
	assert.Same(t, a, b)

	m := a.Metrics()
	assert.Greater(t, m.Height.Ceil(), 0)

	_, err = fc.Face(render.Font{Family: "Arial", Size: 0})
	assert.Error(t, err)

	assert.Equal(t, "sans-bold", fontKey(f))
	assert.Equal(t, "mono", fontKey(render.Font{Family: "Courier New", Weight: "normal"}))
	assert.Equal(t, "sans-bold", fontKey(render.Font{Family: "Verdana", Weight: "700"}))
}

package cli

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"os"
)

// GIFRecorder collects canvas snapshots into an animated gif.
type GIFRecorder struct {
	anim gif.GIF
	fps  int
}

func NewGIFRecorder(fps int) *GIFRecorder {
	if fps <= 0 {
		fps = 20
	}
	return &GIFRecorder{fps: fps}
}

// AddFrame quantizes img into a new paletted frame; img may be reused by
// the caller afterwards.
func (g *GIFRecorder) AddFrame(img image.Image) {
	b := img.Bounds()
	frame := image.NewPaletted(b, palette.Plan9)
	draw.FloydSteinberg.Draw(frame, b, img, b.Min)
	g.anim.Image = append(g.anim.Image, frame)
	g.anim.Delay = append(g.anim.Delay, 100/g.fps)
}

func (g *GIFRecorder) Len() int {
	return len(g.anim.Image)
}

func (g *GIFRecorder) Encode(w io.Writer) error {
	if len(g.anim.Image) == 0 {
		return fmt.Errorf("error encode gif: no frames")
	}
	return gif.EncodeAll(w, &g.anim)
}

func (g *GIFRecorder) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error create gif: %w", err)
	}
	if err := g.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

package render

import (
	"image"
	"image/color"
	"math"

	"spinwheel/src/base"
	"spinwheel/src/logx"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// FaceSource hands out font faces for a Font request.
type FaceSource interface {
	Face(f Font) (font.Face, error)
}

type ggState struct {
	fill      color.Color
	stroke    color.Color
	lineWidth float64
	align     base.TextAlign
	baseline  base.TextBaseline
	font      Font
	applied   Font // face currently set on dc, restored with it by Pop
}

// GGCanvas adapts a fogleman/gg context to Canvas. gg keeps one colour for
// both fill and stroke, so the styles live here and are applied per call.
type GGCanvas struct {
	dc     *gg.Context
	faces  FaceSource
	logger logx.Logger
	state  ggState
	stack  []ggState
}

func NewGGCanvas(w, h int, faces FaceSource, logger logx.Logger) *GGCanvas {
	return NewGGCanvasFor(gg.NewContext(w, h), faces, logger)
}

func NewGGCanvasFor(dc *gg.Context, faces FaceSource, logger logx.Logger) *GGCanvas {
	return &GGCanvas{
		dc:     dc,
		faces:  faces,
		logger: logger,
		state: ggState{
			fill:      color.Black,
			stroke:    color.Black,
			lineWidth: 1,
			align:     base.TextAlignLeft,
			baseline:  base.BaselineAlphabetic,
		},
	}
}

// Context exposes the gg context for overlays drawn outside the wheel.
func (c *GGCanvas) Context() *gg.Context {
	return c.dc
}

func (c *GGCanvas) Image() image.Image {
	return c.dc.Image()
}

func (c *GGCanvas) SavePNG(path string) error {
	return c.dc.SavePNG(path)
}

func (c *GGCanvas) Size() (int, int) {
	return c.dc.Width(), c.dc.Height()
}

func (c *GGCanvas) Clear() {
	c.dc.Push()
	c.dc.SetColor(color.Transparent)
	c.dc.Clear()
	c.dc.Pop()
}

func (c *GGCanvas) Save() {
	c.dc.Push()
	c.stack = append(c.stack, c.state)
}

func (c *GGCanvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.dc.Pop()
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *GGCanvas) Translate(x, y float64) {
	c.dc.Translate(x, y)
}

func (c *GGCanvas) Rotate(radians float64) {
	c.dc.Rotate(radians)
}

func (c *GGCanvas) BeginPath() {
	c.dc.ClearPath()
}

func (c *GGCanvas) MoveTo(x, y float64) {
	c.dc.MoveTo(x, y)
}

func (c *GGCanvas) LineTo(x, y float64) {
	c.dc.LineTo(x, y)
}

// Arc follows the canvas rule: clockwise arcs sweep forward from start to
// end, anticlockwise ones backward. gg just interpolates start..end.
func (c *GGCanvas) Arc(cx, cy, r, startRad, endRad float64, anticlockwise bool) {
	if !anticlockwise && endRad < startRad {
		endRad += 2 * math.Pi * math.Ceil((startRad-endRad)/(2*math.Pi))
	}
	if anticlockwise && endRad > startRad {
		endRad -= 2 * math.Pi * math.Ceil((endRad-startRad)/(2*math.Pi))
	}
	c.dc.DrawArc(cx, cy, r, startRad, endRad)
}

func (c *GGCanvas) ClosePath() {
	c.dc.ClosePath()
}

func (c *GGCanvas) Fill() {
	c.dc.SetColor(c.state.fill)
	c.dc.FillPreserve()
}

func (c *GGCanvas) Stroke() {
	c.dc.SetColor(c.state.stroke)
	c.dc.SetLineWidth(c.state.lineWidth)
	c.dc.StrokePreserve()
}

func (c *GGCanvas) SetFillStyle(col color.Color) {
	c.state.fill = col
}

func (c *GGCanvas) SetStrokeStyle(col color.Color) {
	c.state.stroke = col
}

func (c *GGCanvas) SetLineWidth(w float64) {
	c.state.lineWidth = w
}

func (c *GGCanvas) SetFont(f Font) {
	c.state.font = f
}

func (c *GGCanvas) SetTextAlign(a base.TextAlign) {
	c.state.align = a
}

func (c *GGCanvas) SetTextBaseline(b base.TextBaseline) {
	c.state.baseline = b
}

func (c *GGCanvas) FillText(s string, x, y float64) {
	if !c.applyFont() {
		return
	}
	ax, ay := c.anchors()
	c.dc.SetColor(c.state.fill)
	c.dc.DrawStringAnchored(s, x, y, ax, ay)
}

// StrokeText approximates an outline with offset copies of the glyphs; gg
// has no glyph paths to stroke.
func (c *GGCanvas) StrokeText(s string, x, y float64) {
	if !c.applyFont() {
		return
	}
	ax, ay := c.anchors()
	d := math.Max(c.state.lineWidth/2, 0.5)
	c.dc.SetColor(c.state.stroke)
	for _, off := range [][2]float64{{-d, -d}, {0, -d}, {d, -d}, {-d, 0}, {d, 0}, {-d, d}, {0, d}, {d, d}} {
		c.dc.DrawStringAnchored(s, x+off[0], y+off[1], ax, ay)
	}
}

func (c *GGCanvas) DrawImage(img image.Image, x, y, w, h float64) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	c.dc.Push()
	c.dc.Translate(x, y)
	c.dc.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	c.dc.DrawImage(img, -b.Min.X, -b.Min.Y)
	c.dc.Pop()
}

func (c *GGCanvas) applyFont() bool {
	if c.faces == nil {
		return false
	}
	if c.state.font == c.state.applied {
		return true
	}
	face, err := c.faces.Face(c.state.font)
	if err != nil {
		c.logger.Errorf("font %+v: %v", c.state.font, err)
		return false
	}
	c.dc.SetFontFace(face)
	c.state.applied = c.state.font
	return true
}

// anchors maps align/baseline onto gg's DrawStringAnchored fractions.
func (c *GGCanvas) anchors() (float64, float64) {
	ax := 0.0
	switch c.state.align {
	case base.TextAlignCenter:
		ax = 0.5
	case base.TextAlignRight:
		ax = 1
	}
	ay := 0.0
	switch c.state.baseline {
	case base.BaselineTop:
		ay = 1
	case base.BaselineMiddle:
		ay = 0.5
	}
	return ax, ay
}

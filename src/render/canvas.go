// Package render is the drawing backend the wheel paints through: a small
// 2D canvas surface with scoped save/restore.
package render

import (
	"image"
	"image/color"

	"spinwheel/src/base"
)

// Font describes a text face request. Size is in pixels.
type Font struct {
	Family string
	Weight string
	Size   float64
}

// Canvas is the subset of a 2D context the wheel needs. Save and Restore
// must nest; every rotated draw is bracketed by them.
type Canvas interface {
	Size() (w, h int)
	Clear()

	Save()
	Restore()
	Translate(x, y float64)
	Rotate(radians float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Arc(cx, cy, r, startRad, endRad float64, anticlockwise bool)
	ClosePath()
	Fill()
	Stroke()

	SetFillStyle(c color.Color)
	SetStrokeStyle(c color.Color)
	SetLineWidth(w float64)

	SetFont(f Font)
	SetTextAlign(a base.TextAlign)
	SetTextBaseline(b base.TextBaseline)
	FillText(s string, x, y float64)
	StrokeText(s string, x, y float64)

	DrawImage(img image.Image, x, y, w, h float64)
}

// RotateAbout turns the canvas by radians around (cx, cy).
func RotateAbout(c Canvas, cx, cy, radians float64) {
	c.Translate(cx, cy)
	c.Rotate(radians)
	c.Translate(-cx, -cy)
}

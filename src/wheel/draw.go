package wheel

import (
	"fmt"
	"image/color"
	"math"

	"spinwheel/src/base"
	"spinwheel/src/logic/angles"
	"spinwheel/src/logic/layout"
	"spinwheel/src/render"
)

// Draw renders the whole wheel, clearing first if ClearTheCanvas is set.
func (w *Wheel) Draw() {
	w.draw(w.Options.ClearTheCanvas)
}

func (w *Wheel) draw(clear bool) {
	if w.canvas == nil {
		return
	}
	if w.Options.DrawMode.String() == "invalid" {
		w.logger.Errorf("%v: %d", base.ErrUnknownDrawMode, w.Options.DrawMode)
		return
	}
	if clear {
		w.canvas.Clear()
	}

	switch w.Options.DrawMode {
	case base.DrawImage:
		if err := w.drawWheelImage(); err != nil {
			w.logger.Errorf("wheel image: %v", err)
		}
		w.drawTextIfEnabled()
		if w.Options.ImageOverlay {
			w.drawSegments()
		}
	case base.DrawSegmentImage:
		w.drawSegmentImages()
		w.drawTextIfEnabled()
		if w.Options.ImageOverlay {
			w.drawSegments()
		}
	case base.DrawCode:
		w.drawSegments()
		w.drawTextIfEnabled()
	}

	if p := w.Options.Pins; p != nil && p.Visible {
		w.drawPins()
	}
	if w.Options.PointerGuide.Display {
		w.drawPointerGuide()
	}
}

func (w *Wheel) drawTextIfEnabled() {
	if w.Options.DrawText {
		w.drawSegmentText()
	}
}

// color parses a style string; "" means the part is not painted.
func (w *Wheel) color(style string) (color.Color, bool) {
	if style == "" {
		return nil, false
	}
	c, err := render.ParseColor(style)
	if err != nil {
		w.logger.Warnf("style %q: %v", style, err)
		return nil, false
	}
	return c, true
}

func (w *Wheel) scaledGeometry() layout.Geometry {
	s := w.scale()
	return layout.Geometry{
		CenterX:     w.centerX() * s,
		CenterY:     w.centerY() * s,
		InnerRadius: w.Options.InnerRadius * s,
		OuterRadius: w.outerRadius() * s,
	}
}

func (w *Wheel) drawSegments() {
	g := w.scaledGeometry()
	rot := w.Options.RotationAngle
	c := w.canvas

	for _, s := range w.segments {
		st := w.resolveStyle(s)
		fill, doFill := w.color(st.fillStyle)
		stroke, doStroke := w.color(st.strokeStyle)
		if !doFill && !doStroke {
			continue
		}
		if doFill {
			c.SetFillStyle(fill)
		}
		if doStroke {
			c.SetStrokeStyle(stroke)
		}
		c.SetLineWidth(st.lineWidth)

		start := angles.ToCanvasRad(s.startAngle, rot)
		end := angles.ToCanvasRad(s.endAngle, rot)

		c.BeginPath()
		if g.InnerRadius == 0 {
			c.MoveTo(g.CenterX, g.CenterY)
		}
		c.Arc(g.CenterX, g.CenterY, g.OuterRadius, start, end, false)
		if g.InnerRadius > 0 {
			c.Arc(g.CenterX, g.CenterY, g.InnerRadius, end, start, true)
		} else {
			c.LineTo(g.CenterX, g.CenterY)
		}
		if doFill {
			c.Fill()
		}
		if doStroke {
			c.Stroke()
		}
	}
}

func (w *Wheel) drawSegmentText() {
	g := w.scaledGeometry()
	scale := w.scale()
	c := w.canvas

	for i, s := range w.segments {
		if s.Options.Text == "" {
			continue
		}
		st := w.resolveStyle(s)
		out, err := layout.Segment(layout.Request{
			Orientation: st.orientation,
			Alignment:   st.alignment,
			Direction:   st.direction,
			Span:        s.Span(),
			Rotation:    w.Options.RotationAngle,
			Text:        s.Options.Text,
		}, g, layout.Style{FontSize: st.fontSize * scale, Margin: st.margin * scale})
		if err != nil {
			w.logger.Errorf("segment %d text: %v", i, err)
			continue
		}

		fill, doFill := w.color(st.textFill)
		stroke, doStroke := w.color(st.textStroke)
		c.SetFont(render.Font{Family: st.fontFamily, Weight: st.fontWeight, Size: st.fontSize * scale})
		if doFill {
			c.SetFillStyle(fill)
		}
		if doStroke {
			c.SetStrokeStyle(stroke)
		}
		c.SetLineWidth(st.textWidth)

		for _, in := range out {
			c.Save()
			render.RotateAbout(c, g.CenterX, g.CenterY, angles.DegToRad(in.Angle))
			c.SetTextAlign(in.Align)
			c.SetTextBaseline(in.Baseline)
			// outline first so the fill sits on top of it
			if doStroke {
				c.StrokeText(in.Text, in.X, in.Y)
			}
			if doFill {
				c.FillText(in.Text, in.X, in.Y)
			}
			c.Restore()
		}
	}
}

func (w *Wheel) drawWheelImage() error {
	if w.image == nil {
		return nil
	}
	if !w.image.Loaded() {
		return fmt.Errorf("%w: %s", base.ErrImageNotLoaded, w.image.Src())
	}
	g := w.scaledGeometry()
	iw := float64(w.image.Width()) * w.scale()
	ih := float64(w.image.Height()) * w.scale()

	c := w.canvas
	c.Save()
	render.RotateAbout(c, g.CenterX, g.CenterY, angles.DegToRad(w.Options.RotationAngle))
	c.DrawImage(w.image.Image(), g.CenterX-iw/2, g.CenterY-ih/2, iw, ih)
	c.Restore()
	return nil
}

func (w *Wheel) drawSegmentImages() {
	for i, s := range w.segments {
		if err := w.drawSegmentImage(s); err != nil {
			w.logger.Errorf("segment %d image: %v", i, err)
		}
	}
}

// drawSegmentImage places the image against the wheel center so that its
// facing side points outward through the middle of the segment.
func (w *Wheel) drawSegmentImage(s *Segment) error {
	if s.bitmap == nil {
		return nil
	}
	if !s.bitmap.Loaded() {
		return fmt.Errorf("%w: %s", base.ErrImageNotLoaded, s.bitmap.Src())
	}
	st := w.resolveStyle(s)
	g := w.scaledGeometry()
	iw := float64(s.bitmap.Width()) * w.scale()
	ih := float64(s.bitmap.Height()) * w.scale()
	half := s.Span().Size() / 2

	var left, top, angle float64
	switch st.imageDirection {
	case base.FacingS:
		left, top = g.CenterX-iw/2, g.CenterY
		angle = s.startAngle + 180 + half
	case base.FacingE:
		left, top = g.CenterX, g.CenterY-ih/2
		angle = s.startAngle + 270 + half
	case base.FacingW:
		left, top = g.CenterX-iw, g.CenterY-ih/2
		angle = s.startAngle + 90 + half
	case base.FacingN:
		left, top = g.CenterX-iw/2, g.CenterY-ih
		angle = s.startAngle + half
	default:
		return fmt.Errorf("%w: %d", base.ErrUnknownImageDirection, st.imageDirection)
	}

	c := w.canvas
	c.Save()
	render.RotateAbout(c, g.CenterX, g.CenterY, angles.DegToRad(w.Options.RotationAngle+angle))
	c.DrawImage(s.bitmap.Image(), left, top, iw, ih)
	c.Restore()
	return nil
}

func (w *Wheel) drawPins() {
	p := w.Options.Pins
	if p.Number <= 0 {
		return
	}
	g := w.scaledGeometry()
	radius, margin := p.OuterRadius, p.Margin
	if p.Responsive {
		radius *= w.scale()
		margin *= w.scale()
	}
	fill, doFill := w.color(p.FillStyle)
	stroke, doStroke := w.color(p.StrokeStyle)
	spacing := 360 / float64(p.Number)

	c := w.canvas
	for i := 0; i < p.Number; i++ {
		c.Save()
		if doFill {
			c.SetFillStyle(fill)
		}
		if doStroke {
			c.SetStrokeStyle(stroke)
		}
		c.SetLineWidth(p.LineWidth)
		render.RotateAbout(c, g.CenterX, g.CenterY, angles.DegToRad(float64(i)*spacing+w.Options.RotationAngle))

		c.BeginPath()
		c.Arc(g.CenterX, g.CenterY-g.OuterRadius+radius+margin, radius, 0, 2*math.Pi, false)
		if doFill {
			c.Fill()
		}
		if doStroke {
			c.Stroke()
		}
		c.Restore()
	}
}

func (w *Wheel) drawPointerGuide() {
	pg := w.Options.PointerGuide
	stroke, ok := w.color(pg.StrokeStyle)
	if !ok {
		return
	}
	g := w.scaledGeometry()
	c := w.canvas
	c.Save()
	render.RotateAbout(c, g.CenterX, g.CenterY, angles.DegToRad(w.Options.PointerAngle))
	c.SetStrokeStyle(stroke)
	c.SetLineWidth(pg.LineWidth)
	c.BeginPath()
	c.MoveTo(g.CenterX, g.CenterY)
	c.LineTo(g.CenterX, -(g.OuterRadius / 4))
	c.Stroke()
	c.Restore()
}

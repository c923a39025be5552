package layout

import "spinwheel/src/base"

// referenceRadius is where referenceSpacing degrees per character (per 10px of
// font) look right; other radii scale the spacing inversely.
const (
	referenceRadius  = 100.0
	referenceSpacing = 4.0
)

// AnglePerChar is the angular advance between curved characters.
func AnglePerChar(fontSize, radius float64) float64 {
	return referenceSpacing * (fontSize / 10) * (referenceRadius / radius)
}

// curved walks the characters around an arc, one rotated instruction each,
// centered on the segment middle.
func curved(req Request, chars []rune, lineOffset float64, lineCount int, reversed bool, g Geometry, st Style) []Instruction {
	n := len(chars)
	if n == 0 {
		return nil
	}
	extraLines := st.FontSize * float64(lineCount-1)

	var (
		radius   float64
		baseline base.TextBaseline
	)
	switch req.Alignment {
	case base.AlignInner:
		radius = g.InnerRadius + st.Margin
		if reversed {
			baseline = base.BaselineTop
		} else {
			baseline = base.BaselineBottom
			// later lines move inwards, start far enough out to stay off the hole
			radius += extraLines
		}
	case base.AlignOuter:
		radius = g.OuterRadius - st.Margin
		if reversed {
			baseline = base.BaselineBottom
			// later lines move outwards, start far enough in to stay on the wheel
			radius -= extraLines
		} else {
			baseline = base.BaselineTop
		}
	default:
		radius = g.InnerRadius + st.Margin + g.band()/2
		baseline = base.BaselineMiddle
	}

	var (
		perChar   float64
		drawAngle float64
		align     base.TextAlign
	)
	if n > 1 {
		align = base.TextAlignLeft
		perChar = AnglePerChar(st.FontSize, radius)
		totalArc := perChar * float64(n)
		drawAngle = req.Span.Start + (req.Span.Size()/2 - totalArc/2)
	} else {
		align = base.TextAlignCenter
		drawAngle = req.Span.Mid()
	}
	drawAngle += req.Rotation

	y := g.CenterY - radius + lineOffset
	if reversed {
		drawAngle -= 180
		y = g.CenterY + radius + lineOffset
	}

	out := make([]Instruction, 0, n)
	for k := 0; k < n; k++ {
		c := k
		if reversed {
			c = n - 1 - k
		}
		out = append(out, Instruction{
			Text:     string(chars[c]),
			X:        g.CenterX,
			Y:        y,
			Angle:    drawAngle,
			Align:    align,
			Baseline: baseline,
		})
		drawAngle += perChar
	}
	return out
}

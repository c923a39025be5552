package layout

import "spinwheel/src/base"

// verticalStep shaves a ninth off the font size; a full font size between
// stacked characters reads as oversized gaps.
func verticalStep(fontSize float64) float64 {
	return fontSize - fontSize/9
}

// vertical stacks one character per line along the segment's radius. Which
// end the stack starts from, and the character order, flip between inner and
// outer so the word still reads top to bottom.
func vertical(req Request, chars []rune, lineOffset float64, reversed bool, g Geometry, st Style) []Instruction {
	n := len(chars)
	if n == 0 {
		return nil
	}
	yInc := verticalStep(st.FontSize)
	x := g.CenterX + lineOffset
	angle := req.Span.Mid() + req.Rotation

	centerAdj := 0.0
	if n > 1 {
		centerAdj = yInc * float64(n-1) / 2
	}

	var (
		baseline base.TextBaseline
		y        float64
		step     float64
		backward bool
	)
	if !reversed {
		switch req.Alignment {
		case base.AlignOuter:
			baseline, y, step = base.BaselineTop, g.CenterY-g.OuterRadius+st.Margin, yInc
		case base.AlignInner:
			baseline, y, step, backward = base.BaselineBottom, g.CenterY-g.InnerRadius-st.Margin, -yInc, true
		default:
			baseline, step = base.BaselineMiddle, yInc
			y = g.CenterY - g.InnerRadius - g.band()/2 - centerAdj - st.Margin
		}
	} else {
		angle -= 180
		switch req.Alignment {
		case base.AlignOuter:
			baseline, y, step, backward = base.BaselineBottom, g.CenterY+g.OuterRadius-st.Margin, -yInc, true
		case base.AlignInner:
			baseline, y, step = base.BaselineTop, g.CenterY+g.InnerRadius+st.Margin, yInc
		default:
			baseline, step, backward = base.BaselineMiddle, -yInc, true
			y = g.CenterY + g.InnerRadius + g.band()/2 + centerAdj + st.Margin
		}
	}

	out := make([]Instruction, 0, n)
	for k := 0; k < n; k++ {
		c := k
		if backward {
			c = n - 1 - k
		}
		out = append(out, Instruction{
			Text:     string(chars[c]),
			X:        x,
			Y:        y,
			Angle:    angle,
			Align:    base.TextAlignCenter,
			Baseline: baseline,
		})
		y += step
	}
	return out
}

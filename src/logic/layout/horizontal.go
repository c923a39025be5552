package layout

import (
	"spinwheel/src/base"
	"spinwheel/src/logic/angles"
)

// horizontal draws the whole line along the radius through the segment middle.
// The -90 moves wheel space (0 at twelve) onto the canvas x axis (0 at three).
func horizontal(req Request, line string, lineOffset float64, reversed bool, g Geometry, st Style) Instruction {
	ins := Instruction{
		Text:     line,
		Y:        g.CenterY + lineOffset,
		Angle:    req.Span.Mid() + req.Rotation - angles.CanvasOffset,
		Baseline: base.BaselineMiddle,
	}

	if !reversed {
		switch req.Alignment {
		case base.AlignInner:
			ins.Align = base.TextAlignLeft
			ins.X = g.CenterX + g.InnerRadius + st.Margin
		case base.AlignOuter:
			ins.Align = base.TextAlignRight
			ins.X = g.CenterX + g.OuterRadius - st.Margin
		default:
			ins.Align = base.TextAlignCenter
			ins.X = g.CenterX + g.InnerRadius + g.band()/2 + st.Margin
		}
		return ins
	}

	// drawn on the opposite side of the center with the canvas turned half way
	ins.Angle -= 180
	switch req.Alignment {
	case base.AlignInner:
		ins.Align = base.TextAlignRight
		ins.X = g.CenterX - g.InnerRadius - st.Margin
	case base.AlignOuter:
		ins.Align = base.TextAlignLeft
		ins.X = g.CenterX - g.OuterRadius + st.Margin
	default:
		ins.Align = base.TextAlignCenter
		ins.X = g.CenterX - g.InnerRadius - g.band()/2 - st.Margin
	}
	return ins
}

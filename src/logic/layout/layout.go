// Package layout places segment text around the wheel. It produces plain
// drawing instructions; painting them is the caller's job.
package layout

import (
	"fmt"
	"strings"

	"spinwheel/src/base"
)

// LineBreak splits segment text into lines.
const LineBreak = "\n"

// Geometry is the scaled wheel geometry text is laid out against.
type Geometry struct {
	CenterX     float64
	CenterY     float64
	InnerRadius float64
	OuterRadius float64
}

// Style carries the scaled font size and margin.
type Style struct {
	FontSize float64
	Margin   float64
}

// Request is one segment's text plus the resolved layout options.
type Request struct {
	Orientation base.Orientation
	Alignment   base.Alignment
	Direction   base.Direction
	Span        base.Span
	Rotation    float64
	Text        string
}

// Instruction draws Text at (X, Y) after rotating the canvas by Angle degrees
// about the wheel center.
type Instruction struct {
	Text     string
	X        float64
	Y        float64
	Angle    float64
	Align    base.TextAlign
	Baseline base.TextBaseline
}

// Segment lays out every line of a segment's text.
func Segment(req Request, g Geometry, st Style) ([]Instruction, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	if req.Text == "" {
		return nil, nil
	}

	lines := strings.Split(req.Text, LineBreak)
	lineOffset := -(st.FontSize * (float64(len(lines)) / 2)) + st.FontSize/2
	if req.Orientation == base.Curved && req.Alignment != base.AlignCenter {
		lineOffset = 0
	}

	var out []Instruction
	for _, line := range lines {
		out = append(out, Line(req, line, lineOffset, len(lines), g, st)...)
		lineOffset += st.FontSize
	}
	return out, nil
}

// Line lays out a single line. lineOffset shifts it along the segment's
// local height axis and lineCount is needed by curved inner/outer text to
// keep the block inside the ring. Options are assumed valid.
func Line(req Request, line string, lineOffset float64, lineCount int, g Geometry, st Style) []Instruction {
	reversed := req.Direction == base.Reversed
	switch req.Orientation {
	case base.Horizontal:
		return []Instruction{horizontal(req, line, lineOffset, reversed, g, st)}
	case base.Vertical:
		return vertical(req, []rune(line), lineOffset, reversed, g, st)
	case base.Curved:
		return curved(req, []rune(line), lineOffset, lineCount, reversed, g, st)
	}
	return nil
}

func validate(req Request) error {
	switch req.Orientation {
	case base.Horizontal, base.Vertical, base.Curved:
	default:
		return fmt.Errorf("%w: %d", base.ErrUnknownOrientation, req.Orientation)
	}
	switch req.Alignment {
	case base.AlignInner, base.AlignOuter, base.AlignCenter:
	default:
		return fmt.Errorf("%w: %d", base.ErrUnknownAlignment, req.Alignment)
	}
	switch req.Direction {
	case base.Normal, base.Reversed:
	default:
		return fmt.Errorf("%w: %d", base.ErrUnknownDirection, req.Direction)
	}
	return nil
}

// band is the distance from inner to outer radius.
func (g Geometry) band() float64 {
	return g.OuterRadius - g.InnerRadius
}

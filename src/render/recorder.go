package render

import (
	"fmt"
	"image"
	"image/color"

	"spinwheel/src/base"
)

// Call is one recorded canvas primitive.
type Call struct {
	Op   string
	Args []float64
	Text string
}

// Recorder is a Canvas that draws nothing and remembers every call.
type Recorder struct {
	W, H     int
	Calls    []Call
	depth    int
	MaxDepth int
	// Unbalanced counts Restore calls without a matching Save.
	Unbalanced int
}

func NewRecorder(w, h int) *Recorder {
	return &Recorder{W: w, H: h}
}

func (r *Recorder) Depth() int {
	return r.depth
}

func (r *Recorder) Reset() {
	r.Calls = nil
	r.depth, r.MaxDepth, r.Unbalanced = 0, 0, 0
}

// Ops filters the recording down to the named primitives.
func (r *Recorder) Ops(names ...string) []Call {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	var out []Call
	for _, c := range r.Calls {
		if want[c.Op] {
			out = append(out, c)
		}
	}
	return out
}

func (r *Recorder) rec(op string, text string, args ...float64) {
	r.Calls = append(r.Calls, Call{Op: op, Args: args, Text: text})
}

func (r *Recorder) Size() (int, int) { return r.W, r.H }
func (r *Recorder) Clear()           { r.rec("clear", "") }

func (r *Recorder) Save() {
	r.depth++
	if r.depth > r.MaxDepth {
		r.MaxDepth = r.depth
	}
	r.rec("save", "")
}

func (r *Recorder) Restore() {
	if r.depth == 0 {
		r.Unbalanced++
	} else {
		r.depth--
	}
	r.rec("restore", "")
}

func (r *Recorder) Translate(x, y float64) { r.rec("translate", "", x, y) }
func (r *Recorder) Rotate(rad float64)     { r.rec("rotate", "", rad) }
func (r *Recorder) BeginPath()             { r.rec("beginPath", "") }
func (r *Recorder) MoveTo(x, y float64)    { r.rec("moveTo", "", x, y) }
func (r *Recorder) LineTo(x, y float64)    { r.rec("lineTo", "", x, y) }
func (r *Recorder) ClosePath()             { r.rec("closePath", "") }
func (r *Recorder) Fill()                  { r.rec("fill", "") }
func (r *Recorder) Stroke()                { r.rec("stroke", "") }
func (r *Recorder) SetLineWidth(w float64) { r.rec("lineWidth", "", w) }

func (r *Recorder) Arc(cx, cy, rad, start, end float64, anticlockwise bool) {
	ac := 0.0
	if anticlockwise {
		ac = 1
	}
	r.rec("arc", "", cx, cy, rad, start, end, ac)
}

func (r *Recorder) SetFillStyle(c color.Color)   { r.rec("fillStyle", hex(c)) }
func (r *Recorder) SetStrokeStyle(c color.Color) { r.rec("strokeStyle", hex(c)) }

func (r *Recorder) SetFont(f Font) {
	r.rec("font", f.Weight+" "+f.Family, f.Size)
}

func (r *Recorder) SetTextAlign(a base.TextAlign)       { r.rec("textAlign", "", float64(a)) }
func (r *Recorder) SetTextBaseline(b base.TextBaseline) { r.rec("textBaseline", "", float64(b)) }
func (r *Recorder) FillText(s string, x, y float64)     { r.rec("fillText", s, x, y) }
func (r *Recorder) StrokeText(s string, x, y float64)   { r.rec("strokeText", s, x, y) }

func (r *Recorder) DrawImage(img image.Image, x, y, w, h float64) {
	r.rec("drawImage", "", x, y, w, h)
}

func hex(c color.Color) string {
	if c == nil {
		return ""
	}
	rr, gg, bb, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", rr>>8, gg>>8, bb>>8)
}

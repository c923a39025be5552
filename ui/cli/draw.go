package cli

import (
	"fmt"
	"io"

	"spinwheel/src/render"
	"spinwheel/src/wheel"

	"github.com/lucasb-eyer/go-colorful"
)

// ANSI-code
const (
	reset   = "\033[0m"
	bold    = "\033[1m"
	reverse = "\033[7m"
)

// swatch paints two cells in the segment colour, falling back to a plain
// marker when colours are off or the style does not parse.
func swatch(style string, color bool) string {
	if !color || style == "" {
		return "[]"
	}
	c, err := render.ParseColor(style)
	if err != nil {
		return "[]"
	}
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return "[]"
	}
	r, g, b := cf.RGB255()
	return fmt.Sprintf("\033[48;2;%d;%d;%dm  %s", r, g, b, reset)
}

// PrintSegments lists every segment with its span. highlight marks the
// winner, -1 for none.
func PrintSegments(out io.Writer, w *wheel.Wheel, highlight int, color bool) {
	fmt.Fprintln(out)
	fmt.Fprintf(out, " #  %-4s %-24s %8s %8s\n", "", "text", "start", "end")
	for i, s := range w.Segments() {
		fill := w.Options.FillStyle
		if s.Options.FillStyle != nil {
			fill = *s.Options.FillStyle
		}
		line := fmt.Sprintf("%2d  %s   %-24s %8.1f %8.1f", i, swatch(fill, color), s.Options.Text, s.StartAngle(), s.EndAngle())
		switch {
		case i == highlight && color:
			line = bold + reverse + line + reset
		case i == highlight:
			line += "  <"
		}
		fmt.Fprintln(out, line)
	}
	fmt.Fprintf(out, "rotation %.1f, pointer at %.1f\n", w.RotationPosition(), w.Options.PointerAngle)
}

package render

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

var ErrBadColor = errors.New("bad color")

// ParseColor understands CSS style colours: named (x/image/colornames),
// #rgb / #rrggbb hex, rgb(r,g,b) and rgba(r,g,b,a).
func ParseColor(s string) (color.Color, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return nil, fmt.Errorf("%w: empty", ErrBadColor)
	}
	if v == "transparent" {
		return color.Transparent, nil
	}
	if c, ok := colornames.Map[v]; ok {
		return c, nil
	}
	if strings.HasPrefix(v, "#") {
		c, err := colorful.Hex(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrBadColor, s, err)
		}
		r, g, b := c.RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
	}
	if strings.HasPrefix(v, "rgb") {
		return parseRGBFunc(v, s)
	}
	return nil, fmt.Errorf("%w: %q", ErrBadColor, s)
}

// MustColor is ParseColor for literals known to be valid.
func MustColor(s string) color.Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseRGBFunc(v, orig string) (color.Color, error) {
	v = strings.ReplaceAll(v, " ", "")
	var r, g, b int
	a := 1.0
	var err error
	if strings.HasPrefix(v, "rgba(") {
		_, err = fmt.Sscanf(v, "rgba(%d,%d,%d,%g)", &r, &g, &b, &a)
	} else {
		_, err = fmt.Sscanf(v, "rgb(%d,%d,%d)", &r, &g, &b)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrBadColor, orig, err)
	}
	for _, ch := range []int{r, g, b} {
		if ch < 0 || ch > 255 {
			return nil, fmt.Errorf("%w: %q: channel out of range", ErrBadColor, orig)
		}
	}
	if a < 0 || a > 1 {
		return nil, fmt.Errorf("%w: %q: alpha out of range", ErrBadColor, orig)
	}
	return color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a*255 + 0.5)}, nil
}

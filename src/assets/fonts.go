package assets

import (
	"fmt"
	"strings"

	"spinwheel/src/render"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontCache turns Font requests into faces. Only the bundled Go fonts are
// available: monospace-looking families get Go Mono, everything else Go
// Regular, and "bold" (or a numeric weight of 600+) picks the bold cut.
type FontCache struct {
	fonts map[string]*opentype.Font
	faces map[render.Font]font.Face
}

func NewFontCache() (*FontCache, error) {
	fc := &FontCache{
		fonts: make(map[string]*opentype.Font),
		faces: make(map[render.Font]font.Face),
	}
	for name, ttf := range map[string][]byte{
		"sans":      goregular.TTF,
		"sans-bold": gobold.TTF,
		"mono":      gomono.TTF,
		"mono-bold": gomonobold.TTF,
	} {
		f, err := opentype.Parse(ttf)
		if err != nil {
			return nil, fmt.Errorf("parse %s font: %w", name, err)
		}
		fc.fonts[name] = f
	}
	return fc, nil
}

func (fc *FontCache) Face(f render.Font) (font.Face, error) {
	if f.Size <= 0 {
		return nil, fmt.Errorf("font size must be positive, got %v", f.Size)
	}
	if face, ok := fc.faces[f]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(fc.fonts[fontKey(f)], &opentype.FaceOptions{
		Size:    f.Size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	fc.faces[f] = face
	return face, nil
}

func (fc *FontCache) Close() error {
	for k, face := range fc.faces {
		if err := face.Close(); err != nil {
			return err
		}
		delete(fc.faces, k)
	}
	return nil
}

func fontKey(f render.Font) string {
	fam := strings.ToLower(f.Family)
	key := "sans"
	if strings.Contains(fam, "mono") || strings.Contains(fam, "courier") || strings.Contains(fam, "consol") {
		key = "mono"
	}
	if isBold(f.Weight) {
		key += "-bold"
	}
	return key
}

func isBold(weight string) bool {
	w := strings.ToLower(strings.TrimSpace(weight))
	switch w {
	case "bold", "bolder":
		return true
	case "600", "700", "800", "900":
		return true
	}
	return false
}

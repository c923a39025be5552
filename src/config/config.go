// Package config reads wheel definition files. The format follows the file
// extension: .json, .toml, .yaml or .yml.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var ErrUnknownFormat = errors.New("unknown config format")

type File struct {
	Window       Window        `json:"window" toml:"window" yaml:"window"`
	Sound        Sound         `json:"sound" toml:"sound" yaml:"sound"`
	Wheel        Wheel         `json:"wheel" toml:"wheel" yaml:"wheel"`
	Pins         *Pins         `json:"pins,omitempty" toml:"pins,omitempty" yaml:"pins,omitempty"`
	PointerGuide *PointerGuide `json:"pointerGuide,omitempty" toml:"pointerGuide,omitempty" yaml:"pointerGuide,omitempty"`
	Animation    Animation     `json:"animation" toml:"animation" yaml:"animation"`
	Segments     []Segment     `json:"segments" toml:"segments" yaml:"segments"`
}

type Window struct {
	Width  int    `json:"width" toml:"width" yaml:"width"`
	Height int    `json:"height" toml:"height" yaml:"height"`
	Title  string `json:"title" toml:"title" yaml:"title"`
}

type Sound struct {
	Enabled bool    `json:"enabled" toml:"enabled" yaml:"enabled"`
	Volume  float64 `json:"volume" toml:"volume" yaml:"volume"` // log2 scale, 0 unchanged
}

// Wheel mirrors wheel.Options; nil keeps the built-in default.
type Wheel struct {
	CenterX     *float64 `json:"centerX,omitempty" toml:"centerX,omitempty" yaml:"centerX,omitempty"`
	CenterY     *float64 `json:"centerY,omitempty" toml:"centerY,omitempty" yaml:"centerY,omitempty"`
	OuterRadius *float64 `json:"outerRadius,omitempty" toml:"outerRadius,omitempty" yaml:"outerRadius,omitempty"`
	InnerRadius *float64 `json:"innerRadius,omitempty" toml:"innerRadius,omitempty" yaml:"innerRadius,omitempty"`

	DrawMode       *string  `json:"drawMode,omitempty" toml:"drawMode,omitempty" yaml:"drawMode,omitempty"`
	RotationAngle  *float64 `json:"rotationAngle,omitempty" toml:"rotationAngle,omitempty" yaml:"rotationAngle,omitempty"`
	PointerAngle   *float64 `json:"pointerAngle,omitempty" toml:"pointerAngle,omitempty" yaml:"pointerAngle,omitempty"`
	ScaleFactor    *float64 `json:"scaleFactor,omitempty" toml:"scaleFactor,omitempty" yaml:"scaleFactor,omitempty"`
	ClearTheCanvas *bool    `json:"clearTheCanvas,omitempty" toml:"clearTheCanvas,omitempty" yaml:"clearTheCanvas,omitempty"`
	DrawText       *bool    `json:"drawText,omitempty" toml:"drawText,omitempty" yaml:"drawText,omitempty"`
	ImageOverlay   *bool    `json:"imageOverlay,omitempty" toml:"imageOverlay,omitempty" yaml:"imageOverlay,omitempty"`
	WheelImage     *string  `json:"wheelImage,omitempty" toml:"wheelImage,omitempty" yaml:"wheelImage,omitempty"`
	ImageDirection *string  `json:"imageDirection,omitempty" toml:"imageDirection,omitempty" yaml:"imageDirection,omitempty"`

	FillStyle   *string  `json:"fillStyle,omitempty" toml:"fillStyle,omitempty" yaml:"fillStyle,omitempty"`
	StrokeStyle *string  `json:"strokeStyle,omitempty" toml:"strokeStyle,omitempty" yaml:"strokeStyle,omitempty"`
	LineWidth   *float64 `json:"lineWidth,omitempty" toml:"lineWidth,omitempty" yaml:"lineWidth,omitempty"`

	TextStyle `yaml:",inline"`
}

// TextStyle is shared by the wheel and its segments.
type TextStyle struct {
	TextFontFamily  *string  `json:"textFontFamily,omitempty" toml:"textFontFamily,omitempty" yaml:"textFontFamily,omitempty"`
	TextFontSize    *float64 `json:"textFontSize,omitempty" toml:"textFontSize,omitempty" yaml:"textFontSize,omitempty"`
	TextFontWeight  *string  `json:"textFontWeight,omitempty" toml:"textFontWeight,omitempty" yaml:"textFontWeight,omitempty"`
	TextOrientation *string  `json:"textOrientation,omitempty" toml:"textOrientation,omitempty" yaml:"textOrientation,omitempty"`
	TextAlignment   *string  `json:"textAlignment,omitempty" toml:"textAlignment,omitempty" yaml:"textAlignment,omitempty"`
	TextDirection   *string  `json:"textDirection,omitempty" toml:"textDirection,omitempty" yaml:"textDirection,omitempty"`
	TextMargin      *float64 `json:"textMargin,omitempty" toml:"textMargin,omitempty" yaml:"textMargin,omitempty"`
	TextFillStyle   *string  `json:"textFillStyle,omitempty" toml:"textFillStyle,omitempty" yaml:"textFillStyle,omitempty"`
	TextStrokeStyle *string  `json:"textStrokeStyle,omitempty" toml:"textStrokeStyle,omitempty" yaml:"textStrokeStyle,omitempty"`
	TextLineWidth   *float64 `json:"textLineWidth,omitempty" toml:"textLineWidth,omitempty" yaml:"textLineWidth,omitempty"`
}

type Segment struct {
	Text string `json:"text" toml:"text" yaml:"text"`
	// Size in degrees, or SizePercent of the whole wheel. Neither shares
	// what is left evenly.
	Size        *float64 `json:"size,omitempty" toml:"size,omitempty" yaml:"size,omitempty"`
	SizePercent *float64 `json:"sizePercent,omitempty" toml:"sizePercent,omitempty" yaml:"sizePercent,omitempty"`

	FillStyle   *string  `json:"fillStyle,omitempty" toml:"fillStyle,omitempty" yaml:"fillStyle,omitempty"`
	StrokeStyle *string  `json:"strokeStyle,omitempty" toml:"strokeStyle,omitempty" yaml:"strokeStyle,omitempty"`
	LineWidth   *float64 `json:"lineWidth,omitempty" toml:"lineWidth,omitempty" yaml:"lineWidth,omitempty"`

	TextStyle `yaml:",inline"`

	Image          string  `json:"image,omitempty" toml:"image,omitempty" yaml:"image,omitempty"`
	ImageDirection *string `json:"imageDirection,omitempty" toml:"imageDirection,omitempty" yaml:"imageDirection,omitempty"`
}

type Pins struct {
	Visible     *bool    `json:"visible,omitempty" toml:"visible,omitempty" yaml:"visible,omitempty"`
	Number      *int     `json:"number,omitempty" toml:"number,omitempty" yaml:"number,omitempty"`
	OuterRadius *float64 `json:"outerRadius,omitempty" toml:"outerRadius,omitempty" yaml:"outerRadius,omitempty"`
	FillStyle   *string  `json:"fillStyle,omitempty" toml:"fillStyle,omitempty" yaml:"fillStyle,omitempty"`
	StrokeStyle *string  `json:"strokeStyle,omitempty" toml:"strokeStyle,omitempty" yaml:"strokeStyle,omitempty"`
	LineWidth   *float64 `json:"lineWidth,omitempty" toml:"lineWidth,omitempty" yaml:"lineWidth,omitempty"`
	Margin      *float64 `json:"margin,omitempty" toml:"margin,omitempty" yaml:"margin,omitempty"`
	Responsive  bool     `json:"responsive,omitempty" toml:"responsive,omitempty" yaml:"responsive,omitempty"`
}

type PointerGuide struct {
	Display     bool     `json:"display" toml:"display" yaml:"display"`
	StrokeStyle *string  `json:"strokeStyle,omitempty" toml:"strokeStyle,omitempty" yaml:"strokeStyle,omitempty"`
	LineWidth   *float64 `json:"lineWidth,omitempty" toml:"lineWidth,omitempty" yaml:"lineWidth,omitempty"`
}

type Animation struct {
	Type           string   `json:"type,omitempty" toml:"type,omitempty" yaml:"type,omitempty"`
	Direction      string   `json:"direction,omitempty" toml:"direction,omitempty" yaml:"direction,omitempty"`
	Duration       float64  `json:"duration,omitempty" toml:"duration,omitempty" yaml:"duration,omitempty"`
	Spins          *float64 `json:"spins,omitempty" toml:"spins,omitempty" yaml:"spins,omitempty"`
	StopAngle      *float64 `json:"stopAngle,omitempty" toml:"stopAngle,omitempty" yaml:"stopAngle,omitempty"`
	Repeat         *int     `json:"repeat,omitempty" toml:"repeat,omitempty" yaml:"repeat,omitempty"`
	Yoyo           *bool    `json:"yoyo,omitempty" toml:"yoyo,omitempty" yaml:"yoyo,omitempty"`
	Easing         string   `json:"easing,omitempty" toml:"easing,omitempty" yaml:"easing,omitempty"`
	PropertyName   string   `json:"propertyName,omitempty" toml:"propertyName,omitempty" yaml:"propertyName,omitempty"`
	PropertyValue  float64  `json:"propertyValue,omitempty" toml:"propertyValue,omitempty" yaml:"propertyValue,omitempty"`
	ClearTheCanvas *bool    `json:"clearTheCanvas,omitempty" toml:"clearTheCanvas,omitempty" yaml:"clearTheCanvas,omitempty"`
	SoundTrigger   string   `json:"soundTrigger,omitempty" toml:"soundTrigger,omitempty" yaml:"soundTrigger,omitempty"`
}

func ptr[T any](v T) *T { return &v }

// Default is the demo wheel used when no file is given.
func Default() File {
	colors := []string{"#eae56f", "#89f26e", "#7de6ef", "#e7706f"}
	f := File{
		Window: defaultWindow(),
		Sound:  Sound{Enabled: true},
		Wheel: Wheel{
			OuterRadius: ptr(212.0),
			InnerRadius: ptr(75.0),
			TextStyle:   TextStyle{TextFontSize: ptr(24.0)},
		},
		Pins:      &Pins{Number: ptr(24)},
		Animation: Animation{Type: "spinToStop", Duration: 5, Spins: ptr(8.0), SoundTrigger: "pin"},
	}
	for i := 0; i < 8; i++ {
		f.Segments = append(f.Segments, Segment{
			Text:      fmt.Sprintf("Prize %d", i+1),
			FillStyle: ptr(colors[i%len(colors)]),
		})
	}
	return f
}

func defaultWindow() Window {
	return Window{Width: 500, Height: 500, Title: "spinwheel"}
}

// Load reads path. A path that does not exist yields Default.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		def := Default()
		return &def, nil
	} else if err != nil {
		return nil, err
	}

	f, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes data in the format named by ext (".json", "toml", ...).
func Parse(data []byte, ext string) (*File, error) {
	var f File
	var err error
	switch format(ext) {
	case "json":
		err = json.Unmarshal(data, &f)
	case "toml":
		err = toml.Unmarshal(data, &f)
	case "yaml":
		err = yaml.Unmarshal(data, &f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("error decode config: %w", err)
	}
	correctableConfig(&f)
	return &f, nil
}

func (f *File) Save(path string) error {
	var data []byte
	var err error
	switch format(filepath.Ext(path)) {
	case "json":
		data, err = json.MarshalIndent(f, "", "    ")
	case "toml":
		data, err = toml.Marshal(f)
	case "yaml":
		data, err = yaml.Marshal(f)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func format(ext string) string {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "json":
		return "json"
	case "toml":
		return "toml"
	case "yaml", "yml":
		return "yaml"
	}
	return ""
}

// correctableConfig repairs cosmetic values that cannot be right. Enum
// strings are left alone and reported when the wheel is built.
func correctableConfig(f *File) {
	def := defaultWindow()
	if f.Window.Width < 100 || f.Window.Height < 100 {
		f.Window.Width = def.Width
		f.Window.Height = def.Height
	}
	if f.Window.Title == "" {
		f.Window.Title = def.Title
	}
	if f.Wheel.ScaleFactor != nil && *f.Wheel.ScaleFactor <= 0 {
		f.Wheel.ScaleFactor = nil
	}
	if f.Animation.Duration < 0 {
		f.Animation.Duration = 0
	}
}

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"spinwheel/src/base"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jsonWheel = `{
    "window": {"width": 640, "height": 40},
    "wheel": {"innerRadius": 30, "textFontSize": 16, "textOrientation": "curved", "fillStyle": "white"},
    "pins": {"number": 12},
    "animation": {"type": "spinAndBack", "direction": "anti-clockwise", "soundTrigger": "pin"},
    "segments": [
        {"text": "Jackpot", "size": 40, "fillStyle": "gold"},
        {"text": "Try again", "textDirection": "reversed"},
        {"text": "Half", "sizePercent": 50}
    ]
}`

const tomlWheel = `
[wheel]
drawMode = "segmentImage"
imageDirection = "S"

[[segments]]
text = "one"
image = "one.png"

[[segments]]
text = "two"
imageDirection = "E"
textAlignment = "outer"
`

const yamlWheel = `
wheel:
  outerRadius: 150
  textFontWeight: normal
  textMargin: 4
pointerGuide:
  display: true
animation:
  type: spinOngoing
  duration: 3
segments:
  - text: a
    textOrientation: vertical
  - text: b
`

func TestParseJSON(t *testing.T) {
	f, err := Parse([]byte(jsonWheel), ".json")
	require.NoError(t, err)
	assert.Equal(t, 500, f.Window.Width, "too small a window falls back to the default")
	assert.Equal(t, "spinwheel", f.Window.Title)

	o, err := f.WheelOptions()
	require.NoError(t, err)
	assert.Equal(t, 30.0, o.InnerRadius)
	assert.Equal(t, 16.0, o.TextFontSize)
	assert.Equal(t, base.Curved, o.TextOrientation)
	assert.Equal(t, "white", o.FillStyle)
	assert.Equal(t, "black", o.StrokeStyle)
	assert.Nil(t, o.OuterRadius)
	require.NotNil(t, o.Pins)
	assert.Equal(t, 12, o.Pins.Number)
	assert.Equal(t, 3.0, o.Pins.OuterRadius)

	segs, err := f.SegmentOptions()
	require.NoError(t, err)
	require.Len(t, segs, 3)
	assert.Equal(t, 40.0, *segs[0].Size)
	assert.Equal(t, "gold", *segs[0].FillStyle)
	assert.Nil(t, segs[1].Size)
	assert.Nil(t, segs[1].FillStyle)
	assert.Equal(t, base.Reversed, *segs[1].TextDirection)
	assert.Nil(t, segs[1].TextOrientation)
	assert.Equal(t, 180.0, *segs[2].Size)

	a, err := f.AnimationOptions()
	require.NoError(t, err)
	assert.Equal(t, base.SpinAndBack, a.Type)
	assert.Equal(t, base.AntiClockwise, a.Direction)
	assert.Equal(t, base.TriggerPin, a.SoundTrigger)
}

func TestParseTOMLImageWheel(t *testing.T) {
	f, err := Parse([]byte(tomlWheel), "toml")
	require.NoError(t, err)

	o, err := f.WheelOptions()
	require.NoError(t, err)
	assert.Equal(t, base.DrawSegmentImage, o.DrawMode)
	assert.Equal(t, base.FacingS, o.ImageDirection)
	assert.Equal(t, "", o.FillStyle)
	assert.Equal(t, "red", o.StrokeStyle)
	assert.False(t, o.DrawText)
	assert.Nil(t, o.Pins)

	segs, err := f.SegmentOptions()
	require.NoError(t, err)
	require.Len(t, segs, 2)
	assert.Equal(t, "one.png", segs[0].Image)
	assert.Nil(t, segs[0].ImageDirection)
	assert.Equal(t, base.FacingE, *segs[1].ImageDirection)
	assert.Equal(t, base.AlignOuter, *segs[1].TextAlignment)
}

func TestParseYAML(t *testing.T) {
	f, err := Parse([]byte(yamlWheel), ".yml")
	require.NoError(t, err)

	o, err := f.WheelOptions()
	require.NoError(t, err)
	assert.Equal(t, 150.0, *o.OuterRadius)
	assert.Equal(t, "normal", o.TextFontWeight)
	assert.Equal(t, 4.0, *o.TextMargin)
	assert.True(t, o.PointerGuide.Display)
	assert.Equal(t, "red", o.PointerGuide.StrokeStyle)

	segs, err := f.SegmentOptions()
	require.NoError(t, err)
	assert.Equal(t, base.Vertical, *segs[0].TextOrientation)

	a, err := f.AnimationOptions()
	require.NoError(t, err)
	assert.Equal(t, base.SpinOngoing, a.Type)
	assert.Equal(t, 3.0, a.Duration)
	assert.Equal(t, base.Clockwise, a.Direction)
}

func TestBadEnumsAreReported(t *testing.T) {
	f, err := Parse([]byte(`{"wheel": {"textOrientation": "diagonal"}}`), ".json")
	require.NoError(t, err)
	_, err = f.WheelOptions()
	assert.True(t, errors.Is(err, base.ErrUnknownOrientation))
	assert.Contains(t, err.Error(), "wheel.textOrientation")

	f, _ = Parse([]byte(`{"segments": [{}, {"imageDirection": "NE"}]}`), ".json")
	_, err = f.SegmentOptions()
	assert.True(t, errors.Is(err, base.ErrUnknownImageDirection))
	assert.Contains(t, err.Error(), "segments[1]")

	f, _ = Parse([]byte(`{"animation": {"type": "wobble"}}`), ".json")
	_, err = f.AnimationOptions()
	assert.True(t, errors.Is(err, base.ErrUnknownAnimationType))

	f, _ = Parse([]byte(`{"wheel": {"drawMode": "svg"}}`), ".json")
	_, err = f.WheelOptions()
	assert.True(t, errors.Is(err, base.ErrUnknownDrawMode))

	_, err = Parse([]byte(`{}`), ".ini")
	assert.True(t, errors.Is(err, ErrUnknownFormat))
	_, err = Parse([]byte(`{`), ".json")
	assert.Error(t, err)
}

func TestLoadMissingFileGivesDefault(t *testing.T) {
	f, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Len(t, f.Segments, 8)

	o, err := f.WheelOptions()
	require.NoError(t, err)
	assert.Equal(t, 75.0, o.InnerRadius)
	a, err := f.AnimationOptions()
	require.NoError(t, err)
	assert.Equal(t, base.SpinToStop, a.Type)
}

func TestSaveThenLoadKeepsTheWheel(t *testing.T) {
	dir := t.TempDir()
	def := Default()
	for _, name := range []string{"w.json", "w.toml", "w.yaml"} {
		path := filepath.Join(dir, name)
		require.NoError(t, def.Save(path), name)
		f, err := Load(path)
		require.NoError(t, err, name)
		assert.Equal(t, def.Segments, f.Segments, name)
		assert.Equal(t, def.Wheel, f.Wheel, name)
	}
	assert.Error(t, def.Save(filepath.Join(dir, "w.txt")))
	_, err := os.Stat(filepath.Join(dir, "w.txt"))
	assert.True(t, os.IsNotExist(err))
}

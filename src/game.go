package src

import (
	"context"
	"fmt"
	"math/rand/v2"
	"path/filepath"

	"spinwheel/src/assets"
	"spinwheel/src/base"
	"spinwheel/src/config"
	"spinwheel/src/logic/planner"
	"spinwheel/src/logx"
	"spinwheel/src/render"
	"spinwheel/src/sound"
	"spinwheel/src/tween"
	"spinwheel/src/wheel"
)

// at first use Create* methods
type WheelBuilder struct {
	conf   *config.File
	anim   wheel.Animation
	fonts  *assets.FontCache
	loader *assets.ImageLoader
	ticker *tween.Ticker
	canvas *render.GGCanvas
	wheel  *wheel.Wheel
	sound  *sound.TickPlayer
	logger logx.Logger
}

func NewWheelBuilder(logger logx.Logger) *WheelBuilder {
	return &WheelBuilder{logger: logger, ticker: tween.NewTicker(logger.Named("tween"))}
}

// CreateFromFile loads a wheel definition; images in it are relative to
// the file. An empty path builds the demo wheel.
func (wb *WheelBuilder) CreateFromFile(path string) error {
	if path == "" {
		wb.logger.Debug("create default wheel")
		def := config.Default()
		return wb.CreateFromConfig(&def, ".")
	}
	wb.logger.Debugf("create wheel from %v", path)
	conf, err := config.Load(path)
	if err != nil {
		return err
	}
	return wb.CreateFromConfig(conf, filepath.Dir(path))
}

func (wb *WheelBuilder) CreateFromConfig(conf *config.File, dir string) error {
	opts, err := conf.WheelOptions()
	if err != nil {
		return fmt.Errorf("error build wheel: %w", err)
	}
	segs, err := conf.SegmentOptions()
	if err != nil {
		return fmt.Errorf("error build segments: %w", err)
	}
	anim, err := conf.AnimationOptions()
	if err != nil {
		return fmt.Errorf("error build animation: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("error build wheel: %w", err)
	}
	for i := range segs {
		if err := segs[i].Validate(); err != nil {
			return fmt.Errorf("error build segments: segments[%d]: %w", i, err)
		}
	}

	if wb.fonts == nil {
		if wb.fonts, err = assets.NewFontCache(); err != nil {
			return err
		}
	}
	wb.conf = conf
	wb.anim = anim
	if wb.loader != nil {
		wb.loader.Close()
	}
	wb.loader = assets.NewImageLoader(nil, wb.logger.Named("images"))
	wb.canvas = render.NewGGCanvas(conf.Window.Width, conf.Window.Height, wb.fonts, wb.logger.Named("canvas"))

	wb.ticker.KillAll()
	opts.Logger = wb.logger.Named("wheel")
	opts.Driver = wb.ticker
	opts.Images = relativeImages{dir: dir, loader: wb.loader}
	wb.wheel = wheel.New(wb.canvas, opts, segs...)
	wb.wheel.Draw()

	if conf.Sound.Enabled && wb.sound == nil {
		wb.sound = sound.NewTickPlayer(conf.Sound.Volume, wb.logger.Named("sound"))
	}
	wb.logger.Infof("wheel ready: %d segments, %dx%d", wb.wheel.NumSegments(), conf.Window.Width, conf.Window.Height)
	return nil
}

type relativeImages struct {
	dir    string
	loader *assets.ImageLoader
}

func (r relativeImages) Load(src string, onLoad func(*assets.Bitmap)) *assets.Bitmap {
	if !filepath.IsAbs(src) {
		src = filepath.Join(r.dir, src)
	}
	return r.loader.Load(src, onLoad)
}

func (wb *WheelBuilder) Wheel() *wheel.Wheel        { return wb.wheel }
func (wb *WheelBuilder) Canvas() *render.GGCanvas   { return wb.canvas }
func (wb *WheelBuilder) Config() *config.File       { return wb.conf }
func (wb *WheelBuilder) Animation() wheel.Animation { return wb.anim }

// Resize swaps in a canvas of the given size. Centre and radius follow it
// unless the wheel file fixes them.
func (wb *WheelBuilder) Resize(w, h int) {
	wb.canvas = render.NewGGCanvas(w, h, wb.fonts, wb.logger.Named("canvas"))
	wb.conf.Window.Width, wb.conf.Window.Height = w, h
	wb.wheel.SetCanvas(wb.canvas)
	wb.wheel.Draw()
}

// Mute drops the tick sound for the rest of the session.
func (wb *WheelBuilder) Mute() {
	if wb.sound != nil {
		wb.sound.Close()
		wb.sound = nil
	}
}

// Tick runs one frame: deliver finished image loads, then advance tweens.
func (wb *WheelBuilder) Tick(dt float64) {
	wb.loader.Poll()
	wb.ticker.Advance(dt)
}

// WaitImages blocks until every image has been delivered, for headless use.
func (wb *WheelBuilder) WaitImages(ctx context.Context) error {
	return wb.loader.Wait(ctx)
}

// Spin starts the configured animation. For spin-to-stop a segment index
// >= 0 picks the prize; a negative one lets chance choose a segment. The
// stop angle inside the segment is random either way. A wheel without
// segments still spins and finishes with (-1, nil).
func (wb *WheelBuilder) Spin(segment int, finished func(int, *wheel.Segment)) (planner.Plan, error) {
	a := wb.anim
	a.Finished = finished
	if wb.sound != nil {
		a.Sound = wb.sound.Tick
	}

	empty := wb.wheel.NumSegments() == 0
	if empty && segment >= 0 {
		return planner.Plan{}, fmt.Errorf("%w: %d of 0", base.ErrSegmentOutOfRange, segment)
	}
	if a.Type == base.SpinToStop && !empty && (segment >= 0 || a.StopAngle == nil) {
		if segment < 0 {
			segment = rand.IntN(wb.wheel.NumSegments())
		}
		stop, err := wb.wheel.RandomForSegment(segment)
		if err != nil {
			return planner.Plan{}, err
		}
		a.StopAngle = &stop
		wb.logger.Debugf("spin to segment %d at %.0f deg", segment, stop)
	}
	return wb.wheel.StartAnimation(a)
}

func (wb *WheelBuilder) Close() {
	wb.ticker.KillAll()
	if wb.loader != nil {
		wb.loader.Close()
	}
	if wb.sound != nil {
		wb.sound.Close()
	}
	if wb.fonts != nil {
		if err := wb.fonts.Close(); err != nil {
			wb.logger.Warnf("close fonts: %v", err)
		}
	}
}

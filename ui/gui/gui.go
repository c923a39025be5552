package gui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"path/filepath"

	"spinwheel/src"
	"spinwheel/src/config"
	"spinwheel/src/logx"
	"spinwheel/src/wheel"
	"spinwheel/ui/gui/gclipboard"
	"spinwheel/ui/gui/gdialog"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const title = "spinwheel"

type opened struct {
	res gdialog.Result
	err error
}

type GUIProcessing struct {
	builder *src.WheelBuilder
	logger  logx.Logger

	frame   *ebiten.Image
	pointer *ebiten.Image
	w, h    int

	status        string
	winner        string
	prevMouseDown bool
	dialogs       chan opened
	announce      func(format string, args ...interface{})
}

func NewGUI(b *src.WheelBuilder, logger logx.Logger) *GUIProcessing {
	gp := &GUIProcessing{
		builder: b,
		logger:  logger,
		pointer: renderPointer(24, color.RGBA{R: 0xd0, G: 0x20, B: 0x20, A: 0xff}),
		dialogs: make(chan opened, 1),
		status:  "space spin, p pause, s stop, o open, c copy winner, click a segment",
	}
	gp.announce = func(format string, args ...interface{}) {
		go gdialog.Announce(title, format, args...)
	}
	gp.resize()
	return gp
}

// renderPointer draws the downward triangle that marks the winning position.
func renderPointer(size int, fill color.RGBA) *ebiten.Image {
	dc := gg.NewContext(size, size)
	s := float64(size)
	dc.MoveTo(2, 2)
	dc.LineTo(s-2, 2)
	dc.LineTo(s/2, s-2)
	dc.ClosePath()
	dc.SetColor(fill)
	dc.FillPreserve()
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1.5)
	dc.Stroke()
	return ebiten.NewImageFromImage(dc.Image())
}

func (gp *GUIProcessing) resize() {
	gp.w, gp.h = gp.builder.Canvas().Size()
	gp.frame = ebiten.NewImage(gp.w, gp.h)
}

func (gp *GUIProcessing) Run() error {
	conf := gp.builder.Config()
	ebiten.SetWindowSize(gp.w, gp.h)
	ebiten.SetWindowTitle(conf.Window.Title)
	return ebiten.RunGame(gp)
}

func (gp *GUIProcessing) Update() error {
	w := gp.builder.Wheel()

	select {
	case o := <-gp.dialogs:
		gp.load(o)
		w = gp.builder.Wheel()
	default:
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		gp.spin()
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		if w.Animating() {
			if w.AnimationPaused() {
				w.ResumeAnimation()
			} else {
				w.PauseAnimation()
			}
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		w.StopAnimation(true)
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		gp.copyWinner()
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		go func() {
			res, err := gdialog.OpenFile("Open wheel")
			gp.dialogs <- opened{res, err}
		}()
	}

	// Input
	mx, my := ebiten.CursorPosition()
	mouseDown := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	justPressed := mouseDown && !gp.prevMouseDown
	gp.prevMouseDown = mouseDown
	if justPressed && !w.Animating() {
		if i, ok := w.SegmentNumberAt(float64(mx), float64(my)); ok {
			gp.status = fmt.Sprintf("clicked #%d %q", i, w.Segments()[i].Options.Text)
		} else {
			gp.status = "clicked outside the wheel"
		}
		gp.logger.Debugf("click (%d, %d): %s", mx, my, gp.status)
	}

	gp.builder.Tick(1.0 / float64(ebiten.TPS()))
	return nil
}

func (gp *GUIProcessing) spin() {
	_, err := gp.builder.Spin(-1, func(i int, s *wheel.Segment) {
		if s == nil {
			gp.status = "no winner"
			return
		}
		gp.winner = s.Options.Text
		gp.status = fmt.Sprintf("winner #%d %q", i, s.Options.Text)
		gp.logger.Infof("winner %d %q", i, s.Options.Text)
		gp.announce("The winner is %s", s.Options.Text)
	})
	if err != nil {
		gp.logger.Errorf("error spin: %v", err)
		gp.status = err.Error()
		return
	}
	gp.status = "spinning"
}

func (gp *GUIProcessing) copyWinner() {
	if gp.winner == "" || !gclipboard.Supported() {
		return
	}
	if err := gclipboard.WriteAll(gp.winner); err != nil {
		gp.logger.Warnf("copy winner: %v", err)
		return
	}
	gp.status = fmt.Sprintf("copied %q", gp.winner)
}

func (gp *GUIProcessing) load(o opened) {
	if o.err != nil {
		if !gdialog.Cancelled(o.err) {
			gp.logger.Errorf("error open wheel: %v", o.err)
			go gdialog.Fail(title, o.err)
		}
		return
	}
	conf, err := config.Parse(o.res.Data, filepath.Ext(o.res.Name))
	if err == nil {
		err = gp.builder.CreateFromConfig(conf, filepath.Dir(o.res.Path))
	}
	if err != nil {
		gp.logger.Errorf("error load wheel %s: %v", o.res.Path, err)
		go gdialog.Fail(title, err)
		return
	}
	gp.winner = ""
	gp.status = "opened " + o.res.Name
	gp.resize()
	ebiten.SetWindowSize(gp.w, gp.h)
	ebiten.SetWindowTitle(conf.Window.Title)
}

func (gp *GUIProcessing) Draw(screen *ebiten.Image) {
	if rgba, ok := gp.builder.Canvas().Image().(*image.RGBA); ok {
		gp.frame.WritePixels(rgba.Pix)
	}
	screen.DrawImage(gp.frame, nil)

	w := gp.builder.Wheel()
	a := (w.Options.PointerAngle - 90) * math.Pi / 180
	r := float64(min(gp.w, gp.h))/2 - 12
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-12, -12)
	op.GeoM.Rotate(a + math.Pi/2)
	op.GeoM.Translate(float64(gp.w)/2+r*math.Cos(a), float64(gp.h)/2+r*math.Sin(a))
	screen.DrawImage(gp.pointer, op)

	ebitenutil.DebugPrint(screen, gp.status)
}

func (gp *GUIProcessing) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return gp.w, gp.h
}

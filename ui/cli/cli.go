package cli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"spinwheel/src"
	"spinwheel/src/wheel"

	"golang.org/x/term"
)

const (
	FPS          = 60
	gifEvery     = 3  // 20 fps in the gif
	ongoingLimit = 30 // seconds an endless spin is simulated before it is stopped
)

type CLIProcessing struct {
	builder *src.WheelBuilder
	in      *os.File
	out     io.Writer
	color   bool
}

func NewCLI(b *src.WheelBuilder) *CLIProcessing {
	return &CLIProcessing{builder: b, in: os.Stdin, out: os.Stdout, color: term.IsTerminal(int(os.Stdout.Fd()))}
}

// NewCLIWith is NewCLI on explicit streams, without ANSI colours.
func NewCLIWith(b *src.WheelBuilder, in *os.File, out io.Writer) *CLIProcessing {
	return &CLIProcessing{builder: b, in: in, out: out}
}

// Render draws the wheel once at the given rotation and writes a PNG.
func (c *CLIProcessing) Render(ctx context.Context, path string, rotation float64) error {
	if err := c.builder.WaitImages(ctx); err != nil {
		return err
	}
	w := c.builder.Wheel()
	w.SetRotation(rotation)
	w.Draw()
	if err := c.builder.Canvas().SavePNG(path); err != nil {
		return fmt.Errorf("error save png: %w", err)
	}
	fmt.Fprintf(c.out, "wheel written to %s\n", path)
	return nil
}

type SpinResult struct {
	Index    int
	Segment  *wheel.Segment
	Rotation float64
	Frames   int
}

// Simulate runs the configured animation to completion at a fixed frame
// rate. A negative stopAt picks a random segment. With gifPath set every
// third frame is recorded into an animated gif.
func (c *CLIProcessing) Simulate(ctx context.Context, stopAt int, gifPath string) (SpinResult, error) {
	if err := c.builder.WaitImages(ctx); err != nil {
		return SpinResult{}, err
	}
	res := SpinResult{Index: -1}
	done := false
	plan, err := c.builder.Spin(stopAt, func(i int, s *wheel.Segment) {
		res.Index, res.Segment = i, s
		done = true
	})
	if err != nil {
		return res, err
	}
	seconds := c.builder.Animation().Seconds()
	fmt.Fprintf(c.out, "spinning %.0f -> %.0f deg over %.1fs\n", plan.From, plan.To, seconds)

	var rec *GIFRecorder
	if gifPath != "" {
		rec = NewGIFRecorder(FPS / gifEvery)
		rec.AddFrame(c.builder.Canvas().Image())
	}

	w := c.builder.Wheel()
	limit := FPS * ongoingLimit
	if plan.Repeat != -1 {
		limit = int(seconds*FPS*float64(plan.Repeat+1)) + FPS
	}
	for !done && res.Frames < limit {
		if err := ctx.Err(); err != nil {
			w.StopAnimation(false)
			return res, err
		}
		c.builder.Tick(1.0 / FPS)
		res.Frames++
		if rec != nil && res.Frames%gifEvery == 0 {
			rec.AddFrame(c.builder.Canvas().Image())
		}
	}
	if !done {
		w.StopAnimation(true)
	}
	res.Rotation = w.Rotation()

	if rec != nil {
		if err := rec.Save(gifPath); err != nil {
			return res, err
		}
		fmt.Fprintf(c.out, "%d frames written to %s\n", rec.Len(), gifPath)
	}
	return res, nil
}

func (c *CLIProcessing) printResult(r SpinResult) {
	if r.Segment == nil {
		fmt.Fprintln(c.out, "the pointer rests on no segment")
		return
	}
	fmt.Fprintf(c.out, "winner: #%d %q (rotation %.1f)\n", r.Index, r.Segment.Options.Text, r.Rotation)
}

// PrintWinner is Simulate followed by a one-line report.
func (c *CLIProcessing) PrintWinner(ctx context.Context, stopAt int, gifPath string) error {
	r, err := c.Simulate(ctx, stopAt, gifPath)
	if err != nil {
		return err
	}
	c.printResult(r)
	return nil
}

type action int

const (
	actNone action = iota
	actSpin
	actPause
	actStop
	actList
	actQuit
)

func keyAction(b byte) action {
	switch b {
	case ' ', '\r', '\n':
		return actSpin
	case 'p', 'P':
		return actPause
	case 's', 'S':
		return actStop
	case 'l', 'L':
		return actList
	case 'q', 'Q', 3: // Ctrl+C
		return actQuit
	}
	return actNone
}

// raw processing
// - space or enter spins to a random segment
// - digits 0-9 spin to that segment
// - p pauses and resumes, s stops, l lists segments
// - q or Ctrl+C to exit
func (c *CLIProcessing) Run() error {
	fd := int(c.in.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return c.RunLineMode()
	}
	defer term.Restore(fd, oldState) //nolint:errcheck

	out := c.out
	c.out = crlfWriter{out}
	defer func() { c.out = out }()

	keys := make(chan byte)
	go func() {
		r := bufio.NewReader(c.in)
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(keys)
				return
			}
			keys <- b
		}
	}()

	w := c.builder.Wheel()
	PrintSegments(c.out, w, -1, c.color)
	fmt.Fprintln(c.out, "space spin, 0-9 spin to segment, p pause, s stop, l list, q quit")

	var pending *SpinResult
	ticker := time.NewTicker(time.Second / FPS)
	defer ticker.Stop()
	for {
		select {
		case b, ok := <-keys:
			if !ok {
				return nil
			}
			stopAt := -1
			act := keyAction(b)
			if b >= '0' && b <= '9' {
				stopAt, act = int(b-'0'), actSpin
			}
			switch act {
			case actQuit:
				fmt.Fprintln(c.out, "\nQuitting")
				return nil
			case actSpin:
				res := &SpinResult{Index: -1}
				if _, err := c.builder.Spin(stopAt, func(i int, s *wheel.Segment) {
					res.Index, res.Segment, res.Rotation = i, s, w.Rotation()
				}); err != nil {
					fmt.Fprintf(c.out, "error spin: %v\n", err)
					continue
				}
				pending = res
			case actPause:
				if !w.Animating() {
					continue
				}
				if w.AnimationPaused() {
					w.ResumeAnimation()
				} else {
					w.PauseAnimation()
				}
			case actStop:
				w.StopAnimation(true)
			case actList:
				PrintSegments(c.out, w, -1, c.color)
			}
		case <-ticker.C:
			c.builder.Tick(1.0 / FPS)
			if pending == nil {
				continue
			}
			if w.Animating() {
				if seg := w.IndicatedSegment(); seg != nil {
					fmt.Fprintf(c.out, "\r%6.1f deg  %-24s", w.RotationPosition(), seg.Options.Text)
				}
				continue
			}
			fmt.Fprintln(c.out)
			PrintSegments(c.out, w, pending.Index, c.color)
			c.printResult(*pending)
			pending = nil
		}
	}
}

// crlfWriter turns newlines into CRLF for terminals in raw mode.
type crlfWriter struct {
	w io.Writer
}

func (cw crlfWriter) Write(p []byte) (int, error) {
	if _, err := cw.w.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (c *CLIProcessing) RunLineMode() error {
	// fallback: every command runs the spin to completion
	scanner := bufio.NewScanner(c.in)
	w := c.builder.Wheel()
	PrintSegments(c.out, w, -1, c.color)
	fmt.Fprintln(c.out, "Enter to spin, a segment number to spin to it, 'list' to show segments, 'q' to quit.")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "q", "Q", "quit":
			return nil
		case "list":
			PrintSegments(c.out, w, -1, c.color)
			continue
		}
		stopAt := -1
		if line != "" {
			n, err := strconv.Atoi(line)
			if err != nil || n < 0 || n >= w.NumSegments() {
				fmt.Fprintf(c.out, "Invalid segment: %s\n", line)
				continue
			}
			stopAt = n
		}
		r, err := c.Simulate(context.Background(), stopAt, "")
		if err != nil {
			fmt.Fprintf(c.out, "error spin: %v\n", err)
			continue
		}
		PrintSegments(c.out, w, r.Index, c.color)
		c.printResult(r)
	}
	return scanner.Err()
}

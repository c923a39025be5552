package ui

import (
	"context"
	"fmt"
	"os"

	"spinwheel/src"
	"spinwheel/src/logx"
	clic "spinwheel/ui/cli"
	"spinwheel/ui/gui"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

const logfile string = "spinwheel.log"

func GetLogger(file *os.File, c *cli.Command) *logx.Logx {
	console := c.Bool("console")
	if !c.IsSet("console") && file == nil {
		console = term.IsTerminal(int(os.Stdout.Fd()))
	}
	l := logx.NewLogx(
		logx.GetLoggerLevelByString(c.String("level")),
		c.Bool("debug"),
		console,
	)
	if file == nil {
		l.InitLogger(nil)
	} else {
		l.InitLogger(file)
	}
	return l
}

// withBuilder opens the logfile, builds the wheel named by -wheel and hands
// both to fn.
func withBuilder(c *cli.Command, fn func(*src.WheelBuilder, logx.Logger) error) error {
	file, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		fmt.Printf("error open logfile: %v\n", err)
	} else {
		defer file.Close()
	}
	logger := GetLogger(file, c)
	defer logger.Sync() //nolint:errcheck

	wb := src.NewWheelBuilder(logger)
	defer wb.Close()
	if err := wb.CreateFromFile(c.String("wheel")); err != nil {
		return fmt.Errorf("error load wheel: %w", err)
	}
	if c.Bool("mute") {
		wb.Mute()
	}
	return fn(wb, logger)
}

func RunGUI(c *cli.Command) error {
	return withBuilder(c, func(wb *src.WheelBuilder, l logx.Logger) error {
		return gui.NewGUI(wb, l.Named("gui")).Run()
	})
}

func RunSpinwheel() error {
	wf := &cli.StringFlag{
		Name:    "wheel",
		Aliases: []string{"w"},
		Usage:   "path to a wheel file (json, toml or yaml); the demo wheel when empty",
	}
	mf := &cli.BoolFlag{
		Name:  "mute",
		Usage: "disable tick sounds",
	}
	df := &cli.BoolFlag{
		Name:    "debug",
		Aliases: []string{"d"},
		Usage:   "enable debug mod",
	}
	lf := &cli.StringFlag{
		Name:    "level",
		Aliases: []string{"l"},
		Value:   "info",
		Usage:   "logger level (debug, info, warn, error)",
	}
	cf := &cli.BoolFlag{
		Name:    "console",
		Aliases: []string{"c"},
		Usage:   "console logger encoding",
	}
	common := []cli.Flag{wf, df, lf, cf}

	return (&cli.Command{
		Name:  "spinwheel",
		Usage: "prize wheel",
		Flags: append([]cli.Flag{mf}, common...),
		Commands: []*cli.Command{
			{
				Name:  "gui",
				Usage: "spin the wheel in a window",
				Flags: append([]cli.Flag{mf}, common...),
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := RunGUI(c); err != nil {
						fmt.Printf("error GUI: %v\n", err)
					}
					return nil
				},
			},
			{
				Name:  "render",
				Usage: "draw the wheel once into a png",
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Value: "wheel.png", Usage: "png file to write"},
					&cli.FloatFlag{Name: "rotation", Aliases: []string{"r"}, Usage: "wheel rotation in degrees"},
					&cli.IntFlag{Name: "width", Usage: "image width, the wheel file's window when 0"},
					&cli.IntFlag{Name: "height", Usage: "image height, the wheel file's window when 0"},
				}, common...),
				Action: func(ctx context.Context, c *cli.Command) error {
					return withBuilder(c, func(wb *src.WheelBuilder, _ logx.Logger) error {
						if w, h := int(c.Int("width")), int(c.Int("height")); w > 0 || h > 0 {
							win := wb.Config().Window
							if w <= 0 {
								w = win.Width
							}
							if h <= 0 {
								h = win.Height
							}
							wb.Resize(w, h)
						}
						return clic.NewCLI(wb).Render(ctx, c.String("out"), c.Float("rotation"))
					})
				},
			},
			{
				Name:  "spin",
				Usage: "spin in the terminal",
				Flags: append([]cli.Flag{
					mf,
					&cli.IntFlag{Name: "stop-at", Aliases: []string{"s"}, Value: -1, Usage: "segment to land on, random when negative"},
					&cli.StringFlag{Name: "gif", Usage: "record the spin into an animated gif"},
					&cli.BoolFlag{Name: "interactive", Aliases: []string{"i"}, Usage: "keyboard driven session"},
				}, common...),
				Action: func(ctx context.Context, c *cli.Command) error {
					return withBuilder(c, func(wb *src.WheelBuilder, _ logx.Logger) error {
						clic.EnableANSI()
						cl := clic.NewCLI(wb)
						if c.Bool("interactive") {
							return cl.Run()
						}
						return cl.PrintWinner(ctx, int(c.Int("stop-at")), c.String("gif"))
					})
				},
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := RunGUI(c); err != nil {
				fmt.Printf("error GUI: %v\n", err)
			}
			return nil
		},
	}).Run(context.Background(), os.Args)
}

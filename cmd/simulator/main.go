// Command simulator runs the modifier test screen on a simulated display:
// an X11 window, a terminal preview or a directory of PNG frames.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gold-silver-copper/mousefood"
	"github.com/gold-silver-copper/mousefood/glyph"
	"github.com/gold-silver-copper/mousefood/logger"
	"github.com/gold-silver-copper/mousefood/surface"
	"golang.org/x/term"
)

const windowTitle = "mousefood simulator"

type config struct {
	driver   string
	width    int
	height   int
	scale    int
	fps      int
	out      string
	frames   int
	source   string
	font     string
	fontSize float64
	level    string
	json     bool
}

// display is the viewport a driver opens. Surface is what the pump draws
// on. Closed reports that the viewport is gone, after which Present
// returns mousefood.ErrCancelled.
type display interface {
	Surface() surface.Surface
	Present(surface.Surface) error
	Closed() bool
	Close() error
}

func parseFlags(args []string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("simulator", flag.ContinueOnError)
	fs.StringVar(&cfg.driver, "driver", "auto", "display driver: auto, x11, tcell or png")
	fs.IntVar(&cfg.width, "width", 128, "display width in pixels")
	fs.IntVar(&cfg.height, "height", 200, "display height in pixels")
	fs.IntVar(&cfg.scale, "scale", 4, "window pixels per display pixel (x11)")
	fs.IntVar(&cfg.fps, "fps", 30, "frame rate cap, 0 for uncapped")
	fs.StringVar(&cfg.out, "out", "frames", "output directory (png)")
	fs.IntVar(&cfg.frames, "frames", 10, "frames to write before stopping (png)")
	fs.StringVar(&cfg.source, "source", "", "source file to list below the modifier test")
	fs.StringVar(&cfg.font, "font", "basic", "glyph source: basic or gomono")
	fs.Float64Var(&cfg.fontSize, "size", 10, "font size in points (gomono)")
	fs.StringVar(&cfg.level, "log-level", "info", "log level: debug, info, warn or error")
	fs.BoolVar(&cfg.json, "log-json", false, "log as JSON")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.width < 1 || cfg.height < 1 {
		return cfg, fmt.Errorf("display size %dx%d is empty", cfg.width, cfg.height)
	}
	if cfg.scale < 1 {
		return cfg, fmt.Errorf("scale %d must be at least 1", cfg.scale)
	}
	return cfg, nil
}

// pickDriver resolves "auto": a window when an X display is reachable, a
// terminal preview when stdout is a terminal, PNG frames otherwise.
func pickDriver(name string, env func(string) string, isTerminal func() bool) string {
	if name != "auto" {
		return name
	}
	if env("DISPLAY") != "" {
		return "x11"
	}
	if isTerminal() {
		return "tcell"
	}
	return "png"
}

func openDisplay(cfg config, l logger.Logger) (display, error) {
	driver := pickDriver(cfg.driver, os.Getenv, func() bool {
		return term.IsTerminal(int(os.Stdout.Fd()))
	})
	l.Info("opening display", "driver", driver, "width", cfg.width, "height", cfg.height)
	switch driver {
	case "x11":
		return newX11Display(cfg.width, cfg.height, cfg.scale)
	case "tcell":
		return newTcellDisplay(cfg.width, cfg.height)
	case "png":
		return newPNGDisplay(cfg.out, cfg.width, cfg.height, cfg.frames, l)
	default:
		return nil, fmt.Errorf("unknown driver %q", driver)
	}
}

func rasterizer(cfg config) (glyph.Rasterizer, error) {
	switch cfg.font {
	case "basic":
		return glyph.Basic(), nil
	case "gomono":
		face, err := glyph.GoMono(cfg.fontSize)
		if err != nil {
			return nil, err
		}
		return face, nil
	default:
		return nil, fmt.Errorf("unknown font %q", cfg.font)
	}
}

func run(cfg config) error {
	level, ok := logger.ParseLevel(cfg.level)
	logType := logger.TypeText
	if cfg.json {
		logType = logger.TypeJSON
	}
	// Stdout may belong to the terminal preview.
	l := logger.New(logger.Options{Buffer: os.Stderr, Level: level, Type: logType})
	if !ok {
		l.Warn("unknown log level, using info", "level", cfg.level)
	}

	glyphs, err := rasterizer(cfg)
	if err != nil {
		return &mousefood.ConstructionError{Reason: "glyph source", Err: err}
	}

	screen, err := newScreen(cfg.source)
	if err != nil {
		return &mousefood.ConstructionError{Reason: "source listing", Err: err}
	}

	disp, err := openDisplay(cfg, l)
	if err != nil {
		return &mousefood.ConstructionError{Reason: "display", Err: err}
	}
	defer disp.Close()

	pump, err := mousefood.New(disp.Surface(), mousefood.Options{
		Present:    disp.Present,
		Cancelled:  disp.Closed,
		FrameRate:  cfg.fps,
		Rasterizer: glyphs,
		Logger:     l,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = pump.Run(ctx, screen.Draw)
	l.Info("stopped", "frames", pump.Frames())
	return err
}

// exitCode is non-zero for every error run returns. A closed viewport ends
// the loop with a *TerminationError, which is fatal to the process.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

// exitMessage is the line printed on exit, led by the error kind.
func exitMessage(err error) string {
	return fmt.Sprintf("simulator: %s error: %v", mousefood.Kind(err), err)
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "simulator: %v\n", err)
		os.Exit(2)
	}

	err = run(cfg)
	if code := exitCode(err); code != 0 {
		fmt.Fprintln(os.Stderr, exitMessage(err))
		os.Exit(code)
	}
}

package mousefood

import (
	"time"

	"github.com/gold-silver-copper/mousefood/glyph"
	"github.com/gold-silver-copper/mousefood/logger"
	"github.com/gold-silver-copper/mousefood/surface"
	"github.com/gold-silver-copper/mousefood/terminal/color"
)

// DrawFunc fills the frame's buffer. A returned error skips the frame.
type DrawFunc func(*Frame) error

// PresentFunc makes the drawn surface visible. Return a *SurfaceError for
// a failure the next frame may recover from; any other error, ErrCancelled
// included, terminates the loop.
type PresentFunc func(surface.Surface) error

// Clock supplies time for blink phases and frame pacing.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock is the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time        { return time.Now() }
func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }

var (
	// DefaultForeground and DefaultBackground paint cells whose colors are
	// unset.
	DefaultForeground = color.DefaultPalette[color.ColorTypeWhite]
	DefaultBackground = color.DefaultPalette[color.ColorTypeBlack]
)

type Options struct {
	// Present is required.
	Present PresentFunc
	// Cancelled is consulted once per iteration, before it starts.
	Cancelled func() bool
	// FrameRate caps iterations per second. Zero means uncapped.
	FrameRate int

	// Rasterizer defaults to glyph.Basic().
	Rasterizer glyph.Rasterizer
	// Palette defaults to color.DefaultPalette.
	Palette *color.Palette
	// Foreground and Background resolve unset cell colors. When both are
	// zero, DefaultForeground and DefaultBackground are used.
	Foreground color.RGB
	Background color.RGB

	Logger logger.Logger
	Clock  Clock

	// OnState observes every state transition.
	OnState func(State)
	// OnError observes per-iteration errors the loop recovers from.
	OnError func(error)
}

func (o *Options) setDefaults() {
	if o.Rasterizer == nil {
		o.Rasterizer = glyph.Basic()
	}
	if o.Palette == nil {
		palette := color.DefaultPalette
		o.Palette = &palette
	}
	if o.Foreground == (color.RGB{}) && o.Background == (color.RGB{}) {
		o.Foreground = DefaultForeground
		o.Background = DefaultBackground
	}
	if o.Logger == nil {
		o.Logger = logger.Nop
	}
	if o.Clock == nil {
		o.Clock = SystemClock{}
	}
}

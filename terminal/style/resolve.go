package style

import (
	"time"

	"github.com/gold-silver-copper/mousefood/terminal/color"
)

const (
	// DimFactor is how far dim pulls the foreground toward the background.
	DimFactor = 0.5

	SlowBlinkPeriod  = time.Second
	RapidBlinkPeriod = time.Second / 4
)

// Variant selects which face of a font a glyph is drawn with.
type Variant uint8

const (
	VariantRegular Variant = iota
	VariantBold
	VariantItalic
	VariantBoldItalic
)

func VariantOf(m Modifier) Variant {
	switch {
	case m.Has(Bold | Italic):
		return VariantBoldItalic
	case m.Has(Bold):
		return VariantBold
	case m.Has(Italic):
		return VariantItalic
	default:
		return VariantRegular
	}
}

func (v Variant) String() string {
	switch v {
	case VariantBold:
		return "bold"
	case VariantItalic:
		return "italic"
	case VariantBoldItalic:
		return "bold-italic"
	default:
		return "regular"
	}
}

// Decoration is a set of line primitives drawn across a cell.
type Decoration uint8

const (
	DecorationUnderline Decoration = 1 << iota
	DecorationStrike

	DecorationNone Decoration = 0
)

func (d Decoration) Has(other Decoration) bool { return d&other == other }

// Resolved is the final rendering attributes of one cell for one draw.
type Resolved struct {
	// Visible is false for hidden cells and for blinking cells in their off
	// phase. The background is painted either way.
	Visible     bool
	Fg          color.RGB
	Bg          color.RGB
	Variant     Variant
	Decorations Decoration
}

type ResolverOptions struct {
	Palette    *color.Palette
	Foreground color.RGB
	Background color.RGB
	// Epoch anchors blink phases. Zero means the time NewResolver is called.
	Epoch time.Time
}

// Resolver maps a cell style onto the attributes the backend paints.
type Resolver struct {
	palette    *color.Palette
	foreground color.RGB
	background color.RGB
	epoch      time.Time
}

func NewResolver(opts ResolverOptions) *Resolver {
	if opts.Palette == nil {
		palette := color.DefaultPalette
		opts.Palette = &palette
	}
	if opts.Epoch.IsZero() {
		opts.Epoch = time.Now()
	}
	return &Resolver{
		palette:    opts.Palette,
		foreground: opts.Foreground,
		background: opts.Background,
		epoch:      opts.Epoch,
	}
}

// Resolve applies the modifier rules in order: hidden, reverse, dim,
// bold/italic, underline/crossed-out, blink.
func (r *Resolver) Resolve(s Style, now time.Time) Resolved {
	out := Resolved{
		Visible: true,
		Fg:      s.Fg.Resolve(r.palette, r.foreground),
		Bg:      s.Bg.Resolve(r.palette, r.background),
	}
	mods := s.Modifiers

	if mods.Has(Hidden) {
		out.Visible = false
		return out
	}
	if mods.Has(Reverse) {
		out.Fg, out.Bg = out.Bg, out.Fg
	}
	if mods.Has(Dim) {
		out.Fg = out.Fg.Blend(out.Bg, DimFactor)
	}
	out.Variant = VariantOf(mods)
	if mods.Has(Underline) {
		out.Decorations |= DecorationUnderline
	}
	if mods.Has(CrossedOut) {
		out.Decorations |= DecorationStrike
	}
	switch {
	case mods.Has(RapidBlink):
		out.Visible = r.blinkOn(now, RapidBlinkPeriod)
	case mods.Has(SlowBlink):
		out.Visible = r.blinkOn(now, SlowBlinkPeriod)
	}
	return out
}

// blinkOn reports whether a blink with the given period is in its on half.
func (r *Resolver) blinkOn(now time.Time, period time.Duration) bool {
	elapsed := now.Sub(r.epoch)
	if elapsed < 0 {
		elapsed = -elapsed
	}
	return elapsed%period < period/2
}

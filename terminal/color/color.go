package color

import (
	"errors"
	"fmt"
	imagecolor "image/color"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// ErrUnknownColor is returned by Parse for names it cannot map to an RGB value.
var ErrUnknownColor = errors.New("unknown color")

// RGB is a struct that represents an RGB color.
type RGB struct {
	R, G, B uint8
}

// RGBA converts c into an opaque image/color value.
func (c RGB) RGBA() imagecolor.RGBA {
	return imagecolor.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c RGB) String() string { return c.Hex() }

// Distance is the euclidean distance between two colors in 8-bit RGB space.
func (c RGB) Distance(other RGB) float64 {
	dr := float64(c.R) - float64(other.R)
	dg := float64(c.G) - float64(other.G)
	db := float64(c.B) - float64(other.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// Blend moves c toward target by fraction t in [0, 1]. For any t > 0 and
// c != target the result is strictly closer to target than c was.
func (c RGB) Blend(target RGB, t float64) RGB {
	if c == target || t <= 0 {
		return c
	}
	t = min(t, 1)
	r, g, b := c.colorful().BlendRgb(target.colorful(), t).Clamped().RGB255()
	out := RGB{R: r, G: g, B: b}
	if out.Distance(target) < c.Distance(target) {
		return out
	}
	// Rounding swallowed the step, nudge every differing channel one unit.
	return RGB{
		R: stepToward(c.R, target.R),
		G: stepToward(c.G, target.G),
		B: stepToward(c.B, target.B),
	}
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func stepToward(from, to uint8) uint8 {
	switch {
	case from < to:
		return from + 1
	case from > to:
		return from - 1
	default:
		return from
	}
}

// Parse accepts "#rrggbb" (or "#rgb") hex values and the color names known
// to tcell ("yellow", "darkslategray", ...).
func Parse(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return RGB{}, fmt.Errorf("parse %q: %w", s, err)
		}
		r, g, b := c.Clamped().RGB255()
		return RGB{R: r, G: g, B: b}, nil
	}
	tc := tcell.GetColor(strings.ToLower(s))
	if tc == tcell.ColorDefault || !tc.Valid() {
		return RGB{}, fmt.Errorf("parse %q: %w", s, ErrUnknownColor)
	}
	r, g, b := tc.RGB()
	if r < 0 {
		return RGB{}, fmt.Errorf("parse %q: %w", s, ErrUnknownColor)
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

package style

import (
	"fmt"

	"github.com/gold-silver-copper/mousefood/terminal/color"
	"github.com/gold-silver-copper/mousefood/terminal/sgr"
	"github.com/gold-silver-copper/mousefood/terminal/utils"
	"github.com/mitchellh/hashstructure/v2"
)

// Style attribute for a cell.
type Style struct {
	Fg        Color
	Bg        Color
	Modifiers Modifier
}

// Default is the zero style: default colors, no modifiers.
func Default() Style { return Style{} }

func (s Style) Foreground(c Color) Style {
	s.Fg = c
	return s
}

func (s Style) Background(c Color) Style {
	s.Bg = c
	return s
}

func (s Style) Add(m Modifier) Style {
	s.Modifiers = s.Modifiers.With(m)
	return s
}

func (s Style) Remove(m Modifier) Style {
	s.Modifiers = s.Modifiers.Without(m)
	return s
}

func (s *Style) Reset() {
	*s = Style{}
}

func (s Style) IsDefault() bool {
	return s == Style{}
}

func (s Style) Hash() uint64 {
	hashed, err := hashstructure.Hash(s, hashstructure.FormatV2, nil)
	utils.Assert(err == nil, "failed to hash style: ", err)
	return hashed
}

func (s Style) Equals(other Style) bool {
	return s.Hash() == other.Hash()
}

// SetGraphicsRendition applies one parsed SGR attribute to the style.
// Attributes without a cell-level meaning here are ignored.
func (s *Style) SetGraphicsRendition(attr *sgr.Attribute) {
	if attr == nil {
		return
	}
	switch attr.Type {
	case sgr.AttributeTypeUnset:
		s.Reset()
	case sgr.AttributeTypeBold:
		s.Modifiers |= Bold
	case sgr.AttributeTypeResetBold:
		// SGR 22 clears both bold and faint.
		s.Modifiers &^= Bold | Dim
	case sgr.AttributeTypeFaint:
		s.Modifiers |= Dim
	case sgr.AttributeTypeItalic:
		s.Modifiers |= Italic
	case sgr.AttributeTypeResetItalic:
		s.Modifiers &^= Italic
	case sgr.AttributeTypeUnderline:
		if attr.Underline == sgr.UnderlineTypeNone {
			s.Modifiers &^= Underline
		} else {
			s.Modifiers |= Underline
		}
	case sgr.AttributeTypeResetUnderline:
		s.Modifiers &^= Underline
	case sgr.AttributeTypeSlowBlink:
		s.Modifiers = s.Modifiers.Without(RapidBlink).With(SlowBlink)
	case sgr.AttributeTypeRapidBlink:
		s.Modifiers = s.Modifiers.Without(SlowBlink).With(RapidBlink)
	case sgr.AttributeTypeResetBlink:
		s.Modifiers &^= SlowBlink | RapidBlink
	case sgr.AttributeTypeInverse:
		s.Modifiers |= Reverse
	case sgr.AttributeTypeResetInverse:
		s.Modifiers &^= Reverse
	case sgr.AttributeTypeInvisible:
		s.Modifiers |= Hidden
	case sgr.AttributeTypeResetInvisible:
		s.Modifiers &^= Hidden
	case sgr.AttributeTypeStrikethrough:
		s.Modifiers |= CrossedOut
	case sgr.AttributeTypeResetStrikethrough:
		s.Modifiers &^= CrossedOut
	case sgr.AttributeTypePaletteFg:
		s.Fg = PaletteColor(attr.Palette)
	case sgr.AttributeTypePaletteBg:
		s.Bg = PaletteColor(attr.Palette)
	case sgr.AttributeTypeDirectColorFg:
		s.Fg = RGBColor(attr.DirectColorFg)
	case sgr.AttributeTypeDirectColorBg:
		s.Bg = RGBColor(attr.DirectColorBg)
	case sgr.AttributeTypeResetFg:
		s.Fg = Color{}
	case sgr.AttributeTypeResetBg:
		s.Bg = Color{}
	}
}

// The color for a cell. A color can come from multiple sources so we use
// this to track the source plus color value so that palette changes are
// picked up at resolve time.
type Color struct {
	Type    ColorType
	Palette uint8
	RGB     color.RGB
}

func PaletteColor(idx uint8) Color {
	return Color{Type: ColorTypePalette, Palette: idx}
}

func RGBColor(c color.RGB) Color {
	return Color{Type: ColorTypeRGB, RGB: c}
}

// Named returns the palette color for one of the 16 named ANSI colors.
func Named(t color.ColorType) Color {
	return PaletteColor(uint8(t))
}

// Resolve returns the concrete color, using def when c is ColorTypeNone.
func (c Color) Resolve(palette *color.Palette, def color.RGB) color.RGB {
	switch c.Type {
	case ColorTypePalette:
		return palette[c.Palette]
	case ColorTypeRGB:
		return c.RGB
	default:
		return def
	}
}

func (c Color) String() string {
	switch c.Type {
	case ColorTypeNone:
		return "Color.none"
	case ColorTypePalette:
		return fmt.Sprintf("Color.palette{{ %d }}", c.Palette)
	case ColorTypeRGB:
		return fmt.Sprintf("Color.rgb{{ %d, %d, %d }}", c.RGB.R, c.RGB.G, c.RGB.B)
	default:
		return "Color.unknown"
	}
}

type ColorType int

const (
	ColorTypeNone ColorType = iota
	ColorTypePalette
	ColorTypeRGB
)

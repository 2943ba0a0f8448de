package style

import (
	"testing"

	"github.com/gold-silver-copper/mousefood/terminal/color"
	"github.com/gold-silver-copper/mousefood/terminal/sgr"
	"github.com/stretchr/testify/assert"
)

func TestColorString(t *testing.T) {
	cNone := Color{Type: ColorTypeNone}
	assert.Equal(t, "Color.none", cNone.String())

	cPalette := PaletteColor(5)
	assert.Equal(t, "Color.palette{{ 5 }}", cPalette.String())

	cRGB := RGBColor(color.RGB{R: 1, G: 2, B: 3})
	assert.Equal(t, "Color.rgb{{ 1, 2, 3 }}", cRGB.String())
}

func TestColor_Resolve(t *testing.T) {
	palette := color.Palette{}
	palette[3] = color.RGB{R: 10, G: 20, B: 30}
	def := color.RGB{R: 9, G: 9, B: 9}

	assert.Equal(t, palette[3], PaletteColor(3).Resolve(&palette, def))
	assert.Equal(t, color.RGB{R: 1, G: 2, B: 3}, RGBColor(color.RGB{R: 1, G: 2, B: 3}).Resolve(&palette, def))
	assert.Equal(t, def, Color{}.Resolve(&palette, def))
}

func TestModifier(t *testing.T) {
	m := Bold.With(Italic | Underline)
	assert.True(t, m.Has(Bold|Italic))
	assert.False(t, m.Has(Bold|Dim))
	assert.Equal(t, "bold|italic|underline", m.String())
	assert.Equal(t, "italic|underline", m.Without(Bold).String())
	assert.Equal(t, "none", ModifierNone.String())
}

func TestStyle_ResetAndIsDefault(t *testing.T) {
	style := Default().Foreground(PaletteColor(1)).Add(Bold)
	assert.False(t, style.IsDefault())
	style.Reset()
	assert.True(t, style.IsDefault())
}

func TestStyle_HashAndEquals(t *testing.T) {
	style1 := Style{Fg: PaletteColor(1)}
	style2 := Style{Fg: PaletteColor(1)}
	style3 := Style{Fg: PaletteColor(2)}
	style4 := Style{Fg: PaletteColor(1), Modifiers: Bold}

	assert.Equal(t, style1.Hash(), style2.Hash())
	assert.NotEqual(t, style1.Hash(), style3.Hash())
	assert.True(t, style1.Equals(style2))
	assert.False(t, style1.Equals(style3))
	assert.False(t, style1.Equals(style4))
}

func TestStyle_SetGraphicsRendition(t *testing.T) {
	var s Style
	s.SetGraphicsRendition(&sgr.Attribute{Type: sgr.AttributeTypeBold})
	s.SetGraphicsRendition(&sgr.Attribute{Type: sgr.AttributeTypeFaint})
	s.SetGraphicsRendition(&sgr.Attribute{Type: sgr.AttributeTypePaletteFg, Palette: 3})
	s.SetGraphicsRendition(&sgr.Attribute{Type: sgr.AttributeTypeDirectColorBg, DirectColorBg: color.RGB{R: 1, G: 2, B: 3}})
	assert.Equal(t, Bold|Dim, s.Modifiers)
	assert.Equal(t, PaletteColor(3), s.Fg)
	assert.Equal(t, RGBColor(color.RGB{R: 1, G: 2, B: 3}), s.Bg)

	s.SetGraphicsRendition(&sgr.Attribute{Type: sgr.AttributeTypeResetBold})
	assert.Equal(t, ModifierNone, s.Modifiers)

	s.SetGraphicsRendition(&sgr.Attribute{Type: sgr.AttributeTypeSlowBlink})
	s.SetGraphicsRendition(&sgr.Attribute{Type: sgr.AttributeTypeRapidBlink})
	assert.Equal(t, RapidBlink, s.Modifiers)

	s.SetGraphicsRendition(&sgr.Attribute{Type: sgr.AttributeTypeUnset})
	assert.True(t, s.IsDefault())

	// nil attributes come from unsupported sequences and are ignored
	s.SetGraphicsRendition(nil)
	assert.True(t, s.IsDefault())
}

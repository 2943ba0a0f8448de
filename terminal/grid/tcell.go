package grid

import (
	"github.com/gdamore/tcell/v2"
	"github.com/gold-silver-copper/mousefood/terminal/color"
	"github.com/gold-silver-copper/mousefood/terminal/style"
	"golang.org/x/text/unicode/norm"
)

// SetContent mirrors tcell.Screen.SetContent so code written against a
// tcell screen can draw into a Buffer. Combining runes are composed onto
// mainc where a precomposed form exists and dropped otherwise.
func (b *Buffer) SetContent(x, y int, mainc rune, combc []rune, ts tcell.Style) {
	if !b.InBounds(x, y) {
		return
	}
	s := string(mainc)
	if len(combc) > 0 {
		s = norm.NFC.String(s + string(combc))
	}
	r, width := clusterRune(s)
	st := FromTcell(ts)
	if width == 0 {
		r, width = ' ', 1
	}
	if x+width > b.cols {
		return
	}
	b.put(x, y, r, width, st)
}

// FromTcell converts a tcell style into a cell style.
func FromTcell(ts tcell.Style) style.Style {
	fg, bg, attrs := ts.Decompose()

	s := style.Style{
		Fg: fromTcellColor(fg),
		Bg: fromTcellColor(bg),
	}

	if attrs&tcell.AttrBold != 0 {
		s.Modifiers |= style.Bold
	}
	if attrs&tcell.AttrDim != 0 {
		s.Modifiers |= style.Dim
	}
	if attrs&tcell.AttrItalic != 0 {
		s.Modifiers |= style.Italic
	}
	if attrs&tcell.AttrUnderline != 0 {
		s.Modifiers |= style.Underline
	}
	if attrs&tcell.AttrBlink != 0 {
		s.Modifiers |= style.SlowBlink
	}
	if attrs&tcell.AttrReverse != 0 {
		s.Modifiers |= style.Reverse
	}
	if attrs&tcell.AttrStrikeThrough != 0 {
		s.Modifiers |= style.CrossedOut
	}

	return s
}

// ToTcell converts a cell style into a tcell style. tcell has a single
// blink attribute and no hidden attribute, so rapid blink maps to blink
// and hidden is dropped.
func ToTcell(s style.Style) tcell.Style {
	ts := tcell.StyleDefault.
		Foreground(toTcellColor(s.Fg)).
		Background(toTcellColor(s.Bg))

	mods := s.Modifiers
	if mods.Has(style.Bold) {
		ts = ts.Bold(true)
	}
	if mods.Has(style.Dim) {
		ts = ts.Dim(true)
	}
	if mods.Has(style.Italic) {
		ts = ts.Italic(true)
	}
	if mods.Has(style.Underline) {
		ts = ts.Underline(true)
	}
	if mods.Has(style.SlowBlink) || mods.Has(style.RapidBlink) {
		ts = ts.Blink(true)
	}
	if mods.Has(style.Reverse) {
		ts = ts.Reverse(true)
	}
	if mods.Has(style.CrossedOut) {
		ts = ts.StrikeThrough(true)
	}
	return ts
}

func fromTcellColor(tc tcell.Color) style.Color {
	if tc == tcell.ColorDefault {
		return style.Color{}
	}

	// Check if it's a palette color
	if tc >= tcell.ColorValid && tc < tcell.ColorIsRGB {
		return style.PaletteColor(uint8(tc - tcell.ColorValid))
	}

	// tcell reports RGB channels in 0-255
	r, g, b := tc.RGB()
	return style.RGBColor(color.RGB{R: uint8(r), G: uint8(g), B: uint8(b)})
}

func toTcellColor(c style.Color) tcell.Color {
	switch c.Type {
	case style.ColorTypePalette:
		return tcell.PaletteColor(int(c.Palette))
	case style.ColorTypeRGB:
		return tcell.NewRGBColor(int32(c.RGB.R), int32(c.RGB.G), int32(c.RGB.B))
	default:
		return tcell.ColorDefault
	}
}

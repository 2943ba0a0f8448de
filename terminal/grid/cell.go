package grid

import (
	"github.com/gold-silver-copper/mousefood/terminal/style"
)

type Wide uint8

const (
	// Not a wide character, cell width 1
	WideNarrow Wide = iota

	// WideWide character, cell width 2
	WideWide

	// Spacer after wide character. Do not render
	WideSpacerTail
)

// Cell is one character position of the grid.
type Cell struct {
	// Rune is the base codepoint of the cell, zero for an empty cell.
	Rune  rune
	Style style.Style
	// The wide property of this cell. A wide character is always followed
	// by a spacer tail carrying the same style.
	Wide Wide
}

// Blank returns an empty cell painted with st.
func Blank(st style.Style) Cell {
	return Cell{Style: st}
}

// The width in grid cells that this cell takes up.
func (c Cell) Width() int {
	switch c.Wide {
	case WideNarrow, WideSpacerTail:
		return 1
	case WideWide:
		return 2
	default:
		panic("unknown cell wide")
	}
}

// HasText reports whether the cell has a glyph to rasterize. Blanks, spaces
// and spacer tails only paint their background.
func (c Cell) HasText() bool {
	return c.Wide != WideSpacerTail && c.Rune > ' '
}

func (c Cell) IsEmpty() bool {
	return c.Rune == 0 && c.Style.IsDefault()
}

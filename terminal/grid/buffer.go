// Package grid holds the retained cell grid a frame is drawn into.
package grid

import (
	"errors"
	"fmt"
	"image"
	"strings"
	"unicode/utf8"

	"github.com/gold-silver-copper/mousefood/terminal/style"
	"github.com/gold-silver-copper/mousefood/terminal/utils"
	dw "github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

var ErrInvalidSize = errors.New("grid: rows and cols must be at least 1")

// Buffer is a fixed size, row-major grid of cells.
type Buffer struct {
	cols  int
	rows  int
	cells []Cell
}

// New creates a blank buffer. The size never changes afterwards.
func New(cols, rows int) (*Buffer, error) {
	if cols < 1 || rows < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, cols, rows)
	}
	return &Buffer{
		cols:  cols,
		rows:  rows,
		cells: make([]Cell, cols*rows),
	}, nil
}

// Size returns the grid size in cells.
func (b *Buffer) Size() (cols, rows int) { return b.cols, b.rows }

func (b *Buffer) Cols() int { return b.cols }
func (b *Buffer) Rows() int { return b.rows }

// Area returns the whole grid as a rectangle in cell coordinates.
func (b *Buffer) Area() image.Rectangle {
	return image.Rect(0, 0, b.cols, b.rows)
}

// InBounds returns true if (x, y) addresses a cell.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.cols && y >= 0 && y < b.rows
}

func (b *Buffer) index(x, y int) int {
	utils.Assert(b.InBounds(x, y), "cell out of bounds")
	return y*b.cols + x
}

// Cell returns the cell at (x, y). Panics when out of bounds.
func (b *Buffer) Cell(x, y int) Cell {
	return b.cells[b.index(x, y)]
}

// Set writes c at (x, y). Writes outside the grid are clipped. A wide
// character losing one of its halves is blanked. A WideWide cell gets its
// spacer tail and is dropped when it would straddle the row end; any other
// cell is stored as narrow.
func (b *Buffer) Set(x, y int, c Cell) {
	if !b.InBounds(x, y) {
		return
	}
	if c.Wide == WideWide {
		if x+1 < b.cols {
			b.put(x, y, c.Rune, 2, c.Style)
		}
		return
	}
	row := b.Row(y)
	b.unlinkWide(row, x)
	c.Wide = WideNarrow
	row[x] = c
}

// Row returns the cells of row y. The slice aliases the buffer.
func (b *Buffer) Row(y int) []Cell {
	start := b.index(0, y)
	return b.cells[start : start+b.cols]
}

// Fill sets every cell of r (clipped to the grid) to c, stored as narrow.
// Wide characters cut by the edges of r are blanked.
func (b *Buffer) Fill(r image.Rectangle, c Cell) {
	r = r.Intersect(b.Area())
	if r.Empty() {
		return
	}
	c.Wide = WideNarrow
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := b.Row(y)
		b.unlinkWide(row, r.Min.X)
		b.unlinkWide(row, r.Max.X-1)
		for x := r.Min.X; x < r.Max.X; x++ {
			row[x] = c
		}
	}
}

// Reset blanks every cell with the default style.
func (b *Buffer) Reset() {
	clear(b.cells)
}

// SetString places s on row y starting at column x and returns the column
// after the last cell written. Text is NFC normalised and split into
// grapheme clusters; each cluster takes one or two cells by its display
// width. Text that does not fit is clipped at the row end, a wide cluster
// that would straddle the edge included.
func (b *Buffer) SetString(x, y int, s string, st style.Style) int {
	if y < 0 || y >= b.rows {
		return x
	}
	s = norm.NFC.String(s)
	state := -1
	for len(s) > 0 && x < b.cols {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		r, width := clusterRune(cluster)
		if width == 0 {
			continue
		}
		if x+width > b.cols {
			break
		}
		if x >= 0 {
			b.put(x, y, r, width, st)
		}
		x += width
	}
	return x
}

// clusterRune returns the base rune of a grapheme cluster and its display
// width, capped at two cells.
func clusterRune(cluster string) (rune, int) {
	r, _ := utf8.DecodeRuneInString(cluster)
	width := dw.StringWidth(cluster)
	if r < 0x20 || r == 0x7F {
		return r, 0
	}
	return r, min(width, 2)
}

// put writes one character of the given width at (x, y), repairing any
// wide character it partially overwrites.
func (b *Buffer) put(x, y int, r rune, width int, st style.Style) {
	utils.Assert(width == 1 || width == 2)
	row := b.Row(y)
	b.unlinkWide(row, x)
	if width == 2 {
		utils.Assert(x+1 < b.cols)
		b.unlinkWide(row, x+1)
		row[x] = Cell{Rune: r, Style: st, Wide: WideWide}
		row[x+1] = Cell{Style: st, Wide: WideSpacerTail}
		return
	}
	row[x] = Cell{Rune: r, Style: st, Wide: WideNarrow}
}

// unlinkWide clears the other half of a wide character that is about to
// lose one of its cells.
func (b *Buffer) unlinkWide(row []Cell, x int) {
	switch row[x].Wide {
	case WideWide:
		if x+1 < len(row) {
			row[x+1] = Blank(row[x+1].Style)
		}
	case WideSpacerTail:
		if x > 0 {
			row[x-1] = Blank(row[x-1].Style)
		}
	}
	row[x].Wide = WideNarrow
}

// String dumps the grid text, one line per row with trailing blanks
// trimmed. Spacer tails are skipped and empty cells read as spaces.
func (b *Buffer) String() string {
	var sb strings.Builder
	for y := range b.rows {
		var line strings.Builder
		for _, c := range b.Row(y) {
			switch {
			case c.Wide == WideSpacerTail:
			case c.Rune == 0:
				line.WriteByte(' ')
			default:
				line.WriteRune(c.Rune)
			}
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		if y < b.rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

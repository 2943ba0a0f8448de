// Package glyph turns characters into fixed size alpha masks for the
// backend to paint.
package glyph

import (
	"image"

	"github.com/gold-silver-copper/mousefood/terminal/style"
)

// Threshold is the mask alpha at or above which a pixel is foreground.
const Threshold = 0x80

// Metrics are the vertical offsets of a cell, in pixels from its top row.
type Metrics struct {
	// Ascent is the baseline row.
	Ascent int
	// Underline is the row an underline is drawn on.
	Underline int
	// Strike is the row a crossed-out line is drawn on.
	Strike int
}

// Rasterizer is a monospaced glyph source.
type Rasterizer interface {
	// CellSize is the pixel size of every cell. Both dimensions are
	// positive.
	CellSize() image.Point
	Metrics() Metrics
	// Glyph returns the coverage mask of r in variant v. The mask bounds
	// are (0, 0)-CellSize. Runes the source cannot draw come back as a
	// replacement glyph, never nil. Callers must not modify the mask.
	Glyph(r rune, v style.Variant) *image.Alpha
}

// Covered reports whether the mask marks (x, y) as foreground.
func Covered(mask *image.Alpha, x, y int) bool {
	return mask.AlphaAt(x, y).A >= Threshold
}

package mousefood

import (
	"image"

	"github.com/gold-silver-copper/mousefood/terminal/grid"
	"github.com/gold-silver-copper/mousefood/terminal/style"
	"github.com/gold-silver-copper/mousefood/terminal/utils"
)

// Frame is the draw callback's handle on the current iteration. It is only
// valid until the callback returns; any use after that panics.
type Frame struct {
	buf   *grid.Buffer
	count uint64
	live  bool
}

func newFrame(buf *grid.Buffer, count uint64) *Frame {
	return &Frame{buf: buf, count: count, live: true}
}

func (f *Frame) assertLive() {
	utils.Assert(f.live, "frame used after its draw callback returned")
}

// Buffer returns the cell grid to fill. It starts blank every frame.
func (f *Frame) Buffer() *grid.Buffer {
	f.assertLive()
	return f.buf
}

// Size returns the grid size in cells.
func (f *Frame) Size() (cols, rows int) {
	f.assertLive()
	return f.buf.Size()
}

// Area returns the grid as a rectangle in cell coordinates.
func (f *Frame) Area() image.Rectangle {
	f.assertLive()
	return f.buf.Area()
}

// Count is the number of frames drawn before this one. It wraps on
// overflow.
func (f *Frame) Count() uint64 {
	f.assertLive()
	return f.count
}

// SetString places s at (x, y), see grid.Buffer.SetString.
func (f *Frame) SetString(x, y int, s string, st style.Style) int {
	f.assertLive()
	return f.buf.SetString(x, y, s, st)
}

// Set writes one cell, clipped to the grid, see grid.Buffer.Set.
func (f *Frame) Set(x, y int, c grid.Cell) {
	f.assertLive()
	f.buf.Set(x, y, c)
}

func (f *Frame) release() {
	f.live = false
	f.buf = nil
}

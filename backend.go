package mousefood

import (
	"image"
	"time"

	"github.com/gold-silver-copper/mousefood/glyph"
	"github.com/gold-silver-copper/mousefood/surface"
	"github.com/gold-silver-copper/mousefood/terminal/grid"
	"github.com/gold-silver-copper/mousefood/terminal/style"
)

// Backend draws a cell grid onto a pixel surface.
type Backend struct {
	rasterizer glyph.Rasterizer
	resolver   *style.Resolver
	cell       image.Point
	metrics    glyph.Metrics
}

// NewBackend reads the cell size and metrics from rasterizer once.
func NewBackend(rasterizer glyph.Rasterizer, resolver *style.Resolver) *Backend {
	return &Backend{
		rasterizer: rasterizer,
		resolver:   resolver,
		cell:       rasterizer.CellSize(),
		metrics:    rasterizer.Metrics(),
	}
}

// CellSize returns the pixel size of one cell.
func (b *Backend) CellSize() image.Point { return b.cell }

// GridSize returns how many whole cells fit on a surface of the given pixel
// size.
func (b *Backend) GridSize(pixels image.Point) (cols, rows int) {
	return pixels.X / b.cell.X, pixels.Y / b.cell.Y
}

// Span returns the pixel rectangle covered by a cols x rows grid.
func (b *Backend) Span(cols, rows int) image.Rectangle {
	return image.Rect(0, 0, cols*b.cell.X, rows*b.cell.Y)
}

// Draw paints every cell of buf in row-major order. Each pixel of the grid
// span is written exactly once: foreground where the glyph mask or a
// decoration line covers it, background everywhere else. Pixels outside
// the span are left alone. The first failed pixel write aborts the call
// with a *SurfaceError.
func (b *Backend) Draw(buf *grid.Buffer, s surface.Surface, now time.Time) error {
	_, rows := buf.Size()
	for row := range rows {
		for col, c := range buf.Row(row) {
			if err := b.drawCell(c, col*b.cell.X, row*b.cell.Y, s, now); err != nil {
				return err
			}
		}
	}
	return nil
}

func (b *Backend) drawCell(c grid.Cell, x0, y0 int, s surface.Surface, now time.Time) error {
	rs := b.resolver.Resolve(c.Style, now)

	var mask *image.Alpha
	if rs.Visible && c.HasText() {
		mask = b.rasterizer.Glyph(c.Rune, rs.Variant)
	}
	underline := rs.Visible && rs.Decorations.Has(style.DecorationUnderline)
	strike := rs.Visible && rs.Decorations.Has(style.DecorationStrike)
	fg, bg := rs.Fg.RGBA(), rs.Bg.RGBA()

	for y := range b.cell.Y {
		line := (underline && y == b.metrics.Underline) || (strike && y == b.metrics.Strike)
		for x := range b.cell.X {
			px := bg
			if line || (mask != nil && glyph.Covered(mask, x, y)) {
				px = fg
			}
			if err := s.SetPixel(x0+x, y0+y, px); err != nil {
				return &SurfaceError{Op: "draw", Err: err}
			}
		}
	}
	return nil
}

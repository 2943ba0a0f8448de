package mousefood

import (
	"image"
	imagecolor "image/color"
	"time"

	"github.com/gold-silver-copper/mousefood/glyph"
	"github.com/gold-silver-copper/mousefood/surface"
	"github.com/gold-silver-copper/mousefood/terminal/style"
)

type glyphCall struct {
	Rune    rune
	Variant style.Variant
}

// fakeRasterizer draws every glyph as the cell's main diagonal.
type fakeRasterizer struct {
	cell  image.Point
	calls []glyphCall
}

func newFakeRasterizer(w, h int) *fakeRasterizer {
	return &fakeRasterizer{cell: image.Pt(w, h)}
}

func (f *fakeRasterizer) CellSize() image.Point { return f.cell }

func (f *fakeRasterizer) Metrics() glyph.Metrics {
	return glyph.Metrics{Ascent: f.cell.Y - 2, Underline: f.cell.Y - 1, Strike: f.cell.Y / 2}
}

func (f *fakeRasterizer) Glyph(r rune, v style.Variant) *image.Alpha {
	f.calls = append(f.calls, glyphCall{Rune: r, Variant: v})
	mask := image.NewAlpha(image.Rectangle{Max: f.cell})
	for i := 0; i < f.cell.X && i < f.cell.Y; i++ {
		mask.SetAlpha(i, i, imagecolor.Alpha{A: 0xFF})
	}
	return mask
}

// countingSurface counts writes per pixel and can fail on demand.
type countingSurface struct {
	size   image.Point
	writes map[image.Point]int
	pixels map[image.Point]imagecolor.RGBA
	failAt *image.Point
	err    error
}

var _ surface.Surface = (*countingSurface)(nil)

func newCountingSurface(w, h int) *countingSurface {
	return &countingSurface{
		size:   image.Pt(w, h),
		writes: make(map[image.Point]int),
		pixels: make(map[image.Point]imagecolor.RGBA),
	}
}

func (s *countingSurface) Size() image.Point { return s.size }

func (s *countingSurface) SetPixel(x, y int, c imagecolor.RGBA) error {
	p := image.Pt(x, y)
	if s.failAt != nil && *s.failAt == p {
		return s.err
	}
	if !p.In(image.Rectangle{Max: s.size}) {
		return surface.ErrOutOfBounds
	}
	s.writes[p]++
	s.pixels[p] = c
	return nil
}

func (s *countingSurface) reset() {
	clear(s.writes)
	clear(s.pixels)
}

type fakeClock struct {
	now    time.Time
	sleeps []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(d time.Duration) {
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
}

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

package glyph

import (
	"image"
	"testing"

	"github.com/gold-silver-copper/mousefood/terminal/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"
)

func coverage(mask *image.Alpha) (n int) {
	b := mask.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if Covered(mask, x, y) {
				n++
			}
		}
	}
	return n
}

func TestBasic_Metrics(t *testing.T) {
	f := Basic()
	assert.Equal(t, image.Pt(7, 13), f.CellSize())
	assert.Equal(t, Metrics{Ascent: 11, Underline: 12, Strike: 6}, f.Metrics())
}

func TestBasic_Glyphs(t *testing.T) {
	f := Basic()
	a := f.Glyph('A', style.VariantRegular)
	assert.Equal(t, image.Rect(0, 0, 7, 13), a.Bounds())
	assert.Positive(t, coverage(a))
	assert.Zero(t, coverage(f.Glyph(' ', style.VariantRegular)))

	t.Run("cached", func(t *testing.T) {
		assert.Same(t, a, f.Glyph('A', style.VariantRegular))
		assert.NotSame(t, a, f.Glyph('A', style.VariantBold))
	})

	t.Run("unknown runes use the replacement", func(t *testing.T) {
		assert.Equal(t, f.Glyph(Replacement, style.VariantRegular).Pix, f.Glyph('世', style.VariantRegular).Pix)
	})

	t.Run("synthetic bold widens strokes", func(t *testing.T) {
		bold := f.Glyph('A', style.VariantBold)
		assert.Greater(t, coverage(bold), coverage(a))
		for y := range 13 {
			for x := range 7 {
				if Covered(a, x, y) {
					assert.True(t, Covered(bold, x, y), "pixel %d,%d lost", x, y)
				}
			}
		}
	})

	t.Run("synthetic italic slants", func(t *testing.T) {
		regular := f.Glyph('l', style.VariantRegular)
		italic := f.Glyph('l', style.VariantItalic)
		assert.NotEqual(t, regular.Pix, italic.Pix)
		// rows near the baseline are not shifted
		for x := range 7 {
			assert.Equal(t, regular.AlphaAt(x, 10), italic.AlphaAt(x, 10))
		}
	})
}

func TestBasic_BoxDrawing(t *testing.T) {
	f := Basic()
	horizontal := f.Glyph('─', style.VariantRegular)
	for x := range 7 {
		assert.True(t, Covered(horizontal, x, 6))
	}
	assert.Equal(t, 7, coverage(horizontal))

	vertical := f.Glyph('│', style.VariantRegular)
	for y := range 13 {
		assert.True(t, Covered(vertical, 3, y))
	}
	assert.Equal(t, 13, coverage(vertical))

	corner := f.Glyph('┌', style.VariantRegular)
	assert.True(t, Covered(corner, 6, 6))
	assert.True(t, Covered(corner, 3, 12))
	assert.False(t, Covered(corner, 0, 6))
	assert.False(t, Covered(corner, 3, 0))

	assert.Equal(t, 7*13, coverage(f.Glyph('█', style.VariantRegular)))

	t.Run("bold strokes are widened", func(t *testing.T) {
		bold := f.Glyph('│', style.VariantBold)
		assert.Equal(t, 26, coverage(bold))
		assert.True(t, Covered(bold, 4, 0))
	})
}

func TestHasGlyph(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want bool
	}{
		{"ascii", 'A', true},
		{"space", ' ', true},
		{"replacement character", '\ufffd', true},
		{"box drawing", '─', false},
		{"wide", '世', false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hasGlyph(basicfont.Face7x13, tt.r))
		})
	}
}

func TestNewFace(t *testing.T) {
	_, err := NewFace(FaceOptions{})
	assert.Error(t, err)

	f, err := NewFace(FaceOptions{Regular: basicfont.Face7x13, Bold: basicfont.Face7x13})
	require.NoError(t, err)
	// a real bold face is used as is
	assert.Equal(t, f.Glyph('A', style.VariantRegular).Pix, f.Glyph('A', style.VariantBold).Pix)
}

func TestGoMono(t *testing.T) {
	_, err := GoMono(0)
	assert.Error(t, err)

	f, err := GoMono(12)
	require.NoError(t, err)
	cell := f.CellSize()
	assert.Positive(t, cell.X)
	assert.Greater(t, cell.Y, cell.X)

	m := f.Metrics()
	assert.Less(t, m.Strike, m.Ascent)
	assert.Less(t, m.Underline, cell.Y)

	assert.Equal(t, f.Glyph(Replacement, style.VariantRegular).Pix, f.Glyph('世', style.VariantRegular).Pix)
	assert.Equal(t, cell.X, coverage(f.Glyph('─', style.VariantRegular)))

	regular := f.Glyph('W', style.VariantRegular)
	assert.Positive(t, coverage(regular))
	assert.NotEqual(t, regular.Pix, f.Glyph('W', style.VariantBold).Pix)
	assert.NotEqual(t, regular.Pix, f.Glyph('W', style.VariantItalic).Pix)
}

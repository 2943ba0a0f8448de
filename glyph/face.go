package glyph

import (
	"fmt"
	"image"
	"sync"

	"github.com/gold-silver-copper/mousefood/terminal/style"
	"github.com/gold-silver-copper/mousefood/terminal/utils"
	"github.com/mitchellh/hashstructure/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Replacement is drawn for runes a face has no glyph for.
const Replacement = '?'

// FaceOptions selects a font.Face per variant. Regular is required; a
// missing variant is synthesised from Regular.
type FaceOptions struct {
	Regular    font.Face
	Bold       font.Face
	Italic     font.Face
	BoldItalic font.Face
}

type variantFace struct {
	face   font.Face
	bold   bool
	italic bool
}

// Face rasterizes glyphs from x/image font faces into cell sized masks and
// caches them.
type Face struct {
	variants [4]variantFace
	cell     image.Point
	metrics  Metrics

	mu    sync.Mutex
	cache map[uint64]*image.Alpha
}

type glyphKey struct {
	Rune    rune
	Variant style.Variant
}

// NewFace builds a rasterizer. The cell is as wide as the advance of the
// full block and as tall as the face's line height.
func NewFace(opts FaceOptions) (*Face, error) {
	if opts.Regular == nil {
		return nil, fmt.Errorf("glyph: regular face is required")
	}
	f := &Face{cache: make(map[uint64]*image.Alpha)}
	f.variants[style.VariantRegular] = variantFace{face: opts.Regular}
	f.variants[style.VariantBold] = pick(opts.Bold, opts.Regular, true, false)
	f.variants[style.VariantItalic] = pick(opts.Italic, opts.Regular, false, true)
	switch {
	case opts.BoldItalic != nil:
		f.variants[style.VariantBoldItalic] = variantFace{face: opts.BoldItalic}
	case opts.Bold != nil:
		f.variants[style.VariantBoldItalic] = variantFace{face: opts.Bold, italic: true}
	case opts.Italic != nil:
		f.variants[style.VariantBoldItalic] = variantFace{face: opts.Italic, bold: true}
	default:
		f.variants[style.VariantBoldItalic] = variantFace{face: opts.Regular, bold: true, italic: true}
	}

	m := opts.Regular.Metrics()
	advance, ok := opts.Regular.GlyphAdvance('█')
	if !ok {
		advance, ok = opts.Regular.GlyphAdvance('M')
	}
	if !ok {
		return nil, fmt.Errorf("glyph: face has no advance for a reference glyph")
	}
	f.cell = image.Pt(advance.Ceil(), m.Height.Ceil())
	if f.cell.X < 1 || f.cell.Y < 1 {
		return nil, fmt.Errorf("glyph: degenerate cell size %v", f.cell)
	}

	ascent := min(m.Ascent.Ceil(), f.cell.Y-1)
	xHeight := m.XHeight.Ceil()
	if xHeight <= 0 {
		xHeight = ascent / 2
	}
	f.metrics = Metrics{
		Ascent:    ascent,
		Underline: min(ascent+1, f.cell.Y-1),
		Strike:    max(ascent-xHeight/2, 0),
	}
	return f, nil
}

func pick(face, regular font.Face, bold, italic bool) variantFace {
	if face != nil {
		return variantFace{face: face}
	}
	return variantFace{face: regular, bold: bold, italic: italic}
}

func (f *Face) CellSize() image.Point { return f.cell }

func (f *Face) Metrics() Metrics { return f.metrics }

func (f *Face) Glyph(r rune, v style.Variant) *image.Alpha {
	utils.Assert(int(v) < len(f.variants), "unknown variant")
	hash, err := hashstructure.Hash(glyphKey{Rune: r, Variant: v}, hashstructure.FormatV2, nil)
	utils.Assert(err == nil, "failed to hash glyph key: ", err)

	f.mu.Lock()
	defer f.mu.Unlock()
	if mask, ok := f.cache[hash]; ok {
		return mask
	}
	mask := f.render(r, f.variants[v])
	f.cache[hash] = mask
	return mask
}

// render draws r with its baseline on the ascent row and applies the
// synthetic styles the variant asks for. Box drawing and block runes are
// always drawn as strokes so borders join across cells.
func (f *Face) render(r rune, vf variantFace) *image.Alpha {
	mask := image.NewAlpha(image.Rectangle{Max: f.cell})
	if drawBox(mask, r) {
		if vf.bold {
			embolden(mask)
		}
		return mask
	}
	if !hasGlyph(vf.face, r) {
		r = Replacement
	}
	d := font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: vf.face,
		Dot:  fixed.P(0, f.metrics.Ascent),
	}
	d.DrawString(string(r))
	if vf.italic {
		shear(mask, f.metrics.Ascent)
	}
	if vf.bold {
		embolden(mask)
	}
	return mask
}

// CoverageFace is a font.Face that can tell which runes it really has.
// Faces passed to NewFace may implement it when their GlyphAdvance reports
// ok for runes they only draw as a fallback.
type CoverageFace interface {
	font.Face
	HasGlyph(r rune) bool
}

// hasGlyph reports whether face draws r itself. A basicfont face
// substitutes its own fallback glyph and still reports ok, so its ranges
// are checked.
func hasGlyph(face font.Face, r rune) bool {
	switch face := face.(type) {
	case CoverageFace:
		return face.HasGlyph(r)
	case *basicfont.Face:
		for _, rng := range face.Ranges {
			if rng.Low <= r && r < rng.High {
				return true
			}
		}
		return false
	}
	_, ok := face.GlyphAdvance(r)
	return ok
}

// embolden widens every stroke by one pixel to the right.
func embolden(mask *image.Alpha) {
	b := mask.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Max.X - 1; x > b.Min.X; x-- {
			left := mask.AlphaAt(x-1, y).A
			if left > mask.AlphaAt(x, y).A {
				mask.SetAlpha(x, y, mask.AlphaAt(x-1, y))
			}
		}
	}
}

// shear slants the mask: rows above the baseline shift right one pixel per
// four rows, rows below shift left.
func shear(mask *image.Alpha, baseline int) {
	b := mask.Bounds()
	row := make([]uint8, b.Dx())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		shift := (baseline - y) / 4
		if shift == 0 {
			continue
		}
		for x := range row {
			row[x] = mask.AlphaAt(b.Min.X+x, y).A
		}
		for x := range row {
			src := x - shift
			var a uint8
			if src >= 0 && src < len(row) {
				a = row[src]
			}
			mask.Pix[mask.PixOffset(b.Min.X+x, y)] = a
		}
	}
}

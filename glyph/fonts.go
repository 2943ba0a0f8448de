package glyph

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Basic returns the 7x13 bitmap font with synthetic bold and italic.
func Basic() *Face {
	f, err := NewFace(FaceOptions{Regular: basicfont.Face7x13})
	if err != nil {
		// Face7x13 always has an advance for M.
		panic(err)
	}
	return f
}

// GoMono returns the Go Mono family at size points (72 DPI), with a real
// face for every variant.
func GoMono(size float64) (*Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("glyph: invalid font size %v", size)
	}
	faces := make([]font.Face, 0, 4)
	for _, ttf := range [][]byte{gomono.TTF, gomonobold.TTF, gomonoitalic.TTF, gomonobolditalic.TTF} {
		parsed, err := opentype.Parse(ttf)
		if err != nil {
			return nil, fmt.Errorf("glyph: parse go mono: %w", err)
		}
		face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("glyph: go mono face: %w", err)
		}
		faces = append(faces, &sfntFace{Face: face, src: parsed})
	}
	return NewFace(FaceOptions{
		Regular:    faces[0],
		Bold:       faces[1],
		Italic:     faces[2],
		BoldItalic: faces[3],
	})
}

// sfntFace reports coverage from the font's cmap. opentype faces map a
// missing rune to the notdef glyph without saying so.
type sfntFace struct {
	font.Face
	src *opentype.Font
	buf sfnt.Buffer
}

// HasGlyph is called with the owning Face's lock held.
func (f *sfntFace) HasGlyph(r rune) bool {
	idx, err := f.src.GlyphIndex(&f.buf, r)
	return err == nil && idx != 0
}

package glyph

import (
	"image"
	"image/color"
)

type arms uint8

const (
	armLeft arms = 1 << iota
	armRight
	armUp
	armDown
)

// boxArms covers the box drawing characters UI borders use. Heavy, double
// and rounded forms are drawn with the light stroke.
var boxArms = map[rune]arms{
	'─': armLeft | armRight, '━': armLeft | armRight, '═': armLeft | armRight,
	'│': armUp | armDown, '┃': armUp | armDown, '║': armUp | armDown,
	'┌': armRight | armDown, '┏': armRight | armDown, '╔': armRight | armDown, '╭': armRight | armDown,
	'┐': armLeft | armDown, '┓': armLeft | armDown, '╗': armLeft | armDown, '╮': armLeft | armDown,
	'└': armRight | armUp, '┗': armRight | armUp, '╚': armRight | armUp, '╰': armRight | armUp,
	'┘': armLeft | armUp, '┛': armLeft | armUp, '╝': armLeft | armUp, '╯': armLeft | armUp,
	'├': armUp | armDown | armRight, '┣': armUp | armDown | armRight, '╠': armUp | armDown | armRight,
	'┤': armUp | armDown | armLeft, '┫': armUp | armDown | armLeft, '╣': armUp | armDown | armLeft,
	'┬': armLeft | armRight | armDown, '┳': armLeft | armRight | armDown, '╦': armLeft | armRight | armDown,
	'┴': armLeft | armRight | armUp, '┻': armLeft | armRight | armUp, '╩': armLeft | armRight | armUp,
	'┼': armLeft | armRight | armUp | armDown, '╋': armLeft | armRight | armUp | armDown, '╬': armLeft | armRight | armUp | armDown,
}

// drawBox paints box drawing and block element runes the face lacks.
// Returns false for any other rune.
func drawBox(mask *image.Alpha, r rune) bool {
	b := mask.Bounds()
	switch r {
	case '█':
		fillRect(mask, b)
		return true
	case '▀':
		fillRect(mask, image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Min.Y+b.Dy()/2))
		return true
	case '▄':
		fillRect(mask, image.Rect(b.Min.X, b.Min.Y+b.Dy()/2, b.Max.X, b.Max.Y))
		return true
	}
	a, ok := boxArms[r]
	if !ok {
		return false
	}
	cx, cy := b.Min.X+b.Dx()/2, b.Min.Y+b.Dy()/2
	if a&armLeft != 0 {
		fillRect(mask, image.Rect(b.Min.X, cy, cx+1, cy+1))
	}
	if a&armRight != 0 {
		fillRect(mask, image.Rect(cx, cy, b.Max.X, cy+1))
	}
	if a&armUp != 0 {
		fillRect(mask, image.Rect(cx, b.Min.Y, cx+1, cy+1))
	}
	if a&armDown != 0 {
		fillRect(mask, image.Rect(cx, cy, cx+1, b.Max.Y))
	}
	return true
}

func fillRect(mask *image.Alpha, r image.Rectangle) {
	r = r.Intersect(mask.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			mask.SetAlpha(x, y, color.Alpha{A: 0xFF})
		}
	}
}

// Package surface defines the pixel target the backend draws onto.
package surface

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

var ErrOutOfBounds = errors.New("surface: pixel out of bounds")

// Surface is a pixel addressable display. The origin is the top-left
// corner; x grows right and y grows down.
type Surface interface {
	// Size returns the width and height in pixels.
	Size() image.Point
	// SetPixel writes one pixel. Implementations report per-pixel failures
	// such as a bus error or a coordinate outside Size.
	SetPixel(x, y int, c color.RGBA) error
}

// Image adapts a draw.Image to Surface.
type Image struct {
	img draw.Image
}

// FromImage wraps img. The surface covers img.Bounds() with its origin at
// Bounds().Min.
func FromImage(img draw.Image) *Image {
	return &Image{img: img}
}

// NewRGBA returns a surface backed by a new w x h RGBA image.
func NewRGBA(w, h int) *Image {
	return FromImage(image.NewRGBA(image.Rect(0, 0, w, h)))
}

func (s *Image) Size() image.Point {
	return s.img.Bounds().Size()
}

func (s *Image) SetPixel(x, y int, c color.RGBA) error {
	b := s.img.Bounds()
	p := image.Pt(x, y).Add(b.Min)
	if !p.In(b) {
		return fmt.Errorf("%w: (%d, %d) outside %v", ErrOutOfBounds, x, y, b.Size())
	}
	s.img.Set(p.X, p.Y, c)
	return nil
}

// Image returns the backing image.
func (s *Image) Image() draw.Image { return s.img }

// Scaled presents a logical surface whose pixels are n x n blocks of the
// backing image, the way a simulator magnifies a small panel.
type Scaled struct {
	img   draw.Image
	scale int
}

// Scale wraps img with an integer magnification factor. The logical size is
// the image size divided by n.
func Scale(img draw.Image, n int) (*Scaled, error) {
	if n < 1 {
		return nil, fmt.Errorf("surface: invalid scale %d", n)
	}
	return &Scaled{img: img, scale: n}, nil
}

func (s *Scaled) Size() image.Point {
	return s.img.Bounds().Size().Div(s.scale)
}

func (s *Scaled) SetPixel(x, y int, c color.RGBA) error {
	size := s.Size()
	if x < 0 || y < 0 || x >= size.X || y >= size.Y {
		return fmt.Errorf("%w: (%d, %d) outside %v", ErrOutOfBounds, x, y, size)
	}
	origin := s.img.Bounds().Min.Add(image.Pt(x*s.scale, y*s.scale))
	block := image.Rectangle{Min: origin, Max: origin.Add(image.Pt(s.scale, s.scale))}
	draw.Draw(s.img, block, image.NewUniform(c), image.Point{}, draw.Src)
	return nil
}

// Image returns the backing image.
func (s *Scaled) Image() draw.Image { return s.img }

// Factor returns the magnification.
func (s *Scaled) Factor() int { return s.scale }

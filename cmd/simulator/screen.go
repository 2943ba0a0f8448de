package main

import (
	"fmt"
	"image"
	"os"
	"strings"

	"github.com/gold-silver-copper/mousefood"
	"github.com/gold-silver-copper/mousefood/terminal/color"
	"github.com/gold-silver-copper/mousefood/terminal/grid"
	"github.com/gold-silver-copper/mousefood/terminal/highlight"
	"github.com/gold-silver-copper/mousefood/terminal/style"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

type styledLine struct {
	text  string
	style style.Style
}

var (
	yellow      = style.Default().Foreground(style.Named(color.ColorTypeYellow))
	listingEdge = style.Default().Foreground(style.Named(color.ColorTypeBrightBlack))

	modifierLines = []styledLine{
		{"BOLD text", style.Default().Add(style.Bold)},
		{"DIM text", style.Default().Add(style.Dim)},
		{"ITALIC text", style.Default().Add(style.Italic)},
		{"UNDERLINED text", style.Default().Add(style.Underline)},
		{"SLOW_BLINK text", style.Default().Add(style.SlowBlink)},
		{"RAPID_BLINK text", style.Default().Add(style.RapidBlink)},
		{"REVERSED text", style.Default().Add(style.Reverse)},
		{"HIDDEN text", style.Default().Add(style.Hidden)},
		{"CROSSED_OUT text", style.Default().Add(style.CrossedOut)},
		{"BOLD + ITALIC", style.Default().Add(style.Bold | style.Italic)},
		{"DIM + UNDERLINED", style.Default().Add(style.Dim | style.Underline)},
		{"Normal text (no modifier)", style.Default()},
	}
)

// screen is the simulator's draw callback: the modifier test block and an
// optional highlighted source listing under it.
type screen struct {
	listing []highlight.Line
	name    string
}

func newScreen(path string) (*screen, error) {
	if path == "" {
		return &screen{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	lines, err := highlight.New(highlight.Options{Filename: path}).Highlight(string(data))
	if err != nil {
		return nil, err
	}
	return &screen{listing: lines, name: path}, nil
}

func (s *screen) Draw(f *mousefood.Frame) error {
	s.render(f.Buffer(), f.Count())
	return nil
}

func (s *screen) render(buf *grid.Buffer, count uint64) {
	area := buf.Area()
	top := area
	if len(s.listing) > 0 {
		top.Max.Y = area.Min.Y + max(area.Dy()/2, 3)
	}

	inner := drawBlock(buf, top, "Modifier Test", yellow)
	if inner.Empty() {
		return
	}

	// The counter goes through the ANSI writer, as a program printing
	// colored text would.
	w := grid.NewWriter(buf, nil)
	w.MoveTo(inner.Min.X, inner.Min.Y)
	fmt.Fprintf(w, "\x1b[33m%s\x1b[0m", runewidth.Truncate(fmt.Sprintf("Frame: %d", count), inner.Dx(), ""))

	y := inner.Min.Y + 1
	for _, line := range modifierLines {
		for _, text := range wrap(line.text, inner.Dx()) {
			if y >= inner.Max.Y {
				break
			}
			buf.SetString(inner.Min.X, y, text, line.style)
			y++
		}
	}

	if len(s.listing) == 0 {
		return
	}
	bottom := image.Rect(area.Min.X, top.Max.Y, area.Max.X, area.Max.Y)
	if in := drawBlock(buf, bottom, s.name, listingEdge); !in.Empty() {
		highlight.Render(buf, in, s.listing)
	}
}

// drawBlock draws a light border around r with title on its top edge and
// returns the area inside it.
func drawBlock(buf *grid.Buffer, r image.Rectangle, title string, st style.Style) image.Rectangle {
	r = r.Intersect(buf.Area())
	if r.Dx() < 2 || r.Dy() < 2 {
		return image.Rectangle{}
	}
	right, bottom := r.Max.X-1, r.Max.Y-1
	for x := r.Min.X + 1; x < right; x++ {
		buf.Set(x, r.Min.Y, grid.Cell{Rune: '─', Style: st})
		buf.Set(x, bottom, grid.Cell{Rune: '─', Style: st})
	}
	for y := r.Min.Y + 1; y < bottom; y++ {
		buf.Set(r.Min.X, y, grid.Cell{Rune: '│', Style: st})
		buf.Set(right, y, grid.Cell{Rune: '│', Style: st})
	}
	buf.Set(r.Min.X, r.Min.Y, grid.Cell{Rune: '┌', Style: st})
	buf.Set(right, r.Min.Y, grid.Cell{Rune: '┐', Style: st})
	buf.Set(r.Min.X, bottom, grid.Cell{Rune: '└', Style: st})
	buf.Set(right, bottom, grid.Cell{Rune: '┘', Style: st})

	if title != "" && r.Dx() > 2 {
		buf.SetString(r.Min.X+1, r.Min.Y, runewidth.Truncate(title, r.Dx()-2, ""), st)
	}
	return r.Inset(1)
}

// wrap breaks text at line break opportunities so that no line is wider
// than width. Trailing spaces are trimmed and a word longer than width is
// truncated.
func wrap(text string, width int) []string {
	if width < 1 {
		return nil
	}
	var (
		lines     []string
		line      strings.Builder
		lineWidth int
		state     = -1
	)
	flush := func() {
		lines = append(lines, runewidth.Truncate(strings.TrimRight(line.String(), " "), width, ""))
		line.Reset()
		lineWidth = 0
	}
	for len(text) > 0 {
		var (
			segment   string
			mustBreak bool
		)
		segment, text, mustBreak, state = uniseg.FirstLineSegmentInString(text, state)
		word := uniseg.StringWidth(strings.TrimRight(segment, " "))
		if lineWidth > 0 && lineWidth+word > width {
			flush()
		}
		line.WriteString(segment)
		lineWidth += uniseg.StringWidth(segment)
		if mustBreak && len(text) > 0 {
			flush()
		}
	}
	if line.Len() > 0 {
		flush()
	}
	return lines
}

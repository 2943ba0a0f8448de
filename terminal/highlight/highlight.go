// Package highlight turns source code into styled grid text with chroma.
package highlight

import (
	"fmt"
	"image"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gold-silver-copper/mousefood/terminal/color"
	"github.com/gold-silver-copper/mousefood/terminal/grid"
	"github.com/gold-silver-copper/mousefood/terminal/style"
	"github.com/rivo/uniseg"
)

const (
	defaultStyleName = "catppuccin-mocha"
	tabWidth         = 4
)

// Span is a run of text sharing one style. It never contains a newline.
type Span struct {
	Text  string
	Style style.Style
}

type Line []Span

type Options struct {
	// Lexer is a chroma lexer name or alias such as "go". Empty means
	// detect from Filename, then from the content.
	Lexer    string
	Filename string
	// Style is a chroma style name. Empty means catppuccin-mocha.
	Style string
}

type Highlighter struct {
	opts  Options
	style *chroma.Style
}

func New(opts Options) *Highlighter {
	name := opts.Style
	if name == "" {
		name = defaultStyleName
	}
	return &Highlighter{opts: opts, style: styles.Get(name)}
}

// Highlight tokenises source and splits the result into lines. Tokens in
// the style's base text colour keep the default foreground so the
// backend's configured colour applies.
func (h *Highlighter) Highlight(source string) ([]Line, error) {
	lexer := chroma.Coalesce(h.lexer(source))
	tokens, err := chroma.Tokenise(lexer, nil, source)
	if err != nil {
		return nil, fmt.Errorf("highlight: tokenise: %w", err)
	}

	base := h.style.Get(chroma.Text).Colour
	lines := []Line{nil}
	for _, tok := range tokens {
		if tok.Type == chroma.EOFType {
			break
		}
		st := tokenStyle(h.style.Get(tok.Type), base)
		parts := strings.Split(tok.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				lines = append(lines, nil)
			}
			part = strings.ReplaceAll(part, "\t", strings.Repeat(" ", tabWidth))
			if part == "" {
				continue
			}
			last := &lines[len(lines)-1]
			*last = append(*last, Span{Text: part, Style: st})
		}
	}
	// A trailing newline does not open another line.
	if len(lines) > 1 && len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}

// lexer returns a chroma lexer by name, or by filename, or auto-detects
// from content.
func (h *Highlighter) lexer(source string) chroma.Lexer {
	if h.opts.Lexer != "" {
		if l := lexers.Get(h.opts.Lexer); l != nil {
			return l
		}
	}
	if h.opts.Filename != "" {
		if l := lexers.Match(h.opts.Filename); l != nil {
			return l
		}
	}
	if l := lexers.Analyse(source); l != nil {
		return l
	}
	return lexers.Fallback
}

func tokenStyle(entry chroma.StyleEntry, base chroma.Colour) style.Style {
	var st style.Style
	if entry.Bold == chroma.Yes {
		st.Modifiers |= style.Bold
	}
	if entry.Italic == chroma.Yes {
		st.Modifiers |= style.Italic
	}
	if entry.Underline == chroma.Yes {
		st.Modifiers |= style.Underline
	}
	if entry.Colour.IsSet() && entry.Colour != base {
		st.Fg = style.RGBColor(color.RGB{
			R: entry.Colour.Red(),
			G: entry.Colour.Green(),
			B: entry.Colour.Blue(),
		})
	}
	return st
}

// Render places lines into area of buf, one line per row, clipping on both
// axes. It returns the number of rows written.
func Render(buf *grid.Buffer, area image.Rectangle, lines []Line) int {
	area = area.Intersect(buf.Area())
	rows := 0
	for i, line := range lines {
		y := area.Min.Y + i
		if y >= area.Max.Y {
			break
		}
		x := area.Min.X
		for _, span := range line {
			if x >= area.Max.X {
				break
			}
			x = setClipped(buf, x, y, area.Max.X, span)
		}
		rows++
	}
	return rows
}

// setClipped writes span from x, stopping before any grapheme that would
// cross the right edge limit.
func setClipped(buf *grid.Buffer, x, y, limit int, span Span) int {
	rest := span.Text
	state := -1
	for len(rest) > 0 && x < limit {
		var (
			cluster string
			width   int
		)
		cluster, rest, width, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if x+width > limit {
			break
		}
		x = buf.SetString(x, y, cluster, span.Style)
	}
	return x
}

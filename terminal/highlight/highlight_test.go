package highlight

import (
	"image"
	"strings"
	"testing"

	"github.com/gold-silver-copper/mousefood/terminal/grid"
	"github.com/gold-silver-copper/mousefood/terminal/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const source = "package main\n\nfunc main() {\n\tprintln(\"hi\")\n}\n"

func lineText(l Line) string {
	var sb strings.Builder
	for _, span := range l {
		sb.WriteString(span.Text)
	}
	return sb.String()
}

func TestHighlight_Lines(t *testing.T) {
	h := New(Options{Lexer: "go"})
	lines, err := h.Highlight(source)
	require.NoError(t, err)
	require.Len(t, lines, 5)
	assert.Equal(t, "package main", lineText(lines[0]))
	assert.Empty(t, lines[1])
	assert.Equal(t, "    println(\"hi\")", lineText(lines[3]))
	assert.Equal(t, "}", lineText(lines[4]))

	for _, line := range lines {
		for _, span := range line {
			assert.NotContains(t, span.Text, "\n")
		}
	}
}

func TestHighlight_KeywordsAreColoured(t *testing.T) {
	h := New(Options{Filename: "main.go"})
	lines, err := h.Highlight(source)
	require.NoError(t, err)
	require.NotEmpty(t, lines[0])

	keyword := lines[0][0]
	assert.Equal(t, "package", keyword.Text)
	assert.Equal(t, style.ColorTypeRGB, keyword.Style.Fg.Type)
}

func TestHighlight_Fallback(t *testing.T) {
	h := New(Options{Lexer: "no-such-lexer", Style: "no-such-style"})
	lines, err := h.Highlight("just text")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "just text", lineText(lines[0]))
}

func TestRender_Clips(t *testing.T) {
	buf, err := grid.New(8, 3)
	require.NoError(t, err)
	lines := []Line{
		{{Text: "abc"}, {Text: "defghij"}},
		{{Text: "x世y"}},
		{{Text: "12"}},
		{{Text: "dropped"}},
	}
	rows := Render(buf, image.Rect(1, 0, 5, 2), lines)
	assert.Equal(t, 2, rows)
	assert.Equal(t, " abcd\n x世y\n", buf.String())

	buf.Reset()
	Render(buf, image.Rect(0, 0, 2, 1), []Line{{{Text: "x世"}}})
	assert.Equal(t, "x\n\n", buf.String())
	assert.True(t, buf.Cell(1, 0).IsEmpty())
}

package grid

import (
	"fmt"
	"testing"

	"github.com/gold-silver-copper/mousefood/logger"
	"github.com/gold-silver-copper/mousefood/terminal/color"
	"github.com/gold-silver-copper/mousefood/terminal/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWriter(t *testing.T, cols, rows int) (*Buffer, *Writer) {
	t.Helper()
	buf := newBuffer(t, cols, rows)
	return buf, NewWriter(buf, logger.Nop)
}

func TestWriter_PlainText(t *testing.T) {
	buf, w := newWriter(t, 5, 3)
	n, err := fmt.Fprint(w, "ab\ncd\r\nxy")
	require.NoError(t, err)
	assert.Equal(t, 9, n)
	assert.Equal(t, "ab\ncd\nxy", buf.String())
	x, y := w.Cursor()
	assert.Equal(t, 2, x)
	assert.Equal(t, 2, y)
}

func TestWriter_WrapAndDrop(t *testing.T) {
	buf, w := newWriter(t, 3, 2)
	_, _ = w.Write([]byte("abcdefghij"))
	assert.Equal(t, "abc\ndef", buf.String())
	_, y := w.Cursor()
	assert.Equal(t, 2, y)
}

func TestWriter_PendingWrap(t *testing.T) {
	buf, w := newWriter(t, 3, 2)
	_, _ = w.Write([]byte("abc"))
	x, y := w.Cursor()
	assert.Equal(t, 2, x)
	assert.Equal(t, 0, y)

	// CR cancels the pending wrap
	_, _ = w.Write([]byte("\rX"))
	assert.Equal(t, "Xbc\n", buf.String())
}

func TestWriter_BackspaceAndTab(t *testing.T) {
	buf, w := newWriter(t, 20, 1)
	_, _ = w.Write([]byte("ab\bX\tY"))
	assert.Equal(t, "aX      Y", buf.String())
	assert.Equal(t, 'Y', buf.Cell(8, 0).Rune)
}

func TestWriter_SGR(t *testing.T) {
	buf, w := newWriter(t, 10, 1)
	_, _ = w.Write([]byte("\x1b[1;33mA\x1b[22;7mB\x1b[0mC\x1b[38;2;1;2;3;48;5;200mD\x1b[mE"))

	assert.Equal(t, style.Default().Add(style.Bold).Foreground(style.Named(color.ColorTypeYellow)), buf.Cell(0, 0).Style)
	assert.Equal(t, style.Default().Add(style.Reverse).Foreground(style.Named(color.ColorTypeYellow)), buf.Cell(1, 0).Style)
	assert.Equal(t, style.Default(), buf.Cell(2, 0).Style)
	assert.Equal(t, style.Style{
		Fg: style.RGBColor(color.RGB{R: 1, G: 2, B: 3}),
		Bg: style.PaletteColor(200),
	}, buf.Cell(3, 0).Style)
	assert.Equal(t, style.Default(), buf.Cell(4, 0).Style)
	assert.Equal(t, "ABCDE", buf.String())
}

func TestWriter_SplitWrites(t *testing.T) {
	buf, w := newWriter(t, 10, 1)
	// escape sequence and multi byte rune split across writes
	parts := [][]byte{
		[]byte("\x1b"), []byte("[3"), []byte("m"),
		[]byte("\xe4"), []byte("\xb8"), []byte("\x96!"),
	}
	for _, p := range parts {
		_, _ = w.Write(p)
	}
	assert.Equal(t, "世!", buf.String())
	assert.True(t, buf.Cell(0, 0).Style.Modifiers.Has(style.Italic))
}

func TestWriter_IgnoredSequences(t *testing.T) {
	buf, w := newWriter(t, 10, 1)
	_, _ = w.Write([]byte("\x1b[?25la\x1b7b\x1b[5Ac\a"))
	assert.Equal(t, "abc", buf.String())
}

func TestWriter_CursorAndErase(t *testing.T) {
	buf, w := newWriter(t, 4, 3)
	_, _ = w.Write([]byte("aaaa\nbbbb\ncccc"))
	_, _ = w.Write([]byte("\x1b[2;2H\x1b[K"))
	assert.Equal(t, "aaaa\nb\ncccc", buf.String())

	_, _ = w.Write([]byte("\x1b[44m\x1b[2J"))
	assert.Equal(t, "\n\n", buf.String())
	assert.Equal(t, style.Named(color.ColorTypeBlue), buf.Cell(0, 0).Style.Bg)

	_, _ = w.Write([]byte("\x1b[3;4HZ"))
	assert.Equal(t, 'Z', buf.Cell(3, 2).Rune)
}

func TestWriter_Reset(t *testing.T) {
	_, w := newWriter(t, 4, 2)
	_, _ = w.Write([]byte("\x1b[1mab\x1b["))
	w.Reset()
	x, y := w.Cursor()
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)
	assert.True(t, w.Style().IsDefault())
}

package grid

import (
	"image"
	"math"
	"unicode/utf8"

	"github.com/gold-silver-copper/mousefood/logger"
	"github.com/gold-silver-copper/mousefood/terminal/ansi"
	"github.com/gold-silver-copper/mousefood/terminal/sgr"
	"github.com/gold-silver-copper/mousefood/terminal/style"
	"github.com/gold-silver-copper/mousefood/terminal/tabstops"
	"github.com/gold-silver-copper/mousefood/terminal/utils"
	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

type writerState uint8

const (
	stateGround writerState = iota
	stateEscape
	stateCSI
	// A CSI sequence with private markers or intermediates, consumed up to
	// its final byte and dropped.
	stateCSIIgnore
)

// Writer interprets a stream of ANSI styled text into a Buffer. It handles
// SGR, cursor position (CUP), erase in display/line (ED, EL), CR, LF, BS
// and HT. Every other sequence is consumed and ignored. Lines auto-wrap at
// the right edge and text past the last row is dropped.
type Writer struct {
	buf    *Buffer
	logger logger.Logger
	tabs   *tabstops.Tabstops

	x, y int
	// The cursor sits on the last column after printing there; the next
	// printable wraps first.
	pendingWrap bool
	style       style.Style

	state  writerState
	params []byte
	// Printable bytes not yet placed. May end in an incomplete UTF-8
	// sequence between writes.
	text []byte
}

func NewWriter(buf *Buffer, l logger.Logger) *Writer {
	if l == nil {
		l = logger.Nop
	}
	return &Writer{
		buf:    buf,
		logger: l,
		tabs:   tabstops.NewTabstops(buf.Cols(), tabstops.TABSTOP_INTERVAL),
	}
}

// Cursor returns the cell the next character is placed at. y equals the
// row count once the writer has run off the bottom of the grid.
func (w *Writer) Cursor() (x, y int) { return w.x, w.y }

// Style returns the style applied to printed characters.
func (w *Writer) Style() style.Style { return w.style }

func (w *Writer) SetStyle(st style.Style) { w.style = st }

// MoveTo places the cursor, clamped to the grid.
func (w *Writer) MoveTo(x, y int) {
	w.x = max(0, min(x, w.buf.Cols()-1))
	w.y = max(0, min(y, w.buf.Rows()-1))
	w.pendingWrap = false
}

// Reset homes the cursor, resets the style and drops any partial sequence.
func (w *Writer) Reset() {
	w.x, w.y = 0, 0
	w.pendingWrap = false
	w.style.Reset()
	w.state = stateGround
	w.params = w.params[:0]
	w.text = w.text[:0]
}

// Write implements io.Writer. It never fails; content that does not fit is
// dropped.
func (w *Writer) Write(p []byte) (int, error) {
	for _, c := range p {
		switch w.state {
		case stateGround:
			if ansi.IsControl(c) {
				w.flush(true)
				w.control(c)
				continue
			}
			w.text = append(w.text, c)

		case stateEscape:
			if c == '[' {
				w.state = stateCSI
				w.params = w.params[:0]
				continue
			}
			// Two byte escapes carry nothing we render.
			w.logger.Debug("ignoring escape sequence", "final", ansi.String(c))
			w.state = stateGround

		case stateCSI:
			switch {
			case ansi.IsCSIParam(c):
				w.params = append(w.params, c)
			case ansi.IsCSIFinal(c):
				w.csiDispatch(c)
				w.state = stateGround
			case c == ansi.C0.ESC:
				w.state = stateEscape
			case c >= 0x20 && c <= 0x3F:
				w.state = stateCSIIgnore
			default:
				w.state = stateGround
				w.control(c)
			}

		case stateCSIIgnore:
			if ansi.IsCSIFinal(c) {
				w.state = stateGround
			}
		}
	}
	w.flush(false)
	return len(p), nil
}

func (w *Writer) control(c byte) {
	switch c {
	case ansi.C0.ESC:
		w.state = stateEscape
	case ansi.C0.CR:
		w.x = 0
		w.pendingWrap = false
	case ansi.C0.LF, ansi.C0.VT, ansi.C0.FF:
		// LF behaves as CRLF.
		w.x = 0
		w.y = min(w.y+1, w.buf.Rows())
		w.pendingWrap = false
	case ansi.C0.BS:
		if w.x > 0 {
			w.x--
		}
		w.pendingWrap = false
	case ansi.C0.HT:
		w.x = w.tabs.Next(w.x)
		w.pendingWrap = false
	case ansi.C0.NUL, ansi.C0.BEL, ansi.C0.DEL:
	default:
		w.logger.Debug("unsupported control character", "byte", ansi.String(c))
	}
}

// flush places the pending text. Unless all is set, an incomplete UTF-8
// sequence at the end is kept for the next write.
func (w *Writer) flush(all bool) {
	if len(w.text) == 0 {
		return
	}
	n := len(w.text)
	if !all {
		n = completePrefix(w.text)
	}
	w.print(string(w.text[:n]))
	w.text = append(w.text[:0], w.text[n:]...)
}

// completePrefix returns the length of the longest prefix of p that does
// not end inside a UTF-8 sequence.
func completePrefix(p []byte) int {
	for i := len(p) - 1; i >= 0 && i >= len(p)-utf8.UTFMax; i-- {
		if utf8.RuneStart(p[i]) {
			if utf8.FullRune(p[i:]) {
				return len(p)
			}
			return i
		}
	}
	return len(p)
}

func (w *Writer) print(s string) {
	cols, rows := w.buf.Size()
	s = norm.NFC.String(s)
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		r, width := clusterRune(cluster)
		if width == 0 || width > cols {
			continue
		}
		if w.pendingWrap || w.x+width > cols {
			w.x = 0
			w.y = min(w.y+1, rows)
			w.pendingWrap = false
		}
		if w.y >= rows {
			return
		}
		w.buf.put(w.x, w.y, r, width, w.style)
		w.x += width
		if w.x >= cols {
			w.x = cols - 1
			w.pendingWrap = true
		}
	}
}

func (w *Writer) csiDispatch(final byte) {
	params, seps := parseParams(w.params)
	switch final {
	case ansi.SGRFinal:
		parser := sgr.Parser{Params: params, ParamsSep: seps}
		for attr := range parser.Iter() {
			if attr == nil {
				continue
			}
			if attr.Type == sgr.AttributeTypeUnknown {
				w.logger.Debug("unknown sgr attribute", "params", attr.Unknown.Full)
				continue
			}
			w.style.SetGraphicsRendition(attr)
		}
	case 'H', 'f':
		// CUP is 1-based and defaults to the origin.
		w.MoveTo(param(params, 1, 1)-1, param(params, 0, 1)-1)
	case 'J':
		w.eraseDisplay(param(params, 0, 0))
	case 'K':
		w.eraseLine(param(params, 0, 0))
	default:
		w.logger.Debug("unsupported csi sequence", "final", string(final), "params", params)
	}
}

// blank is what erased cells become: empty, keeping the current
// background.
func (w *Writer) blank() Cell {
	return Blank(style.Style{Bg: w.style.Bg})
}

func (w *Writer) eraseDisplay(mode int) {
	cols, rows := w.buf.Size()
	y := min(w.y, rows)
	switch mode {
	case 0:
		w.eraseLine(0)
		w.buf.Fill(image.Rect(0, y+1, cols, rows), w.blank())
	case 1:
		w.buf.Fill(image.Rect(0, 0, cols, y), w.blank())
		w.eraseLine(1)
	case 2, 3:
		w.buf.Fill(w.buf.Area(), w.blank())
	}
}

func (w *Writer) eraseLine(mode int) {
	cols, _ := w.buf.Size()
	switch mode {
	case 0:
		w.buf.Fill(image.Rect(w.x, w.y, cols, w.y+1), w.blank())
	case 1:
		w.buf.Fill(image.Rect(0, w.y, w.x+1, w.y+1), w.blank())
	case 2:
		w.buf.Fill(image.Rect(0, w.y, cols, w.y+1), w.blank())
	}
	w.pendingWrap = false
}

// parseParams splits raw CSI parameter bytes into values, recording which
// values were followed by a colon.
func parseParams(raw []byte) ([]uint16, *utils.StaticBitSet) {
	if len(raw) == 0 {
		return nil, utils.NewStaticBitSet(0)
	}
	var (
		params []uint16
		colons []int
		cur    uint32
	)
	for _, c := range raw {
		switch c {
		case ';', ':':
			params = append(params, uint16(cur))
			if c == ':' {
				colons = append(colons, len(params)-1)
			}
			cur = 0
		default:
			cur = min(cur*10+uint32(c-'0'), math.MaxUint16)
		}
	}
	params = append(params, uint16(cur))

	seps := utils.NewStaticBitSet(len(params))
	for _, idx := range colons {
		seps.Set(idx)
	}
	return params, seps
}

// param returns params[idx], or def when it is missing or zero.
func param(params []uint16, idx, def int) int {
	if idx >= len(params) || params[idx] == 0 {
		return def
	}
	return int(params[idx])
}

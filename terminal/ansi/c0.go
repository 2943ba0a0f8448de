package ansi

// c0 lists the C0 controls the grid writer acts on. SOH/STX are ignored,
// see https://github.com/microsoft/terminal/issues/10786
type c0 struct {
	NUL uint8 // NUL is the null character (Caret: ^@, Char: \0).
	BEL uint8 // BEL is the bell character (Caret: ^G, Char: \a).
	BS  uint8 // BS is the backspace character (Caret: ^H, Char: \b).
	HT  uint8 // HT is the horizontal tab character (Caret: ^I, Char: \t).
	LF  uint8 // LF is the line feed character (Caret: ^J, Char: \n).
	VT  uint8 // VT is the vertical tab character (Caret: ^K, Char: \v).
	FF  uint8 // FF is the form feed character (Caret: ^L, Char: \f).
	CR  uint8 // CR is the carriage return character (Caret: ^M, Char: \r).
	ESC uint8 // ESC is the Escape character (Caret: ^[).
	DEL uint8 // DEL is the delete character (Caret: ^?).
}

// C0 (7-bit) control characters, see
// https://vt100.net/docs/vt100-ug/chapter3.html#S3.2
var C0 = c0{
	NUL: 0x00,
	BEL: 0x07,
	BS:  0x08,
	HT:  0x09,
	LF:  0x0A,
	VT:  0x0B,
	FF:  0x0C,
	CR:  0x0D,
	ESC: 0x1B,
	DEL: 0x7F,
}

// CSI final byte for Select Graphic Rendition.
const SGRFinal = 'm'

// IsControl reports whether b is a C0 control or DEL.
func IsControl(b byte) bool {
	return b < 0x20 || b == C0.DEL
}

// IsCSIParam reports whether b may appear in the parameter part of a CSI
// sequence: digits, ';' and ':'.
func IsCSIParam(b byte) bool {
	return (b >= '0' && b <= '9') || b == ';' || b == ':'
}

// IsCSIFinal reports whether b terminates a CSI sequence.
func IsCSIFinal(b byte) bool {
	return b >= 0x40 && b <= 0x7E
}

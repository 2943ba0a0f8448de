// SGR (Selective Graphic Rendition) attribute parsing and types
//
// This is implemented based on: https://vt100.net/docs/vt510-rm/SGR.html
package sgr

import (
	"iter"
	"math"

	"github.com/gold-silver-copper/mousefood/terminal/color"
	"github.com/gold-silver-copper/mousefood/terminal/utils"
)

type AttributeType uint16

const (
	AttributeTypeUnset AttributeType = iota
	// Bold the text.
	AttributeTypeBold
	AttributeTypeResetBold

	// Italic the text.
	AttributeTypeItalic
	AttributeTypeResetItalic

	// Faint/dim text.
	AttributeTypeFaint

	// Underline the text.
	AttributeTypeUnderline
	AttributeTypeResetUnderline
	AttributeTypeUnderlineColor
	AttributeTypeResetUnderlineColor

	// Overline the text.
	AttributeTypeOverline
	AttributeTypeResetOverline

	// Blink the text, SGR 5 and 6.
	AttributeTypeSlowBlink
	AttributeTypeRapidBlink
	AttributeTypeResetBlink

	// Invert fg/bg colors.
	AttributeTypeInverse
	AttributeTypeResetInverse

	// Invisible text.
	AttributeTypeInvisible
	AttributeTypeResetInvisible

	// Indexed colors: 30-37, 90-97, 38;5;n and the background equivalents.
	AttributeTypePaletteFg
	AttributeTypePaletteBg

	// Fg direct color
	AttributeTypeDirectColorFg
	// Bg direct color
	AttributeTypeDirectColorBg

	// Strikethrough the text.
	AttributeTypeStrikethrough
	AttributeTypeResetStrikethrough

	// Reset fg colors.
	AttributeTypeResetFg
	// Reset bg colors.
	AttributeTypeResetBg

	// Unkown
	AttributeTypeUnknown
)

type UnderlineType uint8

const (
	UnderlineTypeNone UnderlineType = iota
	UnderlineTypeSingle
	UnderlineTypeDouble
	UnderlineTypeCurly
	UnderlineTypeDotted
	UnderlineTypeDashed
)

type unknown struct {
	Full    []uint16
	Partial []uint16
}

type Attribute struct {
	Type           AttributeType
	Underline      UnderlineType
	UnderlineColor color.RGB
	Palette        uint8
	Unknown        unknown
	DirectColorFg  color.RGB
	DirectColorBg  color.RGB
}

type Parser struct {
	Params    []uint16
	ParamsSep *utils.StaticBitSet
	idx       int
}

// next return pull function that could be used to get attr parsed by this
// parser.
// Result of pull function:
//   - attr: parsed value, nil for recognised but unsupported sequences
//   - ok: bool value indicated pull is availabe next time or not.
func (p *Parser) next() func() (attr *Attribute, ok bool) {
	p.idx = 0
	return func() (*Attribute, bool) {
		if p.idx >= len(p.Params) {
			// An empty list implicitly means reset.
			if p.idx == 0 {
				p.idx += 1
				return &Attribute{Type: AttributeTypeUnset}, false
			}
			return nil, false
		}
		slice := p.Params[p.idx:]
		colon := p.isColon()
		p.idx += 1

		if colon {
			switch slice[0] {
			// Underline style and the extended colors take colon
			// separated sub parameters.
			case 4, 38, 48, 58:
			default:
				// otherwise, consume all the colon separated values.
				start := p.idx - 1
				p.consumeUnknownColon()
				return &Attribute{
					Type: AttributeTypeUnknown,
					Unknown: unknown{
						Full:    p.Params[start:p.idx],
						Partial: slice[0 : p.idx-start],
					},
				}, true
			}
		}

		// Based on: https://en.wikipedia.org/wiki/ANSI_escape_code
		switch v := slice[0]; {
		case v == 0:
			return &Attribute{Type: AttributeTypeUnset}, true
		case v == 1:
			return &Attribute{Type: AttributeTypeBold}, true
		case v == 2:
			return &Attribute{Type: AttributeTypeFaint}, true
		case v == 3:
			return &Attribute{Type: AttributeTypeItalic}, true
		case v == 4:
			if colon {
				return p.underlineStyle(slice), true
			}
			return &Attribute{Type: AttributeTypeUnderline, Underline: UnderlineTypeSingle}, true
		case v == 5:
			return &Attribute{Type: AttributeTypeSlowBlink}, true
		case v == 6:
			return &Attribute{Type: AttributeTypeRapidBlink}, true
		case v == 7:
			return &Attribute{Type: AttributeTypeInverse}, true
		case v == 8:
			return &Attribute{Type: AttributeTypeInvisible}, true
		case v == 9:
			return &Attribute{Type: AttributeTypeStrikethrough}, true
		case v == 21:
			return &Attribute{Type: AttributeTypeUnderline, Underline: UnderlineTypeDouble}, true
		case v == 22:
			return &Attribute{Type: AttributeTypeResetBold}, true
		case v == 23:
			return &Attribute{Type: AttributeTypeResetItalic}, true
		case v == 24:
			return &Attribute{Type: AttributeTypeResetUnderline}, true
		case v == 25:
			return &Attribute{Type: AttributeTypeResetBlink}, true
		case v == 27:
			return &Attribute{Type: AttributeTypeResetInverse}, true
		case v == 28:
			return &Attribute{Type: AttributeTypeResetInvisible}, true
		case v == 29:
			return &Attribute{Type: AttributeTypeResetStrikethrough}, true
		case v >= 30 && v <= 37:
			return &Attribute{Type: AttributeTypePaletteFg, Palette: uint8(v - 30)}, true
		case v == 38:
			return p.extendedColor(slice, colon, AttributeTypePaletteFg, AttributeTypeDirectColorFg), true
		case v == 39:
			return &Attribute{Type: AttributeTypeResetFg}, true
		case v >= 40 && v <= 47:
			return &Attribute{Type: AttributeTypePaletteBg, Palette: uint8(v - 40)}, true
		case v == 48:
			return p.extendedColor(slice, colon, AttributeTypePaletteBg, AttributeTypeDirectColorBg), true
		case v == 49:
			return &Attribute{Type: AttributeTypeResetBg}, true
		case v == 53:
			return &Attribute{Type: AttributeTypeOverline}, true
		case v == 55:
			return &Attribute{Type: AttributeTypeResetOverline}, true
		case v == 58:
			return p.extendedColor(slice, colon, AttributeTypeUnknown, AttributeTypeUnderlineColor), true
		case v == 59:
			return &Attribute{Type: AttributeTypeResetUnderlineColor}, true
		case v >= 90 && v <= 97:
			return &Attribute{Type: AttributeTypePaletteFg, Palette: uint8(v-90) + 8}, true
		case v >= 100 && v <= 107:
			return &Attribute{Type: AttributeTypePaletteBg, Palette: uint8(v-100) + 8}, true
		}
		return &Attribute{
			Type:    AttributeTypeUnknown,
			Unknown: unknown{Full: p.Params, Partial: slice},
		}, true
	}
}

// Iter returns an iterator that yields the attributes. A nil attribute is
// yielded for sequences that are recognised but not supported.
func (p *Parser) Iter() iter.Seq[*Attribute] {
	next := p.next()
	return func(yield func(*Attribute) bool) {
		for {
			attr, ok := next()
			if !yield(attr) {
				return
			}
			if !ok {
				return
			}
		}
	}
}

// underlineStyle parses 4:n, based on
// https://gitlab.com/gnachman/iterm2/-/issues/6382
func (p *Parser) underlineStyle(slice []uint16) *Attribute {
	if len(slice) < 2 {
		return &Attribute{Type: AttributeTypeUnderline, Underline: UnderlineTypeSingle}
	}
	p.idx += 1
	switch slice[1] {
	case 0:
		return &Attribute{Type: AttributeTypeResetUnderline}
	case 2:
		return &Attribute{Type: AttributeTypeUnderline, Underline: UnderlineTypeDouble}
	case 3:
		return &Attribute{Type: AttributeTypeUnderline, Underline: UnderlineTypeCurly}
	case 4:
		return &Attribute{Type: AttributeTypeUnderline, Underline: UnderlineTypeDotted}
	case 5:
		return &Attribute{Type: AttributeTypeUnderline, Underline: UnderlineTypeDashed}
	default:
		// For unknown underline styles, just render a single underline.
		return &Attribute{Type: AttributeTypeUnderline, Underline: UnderlineTypeSingle}
	}
}

// extendedColor parses the 38/48/58 forms: ;5;n indexed and ;2;r;g;b direct.
func (p *Parser) extendedColor(slice []uint16, colon bool, indexed, direct AttributeType) *Attribute {
	if len(slice) < 2 {
		return nil
	}
	switch slice[1] {
	case 5:
		if len(slice) < 3 {
			p.idx += 1
			return nil
		}
		p.idx += 2
		if indexed == AttributeTypeUnknown {
			return nil
		}
		return &Attribute{Type: indexed, Palette: uint8(min(math.MaxUint8, slice[2]))}
	case 2:
		rgb := p.parseDirectColor(slice, colon)
		if rgb == nil {
			return nil
		}
		attr := &Attribute{Type: direct}
		switch direct {
		case AttributeTypeDirectColorFg:
			attr.DirectColorFg = *rgb
		case AttributeTypeDirectColorBg:
			attr.DirectColorBg = *rgb
		default:
			attr.UnderlineColor = *rgb
		}
		return attr
	default:
		return nil
	}
}

// parseDirectColor parses the direct color from the parameters.
// Any direct color style must have at least 5 values.
func (p *Parser) parseDirectColor(slice []uint16, colon bool) *color.RGB {
	if len(slice) < 5 {
		if colon {
			p.consumeUnknownColon()
		} else {
			// Not enough channels, drop the remainder rather than reading the
			// channel values as attributes.
			p.idx += len(slice) - 1
		}
		return nil
	}
	utils.Assert(slice[1] == 2)
	channel := func(v uint16) uint8 { return uint8(min(math.MaxUint8, v)) }
	if !colon {
		p.idx += 4
		return &color.RGB{R: channel(slice[2]), G: channel(slice[3]), B: channel(slice[4])}
	}

	// With colons we might have either 5 or 6 values depending on whether
	// the color space id is present.
	switch p.countColon() {
	case 4:
		p.idx += 4
		return &color.RGB{R: channel(slice[2]), G: channel(slice[3]), B: channel(slice[4])}
	case 5:
		if len(slice) < 6 {
			p.consumeUnknownColon()
			return nil
		}
		p.idx += 5
		return &color.RGB{R: channel(slice[3]), G: channel(slice[4]), B: channel(slice[5])}
	default:
		p.consumeUnknownColon()
		return nil
	}
}

// Returns true if the present position has a colon separator.
// This always returns false for the last value since it has no
// separator.
func (p *Parser) isColon() bool {
	if p.ParamsSep == nil || p.idx >= len(p.Params)-1 {
		return false
	}
	return p.ParamsSep.IsSet(p.idx)
}

// consumeUnknownColon skips every colon separated sub parameter that follows
// the parameter the parser last consumed.
func (p *Parser) consumeUnknownColon() {
	p.idx += p.countColon()
	p.idx = min(p.idx, len(p.Params))
}

// countColon counts the colon separators following the parameter the
// parser last consumed.
func (p *Parser) countColon() int {
	if p.ParamsSep == nil {
		return 0
	}
	count := 0
	for idx := p.idx - 1; idx >= 0 && idx < len(p.Params)-1 && p.ParamsSep.IsSet(idx); idx++ {
		count++
	}
	return count
}

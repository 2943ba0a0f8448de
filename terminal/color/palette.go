package color

// Palette is the 256 color palette.
type Palette [256]RGB

// DefaultPalette holds the 16 named colors followed by the 6x6x6 cube and
// the 24 step gray ramp.
var DefaultPalette = func() Palette {
	var result Palette

	for i := range 16 {
		result[i] = NewName(ColorType(i)).defaultRGB()
	}

	cube := func(v int) uint8 {
		if v == 0 {
			return 0
		}
		return uint8(v*40 + 55)
	}
	i := 16
	for r := range 6 {
		for g := range 6 {
			for b := range 6 {
				result[i] = RGB{cube(r), cube(g), cube(b)}
				i++
			}
		}
	}

	for ; i < len(result); i++ {
		value := uint8((i-232)*10 + 8)
		result[i] = RGB{value, value, value}
	}
	return result
}()

type ColorType uint8

const (
	ColorTypeBlack ColorType = iota
	ColorTypeRed
	ColorTypeGreen
	ColorTypeYellow
	ColorTypeBlue
	ColorTypeMagenta
	ColorTypeCyan
	ColorTypeWhite
	ColorTypeBrightBlack
	ColorTypeBrightRed
	ColorTypeBrightGreen
	ColorTypeBrightYellow
	ColorTypeBrightBlue
	ColorTypeBrightMagenta
	ColorTypeBrightCyan
	ColorTypeBrightWhite
)

type Name struct {
	Type ColorType
}

func NewName(colorType ColorType) Name {
	return Name{Type: colorType}
}

func (n Name) defaultRGB() RGB {
	switch n.Type {
	case ColorTypeBlack:
		return RGB{0x00, 0x00, 0x00}
	case ColorTypeRed:
		return RGB{0xCD, 0x31, 0x31}
	case ColorTypeGreen:
		return RGB{0x0D, 0xBC, 0x79}
	case ColorTypeYellow:
		return RGB{0xE5, 0xE5, 0x10}
	case ColorTypeBlue:
		return RGB{0x24, 0x72, 0xC8}
	case ColorTypeMagenta:
		return RGB{0xBC, 0x3F, 0xBC}
	case ColorTypeCyan:
		return RGB{0x11, 0xA8, 0xCD}
	case ColorTypeWhite:
		return RGB{0xE5, 0xE5, 0xE5}
	case ColorTypeBrightBlack:
		return RGB{0x66, 0x66, 0x66}
	case ColorTypeBrightRed:
		return RGB{0xF1, 0x4C, 0x4C}
	case ColorTypeBrightGreen:
		return RGB{0x23, 0xD1, 0x8B}
	case ColorTypeBrightYellow:
		return RGB{0xF5, 0xF5, 0x43}
	case ColorTypeBrightBlue:
		return RGB{0x3B, 0x8E, 0xEA}
	case ColorTypeBrightMagenta:
		return RGB{0xD6, 0x70, 0xD6}
	case ColorTypeBrightCyan:
		return RGB{0x29, 0xB8, 0xDB}
	case ColorTypeBrightWhite:
		return RGB{0xFF, 0xFF, 0xFF}
	default:
		return RGB{0, 0, 0}
	}
}

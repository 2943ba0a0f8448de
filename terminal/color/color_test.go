package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPalette(t *testing.T) {
	assert.Equal(t, RGB{0xE5, 0xE5, 0x10}, DefaultPalette[ColorTypeYellow])
	// first and last cube entries
	assert.Equal(t, RGB{0, 0, 0}, DefaultPalette[16])
	assert.Equal(t, RGB{255, 255, 255}, DefaultPalette[231])
	// gray ramp
	assert.Equal(t, RGB{8, 8, 8}, DefaultPalette[232])
	assert.Equal(t, RGB{238, 238, 238}, DefaultPalette[255])
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want RGB
	}{
		{"#ff8000", RGB{0xff, 0x80, 0x00}},
		{"#fff", RGB{0xff, 0xff, 0xff}},
		{"yellow", RGB{0xff, 0xff, 0x00}},
		{" Black ", RGB{0, 0, 0}},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParse_Unknown(t *testing.T) {
	_, err := Parse("not-a-color")
	assert.ErrorIs(t, err, ErrUnknownColor)

	_, err = Parse("#zzzzzz")
	assert.Error(t, err)
}

func TestBlend_StrictlyCloser(t *testing.T) {
	pairs := [][2]RGB{
		{{255, 255, 0}, {0, 0, 0}},
		{{10, 10, 10}, {11, 10, 10}},
		{{11, 10, 10}, {10, 10, 10}},
		{{0, 0, 1}, {0, 0, 0}},
		{{200, 30, 90}, {201, 31, 89}},
	}
	for _, p := range pairs {
		fg, bg := p[0], p[1]
		got := fg.Blend(bg, 0.5)
		assert.Less(t, got.Distance(bg), fg.Distance(bg), "blend %v toward %v", fg, bg)
	}
}

func TestBlend_NoOp(t *testing.T) {
	c := RGB{1, 2, 3}
	assert.Equal(t, c, c.Blend(c, 0.5))
	assert.Equal(t, c, c.Blend(RGB{9, 9, 9}, 0))
}

func TestRGBA(t *testing.T) {
	c := RGB{1, 2, 3}
	rgba := c.RGBA()
	assert.Equal(t, uint8(0xff), rgba.A)
	assert.Equal(t, "#010203", c.Hex())
}

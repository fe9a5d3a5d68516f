package sketch

import (
	"image/color"
	"math/rand/v2"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHSVToRGB_Grayscale(t *testing.T) {
	for v := 0; v <= 255; v++ {
		r, g, b := HSVToRGB(0, 0, uint8(v))
		if r != uint8(v) || g != uint8(v) || b != uint8(v) {
			t.Fatalf("HSVToRGB(0, 0, %d) = (%d, %d, %d), want gray", v, r, g, b)
		}
	}
	// Hue is irrelevant without saturation.
	r, g, b := HSVToRGB(200, 0, 77)
	assert.Equal(t, [3]uint8{77, 77, 77}, [3]uint8{r, g, b})
}

func TestHSVToRGB_RegionBoundaries(t *testing.T) {
	tests := []struct {
		h       uint8
		r, g, b uint8
	}{
		{0, 255, 0, 0},
		{43, 254, 255, 0},
		{85, 3, 255, 0},
		{86, 0, 255, 0},
		{129, 0, 254, 255},
		{172, 0, 0, 255},
		{215, 255, 0, 254},
		{255, 255, 0, 15},
	}

	for _, tt := range tests {
		r, g, b := HSVToRGB(tt.h, 255, 255)
		assert.Equal(t, [3]uint8{tt.r, tt.g, tt.b}, [3]uint8{r, g, b}, "hue %d", tt.h)
	}
}

func TestHexFormatting(t *testing.T) {
	assert.Equal(t, "#ff0000", RGBHex(255, 0, 0))
	assert.Equal(t, "#0a0b0c", RGBHex(10, 11, 12))
	assert.Equal(t, "#ff0000", HSVHex(0, 255, 255))
	assert.Equal(t, "#808080", HSVHex(99, 0, 128))
	assert.Equal(t, "#c0c0c0", ToHex(Silver))
}

func TestBlend(t *testing.T) {
	opaqueRed := RGBA(255, 0, 0, 255)
	blue := RGB(0, 0, 255)
	assert.Equal(t, RGB(255, 0, 0), Blend(opaqueRed, blue))
	assert.Equal(t, blue, Blend(RGBA(255, 0, 0, 0), blue))

	// The legacy formula weights the destination by its own alpha.
	src := RGBA(100, 100, 100, 255)
	dst := RGBA(50, 50, 50, 0)
	assert.Equal(t, RGB(100, 100, 100), Blend(src, dst))
	assert.Equal(t, RGB(150, 150, 150), BlendLegacy(src, dst))
}

func TestRandomColor(t *testing.T) {
	hexRe := regexp.MustCompile(`^#[0-9a-f]{6}$`)
	rng := rand.New(rand.NewPCG(7, 11))
	for i := 0; i < 50; i++ {
		s := RandomColor(rng)
		require.Regexp(t, hexRe, s)
		c := Hex(s)
		assert.False(t, c.R == c.G || c.G == c.B || c.R == c.B, "channels must be distinct: %s", s)
	}
	assert.Regexp(t, hexRe, RandomColor(nil))
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#f00", RGB(255, 0, 0)},
		{"#00FF00", RGB(0, 255, 0)},
		{"#0000ff80", RGBA(0, 0, 255, 128)},
		{"silver", Silver},
		{"White", White},
		{"Dark Blue", RGB(0, 0, 139)},
		{"  black ", Black},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "#12", "#ggg", "notacolor"} {
		_, err := ParseColor(bad)
		assert.Error(t, err, "input %q", bad)
	}
	assert.Equal(t, Black, Hex("notacolor"))
}

func TestWithAlpha(t *testing.T) {
	assert.Equal(t, uint8(0), withAlpha(Red, 0).A)
	assert.Equal(t, uint8(255), withAlpha(Red, 1).A)
	assert.Equal(t, uint8(255), withAlpha(Red, 2).A)
}

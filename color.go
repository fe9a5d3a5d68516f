package sketch

import (
	"fmt"
	"image/color"
	"math/rand/v2"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// Common colors.
var (
	Black       = color.NRGBA{A: 255}
	White       = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	Red         = color.NRGBA{R: 255, A: 255}
	Green       = color.NRGBA{G: 255, A: 255}
	Blue        = color.NRGBA{B: 255, A: 255}
	Silver      = color.NRGBA{R: 192, G: 192, B: 192, A: 255}
	Transparent = color.NRGBA{}
)

// RGB creates an opaque color from 8-bit components.
func RGB(r, g, b uint8) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// RGBA creates a color from 8-bit components with straight alpha.
func RGBA(r, g, b, a uint8) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// HSVToRGB converts an 8-bit HSV triple to RGB using fixed-point cone math.
// All inputs and outputs are in [0, 255]; hue is split into six regions of
// 43 units each.
func HSVToRGB(h, s, v uint8) (r, g, b uint8) {
	if s == 0 {
		return v, v, v
	}

	H, S, V := int(h), int(s), int(v)
	region := H / 43
	rem := (H - region*43) * 6

	p := uint8((V * (255 - S)) >> 8)
	q := uint8((V * (255 - ((S * rem) >> 8))) >> 8)
	t := uint8((V * (255 - ((S * (255 - rem)) >> 8))) >> 8)

	switch region {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}

// HSV creates an opaque color from 8-bit HSV components.
func HSV(h, s, v uint8) color.NRGBA {
	r, g, b := HSVToRGB(h, s, v)
	return RGB(r, g, b)
}

// RGBHex formats an RGB triple as "#rrggbb".
func RGBHex(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// HSVHex converts an HSV triple to RGB and formats it as "#rrggbb".
func HSVHex(h, s, v uint8) string {
	return RGBHex(HSVToRGB(h, s, v))
}

// ToHex formats any color as "#rrggbb", dropping alpha.
func ToHex(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBHex(n.R, n.G, n.B)
}

// Blend composites src over dst with straight-alpha "over" compositing:
// each channel is src*αs + dst*(1-αs), truncated. The result is opaque.
func Blend(src, dst color.NRGBA) color.NRGBA {
	as := float64(src.A) / 255
	mix := func(s, d uint8) uint8 {
		return uint8(float64(s)*as + float64(d)*(1-as))
	}
	return RGB(mix(src.R, dst.R), mix(src.G, dst.G), mix(src.B, dst.B))
}

// BlendLegacy computes src*αs + dst*(1-αd). It weights dst by its own
// alpha rather than by the source coverage, which earlier sketches were
// tuned against.
func BlendLegacy(src, dst color.NRGBA) color.NRGBA {
	as := float64(src.A) / 255
	ad := float64(dst.A) / 255
	mix := func(s, d uint8) uint8 {
		return uint8(clamp255(float64(s)*as + float64(d)*(1-ad)))
	}
	return RGB(mix(src.R, dst.R), mix(src.G, dst.G), mix(src.B, dst.B))
}

// RandomColor returns "#rrggbb" built from three distinct channel values
// sampled from [0, 255). A nil rng uses the global source.
func RandomColor(rng *rand.Rand) string {
	perm := rand.Perm
	if rng != nil {
		perm = rng.Perm
	}
	p := perm(255)
	return RGBHex(uint8(p[0]), uint8(p[1]), uint8(p[2]))
}

// ParseColor parses "#rgb", "#rrggbb", "#rrggbbaa" or an SVG color name.
// Names are matched case-insensitively and ignore spaces, so "Dark Blue"
// and "darkblue" are equivalent.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return color.NRGBA{}, fmt.Errorf("sketch: empty color")
	}
	if s[0] == '#' {
		return parseHexColor(s)
	}
	name := strings.ReplaceAll(cases.Fold().String(s), " ", "")
	c, ok := colornames.Map[name]
	if !ok {
		return color.NRGBA{}, fmt.Errorf("sketch: unknown color %q", s)
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
}

// Hex is ParseColor that returns opaque black for unparsable input.
func Hex(s string) color.NRGBA {
	c, err := ParseColor(s)
	if err != nil {
		return Black
	}
	return c
}

func parseHexColor(s string) (color.NRGBA, error) {
	hex := s[1:]
	digits := make([]uint8, len(hex))
	for i := 0; i < len(hex); i++ {
		d, ok := hexDigit(hex[i])
		if !ok {
			return color.NRGBA{}, fmt.Errorf("sketch: invalid hex color %q", s)
		}
		digits[i] = d
	}

	c := color.NRGBA{A: 255}
	switch len(digits) {
	case 3:
		c.R, c.G, c.B = digits[0]*17, digits[1]*17, digits[2]*17
	case 6:
		c.R = digits[0]<<4 | digits[1]
		c.G = digits[2]<<4 | digits[3]
		c.B = digits[4]<<4 | digits[5]
	case 8:
		c.R = digits[0]<<4 | digits[1]
		c.G = digits[2]<<4 | digits[3]
		c.B = digits[4]<<4 | digits[5]
		c.A = digits[6]<<4 | digits[7]
	default:
		return color.NRGBA{}, fmt.Errorf("sketch: invalid hex color %q", s)
	}
	return c, nil
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// withAlpha scales the alpha channel of c by a in [0, 1].
func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(clamp255(float64(c.A) * a))
	return c
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

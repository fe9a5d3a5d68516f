package shape

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gg/text"
)

// Text renders s upright with face in col. The raster is sized to the
// advance width and line height of the string with one pixel of padding.
func Text(s string, face text.Face, col color.NRGBA) (*image.RGBA, bool) {
	if s == "" || face == nil || col.A == 0 {
		return nil, false
	}

	metrics := face.Metrics()
	w := int(math.Ceil(face.Advance(s))) + 2
	h := int(math.Ceil(metrics.Ascent+metrics.Descent)) + 2
	if w <= 2 || h <= 2 {
		return nil, false
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	text.Draw(img, s, face, 1, 1+metrics.Ascent, col)
	return img, true
}

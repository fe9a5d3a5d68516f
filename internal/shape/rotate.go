package shape

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/transform"
)

// Rotate returns img rotated clockwise by deg degrees about its center.
// The output grows to hold the whole rotated image.
func Rotate(img *image.RGBA, deg float64) *image.RGBA {
	if deg == 0 || img == nil {
		return img
	}
	return transform.Rotate(img, deg, &transform.RotationOptions{ResizeBounds: true})
}

// Centered returns a raster placing img so that its center lands on the
// device point (x, y).
func Centered(img *image.RGBA, x, y float64) Raster {
	b := img.Bounds()
	return Raster{
		Image: img,
		At:    image.Pt(int(math.Round(x-float64(b.Dx())/2)), int(math.Round(y-float64(b.Dy())/2))),
	}
}

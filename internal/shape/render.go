package shape

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"
)

// Paint describes how a path is filled and outlined.
// A zero alpha disables the corresponding pass.
type Paint struct {
	Fill        color.NRGBA
	Stroke      color.NRGBA
	StrokeWidth float64
	// RoundCaps rounds the ends of open strokes.
	RoundCaps bool
}

// Raster is a rendered primitive positioned in device space.
type Raster struct {
	Image *image.RGBA
	// At is the device position of Image.Bounds().Min.
	At image.Point
}

// Render rasterizes g through m into a buffer sized to the device bounding
// box of g, padded for the stroke and clipped to clip. It reports false
// when g is empty, nothing would be visible or the box misses clip.
//
// The stroke width is in device pixels whatever the scale of m.
func Render(g Geometry, m gg.Matrix, clip image.Rectangle, paint Paint) (Raster, bool) {
	if g.Empty() || (paint.Fill.A == 0 && (paint.Stroke.A == 0 || paint.StrokeWidth <= 0)) {
		return Raster{}, false
	}

	box, ok := deviceBounds(g.hull.Transform(m).BoundingBox(), paint.StrokeWidth, clip)
	if !ok {
		return Raster{}, false
	}

	dc := gg.NewContext(box.Dx(), box.Dy())
	defer func() { _ = dc.Close() }()

	dc.SetTransform(gg.Translate(-float64(box.Min.X), -float64(box.Min.Y)).Multiply(m))
	g.draw(dc)
	// The path is already in buffer space; gg scales line widths by the
	// current matrix, so paint under the identity.
	dc.Identity()

	if paint.Fill.A > 0 {
		dc.SetColor(paint.Fill)
		if err := dc.FillPreserve(); err != nil {
			return Raster{}, false
		}
	}
	if paint.Stroke.A > 0 && paint.StrokeWidth > 0 {
		dc.SetColor(paint.Stroke)
		dc.SetLineWidth(paint.StrokeWidth)
		if paint.RoundCaps {
			dc.SetLineCap(gg.LineCapRound)
		}
		if err := dc.Stroke(); err != nil {
			return Raster{}, false
		}
	}
	dc.ClearPath()

	return Raster{Image: toRGBA(dc.Image()), At: box.Min}, true
}

// deviceBounds returns the integer box covering bb, grown by half the
// stroke width plus one pixel of anti-aliasing and clipped to clip.
func deviceBounds(bb gg.Rect, strokeWidth float64, clip image.Rectangle) (image.Rectangle, bool) {
	sum := bb.Min.X + bb.Min.Y + bb.Max.X + bb.Max.Y
	if math.IsNaN(sum) || math.IsInf(sum, 0) {
		return image.Rectangle{}, false
	}

	// Clamp in float space so far off-canvas coordinates never overflow int.
	pad := math.Max(strokeWidth, 0)/2 + 1
	minX := math.Max(math.Floor(bb.Min.X-pad), float64(clip.Min.X))
	minY := math.Max(math.Floor(bb.Min.Y-pad), float64(clip.Min.Y))
	maxX := math.Min(math.Ceil(bb.Max.X+pad), float64(clip.Max.X))
	maxY := math.Min(math.Ceil(bb.Max.Y+pad), float64(clip.Max.Y))
	if minX >= maxX || minY >= maxY {
		return image.Rectangle{}, false
	}
	return image.Rect(int(minX), int(minY), int(maxX), int(maxY)), true
}

// toRGBA returns img as an *image.RGBA anchored at (0, 0).
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

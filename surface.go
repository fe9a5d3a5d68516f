package sketch

import (
	"image"
	"image/color"
	"slices"

	"golang.org/x/image/draw"
)

// ShapeID identifies a shape placed on a Surface.
type ShapeID uint64

// All targets every shape on the surface when passed to Canvas.Clear.
// The zero ShapeID is never assigned; drawing calls that place nothing
// return it.
const All ShapeID = ^ShapeID(0)

// Shape is a rasterized primitive ready for compositing.
type Shape struct {
	Image *image.RGBA
	// At is the device position of the image's top-left pixel.
	At image.Point
}

// Surface is the retained 2D raster region a Canvas draws on.
//
// Shapes are composited in placement order over the background. A host
// window presents Capture's result; headless runs use it directly.
type Surface interface {
	// Size returns the device size in pixels.
	Size() (width, height int)
	// Place adds a shape on top of the others and returns its handle.
	Place(s Shape) ShapeID
	// Remove deletes one shape, reporting whether it existed.
	Remove(id ShapeID) bool
	// Clear deletes every shape.
	Clear()
	// Len returns the number of retained shapes.
	Len() int
	// Capture returns a copy of the rendered frame.
	Capture() (*image.RGBA, error)
}

type placedShape struct {
	id ShapeID
	Shape
}

// RasterSurface is an in-memory Surface over a solid background.
// It is not safe for concurrent use.
type RasterSurface struct {
	width, height int
	background    color.NRGBA

	shapes []placedShape
	nextID ShapeID

	frame *image.RGBA
	dirty bool
}

var _ Surface = (*RasterSurface)(nil)

// NewRasterSurface creates a surface of the given size and background.
func NewRasterSurface(width, height int, background color.Color) *RasterSurface {
	return &RasterSurface{
		width:      width,
		height:     height,
		background: color.NRGBAModel.Convert(background).(color.NRGBA),
		nextID:     1,
		dirty:      true,
	}
}

// Size implements Surface.
func (s *RasterSurface) Size() (int, int) {
	return s.width, s.height
}

// Background returns the surface background color.
func (s *RasterSurface) Background() color.NRGBA {
	return s.background
}

// Place implements Surface.
func (s *RasterSurface) Place(sh Shape) ShapeID {
	id := s.nextID
	s.nextID++
	s.shapes = append(s.shapes, placedShape{id: id, Shape: sh})
	s.dirty = true
	return id
}

// Remove implements Surface.
func (s *RasterSurface) Remove(id ShapeID) bool {
	i := slices.IndexFunc(s.shapes, func(p placedShape) bool { return p.id == id })
	if i < 0 {
		return false
	}
	s.shapes = slices.Delete(s.shapes, i, i+1)
	s.dirty = true
	return true
}

// Clear implements Surface.
func (s *RasterSurface) Clear() {
	clear(s.shapes)
	s.shapes = s.shapes[:0]
	s.dirty = true
}

// Len implements Surface.
func (s *RasterSurface) Len() int {
	return len(s.shapes)
}

// Capture implements Surface. The composite is cached until the shape list
// changes; callers receive their own copy.
func (s *RasterSurface) Capture() (*image.RGBA, error) {
	if s.width <= 0 || s.height <= 0 {
		return nil, ErrCaptureUnavailable
	}
	if s.dirty || s.frame == nil {
		s.composite()
	}
	out := image.NewRGBA(s.frame.Rect)
	copy(out.Pix, s.frame.Pix)
	return out, nil
}

// At returns the composited color at device (x, y) without copying the
// frame. It reports false outside the surface.
func (s *RasterSurface) At(x, y int) (color.NRGBA, bool) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return color.NRGBA{}, false
	}
	if s.dirty || s.frame == nil {
		s.composite()
	}
	c := s.frame.RGBAAt(x, y)
	return color.NRGBAModel.Convert(c).(color.NRGBA), true
}

func (s *RasterSurface) composite() {
	if s.frame == nil {
		s.frame = image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	}
	draw.Draw(s.frame, s.frame.Rect, image.NewUniform(s.background), image.Point{}, draw.Src)
	for _, p := range s.shapes {
		if p.Image == nil {
			continue
		}
		r := p.Image.Bounds().Sub(p.Image.Bounds().Min).Add(p.At)
		draw.Draw(s.frame, r, p.Image, p.Image.Bounds().Min, draw.Over)
	}
	s.dirty = false
}

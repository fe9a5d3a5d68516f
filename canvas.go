package sketch

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/sketch/internal/fonts"
	"github.com/gogpu/sketch/internal/shape"
)

// Canvas issues drawing calls against a Surface through the current
// transform and style.
//
// Every drawing call reads the top StyleFrame, maps its logical points to
// device pixels, rasterizes the result into a small buffer and places it on
// the surface. Push and Pop scope style changes:
//
//	c.Push()
//	c.Translate(100, 100)
//	c.Rotate(45)
//	c.Rect(-10, -10, 10, 10)
//	_ = c.Pop()
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	surface       Surface
	width, height int

	style  styleStack
	bounds *boundsMapping

	// vertices collects points between BeginShape and EndShape.
	vertices []Vector

	fonts *fonts.Resolver
	grid  bool

	frames []*image.RGBA
}

// NewCanvas creates a canvas drawing on surface with the default style.
func NewCanvas(surface Surface) *Canvas {
	w, h := surface.Size()
	return &Canvas{
		surface: surface,
		width:   w,
		height:  h,
		style:   newStyleStack(DefaultStyle()),
		fonts:   fonts.New(fonts.WithLogger(Logger), fonts.WithSystemFonts("")),
	}
}

// Surface returns the surface the canvas draws on.
func (c *Canvas) Surface() Surface {
	return c.surface
}

// Width returns the device width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the device height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Style returns a copy of the current style frame.
func (c *Canvas) Style() StyleFrame {
	return *c.style.top()
}

// Depth returns the number of frames on the style stack, root included.
func (c *Canvas) Depth() int {
	return c.style.depth()
}

// Transform returns the logical-to-device mapping of the current frame.
func (c *Canvas) Transform() Transform {
	return newTransform(*c.style.top(), c.bounds)
}

// Translate moves the origin of the current frame to (x, y).
// The origin is absolute, not added to the previous one.
func (c *Canvas) Translate(x, y float64) {
	c.style.top().Origin = Vec(x, y)
}

// TranslateVec is Translate taking a vector.
func (c *Canvas) TranslateVec(v Vector) {
	c.Translate(v.X, v.Y)
}

// Rotate sets the rotation of the current frame in degrees.
// Positive angles turn clockwise on screen.
func (c *Canvas) Rotate(deg float64) {
	c.style.top().Rotation = deg
}

// Fill sets the interior color and re-enables filling.
func (c *Canvas) Fill(col color.Color) {
	f := c.style.top()
	f.Fill = toNRGBA(col)
	f.NoFill = false
}

// NoFill leaves shape interiors transparent.
func (c *Canvas) NoFill() {
	c.style.top().NoFill = true
}

// Stroke sets the outline color and re-enables outlines.
func (c *Canvas) Stroke(col color.Color) {
	f := c.style.top()
	f.Stroke = toNRGBA(col)
	f.NoStroke = false
}

// NoStroke paints outlines with the fill color.
func (c *Canvas) NoStroke() {
	c.style.top().NoStroke = true
}

// StrokeWidth sets the outline width in device pixels.
func (c *Canvas) StrokeWidth(w float64) {
	c.style.top().StrokeWidth = math.Max(w, 0)
}

// Alpha scales the opacity of fill and stroke; a is clamped to [0, 1].
func (c *Canvas) Alpha(a float64) {
	c.style.top().Alpha = math.Max(0, math.Min(1, a))
}

// FontFamily sets the text family. A trailing number also sets the size,
// so "Tahoma 20" is accepted.
func (c *Canvas) FontFamily(spec string) {
	family, size := parseFontSpec(spec)
	f := c.style.top()
	f.FontFamily = family
	if size > 0 {
		f.FontSize = size
	}
}

// FontSize sets the text size in points.
func (c *Canvas) FontSize(size float64) {
	if size > 0 {
		c.style.top().FontSize = size
	}
}

// FontColor sets the text color.
func (c *Canvas) FontColor(col color.Color) {
	c.style.top().FontColor = toNRGBA(col)
}

// Push saves a copy of the current frame. Changes made until the matching
// Pop are discarded by it.
func (c *Canvas) Push() {
	c.style.push()
}

// Pop restores the frame saved by the last Push. It returns
// ErrStackUnderflow without changing anything when no frame was pushed.
func (c *Canvas) Pop() error {
	if err := c.style.pop(); err != nil {
		Logger().Debug("sketch: pop at root frame")
		return err
	}
	return nil
}

// ResetStyle drops every pushed frame and restores the default style.
func (c *Canvas) ResetStyle() {
	c.style.reset(DefaultStyle())
}

// SetBounds maps the logical range b onto the whole canvas. Logical Y
// grows upward while the mapping is active.
func (c *Canvas) SetBounds(b Bounds) error {
	if err := b.Validate(); err != nil {
		return err
	}
	bm := newBoundsMapping(b, c.width, c.height)
	c.bounds = &bm
	Logger().Debug("sketch: bounds mapping",
		"bounds", b, "scaleX", bm.ScaleX, "scaleY", bm.ScaleY, "center", bm.Center)
	return nil
}

// ClearBounds returns to plain device coordinates.
func (c *Canvas) ClearBounds() {
	c.bounds = nil
}

// Bounds returns the active logical range, if any.
func (c *Canvas) Bounds() (Bounds, bool) {
	if c.bounds == nil {
		return Bounds{}, false
	}
	return c.bounds.Bounds, true
}

// ShowGrid toggles the grid overlay. The grid is drawn on the next full
// clear.
func (c *Canvas) ShowGrid(on bool) {
	c.grid = on
}

// Clear removes one shape, or every shape when target is All. A full clear
// also discards a pending BeginShape vertex list and redraws the grid.
func (c *Canvas) Clear(target ShapeID) {
	if target != All {
		c.surface.Remove(target)
		return
	}
	c.surface.Clear()
	c.vertices = c.vertices[:0]
	if c.grid {
		c.drawGrid()
	}
}

// GetPixel returns the color rendered at logical (x, y), offset by the
// current origin only. Rotation and bounds scaling are not applied. It
// returns opaque black when the frame cannot be captured or the point lies
// outside it.
func (c *Canvas) GetPixel(x, y float64) color.NRGBA {
	o := c.style.top().Origin
	px, ok := c.pixelAt(int(math.Floor(x+o.X)), int(math.Floor(y+o.Y)))
	if !ok {
		return Black
	}
	return px
}

// pixelReader is implemented by surfaces that can read one pixel without
// copying the whole frame.
type pixelReader interface {
	At(x, y int) (color.NRGBA, bool)
}

func (c *Canvas) pixelAt(x, y int) (color.NRGBA, bool) {
	if pr, ok := c.surface.(pixelReader); ok {
		return pr.At(x, y)
	}
	frame, err := c.surface.Capture()
	if err != nil {
		Logger().Warn("sketch: capture failed", "err", err)
		return color.NRGBA{}, false
	}
	if !image.Pt(x, y).In(frame.Rect) {
		return color.NRGBA{}, false
	}
	return color.NRGBAModel.Convert(frame.At(x, y)).(color.NRGBA), true
}

// place puts a rendered raster on the surface.
func (c *Canvas) place(kind string, r shape.Raster) ShapeID {
	id := c.surface.Place(Shape{Image: r.Image, At: r.At})
	Logger().Debug("sketch: shape placed",
		"kind", kind, "id", uint64(id), "at", r.At, "size", r.Image.Bounds().Size())
	return id
}

// deviceRect is the device rectangle of the canvas.
func (c *Canvas) deviceRect() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// paint resolves the effective fill and stroke of the current frame.
func (c *Canvas) paint() shape.Paint {
	f := c.style.top()
	return shape.Paint{
		Fill:        f.EffectiveFill(),
		Stroke:      f.EffectiveStroke(),
		StrokeWidth: f.StrokeWidth,
	}
}

func toNRGBA(col color.Color) color.NRGBA {
	if col == nil {
		return Transparent
	}
	return color.NRGBAModel.Convert(col).(color.NRGBA)
}

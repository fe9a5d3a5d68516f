package sketch

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"

	"github.com/gogpu/sketch/internal/shape"
)

// Circle draws a circle of radius r centered at (x, y).
func (c *Canvas) Circle(x, y, r float64) ShapeID {
	return c.Ellipse(x, y, r, r)
}

// Ellipse draws an axis-aligned ellipse centered at (x, y) with radii rx
// and ry, before rotation.
func (c *Canvas) Ellipse(x, y, rx, ry float64) ShapeID {
	return c.render("ellipse", shape.Ellipse(x, y, rx, ry), c.paint())
}

// Rect draws the rectangle with opposite corners (x1, y1) and (x2, y2).
func (c *Canvas) Rect(x1, y1, x2, y2 float64) ShapeID {
	g := shape.Polygon([]gg.Point{gg.Pt(x1, y1), gg.Pt(x2, y1), gg.Pt(x2, y2), gg.Pt(x1, y2)}, true)
	return c.render("rect", g, c.paint())
}

// Line draws a segment from (x1, y1) to (x2, y2) in the stroke color.
func (c *Canvas) Line(x1, y1, x2, y2 float64) ShapeID {
	g := shape.Polygon([]gg.Point{gg.Pt(x1, y1), gg.Pt(x2, y2)}, false)
	return c.render("line", g, c.outline())
}

// LineVec draws a segment between two points.
func (c *Canvas) LineVec(a, b Vector) ShapeID {
	return c.Line(a.X, a.Y, b.X, b.Y)
}

// Arc draws the outline of an elliptical arc inscribed in the box
// (x1, y1)-(x2, y2). start and sweep are in degrees, clockwise from +X.
func (c *Canvas) Arc(x1, y1, x2, y2, start, sweep float64) ShapeID {
	return c.render("arc", shape.Arc(x1, y1, x2, y2, start, sweep), c.outline())
}

// Triangle draws the triangle through three points. A vertex list started
// with BeginShape is left untouched.
func (c *Canvas) Triangle(x1, y1, x2, y2, x3, y3 float64) ShapeID {
	saved := c.vertices
	c.vertices = []Vector{Vec(x1, y1), Vec(x2, y2), Vec(x3, y3)}
	id := c.EndShape()
	c.vertices = saved
	return id
}

// RegularPolygon draws a regular polygon with n sides inscribed in the
// circle of radius r at (x, y). rotation turns the first vertex, in
// degrees, away from +X.
func (c *Canvas) RegularPolygon(n int, x, y, r, rotation float64) ShapeID {
	if n < 3 {
		return 0
	}
	g := shape.RegularPolygon(n, x, y, r, rotation*math.Pi/180)
	return c.render("polygon", g, c.paint())
}

// BeginShape starts a new vertex list for EndShape.
func (c *Canvas) BeginShape() {
	c.vertices = c.vertices[:0]
}

// Vertex appends (x, y) to the current vertex list.
func (c *Canvas) Vertex(x, y float64) {
	c.vertices = append(c.vertices, Vec(x, y))
}

// VertexVec appends v to the current vertex list.
func (c *Canvas) VertexVec(v Vector) {
	c.vertices = append(c.vertices, v)
}

// EndShape draws the closed polygon through the vertex list and empties
// it. Fewer than two vertices draw nothing.
func (c *Canvas) EndShape() ShapeID {
	if len(c.vertices) < 2 {
		Logger().Debug("sketch: polygon needs two vertices", "vertices", len(c.vertices))
		c.vertices = c.vertices[:0]
		return 0
	}
	pts := make([]gg.Point, len(c.vertices))
	for i, v := range c.vertices {
		pts[i] = gg.Pt(v.X, v.Y)
	}
	c.vertices = c.vertices[:0]

	return c.render("polygon", shape.Polygon(pts, true), c.paint())
}

// Point sets the single device pixel under logical (x, y) to col.
func (c *Canvas) Point(x, y float64, col color.Color) ShapeID {
	d := c.Transform().Apply(Vec(x, y))
	px, py := int(math.Floor(d.X)), int(math.Floor(d.Y))
	if px < 0 || py < 0 || px >= c.width || py >= c.height {
		return 0
	}
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, col)
	return c.place("point", shape.Raster{Image: img, At: image.Pt(px, py)})
}

// PointAlpha blends col at opacity alpha onto the color currently rendered
// under logical (x, y) and draws the result as a point.
func (c *Canvas) PointAlpha(x, y float64, col color.Color, alpha float64) ShapeID {
	d := c.Transform().Apply(Vec(x, y))
	dst, ok := c.pixelAt(int(math.Floor(d.X)), int(math.Floor(d.Y)))
	if !ok {
		return 0
	}
	src := withAlpha(toNRGBA(col), alpha)
	return c.Point(x, y, Blend(src, dst))
}

// Image draws img centered on logical (x, y) at its native pixel size.
// The image turns with the current rotation.
func (c *Canvas) Image(x, y float64, img image.Image) ShapeID {
	if img == nil || img.Bounds().Empty() {
		return 0
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Rect, img, b.Min, draw.Src)
	return c.placeUpright("image", rgba, Vec(x, y))
}

// render rasterizes logical geometry through the current transform. The
// raster is clipped to the canvas.
func (c *Canvas) render(kind string, g shape.Geometry, paint shape.Paint) ShapeID {
	r, ok := shape.Render(g, c.Transform().Matrix(), c.deviceRect(), paint)
	if !ok {
		return 0
	}
	return c.place(kind, r)
}

// placeUpright rotates a raster rendered upright and centers it on the
// transformed anchor.
func (c *Canvas) placeUpright(kind string, img *image.RGBA, anchor Vector) ShapeID {
	t := c.Transform()
	img = shape.Rotate(img, t.RasterAngle())
	d := t.Apply(anchor)
	return c.place(kind, shape.Centered(img, d.X, d.Y))
}

// outline is the paint of open strokes: no fill and round caps.
func (c *Canvas) outline() shape.Paint {
	p := c.paint()
	p.Fill = Transparent
	p.RoundCaps = true
	return p
}

package shape

import (
	"math"

	"github.com/gogpu/gg"
)

// Geometry is a primitive in logical coordinates. hull covers everything
// draw adds to a context, so its device bounding box sizes the raster.
type Geometry struct {
	hull *gg.Path
	draw func(dc *gg.Context)
}

// Empty reports whether g draws nothing.
func (g Geometry) Empty() bool {
	return g.draw == nil || g.hull == nil || len(g.hull.Elements()) == 0
}

// FromPath wraps a logical path.
func FromPath(p *gg.Path) Geometry {
	return Geometry{hull: p, draw: func(dc *gg.Context) { appendPath(dc, p) }}
}

// Polygon is the subpath through pts, closed when closed is true and there
// are more than two points.
func Polygon(pts []gg.Point, closed bool) Geometry {
	p := gg.NewPath()
	for i, pt := range pts {
		if i == 0 {
			p.MoveTo(pt.X, pt.Y)
			continue
		}
		p.LineTo(pt.X, pt.Y)
	}
	if closed && len(pts) > 2 {
		p.Close()
	}
	return FromPath(p)
}

// Ellipse is the closed axis-aligned ellipse centered at (cx, cy).
func Ellipse(cx, cy, rx, ry float64) Geometry {
	hull := gg.NewPath()
	hull.Ellipse(cx, cy, rx, ry)
	return Geometry{hull: hull, draw: func(dc *gg.Context) { dc.DrawEllipse(cx, cy, rx, ry) }}
}

// RegularPolygon is the n-gon inscribed in the circle of radius r at
// (x, y), its first vertex turned rotation radians from +X.
func RegularPolygon(n int, x, y, r, rotation float64) Geometry {
	if n < 3 {
		return Geometry{}
	}
	hull := gg.NewPath()
	hull.Circle(x, y, r)
	return Geometry{hull: hull, draw: func(dc *gg.Context) { dc.DrawRegularPolygon(n, x, y, r, rotation) }}
}

// Arc is the open elliptical arc inscribed in the box (x1,y1)-(x2,y2).
// Angles are in degrees, clockwise from +X; sweep may be negative and is
// capped at one full turn.
func Arc(x1, y1, x2, y2, start, sweep float64) Geometry {
	if sweep == 0 {
		return Geometry{}
	}
	sweep = math.Max(-360, math.Min(360, sweep))
	a1 := start * math.Pi / 180
	a2 := (start + sweep) * math.Pi / 180
	if a2 < a1 {
		a1, a2 = a2, a1
	}

	// A unit arc stretched onto the box, as gg's DrawEllipticalArc does.
	unit := gg.NewPath()
	unit.Arc(0, 0, 1, a1, a2)
	cx, cy := (x1+x2)/2, (y1+y2)/2
	rx, ry := math.Abs(x2-x1)/2, math.Abs(y2-y1)/2
	return FromPath(unit.Transform(gg.Translate(cx, cy).Multiply(gg.Scale(rx, ry))))
}

// appendPath adds p to the current path of dc through its matrix.
func appendPath(dc *gg.Context, p *gg.Path) {
	for _, el := range p.Elements() {
		switch e := el.(type) {
		case gg.MoveTo:
			dc.MoveTo(e.Point.X, e.Point.Y)
		case gg.LineTo:
			dc.LineTo(e.Point.X, e.Point.Y)
		case gg.QuadTo:
			dc.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case gg.CubicTo:
			dc.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case gg.Close:
			dc.ClosePath()
		}
	}
}

package sketch

import (
	"math"

	"github.com/gogpu/gg"
)

// Bounds is a logical coordinate range mapped onto the whole canvas.
// Logical Y grows upward when a bounds mapping is active.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Validate reports a *ConfigError when the range is empty on either axis.
func (b Bounds) Validate() error {
	if !(b.MaxX > b.MinX) {
		return &ConfigError{Field: "bounds", Value: b, Reason: "max X must be greater than min X"}
	}
	if !(b.MaxY > b.MinY) {
		return &ConfigError{Field: "bounds", Value: b, Reason: "max Y must be greater than min Y"}
	}
	return nil
}

// boundsMapping is a Bounds resolved against a device size.
type boundsMapping struct {
	Bounds
	ScaleX, ScaleY float64
	// Center is the device position of logical (0, 0).
	Center Vector
}

func newBoundsMapping(b Bounds, width, height int) boundsMapping {
	sx := float64(width) / (b.MaxX - b.MinX)
	sy := float64(height) / (b.MaxY - b.MinY)
	return boundsMapping{
		Bounds: b,
		ScaleX: sx,
		ScaleY: sy,
		Center: Vec(-b.MinX*sx, b.MaxY*sy),
	}
}

// Transform maps logical points to device points for one style frame.
// Points are rotated in logical units, then scaled by the bounds mapping
// (Y flipped), then translated by the origin.
type Transform struct {
	m        gg.Matrix
	place    gg.Matrix // translate and scale only
	rotation float64
	flipped  bool
	sx, sy   float64
}

func newTransform(f StyleFrame, bm *boundsMapping) Transform {
	sx, sy := 1.0, 1.0
	origin := f.Origin
	if bm != nil {
		sx, sy = bm.ScaleX, bm.ScaleY
		origin = bm.Center.Add(Vec(f.Origin.X*sx, -f.Origin.Y*sy))
	}

	place := gg.Translate(origin.X, origin.Y)
	if bm != nil {
		place = place.Multiply(gg.Scale(sx, -sy))
	}
	return Transform{
		m:        place.Multiply(gg.Rotate(f.Rotation * math.Pi / 180)),
		place:    place,
		rotation: f.Rotation,
		flipped:  bm != nil,
		sx:       sx,
		sy:       sy,
	}
}

// Apply maps a logical point to device coordinates.
func (t Transform) Apply(p Vector) Vector {
	d := t.m.TransformPoint(gg.Pt(p.X, p.Y))
	return Vec(d.X, d.Y)
}

// Unproject maps a device point back to logical coordinates through the
// origin and bounds scaling. Rotation is not undone.
func (t Transform) Unproject(d Vector) Vector {
	l := t.place.Invert().TransformPoint(gg.Pt(d.X, d.Y))
	return Vec(l.X, l.Y)
}

// Matrix returns the full logical-to-device matrix.
func (t Transform) Matrix() gg.Matrix {
	return t.m
}

// Scale returns the device pixels per logical unit on each axis.
func (t Transform) Scale() (sx, sy float64) {
	return t.sx, t.sy
}

// RasterAngle is the clockwise rotation in degrees to apply to a raster
// rendered upright, such as text. The Y flip of a bounds mapping turns a
// clockwise logical rotation into a counter-clockwise one on screen.
func (t Transform) RasterAngle() float64 {
	if t.flipped {
		return -t.rotation
	}
	return t.rotation
}

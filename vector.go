package sketch

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Vector is a 2D vector in logical coordinates.
// Methods with value receivers return new vectors; SetMag, Limit and
// Normalize modify the receiver in place.
type Vector struct {
	X, Y float64
}

// Vec is a convenience function to create a Vector.
func Vec(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// VectorFromAngle returns a vector of the given length pointing at deg
// degrees, measured clockwise from +X on a Y-down screen.
func VectorFromAngle(deg, length float64) Vector {
	rad := deg * math.Pi / 180
	return Vector{X: length * math.Cos(rad), Y: length * math.Sin(rad)}
}

// RandomVector returns a random unit vector drawn from rng.
// A nil rng uses the global source.
func RandomVector(rng *rand.Rand) Vector {
	var x float64
	var flip bool
	if rng == nil {
		x, flip = rand.Float64()*2-1, rand.IntN(2) == 0
	} else {
		x, flip = rng.Float64()*2-1, rng.IntN(2) == 0
	}
	y := math.Sqrt(1 - x*x)
	if flip {
		y = -y
	}
	return Vector{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vector) Add(w Vector) Vector {
	return Vector{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vector) Sub(w Vector) Vector {
	return Vector{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by k.
func (v Vector) Mul(k float64) Vector {
	return Vector{X: v.X * k, Y: v.Y * k}
}

// MulVec returns the element-wise product of two vectors.
func (v Vector) MulVec(w Vector) Vector {
	return Vector{X: v.X * w.X, Y: v.Y * w.Y}
}

// Div returns the vector divided by k.
func (v Vector) Div(k float64) Vector {
	return Vector{X: v.X / k, Y: v.Y / k}
}

// Neg returns the negation of the vector.
func (v Vector) Neg() Vector {
	return Vector{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of two vectors.
func (v Vector) Dot(w Vector) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the 2D cross product (scalar).
func (v Vector) Cross(w Vector) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Mag returns the magnitude of the vector.
func (v Vector) Mag() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// MagSq returns the squared magnitude of the vector.
func (v Vector) MagSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// AngleBetween returns the angle from v to w in degrees, negated: a
// clockwise turn from v to w on a Y-down screen is negative, so
// Vec(1, 0).AngleBetween(Vec(0, 1)) is -90.
func (v Vector) AngleBetween(w Vector) float64 {
	return -math.Atan2(v.Cross(w), v.Dot(w)) * 180 / math.Pi
}

// Dist returns the distance between the points v and w.
func (v Vector) Dist(w Vector) float64 {
	return v.Sub(w).Mag()
}

// Heading returns the angle of v relative to (1, 0) in degrees.
// Heading of (0, 1) is +90.
func (v Vector) Heading() float64 {
	return v.AngleBetween(Vector{X: 1})
}

// SetMag scales v in place so that its magnitude equals mag.
// A zero vector stays zero.
func (v *Vector) SetMag(mag float64) {
	v.Normalize()
	v.X *= mag
	v.Y *= mag
}

// Limit clamps the magnitude of v in place to at most max.
func (v *Vector) Limit(max float64) {
	if v.MagSq() > max*max {
		v.SetMag(max)
	}
}

// Normalize scales v in place to unit length. A zero vector is left alone.
func (v *Vector) Normalize() {
	m := v.Mag()
	if m == 0 {
		return
	}
	v.X /= m
	v.Y /= m
}

// Lerp performs linear interpolation between two vectors.
// t=0 returns v, t=1 returns w.
func (v Vector) Lerp(w Vector, t float64) Vector {
	return Vector{X: Lerp(v.X, w.X, t), Y: Lerp(v.Y, w.Y, t)}
}

// Project returns the projection of v onto w.
// Projecting onto the zero vector yields the zero vector.
func (v Vector) Project(w Vector) Vector {
	d := w.MagSq()
	if d == 0 {
		return Vector{}
	}
	return w.Mul(v.Dot(w) / d)
}

// Reflect returns v reflected across a surface with normal n.
func (v Vector) Reflect(n Vector) Vector {
	n.Normalize()
	return v.Sub(n.Mul(2 * v.Dot(n)))
}

// Copy returns a copy of v.
func (v Vector) Copy() Vector {
	return v
}

// Approx returns true if two vectors are equal within epsilon.
func (v Vector) Approx(w Vector, epsilon float64) bool {
	return math.Abs(v.X-w.X) < epsilon && math.Abs(v.Y-w.Y) < epsilon
}

func (v Vector) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

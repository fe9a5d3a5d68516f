package sketch

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

func TestVector_AddSubRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		a, b Vector
	}{
		{"zero", Vec(0, 0), Vec(0, 0)},
		{"positive", Vec(1, 2), Vec(3, 4)},
		{"negative", Vec(-1.5, -2), Vec(-3, 4.25)},
		{"large", Vec(1e6, -1e6), Vec(0.001, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Add(tt.b).Sub(tt.b)
			assert.True(t, got.Approx(tt.a, 1e-6), "%v + %v - %v = %v", tt.a, tt.b, tt.b, got)
		})
	}
}

func TestVector_MulDivRoundTrip(t *testing.T) {
	for _, k := range []float64{1, -1, 0.5, 3, 1e-3, -250} {
		v := Vec(3, -7)
		got := v.Mul(k).Div(k)
		assert.True(t, got.Approx(v, 1e-9), "k=%v got %v", k, got)
	}
}

func TestVector_Arithmetic(t *testing.T) {
	a, b := Vec(2, 3), Vec(4, -5)
	assert.Equal(t, Vec(8, -15), a.MulVec(b))
	assert.Equal(t, Vec(-2, -3), a.Neg())
	assert.InDelta(t, -7.0, a.Dot(b), eps)
	assert.InDelta(t, -22.0, a.Cross(b), eps)
	assert.InDelta(t, 5.0, Vec(3, 4).Mag(), eps)
	assert.InDelta(t, 25.0, Vec(3, 4).MagSq(), eps)
	assert.InDelta(t, 5.0, Vec(1, 1).Dist(Vec(4, 5)), eps)
}

func TestVector_AngleBetween(t *testing.T) {
	tests := []struct {
		name string
		v, w Vector
		want float64
	}{
		{"same", Vec(3, 4), Vec(3, 4), 0},
		{"same unit", Vec(1, 0), Vec(1, 0), 0},
		{"quarter", Vec(1, 0), Vec(0, 1), -90},
		{"quarter reversed", Vec(0, 1), Vec(1, 0), 90},
		{"opposite", Vec(1, 0), Vec(-1, 0), -180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.v.AngleBetween(tt.w), 1e-9)
		})
	}
}

func TestVector_Heading(t *testing.T) {
	assert.InDelta(t, 0.0, Vec(1, 0).Heading(), eps)
	assert.InDelta(t, 90.0, Vec(0, 1).Heading(), eps)
	assert.InDelta(t, -90.0, Vec(0, -1).Heading(), eps)
	assert.InDelta(t, 45.0, Vec(2, 2).Heading(), eps)
}

func TestVector_SetMag(t *testing.T) {
	v := Vec(3, 4)
	v.SetMag(10)
	assert.True(t, v.Approx(Vec(6, 8), eps), "got %v", v)

	z := Vec(0, 0)
	z.SetMag(5)
	assert.Equal(t, Vec(0, 0), z)
}

func TestVector_Limit(t *testing.T) {
	v := Vec(30, 40)
	v.Limit(5)
	assert.True(t, v.Approx(Vec(3, 4), eps), "got %v", v)

	u := Vec(1, 1)
	u.Limit(5)
	assert.Equal(t, Vec(1, 1), u)
}

func TestVector_Normalize(t *testing.T) {
	v := Vec(0, -9)
	v.Normalize()
	assert.Equal(t, Vec(0, -1), v)

	z := Vector{}
	z.Normalize()
	assert.Equal(t, Vector{}, z)
}

func TestVector_Lerp(t *testing.T) {
	a, b := Vec(0, 10), Vec(10, 20)
	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))
	assert.Equal(t, Vec(5, 15), a.Lerp(b, 0.5))
	// Lerp returns a new vector.
	assert.Equal(t, Vec(0, 10), a)
}

func TestVector_ProjectReflect(t *testing.T) {
	assert.True(t, Vec(3, 4).Project(Vec(10, 0)).Approx(Vec(3, 0), eps))
	assert.Equal(t, Vector{}, Vec(3, 4).Project(Vector{}))

	// A ball moving down-right bouncing off a floor whose normal points up.
	got := Vec(1, 1).Reflect(Vec(0, -5))
	assert.True(t, got.Approx(Vec(1, -1), eps), "got %v", got)
}

func TestVectorFromAngle(t *testing.T) {
	assert.True(t, VectorFromAngle(0, 2).Approx(Vec(2, 0), eps))
	assert.True(t, VectorFromAngle(90, 1).Approx(Vec(0, 1), eps))
	assert.InDelta(t, 30.0, VectorFromAngle(30, 1).Heading(), 1e-9)
}

func TestRandomVector(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 100; i++ {
		v := RandomVector(rng)
		assert.InDelta(t, 1.0, v.Mag(), 1e-9)
	}
	assert.InDelta(t, 1.0, RandomVector(nil).Mag(), 1e-9)
}

func TestLerpMap(t *testing.T) {
	assert.InDelta(t, 7.5, Lerp(5, 10, 0.5), eps)
	assert.InDelta(t, 50.0, Map(5, 0, 10, 0, 100), eps)
	assert.InDelta(t, -5.0, Map(0, 0, 600, -5, 5), eps)
	assert.False(t, math.IsNaN(Map(1, 0, 2, 3, 3)))
}

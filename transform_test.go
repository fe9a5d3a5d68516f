package sketch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransform_OriginOnly(t *testing.T) {
	f := DefaultStyle()
	f.Origin = Vec(100, 50)
	tr := newTransform(f, nil)

	assert.True(t, tr.Apply(Vec(0, 0)).Approx(Vec(100, 50), eps))
	assert.True(t, tr.Apply(Vec(10, -5)).Approx(Vec(110, 45), eps))
	sx, sy := tr.Scale()
	assert.InDelta(t, 1.0, sx, eps)
	assert.InDelta(t, 1.0, sy, eps)
}

func TestTransform_RotationIsClockwise(t *testing.T) {
	f := DefaultStyle()
	f.Rotation = 90
	tr := newTransform(f, nil)

	// +X turns to +Y, which is down on screen.
	assert.True(t, tr.Apply(Vec(1, 0)).Approx(Vec(0, 1), 1e-12))
	assert.True(t, tr.Apply(Vec(0, 1)).Approx(Vec(-1, 0), 1e-12))
}

func TestTransform_FullTurnInQuarterSteps(t *testing.T) {
	corners := []Vector{Vec(-10, -10), Vec(10, -10), Vec(10, 10), Vec(-10, 10)}

	f := DefaultStyle()
	f.Origin = Vec(200, 200)
	pts := append([]Vector(nil), corners...)
	for step := 1; step <= 4; step++ {
		f.Rotation = 90
		tr := newTransform(f, nil)
		for i, p := range pts {
			// Rotate about the origin, then drop the translation to chain steps.
			pts[i] = tr.Apply(p).Sub(f.Origin)
		}
	}
	for i := range corners {
		assert.True(t, pts[i].Approx(corners[i], 1e-9), "corner %d: %v != %v", i, pts[i], corners[i])
	}

	// The same corners under a 360 degree rotation land where they started.
	f.Rotation = 360
	tr := newTransform(f, nil)
	for _, p := range corners {
		assert.True(t, tr.Apply(p).Approx(p.Add(f.Origin), 1e-9))
	}
}

func TestBoundsMapping(t *testing.T) {
	tests := []struct {
		name   string
		b      Bounds
		w, h   int
		sx, sy float64
		center Vector
	}{
		{"symmetric", Bounds{-5, -5, 5, 5}, 600, 600, 60, 60, Vec(300, 300)},
		{"positive quadrant", Bounds{0, 0, 10, 20}, 500, 400, 50, 20, Vec(0, 400)},
		{"wide", Bounds{-2, -1, 2, 1}, 800, 200, 200, 100, Vec(400, 100)},
		{"offset", Bounds{1, 1, 3, 3}, 100, 100, 50, 50, Vec(-50, 150)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bm := newBoundsMapping(tt.b, tt.w, tt.h)
			assert.InDelta(t, tt.sx, bm.ScaleX, eps)
			assert.InDelta(t, tt.sy, bm.ScaleY, eps)
			assert.True(t, bm.Center.Approx(tt.center, eps), "center %v", bm.Center)

			tr := newTransform(DefaultStyle(), &bm)
			assert.True(t, tr.Apply(Vec(0, 0)).Approx(tt.center, eps))
			// Corners of the logical range land on the canvas corners.
			assert.True(t, tr.Apply(Vec(tt.b.MinX, tt.b.MaxY)).Approx(Vec(0, 0), 1e-9))
			assert.True(t, tr.Apply(Vec(tt.b.MaxX, tt.b.MinY)).Approx(Vec(float64(tt.w), float64(tt.h)), 1e-9))
		})
	}
}

func TestTransform_BoundsOrigin(t *testing.T) {
	bm := newBoundsMapping(Bounds{-5, -5, 5, 5}, 600, 600)
	f := DefaultStyle()
	f.Origin = Vec(1, 2)
	tr := newTransform(f, &bm)

	assert.True(t, tr.Apply(Vec(0, 0)).Approx(Vec(360, 180), eps))
	assert.True(t, tr.Apply(Vec(1, 0)).Approx(Vec(420, 180), eps))
	assert.True(t, tr.Apply(Vec(0, 1)).Approx(Vec(360, 120), eps))
}

func TestTransform_RotateBeforeScale(t *testing.T) {
	bm := newBoundsMapping(Bounds{-10, -5, 10, 5}, 400, 100)
	f := DefaultStyle()
	f.Rotation = 90
	tr := newTransform(f, &bm)

	// (1, 0) rotates to (0, 1) in logical units, then scales by (20, -10).
	assert.True(t, tr.Apply(Vec(1, 0)).Approx(Vec(200, 40), 1e-9))
	assert.InDelta(t, -90.0, tr.RasterAngle(), eps)
	assert.InDelta(t, 90.0, newTransform(f, nil).RasterAngle(), eps)
}

func TestTransform_Unproject(t *testing.T) {
	bm := newBoundsMapping(Bounds{-5, -5, 5, 5}, 600, 600)
	f := DefaultStyle()
	f.Origin = Vec(1, 1)
	f.Rotation = 33

	tests := []struct {
		name string
		bm   *boundsMapping
		dev  Vector
		want Vector
	}{
		{"plain", nil, Vec(5, 5), Vec(4, 4)},
		{"bounds center", &bm, Vec(300, 300), Vec(-1, -1)},
		{"bounds corner", &bm, Vec(0, 0), Vec(-6, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := newTransform(f, tt.bm).Unproject(tt.dev)
			assert.True(t, got.Approx(tt.want, 1e-9), "got %v want %v", got, tt.want)
		})
	}
}

func TestBounds_Validate(t *testing.T) {
	require.NoError(t, Bounds{-1, -1, 1, 1}.Validate())

	var cerr *ConfigError
	err := Bounds{1, 0, 1, 5}.Validate()
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "bounds", cerr.Field)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorIs(t, Bounds{0, 3, 1, 2}.Validate(), ErrInvalidConfig)
}

func TestCanvas_SetBounds(t *testing.T) {
	c := NewCanvas(NewRasterSurface(600, 600, White))
	_, ok := c.Bounds()
	assert.False(t, ok)

	require.NoError(t, c.SetBounds(Bounds{-5, -5, 5, 5}))
	b, ok := c.Bounds()
	assert.True(t, ok)
	assert.Equal(t, Bounds{-5, -5, 5, 5}, b)
	assert.True(t, c.Transform().Apply(Vec(0, 0)).Approx(Vec(300, 300), eps))

	assert.Error(t, c.SetBounds(Bounds{5, 5, -5, -5}))
	b, _ = c.Bounds()
	assert.Equal(t, Bounds{-5, -5, 5, 5}, b, "failed SetBounds keeps the old mapping")

	c.ClearBounds()
	assert.True(t, c.Transform().Apply(Vec(0, 0)).Approx(Vec(0, 0), eps))
}

package sketch

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestRasterSurface_PlaceRemoveClear(t *testing.T) {
	s := NewRasterSurface(20, 10, White)
	w, h := s.Size()
	assert.Equal(t, [2]int{20, 10}, [2]int{w, h})

	a := s.Place(Shape{Image: solid(2, 2, Red), At: image.Pt(1, 1)})
	b := s.Place(Shape{Image: solid(2, 2, Blue), At: image.Pt(5, 5)})
	assert.NotEqual(t, a, b)
	assert.NotEqual(t, ShapeID(0), a)
	assert.NotEqual(t, All, a)
	assert.Equal(t, 2, s.Len())

	assert.True(t, s.Remove(a))
	assert.False(t, s.Remove(a))
	assert.Equal(t, 1, s.Len())

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, White, s.Background())
}

func TestRasterSurface_CaptureComposites(t *testing.T) {
	s := NewRasterSurface(10, 10, Silver)
	s.Place(Shape{Image: solid(4, 4, Red), At: image.Pt(2, 2)})
	s.Place(Shape{Image: solid(2, 2, RGBA(0, 0, 255, 128)), At: image.Pt(3, 3)})
	s.Place(Shape{Image: solid(3, 3, Green), At: image.Pt(-1, -1)})

	frame, err := s.Capture()
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 10, 10), frame.Bounds())

	assert.Equal(t, color.RGBA{192, 192, 192, 255}, frame.RGBAAt(9, 9))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, frame.RGBAAt(5, 5))
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, frame.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, frame.RGBAAt(1, 1))

	// Half-transparent blue over red.
	px := frame.RGBAAt(3, 3)
	assert.InDelta(t, 127, int(px.R), 2)
	assert.Equal(t, uint8(0), px.G)
	assert.InDelta(t, 128, int(px.B), 2)
	assert.Equal(t, uint8(255), px.A)
}

func TestRasterSurface_CaptureIsACopy(t *testing.T) {
	s := NewRasterSurface(4, 4, White)
	first, err := s.Capture()
	require.NoError(t, err)
	first.Set(0, 0, Red)

	second, err := s.Capture()
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, second.RGBAAt(0, 0))
}

func TestRasterSurface_CaptureUnavailable(t *testing.T) {
	for _, size := range [][2]int{{0, 0}, {0, 10}, {10, -1}} {
		s := NewRasterSurface(size[0], size[1], White)
		_, err := s.Capture()
		assert.ErrorIs(t, err, ErrCaptureUnavailable, "size %v", size)
	}
}

func TestRasterSurface_At(t *testing.T) {
	s := NewRasterSurface(8, 8, Black)
	s.Place(Shape{Image: solid(1, 1, White), At: image.Pt(4, 4)})

	c, ok := s.At(4, 4)
	assert.True(t, ok)
	assert.Equal(t, White, c)

	c, ok = s.At(0, 0)
	assert.True(t, ok)
	assert.Equal(t, Black, c)

	_, ok = s.At(8, 0)
	assert.False(t, ok)
	_, ok = s.At(-1, 3)
	assert.False(t, ok)
}

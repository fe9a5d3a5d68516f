package sketch

import (
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/h2non/filetype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanvas_SaveFramesEmpty(t *testing.T) {
	c := newTestCanvas(t)
	err := c.SaveFrames(filepath.Join(t.TempDir(), "out.gif"), 100)
	assert.ErrorIs(t, err, ErrExport)
}

func TestCanvas_SaveFramesGIF(t *testing.T) {
	c := newTestCanvas(t)
	c.Fill(Red)
	for i := range 3 {
		c.Clear(All)
		c.Circle(float64(20+30*i), 50, 10)
		require.NoError(t, c.ExportFrame())
	}
	assert.Equal(t, 3, c.Frames())

	path := filepath.Join(t.TempDir(), "anim.gif")
	require.NoError(t, c.SaveFrames(path, 200))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	kind, err := filetype.Match(data)
	require.NoError(t, err)
	assert.Equal(t, "gif", kind.Extension)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	anim, err := gif.DecodeAll(f)
	require.NoError(t, err)
	assert.Len(t, anim.Image, 3)
	assert.Equal(t, 0, anim.LoopCount)
	assert.Equal(t, []int{20, 20, 20}, anim.Delay)
	assert.Equal(t, 100, anim.Config.Width)
}

func TestCanvas_SaveFramesShortInterval(t *testing.T) {
	c := newTestCanvas(t)
	require.NoError(t, c.ExportFrame())
	path := filepath.Join(t.TempDir(), "fast.gif")
	require.NoError(t, c.SaveFrames(path, 1))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	anim, err := gif.DecodeAll(f)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, anim.Delay)
}

func TestCanvas_SaveFramesUnwritable(t *testing.T) {
	c := newTestCanvas(t)
	require.NoError(t, c.ExportFrame())
	err := c.SaveFrames(filepath.Join(t.TempDir(), "missing", "dir", "out.gif"), 100)
	assert.ErrorIs(t, err, ErrExport)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCanvas_SaveFramesLeavesNoPartialFile(t *testing.T) {
	c := newTestCanvas(t)
	require.NoError(t, c.ExportFrame())

	dir := t.TempDir()
	// The target is a directory, so the finished file cannot be moved there.
	target := filepath.Join(dir, "taken.gif")
	require.NoError(t, os.Mkdir(target, 0o755))

	err := c.SaveFrames(target, 100)
	assert.ErrorIs(t, err, ErrExport)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "taken.gif", entries[0].Name())
	assert.True(t, entries[0].IsDir())
}

func TestCanvas_ResetFrames(t *testing.T) {
	c := newTestCanvas(t)
	require.NoError(t, c.ExportFrame())
	require.NoError(t, c.ExportFrame())
	c.ResetFrames()
	assert.Equal(t, 0, c.Frames())
}

func TestCanvas_ExportFrameCaptureFailure(t *testing.T) {
	c := NewCanvas(NewRasterSurface(0, 0, White))
	err := c.ExportFrame()
	assert.ErrorIs(t, err, ErrExport)
	assert.ErrorIs(t, err, ErrCaptureUnavailable)
}

func TestCanvas_SaveFramePNG(t *testing.T) {
	c := newTestCanvas(t)
	c.Fill(Blue)
	c.Rect(0, 0, 50, 50)

	path := filepath.Join(t.TempDir(), "frame.png")
	require.NoError(t, c.SaveFrame(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, filetype.IsImage(data))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 100, img.Bounds().Dx())
	r, g, b, _ := img.At(25, 25).RGBA()
	assert.Equal(t, [3]uint32{0, 0, 0xffff}, [3]uint32{r, g, b})
}

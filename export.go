package sketch

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/gif"
	"os"
	"path/filepath"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/mitchellh/go-homedir"
	"golang.org/x/image/draw"
)

// ExportFrame appends the current rendered frame to the export sequence.
func (c *Canvas) ExportFrame() error {
	frame, err := c.surface.Capture()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExport, err)
	}
	c.frames = append(c.frames, frame)
	return nil
}

// Frames returns the number of frames in the export sequence.
func (c *Canvas) Frames() int {
	return len(c.frames)
}

// ResetFrames discards the export sequence.
func (c *Canvas) ResetFrames() {
	clear(c.frames)
	c.frames = c.frames[:0]
}

// SaveFrames writes the export sequence to path as an animated GIF that
// loops forever, showing each frame for intervalMs milliseconds. A leading
// "~" in path expands to the home directory.
func (c *Canvas) SaveFrames(path string, intervalMs int) error {
	if len(c.frames) == 0 {
		return fmt.Errorf("%w: no frames to save", ErrExport)
	}
	path, err := homedir.Expand(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExport, err)
	}

	// GIF delays are in hundredths of a second.
	delay := max(intervalMs/10, 1)
	anim := &gif.GIF{
		Image:     make([]*image.Paletted, len(c.frames)),
		Delay:     make([]int, len(c.frames)),
		LoopCount: 0,
	}
	for i, frame := range c.frames {
		anim.Image[i] = quantize(frame)
		anim.Delay[i] = delay
	}

	if err := writeGIF(path, anim); err != nil {
		return fmt.Errorf("%w: %w", ErrExport, err)
	}

	Logger().Info("sketch: frames saved", "path", path, "frames", len(c.frames), "delayMs", delay*10)
	return nil
}

// writeGIF encodes anim next to path and renames it into place, so a
// failed save never leaves a partial file behind.
func writeGIF(path string, anim *gif.GIF) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), ".frames-*.gif")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	if err := gif.EncodeAll(f, anim); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Chmod(0o644); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}

// SaveFrame writes the current rendered frame to path as a PNG.
func (c *Canvas) SaveFrame(path string) error {
	frame, err := c.surface.Capture()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExport, err)
	}
	path, err = homedir.Expand(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExport, err)
	}
	if err := imgio.Save(path, frame, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("%w: %w", ErrExport, err)
	}
	Logger().Info("sketch: frame saved", "path", path)
	return nil
}

// quantize reduces frame to the Plan 9 palette with error diffusion.
func quantize(frame *image.RGBA) *image.Paletted {
	pm := image.NewPaletted(frame.Bounds(), palette.Plan9)
	draw.FloydSteinberg.Draw(pm, frame.Bounds(), frame, frame.Bounds().Min)
	return pm
}

package sketch

import (
	"fmt"

	"github.com/gogpu/sketch/internal/shape"
)

// Text draws s centered on logical (x, y) in the current font family, size
// and color. The text turns with the current rotation.
func (c *Canvas) Text(x, y float64, s string) ShapeID {
	f := c.style.top()
	face := c.fonts.Face(f.FontFamily, f.FontSize)
	img, ok := shape.Text(s, face, withAlpha(f.FontColor, f.Alpha))
	if !ok {
		return 0
	}
	return c.placeUpright("text", img, Vec(x, y))
}

// Textf is Text with fmt.Sprintf formatting.
func (c *Canvas) Textf(x, y float64, format string, args ...any) ShapeID {
	return c.Text(x, y, fmt.Sprintf(format, args...))
}

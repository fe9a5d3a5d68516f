package sketch

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/sketch/internal/fonts"
	"github.com/gogpu/sketch/internal/shape"
)

// gridSpacing is the device spacing of grid lines without a bounds mapping.
const gridSpacing = 50

var (
	gridColor = RGBA(0, 0, 0, 40)
	axisColor = RGBA(0, 0, 0, 110)
)

// drawGrid places the grid overlay in device coordinates. With a bounds
// mapping lines fall on every logical unit and the axes cross at logical
// (0, 0); otherwise lines are gridSpacing pixels apart.
func (c *Canvas) drawGrid() {
	w, h := float64(c.width), float64(c.height)
	lines, axes := gg.NewPath(), gg.NewPath()

	if bm := c.bounds; bm != nil {
		for x := math.Ceil(bm.MinX); x <= bm.MaxX; x++ {
			dx := bm.Center.X + x*bm.ScaleX
			lines.MoveTo(dx, 0)
			lines.LineTo(dx, h)
		}
		for y := math.Ceil(bm.MinY); y <= bm.MaxY; y++ {
			dy := bm.Center.Y - y*bm.ScaleY
			lines.MoveTo(0, dy)
			lines.LineTo(w, dy)
		}
		axes.MoveTo(bm.Center.X, 0)
		axes.LineTo(bm.Center.X, h)
		axes.MoveTo(0, bm.Center.Y)
		axes.LineTo(w, bm.Center.Y)
	} else {
		for x := 0.0; x <= w; x += gridSpacing {
			lines.MoveTo(x, 0)
			lines.LineTo(x, h)
		}
		for y := 0.0; y <= h; y += gridSpacing {
			lines.MoveTo(0, y)
			lines.LineTo(w, y)
		}
	}

	for _, layer := range []struct {
		path  *gg.Path
		paint shape.Paint
	}{
		{lines, shape.Paint{Stroke: gridColor, StrokeWidth: 1}},
		{axes, shape.Paint{Stroke: axisColor, StrokeWidth: 2}},
	} {
		if r, ok := shape.Render(shape.FromPath(layer.path), gg.Identity(), c.deviceRect(), layer.paint); ok {
			c.place("grid", r)
		}
	}
}

// Stats is a snapshot shown by the stats overlay.
type Stats struct {
	FPS    float64
	Frame  int
	Shapes int
}

func (s Stats) String() string {
	return fmt.Sprintf("%.1f fps  frame %d  shapes %d", s.FPS, s.Frame, s.Shapes)
}

// DrawStats places the stats overlay in the top-left corner in device
// coordinates, independent of the current style. It returns the placed
// shapes.
func (c *Canvas) DrawStats(s Stats) []ShapeID {
	face := c.fonts.Face(fonts.Mono, 12)
	img, ok := shape.Text(s.String(), face, Black)
	if !ok {
		return nil
	}

	const margin = 4
	size := img.Bounds().Size()
	box := shape.Polygon([]gg.Point{
		gg.Pt(margin, margin),
		gg.Pt(float64(margin+size.X+4), margin),
		gg.Pt(float64(margin+size.X+4), float64(margin+size.Y+4)),
		gg.Pt(margin, float64(margin+size.Y+4)),
	}, true)
	var ids []ShapeID
	if r, ok := shape.Render(box, gg.Identity(), c.deviceRect(), shape.Paint{Fill: RGBA(255, 255, 255, 190)}); ok {
		ids = append(ids, c.place("stats", r))
	}
	return append(ids, c.place("stats", shape.Raster{Image: img, At: image.Pt(margin+2, margin+2)}))
}

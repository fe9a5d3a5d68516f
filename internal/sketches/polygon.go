package sketches

import (
	"math"

	"github.com/gogpu/sketch"
)

func polygon() []sketch.Option {
	const (
		size    = 800
		outside = 250
		inside  = 200
	)
	var fill string

	return []sketch.Option{
		sketch.WithSize(size, size),
		sketch.WithFrameRate(60),
		sketch.WithBackground(sketch.Black),
		sketch.WithTitle("Polygon"),
		sketch.OnSetup(func(app *sketch.App) {
			c := app.Canvas()
			c.Translate(size/2, size/2)
			c.StrokeWidth(3)
			c.Stroke(sketch.Hex("#ffffff"))
			fill = sketch.RandomColor(app.Rand())
		}),
		sketch.OnDraw(func(app *sketch.App) {
			c := app.Canvas()
			points := int(math.Floor(sketch.Map(float64(app.MouseLeft()), 0, float64(app.Width()), 6, 60)))
			points = max(points, 3)
			step := 180.0 / float64(points)

			c.Fill(sketch.Hex(fill))
			c.BeginShape()
			angle := 0.0
			for range points {
				c.VertexVec(sketch.VectorFromAngle(angle, outside))
				angle += step
				c.VertexVec(sketch.VectorFromAngle(angle, inside))
				angle += step
			}
			c.EndShape()

			c.Fill(sketch.Black)
			c.Circle(0, 0, 150)
			c.Rotate(float64(app.FrameCount()))
		}),
	}
}

package sketches

import (
	"math"

	"github.com/gogpu/sketch"
)

func chaos() []sketch.Option {
	const (
		size    = 600
		corners = 5
		jump    = 0.5
		perDraw = 500
	)

	var (
		pos      sketch.Vector
		vertices [corners]sketch.Vector
		last     int
	)

	return []sketch.Option{
		sketch.WithSize(size, size),
		sketch.WithFrameRate(30),
		sketch.WithBackground(sketch.Black),
		sketch.WithTitle("Chaos Game"),
		sketch.WithAutoClear(false),
		sketch.OnSetup(func(app *sketch.App) {
			rng := app.Rand()
			pos = sketch.Vec(rng.Float64()*size, rng.Float64()*size)

			c := app.Canvas()
			c.Translate(size/2, size/2)
			c.Rotate(45)

			step := 2 * math.Pi / corners
			for i := range vertices {
				vertices[i] = sketch.Vec(math.Cos(float64(i)*step), math.Sin(float64(i)*step)).Mul(size / 2)
			}
		}),
		sketch.OnDraw(func(app *sketch.App) {
			rng := app.Rand()
			for range perDraw {
				r := rng.IntN(corners)
				if r == last {
					continue
				}
				pos = pos.Lerp(vertices[r], jump)
				app.Canvas().Point(pos.X, pos.Y, sketch.White)
				last = r
			}
		}),
	}
}

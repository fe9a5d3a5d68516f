package sketches

import "github.com/gogpu/sketch"

func cardioid() []sketch.Option {
	const size = 600
	r := float64(size/2 - 64)
	count := 10

	point := func(i int) sketch.Vector {
		v := sketch.VectorFromAngle(sketch.Map(float64(i), 0, float64(count), 0, 360), 1)
		v.SetMag(-r)
		return v
	}

	return []sketch.Option{
		sketch.WithSize(size, size),
		sketch.WithFrameRate(20),
		sketch.WithBackground(sketch.Black),
		sketch.WithTitle("Cardioid"),
		sketch.OnSetup(func(app *sketch.App) {
			app.Canvas().Translate(size/2, size/2)
			app.Canvas().Stroke(sketch.Hex("yellow"))
		}),
		sketch.OnDraw(func(app *sketch.App) {
			c := app.Canvas()
			c.NoFill()
			c.Circle(0, 0, r)
			for i := range count {
				c.LineVec(point(i), point(i*2))
			}
			count++
		}),
	}
}

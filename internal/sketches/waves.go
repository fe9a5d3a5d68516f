package sketches

import (
	"math"

	"github.com/gogpu/sketch"
)

func waves() []sketch.Option {
	const samples = 120

	return []sketch.Option{
		sketch.WithSize(600, 300),
		sketch.WithFrameRate(30),
		sketch.WithBackground(sketch.White),
		sketch.WithTitle("Waves"),
		sketch.WithBounds(-2*math.Pi, -2, 2*math.Pi, 2),
		sketch.WithGrid(true),
		sketch.OnSetup(func(app *sketch.App) {
			c := app.Canvas()
			c.StrokeWidth(2)
			c.FontFamily("mono 14")
		}),
		sketch.OnDraw(func(app *sketch.App) {
			c := app.Canvas()
			b, _ := c.Bounds()
			phase := float64(app.FrameCount()) / 10

			for k, col := range []string{"crimson", "royalblue"} {
				c.Stroke(sketch.Hex(col))
				prev := sketch.Vec(b.MinX, wave(b.MinX, phase, k))
				for i := 1; i <= samples; i++ {
					x := sketch.Map(float64(i), 0, samples, b.MinX, b.MaxX)
					next := sketch.Vec(x, wave(x, phase, k))
					c.LineVec(prev, next)
					prev = next
				}
			}

			c.Fill(sketch.Hex("crimson"))
			c.NoStroke()
			c.Circle(0, wave(0, phase, 0), 0.1)
			c.Stroke(sketch.Black)
			c.Arc(-1, -1, 1, 1, 0, math.Mod(phase*57.3, 360))
			c.Textf(b.MinX+1.2, b.MaxY-0.3, "t=%.1f", phase)
		}),
	}
}

func wave(x, phase float64, k int) float64 {
	return math.Sin(x*float64(k+1)+phase) / float64(k+1)
}

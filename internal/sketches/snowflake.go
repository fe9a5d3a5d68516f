package sketches

import (
	"math"

	"github.com/gogpu/sketch"
)

type particle struct {
	pos      sketch.Vector
	collided bool
}

func snowflake() []sketch.Option {
	const (
		size   = 600
		radius = 10
		motion = 10
		sides  = 6
	)
	var flake []*particle

	spawn := func() *particle {
		return &particle{pos: sketch.Vec(size/2, 0)}
	}

	// fall walks p toward the center inside a 45 degree wedge until it
	// touches a frozen particle or reaches the center.
	fall := func(app *sketch.App, p *particle) {
		rng := app.Rand()
		for p.pos.X > 0 && !p.collided {
			p.pos.X--
			p.pos.Y += float64(rng.IntN(2*motion+1) - motion)
			if p.pos.Heading() < -45 {
				p.pos.Y += motion
			}
			if p.pos.Heading() > 0 {
				p.pos.Y -= motion
			}
			for _, q := range flake[:len(flake)-1] {
				if q.pos.Dist(p.pos) <= radius*2 {
					p.collided = true
					break
				}
			}
		}
	}

	draw := func(c *sketch.Canvas, p *particle) {
		shade := uint8(math.Min(math.Floor(sketch.Map(p.pos.Mag(), 0, size/2, 0, 255)), 255))
		col := sketch.RGB(shade, shade, 255)
		c.Fill(col)
		c.Stroke(col)
		c.Circle(p.pos.X, p.pos.Y, radius)
		c.Circle(p.pos.X, -p.pos.Y, radius)
	}

	return []sketch.Option{
		sketch.WithSize(size, size),
		sketch.WithFrameRate(30),
		sketch.WithBackground(sketch.Black),
		sketch.WithTitle("Snowflake"),
		sketch.OnSetup(func(app *sketch.App) {
			app.Canvas().Translate(size/2, size/2)
			flake = append(flake[:0], spawn())
		}),
		sketch.OnDraw(func(app *sketch.App) {
			fall(app, flake[len(flake)-1])
			flake = append(flake, spawn())

			c := app.Canvas()
			for i := range sides {
				c.Rotate(float64(i) * 360 / sides)
				for _, p := range flake {
					draw(c, p)
				}
			}
		}),
	}
}

package sketches

import (
	"strconv"
	"time"

	"github.com/gogpu/sketch"
)

func clock() []sketch.Option {
	return []sketch.Option{
		sketch.WithSize(600, 600),
		sketch.WithFrameRate(5),
		sketch.WithBackground(sketch.Hex("skyblue")),
		sketch.WithTitle("Clock"),
		sketch.OnSetup(func(app *sketch.App) {
			app.Canvas().Translate(300, 300)
		}),
		sketch.OnDraw(func(app *sketch.App) {
			drawClock(app.Canvas(), time.Now())
		}),
	}
}

func drawClock(c *sketch.Canvas, now time.Time) {
	c.StrokeWidth(5)
	c.Circle(0, 0, 200)

	c.Push()
	defer func() { _ = c.Pop() }()

	for i := range 60 {
		c.Rotate(float64(i) * 6)
		if i%5 == 0 {
			c.Fill(sketch.Black)
			c.Stroke(sketch.Black)
			c.Rect(-3, -200, 3, -180)
			hour := i / 5
			if hour == 0 {
				hour = 12
			}
			c.Text(0, -160, strconv.Itoa(hour))
			continue
		}
		c.Fill(sketch.Hex("grey"))
		c.Stroke(sketch.Hex("grey"))
		c.Rect(-1, -196, 1, -190)
	}

	minDeg := float64(now.Minute()) * 6
	hourDeg := float64(now.Hour()%12)*30 + minDeg/12
	secDeg := float64(now.Second()) * 6

	c.Rotate(hourDeg)
	c.Fill(sketch.Black)
	c.Stroke(sketch.Black)
	c.Circle(0, 0, 15)
	c.Rect(-8, -80, 8, 0)
	c.Circle(0, -80, 8)

	c.Rotate(minDeg)
	c.Rect(-5, -120, 5, 0)
	c.Circle(0, -120, 5)

	c.Fill(sketch.Red)
	c.Stroke(sketch.Red)
	c.Circle(0, 0, 5)
	c.Rotate(secDeg)
	c.Rect(-2, -180, 2, 30)
	c.Circle(0, -180, 4)
}

package sketches

import (
	"math/rand/v2"

	"github.com/gogpu/sketch"
)

// grid is a toroidal field of cells.
type grid [][]bool

func randomGrid(n int, rng *rand.Rand) grid {
	g := make(grid, n)
	for i := range g {
		g[i] = make([]bool, n)
		for j := range g[i] {
			g[i][j] = rng.IntN(2) == 1
		}
	}
	return g
}

func (g grid) neighbors(x, y int) int {
	n := len(g)
	count := 0
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if (dx != 0 || dy != 0) && g[(x+dx+n)%n][(y+dy+n)%n] {
				count++
			}
		}
	}
	return count
}

// next returns the following generation.
func (g grid) next() grid {
	out := make(grid, len(g))
	for i := range g {
		out[i] = make([]bool, len(g))
		for j, alive := range g[i] {
			n := g.neighbors(i, j)
			out[i][j] = n == 3 || (alive && n == 2)
		}
	}
	return out
}

func life() []sketch.Option {
	const (
		size  = 600
		cells = 40
		cell  = size / cells
	)
	var g grid

	return []sketch.Option{
		sketch.WithSize(size, size),
		sketch.WithFrameRate(24),
		sketch.WithBackground(sketch.Black),
		sketch.WithTitle("Game of Life"),
		sketch.OnSetup(func(app *sketch.App) {
			g = randomGrid(cells, app.Rand())
			app.Canvas().Stroke(sketch.Black)
		}),
		sketch.OnDraw(func(app *sketch.App) {
			c := app.Canvas()
			c.Fill(sketch.Hex("yellow"))
			for i := range g {
				for j, alive := range g[i] {
					if alive {
						c.Rect(float64(i*cell), float64(j*cell), float64((i+1)*cell), float64((j+1)*cell))
					}
				}
			}
			g = g.next()
		}),
		sketch.OnClick(func(app *sketch.App, _ sketch.MouseEvent) {
			g = randomGrid(cells, app.Rand())
		}),
	}
}

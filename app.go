package sketch

import (
	"context"
	"math/rand/v2"
	"time"
)

// App is the animation shell around a Canvas: it runs the setup callback
// once, then the draw callback once per frame, and dispatches input events
// reported by a host.
//
// Without a host an App runs headless through Run or RunFrames. The
// integration/ebitenhost package presents it in a desktop window. An App is
// not safe for concurrent use; hosts drive it from one goroutine.
type App struct {
	opts    Options
	canvas  *Canvas
	surface Surface
	rng     *rand.Rand

	started bool
	closed  bool

	frameCount int
	fps        float64
	lastFrame  time.Time
	now        func() time.Time

	statsIDs []ShapeID

	mouseX, mouseY      float64
	mouseLeft, mouseTop int
	held                MouseButton
	dragged             bool
}

// New creates an App. It fails with ErrMissingCallback when OnSetup or
// OnDraw is missing and with an ErrInvalidConfig error for a bad size,
// frame rate or bounds.
func New(opts ...Option) (*App, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}

	surface := o.Surface
	if surface == nil {
		surface = NewRasterSurface(o.Width, o.Height, o.Background)
	} else {
		o.Width, o.Height = surface.Size()
	}

	seed := o.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	a := &App{
		opts:    o,
		canvas:  NewCanvas(surface),
		surface: surface,
		rng:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		now:     time.Now,
	}
	if o.Bounds != nil {
		if err := a.canvas.SetBounds(*o.Bounds); err != nil {
			return nil, err
		}
	}
	if o.ShowGrid {
		a.canvas.ShowGrid(true)
		a.canvas.Clear(All)
	}

	Logger().Debug("sketch: app created",
		"width", o.Width, "height", o.Height, "fps", o.FrameRate, "title", o.Title)
	return a, nil
}

// Canvas returns the canvas callbacks draw on.
func (a *App) Canvas() *Canvas {
	return a.canvas
}

// Options returns a copy of the app configuration.
func (a *App) Options() Options {
	return a.opts
}

// Width returns the canvas width in pixels.
func (a *App) Width() int {
	return a.opts.Width
}

// Height returns the canvas height in pixels.
func (a *App) Height() int {
	return a.opts.Height
}

// Rand returns the app's random source, seeded by WithSeed.
func (a *App) Rand() *rand.Rand {
	return a.rng
}

// FrameCount returns the number of frames drawn so far.
func (a *App) FrameCount() int {
	return a.frameCount
}

// FPS returns the measured frame rate of the last frame.
func (a *App) FPS() float64 {
	return a.fps
}

// MouseX returns the last logical pointer X.
func (a *App) MouseX() float64 { return a.mouseX }

// MouseY returns the last logical pointer Y.
func (a *App) MouseY() float64 { return a.mouseY }

// MouseLeft returns the last device pointer X.
func (a *App) MouseLeft() int { return a.mouseLeft }

// MouseTop returns the last device pointer Y.
func (a *App) MouseTop() int { return a.mouseTop }

// Interval is the time between two frames.
func (a *App) Interval() time.Duration {
	return a.opts.Interval()
}

// Closed reports whether Close has run.
func (a *App) Closed() bool {
	return a.closed
}

// Start runs the setup callback. Only the first call has an effect; Step
// calls it when needed.
func (a *App) Start() {
	if a.started {
		return
	}
	a.started = true
	a.opts.Setup(a)
	Logger().Info("sketch: setup done", "title", a.opts.Title)
}

// Step draws one frame: clear when auto-clear is on, run the draw
// callback, draw the stats overlay and record the frame for export.
func (a *App) Step() {
	a.Start()
	if a.closed {
		return
	}

	if a.opts.AutoClear {
		a.canvas.Clear(All)
		a.statsIDs = a.statsIDs[:0]
	}
	a.opts.Draw(a)
	a.frameCount++
	a.measure()

	if a.opts.ShowStats {
		for _, id := range a.statsIDs {
			a.canvas.Clear(id)
		}
		a.statsIDs = a.canvas.DrawStats(Stats{FPS: a.fps, Frame: a.frameCount, Shapes: a.surface.Len()})
	}
	if a.opts.ExportPath != "" {
		if err := a.canvas.ExportFrame(); err != nil {
			Logger().Warn("sketch: frame not recorded", "frame", a.frameCount, "err", err)
		}
	}
}

func (a *App) measure() {
	now := a.now()
	if !a.lastFrame.IsZero() {
		if d := now.Sub(a.lastFrame); d > 0 {
			a.fps = float64(time.Second) / float64(d)
		}
	}
	a.lastFrame = now
}

// RunFrames runs setup if needed and then draws n frames back to back.
func (a *App) RunFrames(n int) {
	for range n {
		a.Step()
	}
}

// Run draws frames at the configured rate until ctx is done, then closes
// the app and returns the result of Close.
func (a *App) Run(ctx context.Context) error {
	a.Start()

	ticker := time.NewTicker(a.Interval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return a.Close()
		case <-ticker.C:
			a.Step()
		}
	}
}

// Close runs the close callback and, with an export path, writes the
// recorded frames. Later calls return nil.
func (a *App) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true
	if a.opts.Close != nil {
		a.opts.Close(a)
	}
	Logger().Info("sketch: closing", "frames", a.frameCount)

	if a.opts.ExportPath == "" {
		return nil
	}
	return a.canvas.SaveFrames(a.opts.ExportPath, a.opts.IntervalMs())
}

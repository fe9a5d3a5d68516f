package sketch

import (
	"image/color"
	"time"
)

// Option configures an App during creation.
//
// Example:
//
//	app, err := sketch.New(
//		sketch.WithSize(600, 600),
//		sketch.WithFrameRate(24),
//		sketch.WithBackground(sketch.Hex("skyblue")),
//		sketch.OnSetup(setup),
//		sketch.OnDraw(draw),
//	)
type Option func(*Options)

// Options holds the configuration of an App.
type Options struct {
	Width, Height int
	// FrameRate is the number of draw callbacks per second, 1 to 1000.
	FrameRate  int
	Background color.NRGBA
	Title      string
	// AutoClear removes every shape before each draw callback.
	AutoClear bool
	// Bounds, when set, maps a logical range onto the whole canvas.
	Bounds     *Bounds
	ShowGrid   bool
	Fullscreen bool
	ShowStats  bool
	// ExportPath, when set, captures every frame and writes them as an
	// animated GIF when the app closes.
	ExportPath string
	// Seed seeds the App's random source. Zero picks a time-based seed.
	Seed uint64
	// Surface replaces the in-memory RasterSurface.
	Surface Surface

	Setup, Draw Func
	Close       Func

	MouseMove, Click, MouseDown, MouseDrag, MouseUp MouseFunc
	KeyDown, KeyUp                                  KeyFunc
}

// DefaultOptions returns the configuration used when no option is given:
// a 400x400 silver canvas at 30 frames per second with auto-clear on.
func DefaultOptions() Options {
	return Options{
		Width:      400,
		Height:     400,
		FrameRate:  30,
		Background: Silver,
		Title:      "Sketch",
		AutoClear:  true,
	}
}

// Validate checks sizes, frame rate, bounds and the required callbacks.
func (o *Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return &ConfigError{Field: "size", Value: [2]int{o.Width, o.Height}, Reason: "width and height must be positive"}
	}
	if o.FrameRate < 1 || o.FrameRate > 1000 {
		return &ConfigError{Field: "frame rate", Value: o.FrameRate, Reason: "must be between 1 and 1000"}
	}
	if o.Bounds != nil {
		if err := o.Bounds.Validate(); err != nil {
			return err
		}
	}
	if o.Setup == nil || o.Draw == nil {
		return ErrMissingCallback
	}
	return nil
}

// Interval is the time between two frames.
func (o *Options) Interval() time.Duration {
	return time.Second / time.Duration(o.FrameRate)
}

// IntervalMs is the frame interval in whole milliseconds, used as the
// delay of exported frames.
func (o *Options) IntervalMs() int {
	return 1000 / o.FrameRate
}

// WithOptions replaces the whole configuration, keeping callbacks that
// opts leaves nil. It is useful with Config.Options.
func WithOptions(opts Options) Option {
	return func(o *Options) {
		callbacks := *o
		*o = opts
		o.inheritCallbacks(callbacks)
	}
}

func (o *Options) inheritCallbacks(from Options) {
	if o.Setup == nil {
		o.Setup = from.Setup
	}
	if o.Draw == nil {
		o.Draw = from.Draw
	}
	if o.Close == nil {
		o.Close = from.Close
	}
	if o.MouseMove == nil {
		o.MouseMove = from.MouseMove
	}
	if o.Click == nil {
		o.Click = from.Click
	}
	if o.MouseDown == nil {
		o.MouseDown = from.MouseDown
	}
	if o.MouseDrag == nil {
		o.MouseDrag = from.MouseDrag
	}
	if o.MouseUp == nil {
		o.MouseUp = from.MouseUp
	}
	if o.KeyDown == nil {
		o.KeyDown = from.KeyDown
	}
	if o.KeyUp == nil {
		o.KeyUp = from.KeyUp
	}
}

// WithSize sets the canvas size in pixels.
func WithSize(width, height int) Option {
	return func(o *Options) {
		o.Width, o.Height = width, height
	}
}

// WithFrameRate sets the number of frames per second.
func WithFrameRate(fps int) Option {
	return func(o *Options) {
		o.FrameRate = fps
	}
}

// WithBackground sets the surface background color.
func WithBackground(c color.Color) Option {
	return func(o *Options) {
		o.Background = toNRGBA(c)
	}
}

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(o *Options) {
		o.Title = title
	}
}

// WithAutoClear toggles clearing the canvas before every frame.
func WithAutoClear(on bool) Option {
	return func(o *Options) {
		o.AutoClear = on
	}
}

// WithBounds maps the logical range (minX, minY)-(maxX, maxY) onto the
// canvas, with logical Y growing upward.
func WithBounds(minX, minY, maxX, maxY float64) Option {
	return func(o *Options) {
		o.Bounds = &Bounds{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
	}
}

// WithGrid toggles the grid overlay.
func WithGrid(on bool) Option {
	return func(o *Options) {
		o.ShowGrid = on
	}
}

// WithFullscreen asks the host for a fullscreen window.
func WithFullscreen(on bool) Option {
	return func(o *Options) {
		o.Fullscreen = on
	}
}

// WithStats toggles the frame statistics overlay.
func WithStats(on bool) Option {
	return func(o *Options) {
		o.ShowStats = on
	}
}

// WithExportPath records every frame and writes them to path as an
// animated GIF on Close.
func WithExportPath(path string) Option {
	return func(o *Options) {
		o.ExportPath = path
	}
}

// WithSeed makes the App's random source deterministic.
func WithSeed(seed uint64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithSurface draws on s instead of a new RasterSurface. The canvas takes
// its size from s.
func WithSurface(s Surface) Option {
	return func(o *Options) {
		o.Surface = s
	}
}

// OnSetup sets the callback run once before the first frame.
func OnSetup(f Func) Option {
	return func(o *Options) {
		o.Setup = f
	}
}

// OnDraw sets the callback run on every frame.
func OnDraw(f Func) Option {
	return func(o *Options) {
		o.Draw = f
	}
}

// OnClose sets the callback run once when the app closes.
func OnClose(f Func) Option {
	return func(o *Options) {
		o.Close = f
	}
}

// OnMouseMove sets the pointer motion callback.
func OnMouseMove(f MouseFunc) Option {
	return func(o *Options) {
		o.MouseMove = f
	}
}

// OnClick sets the callback for a press and release without dragging.
func OnClick(f MouseFunc) Option {
	return func(o *Options) {
		o.Click = f
	}
}

// OnMouseDown sets the button press callback.
func OnMouseDown(f MouseFunc) Option {
	return func(o *Options) {
		o.MouseDown = f
	}
}

// OnMouseDrag sets the callback for motion with a button held.
func OnMouseDrag(f MouseFunc) Option {
	return func(o *Options) {
		o.MouseDrag = f
	}
}

// OnMouseUp sets the button release callback.
func OnMouseUp(f MouseFunc) Option {
	return func(o *Options) {
		o.MouseUp = f
	}
}

// OnKeyDown sets the key press callback.
func OnKeyDown(f KeyFunc) Option {
	return func(o *Options) {
		o.KeyDown = f
	}
}

// OnKeyUp sets the key release callback.
func OnKeyUp(f KeyFunc) Option {
	return func(o *Options) {
		o.KeyUp = f
	}
}

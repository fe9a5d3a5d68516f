package sketch

// Func is a lifecycle callback: setup, draw or close.
type Func func(app *App)

// MouseFunc receives pointer events.
type MouseFunc func(app *App, ev MouseEvent)

// KeyFunc receives keyboard events.
type KeyFunc func(app *App, ev KeyEvent)

// MouseButton identifies a pointer button.
type MouseButton int

const (
	ButtonNone MouseButton = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

func (b MouseButton) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	default:
		return "none"
	}
}

// MouseEvent describes a pointer event.
type MouseEvent struct {
	Button MouseButton
	// X and Y are logical coordinates: device coordinates mapped back
	// through the origin and bounds of the current style frame.
	X, Y float64
	// Left and Top are device pixels from the canvas corner.
	Left, Top int
}

// Pos returns the logical position as a vector.
func (e MouseEvent) Pos() Vector {
	return Vec(e.X, e.Y)
}

// KeyEvent describes a key press or release.
type KeyEvent struct {
	// Key is the host's name for the key, such as "A", "Space" or "ArrowUp".
	Key string
}

// MouseMoved reports pointer motion to device (left, top). Hosts call it;
// with a button held the drag callback runs as well.
func (a *App) MouseMoved(left, top int) {
	ev := a.mouseEvent(a.held, left, top)
	if a.held != ButtonNone {
		a.dragged = true
		if a.opts.MouseDrag != nil {
			a.opts.MouseDrag(a, ev)
		}
	}
	if a.opts.MouseMove != nil {
		a.opts.MouseMove(a, ev)
	}
}

// MousePressed reports a button press at device (left, top).
func (a *App) MousePressed(b MouseButton, left, top int) {
	a.held = b
	a.dragged = false
	ev := a.mouseEvent(b, left, top)
	if a.opts.MouseDown != nil {
		a.opts.MouseDown(a, ev)
	}
}

// MouseReleased reports a button release at device (left, top). A release
// without motion since the press is also a click.
func (a *App) MouseReleased(b MouseButton, left, top int) {
	ev := a.mouseEvent(b, left, top)
	click := a.held == b && !a.dragged
	a.held = ButtonNone
	a.dragged = false
	if a.opts.MouseUp != nil {
		a.opts.MouseUp(a, ev)
	}
	if click && a.opts.Click != nil {
		a.opts.Click(a, ev)
	}
}

// KeyPressed reports a key press.
func (a *App) KeyPressed(key string) {
	if a.opts.KeyDown != nil {
		a.opts.KeyDown(a, KeyEvent{Key: key})
	}
}

// KeyReleased reports a key release.
func (a *App) KeyReleased(key string) {
	if a.opts.KeyUp != nil {
		a.opts.KeyUp(a, KeyEvent{Key: key})
	}
}

// mouseEvent records the pointer position and builds the event for it.
func (a *App) mouseEvent(b MouseButton, left, top int) MouseEvent {
	a.mouseLeft, a.mouseTop = left, top
	l := a.canvas.Transform().Unproject(Vec(float64(left), float64(top)))
	a.mouseX, a.mouseY = l.X, l.Y
	return MouseEvent{Button: b, X: l.X, Y: l.Y, Left: left, Top: top}
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ebitenhost

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/sketch"
)

// Run opens a window for app and blocks until it closes. The result of
// App.Close is returned, so a failed frame export is reported here.
func Run(app *sketch.App) error {
	o := app.Options()
	ebiten.SetWindowTitle(o.Title)
	ebiten.SetWindowSize(o.Width, o.Height)
	ebiten.SetTPS(o.FrameRate)
	ebiten.SetFullscreen(o.Fullscreen)
	ebiten.SetWindowClosingHandled(true)

	h := newHost(app)
	app.Start()

	err := ebiten.RunGame(h)
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}
	// RunGame may also end without a close request, e.g. on a fatal
	// graphics error; the export is flushed either way.
	return errors.Join(err, h.close())
}

// host adapts an App to ebiten.Game.
type host struct {
	app    *sketch.App
	input  *input
	screen *ebiten.Image

	closeErr error
	closed   bool
}

func newHost(app *sketch.App) *host {
	return &host{app: app, input: newInput()}
}

// Update implements ebiten.Game.
func (h *host) Update() error {
	if ebiten.IsWindowBeingClosed() {
		h.closeErr = h.app.Close()
		h.closed = true
		return ebiten.Termination
	}
	h.input.poll(h.app)
	h.app.Step()
	return nil
}

// Draw implements ebiten.Game.
func (h *host) Draw(screen *ebiten.Image) {
	frame, err := h.app.Canvas().Surface().Capture()
	if err != nil {
		sketch.Logger().Warn("ebitenhost: capture failed", "err", err)
		return
	}
	b := frame.Bounds()
	if h.screen == nil || h.screen.Bounds() != b {
		if h.screen != nil {
			h.screen.Deallocate()
		}
		h.screen = ebiten.NewImage(b.Dx(), b.Dy())
	}
	h.screen.WritePixels(frame.Pix)
	screen.DrawImage(h.screen, nil)
}

// Layout implements ebiten.Game. The canvas keeps its own size and ebiten
// scales it to the window.
func (h *host) Layout(_, _ int) (int, int) {
	return h.app.Width(), h.app.Height()
}

func (h *host) close() error {
	if h.closed {
		return h.closeErr
	}
	h.closed = true
	return h.app.Close()
}

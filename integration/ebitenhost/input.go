// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/sketch"
)

var buttons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonMiddle,
	ebiten.MouseButtonRight,
}

// buttonOf maps an ebiten button to a sketch button.
func buttonOf(b ebiten.MouseButton) sketch.MouseButton {
	switch b {
	case ebiten.MouseButtonLeft:
		return sketch.ButtonLeft
	case ebiten.MouseButtonMiddle:
		return sketch.ButtonMiddle
	case ebiten.MouseButtonRight:
		return sketch.ButtonRight
	default:
		return sketch.ButtonNone
	}
}

// input turns ebiten's polled input state into App events.
type input struct {
	x, y int
	seen bool
	keys []ebiten.Key
}

func newInput() *input {
	return &input{keys: make([]ebiten.Key, 0, 8)}
}

// poll reports everything that changed since the previous tick: pointer
// motion first, then button and key transitions.
func (in *input) poll(app *sketch.App) {
	x, y := ebiten.CursorPosition()
	if !in.seen || x != in.x || y != in.y {
		in.x, in.y, in.seen = x, y, true
		app.MouseMoved(x, y)
	}

	for _, b := range buttons {
		if inpututil.IsMouseButtonJustPressed(b) {
			app.MousePressed(buttonOf(b), x, y)
		}
		if inpututil.IsMouseButtonJustReleased(b) {
			app.MouseReleased(buttonOf(b), x, y)
		}
	}

	in.keys = inpututil.AppendJustPressedKeys(in.keys[:0])
	for _, k := range in.keys {
		app.KeyPressed(k.String())
	}
	in.keys = inpututil.AppendJustReleasedKeys(in.keys[:0])
	for _, k := range in.keys {
		app.KeyReleased(k.String())
	}
}

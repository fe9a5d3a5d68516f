// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ebitenhost presents a sketch.App in a desktop window.
//
// The window runs at the app's frame rate: every ebiten tick forwards
// pointer and keyboard input to the app, then draws one frame. The
// composited surface is uploaded to the screen on every draw, so GetPixel
// reads back exactly what the window shows.
//
// Usage:
//
//	app, err := sketch.New(sketch.OnSetup(setup), sketch.OnDraw(draw))
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := ebitenhost.Run(app); err != nil {
//		log.Fatal(err)
//	}
//
// Closing the window runs App.Close, which writes any exported frames.
package ebitenhost

// Package sketch provides a Processing-style drawing layer for Go.
//
// # Overview
//
// sketch wraps the gg rasterizer in a creative-coding API: shapes drawn
// through a translate and rotate transform, a push/pop style stack, color
// helpers, a 2D Vector type and an App that runs setup and draw callbacks
// in a frame loop. Every drawing call rasterizes its shape into a small
// buffer and places it on a retained Surface, so individual shapes can be
// removed again with Canvas.Clear.
//
// # Quick Start
//
//	import "github.com/gogpu/sketch"
//
//	app, err := sketch.New(
//		sketch.WithSize(600, 600),
//		sketch.WithBackground(sketch.Hex("skyblue")),
//		sketch.OnSetup(func(app *sketch.App) {
//			app.Canvas().Translate(300, 300)
//		}),
//		sketch.OnDraw(func(app *sketch.App) {
//			c := app.Canvas()
//			c.Rotate(float64(app.FrameCount()))
//			c.Rect(-50, -50, 50, 50)
//		}),
//		sketch.WithExportPath("square.gif"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	app.RunFrames(90)
//	_ = app.Close()
//
// To show the sketch in a window use integration/ebitenhost.
//
// # Coordinate System
//
// Without bounds, logical coordinates are device pixels:
//   - Origin (0,0) at top-left, moved by Translate
//   - X increases right, Y increases down
//   - Angles in degrees, positive turns clockwise
//
// WithBounds maps a logical range onto the whole canvas with Y increasing
// up. A point is rotated first, then scaled, then translated.
//
// # Shapes
//
// Geometry (circles, rectangles, lines, arcs, polygons, points) is rotated
// point by point and rasterized upright. Text and images are rasterized
// upright and the raster is then rotated about its center.
package sketch

// Version is the current version of the library.
const Version = "0.1.0"

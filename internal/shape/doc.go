// Package shape rasterizes individual drawing primitives into standalone
// RGBA buffers that a surface can composite.
//
// Geometry is built from gg paths in logical coordinates and rendered
// through an affine matrix, so rotation, bounds scaling and translation
// are applied to the points before rasterization. Stroke widths stay in
// device pixels, and every raster is clipped to the canvas. Text and images take
// the other route: they are rendered upright and the finished raster is
// rotated with Rotate. A primitive never goes through both.
package shape

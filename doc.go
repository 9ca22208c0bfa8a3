// Package parabolines implements small generative-art animations:
// fields of horizontal line segments bounded by a parabola, placed by
// stratified random sampling and drifted up and down over time.
//
// # Quick Start
//
//	import "github.com/Ejjaffe/parabolines"
//
//	src := rand.New(rand.NewSource(7))
//	scene, _ := parabolines.Solo(src)
//
//	cv := parabolines.NewCanvas(scene.Width, scene.Height)
//	for i := 0; i < 120; i++ {
//		scene.Frame(cv)
//		// present or encode cv
//	}
//
// # Architecture
//
// The library is organized into:
//   - Core: Mapper (cartesian viewport to pixel space), LineField
//     (stratified placement, animation step, render)
//   - Substrate: Point, RGBA, Pixmap, Canvas
//   - Internal: raster (scanline fill and line stroking)
//
// Hosts live outside the library: cmd/parabolines drives scenes either
// into an ebiten window or into PNG/GIF files.
//
// # Coordinate System
//
// Scenes are defined in a fixed cartesian viewport with y increasing
// upward. The Mapper converts to canvas pixels, where the origin is the
// top-left corner and y increases downward.
package parabolines

package pasteboard

import "math"

// Geometry defaults for newly pasted objects.
const (
	MinSize     = 50.0  // smallest display width or height
	DefaultSize = 200.0 // display size until the raster's intrinsic size is known
	DefaultX    = 50.0
	DefaultY    = 50.0
)

// Handle is an opaque reference to an immutable raster held by a RasterStore.
// Objects and snapshots share handles; pixel bytes are never copied per object.
type Handle string

// Source describes the raster behind an object. Width0 and Height0 are the
// intrinsic pixel size, valid once Loaded is set.
type Source struct {
	Handle  Handle
	Width0  float64
	Height0 float64
	Loaded  bool
}

// ImageObject is one pasted image. It is a plain value record: copying it
// copies everything, so snapshots never share mutable state with the scene.
type ImageObject struct {
	ID     string
	Source Source

	// Pre-rotation top-left of the axis-aligned box, whiteboard coordinates.
	X, Y float64

	// Display size, each at least MinSize.
	Width, Height float64

	// Degrees in [0, 360), clockwise about the box centre.
	Rotation float64

	// Depth key; larger draws later.
	Z int
}

// Box returns the object's pre-rotation geometry.
func (o ImageObject) Box() Box {
	return Box{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height}
}

// Center returns the centre of the object's box. Rotation is about this point,
// so it is the same before and after rotation.
func (o ImageObject) Center() Vec2 {
	return Vec2{X: o.X + o.Width/2, Y: o.Y + o.Height/2}
}

// hasDefaultSize reports whether the display size is still the paste fallback.
func (o ImageObject) hasDefaultSize() bool {
	return o.Width == DefaultSize && o.Height == DefaultSize
}

// NormalizeDegrees maps any angle to [0, 360).
func NormalizeDegrees(deg float64) float64 {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return 0
	}
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// -tiny + 360 rounds to 360.
	if deg >= 360 {
		deg = 0
	}
	return deg
}

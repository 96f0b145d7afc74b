package pasteboard

import "math"

// Affine is a 2D affine matrix [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type Affine [6]float64

// Identity is the identity matrix.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// Multiply returns m * other, which applies other first, then m.
func (m Affine) Multiply(other Affine) Affine {
	return Affine{
		m[0]*other[0] + m[2]*other[1],
		m[1]*other[0] + m[3]*other[1],
		m[0]*other[2] + m[2]*other[3],
		m[1]*other[2] + m[3]*other[3],
		m[0]*other[4] + m[2]*other[5] + m[4],
		m[1]*other[4] + m[3]*other[5] + m[5],
	}
}

// Invert returns the inverse of m, or Identity if m is singular.
func (m Affine) Invert() Affine {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return Identity
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return Affine{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// Apply transforms a point.
func (m Affine) Apply(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// Translation returns a translation matrix.
func Translation(tx, ty float64) Affine {
	return Affine{1, 0, 0, 1, tx, ty}
}

// Scaling returns a scale matrix.
func Scaling(sx, sy float64) Affine {
	return Affine{sx, 0, 0, sy, 0, 0}
}

// ObjectTransform maps object-local coordinates, with (0, 0) at the box's
// top-left and (Width, Height) at its bottom-right, to whiteboard
// coordinates. The box is rotated about its centre.
//
// Composition order:
//
//	Translate(-w/2, -h/2) -> Rotate -> Translate(x+w/2, y+h/2)
func ObjectTransform(o ImageObject) Affine {
	sin, cos := math.Sincos(o.Rotation * math.Pi / 180)
	px := o.Width / 2
	py := o.Height / 2
	return Affine{
		cos, sin, -sin, cos,
		-cos*px + sin*py + o.X + px,
		-sin*px - cos*py + o.Y + py,
	}
}

// WorldToLocal converts a whiteboard point to the object's local frame.
func WorldToLocal(o ImageObject, wx, wy float64) (lx, ly float64) {
	return ObjectTransform(o).Invert().Apply(wx, wy)
}

// LocalToWorld converts an object-local point to whiteboard coordinates.
func LocalToWorld(o ImageObject, lx, ly float64) (wx, wy float64) {
	return ObjectTransform(o).Apply(lx, ly)
}

// Corners returns the four corners of the rotated box in whiteboard
// coordinates, clockwise from the top-left.
func Corners(o ImageObject) [4]Vec2 {
	m := ObjectTransform(o)
	var out [4]Vec2
	for i, p := range [4]Vec2{{0, 0}, {o.Width, 0}, {o.Width, o.Height}, {0, o.Height}} {
		out[i].X, out[i].Y = m.Apply(p.X, p.Y)
	}
	return out
}

// Bounds returns the axis-aligned bounding box of the rotated object.
func Bounds(o ImageObject) Rect {
	c := Corners(o)
	minX, minY := c[0].X, c[0].Y
	maxX, maxY := minX, minY
	for _, p := range c[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

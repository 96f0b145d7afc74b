package pasteboard

import (
	"image"
	"math"
)

// Vec2 is a 2D point or offset in whiteboard coordinates.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Empty reports whether the rectangle has zero or negative area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Pixels converts r to an integer rectangle that covers it completely.
func (r Rect) Pixels() image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.X+r.Width)), int(math.Ceil(r.Y+r.Height)),
	)
}

// RectFromPoints returns the rectangle spanned by two corner points in any
// order.
func RectFromPoints(a, b Vec2) Rect {
	return Rect{
		X:      math.Min(a.X, b.X),
		Y:      math.Min(a.Y, b.Y),
		Width:  math.Abs(b.X - a.X),
		Height: math.Abs(b.Y - a.Y),
	}
}

// Box is the pre-rotation geometry of an object: top-left plus display size.
type Box struct {
	X, Y, Width, Height float64
}

// Edge is a bitmask over the four sides of a box. A resize handle is tagged
// with the sides it moves.
type Edge uint8

const (
	EdgeN Edge = 1 << iota // top side
	EdgeS                  // bottom side
	EdgeE                  // right side
	EdgeW                  // left side
)

// The corner handles exposed on a selected object.
const (
	HandleNW = EdgeN | EdgeW
	HandleNE = EdgeN | EdgeE
	HandleSW = EdgeS | EdgeW
	HandleSE = EdgeS | EdgeE
)

// Has reports whether e contains every side in other.
func (e Edge) Has(other Edge) bool {
	return e&other == other
}

// String returns the compass tag for e, e.g. "nw".
func (e Edge) String() string {
	var b []byte
	if e.Has(EdgeN) {
		b = append(b, 'n')
	}
	if e.Has(EdgeS) {
		b = append(b, 's')
	}
	if e.Has(EdgeE) {
		b = append(b, 'e')
	}
	if e.Has(EdgeW) {
		b = append(b, 'w')
	}
	return string(b)
}

// ParseEdge converts a compass tag such as "se" or "n" to an Edge. Unknown
// letters are ignored.
func ParseEdge(tag string) Edge {
	var e Edge
	for _, r := range tag {
		switch r {
		case 'n', 'N':
			e |= EdgeN
		case 's', 'S':
			e |= EdgeS
		case 'e', 'E':
			e |= EdgeE
		case 'w', 'W':
			e |= EdgeW
		}
	}
	return e
}

// TargetKind identifies which widget received a pointer press. It decides
// which controller takes the pointer.
type TargetKind uint8

const (
	TargetBackground TargetKind = iota // empty whiteboard
	TargetBody                         // an object's image
	TargetResize                       // a corner resize handle of the selected object
	TargetRotate                       // the rotate handle of the selected object
)

// Target is the result of hit testing a pointer press.
type Target struct {
	Kind   TargetKind
	ID     string
	Handle Edge // valid for TargetResize
}

// Gesture names the controller that owns the pointer.
type Gesture uint8

const (
	GestureNone Gesture = iota
	GestureTranslate
	GestureResize
	GestureRotate
	GestureMarquee
)

func (g Gesture) String() string {
	switch g {
	case GestureTranslate:
		return "translate"
	case GestureResize:
		return "resize"
	case GestureRotate:
		return "rotate"
	case GestureMarquee:
		return "marquee"
	default:
		return "none"
	}
}

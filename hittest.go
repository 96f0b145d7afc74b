package pasteboard

// Selection frame geometry, object-local pixels.
const (
	FrameOutset  = 2.0  // frame border sits this far outside the box
	HandleRadius = 5.0  // corner and rotate handle knobs
	RotateArm    = 30.0 // distance from the frame's top edge to the rotate knob
)

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// cornerHandles lists the exposed resize handles in hit-test priority order.
var cornerHandles = [4]Edge{HandleNW, HandleNE, HandleSW, HandleSE}

// HandleCenter returns the local position of a corner handle's knob.
func HandleCenter(o ImageObject, e Edge) Vec2 {
	p := Vec2{X: -FrameOutset, Y: -FrameOutset}
	if e.Has(EdgeE) {
		p.X = o.Width + FrameOutset
	}
	if e.Has(EdgeS) {
		p.Y = o.Height + FrameOutset
	}
	return p
}

// RotateKnob returns the local position of the rotate handle's knob.
func RotateKnob(o ImageObject) Vec2 {
	return Vec2{X: o.Width / 2, Y: -FrameOutset - RotateArm}
}

// HandleAt reports which handle of o, if any, lies under the whiteboard point
// (x, y). The rotate knob wins over corners; a miss returns ok == false.
func HandleAt(o ImageObject, x, y float64) (t Target, ok bool) {
	lx, ly := WorldToLocal(o, x, y)
	k := RotateKnob(o)
	if (HitCircle{k.X, k.Y, HandleRadius}).Contains(lx, ly) {
		return Target{Kind: TargetRotate, ID: o.ID}, true
	}
	for _, e := range cornerHandles {
		c := HandleCenter(o, e)
		if (HitCircle{c.X, c.Y, HandleRadius}).Contains(lx, ly) {
			return Target{Kind: TargetResize, ID: o.ID, Handle: e}, true
		}
	}
	return Target{}, false
}

// HitTest returns the id of the topmost object whose rotated box contains the
// whiteboard point (x, y).
func (s *Scene) HitTest(x, y float64) (string, bool) {
	order := s.PaintOrder()
	for i := len(order) - 1; i >= 0; i-- {
		o := order[i]
		lx, ly := WorldToLocal(o, x, y)
		if (HitRect{0, 0, o.Width, o.Height}).Contains(lx, ly) {
			return o.ID, true
		}
	}
	return "", false
}

// HandleAt reports the handle of object id under (x, y).
func (s *Scene) HandleAt(id string, x, y float64) (Target, bool) {
	o, ok := s.Object(id)
	if !ok {
		return Target{}, false
	}
	return HandleAt(o, x, y)
}

// Center returns the centre of object id's box.
func (s *Scene) Center(id string) (Vec2, bool) {
	o, ok := s.Object(id)
	if !ok {
		return Vec2{}, false
	}
	return o.Center(), true
}

// Pick resolves a pointer press to exactly one target. Handles of the
// selected object are tried first, so a press on a handle never also
// reaches the body or the background.
func (s *Scene) Pick(selected string, x, y float64) Target {
	if selected != "" {
		if t, ok := s.HandleAt(selected, x, y); ok {
			return t
		}
	}
	if id, ok := s.HitTest(x, y); ok {
		return Target{Kind: TargetBody, ID: id}
	}
	return Target{Kind: TargetBackground}
}

package pasteboard

import "math"

// DragState is the state of a pointer-driven controller.
type DragState uint8

const (
	Idle DragState = iota
	Dragging
)

func (s DragState) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Controller is a gesture state machine that owns the pointer from press to
// release. Begin moves it to Dragging; End returns it to Idle.
type Controller interface {
	Gesture() Gesture
	State() DragState

	// Move applies the pointer position to the scene and reports whether
	// anything changed.
	Move(s *Scene, x, y float64) bool

	// End returns the controller to Idle and reports whether the drag left
	// the scene different from how it found it.
	End(s *Scene) bool
}

// objectDrag holds the part shared by the object controllers: the target id
// and its state at press time.
type objectDrag struct {
	state  DragState
	id     string
	before ImageObject
}

func (d *objectDrag) begin(s *Scene, id string) (ImageObject, bool) {
	o, ok := s.Object(id)
	if !ok {
		return ImageObject{}, false
	}
	d.state = Dragging
	d.id = id
	d.before = o
	return o, true
}

func (d *objectDrag) end(s *Scene) bool {
	if d.state != Dragging {
		return false
	}
	d.state = Idle
	o, ok := s.Object(d.id)
	d.id = ""
	return ok && o != d.before
}

// State reports whether a drag is in progress.
func (d *objectDrag) State() DragState { return d.state }

// ID returns the object being dragged, or "" when idle.
func (d *objectDrag) ID() string { return d.id }

// --- Translate ---

// TranslateController moves an object so that the grab point stays under the
// pointer.
type TranslateController struct {
	objectDrag
	offset Vec2
}

// Gesture implements Controller.
func (c *TranslateController) Gesture() Gesture { return GestureTranslate }

// Begin grabs object id at (x, y). It reports false for an unknown id.
func (c *TranslateController) Begin(s *Scene, id string, x, y float64) bool {
	o, ok := c.begin(s, id)
	if !ok {
		return false
	}
	c.offset = Vec2{X: x - o.X, Y: y - o.Y}
	return true
}

// Move implements Controller.
func (c *TranslateController) Move(s *Scene, x, y float64) bool {
	if c.state != Dragging {
		return false
	}
	o, ok := s.Object(c.id)
	if !ok {
		return false
	}
	nx, ny := x-c.offset.X, y-c.offset.Y
	if nx == o.X && ny == o.Y {
		return false
	}
	return s.Translate(c.id, nx, ny)
}

// End implements Controller.
func (c *TranslateController) End(s *Scene) bool { return c.end(s) }

// --- Resize ---

// ResizeController drags one handle of an object. Every step is computed
// from the geometry captured at press time, never from the previous step.
type ResizeController struct {
	objectDrag
	edges  Edge
	anchor Box
	start  Vec2
}

// Gesture implements Controller.
func (c *ResizeController) Gesture() Gesture { return GestureResize }

// Begin grabs the edges handle of object id at (x, y).
func (c *ResizeController) Begin(s *Scene, id string, edges Edge, x, y float64) bool {
	o, ok := c.begin(s, id)
	if !ok {
		return false
	}
	c.edges = edges
	c.anchor = o.Box()
	c.start = Vec2{X: x, Y: y}
	return true
}

// Edges returns the sides moved by the grabbed handle.
func (c *ResizeController) Edges() Edge { return c.edges }

// Move implements Controller.
func (c *ResizeController) Move(s *Scene, x, y float64) bool {
	if c.state != Dragging {
		return false
	}
	o, ok := s.Object(c.id)
	if !ok {
		return false
	}
	if !s.Resize(c.id, c.edges, x-c.start.X, y-c.start.Y, c.anchor) {
		return false
	}
	after, _ := s.Object(c.id)
	return after.Box() != o.Box()
}

// End implements Controller.
func (c *ResizeController) End(s *Scene) bool { return c.end(s) }

// --- Rotate ---

// RotateController turns an object about a centre point by the angle the
// pointer sweeps around it.
type RotateController struct {
	objectDrag
	center Vec2
	alpha0 float64 // radians, centre to pointer at press
	theta0 float64 // degrees, object rotation at press
}

// Gesture implements Controller.
func (c *RotateController) Gesture() Gesture { return GestureRotate }

// Begin grabs object id at (x, y), rotating about center. The caller
// supplies the centre in the same coordinate space as the pointer.
func (c *RotateController) Begin(s *Scene, id string, center Vec2, x, y float64) bool {
	o, ok := c.begin(s, id)
	if !ok {
		return false
	}
	c.center = center
	c.alpha0 = math.Atan2(y-center.Y, x-center.X)
	c.theta0 = o.Rotation
	return true
}

// Angle returns the rotation that a pointer at (x, y) would produce.
func (c *RotateController) Angle(x, y float64) float64 {
	alpha := math.Atan2(y-c.center.Y, x-c.center.X)
	return NormalizeDegrees((alpha-c.alpha0)*180/math.Pi + c.theta0)
}

// Move implements Controller.
func (c *RotateController) Move(s *Scene, x, y float64) bool {
	if c.state != Dragging {
		return false
	}
	o, ok := s.Object(c.id)
	if !ok {
		return false
	}
	deg := c.Angle(x, y)
	if deg == o.Rotation {
		return false
	}
	return s.Rotate(c.id, deg)
}

// End implements Controller.
func (c *RotateController) End(s *Scene) bool { return c.end(s) }

// --- Marquee ---

// Marquee is the export sub-region drawn by a background drag, in viewport
// coordinates. It never touches the scene.
type Marquee struct {
	Active   bool
	From, To Vec2 // press point and current pointer

	state DragState
}

// Gesture implements Controller.
func (m *Marquee) Gesture() Gesture { return GestureMarquee }

// State implements Controller.
func (m *Marquee) State() DragState { return m.state }

// Begin restarts the marquee at (x, y).
func (m *Marquee) Begin(x, y float64) {
	m.state = Dragging
	m.Active = true
	m.From = Vec2{X: x, Y: y}
	m.To = m.From
}

// Move implements Controller. The scene is left alone; it reports whether
// the marquee changed.
func (m *Marquee) Move(_ *Scene, x, y float64) bool {
	if m.state != Dragging {
		return false
	}
	p := Vec2{X: x, Y: y}
	if p == m.To {
		return false
	}
	m.To = p
	return true
}

// End implements Controller. The marquee stays active for a later export
// unless it has no area, in which case the press was a plain background
// click. It never changes the scene, so it always reports false.
func (m *Marquee) End(_ *Scene) bool {
	if m.state != Dragging {
		return false
	}
	m.state = Idle
	if m.Rect().Empty() {
		m.Clear()
	}
	return false
}

// Rect returns the region spanned by the marquee.
func (m *Marquee) Rect() Rect {
	return RectFromPoints(m.From, m.To)
}

// Clear deactivates the marquee.
func (m *Marquee) Clear() {
	m.Active = false
	m.From = Vec2{}
	m.To = Vec2{}
}

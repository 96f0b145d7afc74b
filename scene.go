package pasteboard

import (
	"slices"

	"github.com/phanxgames/pasteboard/internal/typeid"
)

// Scene is the document model: the ordered image objects plus the source of
// fresh depth keys. It exclusively owns its object sequence; everything else
// addresses objects by id. Mutations on an unknown id are silent no-ops.
type Scene struct {
	objects  []ImageObject
	zCounter int
	newID    func() string

	// PinClampedEdges stops a west or north resize from sliding the object
	// once the size clamp engages. Off by default: the position tracks the
	// pointer delta even while clamped.
	PinClampedEdges bool

	sortBuf []ImageObject // reused by PaintOrder
}

// NewScene creates an empty scene. Object ids come from newID; nil selects
// typeids with the "img" prefix.
func NewScene(newID func() string) *Scene {
	if newID == nil {
		newID = typeid.NewImageID
	}
	return &Scene{newID: newID}
}

// Snapshot is a deep value copy of a scene's object sequence. The depth
// counter is not part of it.
type Snapshot struct {
	Objects []ImageObject
}

// Handles returns the raster handles referenced by the snapshot.
func (s Snapshot) Handles() []Handle {
	out := make([]Handle, 0, len(s.Objects))
	for _, o := range s.Objects {
		out = append(out, o.Source.Handle)
	}
	return out
}

// Find returns the object with the given id.
func (s Snapshot) Find(id string) (ImageObject, bool) {
	for _, o := range s.Objects {
		if o.ID == id {
			return o, true
		}
	}
	return ImageObject{}, false
}

// --- Queries ---

func (s *Scene) index(id string) int {
	for i := range s.objects {
		if s.objects[i].ID == id {
			return i
		}
	}
	return -1
}

// Object returns a copy of the object with the given id.
func (s *Scene) Object(id string) (ImageObject, bool) {
	i := s.index(id)
	if i < 0 {
		return ImageObject{}, false
	}
	return s.objects[i], true
}

// Objects returns a copy of the object sequence in insertion order.
func (s *Scene) Objects() []ImageObject {
	return slices.Clone(s.objects)
}

// Len returns the number of objects.
func (s *Scene) Len() int {
	return len(s.objects)
}

// ZCounter returns the next depth key handed to an inserted object.
func (s *Scene) ZCounter() int {
	return s.zCounter
}

// Handles returns the raster handles referenced by the live scene.
func (s *Scene) Handles() []Handle {
	return Snapshot{Objects: s.objects}.Handles()
}

// PaintOrder returns the objects back to front: ascending Z, ties in
// insertion order. The returned slice is reused by the next call.
func (s *Scene) PaintOrder() []ImageObject {
	n := len(s.objects)
	if cap(s.sortBuf) < n {
		s.sortBuf = make([]ImageObject, n)
	}
	s.sortBuf = s.sortBuf[:n]
	copy(s.sortBuf, s.objects)
	// Stable insertion sort by Z.
	for i := 1; i < n; i++ {
		key := s.sortBuf[i]
		j := i - 1
		for j >= 0 && s.sortBuf[j].Z > key.Z {
			s.sortBuf[j+1] = s.sortBuf[j]
			j--
		}
		s.sortBuf[j+1] = key
	}
	return s.sortBuf
}

// --- Mutations ---

// Insert appends a new object for src at the default position and size and
// returns its id.
func (s *Scene) Insert(src Source) string {
	o := ImageObject{
		ID:     s.newID(),
		Source: src,
		X:      DefaultX,
		Y:      DefaultY,
		Width:  DefaultSize,
		Height: DefaultSize,
		Z:      s.zCounter,
	}
	s.zCounter++
	if src.Loaded {
		o.Source.Loaded = false
		applyIntrinsic(&o, src.Width0, src.Height0)
	}
	s.objects = append(s.objects, o)
	return o.ID
}

// ResolveIntrinsic records the raster's intrinsic size on the object and, if
// its display size is still the 200×200 default, adopts it. It reports
// whether the object exists.
func (s *Scene) ResolveIntrinsic(id string, w0, h0 float64) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	applyIntrinsic(&s.objects[i], w0, h0)
	return true
}

func applyIntrinsic(o *ImageObject, w0, h0 float64) {
	if o.Source.Loaded {
		return
	}
	o.Source.Width0 = w0
	o.Source.Height0 = h0
	o.Source.Loaded = true
	if o.hasDefaultSize() {
		o.Width = max(MinSize, w0)
		o.Height = max(MinSize, h0)
	}
}

// Translate sets the object's absolute position.
func (s *Scene) Translate(id string, x, y float64) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.objects[i].X = x
	s.objects[i].Y = y
	return true
}

// Resize applies a handle drag of (dx, dy) to the anchor geometry captured at
// pointer-down. See ResizeBox for the rules.
func (s *Scene) Resize(id string, edges Edge, dx, dy float64, anchor Box) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	b := ResizeBox(anchor, edges, dx, dy, s.PinClampedEdges)
	o := &s.objects[i]
	o.X, o.Y, o.Width, o.Height = b.X, b.Y, b.Width, b.Height
	return true
}

// ResizeBox computes the geometry after dragging the handle tagged edges by
// (dx, dy) from anchor. Width and height clamp independently at MinSize; the
// aspect ratio is not preserved. A west or north drag moves the position by
// the raw delta unless pin is set, in which case the opposite edge stays put.
func ResizeBox(anchor Box, edges Edge, dx, dy float64, pin bool) Box {
	b := anchor
	if edges.Has(EdgeW) {
		b.Width = max(MinSize, anchor.Width-dx)
		b.X = anchor.X + dx
		if pin {
			b.X = anchor.X + anchor.Width - b.Width
		}
	}
	if edges.Has(EdgeE) {
		b.Width = max(MinSize, anchor.Width+dx)
	}
	if edges.Has(EdgeN) {
		b.Height = max(MinSize, anchor.Height-dy)
		b.Y = anchor.Y + dy
		if pin {
			b.Y = anchor.Y + anchor.Height - b.Height
		}
	}
	if edges.Has(EdgeS) {
		b.Height = max(MinSize, anchor.Height+dy)
	}
	return b
}

// Rotate stores deg, normalized to [0, 360).
func (s *Scene) Rotate(id string, deg float64) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.objects[i].Rotation = NormalizeDegrees(deg)
	return true
}

// zRange returns the smallest and largest depth keys in the scene.
func (s *Scene) zRange() (lo, hi int) {
	for i, o := range s.objects {
		if i == 0 || o.Z < lo {
			lo = o.Z
		}
		if i == 0 || o.Z > hi {
			hi = o.Z
		}
	}
	return lo, hi
}

// Raise moves the object above every other object. It is a no-op when the
// object already holds the largest depth key; otherwise it reports true.
func (s *Scene) Raise(id string) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	_, hi := s.zRange()
	if s.objects[i].Z >= hi {
		return false
	}
	s.objects[i].Z = hi + 1
	s.zCounter = hi + 2
	return true
}

// Lower moves the object below every other object. It is a no-op when the
// object already holds the smallest depth key. The depth counter never
// decreases.
func (s *Scene) Lower(id string) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	lo, _ := s.zRange()
	if s.objects[i].Z <= lo {
		return false
	}
	s.objects[i].Z = lo - 1
	return true
}

// Delete removes the object.
func (s *Scene) Delete(id string) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.objects = slices.Delete(s.objects, i, i+1)
	return true
}

// Snapshot returns a deep value copy of the object sequence.
func (s *Scene) Snapshot() Snapshot {
	return Snapshot{Objects: slices.Clone(s.objects)}
}

// Restore replaces the object sequence with the snapshot's content. The depth
// counter is left alone.
func (s *Scene) Restore(snap Snapshot) {
	s.objects = slices.Clone(snap.Objects)
}

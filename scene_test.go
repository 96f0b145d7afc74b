package pasteboard

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestNewSceneDefaultIDs(t *testing.T) {
	s := NewScene(nil)
	a := s.Insert(Source{Handle: "h1"})
	b := s.Insert(Source{Handle: "h2"})
	if a == b {
		t.Fatalf("ids not unique: %q", a)
	}
	if len(a) < 4 || a[:4] != "img_" {
		t.Errorf("id = %q, want img_ prefix", a)
	}
}

func TestInsertDefaults(t *testing.T) {
	s := NewScene(seqIDs("A", "B"))
	id := s.Insert(Source{Handle: "h"})
	got, ok := s.Object(id)
	if !ok {
		t.Fatal("inserted object not found")
	}
	want := ImageObject{ID: "A", Source: Source{Handle: "h"}, X: 50, Y: 50, Width: 200, Height: 200}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("inserted object mismatch (-want +got):\n%s", diff)
	}
	s.Insert(Source{Handle: "h"})
	if s.ZCounter() != 2 {
		t.Errorf("ZCounter = %d, want 2", s.ZCounter())
	}
}

func TestInsertLoadedSource(t *testing.T) {
	s := NewScene(seqIDs("A"))
	id := s.Insert(Source{Handle: "h", Width0: 30, Height0: 400, Loaded: true})
	o, _ := s.Object(id)
	// Intrinsic sizes below the minimum still clamp.
	if o.Width != 50 || o.Height != 400 {
		t.Errorf("size = %vx%v, want 50x400", o.Width, o.Height)
	}
}

func TestResolveIntrinsic(t *testing.T) {
	tests := []struct {
		name         string
		edit         func(s *Scene, id string)
		wantW, wantH float64
	}{
		{"untouched", func(*Scene, string) {}, 300, 400},
		{"moved", func(s *Scene, id string) { s.Translate(id, 10, 10) }, 300, 400},
		{"rotated", func(s *Scene, id string) { s.Rotate(id, 45) }, 300, 400},
		{"resized", func(s *Scene, id string) {
			s.Resize(id, HandleSE, 10, 0, Box{50, 50, 200, 200})
		}, 210, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScene(seqIDs("A"))
			id := s.Insert(Source{Handle: "h"})
			tt.edit(s, id)
			if !s.ResolveIntrinsic(id, 300, 400) {
				t.Fatal("ResolveIntrinsic = false")
			}
			o, _ := s.Object(id)
			if o.Width != tt.wantW || o.Height != tt.wantH {
				t.Errorf("size = %vx%v, want %vx%v", o.Width, o.Height, tt.wantW, tt.wantH)
			}
			if !o.Source.Loaded || o.Source.Width0 != 300 || o.Source.Height0 != 400 {
				t.Errorf("source = %+v, want loaded 300x400", o.Source)
			}
		})
	}
}

func TestResolveIntrinsicOnce(t *testing.T) {
	s := NewScene(seqIDs("A"))
	id := s.Insert(Source{Handle: "h"})
	s.ResolveIntrinsic(id, 300, 400)
	s.ResolveIntrinsic(id, 10, 10)
	o, _ := s.Object(id)
	if o.Source.Width0 != 300 || o.Width != 300 {
		t.Errorf("second resolution overwrote: source %+v, width %v", o.Source, o.Width)
	}
}

func TestUnknownIDIsNoOp(t *testing.T) {
	s := NewScene(seqIDs("A"))
	s.Insert(Source{Handle: "h"})
	before := s.Snapshot()

	ops := map[string]bool{
		"ResolveIntrinsic": s.ResolveIntrinsic("nope", 1, 1),
		"Translate":        s.Translate("nope", 1, 1),
		"Resize":           s.Resize("nope", HandleSE, 1, 1, Box{}),
		"Rotate":           s.Rotate("nope", 1),
		"Raise":            s.Raise("nope"),
		"Lower":            s.Lower("nope"),
		"Delete":           s.Delete("nope"),
	}
	for name, ok := range ops {
		if ok {
			t.Errorf("%s on unknown id = true, want false", name)
		}
	}
	if diff := cmp.Diff(before, s.Snapshot()); diff != "" {
		t.Errorf("scene changed (-before +after):\n%s", diff)
	}
}

func TestRaiseLowerScenario(t *testing.T) {
	s := NewScene(seqIDs("A", "B", "C"))
	a := s.Insert(Source{Handle: "a"})
	b := s.Insert(Source{Handle: "b"})
	s.Insert(Source{Handle: "c"})
	if s.ZCounter() != 3 {
		t.Fatalf("ZCounter = %d, want 3", s.ZCounter())
	}

	if !s.Raise(a) {
		t.Fatal("Raise(A) = false")
	}
	oa, _ := s.Object(a)
	if oa.Z != 3 || s.ZCounter() != 4 {
		t.Errorf("after raise: A.z = %d, zCounter = %d, want 3, 4", oa.Z, s.ZCounter())
	}

	// B is now the bottom object, so lowering it changes nothing.
	if s.Lower(b) {
		t.Error("Lower(B) at bottom = true, want false")
	}
}

func TestLowerFromInitialOrder(t *testing.T) {
	s := NewScene(seqIDs("A", "B", "C"))
	s.Insert(Source{})
	b := s.Insert(Source{})
	s.Insert(Source{})
	if !s.Lower(b) {
		t.Fatal("Lower(B) = false")
	}
	ob, _ := s.Object(b)
	if ob.Z != -1 {
		t.Errorf("B.z = %d, want -1", ob.Z)
	}
	if s.ZCounter() != 3 {
		t.Errorf("ZCounter = %d, want 3 (never decremented)", s.ZCounter())
	}
}

func TestRaiseLowerIdempotentAtBoundary(t *testing.T) {
	s := NewScene(seqIDs("A", "B"))
	a := s.Insert(Source{})
	b := s.Insert(Source{})
	before := s.Snapshot()
	if s.Raise(b) {
		t.Error("Raise(top) = true")
	}
	if s.Lower(a) {
		t.Error("Lower(bottom) = true")
	}
	if diff := cmp.Diff(before, s.Snapshot()); diff != "" {
		t.Errorf("z changed at boundary (-before +after):\n%s", diff)
	}
	if s.ZCounter() != 2 {
		t.Errorf("ZCounter = %d, want 2", s.ZCounter())
	}
}

func TestSingleObjectRaiseLower(t *testing.T) {
	s := NewScene(seqIDs("A"))
	a := s.Insert(Source{})
	if s.Raise(a) || s.Lower(a) {
		t.Error("raise/lower of the only object should be a no-op")
	}
}

func TestPaintOrderStableTies(t *testing.T) {
	s := NewScene(seqIDs("A", "B", "C", "D"))
	a := s.Insert(Source{})
	b := s.Insert(Source{})
	c := s.Insert(Source{})
	d := s.Insert(Source{})
	s.Lower(c) // -1
	s.Lower(d) // -2
	var got []string
	for _, o := range s.PaintOrder() {
		got = append(got, o.ID)
	}
	want := []string{d, c, a, b}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("paint order (-want +got):\n%s", diff)
	}

	// Equal z values paint in insertion order.
	s2 := NewScene(seqIDs("P", "Q", "R"))
	p := s2.Insert(Source{})
	q := s2.Insert(Source{})
	r := s2.Insert(Source{})
	s2.Restore(Snapshot{Objects: []ImageObject{
		{ID: p, Z: 5, Width: 50, Height: 50},
		{ID: q, Z: 1, Width: 50, Height: 50},
		{ID: r, Z: 5, Width: 50, Height: 50},
	}})
	got = got[:0]
	for _, o := range s2.PaintOrder() {
		got = append(got, o.ID)
	}
	if diff := cmp.Diff([]string{q, p, r}, got); diff != "" {
		t.Errorf("tie order (-want +got):\n%s", diff)
	}
}

func TestDelete(t *testing.T) {
	s := NewScene(seqIDs("A", "B"))
	a := s.Insert(Source{})
	b := s.Insert(Source{})
	if !s.Delete(a) {
		t.Fatal("Delete = false")
	}
	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1", s.Len())
	}
	if _, ok := s.Object(b); !ok {
		t.Error("B missing after deleting A")
	}
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	s := NewScene(seqIDs("A"))
	a := s.Insert(Source{Handle: "h"})
	snap := s.Snapshot()
	s.Translate(a, 999, 999)
	if snap.Objects[0].X != 50 {
		t.Errorf("snapshot X = %v after live edit, want 50", snap.Objects[0].X)
	}

	s.Restore(snap)
	snap.Objects[0].X = -1
	o, _ := s.Object(a)
	if o.X != 50 {
		t.Errorf("live X = %v after snapshot edit, want 50", o.X)
	}
}

func TestRestoreKeepsZCounter(t *testing.T) {
	s := NewScene(seqIDs("A", "B"))
	s.Insert(Source{})
	empty := Snapshot{}
	s.Insert(Source{})
	s.Restore(empty)
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}
	if s.ZCounter() != 2 {
		t.Errorf("ZCounter = %d, want 2", s.ZCounter())
	}
}

func TestSnapshotHandles(t *testing.T) {
	s := NewScene(seqIDs("A", "B"))
	s.Insert(Source{Handle: "h1"})
	s.Insert(Source{Handle: "h2"})
	got := s.Handles()
	if diff := cmp.Diff([]Handle{"h1", "h2"}, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("Handles (-want +got):\n%s", diff)
	}
	if _, ok := s.Snapshot().Find("B"); !ok {
		t.Error("Find(B) = false")
	}
}

func TestResizeBox(t *testing.T) {
	anchor := Box{X: 100, Y: 100, Width: 200, Height: 200}
	tests := []struct {
		name   string
		edges  Edge
		dx, dy float64
		pin    bool
		want   Box
	}{
		{"se grow and shrink", HandleSE, -50, 50, false, Box{100, 100, 150, 250}},
		{"se clamp", HandleSE, -500, -500, false, Box{100, 100, 50, 50}},
		{"nw shrink", HandleNW, 20, 30, false, Box{120, 130, 180, 170}},
		{"nw clamp slides", HandleNW, 180, 180, false, Box{280, 280, 50, 50}},
		{"nw clamp pinned", HandleNW, 180, 180, true, Box{250, 250, 50, 50}},
		{"ne", HandleNE, 10, 10, false, Box{100, 110, 210, 190}},
		{"sw", HandleSW, 10, 10, false, Box{110, 100, 190, 210}},
		{"w only", EdgeW, -10, 99, false, Box{90, 100, 210, 200}},
		{"n only", EdgeN, 99, -10, false, Box{100, 90, 200, 210}},
		{"pin unclamped matches", HandleNW, 20, 30, true, Box{120, 130, 180, 170}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResizeBox(anchor, tt.edges, tt.dx, tt.dy, tt.pin)
			if got != tt.want {
				t.Errorf("ResizeBox(%s, %v, %v) = %+v, want %+v", tt.edges, tt.dx, tt.dy, got, tt.want)
			}
		})
	}
}

func TestResizeClampProperty(t *testing.T) {
	anchor := Box{X: 0, Y: 0, Width: 60, Height: 60}
	for _, e := range []Edge{HandleNW, HandleNE, HandleSW, HandleSE} {
		for dx := -300.0; dx <= 300; dx += 37 {
			for dy := -300.0; dy <= 300; dy += 41 {
				b := ResizeBox(anchor, e, dx, dy, false)
				if b.Width < MinSize || b.Height < MinSize {
					t.Fatalf("ResizeBox(%s, %v, %v) = %+v, below minimum", e, dx, dy, b)
				}
			}
		}
	}
}

func TestSceneRotateNormalizes(t *testing.T) {
	s := NewScene(seqIDs("A"))
	a := s.Insert(Source{})
	s.Rotate(a, -90)
	o, _ := s.Object(a)
	if o.Rotation != 270 {
		t.Errorf("Rotation = %v, want 270", o.Rotation)
	}
}

func TestNormalizeDegrees(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{359.5, 359.5},
		{360, 0},
		{720, 0},
		{-10, 350},
		{-360, 0},
		{370, 10},
		{-1e-15, 0},
	}
	for _, tt := range tests {
		got := NormalizeDegrees(tt.in)
		if got < 0 || got >= 360 {
			t.Errorf("NormalizeDegrees(%v) = %v, out of range", tt.in, got)
		}
		assertNear(t, "NormalizeDegrees", got, tt.want)
	}
}

package pasteboard

import "slices"

// History is a linear stack of scene snapshots with a movable cursor. The
// snapshot at the cursor is the current state; entries after it form the
// redo tail.
type History struct {
	snaps  []Snapshot
	cursor int

	// OnDrop, if set, receives the snapshots discarded when a commit
	// truncates the redo tail.
	OnDrop func(dropped []Snapshot)
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{}
}

// RecordCommit drops any redo tail, appends a snapshot of scene and moves the
// cursor onto it.
func (h *History) RecordCommit(scene *Scene) {
	keep := min(len(h.snaps), h.cursor+1)
	if keep < len(h.snaps) {
		dropped := slices.Clone(h.snaps[keep:])
		clear(h.snaps[keep:])
		h.snaps = h.snaps[:keep]
		if h.OnDrop != nil {
			h.OnDrop(dropped)
		}
	}
	h.snaps = append(h.snaps, scene.Snapshot())
	h.cursor = len(h.snaps) - 1
}

// Undo steps the cursor back and returns the snapshot now current. It
// reports false at the oldest entry.
func (h *History) Undo() (Snapshot, bool) {
	if h.cursor <= 0 || len(h.snaps) == 0 {
		return Snapshot{}, false
	}
	h.cursor--
	return h.snaps[h.cursor], true
}

// Redo steps the cursor forward and returns the snapshot now current. It
// reports false at the newest entry.
func (h *History) Redo() (Snapshot, bool) {
	if h.cursor >= len(h.snaps)-1 {
		return Snapshot{}, false
	}
	h.cursor++
	return h.snaps[h.cursor], true
}

// CanUndo reports whether Undo would move the cursor.
func (h *History) CanUndo() bool {
	return h.cursor > 0 && len(h.snaps) > 0
}

// CanRedo reports whether Redo would move the cursor.
func (h *History) CanRedo() bool {
	return h.cursor < len(h.snaps)-1
}

// Len returns the number of stored snapshots.
func (h *History) Len() int {
	return len(h.snaps)
}

// Cursor returns the index of the current snapshot.
func (h *History) Cursor() int {
	return h.cursor
}

// Current returns the snapshot at the cursor.
func (h *History) Current() (Snapshot, bool) {
	if h.cursor >= len(h.snaps) {
		return Snapshot{}, false
	}
	return h.snaps[h.cursor], true
}

// Handles returns every raster handle referenced by a stored snapshot,
// including the redo tail.
func (h *History) Handles() map[Handle]struct{} {
	out := make(map[Handle]struct{})
	for _, s := range h.snaps {
		for _, o := range s.Objects {
			out[o.Source.Handle] = struct{}{}
		}
	}
	return out
}

// Amend calls fn on every object of every stored snapshot. It rewrites
// history in place and records nothing.
func (h *History) Amend(fn func(o *ImageObject)) {
	for i := range h.snaps {
		objs := h.snaps[i].Objects
		for j := range objs {
			fn(&objs[j])
		}
	}
}

package pasteboard

import (
	"context"
	"io"
	"log/slog"
)

// Options configures a Board. The zero value is usable.
type Options struct {
	// Logger receives engine logs; nil selects slog.Default().
	Logger *slog.Logger

	// NewID mints object ids; nil selects "img" typeids.
	NewID func() string

	// Rasters holds pasted rasters; nil creates a private store.
	Rasters *RasterStore

	// CommitEachResizeStep records a history entry for every resize move
	// instead of once on release.
	CommitEachResizeStep bool

	// PinClampedEdges keeps the opposite edge fixed once a west or north
	// resize hits the minimum size.
	PinClampedEdges bool
}

type sizeResult struct {
	id     string
	handle Handle
	width  int
	height int
	err    error
}

// Board is the editing engine. It owns the scene, its history, the selection,
// the marquee and the gesture controllers, and turns pointer, keyboard and
// paste events into scene mutations and history commits.
//
// Board is not safe for concurrent use: every method must run on the event
// loop. Raster decoding happens on background goroutines whose results are
// applied by ProcessPending or AwaitPending.
type Board struct {
	scene   *Scene
	history *History
	sel     Selection
	marquee Marquee
	rasters *RasterStore
	log     *slog.Logger

	translate TranslateController
	resize    ResizeController
	rotate    RotateController
	active    Controller

	commitEachResizeStep bool

	results  chan sizeResult
	inflight int
}

// NewBoard creates an empty board.
func NewBoard(opts Options) *Board {
	b := &Board{
		scene:                NewScene(opts.NewID),
		history:              NewHistory(),
		rasters:              opts.Rasters,
		log:                  opts.Logger,
		commitEachResizeStep: opts.CommitEachResizeStep,
		results:              make(chan sizeResult, 64),
	}
	if b.rasters == nil {
		b.rasters = NewRasterStore()
	}
	if b.log == nil {
		b.log = slog.Default()
	}
	b.scene.PinClampedEdges = opts.PinClampedEdges
	b.history.OnDrop = b.releaseDropped
	return b
}

// --- Accessors ---

// Scene returns the live scene. Callers outside the engine must treat it as
// read-only.
func (b *Board) Scene() *Scene { return b.scene }

// History returns the edit history.
func (b *Board) History() *History { return b.history }

// Rasters returns the raster store.
func (b *Board) Rasters() *RasterStore { return b.rasters }

// Selected returns the selected object id.
func (b *Board) Selected() (string, bool) { return b.sel.ID() }

// Marquee returns a copy of the marquee state.
func (b *Board) Marquee() Marquee { return b.marquee }

// Gesture returns the gesture that currently owns the pointer.
func (b *Board) Gesture() Gesture {
	if b.active == nil {
		return GestureNone
	}
	return b.active.Gesture()
}

// Dragging reports whether a controller owns the pointer.
func (b *Board) Dragging() bool {
	return b.active != nil && b.active.State() == Dragging
}

// Pending returns the number of raster decodes not yet applied.
func (b *Board) Pending() int { return b.inflight }

// Pick resolves a press at (x, y) to the widget under it.
func (b *Board) Pick(x, y float64) Target {
	id, _ := b.sel.ID()
	return b.scene.Pick(id, x, y)
}

func (b *Board) commit(reason string) {
	b.history.RecordCommit(b.scene)
	b.log.Debug("commit", "reason", reason, "history", b.history.Len(), "cursor", b.history.Cursor())
}

// --- Pointer ---

// PointerDown hands the pointer to the controller for t. A press that
// arrives while another drag is active ends that drag first.
func (b *Board) PointerDown(t Target, x, y float64) {
	if b.active != nil {
		b.PointerCancel()
	}
	switch t.Kind {
	case TargetBody:
		if !b.translate.Begin(b.scene, t.ID, x, y) {
			b.log.Debug("press ignored: unknown object", "id", t.ID)
			return
		}
		b.sel.Set(t.ID)
		b.active = &b.translate
	case TargetResize:
		if !b.resize.Begin(b.scene, t.ID, t.Handle, x, y) {
			b.log.Debug("press ignored: unknown object", "id", t.ID)
			return
		}
		b.sel.Set(t.ID)
		b.active = &b.resize
	case TargetRotate:
		c, ok := b.scene.Center(t.ID)
		if !ok || !b.rotate.Begin(b.scene, t.ID, c, x, y) {
			b.log.Debug("press ignored: unknown object", "id", t.ID)
			return
		}
		b.sel.Set(t.ID)
		b.active = &b.rotate
	default:
		b.sel.Clear()
		b.marquee.Begin(x, y)
		b.active = &b.marquee
	}
}

// PointerMove feeds a pointer position to the active controller.
func (b *Board) PointerMove(x, y float64) {
	if b.active == nil {
		return
	}
	changed := b.active.Move(b.scene, x, y)
	if changed && b.commitEachResizeStep && b.active.Gesture() == GestureResize {
		b.commit("resize step")
	}
}

// PointerUp applies the release position and ends the drag, committing it if
// it changed the scene.
func (b *Board) PointerUp(x, y float64) {
	if b.active == nil {
		return
	}
	b.PointerMove(x, y)
	b.finish()
}

// PointerCancel ends the drag where it is, as if the pointer were released
// at its last position. Losing the pointer commits like a release.
func (b *Board) PointerCancel() {
	if b.active == nil {
		return
	}
	b.finish()
}

func (b *Board) finish() {
	c := b.active
	b.active = nil
	g := c.Gesture()
	if !c.End(b.scene) {
		return
	}
	if g == GestureResize && b.commitEachResizeStep {
		return
	}
	b.commit(g.String())
}

// --- History ---

// Undo restores the previous snapshot and clears the selection. It is
// ignored mid-drag and at the oldest entry.
func (b *Board) Undo() bool {
	if b.Dragging() {
		b.log.Debug("undo ignored: drag in progress")
		return false
	}
	snap, ok := b.history.Undo()
	if !ok {
		return false
	}
	b.scene.Restore(snap)
	b.sel.Clear()
	return true
}

// Redo re-applies the next snapshot and clears the selection.
func (b *Board) Redo() bool {
	if b.Dragging() {
		b.log.Debug("redo ignored: drag in progress")
		return false
	}
	snap, ok := b.history.Redo()
	if !ok {
		return false
	}
	b.scene.Restore(snap)
	b.sel.Clear()
	return true
}

// releaseDropped frees rasters that only dropped snapshots referenced.
func (b *Board) releaseDropped(dropped []Snapshot) {
	live := b.history.Handles()
	for _, h := range b.scene.Handles() {
		live[h] = struct{}{}
	}
	for _, s := range dropped {
		for _, h := range s.Handles() {
			if _, ok := live[h]; ok {
				continue
			}
			if b.rasters.Has(h) {
				b.rasters.Release(h)
				b.log.Debug("raster released", "handle", h)
			}
		}
	}
}

// --- Selection & z-order ---

// Select selects id if it exists.
func (b *Board) Select(id string) bool {
	if _, ok := b.scene.Object(id); !ok {
		return false
	}
	b.sel.Set(id)
	return true
}

// ClearSelection drops the selection.
func (b *Board) ClearSelection() { b.sel.Clear() }

// RaiseSelected moves the selected object to the top and commits.
func (b *Board) RaiseSelected() bool {
	if !b.sel.RaiseSelected(b.scene) {
		return false
	}
	b.commit("raise")
	return true
}

// LowerSelected moves the selected object to the bottom and commits.
func (b *Board) LowerSelected() bool {
	if !b.sel.LowerSelected(b.scene) {
		return false
	}
	b.commit("lower")
	return true
}

// DeleteSelected removes the selected object and commits.
func (b *Board) DeleteSelected() bool {
	if !b.sel.DeleteSelected(b.scene) {
		return false
	}
	b.commit("delete")
	return true
}

// --- Clipboard ---

// Paste inserts the first image of ev as a new object and commits. Its
// intrinsic size is resolved in the background. Events without a readable
// image are ignored.
func (b *Board) Paste(ev PasteEvent) (string, bool) {
	item, ok := ev.FirstImage()
	if !ok {
		b.log.Debug("paste ignored: no image item", "items", len(ev.Items))
		return "", false
	}
	data, err := item.Blob()
	if err != nil || len(data) == 0 {
		b.log.Debug("paste ignored: unreadable blob", "mime", item.MIMEType(), "error", err)
		return "", false
	}
	h := b.rasters.Mint(item.MIMEType(), data)
	id := b.scene.Insert(Source{Handle: h})
	b.commit("paste")

	b.inflight++
	go b.resolve(id, h)
	return id, true
}

func (b *Board) resolve(id string, h Handle) {
	w, ht, err := b.rasters.DecodeConfig(h)
	b.results <- sizeResult{id: id, handle: h, width: w, height: ht, err: err}
}

func (b *Board) apply(r sizeResult) {
	b.inflight--
	if r.err != nil {
		b.log.Warn("raster load failed", "id", r.id, "handle", r.handle, "error", r.err)
		return
	}
	w0, h0 := float64(r.width), float64(r.height)
	b.scene.ResolveIntrinsic(r.id, w0, h0)
	b.history.Amend(func(o *ImageObject) {
		if o.ID == r.id {
			applyIntrinsic(o, w0, h0)
		}
	})
}

// ProcessPending applies every finished raster decode without blocking.
func (b *Board) ProcessPending() int {
	n := 0
	for {
		select {
		case r := <-b.results:
			b.apply(r)
			n++
		default:
			return n
		}
	}
}

// AwaitPending blocks until every outstanding raster decode has been applied
// or ctx is done.
func (b *Board) AwaitPending(ctx context.Context) error {
	for b.inflight > 0 {
		select {
		case r := <-b.results:
			b.apply(r)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// --- Export ---

// SaveAsPNG writes the marquee region, or the whole surface when no marquee
// is active, to w as a PNG. A successful marquee export clears the marquee;
// on failure nothing is written and the marquee stays. It returns the label
// naming what was exported.
func (b *Board) SaveAsPNG(w io.Writer, c Compositor) (string, error) {
	label, err := Rasterize(w, c, b.marquee)
	if err != nil {
		b.log.Warn("export failed", "error", err)
		return "", err
	}
	if label == LabelSelection {
		b.marquee.Clear()
	}
	b.log.Info("exported", "label", label)
	return label, nil
}

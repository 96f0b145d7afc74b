package pasteboard

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"math"
	"testing"
	"time"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// nearFull reports whether a 16-bit colour channel is saturated, allowing
// for filter rounding.
func nearFull(v uint32) bool {
	return v >= 0xf000
}

// seqIDs returns a generator yielding ids in order, then "id<n>".
func seqIDs(ids ...string) func() string {
	n := 0
	return func() string {
		n++
		if n <= len(ids) {
			return ids[n-1]
		}
		return "id" + string(rune('0'+n))
	}
}

// pngBytes encodes a solid w×h image.
func pngBytes(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

func pngItem(t *testing.T, w, h int) BlobItem {
	t.Helper()
	return BlobItem{Type: "image/png", Data: pngBytes(t, w, h, color.NRGBA{R: 255, A: 255})}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestBoard(t *testing.T, opts Options, ids ...string) *Board {
	t.Helper()
	if opts.NewID == nil {
		opts.NewID = seqIDs(ids...)
	}
	if opts.Logger == nil {
		opts.Logger = quietLogger()
	}
	return NewBoard(opts)
}

// pasteAndWait pastes a w×h PNG and waits for its size to resolve.
func pasteAndWait(t *testing.T, b *Board, w, h int) string {
	t.Helper()
	id, ok := b.Paste(NewPasteEvent(pngItem(t, w, h)))
	if !ok {
		t.Fatal("Paste returned false")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := b.AwaitPending(ctx); err != nil {
		t.Fatalf("AwaitPending: %v", err)
	}
	return id
}

// drag runs a full press, move, release at the given points.
func drag(b *Board, target Target, fromX, fromY, toX, toY float64) {
	b.PointerDown(target, fromX, fromY)
	b.PointerMove(toX, toY)
	b.PointerUp(toX, toY)
}

// checkInvariants verifies the scene and history invariants.
func checkInvariants(t *testing.T, b *Board) {
	t.Helper()
	seen := make(map[string]bool)
	for _, o := range b.Scene().Objects() {
		if o.Width < MinSize || o.Height < MinSize {
			t.Errorf("object %s size = %vx%v, want >= %v", o.ID, o.Width, o.Height, MinSize)
		}
		if o.Rotation < 0 || o.Rotation >= 360 {
			t.Errorf("object %s rotation = %v, want in [0, 360)", o.ID, o.Rotation)
		}
		if seen[o.ID] {
			t.Errorf("duplicate id %s", o.ID)
		}
		seen[o.ID] = true
	}
	h := b.History()
	if h.Len() > 0 && (h.Cursor() < 0 || h.Cursor() > h.Len()-1) {
		t.Errorf("cursor = %d, want in [0, %d]", h.Cursor(), h.Len()-1)
	}
}

package pasteboard

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Export labels, used to name the written files.
const (
	LabelWhiteboard = "whiteboard"
	LabelSelection  = "whiteboard-selection"
)

var (
	// ErrEmptyRegion is returned when the marquee covers no pixels of the
	// surface.
	ErrEmptyRegion = errors.New("pasteboard: export region is empty")

	// ErrNoSurface is returned when there is nothing to rasterize from.
	ErrNoSurface = errors.New("pasteboard: no compositor surface")
)

// Compositor renders the current scene and hands back a rectangle of the
// rendering. Bounds and Capture use viewport coordinates. Captured images
// must have a transparent background where no object is drawn.
type Compositor interface {
	Bounds() image.Rectangle
	Capture(r image.Rectangle) (image.Image, error)
}

// ExportRegion picks the rectangle to rasterize. An active marquee selects
// its own rectangle, clipped to the surface; otherwise the whole surface is
// used. The bool reports whether the marquee was used.
func ExportRegion(bounds image.Rectangle, m Marquee) (image.Rectangle, bool, error) {
	if bounds.Empty() {
		return image.Rectangle{}, false, ErrNoSurface
	}
	if !m.Active {
		return bounds, false, nil
	}
	r := m.Rect().Pixels().Intersect(bounds)
	if r.Empty() {
		return image.Rectangle{}, true, ErrEmptyRegion
	}
	return r, true, nil
}

// Rasterize captures the export region from c and encodes it as a PNG. It
// writes nothing to w unless encoding succeeded.
func Rasterize(w io.Writer, c Compositor, m Marquee) (label string, err error) {
	if c == nil {
		return "", ErrNoSurface
	}
	r, selection, err := ExportRegion(c.Bounds(), m)
	if err != nil {
		return "", err
	}
	img, err := c.Capture(r)
	if err != nil {
		return "", fmt.Errorf("capture %v: %w", r, err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode png: %w", err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return "", fmt.Errorf("write png: %w", err)
	}
	if selection {
		return LabelSelection, nil
	}
	return LabelWhiteboard, nil
}

// ExportFileName returns "<stamp>_<label>.png" for t.
func ExportFileName(label string, t time.Time) string {
	return fmt.Sprintf("%s_%s.png", t.Format("20060102_150405"), sanitizeLabel(label))
}

// WriteExportFile writes encoded PNG data into dir under
// ExportFileName(label, t), creating dir as needed. It returns the path.
func WriteExportFile(dir, label string, t time.Time, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	path := filepath.Join(dir, ExportFileName(label, t))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

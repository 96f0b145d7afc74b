package pasteboard

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"sync"

	"github.com/google/uuid"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// HandlePrefix starts every raster handle minted by a RasterStore.
const HandlePrefix = "blob:pasteboard/"

// ErrUnknownRaster is returned for a handle the store does not hold, either
// because it was never minted or because it has been released.
var ErrUnknownRaster = errors.New("pasteboard: unknown raster handle")

type rasterEntry struct {
	mime string
	data []byte
	img  image.Image // decoded lazily
}

// RasterStore holds the immutable pasted rasters behind opaque handles. It is
// safe for concurrent use; decode goroutines read it while the event loop
// mints and releases.
type RasterStore struct {
	mu      sync.Mutex
	entries map[Handle]*rasterEntry
}

// NewRasterStore creates an empty store.
func NewRasterStore() *RasterStore {
	return &RasterStore{entries: make(map[Handle]*rasterEntry)}
}

// Mint stores data and returns a fresh handle for it. The store keeps data;
// the caller must not modify it afterwards.
func (r *RasterStore) Mint(mime string, data []byte) Handle {
	h := Handle(HandlePrefix + uuid.NewString())
	r.mu.Lock()
	r.entries[h] = &rasterEntry{mime: mime, data: data}
	r.mu.Unlock()
	return h
}

func (r *RasterStore) entry(h Handle) (*rasterEntry, error) {
	e, ok := r.entries[h]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRaster, h)
	}
	return e, nil
}

// DecodeConfig returns the intrinsic pixel size of the raster without
// decoding its pixels.
func (r *RasterStore) DecodeConfig(h Handle) (width, height int, err error) {
	r.mu.Lock()
	e, err := r.entry(h)
	r.mu.Unlock()
	if err != nil {
		return 0, 0, err
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(e.data))
	if err != nil {
		return 0, 0, fmt.Errorf("decode %s config: %w", e.mime, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return 0, 0, fmt.Errorf("decode %s: empty %s image", e.mime, format)
	}
	return cfg.Width, cfg.Height, nil
}

// Image returns the decoded raster. The first call decodes; later calls
// return the cached image.
func (r *RasterStore) Image(h Handle) (image.Image, error) {
	r.mu.Lock()
	e, err := r.entry(h)
	if err != nil {
		r.mu.Unlock()
		return nil, err
	}
	if e.img != nil {
		img := e.img
		r.mu.Unlock()
		return img, nil
	}
	data, mime := e.data, e.mime
	r.mu.Unlock()

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", mime, err)
	}

	r.mu.Lock()
	if e, ok := r.entries[h]; ok && e.img == nil {
		e.img = img
	}
	r.mu.Unlock()
	return img, nil
}

// MIMEType returns the clipboard type the raster was pasted as.
func (r *RasterStore) MIMEType(h Handle) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, err := r.entry(h)
	if err != nil {
		return "", err
	}
	return e.mime, nil
}

// Has reports whether h is live.
func (r *RasterStore) Has(h Handle) bool {
	r.mu.Lock()
	_, ok := r.entries[h]
	r.mu.Unlock()
	return ok
}

// Len returns the number of live rasters.
func (r *RasterStore) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Release drops the raster behind h. Releasing an unknown handle is a no-op.
func (r *RasterStore) Release(h Handle) {
	r.mu.Lock()
	delete(r.entries, h)
	r.mu.Unlock()
}

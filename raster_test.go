package pasteboard

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"strings"
	"sync"
	"testing"

	"golang.org/x/image/bmp"
)

func TestRasterStoreMint(t *testing.T) {
	r := NewRasterStore()
	h1 := r.Mint("image/png", pngBytes(t, 4, 3, color.White))
	h2 := r.Mint("image/png", pngBytes(t, 4, 3, color.White))
	if h1 == h2 {
		t.Fatalf("handles not unique: %s", h1)
	}
	if !strings.HasPrefix(string(h1), HandlePrefix) {
		t.Errorf("handle = %q, want %q prefix", h1, HandlePrefix)
	}
	if r.Len() != 2 {
		t.Errorf("Len = %d, want 2", r.Len())
	}
	if mime, _ := r.MIMEType(h1); mime != "image/png" {
		t.Errorf("MIMEType = %q", mime)
	}
}

func TestRasterStoreDecodeConfig(t *testing.T) {
	var jpg, bm bytes.Buffer
	src := image.NewRGBA(image.Rect(0, 0, 7, 5))
	if err := jpeg.Encode(&jpg, src, nil); err != nil {
		t.Fatal(err)
	}
	if err := bmp.Encode(&bm, src); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		mime string
		data []byte
	}{
		{"png", "image/png", pngBytes(t, 7, 5, color.White)},
		{"jpeg", "image/jpeg", jpg.Bytes()},
		{"bmp", "image/bmp", bm.Bytes()},
	}
	r := NewRasterStore()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := r.Mint(tt.mime, tt.data)
			w, ht, err := r.DecodeConfig(h)
			if err != nil {
				t.Fatalf("DecodeConfig: %v", err)
			}
			if w != 7 || ht != 5 {
				t.Errorf("size = %dx%d, want 7x5", w, ht)
			}
		})
	}
}

func TestRasterStoreDecodeFailure(t *testing.T) {
	r := NewRasterStore()
	h := r.Mint("image/png", []byte("garbage"))
	if _, _, err := r.DecodeConfig(h); err == nil {
		t.Error("DecodeConfig(garbage) = nil error")
	}
	if _, err := r.Image(h); err == nil {
		t.Error("Image(garbage) = nil error")
	}
}

func TestRasterStoreImageCached(t *testing.T) {
	r := NewRasterStore()
	h := r.Mint("image/png", pngBytes(t, 3, 3, color.Black))
	a, err := r.Image(h)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := r.Image(h)
	if a != b {
		t.Error("second Image call decoded again")
	}
}

func TestRasterStoreRelease(t *testing.T) {
	r := NewRasterStore()
	h := r.Mint("image/png", pngBytes(t, 3, 3, color.Black))
	r.Release(h)
	r.Release(h) // no-op
	if r.Has(h) {
		t.Error("Has after Release = true")
	}
	if _, err := r.Image(h); !errors.Is(err, ErrUnknownRaster) {
		t.Errorf("Image after Release = %v, want ErrUnknownRaster", err)
	}
	if _, _, err := r.DecodeConfig(h); !errors.Is(err, ErrUnknownRaster) {
		t.Errorf("DecodeConfig after Release = %v, want ErrUnknownRaster", err)
	}
}

func TestRasterStoreConcurrent(t *testing.T) {
	r := NewRasterStore()
	data := pngBytes(t, 8, 8, color.White)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h := r.Mint("image/png", data)
			if _, _, err := r.DecodeConfig(h); err != nil {
				t.Error(err)
			}
			if _, err := r.Image(h); err != nil {
				t.Error(err)
			}
			r.Release(h)
		}()
	}
	wg.Wait()
	if r.Len() != 0 {
		t.Errorf("Len = %d, want 0", r.Len())
	}
}

package pasteboard

import (
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// SoftwareCompositor renders a scene on the CPU from the rasters in a store.
// It needs no window, so exports work headless and in tests.
type SoftwareCompositor struct {
	Scene   *Scene
	Rasters *RasterStore

	// Size of the visible whiteboard surface.
	Width, Height int

	// Interpolator used to scale and rotate rasters; nil selects bilinear.
	Interpolator draw.Transformer
}

// Bounds implements Compositor.
func (c *SoftwareCompositor) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.Width, c.Height)
}

// Capture implements Compositor. Objects whose raster is missing or cannot
// be decoded are left out, the way a broken image renders as nothing.
func (c *SoftwareCompositor) Capture(r image.Rectangle) (image.Image, error) {
	if c.Scene == nil || c.Rasters == nil {
		return nil, ErrNoSurface
	}
	if r.Empty() {
		return nil, ErrEmptyRegion
	}
	tr := c.Interpolator
	if tr == nil {
		tr = draw.BiLinear
	}

	dst := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	view := Translation(float64(-r.Min.X), float64(-r.Min.Y))
	for _, o := range c.Scene.PaintOrder() {
		src, err := c.Rasters.Image(o.Source.Handle)
		if err != nil {
			continue
		}
		sb := src.Bounds()
		if sb.Empty() {
			continue
		}
		m := view.
			Multiply(ObjectTransform(o)).
			Multiply(Scaling(o.Width/float64(sb.Dx()), o.Height/float64(sb.Dy()))).
			Multiply(Translation(float64(-sb.Min.X), float64(-sb.Min.Y)))
		tr.Transform(dst, toAff3(m), src, sb, draw.Over, nil)
	}
	return dst, nil
}

// toAff3 converts to the row-major layout used by x/image.
func toAff3(m Affine) f64.Aff3 {
	return f64.Aff3{m[0], m[2], m[4], m[1], m[3], m[5]}
}

package shell

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/pasteboard"
)

var (
	frameColor       = color.RGBA{R: 0x1e, G: 0x88, B: 0xe5, A: 0xff}
	knobFill         = color.White
	marqueeColor     = color.RGBA{R: 0x1e, G: 0x88, B: 0xe5, A: 0xff}
	marqueeFill      = color.RGBA{R: 0x1e, G: 0x88, B: 0xe5, A: 0x20}
	placeholderColor = color.RGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff}
)

const marqueeDash = 6.0

// textureCache holds one GPU image per raster handle. Handles that fail to
// decode are remembered and drawn as placeholders.
type textureCache struct {
	rasters *pasteboard.RasterStore
	images  map[pasteboard.Handle]*ebiten.Image
	failed  map[pasteboard.Handle]bool
	pixel   *ebiten.Image
}

func newTextureCache(rasters *pasteboard.RasterStore) *textureCache {
	return &textureCache{
		rasters: rasters,
		images:  make(map[pasteboard.Handle]*ebiten.Image),
		failed:  make(map[pasteboard.Handle]bool),
	}
}

// get returns the texture for h, or nil when it cannot be decoded.
func (c *textureCache) get(h pasteboard.Handle) *ebiten.Image {
	if img, ok := c.images[h]; ok {
		return img
	}
	if c.failed[h] {
		return nil
	}
	src, err := c.rasters.Image(h)
	if err != nil {
		c.failed[h] = true
		return nil
	}
	img := ebiten.NewImageFromImage(src)
	c.images[h] = img
	return img
}

// placeholder returns a 1x1 image tinted for objects without a texture.
func (c *textureCache) placeholder() *ebiten.Image {
	if c.pixel == nil {
		c.pixel = ebiten.NewImage(1, 1)
		c.pixel.Fill(placeholderColor)
	}
	return c.pixel
}

// prune deallocates textures whose rasters were released.
func (c *textureCache) prune() {
	for h, img := range c.images {
		if !c.rasters.Has(h) {
			img.Deallocate()
			delete(c.images, h)
		}
	}
	for h := range c.failed {
		if !c.rasters.Has(h) {
			delete(c.failed, h)
		}
	}
}

// geoM converts an affine transform to an ebiten.GeoM.
func geoM(m pasteboard.Affine) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(0, 1, m[2])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 0, m[1])
	g.SetElement(1, 1, m[3])
	g.SetElement(1, 2, m[5])
	return g
}

// objectGeoM maps a w×h texture onto o's box, rotated about its centre.
func objectGeoM(o pasteboard.ImageObject, w, h int) ebiten.GeoM {
	m := pasteboard.ObjectTransform(o).Multiply(pasteboard.Scaling(o.Width/float64(w), o.Height/float64(h)))
	return geoM(m)
}

// drawObjects paints every object in paint order. Objects without a
// texture are drawn as grey boxes when placeholders is set and skipped
// otherwise.
func (g *Game) drawObjects(dst *ebiten.Image, placeholders bool) {
	for _, o := range g.board.Scene().PaintOrder() {
		img := g.textures.get(o.Source.Handle)
		if img == nil {
			if !placeholders {
				continue
			}
			img = g.textures.placeholder()
		}
		b := img.Bounds()
		var op ebiten.DrawImageOptions
		op.GeoM = objectGeoM(o, b.Dx(), b.Dy())
		op.Filter = ebiten.FilterLinear
		dst.DrawImage(img, &op)
	}
}

// drawSelection outlines o with its frame, four corner knobs and the rotate
// knob on its arm.
func drawSelection(dst *ebiten.Image, o pasteboard.ImageObject) {
	out := pasteboard.FrameOutset
	frame := [4]pasteboard.Vec2{
		{X: -out, Y: -out},
		{X: o.Width + out, Y: -out},
		{X: o.Width + out, Y: o.Height + out},
		{X: -out, Y: o.Height + out},
	}
	var pts [4]pasteboard.Vec2
	for i, p := range frame {
		x, y := pasteboard.LocalToWorld(o, p.X, p.Y)
		pts[i] = pasteboard.Vec2{X: x, Y: y}
	}
	for i := range pts {
		a, b := pts[i], pts[(i+1)%4]
		vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1.5, frameColor, true)
	}

	// Arm from the top edge midpoint to the rotate knob.
	k := pasteboard.RotateKnob(o)
	ax, ay := pasteboard.LocalToWorld(o, o.Width/2, -out)
	kx, ky := pasteboard.LocalToWorld(o, k.X, k.Y)
	vector.StrokeLine(dst, float32(ax), float32(ay), float32(kx), float32(ky), 1.5, frameColor, true)
	drawKnob(dst, kx, ky)

	for _, e := range []pasteboard.Edge{pasteboard.HandleNW, pasteboard.HandleNE, pasteboard.HandleSW, pasteboard.HandleSE} {
		c := pasteboard.HandleCenter(o, e)
		x, y := pasteboard.LocalToWorld(o, c.X, c.Y)
		drawKnob(dst, x, y)
	}
}

func drawKnob(dst *ebiten.Image, x, y float64) {
	r := float32(pasteboard.HandleRadius)
	vector.DrawFilledCircle(dst, float32(x), float32(y), r, knobFill, true)
	vector.StrokeCircle(dst, float32(x), float32(y), r, 1.5, frameColor, true)
}

// drawMarquee paints the marquee as a translucent fill with a dashed border.
func drawMarquee(dst *ebiten.Image, r pasteboard.Rect) {
	if r.Empty() {
		return
	}
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), marqueeFill, false)
	x0, y0 := r.X, r.Y
	x1, y1 := r.X+r.Width, r.Y+r.Height
	dashedLine(dst, x0, y0, x1, y0)
	dashedLine(dst, x1, y0, x1, y1)
	dashedLine(dst, x1, y1, x0, y1)
	dashedLine(dst, x0, y1, x0, y0)
}

// dashedLine strokes an axis-aligned dashed segment.
func dashedLine(dst *ebiten.Image, x0, y0, x1, y1 float64) {
	dx, dy := x1-x0, y1-y0
	length := max(math.Abs(dx), math.Abs(dy))
	if length == 0 {
		return
	}
	ux, uy := dx/length, dy/length
	for d := 0.0; d < length; d += 2 * marqueeDash {
		end := min(d+marqueeDash, length)
		vector.StrokeLine(dst,
			float32(x0+ux*d), float32(y0+uy*d),
			float32(x0+ux*end), float32(y0+uy*end),
			1, marqueeColor, false)
	}
}

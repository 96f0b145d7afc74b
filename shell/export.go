package shell

import (
	"bytes"
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/pasteboard"
)

// SaveAsPNG queues an export to be written at the end of the current
// frame's Draw call. The marquee region is exported when one is active,
// otherwise the whole whiteboard. Safe to call from Update or Draw.
func (g *Game) SaveAsPNG() {
	g.exportsQueued++
}

// flushExports rasterizes and writes every queued export. Called at the end
// of Draw.
func (g *Game) flushExports() {
	if g.exportsQueued == 0 {
		return
	}
	n := g.exportsQueued
	g.exportsQueued = 0
	g.surface.invalidate()
	for i := 0; i < n; i++ {
		var buf bytes.Buffer
		label, err := g.board.SaveAsPNG(&buf, g.surface)
		if err != nil {
			continue
		}
		path, err := pasteboard.WriteExportFile(g.exportDir, label, g.now(), buf.Bytes())
		if err != nil {
			g.log.Error("write export", "error", err)
			continue
		}
		g.lastExport = path
		g.log.Info("export written", "path", path)
	}
}

// surfaceCompositor renders the scene alone, without chrome or background,
// to an offscreen image and reads it back for export.
type surfaceCompositor struct {
	game      *Game
	offscreen *ebiten.Image
	frame     *image.NRGBA
}

// Bounds implements pasteboard.Compositor.
func (c *surfaceCompositor) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.game.width, c.game.height)
}

// Capture implements pasteboard.Compositor.
func (c *surfaceCompositor) Capture(r image.Rectangle) (image.Image, error) {
	if r.Empty() {
		return nil, pasteboard.ErrEmptyRegion
	}
	if c.frame == nil {
		c.render()
	}
	return c.frame.SubImage(r), nil
}

// invalidate drops the frame read back by an earlier export.
func (c *surfaceCompositor) invalidate() {
	c.frame = nil
}

func (c *surfaceCompositor) render() {
	w, h := c.game.width, c.game.height
	if c.offscreen == nil || c.offscreen.Bounds().Dx() != w || c.offscreen.Bounds().Dy() != h {
		if c.offscreen != nil {
			c.offscreen.Deallocate()
		}
		c.offscreen = ebiten.NewImage(w, h)
	}
	c.offscreen.Clear()
	c.game.drawObjects(c.offscreen, false)

	pixels := make([]byte, 4*w*h)
	c.offscreen.ReadPixels(pixels)
	c.frame = unpremultiply(pixels, w, h)
}

// unpremultiply converts premultiplied RGBA bytes to straight-alpha NRGBA.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels) && i+3 < len(img.Pix); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

package shell

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const emptyHintText = "Paste an image to start editing!"

// Debug font cell size in pixels.
const (
	glyphWidth  = 6
	glyphHeight = 16
)

// Pulse parameters for the hint's opacity.
const (
	hintMinAlpha = 0.35
	hintMaxAlpha = 1.0
	hintHalf     = 0.9 // seconds per fade direction
	hintScale    = 2.0
)

// Hint is the pulsing message shown while the board is empty.
type Hint struct {
	text   string
	img    *ebiten.Image
	tween  *gween.Tween
	rising bool
	alpha  float32
}

// NewHint creates a hint showing text.
func NewHint(text string) *Hint {
	h := &Hint{text: text, alpha: hintMaxAlpha}
	h.restart()
	return h
}

// restart begins the next fade from the current alpha toward the opposite
// bound.
func (h *Hint) restart() {
	to := float32(hintMinAlpha)
	if h.rising {
		to = hintMaxAlpha
	}
	h.tween = gween.New(h.alpha, to, hintHalf, ease.InOutSine)
}

// Update advances the pulse by dt seconds. A hidden hint rests at full
// opacity so it reappears fully visible.
func (h *Hint) Update(dt float32, visible bool) {
	if !visible {
		if h.alpha != hintMaxAlpha {
			h.alpha = hintMaxAlpha
			h.rising = false
			h.restart()
		}
		return
	}
	val, done := h.tween.Update(dt)
	h.alpha = val
	if done {
		h.rising = !h.rising
		h.restart()
	}
}

// Alpha returns the current opacity in [hintMinAlpha, hintMaxAlpha].
func (h *Hint) Alpha() float32 { return h.alpha }

// Text returns the message.
func (h *Hint) Text() string { return h.text }

// Draw paints the hint centred on a w×h surface.
func (h *Hint) Draw(dst *ebiten.Image, w, hgt int) {
	if h.img == nil {
		h.img = ebiten.NewImage(len(h.text)*glyphWidth, glyphHeight)
		ebitenutil.DebugPrint(h.img, h.text)
	}
	b := h.img.Bounds()
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(hintScale, hintScale)
	op.GeoM.Translate(
		(float64(w)-float64(b.Dx())*hintScale)/2,
		(float64(hgt)-float64(b.Dy())*hintScale)/2,
	)
	op.ColorScale.Scale(0.3, 0.3, 0.3, 1)
	op.ColorScale.ScaleAlpha(h.alpha)
	dst.DrawImage(h.img, &op)
}

package shell

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/pasteboard"
)

type buttonKind uint8

const (
	buttonDelete buttonKind = iota
	buttonRaise
	buttonLower
	buttonSave
)

func (k buttonKind) String() string {
	switch k {
	case buttonDelete:
		return "Delete"
	case buttonRaise:
		return "Move Up"
	case buttonLower:
		return "Move Down"
	case buttonSave:
		return "Save as PNG"
	default:
		return "?"
	}
}

// Toolbar layout, screen pixels.
const (
	toolbarMargin = 10.0
	buttonWidth   = 96.0
	buttonHeight  = 28.0
	buttonGap     = 8.0
)

var (
	buttonFill   = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xe0}
	buttonBorder = color.RGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xff}
)

type button struct {
	kind buttonKind
	rect pasteboard.Rect
}

// buttons lays out the toolbar for the current selection. The object
// buttons appear only while an object is selected.
func (g *Game) buttons() []button {
	kinds := []buttonKind{buttonSave}
	if _, ok := g.board.Selected(); ok {
		kinds = []buttonKind{buttonDelete, buttonRaise, buttonLower, buttonSave}
	}
	out := make([]button, len(kinds))
	x := toolbarMargin
	for i, k := range kinds {
		out[i] = button{kind: k, rect: pasteboard.Rect{X: x, Y: toolbarMargin, Width: buttonWidth, Height: buttonHeight}}
		x += buttonWidth + buttonGap
	}
	return out
}

// hitButton returns the index of the button under (x, y), or noButton.
func hitButton(buttons []button, x, y float64) int {
	for i, b := range buttons {
		if b.rect.Contains(x, y) {
			return i
		}
	}
	return noButton
}

// activate runs a toolbar command.
func (g *Game) activate(k buttonKind) {
	switch k {
	case buttonDelete:
		g.board.DeleteSelected()
	case buttonRaise:
		g.board.RaiseSelected()
	case buttonLower:
		g.board.LowerSelected()
	case buttonSave:
		g.SaveAsPNG()
	}
}

func drawToolbar(dst *ebiten.Image, buttons []button) {
	for _, b := range buttons {
		r := b.rect
		vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), buttonFill, false)
		vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), 1, buttonBorder, false)
		label := b.kind.String()
		tx := int(r.X + (r.Width-float64(len(label)*glyphWidth))/2)
		ty := int(r.Y + (r.Height-glyphHeight)/2)
		ebitenutil.DebugPrintAt(dst, label, tx, ty)
	}
}

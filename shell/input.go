package shell

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Shortcut is a keyboard command.
type Shortcut uint8

const (
	ShortcutNone  Shortcut = iota
	ShortcutUndo           // Ctrl+Z
	ShortcutRedo           // Ctrl+Y
	ShortcutPaste          // Ctrl+V
)

func (s Shortcut) String() string {
	switch s {
	case ShortcutUndo:
		return "ctrl+z"
	case ShortcutRedo:
		return "ctrl+y"
	case ShortcutPaste:
		return "ctrl+v"
	default:
		return "none"
	}
}

// ParseShortcut accepts "ctrl+z", "ctrl+y", "ctrl+v" and the command names
// "undo", "redo", "paste".
func ParseShortcut(s string) Shortcut {
	switch s {
	case "ctrl+z", "Ctrl+Z", "undo":
		return ShortcutUndo
	case "ctrl+y", "Ctrl+Y", "redo":
		return ShortcutRedo
	case "ctrl+v", "Ctrl+V", "paste":
		return ShortcutPaste
	default:
		return ShortcutNone
	}
}

const noButton = -1

// pointerState tracks the single pointer between ticks.
type pointerState struct {
	down   bool
	lastX  float64
	lastY  float64
	button int // toolbar button captured at press, or noButton
}

// processMouse reads the mouse and feeds the pointer state machine. Leaving
// the window or losing focus mid-press counts as a release.
func (g *Game) processMouse() {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	if g.pointer.down && (!ebiten.IsFocused() || !g.inside(mx, my)) {
		g.pointerLost()
		return
	}
	g.processPointer(x, y, pressed)
}

func (g *Game) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

// processPointer runs the pointer state machine. A press lands on a toolbar
// button or on the board, never both; the owner keeps the pointer until
// release.
func (g *Game) processPointer(x, y float64, pressed bool) {
	ps := &g.pointer
	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.button = hitButton(g.buttons(), x, y)
		if ps.button == noButton {
			g.board.PointerDown(g.board.Pick(x, y), x, y)
		}
	case pressed && ps.down:
		if (x != ps.lastX || y != ps.lastY) && ps.button == noButton {
			g.board.PointerMove(x, y)
		}
	case !pressed && ps.down:
		ps.down = false
		if ps.button != noButton {
			buttons := g.buttons()
			if i := hitButton(buttons, x, y); i == ps.button {
				g.activate(buttons[i].kind)
			}
			ps.button = noButton
		} else {
			g.board.PointerUp(x, y)
		}
	}
	ps.lastX = x
	ps.lastY = y
}

// pointerLost ends a press whose release will never arrive.
func (g *Game) pointerLost() {
	ps := &g.pointer
	if !ps.down {
		return
	}
	ps.down = false
	if ps.button == noButton {
		g.board.PointerCancel()
	}
	ps.button = noButton
	g.log.Debug("pointer lost, treating as release")
}

// processKeys handles the keyboard shortcuts.
func (g *Game) processKeys() {
	if !ebiten.IsKeyPressed(ebiten.KeyControl) && !ebiten.IsKeyPressed(ebiten.KeyMeta) {
		return
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyZ):
		g.handleShortcut(ShortcutUndo)
	case inpututil.IsKeyJustPressed(ebiten.KeyY):
		g.handleShortcut(ShortcutRedo)
	case inpututil.IsKeyJustPressed(ebiten.KeyV):
		g.handleShortcut(ShortcutPaste)
	}
}

func (g *Game) handleShortcut(s Shortcut) {
	switch s {
	case ShortcutUndo:
		g.board.Undo()
	case ShortcutRedo:
		g.board.Redo()
	case ShortcutPaste:
		g.pasteFromClipboard()
	}
}

func (g *Game) pasteFromClipboard() {
	if g.clipboard == nil {
		g.log.Debug("paste ignored: no clipboard")
		return
	}
	ev, err := g.clipboard.Read()
	if err != nil {
		g.log.Warn("read clipboard", "error", err)
		return
	}
	if id, ok := g.board.Paste(ev); ok {
		g.log.Info("pasted image", "id", id)
	}
}

package shell

import "github.com/phanxgames/pasteboard"

type eventKind uint8

const (
	eventPointer eventKind = iota
	eventShortcut
	eventPaste
	eventLost
)

// syntheticEvent is a single injected input event. Pointer events use
// screen coordinates, identical to real mouse input.
type syntheticEvent struct {
	kind     eventKind
	x, y     float64
	pressed  bool
	shortcut Shortcut
	paste    pasteboard.PasteEvent
}

// InjectPress queues a pointer press at the given screen coordinates. The
// event is consumed on the next tick.
func (g *Game) InjectPress(x, y float64) {
	g.injectQueue = append(g.injectQueue, syntheticEvent{kind: eventPointer, x: x, y: y, pressed: true})
}

// InjectMove queues a pointer move with the button held down. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (g *Game) InjectMove(x, y float64) {
	g.injectQueue = append(g.injectQueue, syntheticEvent{kind: eventPointer, x: x, y: y, pressed: true})
}

// InjectRelease queues a pointer release at the given screen coordinates.
func (g *Game) InjectRelease(x, y float64) {
	g.injectQueue = append(g.injectQueue, syntheticEvent{kind: eventPointer, x: x, y: y})
}

// InjectPointerLost queues the loss of the pointer mid-press, as when the
// cursor leaves the window.
func (g *Game) InjectPointerLost() {
	g.injectQueue = append(g.injectQueue, syntheticEvent{kind: eventLost})
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two ticks.
func (g *Game) InjectClick(x, y float64) {
	g.InjectPress(x, y)
	g.InjectRelease(x, y)
}

// InjectDrag queues a full drag: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate ticks, and release at
// (toX, toY). Minimum frames is 2 (press + release).
func (g *Game) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	g.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		g.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	g.InjectRelease(toX, toY)
}

// InjectKey queues a keyboard shortcut.
func (g *Game) InjectKey(s Shortcut) {
	g.injectQueue = append(g.injectQueue, syntheticEvent{kind: eventShortcut, shortcut: s})
}

// InjectPaste queues a paste of ev, bypassing the system clipboard.
func (g *Game) InjectPaste(ev pasteboard.PasteEvent) {
	g.injectQueue = append(g.injectQueue, syntheticEvent{kind: eventPaste, paste: ev})
}

// processInjectedInput pops one event from the inject queue and feeds it
// through the same paths as real input. Returns true if an event was
// consumed (real input is skipped for that tick).
func (g *Game) processInjectedInput() bool {
	if len(g.injectQueue) == 0 {
		return false
	}
	evt := g.injectQueue[0]
	copy(g.injectQueue, g.injectQueue[1:])
	g.injectQueue = g.injectQueue[:len(g.injectQueue)-1]

	switch evt.kind {
	case eventPointer:
		g.processPointer(evt.x, evt.y, evt.pressed)
	case eventLost:
		g.pointerLost()
	case eventShortcut:
		g.handleShortcut(evt.shortcut)
	case eventPaste:
		g.board.Paste(evt.paste)
	}
	return true
}

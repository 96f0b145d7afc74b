package shell

import (
	"image/color"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/pasteboard"
)

// Options configures a Game.
type Options struct {
	// Size of the whiteboard surface in pixels.
	Width, Height int

	// ExportDir receives saved PNGs. Defaults to "exports".
	ExportDir string

	// Clipboard backs Ctrl+V. Nil disables keyboard paste.
	Clipboard ClipboardSource

	// Logger defaults to slog.Default().
	Logger *slog.Logger

	// Now stamps export file names. Defaults to time.Now.
	Now func() time.Time
}

// Game is the Ebitengine front end of a Board. It mirrors the scene onto the
// screen each frame and turns mouse, keyboard and clipboard input into Board
// calls.
type Game struct {
	board     *pasteboard.Board
	width     int
	height    int
	exportDir string
	clipboard ClipboardSource
	log       *slog.Logger
	now       func() time.Time

	// ClearColor fills the screen behind the objects. Exports ignore it.
	ClearColor color.Color

	pointer     pointerState
	injectQueue []syntheticEvent
	runner      *ScriptRunner
	hint        *Hint
	textures    *textureCache

	exportsQueued int
	surface       *surfaceCompositor
	lastExport    string
}

// New creates a Game for b.
func New(b *pasteboard.Board, opts Options) *Game {
	g := &Game{
		board:      b,
		width:      opts.Width,
		height:     opts.Height,
		exportDir:  opts.ExportDir,
		clipboard:  opts.Clipboard,
		log:        opts.Logger,
		now:        opts.Now,
		ClearColor: color.White,
		hint:       NewHint(emptyHintText),
		textures:   newTextureCache(b.Rasters()),
	}
	if g.width <= 0 || g.height <= 0 {
		g.width, g.height = 1280, 800
	}
	if g.exportDir == "" {
		g.exportDir = "exports"
	}
	if g.log == nil {
		g.log = slog.Default()
	}
	if g.now == nil {
		g.now = time.Now
	}
	g.pointer.button = noButton
	g.surface = &surfaceCompositor{game: g}
	return g
}

// Board returns the engine behind the game.
func (g *Game) Board() *pasteboard.Board { return g.board }

// Update advances one tick: scripted steps, input, finished raster decodes
// and the hint animation.
func (g *Game) Update() error {
	dt := float32(1.0 / float64(ebiten.TPS()))

	if g.runner != nil {
		g.runner.step(g)
	}
	if !g.processInjectedInput() {
		g.processMouse()
		g.processKeys()
	}
	g.board.ProcessPending()
	g.hint.Update(dt, g.board.Scene().Len() == 0)
	return nil
}

// Draw paints the scene, the selection chrome, the marquee, the toolbar and
// the empty-board hint, then writes any queued exports.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.ClearColor)
	g.drawObjects(screen, true)
	if id, ok := g.board.Selected(); ok {
		if o, ok := g.board.Scene().Object(id); ok {
			drawSelection(screen, o)
		}
	}
	if m := g.board.Marquee(); m.Active {
		drawMarquee(screen, m.Rect())
	}
	if g.board.Scene().Len() == 0 {
		g.hint.Draw(screen, g.width, g.height)
	}
	drawToolbar(screen, g.buttons())

	g.flushExports()
	g.textures.prune()
}

// Layout reports a fixed surface size; the window scales it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// LastExport returns the path of the most recent export written.
func (g *Game) LastExport() string { return g.lastExport }

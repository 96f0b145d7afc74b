// Package pasteboard is the editing engine of an image whiteboard.
//
// Images pasted from the clipboard become objects on the board. Each object
// can be moved, resized from its corners, rotated about its centre, raised,
// lowered and deleted. Every edit lands in a linear undo history, and the
// board, or a marquee region of it, exports to a PNG with a transparent
// background.
//
// The engine has no window. The [shell] package draws it with [Ebitengine]
// and feeds it input; tests and headless tools drive a [Board] directly:
//
//	b := pasteboard.NewBoard(pasteboard.Options{})
//	id, _ := b.Paste(pasteboard.NewPasteEvent(pasteboard.BlobItem{
//		Type: "image/png", Data: pngBytes,
//	}))
//	_ = b.AwaitPending(ctx)
//
//	b.PointerDown(b.Pick(60, 60), 60, 60)
//	b.PointerMove(160, 110)
//	b.PointerUp(160, 110) // commits the move
//
//	b.Undo()
//
// # Model
//
// A [Scene] is an ordered list of [ImageObject] values plus a depth counter.
// Objects are plain values, so a [Snapshot] is a copy of the list and
// history entries never share state with the live scene. Pixels live once in
// a [RasterStore] behind opaque handles; objects and snapshots only hold the
// handle.
//
// # Gestures
//
// A press is resolved to a [Target] by [Board.Pick]: a handle of the selected
// object, an object body, or the background. The target picks the
// controller that owns the pointer until release:
//
//   - body: [TranslateController]
//   - corner handle: [ResizeController]
//   - rotate handle: [RotateController]
//   - background: [Marquee]
//
// Moves update the scene live. A release that changed something records one
// history entry.
//
// # Export
//
// [Board.SaveAsPNG] asks a [Compositor] for the marquee rectangle, or the
// whole surface, and encodes it. [SoftwareCompositor] renders on the CPU with
// golang.org/x/image/draw; the shell supplies one that reads back the GPU
// surface.
//
// [Ebitengine]: https://ebitengine.org
// [shell]: https://pkg.go.dev/github.com/phanxgames/pasteboard/shell
package pasteboard

package main

import (
	"fmt"

	"golang.design/x/clipboard"

	"github.com/phanxgames/pasteboard"
	"github.com/phanxgames/pasteboard/shell"
)

// systemClipboard reads images from the OS clipboard. The clipboard package
// hands images over PNG-encoded.
type systemClipboard struct{}

// newSystemClipboard initialises the OS clipboard. It returns a nil source
// when no clipboard is available, e.g. on a headless X server.
func newSystemClipboard() (shell.ClipboardSource, error) {
	if err := clipboard.Init(); err != nil {
		return nil, fmt.Errorf("init clipboard: %w", err)
	}
	return systemClipboard{}, nil
}

// Read implements shell.ClipboardSource. A clipboard without an image
// yields an empty event, which the board ignores.
func (systemClipboard) Read() (pasteboard.PasteEvent, error) {
	data := clipboard.Read(clipboard.FmtImage)
	if len(data) == 0 {
		return pasteboard.PasteEvent{}, nil
	}
	return pasteboard.NewPasteEvent(pasteboard.BlobItem{Type: "image/png", Data: data}), nil
}

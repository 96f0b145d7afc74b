package shell

import "github.com/phanxgames/pasteboard"

// ClipboardSource reads the current clipboard contents as a paste event.
type ClipboardSource interface {
	Read() (pasteboard.PasteEvent, error)
}

// ClipboardFunc adapts a function to ClipboardSource.
type ClipboardFunc func() (pasteboard.PasteEvent, error)

// Read implements ClipboardSource.
func (f ClipboardFunc) Read() (pasteboard.PasteEvent, error) { return f() }

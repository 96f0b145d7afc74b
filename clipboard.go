package pasteboard

import "strings"

// ClipboardItem is one entry of a paste event.
type ClipboardItem interface {
	MIMEType() string
	Blob() ([]byte, error)
}

// PasteEvent carries the clipboard items of one paste, in clipboard order.
type PasteEvent struct {
	Items []ClipboardItem
}

// BlobItem is a ClipboardItem over bytes already in memory.
type BlobItem struct {
	Type string
	Data []byte
}

// MIMEType implements ClipboardItem.
func (b BlobItem) MIMEType() string { return b.Type }

// Blob implements ClipboardItem.
func (b BlobItem) Blob() ([]byte, error) { return b.Data, nil }

// NewPasteEvent builds a paste event from items.
func NewPasteEvent(items ...ClipboardItem) PasteEvent {
	return PasteEvent{Items: items}
}

// IsImageType reports whether mime names an image type.
func IsImageType(mime string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(mime)), "image/")
}

// FirstImage returns the first item of ev with an image MIME type.
func (ev PasteEvent) FirstImage() (ClipboardItem, bool) {
	for _, it := range ev.Items {
		if it != nil && IsImageType(it.MIMEType()) {
			return it, true
		}
	}
	return nil, false
}

package reader

import (
	"github.com/taylorskalyo/goreader/epub"
)

// isDocument reports whether a manifest item is a content document.
// Stylesheets, images, fonts and navigation files do not participate
// in text extraction.
func isDocument(item *epub.Item) bool {
	switch item.MediaType {
	case "application/xhtml+xml", "text/html":
		return true
	}
	return false
}

// resolveSpine returns the content documents of a book in reading order:
// spine entries first, in their declared order, then any document the spine
// omits, in manifest order. Every document item appears exactly once.
//
// The container reader resolves each itemref to its manifest item when the
// book is opened; unresolved references come through as nil and are skipped,
// as are non-document resources such as stylesheets and cover images, which
// the spine routinely points at.
func resolveSpine(book *epub.Rootfile) []*epub.Item {
	seen := make(map[string]bool)
	var order []*epub.Item

	for _, ref := range book.Spine.Itemrefs {
		item := ref.Item
		if item == nil || !isDocument(item) || seen[item.ID] {
			continue
		}
		seen[item.ID] = true
		order = append(order, item)
	}

	// Fallback: documents left out of the declared reading order still get
	// rendered, after everything the spine names.
	for i := range book.Manifest.Items {
		item := &book.Manifest.Items[i]
		if isDocument(item) && !seen[item.ID] {
			seen[item.ID] = true
			order = append(order, item)
		}
	}

	return order
}

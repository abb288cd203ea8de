package reader

import (
	"fmt"
	"io"
	"strings"

	"github.com/taylorskalyo/goreader/epub"
)

// EPUBFormat implements Format for EPUB files.
type EPUBFormat struct{}

func init() {
	Register(&EPUBFormat{})
}

func (f *EPUBFormat) Name() string         { return "EPUB" }
func (f *EPUBFormat) Extensions() []string { return []string{".epub"} }

// Convert renders the whole book as plain text: every content document in
// reading order, normalized, with one blank line between documents.
func (f *EPUBFormat) Convert(filename string) (string, error) {
	rc, err := epub.OpenReader(filename)
	if err != nil {
		return "", fmt.Errorf("failed to open epub: %w", err)
	}
	defer rc.Close()

	if len(rc.Rootfiles) == 0 {
		return "", fmt.Errorf("no rootfiles found in epub")
	}

	book := rc.Rootfiles[0]
	var blocks []string

	for _, item := range resolveSpine(book) {
		r, err := item.Open()
		if err != nil {
			return "", fmt.Errorf("failed to open item %q: %w", item.HREF, err)
		}
		data, err := io.ReadAll(r)
		r.Close()
		if err != nil {
			return "", fmt.Errorf("failed to read item %q: %w", item.HREF, err)
		}

		text, err := NormalizeHTML(data)
		if err != nil {
			return "", fmt.Errorf("item %q: %w", item.HREF, err)
		}
		blocks = append(blocks, text)
	}

	return strings.Join(blocks, "\n\n"), nil
}

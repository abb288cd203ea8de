package reader

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// gapMarkerClass marks elements that represent an intentional blank line in
// the source markup. FB2-derived EPUBs in particular emit these between
// scene breaks.
const gapMarkerClass = "empty-line"

// NormalizeHTML parses one content document and returns its plain text with
// intentional blank gaps preserved as single empty lines.
func NormalizeHTML(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to parse document: %w", err)
	}
	return normalizeDocument(doc), nil
}

// normalizeDocument converts a parsed document to clean plain text. Gap
// marker elements are rewritten to a literal newline so that the structural
// signal survives text extraction as a blank line, then blank runs are
// collapsed so that incidental inter-tag whitespace disappears while each
// intentional gap comes out as exactly one empty line.
func normalizeDocument(doc *goquery.Document) string {
	doc.Find("." + gapMarkerClass).SetText("\n")

	raw := strings.Join(textSegments(doc), "\n")
	lines := collapseBlankLines(strings.Split(raw, "\n"))

	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// textSegments walks the document tree and collects the data of every text
// node, in document order. Joining the segments with a newline puts each
// text-bearing node on its own line, so block boundaries become line
// boundaries. No whitespace is stripped here; collapseBlankLines interprets
// the raw lines.
func textSegments(doc *goquery.Document) []string {
	var segments []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			segments = append(segments, n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, root := range doc.Nodes {
		walk(root)
	}
	return segments
}

// collapseBlankLines trims every line and collapses each run of blank lines
// to a single empty line. Blank lines before the first content line are
// dropped entirely. The transform is idempotent.
func collapseBlankLines(lines []string) []string {
	var out []string
	previousBlank := false
	for _, line := range lines {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			if len(out) > 0 && !previousBlank {
				out = append(out, "")
			}
			previousBlank = true
			continue
		}
		out = append(out, stripped)
		previousBlank = false
	}
	return out
}

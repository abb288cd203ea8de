package reader

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
)

const containerXML = `<?xml version="1.0" encoding="UTF-8"?>
<container version="1.0" xmlns="urn:oasis:names:tc:opendocument:xmlns:container">
  <rootfiles>
    <rootfile full-path="content.opf" media-type="application/oebps-package+xml"/>
  </rootfiles>
</container>`

// xhtml wraps a body fragment in a minimal XHTML document.
func xhtml(body string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<html xmlns="http://www.w3.org/1999/xhtml"><body>` + body + `</body></html>`
}

// buildEPUB writes a minimal EPUB archive to dir and returns its path. The
// files map uses archive-internal paths as keys; mimetype and the OCF
// container are added automatically.
func buildEPUB(t *testing.T, dir, name string, opf string, files map[string]string) string {
	t.Helper()

	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)

	write := func(path, content string) {
		fw, err := zw.Create(path)
		if err != nil {
			t.Fatalf("buildEPUB: create %s: %v", path, err)
		}
		if _, err := io.WriteString(fw, content); err != nil {
			t.Fatalf("buildEPUB: write %s: %v", path, err)
		}
	}

	write("mimetype", "application/epub+zip")
	write("META-INF/container.xml", containerXML)
	write("content.opf", opf)
	for path, content := range files {
		write(path, content)
	}

	if err := zw.Close(); err != nil {
		t.Fatalf("buildEPUB: close writer: %v", err)
	}

	fp := filepath.Join(dir, name)
	if err := os.WriteFile(fp, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("buildEPUB: write file: %v", err)
	}
	return fp
}

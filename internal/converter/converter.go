// Package converter orchestrates EPUB to text conversion for single files
// and whole directories.
package converter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/epubtools/epub2txt/internal/reader"
)

// Converter converts EPUB files to UTF-8 text files.
type Converter struct {
	// Progress receives one message per converted file. A nil writer
	// discards progress output.
	Progress io.Writer
}

func (c *Converter) logf(format string, args ...any) {
	if c.Progress != nil {
		fmt.Fprintf(c.Progress, format+"\n", args...)
	}
}

// File converts a single EPUB to a text file at outPath.
func (c *Converter) File(inPath, outPath string) error {
	text, err := reader.Convert(inPath)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write %q: %w", outPath, err)
	}
	c.logf("Converted %q -> %q (full book).", inPath, outPath)
	return nil
}

// Dir converts every EPUB in inDir, writing one .txt file per book into
// outDir. Files are matched by extension case-insensitively and processed in
// sorted filename order. The output directory is created if missing. A
// conversion failure aborts the batch.
func (c *Converter) Dir(inDir, outDir string) error {
	info, err := os.Stat(inDir)
	if err != nil {
		return fmt.Errorf("input directory %q: %w", inDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("input directory %q is not a directory", inDir)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	entries, err := os.ReadDir(inDir)
	if err != nil {
		return fmt.Errorf("failed to read input directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !reader.Supported(filepath.Ext(e.Name())) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	if len(names) == 0 {
		c.logf("No EPUB files found in %q.", inDir)
		return nil
	}

	for _, name := range names {
		stem := strings.TrimSuffix(name, filepath.Ext(name))
		src := filepath.Join(inDir, name)
		dst := filepath.Join(outDir, stem+".txt")
		if err := c.File(src, dst); err != nil {
			return err
		}
	}

	return nil
}

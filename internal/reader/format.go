package reader

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format defines a file format converter that renders a file as plain text.
type Format interface {
	Name() string
	Extensions() []string
	Convert(filename string) (string, error)
}

var registry []Format

// Register adds a format converter to the registry.
func Register(f Format) {
	registry = append(registry, f)
}

// Convert renders a file as plain text using a registered format, matched by
// file extension (case-insensitive).
func Convert(filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, f := range registry {
		for _, e := range f.Extensions() {
			if ext == e {
				return f.Convert(filename)
			}
		}
	}
	return "", fmt.Errorf("unsupported format: %q", ext)
}

// Supported reports whether a registered format handles the given extension.
func Supported(ext string) bool {
	ext = strings.ToLower(ext)
	for _, f := range registry {
		for _, e := range f.Extensions() {
			if ext == e {
				return true
			}
		}
	}
	return false
}

// SupportedFormats returns registered format names with their extensions.
func SupportedFormats() []string {
	var out []string
	for _, f := range registry {
		out = append(out, f.Name()+" ("+strings.Join(f.Extensions(), ", ")+")")
	}
	return out
}

// Package storage writes rendered article payloads to disk.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"wikiscraper/pkg/utils"
)

// FileWriter persists payloads under a single output directory, one
// file per article and format.
type FileWriter struct {
	dir string
}

// NewFileWriter creates the output directory if needed.
func NewFileWriter(dir string) (*FileWriter, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	return &FileWriter{dir: dir}, nil
}

// Write stores one payload. The filename derives from the title, so a
// repeated run on the same article overwrites the previous export.
func (w *FileWriter) Write(payload, stem, extension string) error {
	path := w.Path(stem, extension)

	if err := os.WriteFile(path, []byte(payload), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

// Path returns where the payload for a stem and extension lands.
func (w *FileWriter) Path(stem, extension string) string {
	name := utils.SanitizeFilename(stem) + "_complete" + extension

	return filepath.Join(w.dir, name)
}

package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Temporary artifacts the engine leaves behind mid-download.
var skippedExtensions = []string{".part", ".ytdl"}

// Downloads manages the directory the engine writes output files into. It is
// created on startup if absent.
type Downloads struct {
	path string
}

// NewDownloads initializes the download directory rooted at path.
func NewDownloads(path string) (*Downloads, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("storage: download directory is required")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("storage: resolve download directory: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("storage: ensure download directory: %w", err)
	}
	return &Downloads{path: abs}, nil
}

// Path returns the absolute download directory.
func (d *Downloads) Path() string {
	if d == nil {
		return ""
	}
	return d.path
}

// FindSibling looks for a file that shares the base name of path but carries
// a different extension. Post-processing renames the engine's reported
// output (mp3 extraction replaces the downloaded container), so the recorded
// path can go stale while the real file sits right next to it.
func (d *Downloads) FindSibling(path string) (string, bool) {
	if d == nil || path == "" {
		return "", false
	}
	name := filepath.Base(path)
	base := strings.TrimSuffix(name, filepath.Ext(name))

	entries, err := os.ReadDir(d.path)
	if err != nil {
		return "", false
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		candidate := entry.Name()
		if candidate == name || isTemporary(candidate) {
			continue
		}
		if strings.TrimSuffix(candidate, filepath.Ext(candidate)) == base {
			return filepath.Join(d.path, candidate), true
		}
	}
	return "", false
}

func isTemporary(name string) bool {
	for _, ext := range skippedExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

package fshelper

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bstardust/djicoords/internal/fileinfo"
	"github.com/bstardust/djicoords/internal/logger"
)

// PathSource produces the ordered list of candidate photo paths under a root
type PathSource interface {
	Paths(root string) ([]string, error)
}

// DirSource walks a directory on disk and yields every .jpg file.
// Paths come back in lexical walk order.
type DirSource struct {
	Recursive bool
}

// NewDirSource creates a directory walker
func NewDirSource(recursive bool) *DirSource {
	return &DirSource{Recursive: recursive}
}

// Paths returns the .jpg files under root. Only a missing or unreadable
// root is an error; unreadable entries below it are skipped.
func (d *DirSource) Paths(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("path does not exist: %s", root)
		}
		return nil, fmt.Errorf("error accessing path %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", root)
	}

	fsys := os.DirFS(root)
	var paths []string
	err = WalkDir(fsys, ".", func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if path == "." {
				return err
			}
			logger.Debug("Skipping %s: %v", path, err)
			if entry != nil && entry.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if entry.IsDir() {
			if path != "." && !d.Recursive {
				return fs.SkipDir
			}
			return nil
		}

		if fileinfo.IsJPEGFile(path) {
			paths = append(paths, filepath.Join(root, filepath.FromSlash(path)))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error reading directory %s: %w", root, err)
	}

	logger.Debug("Found %d candidate photos under %s", len(paths), root)
	return paths, nil
}

// StaticSource returns a fixed list of paths regardless of root
type StaticSource []string

// Paths returns the list unchanged
func (s StaticSource) Paths(root string) ([]string, error) {
	return append([]string(nil), s...), nil
}

// WalkDir walks a filesystem and calls the function for each file
func WalkDir(fsys fs.FS, root string, fn func(path string, d fs.DirEntry, err error) error) error {
	return fs.WalkDir(fsys, root, fn)
}

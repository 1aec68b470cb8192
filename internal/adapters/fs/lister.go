// Package fs provides filesystem adapters.
package fs

import (
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/jcdb/internal/core/domain"
	"go.trai.ch/jcdb/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DirectoryLister = (*Lister)(nil)

// Lister lists subdirectories of a directory.
type Lister struct{}

// NewLister creates a new Lister.
func NewLister() *Lister {
	return &Lister{}
}

// List returns the names of the directories directly under root, in directory
// order. Symlinks are followed; dangling ones and regular files are skipped.
func (l *Lister) List(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrListDirectoryFailed.Error()), "root", root)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if isDir(root, entry) {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

func isDir(root string, entry fs.DirEntry) bool {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.IsDir()
	}
	info, err := os.Stat(filepath.Join(root, entry.Name()))
	return err == nil && info.IsDir()
}

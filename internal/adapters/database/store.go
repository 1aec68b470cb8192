// Package database reads and writes JSON compilation databases.
package database

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/jcdb/internal/core/domain"
	"go.trai.ch/jcdb/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	prettyIndent = "    "
	defaultMode  = fs.FileMode(0o644)
)

var _ ports.DatabaseStore = (*Store)(nil)

// Store implements ports.DatabaseStore on the local filesystem.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Load parses the database at path.
func (s *Store) Load(path string) (domain.Database, error) {
	//nolint:gosec // path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDatabaseReadFailed.Error()), "path", path)
	}

	var db domain.Database
	if err := json.Unmarshal(data, &db); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDatabaseParseFailed.Error()), "path", path)
	}
	return db, nil
}

// Write renders db to w.
func (s *Store) Write(w io.Writer, db domain.Database, pretty bool) error {
	data, err := render(db, pretty)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return zerr.Wrap(err, domain.ErrDatabaseWriteFailed.Error())
	}
	return nil
}

// Save atomically replaces the file at path with the rendered database. The
// file is left untouched when its content would not change.
func (s *Store) Save(path string, db domain.Database, pretty bool) (bool, error) {
	data, err := render(db, pretty)
	if err != nil {
		return false, err
	}

	mode := defaultMode
	//nolint:gosec // path is provided by the user
	existing, err := os.ReadFile(path)
	switch {
	case err == nil:
		if bytes.Equal(existing, data) {
			return false, nil
		}
		if info, statErr := os.Stat(path); statErr == nil {
			mode = info.Mode().Perm()
		}
	case !errors.Is(err, fs.ErrNotExist):
		return false, zerr.With(zerr.Wrap(err, domain.ErrDatabaseReadFailed.Error()), "path", path)
	}

	if err := writeAtomic(path, data, mode); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrDatabaseWriteFailed.Error()), "path", path)
	}
	return true, nil
}

func render(db domain.Database, pretty bool) ([]byte, error) {
	if db == nil {
		db = domain.Database{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", prettyIndent)
	}
	if err := enc.Encode(db); err != nil {
		return nil, zerr.Wrap(err, domain.ErrDatabaseWriteFailed.Error())
	}
	return buf.Bytes(), nil
}

// writeAtomic writes through a temporary file in the target directory and
// renames it over path, so readers never see a partial database.
func writeAtomic(path string, data []byte, mode fs.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for compilation database")
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(mode); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

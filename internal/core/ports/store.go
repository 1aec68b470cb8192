package ports

import (
	"io"

	"go.trai.ch/jcdb/internal/core/domain"
)

// DatabaseStore reads and writes JSON compilation databases.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type DatabaseStore interface {
	// Load parses the database at path. A malformed file is an error; nothing is repaired.
	Load(path string) (domain.Database, error)

	// Save replaces the database at path. It reports whether the file content changed;
	// an unchanged database is not rewritten.
	Save(path string, db domain.Database, pretty bool) (bool, error)

	// Write renders the database to w.
	Write(w io.Writer, db domain.Database, pretty bool) error
}

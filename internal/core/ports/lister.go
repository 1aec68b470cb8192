package ports

// DirectoryLister enumerates candidate directories.
//
//go:generate go run go.uber.org/mock/mockgen -source=lister.go -destination=mocks/mock_lister.go -package=mocks
type DirectoryLister interface {
	// List returns the names of the subdirectories of root.
	List(root string) ([]string, error)
}

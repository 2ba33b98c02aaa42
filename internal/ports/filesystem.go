package ports

// FileSystemPort lists directories and canonicalizes locations for the
// inventory walk.
type FileSystemPort interface {
	// ReadDir returns the immediate children of dir as full paths, in the
	// order the underlying listing yields them.
	ReadDir(dir string) ([]string, error)

	// IsDir reports whether path is a directory, following symlinks.
	IsDir(path string) bool

	// Canonical resolves symlinks and removes redundant separators.
	Canonical(path string) (string, error)
}

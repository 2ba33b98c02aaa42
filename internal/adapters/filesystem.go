package adapters

import (
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"appbar/internal/ports"
)

type FileSystemAdapter struct{}

func NewFileSystemAdapter() FileSystemAdapter {
	return FileSystemAdapter{}
}

func (a FileSystemAdapter) ReadDir(dir string) ([]string, error) {
	if dir == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("directory is empty")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read directory").
			WithCause(err)
	}
	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	return paths, nil
}

func (a FileSystemAdapter) IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

func (a FileSystemAdapter) Canonical(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to make path absolute").
			WithCause(err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to resolve symlinks").
			WithCause(err)
	}
	return filepath.Clean(resolved), nil
}

var _ ports.FileSystemPort = FileSystemAdapter{}

package core

import (
	"errors"
	"path/filepath"
	"strings"

	"appbar/internal/types"
)

// testFS is an in-memory directory tree with symlinks. dirs maps canonical
// directory paths to child names in listing order.
type testFS struct {
	dirs  map[string][]string
	links map[string]string
}

func (f testFS) resolve(path string) string {
	path = filepath.Clean(path)
	for range 32 {
		changed := false
		for link, target := range f.links {
			if path == link {
				path = target
				changed = true
				break
			}
			if strings.HasPrefix(path, link+"/") {
				path = target + path[len(link):]
				changed = true
				break
			}
		}
		if !changed {
			break
		}
	}
	return path
}

func (f testFS) ReadDir(dir string) ([]string, error) {
	children, ok := f.dirs[f.resolve(dir)]
	if !ok {
		return nil, errors.New("no such directory: " + dir)
	}
	paths := make([]string, 0, len(children))
	for _, name := range children {
		paths = append(paths, filepath.Join(dir, name))
	}
	return paths, nil
}

func (f testFS) IsDir(path string) bool {
	_, ok := f.dirs[f.resolve(path)]
	return ok
}

func (f testFS) Canonical(path string) (string, error) {
	return f.resolve(path), nil
}

type testMetadata struct {
	meta map[string]types.BundleMetadata
	errs map[string]error
}

func (m testMetadata) ReadMetadata(bundle string) (types.BundleMetadata, bool, error) {
	if err, ok := m.errs[bundle]; ok {
		return types.BundleMetadata{}, false, err
	}
	meta, ok := m.meta[bundle]
	return meta, ok, nil
}

func locations(entries []types.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		out = append(out, entry.Location)
	}
	return out
}

func names(entries []types.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		out = append(out, entry.DisplayName)
	}
	return out
}

package adapters

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"howett.net/plist"

	"appbar/internal/ports"
	"appbar/internal/types"
)

// PlistMetadataAdapter reads Info.plist descriptors (XML or binary) and
// caches them by modification time.
type PlistMetadataAdapter struct {
	mu    sync.Mutex
	cache map[string]plistCacheEntry
}

func NewPlistMetadataAdapter() *PlistMetadataAdapter {
	return &PlistMetadataAdapter{cache: map[string]plistCacheEntry{}}
}

// infoPlist holds the raw descriptor. Keys are read one at a time so a
// value of an unexpected type only drops that key.
type infoPlist map[string]interface{}

func (d infoPlist) str(key string) string {
	value, ok := d[key].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(value)
}

type plistCacheEntry struct {
	modTime time.Time
	meta    types.BundleMetadata
}

// InfoPlistPath returns the descriptor location inside bundle, preferring the
// macOS Contents/ layout over the flat layout.
func InfoPlistPath(bundle string) (string, bool) {
	candidates := []string{
		filepath.Join(bundle, "Contents", "Info.plist"),
		filepath.Join(bundle, "Info.plist"),
	}
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}

func (a *PlistMetadataAdapter) ReadMetadata(bundle string) (types.BundleMetadata, bool, error) {
	path, ok := InfoPlistPath(bundle)
	if !ok {
		return types.BundleMetadata{}, false, nil
	}
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return types.BundleMetadata{}, false, nil
		}
		return types.BundleMetadata{}, false, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to stat Info.plist").
			WithCause(err)
	}
	a.mu.Lock()
	if entry, ok := a.cache[path]; ok && entry.modTime.Equal(info.ModTime()) {
		a.mu.Unlock()
		return entry.meta, true, nil
	}
	a.mu.Unlock()

	content, err := os.ReadFile(path)
	if err != nil {
		return types.BundleMetadata{}, false, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read Info.plist").
			WithCause(err)
	}
	doc := infoPlist{}
	if _, err := plist.Unmarshal(content, &doc); err != nil {
		return types.BundleMetadata{}, false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse Info.plist").
			WithCause(err)
	}
	meta := types.BundleMetadata{
		DisplayName: doc.str("CFBundleDisplayName"),
		Name:        doc.str("CFBundleName"),
		Identifier:  doc.str("CFBundleIdentifier"),
		Version:     doc.str("CFBundleShortVersionString"),
		IconFile:    doc.str("CFBundleIconFile"),
	}

	a.mu.Lock()
	a.cache[path] = plistCacheEntry{modTime: info.ModTime(), meta: meta}
	a.mu.Unlock()
	return meta, true, nil
}

var _ ports.BundleMetadataPort = (*PlistMetadataAdapter)(nil)

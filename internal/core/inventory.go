package core

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"appbar/internal/ports"
	"appbar/internal/shared"
	"appbar/internal/types"
)

// InventoryBuilder walks root directories and collects application bundles.
type InventoryBuilder struct {
	FileSystem ports.FileSystemPort
	Resolver   BundleResolver
}

func NewInventoryBuilder(fs ports.FileSystemPort, resolver BundleResolver) InventoryBuilder {
	return InventoryBuilder{FileSystem: fs, Resolver: resolver}
}

// Load lists every root in order and returns the deduplicated inventory.
// Missing or unreadable directories contribute nothing. A canceled context
// stops the walk and returns what was found so far.
func (b InventoryBuilder) Load(ctx context.Context, roots []string, recursive bool) types.Inventory {
	w := &inventoryWalk{
		fs:        b.FileSystem,
		resolver:  b.Resolver,
		recursive: recursive,
		visited:   map[string]struct{}{},
	}
	for _, root := range roots {
		root = shared.ExpandHome(root)
		if root == "" {
			continue
		}
		if ctx.Err() != nil {
			log.Debug().Err(ctx.Err()).Msg("inventory walk interrupted")
			break
		}
		w.walk(ctx, root)
	}
	entries := Dedupe(w.found)
	log.Debug().
		Int("found", len(w.found)).
		Int("unique", len(entries)).
		Int("directories", len(w.visited)).
		Msg("inventory walk finished")
	return types.Inventory{Entries: entries}
}

type inventoryWalk struct {
	fs        ports.FileSystemPort
	resolver  BundleResolver
	recursive bool
	visited   map[string]struct{}
	found     []types.Entry
}

func (w *inventoryWalk) walk(ctx context.Context, dir string) {
	key := w.directoryKey(dir)
	if _, ok := w.visited[key]; ok {
		log.Debug().Str("dir", dir).Str("canonical", key).Msg("directory already visited, skipping")
		return
	}
	w.visited[key] = struct{}{}

	children, err := w.fs.ReadDir(dir)
	if err != nil {
		log.Debug().Err(err).Str("dir", dir).Msg("skipping unreadable directory")
		return
	}
	for _, child := range children {
		if ctx.Err() != nil {
			return
		}
		if w.resolver.IsBundle(child) {
			entry, err := w.resolver.Resolve(ctx, child)
			if err != nil {
				log.Debug().Err(err).Str("bundle", child).Msg("skipping unresolvable bundle")
				continue
			}
			w.found = append(w.found, entry)
			continue
		}
		if w.recursive && w.fs.IsDir(child) {
			w.walk(ctx, child)
		}
	}
}

func (w *inventoryWalk) directoryKey(dir string) string {
	if canonical, err := w.fs.Canonical(dir); err == nil && canonical != "" {
		return canonical
	}
	return filepath.Clean(strings.TrimSpace(dir))
}

// Dedupe keeps the first entry for every location, preserving order.
func Dedupe(entries []types.Entry) []types.Entry {
	seen := make(map[string]struct{}, len(entries))
	unique := make([]types.Entry, 0, len(entries))
	for _, entry := range entries {
		if _, ok := seen[entry.Location]; ok {
			continue
		}
		seen[entry.Location] = struct{}{}
		unique = append(unique, entry)
	}
	return unique
}

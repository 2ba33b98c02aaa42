package core

import (
	"context"
	"path/filepath"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"appbar/internal/ports"
	"appbar/internal/shared"
	"appbar/internal/types"
)

// BundleResolver turns a bundle location into an Entry.
type BundleResolver struct {
	FileSystem ports.FileSystemPort
	Metadata   ports.BundleMetadataPort
	Extension  string
}

func NewBundleResolver(fs ports.FileSystemPort, metadata ports.BundleMetadataPort, extension string) BundleResolver {
	return BundleResolver{
		FileSystem: fs,
		Metadata:   metadata,
		Extension:  extension,
	}
}

func (r BundleResolver) extension() string {
	if ext := shared.NormalizeExtension(r.Extension); ext != "" {
		return ext
	}
	return types.DefaultBundleExtension
}

// IsBundle reports whether the final path segment carries the bundle
// extension and has a non-empty stem.
func (r BundleResolver) IsBundle(path string) bool {
	return hasBundleExtension(segment(path), r.extension())
}

func (r BundleResolver) Resolve(ctx context.Context, path string) (types.Entry, error) {
	if r.FileSystem == nil {
		return types.Entry{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("bundle resolver requires a filesystem port")
	}
	if !r.IsBundle(path) {
		return types.Entry{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("not an application bundle: " + path)
	}
	ext := r.extension()
	location := r.canonical(path)
	assert.NotEmpty(ctx, location, "resolved bundle location must be set")

	name := segment(location)
	if !hasBundleExtension(name, ext) {
		name = segment(path)
	}
	fileName := strings.TrimSuffix(name, ext)

	entry := types.Entry{
		Location:    location,
		DisplayName: fileName,
		FileName:    fileName,
	}
	if r.Metadata == nil {
		return entry, nil
	}
	meta, ok, err := r.Metadata.ReadMetadata(location)
	if err != nil {
		log.Debug().Err(err).Str("bundle", location).Msg("bundle metadata unreadable, using file name")
		return entry, nil
	}
	if ok {
		entry.DisplayName = displayName(meta, fileName)
	}
	return entry, nil
}

func (r BundleResolver) canonical(path string) string {
	canonical, err := r.FileSystem.Canonical(path)
	if err == nil && canonical != "" {
		return canonical
	}
	log.Debug().Err(err).Str("path", path).Msg("canonicalization failed, using cleaned path")
	if abs, absErr := filepath.Abs(path); absErr == nil {
		return abs
	}
	return filepath.Clean(path)
}

func displayName(meta types.BundleMetadata, fallback string) string {
	if name := strings.TrimSpace(meta.DisplayName); name != "" {
		return name
	}
	if name := strings.TrimSpace(meta.Name); name != "" {
		return name
	}
	return fallback
}

func segment(path string) string {
	trimmed := strings.TrimRight(path, string(filepath.Separator)+"/")
	if trimmed == "" {
		return ""
	}
	return filepath.Base(trimmed)
}

func hasBundleExtension(name string, ext string) bool {
	return len(name) > len(ext) && strings.HasSuffix(name, ext)
}

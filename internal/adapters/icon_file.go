package adapters

import (
	"context"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/gabriel-vasile/mimetype"

	"appbar/internal/ports"
	"appbar/internal/types"
)

const defaultIconExtension = ".icns"

// IconFileAdapter loads the icon named by CFBundleIconFile from the bundle's
// Contents/Resources directory.
type IconFileAdapter struct {
	Metadata ports.BundleMetadataPort
}

func NewIconFileAdapter(metadata ports.BundleMetadataPort) IconFileAdapter {
	return IconFileAdapter{Metadata: metadata}
}

func (a IconFileAdapter) LoadIcon(ctx context.Context, entry types.Entry) (types.IconData, error) {
	if err := ctx.Err(); err != nil {
		return types.IconData{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("icon load canceled").
			WithCause(err)
	}
	meta, ok, err := a.Metadata.ReadMetadata(entry.Location)
	if err != nil {
		return types.IconData{}, err
	}
	if !ok || meta.IconFile == "" {
		return types.IconData{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("bundle declares no icon file")
	}
	name := meta.IconFile
	if filepath.Ext(name) == "" {
		name += defaultIconExtension
	}
	path := filepath.Join(entry.Location, "Contents", "Resources", filepath.Base(name))
	data, err := os.ReadFile(path)
	if err != nil {
		return types.IconData{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read icon file").
			WithCause(err)
	}
	return types.IconData{
		Location: entry.Location,
		MIME:     mimetype.Detect(data).String(),
		Data:     data,
	}, nil
}

var _ ports.IconPort = IconFileAdapter{}

package ports

import "appbar/internal/types"

// BundleMetadataPort reads the descriptor of an application bundle.
// Returns (meta, true, nil) on hit, (zero, false, nil) when the bundle has
// no descriptor, or (zero, false, err) when it cannot be read.
type BundleMetadataPort interface {
	ReadMetadata(bundle string) (types.BundleMetadata, bool, error)
}

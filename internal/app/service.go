package app

import (
	"runtime"

	"appbar/internal/adapters"
	"appbar/internal/core"
	"appbar/internal/ports"
	"appbar/internal/types"
)

type Service struct {
	FileSystem ports.FileSystemPort
	Metadata   ports.BundleMetadataPort
	Opener     ports.OpenerPort
	Icons      ports.IconPort
	Writer     ports.InventoryWriterPort
	Extension  string
}

func NewService() Service {
	metadata := adapters.NewPlistMetadataAdapter()
	return Service{
		FileSystem: adapters.NewFileSystemAdapter(),
		Metadata:   metadata,
		Opener:     adapters.NewPlatformOpener(runtime.GOOS),
		Icons:      adapters.NewIconFileAdapter(metadata),
		Writer:     adapters.NewInventoryFileWriter(),
		Extension:  types.DefaultBundleExtension,
	}
}

func (s Service) Builder() core.InventoryBuilder {
	resolver := core.NewBundleResolver(s.FileSystem, s.Metadata, s.Extension)
	return core.NewInventoryBuilder(s.FileSystem, resolver)
}

// NewSession returns an empty session bound to the service's ports.
func (s Service) NewSession() *Session {
	return newSession(s.Builder(), s.Opener)
}

func (s Service) IconLoader(workers int) IconLoader {
	return NewIconLoader(s.Icons, workers)
}

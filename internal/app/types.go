package app

import "appbar/internal/types"

type LoadRequest struct {
	Roots     []string
	Recursive bool
}

type LoadResult struct {
	Inventory types.Inventory
	// Installed is false when a newer load was issued before this one
	// finished; the inventory was discarded.
	Installed bool
}

type LoadOutcome struct {
	Result LoadResult
	Err    error
}

type ExportRequest struct {
	Path   string
	Format types.ExportFormat
}

type IconResult struct {
	Location string
	Icon     types.IconData
	Err      error
}

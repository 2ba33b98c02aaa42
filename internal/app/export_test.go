package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"appbar/internal/adapters"
	"appbar/internal/types"
)

func TestServiceExportWritesInventory(t *testing.T) {
	dir := t.TempDir()
	service := Service{Writer: adapters.NewInventoryFileWriter()}
	inv := types.Inventory{Generation: 3, Entries: []types.Entry{
		{Location: "/Applications/Notes.app", DisplayName: "Notes", FileName: "Notes"},
	}}

	path := filepath.Join(dir, "out", "inventory.yaml")
	require.NoError(t, service.Export(ExportRequest{Path: path, Format: types.ExportFormatYAML}, inv))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "display_name: Notes")
	assert.Contains(t, string(data), "generation: 3")
}

func TestServiceExportRequiresPath(t *testing.T) {
	service := Service{Writer: adapters.NewInventoryFileWriter()}
	err := service.Export(ExportRequest{Path: "  "}, types.Inventory{})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

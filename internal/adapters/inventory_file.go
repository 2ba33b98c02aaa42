package adapters

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"appbar/internal/ports"
	"appbar/internal/types"
)

type InventoryFileWriter struct{}

func NewInventoryFileWriter() InventoryFileWriter {
	return InventoryFileWriter{}
}

func (w InventoryFileWriter) WriteInventory(path string, format types.ExportFormat, inventory types.Inventory) error {
	if path == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output path is required")
	}
	if inventory.Entries == nil {
		inventory.Entries = []types.Entry{}
	}
	var (
		data []byte
		err  error
	)
	switch format {
	case types.ExportFormatYAML, "":
		data, err = yaml.Marshal(inventory)
	case types.ExportFormatJSON:
		data, err = json.MarshalIndent(inventory, "", "  ")
	default:
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unsupported export format: " + string(format))
	}
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode inventory").
			WithCause(err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output directory").
			WithCause(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write inventory").
			WithCause(err)
	}
	return nil
}

var _ ports.InventoryWriterPort = InventoryFileWriter{}

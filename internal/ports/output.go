package ports

import "appbar/internal/types"

type InventoryWriterPort interface {
	WriteInventory(path string, format types.ExportFormat, inventory types.Inventory) error
}

package core

import (
	"strings"

	"golang.org/x/text/cases"

	"appbar/internal/types"
)

// Query returns the entries whose display name or file name contains text,
// ignoring case. Empty text returns every entry. Order follows the inventory.
func Query(inventory types.Inventory, text string) []types.Entry {
	if text == "" {
		return append(make([]types.Entry, 0, len(inventory.Entries)), inventory.Entries...)
	}
	fold := cases.Fold()
	needle := fold.String(text)
	matches := make([]types.Entry, 0)
	for _, entry := range inventory.Entries {
		if strings.Contains(fold.String(entry.DisplayName), needle) ||
			strings.Contains(fold.String(entry.FileName), needle) {
			matches = append(matches, entry)
		}
	}
	return matches
}

package types

// Inventory is the ordered, deduplicated result of a single load. It is
// never patched in place; a refresh produces a new value.
type Inventory struct {
	Generation uint64  `json:"generation" yaml:"generation"`
	Entries    []Entry `json:"entries" yaml:"entries"`
}

func (i Inventory) Len() int {
	return len(i.Entries)
}

func (i Inventory) Lookup(location string) (Entry, bool) {
	for _, entry := range i.Entries {
		if entry.Location == location {
			return entry, true
		}
	}
	return Entry{}, false
}

func (i Inventory) Contains(location string) bool {
	_, ok := i.Lookup(location)
	return ok
}

package types

// Entry is one discovered application bundle. Two entries are the same
// application iff their Location values are equal.
type Entry struct {
	Location    string `json:"location" yaml:"location"`
	DisplayName string `json:"display_name" yaml:"display_name"`
	FileName    string `json:"file_name" yaml:"file_name"`
}

type BundleMetadata struct {
	DisplayName string
	Name        string
	Identifier  string
	Version     string
	IconFile    string
}

type IconData struct {
	Location string
	MIME     string
	Data     []byte
}

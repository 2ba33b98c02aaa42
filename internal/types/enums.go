package types

type SessionState string

const (
	SessionStateEmpty  SessionState = "empty"
	SessionStateLoaded SessionState = "loaded"
)

type ExportFormat string

const (
	ExportFormatYAML ExportFormat = "yaml"
	ExportFormatJSON ExportFormat = "json"
)

// DefaultBundleExtension is the reserved suffix of macOS application bundles.
const DefaultBundleExtension = ".app"

package shared

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name     string
		value    string
		expected string
	}{
		{name: "bare tilde", value: "~", expected: home},
		{name: "tilde prefix", value: "~/Applications", expected: filepath.Join(home, "Applications")},
		{name: "absolute path untouched", value: "/Applications", expected: "/Applications"},
		{name: "tilde user form untouched", value: "~other/Applications", expected: "~other/Applications"},
		{name: "whitespace trimmed", value: "  /Applications ", expected: "/Applications"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExpandHome(tt.value))
		})
	}
}

func TestNormalizeExtension(t *testing.T) {
	assert.Equal(t, ".app", NormalizeExtension("app"))
	assert.Equal(t, ".app", NormalizeExtension(".app"))
	assert.Equal(t, "", NormalizeExtension("  "))
}

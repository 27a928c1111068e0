package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaletteColorFallback(t *testing.T) {
	p := DefaultPalette()
	assert.Equal(t, "#FF6B6B", p.Color("Household"))
	assert.Equal(t, "#CCCCCC", p.Color("Unknown Category"))
	assert.Equal(t, "#CCCCCC", p.Color(""))
}

func TestLoadPalette_MissingFileUsesDefaults(t *testing.T) {
	p, err := LoadPalette(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultPalette(), p)
}

func TestLoadPalette_EmptyPathUsesDefaults(t *testing.T) {
	p, err := LoadPalette("")
	require.NoError(t, err)
	assert.Equal(t, "#4ECDC4", p.Color("Work"))
}

func TestLoadPalette_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colors.yaml")
	body := "categories:\n  Sport: \"#112233\"\nfallback: \"#000000\"\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	p, err := LoadPalette(path)
	require.NoError(t, err)
	assert.Equal(t, "#112233", p.Color("Sport"))
	assert.Equal(t, "#000000", p.Color("Household"))
}

func TestLoadPalette_PartialFileNormalized(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colors.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fallback: \"#999999\"\n"), 0o600))

	p, err := LoadPalette(path)
	require.NoError(t, err)
	assert.Equal(t, "#999999", p.Color("nothing"))
	assert.Equal(t, "#45B7D1", p.Color("School"), "default categories kept")
}

func TestLoadPalette_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colors.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\t:::"), 0o600))

	_, err := LoadPalette(path)
	assert.Error(t, err)
}

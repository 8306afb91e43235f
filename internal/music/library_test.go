package music

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupIsCaseInsensitive(t *testing.T) {
	lib := New(map[string]string{"Skyfall": "https://example.com/skyfall"})

	url, ok := lib.Lookup("  SKYFALL ")
	require.True(t, ok)
	assert.Equal(t, "https://example.com/skyfall", url)

	_, ok = lib.Lookup("unknown")
	assert.False(t, ok)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "music.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Wavy": "https://example.com/wavy"}`), 0o644))

	lib, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, lib.Len())

	url, ok := lib.Lookup("wavy")
	require.True(t, ok)
	assert.Equal(t, "https://example.com/wavy", url)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`not json`), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestDefaultLibraryHasSongs(t *testing.T) {
	lib := Default()
	assert.Greater(t, lib.Len(), 0)

	_, ok := lib.Lookup("skyfall")
	assert.True(t, ok)
}

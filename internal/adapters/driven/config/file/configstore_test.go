package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set(KeyCatalogPath, "./catalog.json"))

	assert.Equal(t, "./catalog.json", store.GetString(KeyCatalogPath))

	val, ok := store.Get(KeyCatalogPath)
	require.True(t, ok)
	assert.Equal(t, "./catalog.json", val)
}

func TestConfigStore_GetMissingKey(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	_, ok := store.Get("nope")
	assert.False(t, ok)
	assert.Empty(t, store.GetString("nope"))
	assert.Zero(t, store.GetInt("nope"))
	assert.False(t, store.GetBool("nope"))
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("limit", 25))
	require.NoError(t, store.Set("verbose", true))

	assert.Equal(t, 25, store.GetInt("limit"))
	assert.True(t, store.GetBool("verbose"))
	// Wrong-type reads degrade to zero values.
	assert.Empty(t, store.GetString("limit"))
	assert.Zero(t, store.GetInt("verbose"))
}

func TestConfigStore_PersistsAcrossInstances(t *testing.T) {
	tmpDir := t.TempDir()

	first, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, first.Set(KeyDisplayMode, "oneline"))

	second, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "oneline", second.GetString(KeyDisplayMode))
}

func TestConfigStore_LoadFlattensNestedTables(t *testing.T) {
	tmpDir := t.TempDir()
	content := "[catalog]\npath = \"./dump.db\"\nformat = \"sqlite\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "./dump.db", store.GetString(KeyCatalogPath))
	assert.Equal(t, "sqlite", store.GetString(KeyCatalogFormat))
}

func TestConfigStore_LoadIgnoresMissingFile(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.Load())
}

func TestConfigStore_LoadRejectsInvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("not = = toml"), 0600))

	_, err := NewConfigStore(tmpDir)

	assert.Error(t, err)
}

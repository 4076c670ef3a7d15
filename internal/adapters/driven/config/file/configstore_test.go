package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")

	store, err := NewConfigStore(dir)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set(KeyAPIBaseURL, "https://api.example.com"))
	require.NoError(t, store.Set(KeyAPITimeout, 15))

	assert.Equal(t, "https://api.example.com", store.GetString(KeyAPIBaseURL))
	assert.Equal(t, 15, store.GetInt(KeyAPITimeout))
}

func TestConfigStore_MissingKeys(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "", store.GetString("missing"))
	assert.Equal(t, 0, store.GetInt("missing"))
}

func TestConfigStore_WrongTypes(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("key", 42))
	require.NoError(t, store.Set("name", "gate"))

	assert.Equal(t, "", store.GetString("key"))
	assert.Equal(t, 0, store.GetInt("name"))
}

func TestConfigStore_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	first, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.Set(KeyAPIBaseURL, "https://api.example.com"))
	require.NoError(t, first.Set(KeyAPITimeout, 20))

	second, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com", second.GetString(KeyAPIBaseURL))
	assert.Equal(t, 20, second.GetInt(KeyAPITimeout))
}

func TestConfigStore_LoadsNestedTables(t *testing.T) {
	dir := t.TempDir()
	content := `
[api]
base_url = "https://api.example.com"
timeout_seconds = 10

[network]
probe_address = "api.example.com:443"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com", store.GetString(KeyAPIBaseURL))
	assert.Equal(t, 10, store.GetInt(KeyAPITimeout))
	assert.Equal(t, "api.example.com:443", store.GetString(KeyProbeAddress))
}

func TestConfigStore_WatchReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set(KeyAPIBaseURL, "https://old.example.com"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := store.Watch(ctx)
	require.NoError(t, err)

	// Simulate an external edit.
	content := `
[api]
base_url = "https://new.example.com"
`
	require.NoError(t, os.WriteFile(store.Path(), []byte(content), 0600))

	select {
	case <-changes:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for config reload")
	}

	assert.Equal(t, "https://new.example.com", store.GetString(KeyAPIBaseURL))
}

func TestConfigStore_WatchStopsOnCancel(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	changes, err := store.Watch(ctx)
	require.NoError(t, err)

	cancel()

	select {
	case _, open := <-changes:
		assert.False(t, open, "channel should be closed after cancel")
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for watcher shutdown")
	}
}

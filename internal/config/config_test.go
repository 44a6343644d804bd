package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, 60, cfg.Catalog.Size)
	assert.Equal(t, uint64(0), cfg.Catalog.Seed)
	assert.Equal(t, 200*time.Millisecond, cfg.Latency.Lookup)
	assert.Equal(t, 300*time.Millisecond, cfg.Latency.Search)
	assert.Equal(t, 300*time.Millisecond, cfg.Latency.Reviews)
	assert.Equal(t, "8082", cfg.HTTP.ListingsPort)
	assert.Equal(t, "http://localhost:8082", cfg.Upstream.ListingsURL)
}

func TestLoad_Env(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CATALOG_SIZE", "12")
	t.Setenv("CATALOG_SEED", "42")
	t.Setenv("LATENCY_SEARCH", "5ms")
	t.Setenv("LATENCY_DISABLED", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Catalog.Size)
	assert.Equal(t, uint64(42), cfg.Catalog.Seed)
	assert.Equal(t, 5*time.Millisecond, cfg.Latency.Search)

	lookup, search, reviews := cfg.Latency.Effective()
	assert.Zero(t, lookup)
	assert.Zero(t, search)
	assert.Zero(t, reviews)
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CATALOG_SIZE=7\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("CATALOG_SIZE") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Catalog.Size)
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("catalog:\n  size: 25\nlatency:\n  lookup: 1ms\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Catalog.Size)
	assert.Equal(t, time.Millisecond, cfg.Latency.Lookup)
}

func TestValidate(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CATALOG_SIZE", "-1")
	t.Setenv("JWT_SECRET", "short")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog size")
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

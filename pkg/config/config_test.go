package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// t.Setenv registers the restore; the vars must be absent for the
	// defaults to apply.
	t.Setenv("TANKOBON_API_URL", "")
	t.Setenv("TANKOBON_DATA_DIR", "")
	os.Unsetenv("TANKOBON_API_URL")
	os.Unsetenv("TANKOBON_DATA_DIR")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.APIURL)
	assert.NotEmpty(t, cfg.DataDir)
	assert.Equal(t, filepath.Join(cfg.DataDir, "tankobon.db"), cfg.DatabasePath())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TANKOBON_API_URL", "https://loja.example.com")
	t.Setenv("TANKOBON_DATA_DIR", "/tmp/tankobon-test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://loja.example.com", cfg.APIURL)
	assert.Equal(t, "/tmp/tankobon-test", cfg.DataDir)
	assert.Equal(t, "/tmp/tankobon-test/tankobon.db", cfg.DatabasePath())
}

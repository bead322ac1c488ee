package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 1880, cfg.Web.Port)
	assert.Equal(t, "http://127.0.0.1:8080", cfg.Backend.BaseURL)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	cfile := filepath.Join(dir, "backoffice.yml")
	content := []byte(`
web:
  port: 9090
backend:
  base_url: https://api.example.net
  upload_limit: 2MB
logger:
  mode: production
`)
	require.NoError(t, os.WriteFile(cfile, content, 0o600))

	t.Setenv("BACKOFFICE_BACKEND_TOKEN", "secret")
	t.Setenv("BACKOFFICE_WEB_PORT", "9191")

	cfg, err := LoadConfig(cfile)
	require.NoError(t, err)
	assert.Equal(t, 9191, cfg.Web.Port)
	assert.Equal(t, "https://api.example.net", cfg.Backend.BaseURL)
	assert.Equal(t, "secret", cfg.Backend.Token)
	assert.Equal(t, "production", cfg.Logger.Mode)
	// untouched keys keep defaults
	assert.Equal(t, "0.0.0.0", cfg.Web.Host)

	t.Setenv("BACKOFFICE_WEB_PORT", "010")
	t.Setenv("BACKOFFICE_BACKEND_TIMEOUT", "0x10")
	cfg, err = LoadConfig(cfile)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Web.Port)
	assert.Equal(t, DefaultAppConfig().Backend.Timeout, cfg.Backend.Timeout)

	limit, err := cfg.UploadLimitBytes()
	require.NoError(t, err)
	// 2MB in either SI or IEC units
	assert.GreaterOrEqual(t, limit, int64(2000000))
	assert.LessOrEqual(t, limit, int64(2*1024*1024))
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.Backend.BaseURL = ""
	assert.Error(t, cfg.Validate())

	cfg = DefaultAppConfig()
	cfg.Backend.BaseURL = "ftp://files"
	assert.Error(t, cfg.Validate())

	cfg = DefaultAppConfig()
	cfg.Web.Port = 70000
	assert.Error(t, cfg.Validate())

	cfg = DefaultAppConfig()
	cfg.Backend.UploadLimit = "lots"
	assert.Error(t, cfg.Validate())
}

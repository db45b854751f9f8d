package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.Equal(t, 60*time.Second, cfg.RequestTimeout.Std())
	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.True(t, cfg.LLM.ValidateKey)
}

func TestLoadConfig_File(t *testing.T) {
	path := writeConfig(t, `
server_addr = ":9090"
request_timeout = "90s"
session_ttl = "1h"

[llm]
provider = "deepseek"
model = "deepseek-chat"
base_url = "https://api.deepseek.com/v1/"
validate_key = false
`)

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.ServerAddr)
	assert.Equal(t, 90*time.Second, cfg.RequestTimeout.Std())
	assert.Equal(t, time.Hour, cfg.SessionTTL.Std())
	assert.Equal(t, "deepseek", cfg.LLM.Provider)
	assert.Equal(t, "deepseek-chat", cfg.LLM.Model)
	assert.Equal(t, "https://api.deepseek.com/v1/", cfg.LLM.BaseURL)
	assert.False(t, cfg.LLM.ValidateKey)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
[llm]
model = "gemini-1.5-flash"
`)

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, "gemini-1.5-flash", cfg.LLM.Model)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `server_addr = ":9090"`)
	t.Setenv("UPCYCLE_SERVER_ADDR", ":7070")
	t.Setenv("UPCYCLE_LLM_MODEL", "gemini-2.5-flash")
	t.Setenv("UPCYCLE_SESSION_TTL", "5m")

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.ServerAddr)
	assert.Equal(t, "gemini-2.5-flash", cfg.LLM.Model)
	assert.Equal(t, 5*time.Minute, cfg.SessionTTL.Std())
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadConfig_BadDuration(t *testing.T) {
	path := writeConfig(t, `request_timeout = "soon"`)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.LLM.Provider = "claude"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.ServerAddr = ""
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.RequestTimeout = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.LLM.Provider = "mock"
	assert.NoError(t, cfg.Validate())
}

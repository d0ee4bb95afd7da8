package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func unsetEnv(t *testing.T, key string) {
	t.Helper()
	if old, ok := os.LookupEnv(key); ok {
		t.Cleanup(func() { _ = os.Setenv(key, old) })
	}
	_ = os.Unsetenv(key)
}

func TestLoadServerConfig_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	for _, key := range []string{"PORT", "DATA_FILE", "LOG_LEVEL", "LOG_FORMAT", "GIN_MODE", "CORS_ALLOW_ORIGIN"} {
		unsetEnv(t, key)
	}
	t.Setenv("MAX_REQUEST_BYTES", "not-a-number")

	cfg, err := LoadServerConfig()
	require.NoError(t, err)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "data.json", cfg.DataFile)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, "*", cfg.CORSAllowOrigin)
	assert.Equal(t, int64(1<<20), cfg.MaxRequestBytes)
}

func TestLoadServerConfig_FromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PORT", "9000")
	t.Setenv("DATA_FILE", "/srv/candidates.json")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("MAX_REQUEST_BYTES", "2048")
	t.Setenv("CORS_ALLOW_ORIGIN", "https://levelup.example")

	cfg, err := LoadServerConfig()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "/srv/candidates.json", cfg.DataFile)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, int64(2048), cfg.MaxRequestBytes)
	assert.Equal(t, "https://levelup.example", cfg.CORSAllowOrigin)
}

func TestServerConfig_Validate(t *testing.T) {
	valid := ServerConfig{Port: "5000", DataFile: "data.json", LogLevel: "info", LogFormat: "json", MaxRequestBytes: 1024}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(c *ServerConfig)
	}{
		{"non-numeric port", func(c *ServerConfig) { c.Port = "http" }},
		{"port out of range", func(c *ServerConfig) { c.Port = "70000" }},
		{"empty data file", func(c *ServerConfig) { c.DataFile = "  " }},
		{"bad log format", func(c *ServerConfig) { c.LogFormat = "xml" }},
		{"bad log level", func(c *ServerConfig) { c.LogLevel = "trace" }},
		{"non-positive body limit", func(c *ServerConfig) { c.MaxRequestBytes = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	require.NoError(t, err)

	assert.Empty(t, cfg.DB)
	assert.Empty(t, cfg.Catalog)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoadFrom_Values(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"GIFTCHECK_DB":        "/tmp/gifts.db",
		"GIFTCHECK_CATALOG":   "catalogs",
		"GIFTCHECK_FORMAT":    "JSON",
		"GIFTCHECK_LOG_LEVEL": "debug",
		"DB":                  "ignored without prefix",
	})
	require.NoError(t, err)

	assert.Equal(t, "/tmp/gifts.db", cfg.DB)
	assert.Equal(t, "catalogs", cfg.Catalog)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoadFrom_InvalidFormat(t *testing.T) {
	_, err := LoadFrom(map[string]string{"GIFTCHECK_FORMAT": "yaml"})
	assert.ErrorContains(t, err, "GIFTCHECK_FORMAT")
}

func TestLoadFrom_InvalidLogLevel(t *testing.T) {
	_, err := LoadFrom(map[string]string{"GIFTCHECK_LOG_LEVEL": "loud"})
	assert.Error(t, err)
}

func TestLoad_ReadsProcessEnvironment(t *testing.T) {
	t.Setenv("GIFTCHECK_CATALOG", "from-env")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Catalog)
}

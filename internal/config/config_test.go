package config

import (
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"HTTP_ADDR", "AMQP_URL", "MAX_BATCH_SIZE", "MAX_PAGE_SIZE", "LOG_LEVEL", "DB_PORT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, ":8000", cfg.HTTPAddr)
	assert.Equal(t, "", cfg.AMQPURL)
	assert.Equal(t, "5432", cfg.DB.Port)
	assert.Equal(t, 5000, cfg.MaxBatchSize)
	assert.Equal(t, 100, cfg.MaxPageSize)
	assert.Equal(t, log.InfoLevel, cfg.LogLevel)
}

func TestLoad_EnvFileDoesNotOverrideEnvironment(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("MAX_PAGE_SIZE=25\nHTTP_ADDR=:9999\n"), 0o600))

	t.Setenv("HTTP_ADDR", ":7000")
	t.Setenv("MAX_PAGE_SIZE", "")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(envFile)
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.HTTPAddr)
	assert.Equal(t, log.DebugLevel, cfg.LogLevel)
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "chatty")

	_, err := Load("")
	assert.Error(t, err)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvKeys = []string{
	"CONFIG",
	"APP_VERSION",
	"APP_LOG_LEVEL",
	"STORAGE_DISABLE_SEED",
	"SERVER_ADDRESS",
	"SERVER_REQUEST_TIMEOUT",
	"SERVER_SHUTDOWN_TIMEOUT",
	"ADAPTER_ADDRESS",
	"ADAPTER_REQUEST_TIMEOUT",
}

func TestParseEnv_AllFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CONFIG":                  "/path/to/config.json",
		"APP_VERSION":             "1.2.3",
		"APP_LOG_LEVEL":           "warn",
		"STORAGE_DISABLE_SEED":    "true",
		"SERVER_ADDRESS":          "localhost:8080",
		"SERVER_REQUEST_TIMEOUT":  "30s",
		"SERVER_SHUTDOWN_TIMEOUT": "2s",
		"ADAPTER_ADDRESS":         "http://localhost:8080",
		"ADAPTER_REQUEST_TIMEOUT": "1m",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.True(t, cfg.Storage.DisableSeed)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 2*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, time.Minute, cfg.Adapter.RequestTimeout)
}

func TestParseEnv_Empty(t *testing.T) {
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_REQUEST_TIMEOUT": "soon"})

	err := parseEnv(&StructuredConfig{})
	assert.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	clearEnvVars(t)

	t.Run("missing file is ignored", func(t *testing.T) {
		assert.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), ".env")))
	})

	t.Run("file values are loaded without overriding", func(t *testing.T) {
		setEnvVars(t, map[string]string{"APP_VERSION": "from-env"})

		p := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(p, []byte("APP_VERSION=from-file\nAPP_LOG_LEVEL=error\n"), 0o600))
		t.Cleanup(func() { _ = os.Unsetenv("APP_LOG_LEVEL") })

		require.NoError(t, loadDotEnv(p))
		assert.Equal(t, "from-env", os.Getenv("APP_VERSION"))
		assert.Equal(t, "error", os.Getenv("APP_LOG_LEVEL"))
	})

	t.Run("malformed file", func(t *testing.T) {
		p := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(p, []byte("APP_VERSION='unterminated\n"), 0o600))
		assert.Error(t, loadDotEnv(p))
	})
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range configEnvKeys {
		if v, ok := os.LookupEnv(k); ok {
			t.Setenv(k, v)
			require.NoError(t, os.Unsetenv(k))
		}
	}
}

package main

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, key := range []string{"PLUGIN_PORT", "LOG_LEVEL", "SHUTDOWN_TIMEOUT"} {
			t.Setenv(key, "")
			require.NoError(t, os.Unsetenv(key))
		}

		cfg, err := loadConfig()
		require.NoError(t, err)
		assert.Equal(t, config{Port: "50051", LogLevel: "info", ShutdownTimeout: 3 * time.Second}, cfg)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("PLUGIN_PORT", "6001")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("SHUTDOWN_TIMEOUT", "10s")

		cfg, err := loadConfig()
		require.NoError(t, err)
		assert.Equal(t, config{Port: "6001", LogLevel: "debug", ShutdownTimeout: 10 * time.Second}, cfg)
	})

	t.Run("bad duration", func(t *testing.T) {
		t.Setenv("SHUTDOWN_TIMEOUT", "soon")

		_, err := loadConfig()
		assert.Error(t, err)
	})
}

func TestRootCmdFlags(t *testing.T) {
	cmd := newRootCmd(config{Port: "6001", LogLevel: "debug", ShutdownTimeout: time.Second})

	port, err := cmd.Flags().GetString("port")
	require.NoError(t, err)
	assert.Equal(t, "6001", port)

	require.NoError(t, cmd.ParseFlags([]string{"--port", "7000", "--shutdown-timeout", "5s"}))

	port, err = cmd.Flags().GetString("port")
	require.NoError(t, err)
	assert.Equal(t, "7000", port)

	timeout, err := cmd.Flags().GetDuration("shutdown-timeout")
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, timeout)
}

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDialogueEnv_Defaults(t *testing.T) {
	t.Setenv("HOME", "/home/kiosk")
	unsetenv(t, "BACKEND_URL", "TOKEN_FILE", "CAPTURE_TIMEOUT", "SPEAK_TIMEOUT", "REMOTE_TIMEOUT")

	cfg, err := LoadDialogueEnv()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000/api/v1", cfg.BackendURL)
	assert.Equal(t, 15*time.Second, cfg.CaptureTimeout)
	assert.Equal(t, "/home/kiosk/.sonicsavor/token", cfg.TokenFile)

	mc := cfg.MachineConfig()
	assert.Equal(t, 30*time.Second, mc.SpeakTimeout)
	assert.Equal(t, 20*time.Second, mc.RemoteTimeout)
}

func TestLoadServerEnv_Overrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("ORDER_CANCEL_WINDOW", "2m")
	t.Setenv("CAPTURE_TIMEOUT", "5s")

	cfg, err := LoadServerEnv()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 2*time.Minute, cfg.CancelWindow)
	assert.Equal(t, 5*time.Second, cfg.Dialogue.CaptureTimeout)
}

func TestLoadServerEnv_RejectsBadDuration(t *testing.T) {
	t.Setenv("MENU_CACHE_TTL", "ten minutes")
	unsetenv(t, "CAPTURE_TIMEOUT")

	_, err := LoadServerEnv()
	assert.Error(t, err)
}

// unsetenv clears keys for the duration of the test.
func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

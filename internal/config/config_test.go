package config

import (
	"encoding/base64"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp переходит во временную директорию, чтобы не подхватить чужой .env
func chdirTemp(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadConfig_Defaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "sos_alerts", cfg.AlertQueueKey)
	assert.Equal(t, 5.0, cfg.SafeZonesDefaultRadiusKm)
	assert.Equal(t, 5*time.Second, cfg.NotifierTimeout)
	assert.Equal(t, 3, cfg.NotifierMaxRetries)
	assert.Equal(t, []string{"dev-key"}, cfg.APIKeys)
	assert.Nil(t, cfg.AlertEncryptionKey)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	chdirTemp(t)
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("API_KEYS", " first , second,,")
	t.Setenv("SAFE_ZONES_DEFAULT_RADIUS_KM", "2.5")
	t.Setenv("NOTIFIER_BASE_DELAY", "250ms")
	t.Setenv("NOTIFIER_MAX_RETRIES", "0")
	t.Setenv("ALERT_ENCRYPTION_KEY", base64.StdEncoding.EncodeToString(key))

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, []string{"first", "second"}, cfg.APIKeys)
	assert.Equal(t, 2.5, cfg.SafeZonesDefaultRadiusKm)
	assert.Equal(t, 250*time.Millisecond, cfg.NotifierBaseDelay)
	assert.Equal(t, 1, cfg.NotifierMaxRetries)
	assert.Equal(t, key, cfg.AlertEncryptionKey)
}

func TestLoadConfig_InvalidRadius(t *testing.T) {
	chdirTemp(t)
	t.Setenv("SAFE_ZONES_DEFAULT_RADIUS_KM", "-1")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "SAFE_ZONES_DEFAULT_RADIUS_KM")
}

func TestLoadConfig_InvalidEncryptionKey(t *testing.T) {
	chdirTemp(t)

	t.Setenv("ALERT_ENCRYPTION_KEY", "%%%")
	_, err := LoadConfig()
	assert.ErrorContains(t, err, "base64")

	t.Setenv("ALERT_ENCRYPTION_KEY", base64.StdEncoding.EncodeToString([]byte("short")))
	_, err = LoadConfig()
	assert.ErrorContains(t, err, "32 bytes")
}

package cliconfig

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

func TestLoadAndApplyFileConfig(t *testing.T) {
	path := writeConfig(t, `
port = "/dev/ttyUSB3"
baud_rate = 115200
data_bits = 7
parity = "Even"
stop_bits = "2"
exclusive = true
size = 5000
transform = "identity"
timeout = "30s"
wait_device = "5s"
lang = "fi"
log_level = "info"
`)
	fc, err := LoadFileConfig(path)
	require.NoError(t, err)

	cfg := DefaultConfig()
	require.NoError(t, ApplyFileConfig(&cfg, fc, map[string]bool{}))

	assert.Equal(t, "/dev/ttyUSB3", cfg.Port)
	assert.Equal(t, 115200, cfg.BaudRate)
	assert.Equal(t, 7, cfg.DataBits)
	assert.Equal(t, "Even", cfg.Parity)
	assert.Equal(t, "2", cfg.StopBits)
	assert.True(t, cfg.Exclusive)
	assert.Equal(t, 5000, cfg.Size)
	assert.Equal(t, "identity", cfg.Transform)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 5*time.Second, cfg.WaitDevice)
	assert.Equal(t, "fi", cfg.Lang)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestApplyFileConfigRespectsChangedFlags(t *testing.T) {
	fc := FileConfig{Port: "/dev/ttyS9", BaudRate: 115200, Timeout: "1s"}
	cfg := DefaultConfig()
	cfg.Port = "/dev/ttyACM0"

	require.NoError(t, ApplyFileConfig(&cfg, fc, map[string]bool{"port": true, "timeout": true}))
	assert.Equal(t, "/dev/ttyACM0", cfg.Port)
	assert.Equal(t, 115200, cfg.BaudRate)
	assert.Equal(t, time.Minute, cfg.Timeout)
}

func TestApplyFileConfigInvalidDuration(t *testing.T) {
	cfg := DefaultConfig()
	err := ApplyFileConfig(&cfg, FileConfig{Timeout: "soon"}, map[string]bool{})
	require.Error(t, err)
}

func TestLoadFileConfigErrors(t *testing.T) {
	_, err := LoadFileConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)

	_, err = LoadFileConfig(writeConfig(t, "port = [unterminated"))
	require.Error(t, err)
}

func TestFileExists(t *testing.T) {
	path := writeConfig(t, "")
	require.True(t, FileExists(path))
	require.False(t, FileExists(path+".nope"))
}

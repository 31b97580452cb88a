package cliconfig

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyEnvConfig(t *testing.T) {
	t.Setenv("GXPROBE_PORT", "/dev/ttyUSB1")
	t.Setenv("GXPROBE_BAUD_RATE", "57600")
	t.Setenv("GXPROBE_SIZE", "100")
	t.Setenv("GXPROBE_EXCLUSIVE", "1")
	t.Setenv("GXPROBE_TIMEOUT", "2s")
	t.Setenv("GXPROBE_TRANSFORM", "lower")

	cfg := DefaultConfig()
	require.NoError(t, ApplyEnvConfig(&cfg, map[string]bool{"size": true}))

	assert.Equal(t, "/dev/ttyUSB1", cfg.Port)
	assert.Equal(t, 57600, cfg.BaudRate)
	assert.Equal(t, 2000, cfg.Size)
	assert.True(t, cfg.Exclusive)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
	assert.Equal(t, "lower", cfg.Transform)
}

func TestApplyEnvConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "bad baud", key: "GXPROBE_BAUD_RATE", val: "fast"},
		{name: "bad size", key: "GXPROBE_SIZE", val: "big"},
		{name: "bad timeout", key: "GXPROBE_TIMEOUT", val: "later"},
		{name: "bad wait", key: "GXPROBE_WAIT_DEVICE", val: "forever"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			cfg := DefaultConfig()
			require.Error(t, ApplyEnvConfig(&cfg, map[string]bool{}))
		})
	}
}

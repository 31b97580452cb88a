package cliconfig

import (
	"testing"
	"time"

	"github.com/Gurux/gxcommon-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	probe "github.com/Gurux/gxserialprobe-go"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, probe.DefaultPort, cfg.Port)
	assert.Equal(t, 2000, cfg.Size)
	assert.Equal(t, "upper", cfg.Transform)
	assert.Equal(t, time.Minute, cfg.Timeout)
	require.NoError(t, cfg.Validate())

	line, err := cfg.Line()
	require.NoError(t, err)
	assert.Equal(t, gxcommon.BaudRate(9600), line.BaudRate)
	assert.Equal(t, 8, line.DataBits)
	assert.Equal(t, gxcommon.ParityNone, line.Parity)
	assert.Equal(t, gxcommon.StopBitsOne, line.StopBits)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr bool
	}{
		{name: "defaults", modify: func(c *Config) {}},
		{name: "missing port", modify: func(c *Config) { c.Port = "" }, wantErr: true},
		{name: "self-test needs no port", modify: func(c *Config) { c.Port = ""; c.SelfTest = true }},
		{name: "zero size", modify: func(c *Config) { c.Size = 0 }, wantErr: true},
		{name: "negative timeout", modify: func(c *Config) { c.Timeout = -time.Second }, wantErr: true},
		{name: "negative wait", modify: func(c *Config) { c.WaitDevice = -time.Second }, wantErr: true},
		{name: "bad transform", modify: func(c *Config) { c.Transform = "rot13" }, wantErr: true},
		{name: "bad data bits", modify: func(c *Config) { c.DataBits = 9 }, wantErr: true},
		{name: "bad baud", modify: func(c *Config) { c.BaudRate = 0 }, wantErr: true},
		{name: "two stop bits", modify: func(c *Config) { c.StopBits = "2" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestParseStopBits(t *testing.T) {
	for in, want := range map[string]gxcommon.StopBits{
		"1":    gxcommon.StopBitsOne,
		"One":  gxcommon.StopBitsOne,
		"2":    gxcommon.StopBitsTwo,
		" two": gxcommon.StopBitsTwo,
	} {
		got, err := parseStopBits(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
}

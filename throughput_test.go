package gxserialprobe

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestThroughput(t *testing.T) {
	tp := NewThroughput(2000, 16*time.Millisecond)
	require.Equal(t, int64(16000), tp.Bits)
	v, ok := tp.Mbps()
	require.True(t, ok)
	require.InDelta(t, 1.0, v, 1e-9)
	require.Equal(t, "1.000 Mbit/s", tp.String())
}

func TestThroughputZeroElapsed(t *testing.T) {
	tp := NewThroughput(2000, 0)
	_, ok := tp.Mbps()
	require.False(t, ok)
	require.Equal(t, "undefined", tp.String())
}

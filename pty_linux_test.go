//go:build linux

package gxserialprobe

import (
	"context"
	"testing"
	"time"

	"github.com/Gurux/gxcommon-go"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func openPTYPair(t *testing.T) (*GXSerial, context.Context) {
	t.Helper()
	master, slave, err := OpenPTY()
	if err != nil {
		t.Skipf("pseudo-terminals unavailable: %v", err)
	}
	t.Cleanup(func() { _ = master.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go func() {
		_ = Echo(ctx, master, TransformUpper)
	}()

	media := NewGXSerial(slave, gxcommon.BaudRate(115200), 8, gxcommon.ParityNone, gxcommon.StopBitsOne)
	media.SetLogger(zerolog.Nop())
	require.NoError(t, media.Validate())
	require.NoError(t, media.Open())
	t.Cleanup(func() { _ = media.Close() })
	return media, ctx
}

func TestProbeOverPseudoTerminal(t *testing.T) {
	media, ctx := openPTYPair(t)
	require.True(t, media.IsOpen())

	p := NewProbe(Options{Size: 20000, Timeout: 10 * time.Second, Logger: zerolog.Nop()})
	res, err := p.Run(ctx, media)
	require.NoError(t, err)
	require.True(t, res.Report.OK())
	require.Equal(t, uint64(20000), media.GetBytesSent())
	require.Equal(t, uint64(20000), media.GetBytesReceived())

	media.ResetByteCounters()
	require.Zero(t, media.GetBytesSent())
}

func TestSerialReconfigureWhileOpen(t *testing.T) {
	media, _ := openPTYPair(t)
	require.NoError(t, media.SetLine(gxcommon.BaudRate(9600), 7, gxcommon.ParityEven, gxcommon.StopBitsTwo))
	require.Equal(t, 7, media.DataBits())
	require.Equal(t, gxcommon.ParityEven, media.Parity())
	require.Equal(t, gxcommon.StopBitsTwo, media.StopBits())
	require.Equal(t, gxcommon.BaudRate(9600), media.BaudRate())

	require.Error(t, media.SetLine(gxcommon.BaudRate(12345), 8, gxcommon.ParityNone, gxcommon.StopBitsOne))
	require.NoError(t, media.SetExclusive(true))
	require.True(t, media.Exclusive())
	require.NoError(t, media.SetExclusive(false))
}

func TestSerialReceiveAfterClose(t *testing.T) {
	media, ctx := openPTYPair(t)
	require.NoError(t, media.Close())
	require.False(t, media.IsOpen())

	_, err := media.Receive(ctx)
	require.ErrorIs(t, err, ErrNotOpen)
	require.Error(t, media.Send(ctx, []byte("x")))
	// Closing twice is fine.
	require.NoError(t, media.Close())
}

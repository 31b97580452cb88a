package devwait

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWaitExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ttyUSB0")
	require.NoError(t, os.WriteFile(path, nil, 0o600))
	require.NoError(t, Wait(context.Background(), path, time.Second))
}

func TestWaitAppears(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "by-id", "usb-test-if00")
	go func() {
		time.Sleep(50 * time.Millisecond)
		_ = os.MkdirAll(filepath.Dir(path), 0o700)
		time.Sleep(50 * time.Millisecond)
		_ = os.WriteFile(path, nil, 0o600)
	}()
	require.NoError(t, Wait(context.Background(), path, 5*time.Second))
}

func TestWaitTimeout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "never")
	err := Wait(context.Background(), path, 30*time.Millisecond)
	require.ErrorIs(t, err, ErrTimeout)
}

func TestWaitCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Wait(ctx, filepath.Join(t.TempDir(), "never"), 0)
	require.ErrorIs(t, err, context.Canceled)
}

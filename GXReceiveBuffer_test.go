package gxserialprobe

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestReceiveBufferDrainTakesEverything(t *testing.T) {
	b := newReceiveBuffer()
	b.Append([]byte("ab"))
	b.Append(nil)
	b.Append([]byte("cd"))
	require.Equal(t, 4, b.Len())

	data, err := b.Drain(context.Background())
	require.NoError(t, err)
	require.Equal(t, []byte("abcd"), data)
	require.Equal(t, 0, b.Len())
}

func TestReceiveBufferDrainWaitsForAppend(t *testing.T) {
	b := newReceiveBuffer()
	go func() {
		time.Sleep(10 * time.Millisecond)
		b.Append([]byte("x"))
	}()
	data, err := b.Drain(context.Background())
	require.NoError(t, err)
	require.Equal(t, []byte("x"), data)
}

func TestReceiveBufferFailAfterData(t *testing.T) {
	boom := errors.New("boom")
	b := newReceiveBuffer()
	b.Append([]byte("x"))
	b.Fail(boom)
	b.Fail(errors.New("second"))

	data, err := b.Drain(context.Background())
	require.NoError(t, err)
	require.Equal(t, []byte("x"), data)
	_, err = b.Drain(context.Background())
	require.ErrorIs(t, err, boom)

	b.Reset()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = b.Drain(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

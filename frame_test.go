package gxserialprobe

import (
	"bytes"
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFramerDecodeEmpty(t *testing.T) {
	var f Framer
	var buf bytes.Buffer

	_, ok := f.Decode(&buf)
	require.False(t, ok)
	require.Equal(t, 0, f.Offset())
}

func TestFramerDecodeDrainsBuffer(t *testing.T) {
	var f Framer
	var buf bytes.Buffer
	buf.WriteString("hello")

	fr, ok := f.Decode(&buf)
	require.True(t, ok)
	assert.Equal(t, 0, fr.Offset)
	assert.Equal(t, []byte("hello"), fr.Data)
	assert.Equal(t, 0, buf.Len())
	assert.Equal(t, 5, f.Offset())

	// The frame owns a copy of the bytes.
	buf.WriteString("world")
	fr2, ok := f.Decode(&buf)
	require.True(t, ok)
	assert.Equal(t, 5, fr2.Offset)
	assert.Equal(t, 10, fr2.End())
	assert.Equal(t, []byte("hello"), fr.Data)
}

func TestFramerOffsetsPartitionStream(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		r := rand.New(rand.NewPCG(seed, seed))
		stream := Generate(1000 + r.IntN(1000))

		var f Framer
		var buf bytes.Buffer
		var joined []byte
		next := 0
		for _, chunk := range split(stream, randomSizes(r, len(stream))) {
			buf.Write(chunk)
			fr, ok := f.Decode(&buf)
			require.True(t, ok)
			require.Equal(t, next, fr.Offset)
			next = fr.End()
			joined = append(joined, fr.Data...)

			_, ok = f.Decode(&buf)
			require.False(t, ok)
		}
		require.Equal(t, stream, joined)
		require.Equal(t, len(stream), f.Offset())
	}
}

func TestFramerEncodeVerbatim(t *testing.T) {
	var f Framer
	var buf bytes.Buffer
	f.Encode([]byte("abc"), &buf)
	f.Encode([]byte("def"), &buf)
	require.Equal(t, "abcdef", buf.String())
	require.Equal(t, 0, f.Offset())
}

func TestFrameReaderSkipsEmptyChunks(t *testing.T) {
	rx := &scriptedReceiver{chunks: [][]byte{nil, []byte("ab"), {}, []byte("cde")}}
	r := NewFrameReader(rx)
	ctx := context.Background()

	f, err := r.Next(ctx)
	require.NoError(t, err)
	require.Equal(t, Frame{Offset: 0, Data: []byte("ab")}, f)

	f, err = r.Next(ctx)
	require.NoError(t, err)
	require.Equal(t, Frame{Offset: 2, Data: []byte("cde")}, f)
	require.Equal(t, 5, r.Offset())
}

func TestFrameReaderPropagatesTransportError(t *testing.T) {
	boom := errors.New("boom")
	r := NewFrameReader(&scriptedReceiver{chunks: [][]byte{[]byte("x")}, err: boom})

	_, err := r.Next(context.Background())
	require.NoError(t, err)
	_, err = r.Next(context.Background())
	require.ErrorIs(t, err, boom)
}

func TestFrameWriterSingleWrite(t *testing.T) {
	c := newEchoConn(TransformIdentity, 4096)
	w := NewFrameWriter(c)

	require.NoError(t, w.Send(context.Background(), []byte("payload")))
	require.NoError(t, w.Send(context.Background(), nil))
	require.Equal(t, [][]byte{[]byte("payload")}, c.sent)
}

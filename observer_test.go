package gxserialprobe

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestLogObserverLines(t *testing.T) {
	var out bytes.Buffer
	obs := NewLogObserver(zerolog.New(&out), nil)

	obs.OnFrame(Frame{Offset: 8, Data: []byte("abc")})
	obs.OnMismatch(Mismatch{Position: 9, Got: 'x', Want: 'B', FrameOffset: 8, FrameLen: 3})
	obs.OnOverrun(Overrun{Offset: 200, Length: 4})

	var lines []map[string]any
	dec := json.NewDecoder(&out)
	for dec.More() {
		var m map[string]any
		require.NoError(t, dec.Decode(&m))
		lines = append(lines, m)
	}
	require.Len(t, lines, 4)
	require.Equal(t, "packet offset 8 len 3", lines[0]["message"])
	require.Equal(t, "debug", lines[0]["level"])
	require.Equal(t, "wrong data at 9: 0x78 != 0x42", lines[1]["message"])
	require.Equal(t, "no resynchronization possible for packet offset 8 len 3", lines[2]["message"])
	require.Equal(t, "received 4 bytes past the expected end at 200", lines[3]["message"])
}

func TestLogObserverResyncLine(t *testing.T) {
	var out bytes.Buffer
	obs := NewLogObserver(zerolog.New(&out), nil)
	obs.OnMismatch(Mismatch{Position: 0, Got: 'F', Want: 'A', Resync: Resync{Found: true, Offset: 5, Skew: 5}})

	require.Contains(t, out.String(), "correct offset: 5, packet offset: 0 (5)")
	require.Contains(t, out.String(), `"skew":5`)
}

func TestEchoStopsOnContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var rw bytes.Buffer
	require.ErrorIs(t, Echo(ctx, &rw, TransformUpper), context.Canceled)
}

func TestEchoTransformsUntilEOF(t *testing.T) {
	rw := &loopBuffer{in: bytes.NewBufferString("hello")}
	require.NoError(t, Echo(context.Background(), rw, TransformUpper))
	require.Equal(t, "HELLO", rw.out.String())
}

type loopBuffer struct {
	in  *bytes.Buffer
	out bytes.Buffer
}

func (b *loopBuffer) Read(p []byte) (int, error)  { return b.in.Read(p) }
func (b *loopBuffer) Write(p []byte) (int, error) { return b.out.Write(p) }

package gxserialprobe

import (
	"context"
	"math/rand/v2"
	"sync"
)

// chunkSizes splits n bytes using sizes in turn, repeating the last size.
func chunkSizes(n int, sizes ...int) []int {
	var ret []int
	for i := 0; n > 0; i++ {
		s := sizes[min(i, len(sizes)-1)]
		s = min(s, n)
		ret = append(ret, s)
		n -= s
	}
	return ret
}

func split(data []byte, sizes []int) [][]byte {
	var ret [][]byte
	for _, s := range sizes {
		ret = append(ret, data[:s])
		data = data[s:]
	}
	return ret
}

func randomSizes(r *rand.Rand, n int) []int {
	var ret []int
	for n > 0 {
		s := min(1+r.IntN(64), n)
		ret = append(ret, s)
		n -= s
	}
	return ret
}

// scriptedReceiver hands out fixed chunks, then blocks until ctx is done.
type scriptedReceiver struct {
	chunks [][]byte
	err    error
}

func (r *scriptedReceiver) Receive(ctx context.Context) ([]byte, error) {
	if len(r.chunks) != 0 {
		c := r.chunks[0]
		r.chunks = r.chunks[1:]
		return c, nil
	}
	if r.err != nil {
		return nil, r.err
	}
	<-ctx.Done()
	return nil, ctx.Err()
}

// echoConn plays the remote end in memory: everything sent is transformed,
// optionally corrupted and delivered back in chunks of the configured sizes.
type echoConn struct {
	transform Transform
	sizes     []int
	corrupt   map[int]byte
	sendErr   error
	recvErr   error

	mu     sync.Mutex
	sent   [][]byte
	offset int
	queue  chan []byte
}

func newEchoConn(t Transform, sizes ...int) *echoConn {
	return &echoConn{transform: t, sizes: sizes, queue: make(chan []byte, 1024)}
}

func (c *echoConn) Send(ctx context.Context, data []byte) error {
	if c.sendErr != nil {
		return c.sendErr
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sent = append(c.sent, append([]byte(nil), data...))
	out := c.transform.Apply(data)
	for pos, b := range c.corrupt {
		if i := pos - c.offset; i >= 0 && i < len(out) {
			out[i] = b
		}
	}
	c.offset += len(out)
	for _, chunk := range split(out, chunkSizes(len(out), c.sizes...)) {
		c.queue <- chunk
	}
	return nil
}

func (c *echoConn) Receive(ctx context.Context) ([]byte, error) {
	if c.recvErr != nil {
		return nil, c.recvErr
	}
	select {
	case chunk := <-c.queue:
		return chunk, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

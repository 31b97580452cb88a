package gxserialprobe

// --------------------------------------------------------------------------
//
//	Gurux Ltd
//
// Filename:        $HeadURL$
//
// Version:         $Revision$,
//
//	$Date$
//	$Author$
//
// # Copyright (c) Gurux Ltd
//
// ---------------------------------------------------------------------------
//
//	DESCRIPTION
//
// This file is a part of Gurux Device Framework.
//
// Gurux Device Framework is Open Source software; you can redistribute it
// and/or modify it under the terms of the GNU General Public License
// as published by the Free Software Foundation; version 2 of the License.
// Gurux Device Framework is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU General Public License for more details.
//
// More information of Gurux products: https://www.gurux.org
//
// This code is licensed under the GNU General Public License v2.
// Full text may be retrieved at http://www.gnu.org/licenses/gpl-2.0.txt
// ---------------------------------------------------------------------------

import (
	"context"
	"sync"
)

// receiveBuffer collects bytes from the port reader goroutine until the
// receiving half drains them. Every append wakes blocked receivers.
type receiveBuffer struct {
	mu   sync.Mutex
	buf  []byte
	err  error
	wait chan struct{}
}

func newReceiveBuffer() *receiveBuffer {
	return &receiveBuffer{wait: make(chan struct{})}
}

func (b *receiveBuffer) signal() {
	old := b.wait
	b.wait = make(chan struct{})
	close(old)
}

// Append adds p to the buffer.
func (b *receiveBuffer) Append(p []byte) {
	if len(p) == 0 {
		return
	}
	b.mu.Lock()
	b.buf = append(b.buf, p...)
	b.signal()
	b.mu.Unlock()
}

// Fail makes pending and later Drain calls return err once the buffered
// bytes have been handed out. Only the first error is kept.
func (b *receiveBuffer) Fail(err error) {
	b.mu.Lock()
	if b.err == nil {
		b.err = err
	}
	b.signal()
	b.mu.Unlock()
}

// Len returns the number of buffered bytes.
func (b *receiveBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.buf)
}

// Drain waits until data is buffered and takes all of it.
func (b *receiveBuffer) Drain(ctx context.Context) ([]byte, error) {
	for {
		b.mu.Lock()
		if len(b.buf) != 0 {
			ret := b.buf
			b.buf = nil
			b.mu.Unlock()
			return ret, nil
		}
		if b.err != nil {
			err := b.err
			b.mu.Unlock()
			return nil, err
		}
		ch := b.wait
		b.mu.Unlock()

		select {
		case <-ch:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// Reset discards buffered bytes and any stored error.
func (b *receiveBuffer) Reset() {
	b.mu.Lock()
	b.buf = nil
	b.err = nil
	b.mu.Unlock()
}

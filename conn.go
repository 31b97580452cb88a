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
	"io"
)

// Receiver is the readable half of a byte oriented duplex link.
// Receive may return an empty chunk when no data is available yet.
type Receiver interface {
	Receive(ctx context.Context) ([]byte, error)
}

// Sender is the writable half of a byte oriented duplex link.
type Sender interface {
	Send(ctx context.Context, data []byte) error
}

// Conn is a duplex link such as an open serial port.
type Conn interface {
	Receiver
	Sender
}

// RecvHalf may only receive from the underlying connection.
type RecvHalf struct {
	c Conn
}

// Receive implements Receiver.
func (h *RecvHalf) Receive(ctx context.Context) ([]byte, error) {
	return h.c.Receive(ctx)
}

// SendHalf may only send to the underlying connection.
type SendHalf struct {
	c Conn
}

// Send implements Sender.
func (h *SendHalf) Send(ctx context.Context, data []byte) error {
	return h.c.Send(ctx, data)
}

// Split returns the receive and send handles of c. Each handle is meant to be
// owned by a single goroutine.
func Split(c Conn) (*RecvHalf, *SendHalf) {
	return &RecvHalf{c: c}, &SendHalf{c: c}
}

const streamReadSize = 4096

// StreamConn adapts an io.ReadWriter to Conn. Every Receive issues one Read.
// The context is only checked between calls; closing the stream is the way
// to interrupt a blocked Read.
type StreamConn struct {
	rw  io.ReadWriter
	buf []byte
}

// NewStreamConn wraps rw.
func NewStreamConn(rw io.ReadWriter) *StreamConn {
	return &StreamConn{rw: rw, buf: make([]byte, streamReadSize)}
}

// Receive implements Receiver.
func (c *StreamConn) Receive(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	n, err := c.rw.Read(c.buf)
	if n > 0 {
		// Data read together with an error is still delivered.
		return c.buf[:n], nil
	}
	if err != nil {
		return nil, err
	}
	return nil, nil
}

// Send implements Sender.
func (c *StreamConn) Send(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := c.rw.Write(data)
	return err
}

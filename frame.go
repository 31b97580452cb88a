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
	"bytes"
	"context"
)

// Frame is a run of bytes that arrived together from the transport, tagged
// with its position in the logical stream.
type Frame struct {
	// Offset is the number of bytes emitted before this frame.
	Offset int
	Data   []byte
}

// End returns the stream position just past the frame.
func (f Frame) End() int {
	return f.Offset + len(f.Data)
}

// Framer tracks the cumulative offset of one direction of a stream.
// The zero value is ready for use and starts at offset zero.
type Framer struct {
	offset int
}

// Offset returns the number of bytes decoded so far.
func (f *Framer) Offset() int {
	return f.offset
}

// Decode takes every byte currently buffered in src as one frame.
// It returns false when src is empty; the offset is not advanced in that case.
func (f *Framer) Decode(src *bytes.Buffer) (Frame, bool) {
	if src.Len() == 0 {
		return Frame{}, false
	}
	data := make([]byte, src.Len())
	copy(data, src.Next(src.Len()))
	ret := Frame{Offset: f.offset, Data: data}
	f.offset += len(data)
	return ret, true
}

// Encode appends item verbatim to dst. Outgoing offsets are not tracked.
func (f *Framer) Encode(item []byte, dst *bytes.Buffer) {
	dst.Write(item)
}

// FrameReader turns chunks from a Receiver into offset tagged frames.
type FrameReader struct {
	rx     Receiver
	framer Framer
	buf    bytes.Buffer
}

// NewFrameReader returns a reader starting at stream offset zero.
func NewFrameReader(rx Receiver) *FrameReader {
	return &FrameReader{rx: rx}
}

// Next blocks until the transport delivers at least one byte and returns it
// as a frame. Transport errors are returned as is.
func (r *FrameReader) Next(ctx context.Context) (Frame, error) {
	for {
		if f, ok := r.framer.Decode(&r.buf); ok {
			return f, nil
		}
		if err := ctx.Err(); err != nil {
			return Frame{}, err
		}
		chunk, err := r.rx.Receive(ctx)
		if err != nil {
			return Frame{}, err
		}
		r.buf.Write(chunk)
	}
}

// Offset returns the number of bytes handed out so far.
func (r *FrameReader) Offset() int {
	return r.framer.Offset()
}

// FrameWriter writes items to a Sender through a Framer.
type FrameWriter struct {
	tx     Sender
	framer Framer
	buf    bytes.Buffer
}

// NewFrameWriter returns a writer for tx.
func NewFrameWriter(tx Sender) *FrameWriter {
	return &FrameWriter{tx: tx}
}

// Send encodes item and flushes the outgoing buffer as a single write.
func (w *FrameWriter) Send(ctx context.Context, item []byte) error {
	w.framer.Encode(item, &w.buf)
	if w.buf.Len() == 0 {
		return nil
	}
	err := w.tx.Send(ctx, w.buf.Bytes())
	w.buf.Reset()
	return err
}

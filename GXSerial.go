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
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Gurux/gxcommon-go"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultPort is the device opened when no port is given.
const DefaultPort = "/dev/serial/by-id/usb-Fake_company_Serial_port_TEST-if00"

// GXSerial is a serial port implementing Conn.
// Received bytes are collected by a background goroutine between Open and
// Close; Receive hands out everything collected so far.
type GXSerial struct {
	Port      string
	baudRate  gxcommon.BaudRate
	dataBits  int
	stopBits  gxcommon.StopBits
	parity    gxcommon.Parity
	exclusive bool
	// The trace level specifies which types of trace messages are emitted.
	traceLevel gxcommon.TraceLevel

	mu   sync.RWMutex
	wg   sync.WaitGroup
	stop chan struct{}

	bytesSent     atomic.Uint64
	bytesReceived atomic.Uint64

	received *receiveBuffer

	s   port
	log zerolog.Logger
	// Printer for localized messages.
	p *message.Printer
}

// NewGXSerial creates a GXSerial configured with the given serial port.
func NewGXSerial(port string,
	baudRate gxcommon.BaudRate,
	dataBits int,
	parity gxcommon.Parity,
	stopBits gxcommon.StopBits) *GXSerial {
	g := &GXSerial{
		Port:     port,
		baudRate: baudRate,
		dataBits: dataBits,
		stopBits: stopBits,
		parity:   parity,
		received: newReceiveBuffer(),
		log:      zerolog.Nop(),
	}
	g.Localize(DefaultLanguage)
	return g
}

// GetPortNames returns list of available serial ports.
func GetPortNames() ([]string, error) {
	return getPortNames()
}

// BaudRate returns the used baud rate.
func (g *GXSerial) BaudRate() gxcommon.BaudRate {
	return g.baudRate
}

// DataBits returns the amount of the data bits.
func (g *GXSerial) DataBits() int {
	return g.dataBits
}

// StopBits returns used stop bits.
func (g *GXSerial) StopBits() gxcommon.StopBits {
	return g.stopBits
}

// Parity returns used parity.
func (g *GXSerial) Parity() gxcommon.Parity {
	return g.parity
}

// SetLine changes the line settings. An open port is reconfigured at once.
func (g *GXSerial) SetLine(baudRate gxcommon.BaudRate, dataBits int, parity gxcommon.Parity, stopBits gxcommon.StopBits) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.baudRate, g.dataBits, g.parity, g.stopBits = baudRate, dataBits, parity, stopBits
	if g.s.isOpen() {
		return g.s.setLine(baudRate, dataBits, parity, stopBits)
	}
	return nil
}

// Exclusive reports whether the port is opened in exclusive mode.
func (g *GXSerial) Exclusive() bool {
	return g.exclusive
}

// SetExclusive sets TIOCEXCL on the port so other processes cannot open it.
func (g *GXSerial) SetExclusive(value bool) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.exclusive = value
	if g.s.isOpen() {
		return g.s.setExclusive(value)
	}
	return nil
}

// GetBytesToWrite returns the number of bytes still queued for transmission.
func (g *GXSerial) GetBytesToWrite() (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.s.isOpen() {
		return g.s.getBytesToWrite()
	}
	return 0, nil
}

func (g *GXSerial) String() string {
	return fmt.Sprintf("%s %s %d %s %s", g.Port, g.baudRate, g.dataBits, g.stopBits, g.parity)
}

// IsOpen reports whether the port is open.
func (g *GXSerial) IsOpen() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.s.isOpen()
}

// GetBytesSent returns the number of bytes written since the last reset.
func (g *GXSerial) GetBytesSent() uint64 {
	return g.bytesSent.Load()
}

// GetBytesReceived returns the number of bytes read since the last reset.
func (g *GXSerial) GetBytesReceived() uint64 {
	return g.bytesReceived.Load()
}

// ResetByteCounters zeroes the byte counters.
func (g *GXSerial) ResetByteCounters() {
	g.bytesSent.Store(0)
	g.bytesReceived.Store(0)
}

// Validate checks the settings before Open.
func (g *GXSerial) Validate() error {
	if g.Port == "" {
		return errors.New(g.p.Sprintf("msg.no_serial_port_selected"))
	}
	if g.dataBits < 5 || g.dataBits > 8 {
		return fmt.Errorf("invalid databits %d (must be 5..8)", g.dataBits)
	}
	return nil
}

// GetTrace returns the trace level.
func (g *GXSerial) GetTrace() gxcommon.TraceLevel {
	return g.traceLevel
}

// SetTrace sets which trace messages are written to the logger.
// It must be called before Open.
func (g *GXSerial) SetTrace(traceLevel gxcommon.TraceLevel) {
	g.traceLevel = traceLevel
}

// SetLogger sets the logger trace messages are written to. It must be called before Open.
func (g *GXSerial) SetLogger(log zerolog.Logger) {
	g.log = log.With().Str("port", g.Port).Logger()
}

// Open opens the port and starts collecting received data.
func (g *GXSerial) Open() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.s.isOpen() {
		return nil
	}
	g.trace(gxcommon.TraceTypesInfo, g.p.Sprintf("msg.connecting_to", g.Port))
	if err := openPort(g); err != nil {
		g.trace(gxcommon.TraceTypesError, g.p.Sprintf("msg.connect_failed", g.Port, err))
		return err
	}
	g.stop = make(chan struct{})
	g.received.Reset()
	g.wg.Add(1)
	go g.reader(g.stop)
	g.trace(gxcommon.TraceTypesInfo, g.p.Sprintf("msg.connected_to", g.Port))
	return nil
}

// Receive implements Receiver. It blocks until data has been received,
// the port fails or ctx is done.
func (g *GXSerial) Receive(ctx context.Context) ([]byte, error) {
	return g.received.Drain(ctx)
}

// Send implements Sender. The whole of data is written before it returns.
func (g *GXSerial) Send(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if err := g.s.setWriteDeadline(time.Time{}); err != nil {
		return err
	}
	stop := context.AfterFunc(ctx, func() {
		_ = g.s.setWriteDeadline(time.Unix(1, 0))
	})
	defer stop()

	g.tracef(gxcommon.TraceTypesSent, "TX: %s", data)
	n, err := g.s.write(data)
	g.bytesSent.Add(uint64(n))
	if err != nil && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

func (g *GXSerial) reader(stop <-chan struct{}) {
	defer g.wg.Done()
	for {
		ret, err := g.s.read()
		select {
		case <-stop:
			return
		default:
		}
		if err != nil {
			g.trace(gxcommon.TraceTypesError, g.p.Sprintf("msg.connection_failed", err))
			g.received.Fail(err)
			return
		}
		if len(ret) != 0 {
			g.bytesReceived.Add(uint64(len(ret)))
			g.tracef(gxcommon.TraceTypesReceived, "RX: %s", ret)
			g.received.Append(ret)
		}
	}
}

// tracef formats data the gxcommon way only when the trace level lets it through.
func (g *GXSerial) tracef(traceType gxcommon.TraceTypes, fmtStr string, data []byte) {
	if int(g.traceLevel) < int(traceType) {
		return
	}
	str, err := gxcommon.ToString(data)
	if err != nil {
		str = fmt.Sprintf("%x", data)
	}
	g.trace(traceType, fmt.Sprintf(fmtStr, str))
}

func (g *GXSerial) trace(traceType gxcommon.TraceTypes, msg string) {
	if int(g.traceLevel) < int(traceType) {
		return
	}
	switch traceType {
	case gxcommon.TraceTypesError:
		g.log.Error().Msg(msg)
	case gxcommon.TraceTypesInfo:
		g.log.Info().Msg(msg)
	default:
		g.log.Debug().Msg(msg)
	}
}

// Close stops the reader goroutine and closes the port.
// Pending and later Receive calls fail with ErrNotOpen.
func (g *GXSerial) Close() error {
	g.mu.Lock()
	if !g.s.isOpen() {
		g.mu.Unlock()
		return nil
	}
	close(g.stop)
	g.s.wake()
	g.mu.Unlock()
	g.wg.Wait()

	g.mu.Lock()
	defer g.mu.Unlock()
	err := g.s.close()
	g.received.Fail(ErrNotOpen)
	g.trace(gxcommon.TraceTypesInfo, g.p.Sprintf("msg.connection_closed", g.Port))
	return err
}

// Localize messages for the specified language.
// No errors is returned if language is not supported.
func (g *GXSerial) Localize(language language.Tag) {
	g.p = NewPrinter(language)
}

//go:build linux || darwin

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
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Gurux/gxcommon-go"
	"golang.org/x/sys/unix"
)

// CMSPAR selects mark/space parity where the kernel supports it.
const cmspar = 0x40000000

type port struct {
	f   *os.File
	fd  int
	r   *os.File
	w   *os.File
	rfd int
}

func (p *port) isOpen() bool {
	return p.f != nil
}

func openPort(cfg *GXSerial) error {
	fd, err := unix.Open(cfg.Port, unix.O_RDWR|unix.O_NOCTTY|unix.O_NONBLOCK, 0666)
	if err != nil {
		return err
	}
	p := port{f: os.NewFile(uintptr(fd), cfg.Port), fd: fd}

	t, err := unix.IoctlGetTermios(fd, reqGetTermios)
	if err != nil {
		_ = p.close()
		return fmt.Errorf("tcgetattr failed: %w", err)
	}
	if err := makeRaw(t, cfg.baudRate, cfg.dataBits, cfg.parity, cfg.stopBits); err != nil {
		_ = p.close()
		return err
	}
	if err := unix.IoctlSetTermios(fd, reqSetTermios, t); err != nil {
		_ = p.close()
		return fmt.Errorf("tcsetattr failed: %w", err)
	}
	if err := flushInput(fd); err != nil {
		_ = p.close()
		return err
	}
	if err := p.setExclusive(cfg.exclusive); err != nil {
		_ = p.close()
		return err
	}
	p.r, p.w, err = os.Pipe()
	if err != nil {
		_ = p.close()
		return err
	}
	p.rfd = int(p.r.Fd())
	_ = unix.SetNonblock(p.rfd, true)
	cfg.s = p
	return nil
}

// makeRaw puts t in raw mode with the given line settings.
func makeRaw(t *unix.Termios, baudRate gxcommon.BaudRate, dataBits int, parity gxcommon.Parity, stopBits gxcommon.StopBits) error {
	t.Cflag |= unix.CLOCAL | unix.CREAD
	t.Lflag &^= unix.ICANON | unix.ECHO | unix.ECHOE | unix.ECHOK | unix.ECHONL | unix.ISIG | unix.IEXTEN
	t.Oflag &^= unix.OPOST | unix.ONLCR | unix.OCRNL
	t.Iflag &^= unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IGNBRK | unix.IXON | unix.IXOFF | unix.INPCK | unix.ISTRIP
	t.Cflag &^= unix.CRTSCTS
	// Return every byte as soon as it arrives.
	t.Cc[unix.VMIN] = 1
	t.Cc[unix.VTIME] = 0

	speed, ok := toUnixBaudRate[int(baudRate)]
	if !ok {
		return fmt.Errorf("unsupported baud rate: %d", baudRate)
	}
	setSpeed(t, speed)

	t.Cflag &^= unix.CSIZE
	switch dataBits {
	case 5:
		t.Cflag |= unix.CS5
	case 6:
		t.Cflag |= unix.CS6
	case 7:
		t.Cflag |= unix.CS7
	case 8:
		t.Cflag |= unix.CS8
	default:
		return fmt.Errorf("invalid databits %d (must be 5..8)", dataBits)
	}

	switch stopBits {
	case gxcommon.StopBitsOne:
		t.Cflag &^= unix.CSTOPB
	case gxcommon.StopBitsTwo:
		t.Cflag |= unix.CSTOPB
	default:
		return fmt.Errorf("invalid stopbits %s (must be one or two)", stopBits)
	}

	t.Cflag &^= unix.PARENB | unix.PARODD
	if hasCMSPAR {
		t.Cflag &^= cmspar
	}
	switch parity {
	case gxcommon.ParityNone:
	case gxcommon.ParityEven:
		t.Cflag |= unix.PARENB
	case gxcommon.ParityOdd:
		t.Cflag |= unix.PARENB | unix.PARODD
	case gxcommon.ParityMark:
		if !hasCMSPAR {
			return errors.New("mark parity requested but CMSPAR not supported")
		}
		t.Cflag |= unix.PARENB | cmspar | unix.PARODD
	case gxcommon.ParitySpace:
		if !hasCMSPAR {
			return errors.New("space parity requested but CMSPAR not supported")
		}
		t.Cflag |= unix.PARENB | cmspar
	default:
		return errors.New("invalid parity")
	}
	return nil
}

func (p *port) ensureOpen() error {
	if p == nil || p.f == nil {
		return ErrNotOpen
	}
	return nil
}

func (p *port) close() error {
	if p == nil {
		return nil
	}
	if p.r != nil {
		_ = p.r.Close()
		p.r = nil
	}
	if p.w != nil {
		_ = p.w.Close()
		p.w = nil
	}
	if p.f != nil {
		f := p.f
		p.f = nil
		p.fd = 0
		return f.Close()
	}
	return nil
}

// wake interrupts a read blocked in poll.
func (p *port) wake() {
	if p.w != nil {
		_, _ = p.w.Write([]byte{0})
	}
}

func (p *port) setExclusive(on bool) error {
	if err := p.ensureOpen(); err != nil {
		return err
	}
	req := uint(unix.TIOCNXCL)
	if on {
		req = unix.TIOCEXCL
	}
	if err := unix.IoctlSetInt(p.fd, req, 0); err != nil {
		return fmt.Errorf("setExclusive failed: %w", err)
	}
	return nil
}

func (p *port) setTermios(update func(t *unix.Termios) error) error {
	if err := p.ensureOpen(); err != nil {
		return err
	}
	t, err := unix.IoctlGetTermios(p.fd, reqGetTermios)
	if err != nil {
		return fmt.Errorf("tcgetattr failed: %w", err)
	}
	if err := update(t); err != nil {
		return err
	}
	if err := unix.IoctlSetTermios(p.fd, reqSetTermios, t); err != nil {
		return fmt.Errorf("tcsetattr failed: %w", err)
	}
	return nil
}

func (p *port) setLine(baudRate gxcommon.BaudRate, dataBits int, parity gxcommon.Parity, stopBits gxcommon.StopBits) error {
	return p.setTermios(func(t *unix.Termios) error {
		return makeRaw(t, baudRate, dataBits, parity, stopBits)
	})
}

// read waits until the device is readable and returns everything currently
// buffered by the driver. It returns nil data without error when woken by close.
func (p *port) read() ([]byte, error) {
	if err := p.ensureOpen(); err != nil {
		return nil, err
	}
	pfds := []unix.PollFd{
		{Fd: int32(p.fd), Events: unix.POLLIN},
		{Fd: int32(p.rfd), Events: unix.POLLIN},
	}
	for {
		_, err := unix.Poll(pfds, -1)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return nil, err
		}
		break
	}
	if pfds[1].Revents != 0 {
		return nil, nil
	}
	if pfds[0].Revents&unix.POLLIN == 0 {
		if pfds[0].Revents&(unix.POLLHUP|unix.POLLERR|unix.POLLNVAL) != 0 {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, nil
	}

	var ret []byte
	for {
		cnt, _ := bytesToRead(p.fd)
		if cnt <= 0 {
			if len(ret) != 0 {
				return ret, nil
			}
			cnt = 1
		}
		buf := make([]byte, cnt)
		n, err := unix.Read(p.fd, buf)
		if err == unix.EAGAIN || err == unix.EINTR {
			return ret, nil
		}
		if err != nil {
			return nil, err
		}
		if n == 0 {
			if len(ret) == 0 {
				return nil, io.EOF
			}
			return ret, nil
		}
		ret = append(ret, buf[:n]...)
	}
}

func (p *port) write(data []byte) (int, error) {
	if err := p.ensureOpen(); err != nil {
		return 0, err
	}
	return p.f.Write(data)
}

func (p *port) setWriteDeadline(t time.Time) error {
	if err := p.ensureOpen(); err != nil {
		return err
	}
	return p.f.SetWriteDeadline(t)
}

func (p *port) getBytesToWrite() (int, error) {
	if err := p.ensureOpen(); err != nil {
		return 0, err
	}
	n, err := unix.IoctlGetInt(p.fd, unix.TIOCOUTQ)
	if err != nil {
		return 0, fmt.Errorf("getBytesToWrite failed: %w", err)
	}
	return n, nil
}

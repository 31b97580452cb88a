//go:build !linux && !darwin

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
	"time"

	"github.com/Gurux/gxcommon-go"
)

var errUnsupportedOS = errors.New("gxserialprobe: serial ports are not supported on this platform")

type port struct{}

func (p *port) isOpen() bool { return false }

func openPort(cfg *GXSerial) error { return errUnsupportedOS }

func (p *port) close() error { return nil }

func (p *port) wake() {}

func (p *port) setExclusive(on bool) error { return errUnsupportedOS }

func (p *port) setLine(gxcommon.BaudRate, int, gxcommon.Parity, gxcommon.StopBits) error {
	return errUnsupportedOS
}

func (p *port) read() ([]byte, error) { return nil, errUnsupportedOS }

func (p *port) write([]byte) (int, error) { return 0, errUnsupportedOS }

func (p *port) setWriteDeadline(time.Time) error { return errUnsupportedOS }

func (p *port) getBytesToWrite() (int, error) { return 0, errUnsupportedOS }

func getPortNames() ([]string, error) { return nil, errUnsupportedOS }

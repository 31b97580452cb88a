//go:build linux

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
	"fmt"
	"os"

	"github.com/Gurux/gxcommon-go"
	"golang.org/x/sys/unix"
)

// OpenPTY creates a pseudo-terminal pair. The returned master plays the
// remote device; the slave path can be opened with NewGXSerial.
func OpenPTY() (*os.File, string, error) {
	master, err := os.OpenFile("/dev/ptmx", os.O_RDWR|unix.O_NOCTTY, 0)
	if err != nil {
		return nil, "", err
	}
	rc, err := master.SyscallConn()
	if err != nil {
		_ = master.Close()
		return nil, "", err
	}
	var (
		n      uint32
		ctlErr error
	)
	// Control keeps the master in non-blocking mode so Close interrupts reads.
	err = rc.Control(func(sysfd uintptr) {
		fd := int(sysfd)
		if ctlErr = unix.IoctlSetPointerInt(fd, unix.TIOCSPTLCK, 0); ctlErr != nil {
			ctlErr = fmt.Errorf("unlockpt failed: %w", ctlErr)
			return
		}
		if n, ctlErr = unix.IoctlGetUint32(fd, unix.TIOCGPTN); ctlErr != nil {
			ctlErr = fmt.Errorf("ptsname failed: %w", ctlErr)
			return
		}
		// Raw from the start so nothing is echoed or translated before the slave is opened.
		if t, err := unix.IoctlGetTermios(fd, unix.TCGETS); err == nil {
			if makeRaw(t, 115200, 8, gxcommon.ParityNone, gxcommon.StopBitsOne) == nil {
				_ = unix.IoctlSetTermios(fd, unix.TCSETS, t)
			}
		}
	})
	if err == nil {
		err = ctlErr
	}
	if err != nil {
		_ = master.Close()
		return nil, "", err
	}
	return master, fmt.Sprintf("/dev/pts/%d", n), nil
}

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

import "errors"

var (
	// ErrTransport wraps any read or write failure on the link. It is fatal to a run.
	ErrTransport = errors.New("gxserialprobe: transport failure")

	// ErrTimeout is returned when a run does not complete within Options.Timeout.
	ErrTimeout = errors.New("gxserialprobe: run timed out")

	// ErrNotOpen is returned by serial I/O on a closed port.
	ErrNotOpen = errors.New("gxserialprobe: serial port not open")

	// ErrPTYUnsupported is returned by OpenPTY where pseudo-terminals are not available.
	ErrPTYUnsupported = errors.New("gxserialprobe: pseudo-terminal pairs are not supported on this platform")
)

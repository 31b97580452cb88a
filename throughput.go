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
	"time"
)

// Throughput is the end to end rate of one run.
type Throughput struct {
	Bits    int64
	Elapsed time.Duration
}

// NewThroughput returns the throughput of moving size bytes in elapsed.
func NewThroughput(size int, elapsed time.Duration) Throughput {
	return Throughput{Bits: int64(size) * 8, Elapsed: elapsed}
}

// Mbps returns the rate in megabits per second. It returns false when the
// elapsed time is not positive and the rate is undefined.
func (t Throughput) Mbps() (float64, bool) {
	if t.Elapsed <= 0 {
		return 0, false
	}
	return float64(t.Bits) / t.Elapsed.Seconds() / 1_000_000, true
}

func (t Throughput) String() string {
	v, ok := t.Mbps()
	if !ok {
		return "undefined"
	}
	return fmt.Sprintf("%.3f Mbit/s", v)
}

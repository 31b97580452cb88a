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
	"math/rand/v2"
	"strings"
)

// Alphabet is the set of characters the generated payload is drawn from.
const Alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Generate returns n random characters from Alphabet.
func Generate(n int) []byte {
	if n <= 0 {
		return []byte{}
	}
	ret := make([]byte, n)
	for i := range ret {
		ret[i] = Alphabet[rand.IntN(len(Alphabet))]
	}
	return ret
}

// Transform is the change the remote end applies to every byte it echoes back.
type Transform int

const (
	// TransformUpper expects the echo in upper case.
	TransformUpper Transform = iota
	// TransformLower expects the echo in lower case.
	TransformLower
	// TransformIdentity expects the echo unchanged, as from a loopback plug.
	TransformIdentity
)

var transformNames = map[Transform]string{
	TransformUpper:    "upper",
	TransformLower:    "lower",
	TransformIdentity: "identity",
}

func (t Transform) String() string {
	if s, ok := transformNames[t]; ok {
		return s
	}
	return fmt.Sprintf("Transform(%d)", int(t))
}

// ParseTransform parses a transform name. Matching is case insensitive.
func ParseTransform(value string) (Transform, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	for t, s := range transformNames {
		if s == v {
			return t, nil
		}
	}
	return 0, fmt.Errorf("invalid transform %q (use upper, lower or identity)", value)
}

// Apply returns a transformed copy of data. The result always has len(data) bytes.
func (t Transform) Apply(data []byte) []byte {
	ret := make([]byte, len(data))
	for i, c := range data {
		ret[i] = t.applyByte(c)
	}
	return ret
}

// ASCII only so that the length never changes.
func (t Transform) applyByte(c byte) byte {
	switch t {
	case TransformUpper:
		if 'a' <= c && c <= 'z' {
			return c - ('a' - 'A')
		}
	case TransformLower:
		if 'A' <= c && c <= 'Z' {
			return c + ('a' - 'A')
		}
	}
	return c
}

// Expected derives the payload the remote end should send back for tx.
func Expected(tx []byte, t Transform) []byte {
	return t.Apply(tx)
}

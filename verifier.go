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

import "bytes"

// Resync is the outcome of searching the expected payload for a mismatched frame.
type Resync struct {
	// Found is false when the frame occurs nowhere in the expected payload.
	Found bool
	// Offset is where the frame's bytes actually occur in the expected payload.
	Offset int
	// Skew is Offset minus the frame offset. Positive means the remote is ahead.
	Skew int
}

// Mismatch describes the first differing byte of a frame.
type Mismatch struct {
	// Position is the absolute stream position of the differing byte.
	Position    int
	Got         byte
	Want        byte
	FrameOffset int
	FrameLen    int
	Resync      Resync
}

// Overrun records bytes received past the end of the expected payload.
type Overrun struct {
	// Offset is the stream position of the first surplus byte.
	Offset int
	Length int
}

// Report is a snapshot of the verification state.
type Report struct {
	Expected   int
	Observed   int
	Frames     int
	Mismatches []Mismatch
	Overrun    int
}

// OK reports whether every expected byte arrived intact and nothing extra followed.
func (r Report) OK() bool {
	return len(r.Mismatches) == 0 && r.Overrun == 0 && r.Observed >= r.Expected
}

// FindOffset returns the first position where needle occurs verbatim in haystack.
func FindOffset(haystack, needle []byte) (int, bool) {
	if len(needle) == 0 {
		return 0, false
	}
	i := bytes.Index(haystack, needle)
	if i < 0 {
		return 0, false
	}
	return i, true
}

// Verifier compares received frames with the expected payload.
// It is not safe for concurrent use; the reading goroutine owns it.
type Verifier struct {
	expected []byte
	observer Observer

	observed   int
	frames     int
	overrun    int
	mismatches []Mismatch
}

// NewVerifier returns a verifier for expected. A nil observer discards events.
func NewVerifier(expected []byte, observer Observer) *Verifier {
	if observer == nil {
		observer = nopObserver{}
	}
	return &Verifier{expected: expected, observer: observer}
}

// Check verifies one frame and returns true once the expected length has been observed.
// Mismatches never stop verification.
func (v *Verifier) Check(f Frame) bool {
	v.frames++
	v.observer.OnFrame(f)

	data := f.Data
	if end := f.End(); end > len(v.expected) {
		start := max(f.Offset, len(v.expected))
		o := Overrun{Offset: start, Length: end - start}
		v.overrun += o.Length
		v.observer.OnOverrun(o)
		data = data[:len(data)-o.Length]
	}
	if len(data) != 0 {
		want := v.expected[f.Offset : f.Offset+len(data)]
		for i := range data {
			if data[i] != want[i] {
				m := Mismatch{
					Position:    f.Offset + i,
					Got:         data[i],
					Want:        want[i],
					FrameOffset: f.Offset,
					FrameLen:    len(f.Data),
				}
				if p, ok := FindOffset(v.expected, f.Data); ok {
					m.Resync = Resync{Found: true, Offset: p, Skew: p - f.Offset}
				}
				v.mismatches = append(v.mismatches, m)
				v.observer.OnMismatch(m)
				break
			}
		}
	}

	v.observed = f.End()
	return v.Done()
}

// Done reports whether the whole expected payload length has been observed.
func (v *Verifier) Done() bool {
	return v.observed >= len(v.expected)
}

// Report returns the current verification state.
func (v *Verifier) Report() Report {
	return Report{
		Expected:   len(v.expected),
		Observed:   v.observed,
		Frames:     v.frames,
		Mismatches: append([]Mismatch(nil), v.mismatches...),
		Overrun:    v.overrun,
	}
}

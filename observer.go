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
	"github.com/rs/zerolog"
	"golang.org/x/text/message"
)

// Observer receives verification events as they happen, from the reading goroutine.
type Observer interface {
	OnFrame(f Frame)
	OnMismatch(m Mismatch)
	OnOverrun(o Overrun)
}

type nopObserver struct{}

func (nopObserver) OnFrame(Frame)       {}
func (nopObserver) OnMismatch(Mismatch) {}
func (nopObserver) OnOverrun(Overrun)   {}

// LogObserver writes one log line per event. Frame progress is logged at
// debug level, anomalies at warn level.
type LogObserver struct {
	log zerolog.Logger
	p   *message.Printer
}

// NewLogObserver returns an observer logging through log with messages from p.
func NewLogObserver(log zerolog.Logger, p *message.Printer) *LogObserver {
	if p == nil {
		p = NewPrinter(DefaultLanguage)
	}
	return &LogObserver{log: log, p: p}
}

// OnFrame implements Observer.
func (o *LogObserver) OnFrame(f Frame) {
	o.log.Debug().
		Int("offset", f.Offset).
		Int("len", len(f.Data)).
		Msg(o.p.Sprintf("msg.packet", f.Offset, len(f.Data)))
}

// OnMismatch implements Observer.
func (o *LogObserver) OnMismatch(m Mismatch) {
	o.log.Warn().
		Int("position", m.Position).
		Uint8("got", m.Got).
		Uint8("want", m.Want).
		Msg(o.p.Sprintf("msg.wrong_data", m.Position, m.Got, m.Want))
	if m.Resync.Found {
		o.log.Warn().
			Int("corrected_offset", m.Resync.Offset).
			Int("frame_offset", m.FrameOffset).
			Int("skew", m.Resync.Skew).
			Msg(o.p.Sprintf("msg.correct_offset", m.Resync.Offset, m.FrameOffset, m.Resync.Skew))
		return
	}
	o.log.Warn().
		Int("frame_offset", m.FrameOffset).
		Int("frame_len", m.FrameLen).
		Msg(o.p.Sprintf("msg.no_resync", m.FrameOffset, m.FrameLen))
}

// OnOverrun implements Observer.
func (o *LogObserver) OnOverrun(ov Overrun) {
	o.log.Warn().
		Int("offset", ov.Offset).
		Int("len", ov.Length).
		Msg(o.p.Sprintf("msg.overrun", ov.Length, ov.Offset))
}

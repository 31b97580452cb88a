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
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultLanguage is used when no language is selected.
var DefaultLanguage = language.AmericanEnglish

// NewPrinter returns a printer for the diagnostic message catalog.
func NewPrinter(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

//nolint:errcheck
func init() {
	// --- English (default) ---
	message.SetString(language.AmericanEnglish, "msg.data_prepared", "Data prepared: %d bytes")
	message.SetString(language.AmericanEnglish, "msg.packet", "packet offset %d len %d")
	message.SetString(language.AmericanEnglish, "msg.wrong_data", "wrong data at %d: 0x%02x != 0x%02x")
	message.SetString(language.AmericanEnglish, "msg.correct_offset", "correct offset: %d, packet offset: %d (%d)")
	message.SetString(language.AmericanEnglish, "msg.no_resync", "no resynchronization possible for packet offset %d len %d")
	message.SetString(language.AmericanEnglish, "msg.overrun", "received %d bytes past the expected end at %d")
	message.SetString(language.AmericanEnglish, "msg.writer_finished", "writer finished")
	message.SetString(language.AmericanEnglish, "msg.reader_finished", "reader finished")
	message.SetString(language.AmericanEnglish, "msg.summary", "Time elapsed: %v, throughput is %s")
	message.SetString(language.AmericanEnglish, "msg.connecting_to", "Connecting to %s")
	message.SetString(language.AmericanEnglish, "msg.connected_to", "Connected to %s")
	message.SetString(language.AmericanEnglish, "msg.connect_failed", "connect to %s failed: %v")
	message.SetString(language.AmericanEnglish, "msg.connection_failed", "Connection failed: %v")
	message.SetString(language.AmericanEnglish, "msg.connection_closed", "Connection closed to %s")
	message.SetString(language.AmericanEnglish, "msg.no_serial_port_selected", "No serial port selected. Please select a serial port.")

	// --- Finnish (fi) ---
	message.SetString(language.Finnish, "msg.data_prepared", "Data valmisteltu: %d tavua")
	message.SetString(language.Finnish, "msg.packet", "paketti siirtymä %d pituus %d")
	message.SetString(language.Finnish, "msg.wrong_data", "väärä data kohdassa %d: 0x%02x != 0x%02x")
	message.SetString(language.Finnish, "msg.correct_offset", "oikea siirtymä: %d, paketin siirtymä: %d (%d)")
	message.SetString(language.Finnish, "msg.no_resync", "uudelleensynkronointi ei onnistu paketille %d pituus %d")
	message.SetString(language.Finnish, "msg.overrun", "vastaanotettiin %d tavua odotetun lopun %d jälkeen")
	message.SetString(language.Finnish, "msg.writer_finished", "kirjoittaja valmis")
	message.SetString(language.Finnish, "msg.reader_finished", "lukija valmis")
	message.SetString(language.Finnish, "msg.summary", "Kulunut aika: %v, läpäisy on %s")
	message.SetString(language.Finnish, "msg.connecting_to", "Yhdistetään kohteeseen %s")
	message.SetString(language.Finnish, "msg.connected_to", "Yhdistetty kohteeseen %s")
	message.SetString(language.Finnish, "msg.connect_failed", "Yhteyden muodostus kohteeseen %s epäonnistui: %v")
	message.SetString(language.Finnish, "msg.connection_failed", "Yhteyden muodostus epäonnistui: %v")
	message.SetString(language.Finnish, "msg.connection_closed", "Yhteys suljettu kohteeseen %s")
	message.SetString(language.Finnish, "msg.no_serial_port_selected", "Sarjaporttia ei ole valittu. Valitse sarjaportti.")
}

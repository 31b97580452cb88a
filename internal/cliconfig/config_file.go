package cliconfig

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
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	Port       string `toml:"port"`
	BaudRate   int    `toml:"baud_rate"`
	DataBits   int    `toml:"data_bits"`
	Parity     string `toml:"parity"`
	StopBits   string `toml:"stop_bits"`
	Exclusive  *bool  `toml:"exclusive"`
	Size       int    `toml:"size"`
	Transform  string `toml:"transform"`
	Timeout    string `toml:"timeout"`
	WaitDevice string `toml:"wait_device"`
	Trace      string `toml:"trace"`
	Lang       string `toml:"lang"`
	LogLevel   string `toml:"log_level"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// ApplyFileConfig applies configuration from a file to cfg.
// Flags that have been explicitly set (changed map) are left alone.
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("port", fc.Port, &cfg.Port)
	s.setString("parity", fc.Parity, &cfg.Parity)
	s.setString("stop-bits", fc.StopBits, &cfg.StopBits)
	s.setString("transform", fc.Transform, &cfg.Transform)
	s.setString("trace", fc.Trace, &cfg.Trace)
	s.setString("lang", fc.Lang, &cfg.Lang)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	s.setInt("baud", fc.BaudRate, &cfg.BaudRate)
	s.setInt("data-bits", fc.DataBits, &cfg.DataBits)
	s.setInt("size", fc.Size, &cfg.Size)

	s.setBool("exclusive", fc.Exclusive, &cfg.Exclusive)

	if err := s.setDuration("timeout", fc.Timeout, &cfg.Timeout); err != nil {
		return err
	}
	if err := s.setDuration("wait-device", fc.WaitDevice, &cfg.WaitDevice); err != nil {
		return err
	}
	return nil
}

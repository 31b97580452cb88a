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

import "os"

// EnvPrefix prefixes every environment variable read by ApplyEnvConfig.
const EnvPrefix = "GXPROBE_"

// ApplyEnvConfig applies GXPROBE_* environment variables to cfg. They
// override the config file but not explicitly set flags.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)
	env := func(name string) string { return os.Getenv(EnvPrefix + name) }

	s.setString("port", env("PORT"), &cfg.Port)
	s.setString("parity", env("PARITY"), &cfg.Parity)
	s.setString("stop-bits", env("STOP_BITS"), &cfg.StopBits)
	s.setString("transform", env("TRANSFORM"), &cfg.Transform)
	s.setString("trace", env("TRACE"), &cfg.Trace)
	s.setString("lang", env("LANG"), &cfg.Lang)
	s.setString("log-level", env("LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setIntFromString("baud", env("BAUD_RATE"), &cfg.BaudRate); err != nil {
		return err
	}
	if err := s.setIntFromString("data-bits", env("DATA_BITS"), &cfg.DataBits); err != nil {
		return err
	}
	if err := s.setIntFromString("size", env("SIZE"), &cfg.Size); err != nil {
		return err
	}
	s.setBoolFromString("exclusive", env("EXCLUSIVE"), &cfg.Exclusive)

	if err := s.setDuration("timeout", env("TIMEOUT"), &cfg.Timeout); err != nil {
		return err
	}
	if err := s.setDuration("wait-device", env("WAIT_DEVICE"), &cfg.WaitDevice); err != nil {
		return err
	}
	return nil
}

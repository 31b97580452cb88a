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
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Gurux/gxcommon-go"

	probe "github.com/Gurux/gxserialprobe-go"
)

// Config holds CLI configuration for gxserialprobe.
type Config struct {
	Port      string
	BaudRate  int
	DataBits  int
	Parity    string
	StopBits  string
	Exclusive bool

	Size      int
	Transform string
	Timeout   time.Duration

	WaitDevice time.Duration
	SelfTest   bool

	Trace    string
	Lang     string
	LogLevel string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Port:      probe.DefaultPort,
		BaudRate:  9600,
		DataBits:  8,
		Parity:    "None",
		StopBits:  "1",
		Size:      probe.DefaultSize,
		Transform: probe.TransformUpper.String(),
		Timeout:   time.Minute,
		LogLevel:  "debug",
	}
}

// Line holds the parsed serial line settings.
type Line struct {
	BaudRate gxcommon.BaudRate
	DataBits int
	Parity   gxcommon.Parity
	StopBits gxcommon.StopBits
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Port == "" && !c.SelfTest {
		return fmt.Errorf("port is required")
	}
	if c.Size <= 0 {
		return fmt.Errorf("size must be positive")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	if c.WaitDevice < 0 {
		return fmt.Errorf("wait-device must not be negative")
	}
	if _, err := c.Line(); err != nil {
		return err
	}
	if _, err := probe.ParseTransform(c.Transform); err != nil {
		return err
	}
	if c.Trace != "" {
		if _, err := gxcommon.TraceLevelParse(c.Trace); err != nil {
			return fmt.Errorf("parse trace: %w", err)
		}
	}
	return nil
}

// Line parses the serial line settings.
func (c *Config) Line() (Line, error) {
	parity, err := gxcommon.ParityParse(c.Parity)
	if err != nil {
		return Line{}, fmt.Errorf("parse parity: %w", err)
	}
	stopBits, err := parseStopBits(c.StopBits)
	if err != nil {
		return Line{}, fmt.Errorf("parse stop-bits: %w", err)
	}
	if c.BaudRate <= 0 {
		return Line{}, fmt.Errorf("baud rate must be positive")
	}
	if c.DataBits < 5 || c.DataBits > 8 {
		return Line{}, fmt.Errorf("invalid data-bits %d (must be 5..8)", c.DataBits)
	}
	return Line{
		BaudRate: gxcommon.BaudRate(c.BaudRate),
		DataBits: c.DataBits,
		Parity:   parity,
		StopBits: stopBits,
	}, nil
}

// parseStopBits accepts the numeric forms used on the command line as well
// as the gxcommon names.
func parseStopBits(value string) (gxcommon.StopBits, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "one":
		return gxcommon.StopBitsOne, nil
	case "2", "two":
		return gxcommon.StopBitsTwo, nil
	}
	return gxcommon.StopBitsParse(value)
}

// DefaultConfigPath returns ~/.gxserialprobe/config.toml, or "" without a home directory.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".gxserialprobe", "config.toml")
	}
	return ""
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}

// configSetter only applies values whose flag was not set explicitly.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// Accepts "true" and "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	v := strings.ToLower(strings.TrimSpace(value))
	*dst = v == "true" || v == "1"
}

package main

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
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	"github.com/Gurux/gxcommon-go"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"
	"golang.org/x/text/language"

	probe "github.com/Gurux/gxserialprobe-go"
	"github.com/Gurux/gxserialprobe-go/internal/cliconfig"
	"github.com/Gurux/gxserialprobe-go/internal/devwait"
)

const longHelp = `Send a random payload over a serial port and verify what the remote end
echoes back.

The remote end is expected to return every byte transformed (upper case by
default). Each received packet is checked against the expected payload; the
first wrong byte of a packet is reported together with the position where the
packet actually belongs. A summary with the elapsed time and the throughput is
printed when the whole payload has come back.`

var exampleUsage = strings.TrimSpace(`
  gxserialprobe /dev/ttyUSB0 --baud 115200
  gxserialprobe --self-test --size 100000
  gxserialprobe --list
`)

// errVerification makes the process exit with status 2.
var errVerification = errors.New("verification failed")

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func newLogger(level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("parse log-level: %w", err)
	}
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).Level(lvl).With().Timestamp().Logger(), nil
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var (
		cfgPath string
		list    bool
	)
	log, _ := newLogger("info")

	root := &cobra.Command{
		Use:           "gxserialprobe [tty]",
		Short:         "Verify and measure a serial link with an echoing remote end",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })
			if len(args) == 1 {
				cfg.Port = args[0]
				changed["port"] = true
			}

			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}
			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			var err error
			if log, err = newLogger(cfg.LogLevel); err != nil {
				return err
			}
			if list {
				return listPorts()
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return run(ctx, cfg, log)
		},
	}

	f := root.Flags()
	f.StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.gxserialprobe/config.toml)")
	f.BoolVar(&list, "list", false, "list available serial ports and exit")
	f.IntVarP(&cfg.BaudRate, "baud", "b", cfg.BaudRate, "baud rate")
	f.IntVarP(&cfg.DataBits, "data-bits", "d", cfg.DataBits, "data bits (5, 6, 7, 8)")
	f.StringVarP(&cfg.Parity, "parity", "p", cfg.Parity, "parity (None, Odd, Even, Mark, Space)")
	f.StringVar(&cfg.StopBits, "stop-bits", cfg.StopBits, "stop bits (1, 2)")
	f.BoolVar(&cfg.Exclusive, "exclusive", cfg.Exclusive, "open the port in exclusive mode")
	f.IntVarP(&cfg.Size, "size", "n", cfg.Size, "payload size in bytes")
	f.StringVar(&cfg.Transform, "transform", cfg.Transform, "what the remote end does to echoed bytes (upper, lower, identity)")
	f.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "bound for the whole run (0 disables)")
	f.DurationVar(&cfg.WaitDevice, "wait-device", cfg.WaitDevice, "wait this long for the device node to appear")
	f.BoolVar(&cfg.SelfTest, "self-test", cfg.SelfTest, "probe a built-in echoing pseudo-terminal instead of a device")
	f.StringVarP(&cfg.Trace, "trace", "t", cfg.Trace, "serial trace level")
	f.StringVar(&cfg.Lang, "lang", cfg.Lang, "language of the diagnostics (en, fi)")
	f.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug shows every packet)")

	if err := root.Execute(); err != nil {
		if errors.Is(err, errVerification) {
			log.Error().Msg(err.Error())
			os.Exit(2)
		}
		log.Error().Err(err).Msg("gxserialprobe")
		os.Exit(1)
	}
}

func listPorts() error {
	ports, err := probe.GetPortNames()
	if err != nil {
		return fmt.Errorf("get port names: %w", err)
	}
	for _, p := range ports {
		fmt.Println(p)
	}
	return nil
}

func run(ctx context.Context, cfg cliconfig.Config, log zerolog.Logger) error {
	line, err := cfg.Line()
	if err != nil {
		return err
	}
	transform, err := probe.ParseTransform(cfg.Transform)
	if err != nil {
		return err
	}
	tag := probe.DefaultLanguage
	if cfg.Lang != "" {
		if tag, err = language.Parse(cfg.Lang); err != nil {
			return fmt.Errorf("parse lang: %w", err)
		}
	}
	printer := probe.NewPrinter(tag)

	portName := cfg.Port
	if cfg.SelfTest {
		master, slave, err := probe.OpenPTY()
		if err != nil {
			return fmt.Errorf("self-test: %w", err)
		}
		defer master.Close()
		echoCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go func() {
			if err := probe.Echo(echoCtx, master, transform); err != nil && echoCtx.Err() == nil {
				log.Debug().Err(err).Msg("self-test echo stopped")
			}
		}()
		portName = slave
		log.Info().Str("port", slave).Msg("self-test pseudo-terminal ready")
	} else if cfg.WaitDevice > 0 {
		if err := devwait.Wait(ctx, portName, cfg.WaitDevice); err != nil {
			return err
		}
	}

	media := probe.NewGXSerial(portName, line.BaudRate, line.DataBits, line.Parity, line.StopBits)
	media.Localize(tag)
	media.SetLogger(log)
	if cfg.Trace != "" {
		tl, err := gxcommon.TraceLevelParse(cfg.Trace)
		if err != nil {
			return fmt.Errorf("parse trace: %w", err)
		}
		media.SetTrace(tl)
	}
	if err := media.Validate(); err != nil {
		return err
	}
	if err := media.SetExclusive(cfg.Exclusive); err != nil {
		return err
	}
	if err := media.Open(); err != nil {
		if ports, lerr := probe.GetPortNames(); lerr == nil && len(ports) != 0 {
			log.Info().Msg("available serial ports: " + strings.Join(ports, ", "))
		}
		return fmt.Errorf("open %s: %w", portName, err)
	}
	defer func() {
		if err := media.Close(); err != nil {
			log.Warn().Err(err).Msg("close failed")
		}
	}()
	log.Info().Str("settings", media.String()).Msg("port open")

	p := probe.NewProbe(probe.Options{
		Size:      cfg.Size,
		Transform: transform,
		Timeout:   cfg.Timeout,
		Logger:    log,
		Printer:   printer,
	})
	res, err := p.Run(ctx, media)
	if err != nil {
		return err
	}
	log.Info().
		Uint64("bytes_sent", media.GetBytesSent()).
		Uint64("bytes_received", media.GetBytesReceived()).
		Int("frames", res.Report.Frames).
		Int("mismatches", len(res.Report.Mismatches)).
		Int("overrun", res.Report.Overrun).
		Msg("run complete")
	if !res.Report.OK() {
		return fmt.Errorf("%w: %d mismatched packets, %d bytes overrun", errVerification, len(res.Report.Mismatches), res.Report.Overrun)
	}
	return nil
}

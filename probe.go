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
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/message"
)

// DefaultSize is the payload length used when Options.Size is zero.
const DefaultSize = 2000

// Options configure a Probe.
type Options struct {
	// Size is the number of bytes sent and expected back.
	Size int
	// Transform is what the remote end does to the echoed bytes.
	Transform Transform
	// Timeout bounds the whole run. Zero means no bound.
	Timeout time.Duration
	// Observer receives verification events. Nil logs them through Logger.
	Observer Observer
	Logger   zerolog.Logger
	Printer  *message.Printer
	// Payload overrides the generated transmit payload.
	Payload []byte
}

// Result describes a completed run.
type Result struct {
	Size       int
	Elapsed    time.Duration
	Report     Report
	Throughput Throughput
}

// Probe sends a known payload over a link and verifies what comes back.
type Probe struct {
	opts Options
	log  zerolog.Logger
	p    *message.Printer
}

// NewProbe returns a probe for opts.
func NewProbe(opts Options) *Probe {
	if opts.Size <= 0 && opts.Payload == nil {
		opts.Size = DefaultSize
	}
	if opts.Payload != nil {
		opts.Size = len(opts.Payload)
	}
	if opts.Printer == nil {
		opts.Printer = NewPrinter(DefaultLanguage)
	}
	if opts.Observer == nil {
		opts.Observer = NewLogObserver(opts.Logger, opts.Printer)
	}
	return &Probe{opts: opts, log: opts.Logger, p: opts.Printer}
}

// Run transmits the payload once over c while concurrently verifying the echo.
// It returns when the expected number of bytes has been received and the
// write has completed. A transport error on either half aborts the run.
func (pr *Probe) Run(ctx context.Context, c Conn) (Result, error) {
	tx := pr.opts.Payload
	if tx == nil {
		tx = Generate(pr.opts.Size)
	}
	expected := Expected(tx, pr.opts.Transform)
	pr.log.Info().Int("size", len(tx)).Stringer("transform", pr.opts.Transform).
		Msg(pr.p.Sprintf("msg.data_prepared", len(tx)))

	if pr.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, pr.opts.Timeout)
		defer cancel()
	}

	rxHalf, txHalf := Split(c)
	verifier := NewVerifier(expected, pr.opts.Observer)

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := pr.read(gctx, rxHalf, verifier); err != nil {
			return err
		}
		pr.log.Info().Msg(pr.p.Sprintf("msg.reader_finished"))
		return nil
	})
	g.Go(func() error {
		if err := NewFrameWriter(txHalf).Send(gctx, tx); err != nil {
			return fmt.Errorf("%w: write: %w", ErrTransport, err)
		}
		pr.log.Info().Msg(pr.p.Sprintf("msg.writer_finished"))
		return nil
	})
	err := g.Wait()
	elapsed := time.Since(start)

	res := Result{
		Size:       len(tx),
		Elapsed:    elapsed,
		Report:     verifier.Report(),
		Throughput: NewThroughput(len(tx), elapsed),
	}
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() != nil {
			return res, fmt.Errorf("%w after %v: %w", ErrTimeout, pr.opts.Timeout, err)
		}
		return res, err
	}
	pr.log.Info().Dur("elapsed", elapsed).Stringer("throughput", res.Throughput).
		Msg(pr.p.Sprintf("msg.summary", elapsed, res.Throughput))
	return res, nil
}

func (pr *Probe) read(ctx context.Context, rx Receiver, v *Verifier) error {
	r := NewFrameReader(rx)
	for !v.Done() {
		f, err := r.Next(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("%w: read: %w", ErrTransport, err)
		}
		v.Check(f)
	}
	return nil
}

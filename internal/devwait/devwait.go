// Package devwait waits for a device node to appear. USB serial adapters
// disappear and come back under the same by-id name when they re-enumerate.
package devwait

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
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrTimeout is returned when the device does not appear in time.
var ErrTimeout = errors.New("devwait: device did not appear")

// Wait blocks until path exists, ctx is done or timeout elapses.
// It returns at once if path already exists.
func Wait(ctx context.Context, path string, timeout time.Duration) error {
	if exists(path) {
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("devwait: create watcher: %w", err)
	}
	defer watcher.Close()

	watched := ""
	watch := func() error {
		dir := nearestDir(path)
		if dir == watched {
			return nil
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("devwait: watch %s: %w", dir, err)
		}
		watched = dir
		return nil
	}
	if err := watch(); err != nil {
		return err
	}
	// The node may have appeared between the first check and Add.
	if exists(path) {
		return nil
	}

	var deadline <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		deadline = timer.C
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-deadline:
			return fmt.Errorf("%w: %s after %v", ErrTimeout, path, timeout)
		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("devwait: watcher closed")
			}
			if event.Op&fsnotify.Create == 0 {
				continue
			}
			// by-id entries are symlinks created after their target.
			if exists(path) {
				return nil
			}
			// A missing parent such as /dev/serial/by-id was created.
			if err := watch(); err != nil {
				return err
			}
			if exists(path) {
				return nil
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("devwait: watcher closed")
			}
			return fmt.Errorf("devwait: %w", err)
		}
	}
}

// nearestDir returns the closest existing ancestor directory of path.
func nearestDir(path string) string {
	dir := filepath.Dir(filepath.Clean(path))
	for !exists(dir) {
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return dir
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

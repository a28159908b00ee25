// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package driver provides the [system.App] for the current platform.
package driver

import (
	"testing"

	"cogentcore.org/hello/system"
	"cogentcore.org/hello/system/driver/offscreen"
)

// NewApp returns a new [system.App] for the current platform. The offscreen
// app is returned when offscreenApp is true, when running tests, and on
// platforms without a desktop driver.
func NewApp(offscreenApp bool) system.App {
	if offscreenApp || testing.Testing() {
		return offscreen.NewApp()
	}
	return newPlatformApp()
}

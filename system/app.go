// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system provides the operating system interface used to
// open a native window, drive its graphics context, and poll for
// input events. Implementations live in the driver subpackages.
package system

import "cogentcore.org/hello/events"

// App represents the windowing and input subsystem of the OS.
// All methods must be called from the main thread.
type App interface {

	// Name returns the name of the underlying windowing library
	// and its version, for informational logging.
	Name() string

	// Init initializes the windowing subsystem, installing an error
	// callback that reports any errors it encounters.
	Init() error

	// Terminate shuts down the windowing subsystem, destroying any
	// remaining windows. It is safe to call even if [App.Init] failed.
	Terminate()

	// NewWindow creates a new window with the given options.
	// It returns an error if the window could not be created.
	NewWindow(opts *NewWindowOptions) (Window, error)

	// PrimaryScreen returns the current video mode of the primary
	// monitor, or nil if there is no monitor.
	PrimaryScreen() *Screen

	// PollEvents processes all pending input and window events
	// without blocking and returns them in the order they happened.
	PollEvents() []events.Event
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

// Window is a single native window with its own graphics context.
// All methods must be called from the main thread, and none of them
// may be called after [Window.Destroy].
type Window interface {
	Drawer

	// Title returns the title of the window.
	Title() string

	// Size returns the size of the window in screen coordinates.
	Size() image.Point

	// SetPos sets the position of the upper-left corner of the window
	// in screen coordinates.
	SetPos(pos image.Point)

	// Pos returns the position of the upper-left corner of the window.
	Pos() image.Point

	// Show makes the window visible.
	Show()

	// ShouldClose returns whether a close request has been made on
	// the window, either by the user or by [Window.SetShouldClose].
	ShouldClose() bool

	// SetShouldClose sets the should-close flag of the window.
	SetShouldClose(close bool)

	// MakeContextCurrent makes the graphics context of the window
	// current on the calling thread.
	MakeContextCurrent()

	// SetSwapInterval sets the number of screen refreshes to wait
	// between buffer swaps on the current context (1 = vsync).
	SetSwapInterval(interval int)

	// SwapBuffers presents the back buffer of the window.
	SwapBuffers()

	// Destroy destroys the window and its context.
	Destroy()
}

// Drawer is the minimal set of graphics calls made on the
// current context of a [Window].
type Drawer interface {

	// InitGraphics loads the graphics functions for the context that
	// is current on the calling thread. It must be called after
	// [Window.MakeContextCurrent] and before any other Drawer method.
	InitGraphics() error

	// ClearColor sets the color used by [Drawer.Clear], as RGBA
	// components in [0, 1].
	ClearColor(color mgl32.Vec4)

	// Clear clears the color and depth buffers.
	Clear()
}

// NewWindowOptions are the options used when creating a new [Window].
type NewWindowOptions struct {

	// Title is the title of the window.
	Title string

	// Size is the size of the window in screen coordinates.
	Size image.Point

	// Visible is whether the window is shown on creation.
	// Windows that are positioned after creation should start hidden.
	Visible bool

	// Resizable is whether the user can resize the window.
	Resizable bool
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hello

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

// Config contains the compiled-in settings of the window and its loop.
type Config struct {

	// Title is the title of the window.
	Title string

	// Size is the fixed initial size of the window.
	Size image.Point

	// ClearColor is the RGBA color the window is cleared to every frame.
	ClearColor mgl32.Vec4

	// SwapInterval is the number of screen refreshes to wait
	// between buffer swaps; 1 locks presentation to vsync.
	SwapInterval int
}

// DefaultConfig returns the default config: a 300x300 window titled
// "Hello World!" that is cleared to opaque red at vsync.
func DefaultConfig() *Config {
	return &Config{
		Title:        "Hello World!",
		Size:         image.Point{300, 300},
		ClearColor:   mgl32.Vec4{1, 0, 0, 1},
		SwapInterval: 1,
	}
}

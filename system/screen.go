// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import "image"

// Screen contains the current video mode of a monitor.
type Screen struct {

	// Name is the human-readable name of the monitor.
	Name string

	// Size is the width and height of the monitor in screen coordinates.
	Size image.Point

	// RefreshRate is the refresh rate of the monitor in Hz.
	RefreshRate int
}

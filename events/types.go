// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Types determines the type of an input or window event.
type Types int32

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// KeyDown is when a key is pressed down, including auto-repeat.
	KeyDown

	// KeyUp is when a key is released.
	KeyUp

	// WindowClose is sent when the user asks the window manager to
	// close the window (e.g., the close button on the title bar).
	WindowClose
)

func (tp Types) String() string {
	switch tp {
	case KeyDown:
		return "KeyDown"
	case KeyUp:
		return "KeyUp"
	case WindowClose:
		return "WindowClose"
	default:
		return "UnknownType"
	}
}

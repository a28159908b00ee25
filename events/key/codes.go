// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package key defines the physical key codes reported in key events.
package key

// Code is the identity of a physical key, independent of the keyboard
// layout and of any modifiers held at the time.
type Code int32

const (
	// CodeUnknown is any key that has no named code here.
	CodeUnknown Code = 0

	CodeEscape Code = 41
)

func (c Code) String() string {
	switch c {
	case CodeEscape:
		return "Escape"
	default:
		return "Unknown"
	}
}

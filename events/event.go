// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the discrete input and window events
// returned by a [system.App] when polling for events.
package events

import (
	"fmt"

	"cogentcore.org/hello/events/key"
)

// Event is one discrete input or window event.
type Event struct {

	// Type is the type of event.
	Type Types

	// Code is the physical key for key events, and
	// [key.CodeUnknown] for everything else.
	Code key.Code
}

// NewKey returns a new key event of the given type for the given key.
func NewKey(typ Types, code key.Code) Event {
	return Event{Type: typ, Code: code}
}

// NewWindowClose returns a new [WindowClose] event.
func NewWindowClose() Event {
	return Event{Type: WindowClose}
}

// IsKeyUp returns whether this is the release of the given key.
func (ev Event) IsKeyUp(code key.Code) bool {
	return ev.Type == KeyUp && ev.Code == code
}

func (ev Event) String() string {
	if ev.Type == KeyDown || ev.Type == KeyUp {
		return fmt.Sprintf("%v{Code: %v}", ev.Type, ev.Code)
	}
	return ev.Type.String()
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package desktop

import (
	"cogentcore.org/hello/events"
	"cogentcore.org/hello/events/key"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// KeyEvent is the glfw key callback; it queues a physical key event.
func (w *Window) KeyEvent(gw *glfw.Window, ky glfw.Key, scancode int, action glfw.Action, mod glfw.ModifierKey) {
	w.App.Event.Send(events.NewKey(GlfwEventType(action), GlfwKeyCode(ky)))
}

// CloseReq is the glfw close callback, called after glfw has
// already set the should-close flag of the window.
func (w *Window) CloseReq(gw *glfw.Window) {
	w.App.Event.Send(events.NewWindowClose())
}

// GlfwEventType returns the key event type for the given glfw action.
func GlfwEventType(action glfw.Action) events.Types {
	if action == glfw.Release {
		return events.KeyUp
	}
	return events.KeyDown // Press and Repeat
}

// GlfwKeyCode returns the [key.Code] for the given glfw key.
func GlfwKeyCode(kcode glfw.Key) key.Code {
	switch kcode {
	case glfw.KeyEscape:
		return key.CodeEscape
	default:
		return key.CodeUnknown
	}
}

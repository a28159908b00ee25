// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

// Package desktop implements [system.App] on desktop platforms
// using GLFW for windowing and input, and OpenGL for graphics.
package desktop

import (
	"fmt"
	"image"
	"log/slog"

	"cogentcore.org/hello/base/errors"
	"cogentcore.org/hello/events"
	"cogentcore.org/hello/system"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// App is the [system.App] for the desktop platform.
// It supports a single window at a time.
type App struct {

	// Win is the current window, if any.
	Win *Window

	// Event is the queue filled by the window callbacks
	// during [App.PollEvents].
	Event events.Queue
}

// NewApp returns a new desktop app. The returned app must be used only
// from the main thread, which must be locked with [runtime.LockOSThread].
func NewApp() *App {
	return &App{}
}

func (a *App) Name() string {
	return "GLFW " + glfw.GetVersionString()
}

// Init initializes glfw. The glfw binding installs its own error
// callback on the C side, which turns glfw errors into the errors
// returned here and by [App.NewWindow]; those are logged as well.
// IMPORTANT: must be called on the main initial thread!
func (a *App) Init() error {
	if err := glfw.Init(); err != nil {
		return errors.Log(fmt.Errorf("glfw.Init: %w", err))
	}
	slog.Debug("initialized glfw", "version", glfw.GetVersionString())
	return nil
}

// Terminate shuts down glfw, destroying any remaining window.
// IMPORTANT: must be called on the main initial thread!
func (a *App) Terminate() {
	a.Win = nil
	glfw.Terminate()
}

func (a *App) NewWindow(opts *system.NewWindowOptions) (system.Window, error) {
	if a.Win != nil {
		return nil, errors.New("desktop: only one window is supported")
	}
	glw, err := newGlfwWindow(opts)
	if err != nil {
		return nil, errors.Log(fmt.Errorf("glfw.CreateWindow: %w", err))
	}
	if glw == nil {
		return nil, errors.Log(errors.New("glfw.CreateWindow: no window returned"))
	}
	w := &Window{
		App:   a,
		Glw:   glw,
		title: opts.Title,
	}
	glw.SetKeyCallback(w.KeyEvent)
	glw.SetCloseCallback(w.CloseReq)
	a.Win = w
	return w, nil
}

// newGlfwWindow sets the window hints from the given options
// and creates the glfw window; must be run on main.
func newGlfwWindow(opts *system.NewWindowOptions) (*glfw.Window, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Visible, glfwBool(opts.Visible)) // hidden is needed to position
	glfw.WindowHint(glfw.Resizable, glfwBool(opts.Resizable))
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	return glfw.CreateWindow(opts.Size.X, opts.Size.Y, opts.Title, nil, nil)
}

func glfwBool(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

func (a *App) PrimaryScreen() *system.Screen {
	mon := glfw.GetPrimaryMonitor()
	if mon == nil {
		slog.Error("desktop PrimaryScreen: no monitor found")
		return nil
	}
	vm := mon.GetVideoMode()
	if vm == nil {
		slog.Error("desktop PrimaryScreen: no video mode", "monitor", mon.GetName())
		return nil
	}
	return &system.Screen{
		Name:        mon.GetName(),
		Size:        image.Point{vm.Width, vm.Height},
		RefreshRate: vm.RefreshRate,
	}
}

// PollEvents calls [glfw.PollEvents], which synchronously runs the window
// callbacks that fill [App.Event], and then drains the queue.
func (a *App) PollEvents() []events.Event {
	glfw.PollEvents()
	return a.Event.Drain()
}

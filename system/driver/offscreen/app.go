// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package offscreen implements a headless [system.App] that keeps all
// of its state in memory and records every call made on it, in order.
// It is used for testing and for running without a display.
package offscreen

import (
	"fmt"
	"image"
	"strings"

	"cogentcore.org/hello/base/errors"
	"cogentcore.org/hello/events"
	"cogentcore.org/hello/system"
)

// App is the [system.App] for the offscreen platform.
type App struct {

	// Scrn is the screen returned by [App.PrimaryScreen];
	// nil means there is no monitor.
	Scrn *system.Screen

	// InitErr, if non-nil, is returned by [App.Init].
	InitErr error

	// NewWindowErr, if non-nil, is returned by [App.NewWindow].
	NewWindowErr error

	// InitGraphicsErr, if non-nil, is returned by [Window.InitGraphics].
	InitGraphicsErr error

	// Script returns the events to report for the given call to
	// [App.PollEvents], counting from 0. It may be nil.
	Script func(poll int) []events.Event

	// Calls is the log of every call made on the app and its window,
	// with arguments where relevant, in the order they were made.
	Calls []string

	// Win is the current window, if any.
	Win *Window

	// NPolls is the number of calls to [App.PollEvents] so far.
	NPolls int

	// NTerminate is the number of calls to [App.Terminate] so far.
	NTerminate int

	inited bool
}

// DefaultScreen is the screen of a new [App].
var DefaultScreen = system.Screen{Name: "offscreen", Size: image.Point{1920, 1080}, RefreshRate: 60}

// NewApp returns a new offscreen app with a copy of [DefaultScreen]
// as its primary screen.
func NewApp() *App {
	sc := DefaultScreen
	return &App{Scrn: &sc}
}

func (a *App) record(format string, args ...any) {
	a.Calls = append(a.Calls, fmt.Sprintf(format, args...))
}

// Called returns the number of recorded calls starting with the given prefix.
func (a *App) Called(prefix string) int {
	n := 0
	for _, c := range a.Calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

// Count returns the number of recorded calls exactly equal to the given call.
func (a *App) Count(call string) int {
	n := 0
	for _, c := range a.Calls {
		if c == call {
			n++
		}
	}
	return n
}

// Index returns the index of the first recorded call starting with
// the given prefix, or -1 if there is none.
func (a *App) Index(prefix string) int {
	for i, c := range a.Calls {
		if strings.HasPrefix(c, prefix) {
			return i
		}
	}
	return -1
}

func (a *App) Name() string {
	return "offscreen"
}

func (a *App) Init() error {
	a.record("Init")
	if a.InitErr != nil {
		return a.InitErr
	}
	a.inited = true
	return nil
}

func (a *App) Terminate() {
	a.record("Terminate")
	a.NTerminate++
	a.inited = false
	a.Win = nil
}

func (a *App) NewWindow(opts *system.NewWindowOptions) (system.Window, error) {
	a.record("NewWindow %q %v visible=%v resizable=%v", opts.Title, opts.Size, opts.Visible, opts.Resizable)
	if a.NewWindowErr != nil {
		return nil, a.NewWindowErr
	}
	if !a.inited {
		return nil, errors.New("offscreen: NewWindow called before Init")
	}
	if a.Win != nil {
		return nil, errors.New("offscreen: only one window is supported")
	}
	w := &Window{
		App:     a,
		Opts:    *opts,
		Visible: opts.Visible,
	}
	a.Win = w
	return w, nil
}

func (a *App) PrimaryScreen() *system.Screen {
	a.record("PrimaryScreen")
	return a.Scrn
}

func (a *App) PollEvents() []events.Event {
	a.record("PollEvents")
	poll := a.NPolls
	a.NPolls++
	if a.Script == nil {
		return nil
	}
	return a.Script(poll)
}

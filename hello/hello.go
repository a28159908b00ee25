// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hello opens a single window centered on the primary screen
// and clears it to a fixed color every frame until the window is asked
// to close, either by releasing Escape or through the window manager.
package hello

import (
	"fmt"
	"image"
	"log/slog"

	"cogentcore.org/hello/base/errors"
	"cogentcore.org/hello/events"
	"cogentcore.org/hello/events/key"
	"cogentcore.org/hello/system"
)

var (
	// ErrSubsystemInit is returned by [Run] when the windowing
	// subsystem fails to initialize.
	ErrSubsystemInit = errors.New("unable to initialize the windowing system")

	// ErrWindowCreation is returned by [Run] when the window
	// could not be created.
	ErrWindowCreation = errors.New("failed to create the window")

	// ErrGraphicsInit is returned by [Run] when the graphics
	// functions could not be loaded for the window context.
	ErrGraphicsInit = errors.New("failed to initialize graphics")
)

// Run initializes the given app, opens a window configured by cfg,
// and clears and presents it every frame until it should close.
// The window is destroyed and the app terminated on every return
// path, including initialization failures, in that order.
// It returns the number of frames that were presented.
func Run(app system.App, cfg *Config) (frames int, err error) {
	defer app.Terminate()
	win, err := initialize(app, cfg)
	if err != nil {
		return 0, err
	}
	defer win.Destroy()
	return runLoop(app, win, cfg)
}

func initialize(app system.App, cfg *Config) (system.Window, error) {
	if err := app.Init(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSubsystemInit, err)
	}
	win, err := app.NewWindow(&system.NewWindowOptions{
		Title:     cfg.Title,
		Size:      cfg.Size,
		Visible:   false,
		Resizable: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWindowCreation, err)
	}
	if win == nil {
		return nil, ErrWindowCreation
	}

	if sc := app.PrimaryScreen(); sc != nil {
		pos := CenterPos(sc.Size, cfg.Size)
		win.SetPos(pos)
		slog.Debug("centered window", "screen", sc.Name, "screenSize", sc.Size, "pos", pos)
	} else {
		slog.Warn("no primary screen; leaving window at its default position")
	}

	win.MakeContextCurrent()
	win.SetSwapInterval(cfg.SwapInterval)
	win.Show()
	return win, nil
}

func runLoop(app system.App, win system.Window, cfg *Config) (int, error) {
	if err := win.InitGraphics(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrGraphicsInit, err)
	}
	win.ClearColor(cfg.ClearColor)

	frames := 0
	for !win.ShouldClose() {
		win.Clear()
		win.SwapBuffers()
		frames++
		HandleEvents(win, app.PollEvents())
	}
	slog.Debug("window closed", "frames", frames)
	return frames, nil
}

// HandleEvents marks the window as should-close when the events contain
// a release of Escape or a window close request. The flag is only set
// if it is not already set. It returns whether the flag was set.
func HandleEvents(win system.Window, evs []events.Event) bool {
	for _, ev := range evs {
		if win.ShouldClose() {
			return false
		}
		if ev.IsKeyUp(key.CodeEscape) || ev.Type == events.WindowClose {
			slog.Debug("close requested", "event", ev)
			win.SetShouldClose(true)
			return true
		}
	}
	return false
}

// CenterPos returns the position of a window of the given size
// that centers it on a screen of the given size.
func CenterPos(screen, size image.Point) image.Point {
	return screen.Sub(size).Div(2)
}

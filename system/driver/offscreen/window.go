// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package offscreen

import (
	"image"

	"cogentcore.org/hello/system"
	"github.com/go-gl/mathgl/mgl32"
)

// Window is the [system.Window] for the offscreen platform.
type Window struct {

	// App is the app that created the window.
	App *App

	// Opts are the options the window was created with.
	Opts system.NewWindowOptions

	// Position is the current position of the window.
	Position image.Point

	// Visible is whether the window is currently shown.
	Visible bool

	// Color is the current clear color.
	Color mgl32.Vec4

	// SwapInterval is the current swap interval.
	SwapInterval int

	// NFrames is the number of buffer swaps so far.
	NFrames int

	// NSetShouldClose is the number of times the should-close
	// flag has been set to true.
	NSetShouldClose int

	// Destroyed is whether [Window.Destroy] has been called.
	Destroyed bool

	shouldClose bool
}

func (w *Window) Title() string {
	return w.Opts.Title
}

func (w *Window) Size() image.Point {
	return w.Opts.Size
}

func (w *Window) SetPos(pos image.Point) {
	w.App.record("SetPos %v", pos)
	w.Position = pos
}

func (w *Window) Pos() image.Point {
	return w.Position
}

func (w *Window) Show() {
	w.App.record("Show")
	w.Visible = true
}

func (w *Window) ShouldClose() bool {
	return w.shouldClose
}

func (w *Window) SetShouldClose(close bool) {
	w.App.record("SetShouldClose %v", close)
	if close {
		w.NSetShouldClose++
	}
	w.shouldClose = close
}

func (w *Window) MakeContextCurrent() {
	w.App.record("MakeContextCurrent")
}

func (w *Window) SetSwapInterval(interval int) {
	w.App.record("SetSwapInterval %d", interval)
	w.SwapInterval = interval
}

func (w *Window) SwapBuffers() {
	w.App.record("SwapBuffers")
	w.NFrames++
}

func (w *Window) Destroy() {
	w.App.record("Destroy")
	w.Destroyed = true
	if w.App.Win == w {
		w.App.Win = nil
	}
}

func (w *Window) InitGraphics() error {
	w.App.record("InitGraphics")
	return w.App.InitGraphicsErr
}

func (w *Window) ClearColor(color mgl32.Vec4) {
	w.App.record("ClearColor %v", color)
	w.Color = color
}

func (w *Window) Clear() {
	w.App.record("Clear")
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package desktop

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// Window is the [system.Window] for the desktop platform.
type Window struct {

	// App is the app that created the window.
	App *App

	// Glw is the glfw window associated with this window.
	Glw *glfw.Window

	title string
}

func (w *Window) Title() string {
	return w.title
}

func (w *Window) Size() image.Point {
	x, y := w.Glw.GetSize()
	return image.Point{x, y}
}

func (w *Window) SetPos(pos image.Point) {
	w.Glw.SetPos(pos.X, pos.Y)
}

func (w *Window) Pos() image.Point {
	x, y := w.Glw.GetPos()
	return image.Point{x, y}
}

func (w *Window) Show() {
	w.Glw.Show()
}

func (w *Window) ShouldClose() bool {
	return w.Glw.ShouldClose()
}

func (w *Window) SetShouldClose(close bool) {
	w.Glw.SetShouldClose(close)
}

func (w *Window) MakeContextCurrent() {
	w.Glw.MakeContextCurrent()
}

// SetSwapInterval sets the swap interval of the current context,
// which must be the context of this window.
func (w *Window) SetSwapInterval(interval int) {
	glfw.SwapInterval(interval)
}

func (w *Window) SwapBuffers() {
	w.Glw.SwapBuffers()
}

func (w *Window) Destroy() {
	w.Glw.Destroy()
	if w.App.Win == w {
		w.App.Win = nil
	}
}

// InitGraphics loads the OpenGL functions for the current context.
func (w *Window) InitGraphics() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl.Init: %w", err)
	}
	slog.Debug("initialized OpenGL", "version", gl.GoStr(gl.GetString(gl.VERSION)))
	return nil
}

func (w *Window) ClearColor(color mgl32.Vec4) {
	gl.ClearColor(color.X(), color.Y(), color.Z(), color.W())
}

func (w *Window) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

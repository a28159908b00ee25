// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package offscreen

import (
	"image"
	"testing"

	"cogentcore.org/hello/base/errors"
	"cogentcore.org/hello/events"
	"cogentcore.org/hello/system"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ system.App    = (*App)(nil)
	_ system.Window = (*Window)(nil)
)

func TestNewWindow(t *testing.T) {
	a := NewApp()
	opts := &system.NewWindowOptions{Title: "test", Size: image.Pt(300, 200), Resizable: true}

	_, err := a.NewWindow(opts)
	assert.Error(t, err, "NewWindow before Init")

	require.NoError(t, a.Init())
	w, err := a.NewWindow(opts)
	require.NoError(t, err)
	assert.Equal(t, "test", w.Title())
	assert.Equal(t, image.Pt(300, 200), w.Size())
	assert.False(t, w.ShouldClose())
	assert.Same(t, a.Win, w)

	_, err = a.NewWindow(opts)
	assert.Error(t, err, "second window")

	w.Destroy()
	assert.Nil(t, a.Win)
	a.Terminate()
	assert.Equal(t, 1, a.NTerminate)
	assert.Equal(t, []string{
		"NewWindow \"test\" (300,200) visible=false resizable=true",
		"Init",
		"NewWindow \"test\" (300,200) visible=false resizable=true",
		"NewWindow \"test\" (300,200) visible=false resizable=true",
		"Destroy",
		"Terminate",
	}, a.Calls)
}

func TestErrors(t *testing.T) {
	errInit := errors.New("init failed")
	a := NewApp()
	a.InitErr = errInit
	assert.Equal(t, errInit, a.Init())

	errWin := errors.New("no window")
	a = NewApp()
	a.NewWindowErr = errWin
	require.NoError(t, a.Init())
	w, err := a.NewWindow(&system.NewWindowOptions{})
	assert.Nil(t, w)
	assert.Equal(t, errWin, err)

	errGL := errors.New("no gl")
	a = NewApp()
	a.InitGraphicsErr = errGL
	require.NoError(t, a.Init())
	w, err = a.NewWindow(&system.NewWindowOptions{})
	require.NoError(t, err)
	assert.Equal(t, errGL, w.InitGraphics())
}

func TestWindowState(t *testing.T) {
	a := NewApp()
	require.NoError(t, a.Init())
	sw, err := a.NewWindow(&system.NewWindowOptions{Size: image.Pt(10, 10)})
	require.NoError(t, err)
	w := sw.(*Window)

	w.SetPos(image.Pt(3, 4))
	assert.Equal(t, image.Pt(3, 4), w.Pos())
	w.Show()
	assert.True(t, w.Visible)
	w.SetSwapInterval(1)
	assert.Equal(t, 1, w.SwapInterval)
	w.SwapBuffers()
	w.SwapBuffers()
	assert.Equal(t, 2, w.NFrames)

	w.SetShouldClose(true)
	assert.True(t, w.ShouldClose())
	w.SetShouldClose(false)
	assert.False(t, w.ShouldClose())
	assert.Equal(t, 1, w.NSetShouldClose)

	assert.Equal(t, 2, a.Called("SwapBuffers"))
	w.ClearColor(mgl32.Vec4{0, 0, 1, 1})
	w.Clear()
	assert.Equal(t, 2, a.Called("Clear"))
	assert.Equal(t, 1, a.Count("Clear"))
	assert.Equal(t, 0, a.Count("ClearColor"))
	assert.Equal(t, a.Index("SetPos"), a.Index("Show")-1)
	assert.Equal(t, -1, a.Index("Destroy"))
}

func TestScreen(t *testing.T) {
	a := NewApp()
	sc := a.PrimaryScreen()
	require.NotNil(t, sc)
	assert.Equal(t, image.Pt(1920, 1080), sc.Size)

	// NewApp copies DefaultScreen
	sc.Size = image.Pt(1, 1)
	assert.Equal(t, image.Pt(1920, 1080), DefaultScreen.Size)

	a.Scrn = nil
	assert.Nil(t, a.PrimaryScreen())
}

func TestPollEvents(t *testing.T) {
	a := NewApp()
	assert.Nil(t, a.PollEvents())

	a.Script = func(poll int) []events.Event {
		if poll == 2 {
			return []events.Event{events.NewWindowClose()}
		}
		return nil
	}
	assert.Nil(t, a.PollEvents()) // poll 1
	assert.Equal(t, []events.Event{events.NewWindowClose()}, a.PollEvents())
	assert.Equal(t, 3, a.NPolls)
}

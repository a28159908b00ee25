// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"cogentcore.org/hello/base/errors"
	"cogentcore.org/hello/system/driver/offscreen"
	"github.com/stretchr/testify/assert"
)

func TestRunOffscreen(t *testing.T) {
	assert.Equal(t, 0, run([]string{"--offscreen", "--frames", "5", "-q"}))
	assert.Equal(t, 0, run([]string{"-vv"}), "tests always use the offscreen driver")
	assert.Equal(t, 2, run([]string{"--bogus"}))
	assert.Equal(t, 2, run([]string{"-nogui"}), "headless runs use --offscreen")
	assert.Equal(t, 0, run([]string{"--help"}))
}

func TestRunAppExitCodes(t *testing.T) {
	a := offscreen.NewApp()
	a.Script = escapeAfter(4)
	assert.Equal(t, 0, runApp(a))
	assert.Equal(t, 4, a.Count("SwapBuffers"))

	a = offscreen.NewApp()
	a.InitErr = errors.New("no display")
	assert.Equal(t, 1, runApp(a))
	assert.Equal(t, 1, a.NTerminate)
}

func TestEscapeAfter(t *testing.T) {
	s := escapeAfter(3)
	assert.Nil(t, s(0))
	assert.Nil(t, s(1))
	assert.Len(t, s(2), 1)

	s = escapeAfter(0)
	assert.Len(t, s(0), 1)
}

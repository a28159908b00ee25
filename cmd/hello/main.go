// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command hello opens a 300x300 window centered on the primary screen
// and clears it to red until the window is closed or Escape is released.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"cogentcore.org/hello/base/errors"
	"cogentcore.org/hello/base/logx"
	"cogentcore.org/hello/events"
	"cogentcore.org/hello/events/key"
	"cogentcore.org/hello/hello"
	"cogentcore.org/hello/system"
	"cogentcore.org/hello/system/driver"
	"cogentcore.org/hello/system/driver/offscreen"
	"github.com/spf13/pflag"
)

func init() {
	// glfw and the GL context must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := pflag.NewFlagSet("hello", pflag.ContinueOnError)
	verbose := fs.CountP("verbose", "v", "show info messages; -vv also shows debug messages")
	quiet := fs.BoolP("quiet", "q", false, "only show errors")
	offscreenApp := fs.Bool("offscreen", false, "run without a display, releasing Escape after --frames frames")
	frames := fs.Int("frames", 60, "number of frames to present in --offscreen mode")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	logx.UserLevel = logx.LevelFromFlags(*verbose > 1, *verbose == 1, *quiet)
	logx.SetDefaultLogger()

	app := driver.NewApp(*offscreenApp)
	if oa, ok := app.(*offscreen.App); ok {
		oa.Script = escapeAfter(*frames)
	}
	return runApp(app)
}

func runApp(app system.App) int {
	slog.Info("Hello " + app.Name() + "!")
	n, err := hello.Run(app, hello.DefaultConfig())
	if err != nil {
		slog.Error("hello failed", "err", err)
		return 1
	}
	slog.Info("goodbye", "frames", n)
	return 0
}

// escapeAfter returns an offscreen event script that releases Escape
// on the poll following the given number of frames.
func escapeAfter(frames int) func(poll int) []events.Event {
	return func(poll int) []events.Event {
		if poll < frames-1 {
			return nil
		}
		return []events.Event{events.NewKey(events.KeyUp, key.CodeEscape)}
	}
}

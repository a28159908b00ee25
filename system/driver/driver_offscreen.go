// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build offscreen || !((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package driver

import (
	"cogentcore.org/hello/system"
	"cogentcore.org/hello/system/driver/offscreen"
)

func newPlatformApp() system.App {
	return offscreen.NewApp()
}

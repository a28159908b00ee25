// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package key

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeString(t *testing.T) {
	assert.Equal(t, "Escape", CodeEscape.String())
	assert.Equal(t, "Unknown", CodeUnknown.String())
	assert.Equal(t, "Unknown", Code(1234).String())
}

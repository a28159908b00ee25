// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errTest = New("test error")

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))
	assert.Equal(t, errTest, Log(errTest))
}

func TestIsWrapped(t *testing.T) {
	err := fmt.Errorf("opening window: %w", errTest)
	assert.True(t, Is(err, errTest))
	assert.False(t, Is(New("other"), errTest))
}

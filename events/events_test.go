// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"testing"

	"cogentcore.org/hello/events/key"
	"github.com/stretchr/testify/assert"
)

func TestQueue(t *testing.T) {
	q := &Queue{}
	assert.Equal(t, 0, q.Len())
	assert.Nil(t, q.Drain())

	q.Send(NewKey(KeyDown, key.CodeEscape))
	q.Send(NewKey(KeyUp, key.CodeEscape))
	q.Send(NewWindowClose())
	assert.Equal(t, 3, q.Len())

	evs := q.Drain()
	assert.Equal(t, []Event{NewKey(KeyDown, key.CodeEscape), NewKey(KeyUp, key.CodeEscape), NewWindowClose()}, evs)
	assert.Equal(t, 0, q.Len())
	assert.Nil(t, q.Drain())
}

func TestIsKeyUp(t *testing.T) {
	assert.True(t, NewKey(KeyUp, key.CodeEscape).IsKeyUp(key.CodeEscape))
	assert.False(t, NewKey(KeyDown, key.CodeEscape).IsKeyUp(key.CodeEscape))
	assert.False(t, NewKey(KeyUp, key.CodeUnknown).IsKeyUp(key.CodeEscape))
	assert.False(t, NewWindowClose().IsKeyUp(key.CodeEscape))
}

func TestEventString(t *testing.T) {
	assert.Equal(t, "KeyUp{Code: Escape}", NewKey(KeyUp, key.CodeEscape).String())
	assert.Equal(t, "WindowClose", NewWindowClose().String())
	assert.Equal(t, "UnknownType", Event{}.String())
}

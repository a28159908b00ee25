// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Queue is a FIFO event queue. It is filled by the driver callbacks
// while events are being polled and drained by the caller afterward,
// all on the main thread, so it is not safe for concurrent use.
type Queue struct {
	events []Event
}

// Send adds an event to the end of the queue.
func (q *Queue) Send(ev Event) {
	q.events = append(q.events, ev)
}

// Drain removes and returns all of the events in the queue,
// in the order they were sent. It returns nil if the queue is empty.
func (q *Queue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	evs := q.events
	q.events = nil
	return evs
}

// Len returns the length of the queue.
func (q *Queue) Len() int {
	return len(q.events)
}

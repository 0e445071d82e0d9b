// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrorHub_FanOut verifies every subscriber sees a published event.
func TestErrorHub_FanOut(t *testing.T) {
	hub := NewErrorHub()
	a := hub.Subscribe()
	b := hub.Subscribe()
	defer hub.Unsubscribe(a)
	defer hub.Unsubscribe(b)

	ev := ErrorEvent{Status: 404, Message: "gone", Endpoint: "/notes/u1"}
	hub.publish(ev)

	assert.Equal(t, ev, <-a)
	assert.Equal(t, ev, <-b)
}

// TestErrorHub_SlowSubscriberDoesNotBlock verifies publishing drops
// events for a full subscriber instead of stalling.
func TestErrorHub_SlowSubscriberDoesNotBlock(t *testing.T) {
	hub := NewErrorHub()
	ch := hub.Subscribe()
	defer hub.Unsubscribe(ch)

	// Overfill the buffer; publish must return regardless.
	for i := 0; i < 100; i++ {
		hub.publish(ErrorEvent{Status: 404, Endpoint: "/x"})
	}

	assert.Equal(t, cap(ch), len(ch), "buffer holds what fit, the rest were dropped")
}

// TestErrorHub_UnsubscribeCloses verifies the channel closes and later
// publishes do not panic.
func TestErrorHub_UnsubscribeCloses(t *testing.T) {
	hub := NewErrorHub()
	ch := hub.Subscribe()
	hub.Unsubscribe(ch)

	_, open := <-ch
	assert.False(t, open, "unsubscribed channel must be closed")

	// Double unsubscribe is a no-op.
	hub.Unsubscribe(ch)
	hub.publish(ErrorEvent{Status: 404})
}

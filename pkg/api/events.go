// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package api

import "sync"

// ErrorEvent is broadcast when the transport sees a 404 response. A
// collaborator (the CLI's degraded-service banner, or an embedding
// application's error boundary) subscribes and renders it; the client
// itself does nothing further with it.
type ErrorEvent struct {
	// Status is the HTTP status that triggered the event.
	Status int

	// Message is the display-ready message from the classified error.
	Message string

	// Endpoint is the relative path that was requested.
	Endpoint string
}

// ErrorHub fans out ErrorEvents to subscribers.
//
// Publishing never blocks: a subscriber that falls behind its channel
// buffer misses events rather than stalling the request path.
//
// Thread Safety: safe for concurrent use.
type ErrorHub struct {
	mu   sync.Mutex
	subs map[chan ErrorEvent]struct{}
}

// NewErrorHub creates an empty hub.
func NewErrorHub() *ErrorHub {
	return &ErrorHub{subs: make(map[chan ErrorEvent]struct{})}
}

// Subscribe registers a new subscriber and returns its channel.
// The caller must eventually call Unsubscribe with the same channel.
func (h *ErrorHub) Subscribe() chan ErrorEvent {
	ch := make(chan ErrorEvent, 16)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

// Unsubscribe removes a subscriber and closes its channel.
func (h *ErrorHub) Unsubscribe(ch chan ErrorEvent) {
	h.mu.Lock()
	if _, ok := h.subs[ch]; ok {
		delete(h.subs, ch)
		close(ch)
	}
	h.mu.Unlock()
}

// publish delivers ev to every subscriber that has buffer space.
func (h *ErrorHub) publish(ev ErrorEvent) {
	h.mu.Lock()
	for ch := range h.subs {
		select {
		case ch <- ev:
		default:
		}
	}
	h.mu.Unlock()
}

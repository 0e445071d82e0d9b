// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package localstore provides the persisted key-value store backing the
// client's offline fallback behavior.
//
// The store is a deliberately small port: string keys mapping to JSON
// string values. The API client keeps one list of records per user and
// per resource kind under a namespaced key, so that degraded reads and
// writes survive process restarts and never leak between users.
//
// Two implementations exist:
//
//   - MemoryStore: map-backed, for tests and ephemeral runs
//   - BadgerStore: BadgerDB-backed, for the CLI's persistent store
//
// Readers must tolerate a missing key by treating it as an empty
// collection; Get reports presence explicitly for that reason.
package localstore

import (
	"fmt"
	"sync"
)

// Store is the storage port used by the API client's fallback paths.
//
// Implementations must make each call atomic: a Get observes either the
// state before or after any concurrent Set, never a partial value.
type Store interface {
	// Get returns the value for key. The second return is false when the
	// key has never been written, which callers treat as an empty
	// collection rather than an error.
	Get(key string) (string, bool, error)

	// Set writes value under key, overwriting any previous value.
	Set(key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error

	// Close releases resources. The store is unusable afterwards.
	Close() error
}

// -----------------------------------------------------------------------------
// Key namespacing
// -----------------------------------------------------------------------------

// Namespaced keys embed the acting user's identity so two users never
// share or observe each other's cached records. All key construction
// goes through these helpers; call sites never concatenate keys by hand.

// NotesKey returns the key for a user's offline note list.
func NotesKey(userID string) string {
	return "user-notes-" + userID
}

// QuizzesKey returns the key for a user's offline quiz list.
func QuizzesKey(userID string) string {
	return "user-quizzes-" + userID
}

// MemoryKey returns the key for a user's remembered-context entries.
func MemoryKey(userID string) string {
	return fmt.Sprintf("memory_intelligence_%s", userID)
}

// NotificationsKey returns the key for a user's queued notifications.
func NotificationsKey(userID string) string {
	return fmt.Sprintf("notifications_%s", userID)
}

// TutorSessionsKey returns the key for a user's tutoring session records.
func TutorSessionsKey(userID string) string {
	return fmt.Sprintf("tutor_sessions_%s", userID)
}

// TutorMessagesKey returns the key for the turns of one tutoring session.
func TutorMessagesKey(sessionID string) string {
	return fmt.Sprintf("tutor_messages_%s", sessionID)
}

// -----------------------------------------------------------------------------
// MemoryStore
// -----------------------------------------------------------------------------

// MemoryStore is a map-backed Store for tests and ephemeral use.
//
// Safe for concurrent use.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

// Get returns the value for key and whether it exists.
func (s *MemoryStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	return v, ok, nil
}

// Set writes value under key.
func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

// Delete removes key. No-op for absent keys.
func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}

// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package localstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBadgerStore_InMemoryContract runs the Store contract against the
// in-memory badger mode used by tests.
func TestBadgerStore_InMemoryContract(t *testing.T) {
	s, err := OpenBadgerInMemory()
	require.NoError(t, err)
	defer s.Close()

	_, ok, err := s.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(NotesKey("u1"), `[{"id":"note-1"}]`))
	got, ok, err := s.Get(NotesKey("u1"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"note-1"}]`, got)

	require.NoError(t, s.Delete(NotesKey("u1")))
	_, ok, err = s.Get(NotesKey("u1"))
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Delete("never-written"))
}

// TestBadgerStore_ReopenPersistence verifies data written before Close
// is readable after reopening the same directory.
func TestBadgerStore_ReopenPersistence(t *testing.T) {
	dir := t.TempDir()

	cfg := BadgerConfig{Path: dir, SyncWrites: true}
	s, err := OpenBadger(cfg)
	require.NoError(t, err)

	require.NoError(t, s.Set(QuizzesKey("u1"), `[{"id":"quiz-1"}]`))
	require.NoError(t, s.Close())

	reopened, err := OpenBadger(cfg)
	require.NoError(t, err)
	defer reopened.Close()

	got, ok, err := reopened.Get(QuizzesKey("u1"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"quiz-1"}]`, got)
}

// TestOpenBadger_RequiresPath verifies a persistent store without a
// path is rejected before touching the filesystem.
func TestOpenBadger_RequiresPath(t *testing.T) {
	_, err := OpenBadger(BadgerConfig{})
	require.Error(t, err)
}

// TestBadgerStore_GCGoroutineStops verifies Close returns with a GC
// runner configured, i.e. the goroutine shuts down cleanly.
func TestBadgerStore_GCGoroutineStops(t *testing.T) {
	cfg := DefaultBadgerConfig(t.TempDir())
	s, err := OpenBadger(cfg)
	require.NoError(t, err)

	require.NoError(t, s.Set("k", "v"))
	require.NoError(t, s.Close())
}

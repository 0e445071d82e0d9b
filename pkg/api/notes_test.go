// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package api

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCreateNote_OfflineWriteThenRead covers the cache round trip: a
// note created during an outage gets a generated id and timestamps, and
// a subsequent degraded list returns it.
func TestCreateNote_OfflineWriteThenRead(t *testing.T) {
	c := newOfflineClient(t)
	ctx := context.Background()

	created, err := c.CreateNote(ctx, CreateNoteParams{
		UserID:  "student-1",
		Title:   "Integration by parts",
		Subject: SubjectMathematics,
		Content: "u dv = uv - v du",
	})
	require.NoError(t, err)
	assert.Equal(t, OriginCache, created.Origin)

	wantID := fmt.Sprintf("note-%d", time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC).UnixMilli())
	assert.Equal(t, wantID, created.Record.ID)
	assert.False(t, created.Record.CreatedAt.IsZero())
	assert.Equal(t, created.Record.CreatedAt, created.Record.UpdatedAt)

	listed, err := c.ListNotes(ctx, ListNotesParams{UserID: "student-1"})
	require.NoError(t, err)
	assert.Equal(t, OriginCache, listed.Origin)
	require.Len(t, listed.Items, 1)
	assert.Equal(t, created.Record, listed.Items[0])
}

// TestListNotes_EmptyStoreWellShaped verifies a degraded read against a
// store with no data returns a valid empty envelope, not an error.
func TestListNotes_EmptyStoreWellShaped(t *testing.T) {
	c := newOfflineClient(t)

	env, err := c.ListNotes(context.Background(), ListNotesParams{UserID: "nobody"})
	require.NoError(t, err)
	assert.Equal(t, OriginCache, env.Origin)
	assert.NotNil(t, env.Items)
	assert.Empty(t, env.Items)
	assert.Equal(t, 0, env.Total)
	assert.Equal(t, 50, env.Limit)
	assert.Equal(t, 0, env.Offset)
}

// TestListNotes_FilterAndSearch verifies degraded reads apply subject
// equality and case-insensitive substring search before pagination.
func TestListNotes_FilterAndSearch(t *testing.T) {
	c := newOfflineClient(t)
	ctx := context.Background()

	seed := []CreateNoteParams{
		{UserID: "u1", Title: "Quadratic equations", Subject: SubjectMathematics, Chapter: "Algebra"},
		{UserID: "u1", Title: "Ohm's law", Subject: SubjectPhysics, Chapter: "Electricity"},
		{UserID: "u1", Title: "Matrices", Subject: SubjectMathematics, Chapter: "Algebra"},
	}
	for _, p := range seed {
		_, err := c.CreateNote(ctx, p)
		require.NoError(t, err)
	}

	subject := SubjectMathematics
	env, err := c.ListNotes(ctx, ListNotesParams{UserID: "u1", Subject: &subject})
	require.NoError(t, err)
	assert.Equal(t, 2, env.Total)
	for _, n := range env.Items {
		assert.Equal(t, SubjectMathematics, n.Subject)
	}

	search := "QUADRATIC"
	env, err = c.ListNotes(ctx, ListNotesParams{UserID: "u1", Search: &search})
	require.NoError(t, err)
	require.Len(t, env.Items, 1)
	assert.Equal(t, "Quadratic equations", env.Items[0].Title)

	// Chapter text is searchable too.
	search = "algebra"
	env, err = c.ListNotes(ctx, ListNotesParams{UserID: "u1", Search: &search})
	require.NoError(t, err)
	assert.Equal(t, 2, env.Total)
}

// TestNotes_NamespaceIsolation verifies one user's degraded writes are
// invisible to another user's degraded reads.
func TestNotes_NamespaceIsolation(t *testing.T) {
	c := newOfflineClient(t)
	ctx := context.Background()

	_, err := c.CreateNote(ctx, CreateNoteParams{UserID: "alice", Title: "Alice's note"})
	require.NoError(t, err)

	env, err := c.ListNotes(ctx, ListNotesParams{UserID: "bob"})
	require.NoError(t, err)
	assert.Empty(t, env.Items, "bob must not see alice's notes")
}

// TestUpdateNote_OfflineMutatesInPlace verifies degraded updates find
// the record, apply only the set fields, and bump UpdatedAt.
func TestUpdateNote_OfflineMutatesInPlace(t *testing.T) {
	c := newOfflineClient(t)
	ctx := context.Background()

	created, err := c.CreateNote(ctx, CreateNoteParams{UserID: "u1", Title: "Draft", Content: "v1"})
	require.NoError(t, err)

	later := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return later }

	content := "v2"
	updated, err := c.UpdateNote(ctx, UpdateNoteParams{
		UserID:  "u1",
		NoteID:  created.Record.ID,
		Content: &content,
	})
	require.NoError(t, err)
	assert.Equal(t, OriginCache, updated.Origin)
	assert.Equal(t, "Draft", updated.Record.Title, "unset fields stay unchanged")
	assert.Equal(t, "v2", updated.Record.Content)
	assert.Equal(t, later, updated.Record.UpdatedAt)
}

// TestUpdateNote_UnknownIDIsNotFound verifies a wrong id surfaces as a
// *RecordNotFoundError, not a transport failure.
func TestUpdateNote_UnknownIDIsNotFound(t *testing.T) {
	c := newOfflineClient(t)

	title := "x"
	_, err := c.UpdateNote(context.Background(), UpdateNoteParams{
		UserID: "u1",
		NoteID: "note-does-not-exist",
		Title:  &title,
	})
	require.Error(t, err)

	var nf *RecordNotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "note", nf.Kind)
	assert.Equal(t, "note-does-not-exist", nf.ID)
}

// TestDeleteNote_OfflineReturnsRemoved verifies degraded deletes remove
// the record and hand it back.
func TestDeleteNote_OfflineReturnsRemoved(t *testing.T) {
	c := newOfflineClient(t)
	ctx := context.Background()

	created, err := c.CreateNote(ctx, CreateNoteParams{UserID: "u1", Title: "Doomed"})
	require.NoError(t, err)

	deleted, err := c.DeleteNote(ctx, DeleteNoteParams{UserID: "u1", NoteID: created.Record.ID})
	require.NoError(t, err)
	assert.Equal(t, "Doomed", deleted.Record.Title)

	env, err := c.ListNotes(ctx, ListNotesParams{UserID: "u1"})
	require.NoError(t, err)
	assert.Empty(t, env.Items)
}

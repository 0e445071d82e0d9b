// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package api

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStartTutorSession_LocalOnly verifies sessions are created without
// any remote call, so an outage never blocks starting a conversation.
func TestStartTutorSession_LocalOnly(t *testing.T) {
	c := newOfflineClient(t)
	ctx := context.Background()

	session, err := c.StartTutorSession(ctx, StartSessionParams{
		UserID:  "student-1",
		Subject: SubjectPhysics,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, "student-1", session.UserID)
	assert.Equal(t, session.CreatedAt, session.LastActivity)

	sessions, err := c.ListTutorSessions(ctx, "student-1")
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, session.ID, sessions[0].ID)
}

// TestSendTutorMessage_OfflineConversation covers the full degraded
// exchange: both turns persisted, transcript oldest-first, assistant
// turn marked offline, session activity bumped.
func TestSendTutorMessage_OfflineConversation(t *testing.T) {
	c := newOfflineClient(t)
	ctx := context.Background()

	session, err := c.StartTutorSession(ctx, StartSessionParams{
		UserID:  "student-1",
		Subject: SubjectMathematics,
	})
	require.NoError(t, err)

	later := time.Date(2025, 6, 1, 12, 5, 0, 0, time.UTC)
	c.now = func() time.Time { return later }

	turn, err := c.SendTutorMessage(ctx, SendMessageParams{
		UserID:    "student-1",
		SessionID: session.ID,
		Subject:   SubjectMathematics,
		Content:   "How do I solve a quadratic equation?",
	})
	require.NoError(t, err)
	assert.Equal(t, "assistant", turn.Role)
	assert.True(t, turn.Offline)
	assert.Contains(t, turn.Content, "quadratic formula")
	assert.Equal(t, 0.9, turn.Confidence)

	transcript, err := c.TutorTranscript(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, transcript, 2)
	assert.Equal(t, "user", transcript[0].Role)
	assert.Equal(t, "How do I solve a quadratic equation?", transcript[0].Content)
	assert.Equal(t, "assistant", transcript[1].Role)

	sessions, err := c.ListTutorSessions(ctx, "student-1")
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, later, sessions[0].LastActivity)
}

// TestSendTutorMessage_RemoteAnswer verifies a healthy backend answer
// is shadowed into the transcript with its sources and confidence.
func TestSendTutorMessage_RemoteAnswer(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"query":"q","generated_text":"Use F = ma.","confidence":0.95,"sources":[{"source":"ncert-physics-ch5","score":0.91}]}`)
	}))
	ctx := context.Background()

	session, err := c.StartTutorSession(ctx, StartSessionParams{UserID: "u1"})
	require.NoError(t, err)

	turn, err := c.SendTutorMessage(ctx, SendMessageParams{
		UserID:    "u1",
		SessionID: session.ID,
		Content:   "What is Newton's second law?",
	})
	require.NoError(t, err)
	assert.False(t, turn.Offline)
	assert.Equal(t, "Use F = ma.", turn.Content)
	require.Len(t, turn.Sources, 1)
	assert.Equal(t, "ncert-physics-ch5", turn.Sources[0].Source)

	transcript, err := c.TutorTranscript(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, transcript, 2)
	assert.Equal(t, turn.Sources, transcript[1].Sources)
}

// TestSendTutorMessage_MultipleSessionsIsolated verifies transcripts
// are keyed by session, not by user.
func TestSendTutorMessage_MultipleSessionsIsolated(t *testing.T) {
	c := newOfflineClient(t)
	ctx := context.Background()

	s1, err := c.StartTutorSession(ctx, StartSessionParams{UserID: "u1"})
	require.NoError(t, err)
	s2, err := c.StartTutorSession(ctx, StartSessionParams{UserID: "u1"})
	require.NoError(t, err)

	_, err = c.SendTutorMessage(ctx, SendMessageParams{UserID: "u1", SessionID: s1.ID, Content: "first session question"})
	require.NoError(t, err)

	t1, err := c.TutorTranscript(ctx, s1.ID)
	require.NoError(t, err)
	assert.Len(t, t1, 2)

	t2, err := c.TutorTranscript(ctx, s2.ID)
	require.NoError(t, err)
	assert.Empty(t, t2)
}

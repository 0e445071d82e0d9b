// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package api: tutor.go layers conversational sessions on top of the
// RAG query operation and the local store.
//
// The backend has no durable session support yet, so sessions are pure
// local bookkeeping, and every message exchange shadows both turns into
// the local store. If the backend grows real session persistence the
// contract here does not change: the local store stays the shadow copy
// either way, which is what lets a transcript survive an outage
// mid-conversation.
package api

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/AleutianAI/Schoolhouse/pkg/localstore"
)

// TutorSession is one tutoring conversation.
type TutorSession struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Subject      Subject   `json:"subject,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	LastActivity time.Time `json:"last_activity"`
}

// TutorTurn is one message in a session, either role "user" or
// "assistant". Assistant turns keep the answer's citations and
// confidence so transcripts stay meaningful offline.
type TutorTurn struct {
	ID         string    `json:"id"`
	SessionID  string    `json:"session_id"`
	Role       string    `json:"role"`
	Content    string    `json:"content"`
	Sources    []Source  `json:"sources,omitempty"`
	Confidence float64   `json:"confidence,omitempty"`
	Offline    bool      `json:"offline,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// StartSessionParams are the inputs for StartTutorSession.
type StartSessionParams struct {
	UserID  string `validate:"required"`
	Subject Subject
}

// StartTutorSession creates a session record in the local store and
// returns it. No remote call is involved; session creation must work
// identically whether or not the backend ever implements sessions.
func (c *Client) StartTutorSession(ctx context.Context, p StartSessionParams) (*TutorSession, error) {
	if err := c.validateParams(p); err != nil {
		return nil, err
	}

	now := c.now().UTC()
	session := TutorSession{
		ID:           uuid.NewString(),
		UserID:       p.UserID,
		Subject:      p.Subject,
		CreatedAt:    now,
		LastActivity: now,
	}
	if err := prependRecord(c.store, localstore.TutorSessionsKey(p.UserID), session); err != nil {
		return nil, err
	}
	return &session, nil
}

// SendMessageParams are the inputs for SendTutorMessage.
type SendMessageParams struct {
	UserID    string `validate:"required"`
	SessionID string `validate:"required"`
	Subject   Subject
	Content   string `validate:"required"`
}

// SendTutorMessage exchanges one message in a session.
//
// # Description
//
// In order: persist the user turn, obtain an answer via QueryRAG (which
// may itself degrade to a synthesized answer), persist the assistant
// turn with its sources and confidence, and bump the session's
// last-activity timestamp. Steps run sequentially; the local store is
// updated before and after the remote attempt so a transcript is never
// missing a turn it already showed.
//
// # Inputs
//
//   - ctx: cancellation and deadline
//   - p: session, user, optional subject, and message content
//
// # Outputs
//
//   - *TutorTurn: the assistant turn, never nil on nil error
//   - error: validation failure, store failure, or a non-infra *APIError
func (c *Client) SendTutorMessage(ctx context.Context, p SendMessageParams) (*TutorTurn, error) {
	if err := c.validateParams(p); err != nil {
		return nil, err
	}

	msgKey := localstore.TutorMessagesKey(p.SessionID)
	now := c.now().UTC()
	userTurn := TutorTurn{
		ID:        uuid.NewString(),
		SessionID: p.SessionID,
		Role:      "user",
		Content:   p.Content,
		CreatedAt: now,
	}
	if err := appendTurn(c, msgKey, userTurn); err != nil {
		return nil, err
	}

	ragParams := RAGQueryParams{Query: p.Content}
	if p.Subject != "" {
		subject := p.Subject
		ragParams.Subject = &subject
	}
	answer, err := c.QueryRAG(ctx, ragParams)
	if err != nil {
		return nil, err
	}

	assistantTurn := TutorTurn{
		ID:         uuid.NewString(),
		SessionID:  p.SessionID,
		Role:       "assistant",
		Content:    answer.GeneratedText,
		Sources:    answer.Sources,
		Confidence: answer.Confidence,
		Offline:    answer.Offline,
		CreatedAt:  c.now().UTC(),
	}
	if err := appendTurn(c, msgKey, assistantTurn); err != nil {
		return nil, err
	}

	if err := c.touchSession(p.UserID, p.SessionID); err != nil {
		return nil, err
	}
	return &assistantTurn, nil
}

// appendTurn appends to the end of the turn list: transcripts read
// oldest-first, unlike resource lists.
func appendTurn(c *Client, key string, turn TutorTurn) error {
	turns, err := loadList[TutorTurn](c.store, key)
	if err != nil {
		return err
	}
	turns = append(turns, turn)
	return saveList(c.store, key, turns)
}

// touchSession updates LastActivity on the session record. A session id
// missing from the list is tolerated: the transcript alone still makes
// the conversation usable.
func (c *Client) touchSession(userID, sessionID string) error {
	key := localstore.TutorSessionsKey(userID)
	sessions, err := loadList[TutorSession](c.store, key)
	if err != nil {
		return err
	}
	for i := range sessions {
		if sessions[i].ID == sessionID {
			sessions[i].LastActivity = c.now().UTC()
			return saveList(c.store, key, sessions)
		}
	}
	return nil
}

// ListTutorSessions returns a user's sessions, newest first.
func (c *Client) ListTutorSessions(ctx context.Context, userID string) ([]TutorSession, error) {
	if userID == "" {
		return nil, &RecordNotFoundError{Kind: "user", ID: userID}
	}
	return loadList[TutorSession](c.store, localstore.TutorSessionsKey(userID))
}

// TutorTranscript returns all turns of a session, oldest first.
func (c *Client) TutorTranscript(ctx context.Context, sessionID string) ([]TutorTurn, error) {
	if sessionID == "" {
		return nil, &RecordNotFoundError{Kind: "session", ID: sessionID}
	}
	return loadList[TutorTurn](c.store, localstore.TutorMessagesKey(sessionID))
}

// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package api: homework.go wraps the homework-assistant endpoints. The
// assistant gives graduated hints (three levels, solution last) rather
// than answers, and the session state lives on the backend, so all
// operations propagate failures.
package api

import (
	"context"
	"net/http"
	"time"
)

// HomeworkSession is the backend's record of a guided homework attempt.
type HomeworkSession struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Question      string    `json:"question"`
	Subject       Subject   `json:"subject,omitempty"`
	HintsRevealed int       `json:"hints_revealed"`
	Attempts      int       `json:"attempts"`
	Solved        bool      `json:"solved"`
	CreatedAt     time.Time `json:"created_at"`
}

// StartHomeworkParams are the inputs for StartHomework.
type StartHomeworkParams struct {
	UserID   string  `validate:"required"`
	Question string  `validate:"required"`
	Subject  Subject `validate:"omitempty,oneof=mathematics physics chemistry biology"`
}

// StartHomework opens a guided homework session for one question.
func (c *Client) StartHomework(ctx context.Context, p StartHomeworkParams) (*HomeworkSession, error) {
	if err := c.validateParams(p); err != nil {
		return nil, err
	}
	body := map[string]any{
		"user_id":  p.UserID,
		"question": p.Question,
	}
	if p.Subject != "" {
		body["subject"] = p.Subject
	}
	var out HomeworkSession
	if err := c.sendJSON(ctx, http.MethodPost, "/homework/start", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Hint is one graduated hint. Level 1 points a direction, level 2 gives
// the method, level 3 is the full solution.
type Hint struct {
	SessionID string `json:"session_id"`
	Level     int    `json:"hint_level"`
	Text      string `json:"hint"`
}

// RequestHintParams are the inputs for RequestHint.
type RequestHintParams struct {
	SessionID string `validate:"required"`
	Level     int    `validate:"required,min=1,max=3"`
}

// RequestHint fetches the next graduated hint for a session.
func (c *Client) RequestHint(ctx context.Context, p RequestHintParams) (*Hint, error) {
	if err := c.validateParams(p); err != nil {
		return nil, err
	}
	body := map[string]any{
		"session_id": p.SessionID,
		"hint_level": p.Level,
	}
	var out Hint
	if err := c.sendJSON(ctx, http.MethodPost, "/homework/hint", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AttemptResult is the evaluation of a submitted answer.
type AttemptResult struct {
	SessionID string `json:"session_id"`
	Correct   bool   `json:"correct"`
	Feedback  string `json:"feedback"`
	Attempts  int    `json:"attempts"`
	Solution  string `json:"solution,omitempty"`
}

// SubmitAttemptParams are the inputs for SubmitHomeworkAttempt.
type SubmitAttemptParams struct {
	SessionID string `validate:"required"`
	Answer    string `validate:"required"`
}

// SubmitHomeworkAttempt submits an answer attempt for evaluation. The
// backend reveals the solution after three attempts or a correct
// answer.
func (c *Client) SubmitHomeworkAttempt(ctx context.Context, p SubmitAttemptParams) (*AttemptResult, error) {
	if err := c.validateParams(p); err != nil {
		return nil, err
	}
	body := map[string]any{
		"session_id": p.SessionID,
		"answer":     p.Answer,
	}
	var out AttemptResult
	if err := c.sendJSON(ctx, http.MethodPost, "/homework/attempt", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetHomeworkSession fetches one homework session by id.
func (c *Client) GetHomeworkSession(ctx context.Context, sessionID string) (*HomeworkSession, error) {
	var out HomeworkSession
	if err := c.getJSON(ctx, "/homework/session/"+pathEscape(sessionID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListHomeworkSessionsParams are the inputs for ListHomeworkSessions.
type ListHomeworkSessionsParams struct {
	UserID string `validate:"required"`
	Limit  *int   `validate:"omitempty,min=1,max=100"`
	Offset *int   `validate:"omitempty,min=0"`
}

// ListHomeworkSessions lists a user's homework sessions, newest first.
func (c *Client) ListHomeworkSessions(ctx context.Context, p ListHomeworkSessionsParams) (*ListEnvelope[HomeworkSession], error) {
	if err := c.validateParams(p); err != nil {
		return nil, err
	}
	path := newQuery().
		addString("user_id", p.UserID).
		addInt("limit", p.Limit).
		addInt("offset", p.Offset).
		path("/homework/sessions")
	var out ListEnvelope[HomeworkSession]
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	out.Origin = OriginRemote
	if out.Items == nil {
		out.Items = []HomeworkSession{}
	}
	return &out, nil
}

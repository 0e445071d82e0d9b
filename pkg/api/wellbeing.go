// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package api: wellbeing.go wraps the focus-session and well-being
// endpoints. All operations propagate failures: focus sessions are
// backend bookkeeping and the CLI countdown runs locally regardless.
package api

import (
	"context"
	"net/http"
	"time"
)

// FocusSession is a time-boxed study session.
type FocusSession struct {
	SessionID       string    `json:"session_id"`
	UserID          string    `json:"user_id"`
	Subject         Subject   `json:"subject,omitempty"`
	Goal            string    `json:"goal,omitempty"`
	DurationMinutes int       `json:"duration_minutes"`
	StartedAt       time.Time `json:"started_at"`
}

// StartFocusParams are the inputs for StartFocusSession.
type StartFocusParams struct {
	UserID          string `validate:"required"`
	DurationMinutes int    `validate:"required,min=1,max=240"`
	Subject         *Subject
	Goal            string
}

// StartFocusSession starts a time-boxed focus session on the backend.
func (c *Client) StartFocusSession(ctx context.Context, p StartFocusParams) (*FocusSession, error) {
	if err := c.validateParams(p); err != nil {
		return nil, err
	}
	body := map[string]any{
		"user_id":          p.UserID,
		"duration_minutes": p.DurationMinutes,
	}
	if p.Subject != nil {
		body["subject"] = *p.Subject
	}
	if p.Goal != "" {
		body["goal"] = p.Goal
	}
	var out FocusSession
	if err := c.sendJSON(ctx, http.MethodPost, "/wellbeing/focus/start", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FocusSummary is the outcome of an ended focus session.
type FocusSummary struct {
	SessionID         string   `json:"session_id"`
	UserID            string   `json:"user_id"`
	FocusedMinutes    int      `json:"focused_minutes"`
	DistractionsCount int      `json:"distractions_count"`
	Completed         bool     `json:"completed"`
	Achievements      []string `json:"achievements,omitempty"`
	Message           string   `json:"message,omitempty"`
}

// EndFocusParams are the inputs for EndFocusSession.
type EndFocusParams struct {
	SessionID         string `validate:"required"`
	UserID            string `validate:"required"`
	DistractionsCount int    `validate:"min=0"`
	Completed         bool
}

// EndFocusSession ends a focus session and returns its summary.
func (c *Client) EndFocusSession(ctx context.Context, p EndFocusParams) (*FocusSummary, error) {
	if err := c.validateParams(p); err != nil {
		return nil, err
	}
	body := map[string]any{
		"session_id":         p.SessionID,
		"user_id":            p.UserID,
		"distractions_count": p.DistractionsCount,
		"completed":          p.Completed,
	}
	var out FocusSummary
	if err := c.sendJSON(ctx, http.MethodPost, "/wellbeing/focus/end", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Motivation is a personalized encouragement message.
type Motivation struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
	Context string `json:"context,omitempty"`
}

// GetMotivation fetches a personalized motivation message. The optional
// context string hints what the student is doing ("before_exam",
// "after_streak_break").
func (c *Client) GetMotivation(ctx context.Context, userID, motivationContext string) (*Motivation, error) {
	path := newQuery().
		addString("context", motivationContext).
		path("/wellbeing/motivation/" + pathEscape(userID))
	var out Motivation
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DistractionGuard is the per-user distraction-blocking configuration.
type DistractionGuard struct {
	UserID   string         `json:"user_id"`
	Settings map[string]any `json:"settings"`
}

// GetDistractionGuard fetches a user's distraction guard settings.
func (c *Client) GetDistractionGuard(ctx context.Context, userID string) (*DistractionGuard, error) {
	var out DistractionGuard
	if err := c.getJSON(ctx, "/wellbeing/distraction-guard/"+pathEscape(userID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetDistractionGuard replaces a user's distraction guard settings.
func (c *Client) SetDistractionGuard(ctx context.Context, userID string, settings map[string]any) (*DistractionGuard, error) {
	var out DistractionGuard
	if err := c.sendJSON(ctx, http.MethodPut, "/wellbeing/distraction-guard/"+pathEscape(userID), settings, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

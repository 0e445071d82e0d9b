// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package api: progress.go wraps the learning-progress endpoints.
//
// GetProgressSummary carries the mock fallback: a dashboard that renders
// an empty shell on backend failure teaches the student nothing, so a
// plausible placeholder summary is returned instead, tagged synthetic.
// Writes and per-topic reads propagate failures; recording fake progress
// would corrupt the record once the backend recovers.
package api

import (
	"context"
	"net/http"
	"time"
)

// TopicProgress is mastery state for one topic.
type TopicProgress struct {
	UserID        string    `json:"user_id"`
	Subject       Subject   `json:"subject"`
	Topic         string    `json:"topic"`
	MasteryPct    float64   `json:"mastery_pct"`
	AttemptCount  int       `json:"attempt_count"`
	LastPracticed time.Time `json:"last_practiced"`
}

// SubjectProgress is the per-subject rollup in a summary.
type SubjectProgress struct {
	Subject    Subject `json:"subject"`
	MasteryPct float64 `json:"mastery_pct"`
	TopicCount int     `json:"topic_count"`
}

// ProgressSummary is the dashboard rollup for one user.
type ProgressSummary struct {
	UserID       string            `json:"user_id"`
	OverallPct   float64           `json:"overall_pct"`
	StreakDays   int               `json:"streak_days"`
	StudyMinutes int               `json:"study_minutes"`
	Subjects     []SubjectProgress `json:"subjects"`
	WeakTopics   []string          `json:"weak_topics"`
	StrongTopics []string          `json:"strong_topics"`
}

// mockProgressSummary builds the degraded dashboard payload for userID.
// The numbers are deliberately mid-range so the placeholder reads as
// "in progress" rather than as a perfect or empty record.
func mockProgressSummary(userID string) *ProgressSummary {
	return &ProgressSummary{
		UserID:       userID,
		OverallPct:   62.5,
		StreakDays:   3,
		StudyMinutes: 540,
		Subjects: []SubjectProgress{
			{Subject: SubjectMathematics, MasteryPct: 68.0, TopicCount: 12},
			{Subject: SubjectPhysics, MasteryPct: 57.0, TopicCount: 10},
		},
		WeakTopics:   []string{"Integration by Parts", "Rotational Dynamics"},
		StrongTopics: []string{"Quadratic Equations", "Kinematics"},
	}
}

// GetProgressSummary fetches the dashboard summary for a user. On
// infra-class failure it returns a fixed placeholder summary with Origin
// "synthetic".
func (c *Client) GetProgressSummary(ctx context.Context, userID string) (*RecordEnvelope[ProgressSummary], error) {
	var remote ProgressSummary
	err := c.getJSON(ctx, "/progress/"+pathEscape(userID)+"/summary", &remote)
	if err == nil {
		return newRecordEnvelope(OriginRemote, remote), nil
	}
	if !IsInfraFailure(err) {
		return nil, err
	}
	c.warnDegraded("GetProgressSummary", err)
	return newRecordEnvelope(OriginSynthetic, *mockProgressSummary(userID)), nil
}

// ListProgressParams are the inputs for ListProgress.
type ListProgressParams struct {
	UserID  string `validate:"required"`
	Subject *Subject
	Limit   *int `validate:"omitempty,min=1,max=100"`
	Offset  *int `validate:"omitempty,min=0"`
}

// ListProgress lists per-topic progress records for a user.
func (c *Client) ListProgress(ctx context.Context, p ListProgressParams) (*ListEnvelope[TopicProgress], error) {
	if err := c.validateParams(p); err != nil {
		return nil, err
	}
	path := newQuery().
		addSubject("subject", p.Subject).
		addInt("limit", p.Limit).
		addInt("offset", p.Offset).
		path("/progress/" + pathEscape(p.UserID))
	var out ListEnvelope[TopicProgress]
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	out.Origin = OriginRemote
	if out.Items == nil {
		out.Items = []TopicProgress{}
	}
	return &out, nil
}

// GetTopicProgress fetches mastery state for one topic.
func (c *Client) GetTopicProgress(ctx context.Context, userID string, subject Subject, topic string) (*TopicProgress, error) {
	path := "/progress/" + pathEscape(userID) + "/" + pathEscape(string(subject)) + "/" + pathEscape(topic)
	var out TopicProgress
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProgressParams are the inputs for UpdateProgress.
type UpdateProgressParams struct {
	UserID     string  `validate:"required"`
	Subject    Subject `validate:"required,oneof=mathematics physics chemistry biology"`
	Topic      string  `validate:"required"`
	MasteryPct float64 `validate:"min=0,max=100"`
	Minutes    int     `validate:"min=0"`
}

// UpdateProgress records a practice outcome for a topic. Always remote;
// progress written while degraded would silently diverge from the
// backend's record.
func (c *Client) UpdateProgress(ctx context.Context, p UpdateProgressParams) (*TopicProgress, error) {
	if err := c.validateParams(p); err != nil {
		return nil, err
	}
	body := map[string]any{
		"user_id":     p.UserID,
		"subject":     p.Subject,
		"topic":       p.Topic,
		"mastery_pct": p.MasteryPct,
		"minutes":     p.Minutes,
	}
	var out TopicProgress
	if err := c.sendJSON(ctx, http.MethodPut, "/progress", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Achievement is an earned badge or milestone.
type Achievement struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Detail   string    `json:"detail,omitempty"`
	EarnedAt time.Time `json:"earned_at"`
}

// GetAchievements lists a user's earned achievements.
func (c *Client) GetAchievements(ctx context.Context, userID string) (*ListEnvelope[Achievement], error) {
	var out ListEnvelope[Achievement]
	if err := c.getJSON(ctx, "/progress/"+pathEscape(userID)+"/achievements", &out); err != nil {
		return nil, err
	}
	out.Origin = OriginRemote
	if out.Items == nil {
		out.Items = []Achievement{}
	}
	return &out, nil
}

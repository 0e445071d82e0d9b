// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package api: analytics.go wraps the analytics endpoints. The write
// operations mirror the backend's query-parameter encoding rather than
// JSON bodies. Everything here propagates failures: fabricated
// analytics would poison the aggregate record.
package api

import (
	"context"
	"net/http"
	"strconv"
)

// DashboardMetrics is the aggregate admin dashboard payload.
type DashboardMetrics struct {
	ActiveStudents  int      `json:"active_students"`
	AverageMastery  float64  `json:"avg_mastery"`
	CompletionRate  float64  `json:"completion_rate"`
	FlaggedStudents []string `json:"flagged_students,omitempty"`
}

// GetDashboard fetches aggregate dashboard metrics.
func (c *Client) GetDashboard(ctx context.Context) (*DashboardMetrics, error) {
	var out DashboardMetrics
	if err := c.getJSON(ctx, "/analytics/dashboard", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TrendsParams are the inputs for GetTrends.
type TrendsParams struct {
	UserID  *string
	Subject *Subject
	Days    *int `validate:"omitempty,min=1,max=365"`
}

// TrendPoint is one daily aggregate in a performance trend.
type TrendPoint struct {
	Date       string  `json:"date"`
	AvgScore   float64 `json:"avg_score"`
	TestsTaken int     `json:"tests_taken"`
}

// Trends is the performance-over-time payload.
type Trends struct {
	Points []TrendPoint `json:"points"`
	Days   int          `json:"days"`
}

// GetTrends fetches performance trends over the trailing window.
func (c *Client) GetTrends(ctx context.Context, p TrendsParams) (*Trends, error) {
	if err := c.validateParams(p); err != nil {
		return nil, err
	}
	path := newQuery().
		addStringPtr("user_id", p.UserID).
		addSubject("subject", p.Subject).
		addInt("days", p.Days).
		path("/analytics/trends")
	var out Trends
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	if out.Points == nil {
		out.Points = []TrendPoint{}
	}
	return &out, nil
}

// RecordEventParams are the inputs for RecordEvent.
type RecordEventParams struct {
	UserID    string `validate:"required"`
	EventType string `validate:"required"`
	Subject   *Subject
	TopicID   *string
}

// RecordEvent logs a user activity event. The backend processes it
// asynchronously; success means accepted, not persisted.
func (c *Client) RecordEvent(ctx context.Context, p RecordEventParams) error {
	if err := c.validateParams(p); err != nil {
		return err
	}
	path := newQuery().
		addString("user_id", p.UserID).
		addString("event_type", p.EventType).
		addSubject("subject", p.Subject).
		addStringPtr("topic_id", p.TopicID).
		path("/analytics/event")
	return c.sendJSON(ctx, http.MethodPost, path, nil, nil)
}

// RecordTestResultParams are the inputs for RecordTestResult.
type RecordTestResultParams struct {
	TestID             string  `validate:"required"`
	UserID             string  `validate:"required"`
	Subject            Subject `validate:"required,oneof=mathematics physics chemistry biology"`
	ExamSetID          *string
	Score              float64 `validate:"min=0"`
	TotalMarks         int     `validate:"min=1"`
	DurationMinutes    int     `validate:"min=0"`
	QuestionsAttempted int     `validate:"min=0"`
	CorrectAnswers     int     `validate:"min=0"`
}

// RecordTestResult logs a completed test result for trend analysis.
func (c *Client) RecordTestResult(ctx context.Context, p RecordTestResultParams) error {
	if err := c.validateParams(p); err != nil {
		return err
	}
	path := newQuery().
		addString("test_id", p.TestID).
		addString("user_id", p.UserID).
		addString("subject", string(p.Subject)).
		addStringPtr("exam_set_id", p.ExamSetID).
		addString("score", strconv.FormatFloat(p.Score, 'f', -1, 64)).
		addString("total_marks", strconv.Itoa(p.TotalMarks)).
		addString("duration_minutes", strconv.Itoa(p.DurationMinutes)).
		addString("questions_attempted", strconv.Itoa(p.QuestionsAttempted)).
		addString("correct_answers", strconv.Itoa(p.CorrectAnswers)).
		path("/analytics/test-result")
	return c.sendJSON(ctx, http.MethodPost, path, nil, nil)
}

// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package api: exam.go wraps the previous-year-question exam endpoints.
//
// ListExamSets is one of the two mock-fallback operations: deployments
// frequently ship the UI before the exam content pipeline, so when the
// endpoint is missing or the server is failing, the student still sees
// a usable practice catalog. Only infra-class failures qualify; a 400
// (bad subject, out-of-range year) always propagates, because masking a
// caller bug with mock data would hide it forever.
package api

import (
	"context"
	"net/http"
	"time"
)

// ExamQuestion is one question in an exam set.
type ExamQuestion struct {
	ID         string `json:"id"`
	Question   string `json:"question"`
	Solution   string `json:"solution,omitempty"`
	Marks      int    `json:"marks"`
	Difficulty string `json:"difficulty,omitempty"`
}

// ExamSet is a practice set of previous-year questions.
type ExamSet struct {
	ID              string         `json:"id"`
	Title           string         `json:"title"`
	Subject         Subject        `json:"subject"`
	Year            int            `json:"year"`
	DurationMinutes int            `json:"duration_minutes"`
	TotalMarks      int            `json:"total_marks"`
	QuestionCount   int            `json:"question_count"`
	Questions       []ExamQuestion `json:"questions,omitempty"`
}

// mockExamSets is the fixed degraded catalog. The two entries and their
// declared question counts and durations are part of the client's
// contract and are asserted by tests; change them deliberately.
var mockExamSets = []ExamSet{
	{
		ID:              "mock-exam-math-1",
		Title:           "Mathematics Practice Set 1",
		Subject:         SubjectMathematics,
		Year:            2024,
		DurationMinutes: 180,
		TotalMarks:      100,
		QuestionCount:   30,
	},
	{
		ID:              "mock-exam-physics-1",
		Title:           "Physics Practice Set 1",
		Subject:         SubjectPhysics,
		Year:            2024,
		DurationMinutes: 180,
		TotalMarks:      70,
		QuestionCount:   27,
	},
}

// ListExamSetsParams are the inputs for ListExamSets.
type ListExamSetsParams struct {
	Subject *Subject
	Year    *int `validate:"omitempty,min=2000,max=2100"`
	Limit   *int `validate:"omitempty,min=1,max=100"`
	Offset  *int `validate:"omitempty,min=0"`
}

// ListExamSets lists available exam sets with optional filtering.
// On infra-class failure it returns the fixed mock catalog with Origin
// "synthetic" instead of propagating the error.
func (c *Client) ListExamSets(ctx context.Context, p ListExamSetsParams) (*ListEnvelope[ExamSet], error) {
	if err := c.validateParams(p); err != nil {
		return nil, err
	}

	path := newQuery().
		addSubject("subject", p.Subject).
		addInt("year", p.Year).
		addInt("limit", p.Limit).
		addInt("offset", p.Offset).
		path("/exam/sets")

	var remote ListEnvelope[ExamSet]
	err := c.getJSON(ctx, path, &remote)
	if err == nil {
		remote.Origin = OriginRemote
		if remote.Items == nil {
			remote.Items = []ExamSet{}
		}
		return &remote, nil
	}
	if !IsInfraFailure(err) {
		return nil, err
	}
	c.warnDegraded("ListExamSets", err)

	sets := make([]ExamSet, len(mockExamSets))
	copy(sets, mockExamSets)
	offset := intOr(p.Offset, 0)
	limit := intOr(p.Limit, 50)
	page, total := paginate(sets, offset, limit)
	return newListEnvelope(OriginSynthetic, page, total, limit, offset), nil
}

// GetExamSet fetches one exam set with its questions. Propagates all
// failures: the mock catalog has no question bodies to serve.
func (c *Client) GetExamSet(ctx context.Context, examSetID string) (*ExamSet, error) {
	var out ExamSet
	if err := c.getJSON(ctx, "/exam/sets/"+pathEscape(examSetID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitAnswerParams are the inputs for SubmitExamAnswer.
type SubmitAnswerParams struct {
	SessionID  string `validate:"required"`
	QuestionID string `validate:"required"`
	Answer     string
}

// ExamSession is the backend's record of an in-progress or submitted
// test.
type ExamSession struct {
	ID          string            `json:"id"`
	ExamSetID   string            `json:"exam_set_id"`
	UserID      string            `json:"user_id"`
	StartedAt   time.Time         `json:"started_at"`
	SubmittedAt *time.Time        `json:"submitted_at,omitempty"`
	Answers     map[string]string `json:"answers,omitempty"`
}

// SubmitExamAnswer records one answer in a test session.
func (c *Client) SubmitExamAnswer(ctx context.Context, p SubmitAnswerParams) (*ExamSession, error) {
	if err := c.validateParams(p); err != nil {
		return nil, err
	}
	body := map[string]any{
		"session_id":  p.SessionID,
		"question_id": p.QuestionID,
		"answer":      p.Answer,
	}
	var out ExamSession
	if err := c.sendJSON(ctx, http.MethodPut, "/exam/answer", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitExam finalizes a test session for grading.
func (c *Client) SubmitExam(ctx context.Context, sessionID string) (*ExamSession, error) {
	body := map[string]any{"session_id": sessionID}
	var out ExamSession
	if err := c.sendJSON(ctx, http.MethodPost, "/exam/submit", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ExamResult is a graded test session.
type ExamResult struct {
	SessionID    string  `json:"session_id"`
	Score        float64 `json:"score"`
	TotalMarks   int     `json:"total_marks"`
	Percentage   float64 `json:"percentage"`
	CorrectCount int     `json:"correct_count"`
	WrongCount   int     `json:"wrong_count"`
}

// GetExamResults fetches the graded result for a submitted session.
func (c *Client) GetExamResults(ctx context.Context, sessionID string) (*ExamResult, error) {
	var out ExamResult
	if err := c.getJSON(ctx, "/exam/results/"+pathEscape(sessionID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ExamHistoryParams are the inputs for GetExamHistory.
type ExamHistoryParams struct {
	UserID  string `validate:"required"`
	Subject *Subject
}

// PerformanceTrend summarizes historical exam performance.
type PerformanceTrend struct {
	UserID       string    `json:"user_id"`
	Subject      Subject   `json:"subject,omitempty"`
	Scores       []float64 `json:"scores"`
	AveragePct   float64   `json:"average_pct"`
	BestPct      float64   `json:"best_pct"`
	AttemptCount int       `json:"attempt_count"`
}

// GetExamHistory fetches a user's exam performance trend.
func (c *Client) GetExamHistory(ctx context.Context, p ExamHistoryParams) (*PerformanceTrend, error) {
	if err := c.validateParams(p); err != nil {
		return nil, err
	}
	path := newQuery().
		addString("user_id", p.UserID).
		addSubject("subject", p.Subject).
		path("/exam/history")
	var out PerformanceTrend
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

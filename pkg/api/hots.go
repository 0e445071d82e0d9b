// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package api: hots.go wraps the higher-order-thinking-skills question
// endpoints (generation, attempt evaluation, mastery tracking). Question
// generation and scoring need the backend's model access, so every
// operation propagates failures.
package api

import (
	"context"
	"net/http"
	"time"
)

// HOTSQuestion is one higher-order-thinking question with its model
// solution.
type HOTSQuestion struct {
	ID           string         `json:"id"`
	Subject      Subject        `json:"subject"`
	TopicID      string         `json:"topic_id"`
	Question     string         `json:"question"`
	Solution     string         `json:"solution"`
	Difficulty   string         `json:"difficulty"`
	QuestionType string         `json:"question_type"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// HOTSQuestionSet is a freshly generated batch of questions for one
// topic.
type HOTSQuestionSet struct {
	Questions []HOTSQuestion `json:"questions"`
	Count     int            `json:"count"`
	TopicID   string         `json:"topic_id"`
}

// GenerateHOTSParams are the inputs for GenerateHOTSQuestions.
type GenerateHOTSParams struct {
	TopicID string `validate:"required"`
	Count   *int   `validate:"omitempty,min=1,max=5"`
}

// GenerateHOTSQuestions asks the backend to generate higher-order
// questions for a topic. Count defaults server-side to 3.
func (c *Client) GenerateHOTSQuestions(ctx context.Context, p GenerateHOTSParams) (*HOTSQuestionSet, error) {
	if err := c.validateParams(p); err != nil {
		return nil, err
	}
	body := map[string]any{"topic_id": p.TopicID}
	if p.Count != nil {
		body["count"] = *p.Count
	}
	var out HOTSQuestionSet
	if err := c.sendJSON(ctx, http.MethodPost, "/hots/generate", body, &out); err != nil {
		return nil, err
	}
	if out.Questions == nil {
		out.Questions = []HOTSQuestion{}
	}
	return &out, nil
}

// GetHOTSByTopic fetches the stored questions for a topic.
func (c *Client) GetHOTSByTopic(ctx context.Context, topicID string) ([]HOTSQuestion, error) {
	var out []HOTSQuestion
	if err := c.getJSON(ctx, "/hots/topic/"+pathEscape(topicID), &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []HOTSQuestion{}
	}
	return out, nil
}

// HOTSAttemptParams are the inputs for SubmitHOTSAttempt.
type HOTSAttemptParams struct {
	UserID           string `validate:"required"`
	QuestionID       string `validate:"required"`
	Answer           string `validate:"required"`
	TimeTakenMinutes *int   `validate:"omitempty,min=0"`
}

// HOTSAttemptResult is the backend's evaluation of one attempt.
type HOTSAttemptResult struct {
	QuestionID     string  `json:"question_id"`
	IsCorrect      bool    `json:"is_correct"`
	Score          float64 `json:"score"`
	Feedback       string  `json:"feedback"`
	ModelSolution  string  `json:"model_solution"`
	MasteryUpdated bool    `json:"mastery_updated"`
}

// SubmitHOTSAttempt submits a student answer for model evaluation and
// mastery tracking.
func (c *Client) SubmitHOTSAttempt(ctx context.Context, p HOTSAttemptParams) (*HOTSAttemptResult, error) {
	if err := c.validateParams(p); err != nil {
		return nil, err
	}
	body := map[string]any{
		"user_id":     p.UserID,
		"question_id": p.QuestionID,
		"answer":      p.Answer,
	}
	if p.TimeTakenMinutes != nil {
		body["time_taken_minutes"] = *p.TimeTakenMinutes
	}
	var out HOTSAttemptResult
	if err := c.sendJSON(ctx, http.MethodPost, "/hots/attempt", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// HOTSPerformance summarizes a student's higher-order question history.
type HOTSPerformance struct {
	TotalAttempted   int              `json:"total_hots_attempted"`
	TotalCorrect     int              `json:"total_hots_correct"`
	OverallMastery   float64          `json:"overall_hots_mastery"`
	TopperBadges     []map[string]any `json:"topics_with_topper_badge"`
	SubjectBreakdown map[string]any   `json:"subject_breakdown,omitempty"`
}

// GetHOTSPerformance fetches a student's aggregate performance on
// higher-order questions.
func (c *Client) GetHOTSPerformance(ctx context.Context, userID string) (*HOTSPerformance, error) {
	var out HOTSPerformance
	if err := c.getJSON(ctx, "/hots/performance/"+pathEscape(userID), &out); err != nil {
		return nil, err
	}
	if out.TopperBadges == nil {
		out.TopperBadges = []map[string]any{}
	}
	return &out, nil
}

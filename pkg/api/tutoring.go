// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package api: tutoring.go wraps the AI tutoring endpoints (feedback on
// student work, study-plan generation, direct question answering).
// These always need the backend's model access, so every operation
// propagates failures.
package api

import (
	"context"
	"net/http"
)

// Feedback is personalized feedback on a piece of student work.
type Feedback struct {
	UserID      string   `json:"user_id"`
	Summary     string   `json:"summary"`
	Strengths   []string `json:"strengths,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// FeedbackParams are the inputs for SubmitFeedback.
type FeedbackParams struct {
	UserID          string  `validate:"required"`
	Content         string  `validate:"required"`
	Subject         Subject `validate:"omitempty,oneof=mathematics physics chemistry biology"`
	PerformanceData map[string]any
}

// SubmitFeedback asks for personalized feedback on student work.
func (c *Client) SubmitFeedback(ctx context.Context, p FeedbackParams) (*Feedback, error) {
	if err := c.validateParams(p); err != nil {
		return nil, err
	}
	body := map[string]any{
		"user_id": p.UserID,
		"content": p.Content,
	}
	if p.Subject != "" {
		body["subject"] = p.Subject
	}
	if p.PerformanceData != nil {
		body["performance_data"] = p.PerformanceData
	}
	var out Feedback
	if err := c.sendJSON(ctx, http.MethodPost, "/ai-tutoring/feedback", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// StudyPlanDay is one day of a generated study plan.
type StudyPlanDay struct {
	Day    int      `json:"day"`
	Topics []string `json:"topics"`
	Hours  float64  `json:"hours"`
	Notes  string   `json:"notes,omitempty"`
}

// StudyPlan is a multi-day personalized study plan.
type StudyPlan struct {
	UserID  string         `json:"user_id"`
	Subject Subject        `json:"subject"`
	Days    []StudyPlanDay `json:"days"`
	Summary string         `json:"summary,omitempty"`
}

// StudyPlanParams are the inputs for GenerateStudyPlan.
type StudyPlanParams struct {
	UserID      string  `validate:"required"`
	Subject     Subject `validate:"required,oneof=mathematics physics chemistry biology"`
	Days        int     `validate:"required,min=1,max=90"`
	HoursPerDay float64 `validate:"required,min=0.5,max=12"`
}

// GenerateStudyPlan generates a personalized study plan.
func (c *Client) GenerateStudyPlan(ctx context.Context, p StudyPlanParams) (*StudyPlan, error) {
	if err := c.validateParams(p); err != nil {
		return nil, err
	}
	body := map[string]any{
		"user_id":       p.UserID,
		"subject":       p.Subject,
		"days":          p.Days,
		"hours_per_day": p.HoursPerDay,
	}
	var out StudyPlan
	if err := c.sendJSON(ctx, http.MethodPost, "/ai-tutoring/study-plan", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TutoringAnswer is a direct answer with explanation and resources.
type TutoringAnswer struct {
	UserID      string   `json:"user_id"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation,omitempty"`
	Resources   []string `json:"resources,omitempty"`
}

// EvaluateAnswerParams are the inputs for EvaluateAnswer.
type EvaluateAnswerParams struct {
	UserID   string  `validate:"required"`
	Question string  `validate:"required"`
	Subject  Subject `validate:"omitempty,oneof=mathematics physics chemistry biology"`
	Context  string
}

// EvaluateAnswer asks the tutoring service to answer a question with a
// full explanation.
func (c *Client) EvaluateAnswer(ctx context.Context, p EvaluateAnswerParams) (*TutoringAnswer, error) {
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
	if p.Context != "" {
		body["context"] = p.Context
	}
	var out TutoringAnswer
	if err := c.sendJSON(ctx, http.MethodPost, "/ai-tutoring/answer", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

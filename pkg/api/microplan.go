// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package api: microplan.go wraps the daily micro-plan endpoints. The
// plan selection is adaptive (mastery scores, spaced repetition) and
// only the backend holds that state, so all operations propagate
// failures. Dates travel as ISO calendar dates, not timestamps.
package api

import (
	"context"
	"net/http"
	"time"
)

// MicroPlanItem is one scheduled piece of content in a daily plan.
type MicroPlanItem struct {
	ContentID string  `json:"content_id"`
	Type      string  `json:"type"`
	Subject   Subject `json:"subject"`
	Topic     string  `json:"topic"`
	Completed bool    `json:"completed"`
}

// MicroPlan is one day's adaptive study plan.
type MicroPlan struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	PlanDate  string          `json:"plan_date"`
	Items     []MicroPlanItem `json:"items"`
	Completed bool            `json:"completed"`
	CreatedAt time.Time       `json:"created_at"`
}

// GenerateMicroPlanParams are the inputs for GenerateMicroPlan. A nil
// PlanDate means today; a nil Subject lets the backend pick the weakest
// area.
type GenerateMicroPlanParams struct {
	UserID   string `validate:"required"`
	PlanDate *time.Time
	Subject  *Subject
}

// GenerateMicroPlan generates a fresh daily plan for a student.
func (c *Client) GenerateMicroPlan(ctx context.Context, p GenerateMicroPlanParams) (*MicroPlan, error) {
	if err := c.validateParams(p); err != nil {
		return nil, err
	}
	q := newQuery().
		addString("user_id", p.UserID).
		addSubject("subject", p.Subject)
	if p.PlanDate != nil {
		q.addString("plan_date", p.PlanDate.Format("2006-01-02"))
	}
	var out MicroPlan
	if err := c.sendJSON(ctx, http.MethodPost, q.path("/microplan/generate"), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetTodayMicroPlan fetches today's plan, if one has been generated.
// No plan yet is a 404 from the backend and propagates as such.
func (c *Client) GetTodayMicroPlan(ctx context.Context, userID string) (*MicroPlan, error) {
	path := newQuery().
		addString("user_id", userID).
		path("/microplan/today")
	var out MicroPlan
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetMicroPlanByDate fetches the plan for a specific calendar date.
func (c *Client) GetMicroPlanByDate(ctx context.Context, userID string, planDate time.Time) (*MicroPlan, error) {
	path := newQuery().
		addString("user_id", userID).
		path("/microplan/" + planDate.Format("2006-01-02"))
	var out MicroPlan
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CompleteMicroPlan marks a plan complete.
func (c *Client) CompleteMicroPlan(ctx context.Context, microPlanID string) (*MicroPlan, error) {
	var out MicroPlan
	if err := c.sendJSON(ctx, http.MethodPost, "/microplan/"+pathEscape(microPlanID)+"/complete", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

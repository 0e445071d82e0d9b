// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package api: doubt.go wraps the doubt-solver endpoints. Text doubts
// are a JSON POST; image and voice doubts are multipart uploads. All
// four operations propagate failures unchanged: a doubt answer computed
// from nothing would be worse than an honest error.
package api

import (
	"context"
	"io"
	"net/http"
	"time"
)

// SolutionStep is one step of a worked symbolic solution.
type SolutionStep struct {
	StepNumber  int    `json:"step_number"`
	Description string `json:"description"`
	Expression  string `json:"expression"`
	Explanation string `json:"explanation,omitempty"`
}

// DoubtAnswer is the structured answer to a doubt query: a textbook
// summary plus optional enrichments (worked example, prior exam
// question, challenge question, symbolic steps).
type DoubtAnswer struct {
	QueryID       string         `json:"query_id"`
	Summary       string         `json:"ncert_summary"`
	SolvedExample map[string]any `json:"solved_example,omitempty"`
	RelatedPYQ    map[string]any `json:"related_pyq,omitempty"`
	HOTSQuestion  map[string]any `json:"hots_question,omitempty"`
	SolutionSteps []SolutionStep `json:"wolfram_steps,omitempty"`
	Sources       []Source       `json:"sources"`
	Confidence    float64        `json:"confidence"`
	Metadata      map[string]any `json:"metadata,omitempty"`
}

// AskTextDoubtParams are the inputs for AskTextDoubt.
type AskTextDoubtParams struct {
	UserID  string `validate:"required"`
	Text    string `validate:"required"`
	Subject *Subject
}

// AskTextDoubt submits a typed question to the doubt solver.
func (c *Client) AskTextDoubt(ctx context.Context, p AskTextDoubtParams) (*DoubtAnswer, error) {
	if err := c.validateParams(p); err != nil {
		return nil, err
	}
	path := newQuery().
		addString("user_id", p.UserID).
		addString("text", p.Text).
		addSubject("subject", p.Subject).
		path("/doubt/text")
	var out DoubtAnswer
	if err := c.sendJSON(ctx, http.MethodPost, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AskImageDoubtParams are the inputs for AskImageDoubt. Image is the
// raw file content; Filename supplies the extension for server-side
// format detection.
type AskImageDoubtParams struct {
	UserID   string `validate:"required"`
	Filename string `validate:"required"`
	Image    io.Reader
	Subject  *Subject
}

// AskImageDoubt submits a photographed question as a multipart upload.
func (c *Client) AskImageDoubt(ctx context.Context, p AskImageDoubtParams) (*DoubtAnswer, error) {
	if err := c.validateParams(p); err != nil {
		return nil, err
	}
	payload := NewMultipartPayload()
	if err := payload.AddField("user_id", p.UserID); err != nil {
		return nil, err
	}
	if p.Subject != nil {
		if err := payload.AddField("subject", string(*p.Subject)); err != nil {
			return nil, err
		}
	}
	if err := payload.AddFile("image", p.Filename, p.Image); err != nil {
		return nil, err
	}
	var out DoubtAnswer
	if err := c.postMultipart(ctx, "/doubt/image", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AskVoiceDoubtParams are the inputs for AskVoiceDoubt.
type AskVoiceDoubtParams struct {
	UserID   string `validate:"required"`
	Filename string `validate:"required"`
	Audio    io.Reader
	Subject  *Subject
}

// AskVoiceDoubt submits a spoken question as a multipart upload.
func (c *Client) AskVoiceDoubt(ctx context.Context, p AskVoiceDoubtParams) (*DoubtAnswer, error) {
	if err := c.validateParams(p); err != nil {
		return nil, err
	}
	payload := NewMultipartPayload()
	if err := payload.AddField("user_id", p.UserID); err != nil {
		return nil, err
	}
	if p.Subject != nil {
		if err := payload.AddField("subject", string(*p.Subject)); err != nil {
			return nil, err
		}
	}
	if err := payload.AddFile("audio", p.Filename, p.Audio); err != nil {
		return nil, err
	}
	var out DoubtAnswer
	if err := c.postMultipart(ctx, "/doubt/voice", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DoubtRecord is one past doubt in a user's history.
type DoubtRecord struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Type      string    `json:"type"`
	Content   string    `json:"content"`
	Subject   Subject   `json:"subject,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// DoubtHistoryParams are the inputs for DoubtHistory.
type DoubtHistoryParams struct {
	UserID string `validate:"required"`
	Limit  *int   `validate:"omitempty,min=1,max=100"`
	Offset *int   `validate:"omitempty,min=0"`
}

// DoubtHistory lists a user's past doubt queries, newest first.
func (c *Client) DoubtHistory(ctx context.Context, p DoubtHistoryParams) (*ListEnvelope[DoubtRecord], error) {
	if err := c.validateParams(p); err != nil {
		return nil, err
	}
	path := newQuery().
		addString("user_id", p.UserID).
		addInt("limit", p.Limit).
		addInt("offset", p.Offset).
		path("/doubt/history")
	var out ListEnvelope[DoubtRecord]
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	out.Origin = OriginRemote
	if out.Items == nil {
		out.Items = []DoubtRecord{}
	}
	return &out, nil
}

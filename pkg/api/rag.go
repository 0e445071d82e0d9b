// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package api: rag.go wraps the retrieval-augmented-generation pipeline
// endpoints. Query is the one operation class with the synthesized
// fallback: when the pipeline is unreachable the offline classifier
// produces an answer in the identical envelope, flagged Offline with
// Origin "synthetic".
package api

import (
	"context"
	"net/http"
)

// RAGContext is one retrieved chunk that grounded an answer.
type RAGContext struct {
	ChunkID         string  `json:"chunk_id"`
	ContentID       string  `json:"content_id"`
	Text            string  `json:"text"`
	SimilarityScore float64 `json:"similarity_score"`
	SourceType      string  `json:"source_type,omitempty"`
	Subject         Subject `json:"subject,omitempty"`
}

// RAGAnswer is the envelope every tutoring answer arrives in, whether
// generated remotely or synthesized offline. The field set is identical
// across origins; Offline and Origin are the only markers.
type RAGAnswer struct {
	Query         string            `json:"query"`
	GeneratedText string            `json:"generated_text"`
	Contexts      []RAGContext      `json:"contexts"`
	Confidence    float64           `json:"confidence"`
	Sources       []Source          `json:"sources"`
	Metadata      map[string]string `json:"metadata,omitempty"`
	Offline       bool              `json:"offline"`
	Origin        Origin            `json:"origin"`
}

// RAGQueryParams are the inputs for QueryRAG. Constraints mirror the
// backend's validation so bad requests fail before the wire. The tuning
// knobs are pointers so an explicit zero threshold still reaches the
// backend.
type RAGQueryParams struct {
	Query               string `validate:"required"`
	Subject             *Subject
	TopK                *int     `validate:"omitempty,min=1,max=20"`
	ConfidenceThreshold *float64 `validate:"omitempty,min=0,max=1"`
}

// QueryRAG asks the tutoring pipeline a question.
//
// # Description
//
// POSTs to /rag/query. On an infra-class failure the offline classifier
// synthesizes an answer instead: deterministic keyword matching selects
// a canned subject-specific explanation (or a generic fallback), with
// empty contexts and sources, Offline set, and Origin "synthetic". Any
// other failure propagates.
//
// # Inputs
//
//   - ctx: cancellation and deadline
//   - p: query text plus optional subject and retrieval tuning
//
// # Outputs
//
//   - *RAGAnswer: never nil on nil error
//   - error: validation failure or a non-infra *APIError
func (c *Client) QueryRAG(ctx context.Context, p RAGQueryParams) (*RAGAnswer, error) {
	if err := c.validateParams(p); err != nil {
		return nil, err
	}

	body := map[string]any{"query": p.Query}
	if p.Subject != nil {
		body["subject"] = *p.Subject
	}
	if p.TopK != nil {
		body["top_k"] = *p.TopK
	}
	if p.ConfidenceThreshold != nil {
		body["confidence_threshold"] = *p.ConfidenceThreshold
	}

	var remote RAGAnswer
	err := c.sendJSON(ctx, http.MethodPost, "/rag/query", body, &remote)
	if err == nil {
		remote.Origin = OriginRemote
		if remote.Contexts == nil {
			remote.Contexts = []RAGContext{}
		}
		if remote.Sources == nil {
			remote.Sources = []Source{}
		}
		return &remote, nil
	}
	if !IsInfraFailure(err) {
		return nil, err
	}
	c.warnDegraded("QueryRAG", err)

	subject := Subject("")
	if p.Subject != nil {
		subject = *p.Subject
	}
	text, confidence := synthesizeAnswer(subject, p.Query)
	return &RAGAnswer{
		Query:         p.Query,
		GeneratedText: text,
		Contexts:      []RAGContext{},
		Confidence:    confidence,
		Sources:       []Source{},
		Metadata:      map[string]string{"generator": "offline-classifier"},
		Offline:       true,
		Origin:        OriginSynthetic,
	}, nil
}

// EmbedParams are the inputs for Embed.
type EmbedParams struct {
	Texts     []string `validate:"required,min=1"`
	BatchSize *int     `validate:"omitempty,min=1,max=100"`
}

// EmbedResult is the embedding service response.
type EmbedResult struct {
	Embeddings [][]float64 `json:"embeddings"`
	Dimension  int         `json:"dimension"`
	ModelName  string      `json:"model_name"`
	Count      int         `json:"count"`
}

// Embed generates embeddings for the given texts. No fallback: there is
// no meaningful degraded embedding.
func (c *Client) Embed(ctx context.Context, p EmbedParams) (*EmbedResult, error) {
	if err := c.validateParams(p); err != nil {
		return nil, err
	}
	body := map[string]any{"texts": p.Texts}
	if p.BatchSize != nil {
		body["batch_size"] = *p.BatchSize
	}
	var out EmbedResult
	if err := c.sendJSON(ctx, http.MethodPost, "/rag/embed", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SimilarSearchParams are the inputs for SimilarSearch.
type SimilarSearchParams struct {
	QueryVector []float64 `validate:"required,min=1"`
	TopK        *int      `validate:"omitempty,min=1,max=20"`
	Subject     *Subject
}

// SimilarChunk is one similarity search hit.
type SimilarChunk struct {
	ContentID       string  `json:"content_id"`
	ChunkID         string  `json:"chunk_id"`
	Text            string  `json:"text"`
	SimilarityScore float64 `json:"similarity_score"`
}

// SimilarSearch finds content chunks near a query vector. Propagates
// all failures.
func (c *Client) SimilarSearch(ctx context.Context, p SimilarSearchParams) ([]SimilarChunk, error) {
	if err := c.validateParams(p); err != nil {
		return nil, err
	}
	body := map[string]any{"query_vector": p.QueryVector}
	if p.TopK != nil {
		body["top_k"] = *p.TopK
	}
	if p.Subject != nil {
		body["subject"] = *p.Subject
	}
	var out []SimilarChunk
	if err := c.sendJSON(ctx, http.MethodPost, "/rag/similar", body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RAGStats reports pipeline health counters.
func (c *Client) RAGStats(ctx context.Context) (map[string]any, error) {
	var out map[string]any
	if err := c.getJSON(ctx, "/rag/stats", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestQueryRAG_SyntheticOnInfraFailure covers the offline-answer
// scenario: an unreachable pipeline yields a synthesized quadratic
// formula answer in the same envelope a remote answer would use.
func TestQueryRAG_SyntheticOnInfraFailure(t *testing.T) {
	c := newOfflineClient(t)

	subject := SubjectMathematics
	answer, err := c.QueryRAG(context.Background(), RAGQueryParams{
		Query:   "How do I solve a quadratic equation?",
		Subject: &subject,
	})
	require.NoError(t, err)

	assert.Equal(t, OriginSynthetic, answer.Origin)
	assert.True(t, answer.Offline)
	assert.Contains(t, answer.GeneratedText, "quadratic formula")
	assert.Equal(t, 0.9, answer.Confidence)
	assert.Equal(t, "How do I solve a quadratic equation?", answer.Query)

	// Same envelope shape as remote: slices present, never nil.
	assert.NotNil(t, answer.Contexts)
	assert.Empty(t, answer.Contexts)
	assert.NotNil(t, answer.Sources)
	assert.Empty(t, answer.Sources)
	assert.Equal(t, "offline-classifier", answer.Metadata["generator"])
}

// TestQueryRAG_RemoteAnswerTagged verifies a healthy pipeline response
// comes back tagged remote with nil slices normalized.
func TestQueryRAG_RemoteAnswerTagged(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rag/query", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		io.WriteString(w, `{"query":"q","generated_text":"a real answer","confidence":0.82}`)
	}))

	answer, err := c.QueryRAG(context.Background(), RAGQueryParams{Query: "q"})
	require.NoError(t, err)
	assert.Equal(t, OriginRemote, answer.Origin)
	assert.False(t, answer.Offline)
	assert.Equal(t, "a real answer", answer.GeneratedText)
	assert.NotNil(t, answer.Contexts)
	assert.NotNil(t, answer.Sources)
}

// TestQueryRAG_ValidationErrorPropagates verifies a rejected request is
// never answered offline: 422 is the caller's problem.
func TestQueryRAG_ValidationErrorPropagates(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		io.WriteString(w, `{"detail":"query too long"}`)
	}))

	_, err := c.QueryRAG(context.Background(), RAGQueryParams{Query: "q"})
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
}

// TestQueryRAG_ServerErrorSynthesizes verifies a 500 from the pipeline
// still produces an offline answer rather than an error.
func TestQueryRAG_ServerErrorSynthesizes(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, `{"detail":"Traceback ..."}`)
	}))

	answer, err := c.QueryRAG(context.Background(), RAGQueryParams{Query: "anything at all"})
	require.NoError(t, err)
	assert.True(t, answer.Offline)
	assert.Equal(t, OriginSynthetic, answer.Origin)
}

// TestQueryRAG_OptionalTuningKnobs verifies unset tuning fields stay off
// the wire while an explicit zero threshold is still sent.
func TestQueryRAG_OptionalTuningKnobs(t *testing.T) {
	var got map[string]any
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		io.WriteString(w, `{"query":"q","generated_text":"ok","confidence":0.8}`)
	}))

	_, err := c.QueryRAG(context.Background(), RAGQueryParams{Query: "q"})
	require.NoError(t, err)
	assert.NotContains(t, got, "top_k")
	assert.NotContains(t, got, "confidence_threshold")

	topK := 5
	threshold := 0.0
	_, err = c.QueryRAG(context.Background(), RAGQueryParams{
		Query:               "q",
		TopK:                &topK,
		ConfidenceThreshold: &threshold,
	})
	require.NoError(t, err)
	assert.Equal(t, float64(5), got["top_k"])
	assert.Equal(t, float64(0), got["confidence_threshold"])
}

// TestEmbed_Propagates verifies the non-query RAG operations carry no
// fallback.
func TestEmbed_Propagates(t *testing.T) {
	c := newOfflineClient(t)
	_, err := c.Embed(context.Background(), EmbedParams{Texts: []string{"x"}})
	require.Error(t, err)
	assert.True(t, IsInfraFailure(err))
}

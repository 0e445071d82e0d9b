// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestClassifyError_MessagePrecedence verifies the three-step message
// precedence: structured error message, legacy detail, generated text.
func TestClassifyError_MessagePrecedence(t *testing.T) {
	t.Run("structured error message wins", func(t *testing.T) {
		body := []byte(`{"error":{"message":"subject is required"},"detail":"ignored"}`)
		apiErr := classifyError(http.StatusBadRequest, "/notes", body)
		assert.Equal(t, "subject is required", apiErr.Message)
	})

	t.Run("legacy detail when no structured message", func(t *testing.T) {
		body := []byte(`{"detail":"User ID is required"}`)
		apiErr := classifyError(http.StatusBadRequest, "/notes", body)
		assert.Equal(t, "User ID is required", apiErr.Message)
	})

	t.Run("generated message when body is empty", func(t *testing.T) {
		apiErr := classifyError(http.StatusBadRequest, "/notes", nil)
		assert.Equal(t, "HTTP 400: Bad Request", apiErr.Message)
	})

	t.Run("non-JSON body falls back to generated message", func(t *testing.T) {
		apiErr := classifyError(http.StatusBadGateway, "/notes", []byte("<html>nginx</html>"))
		assert.Equal(t, "HTTP 502: Bad Gateway", apiErr.Message)
	})

	t.Run("status and raw payload preserved", func(t *testing.T) {
		body := []byte(`{"detail":"boom"}`)
		apiErr := classifyError(http.StatusBadRequest, "/quiz", body)
		assert.Equal(t, http.StatusBadRequest, apiErr.Status)
		assert.Equal(t, "/quiz", apiErr.Endpoint)
		assert.JSONEq(t, string(body), string(apiErr.Raw))
	})
}

// TestClassifyError_InternalErrorRefinement verifies that 500 messages
// are rewritten when the payload matches known failure signatures.
func TestClassifyError_InternalErrorRefinement(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{
			name: "missing api key reads as misconfiguration",
			body: `{"detail":"Gemini API key not configured"}`,
			want: "The server is misconfigured (missing or invalid service credentials). Contact the administrator.",
		},
		{
			name: "supabase failure reads as misconfiguration",
			body: `{"detail":"SUPABASE_SERVICE_KEY missing"}`,
			want: "The server is misconfigured (missing or invalid service credentials). Contact the administrator.",
		},
		{
			name: "traceback reads as server code error",
			body: `{"detail":"Traceback (most recent call last): ..."}`,
			want: "The server hit an internal code error while handling this request.",
		},
		{
			name: "indentation error reads as server code error",
			body: `{"detail":"IndentationError: unexpected indent"}`,
			want: "The server hit an internal code error while handling this request.",
		},
		{
			name: "anything else reads as generic internal error",
			body: `{"detail":"database deadlock"}`,
			want: "The server encountered an internal error. Please try again.",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			apiErr := classifyError(http.StatusInternalServerError, "/rag/query", []byte(tc.body))
			assert.Equal(t, tc.want, apiErr.Message)
			assert.Equal(t, http.StatusInternalServerError, apiErr.Status, "refinement must not change the status")
		})
	}
}

// TestClassifyError_ServiceUnavailable verifies the 503 path: keep a
// server-supplied message, otherwise advise a retry.
func TestClassifyError_ServiceUnavailable(t *testing.T) {
	t.Run("server message preferred", func(t *testing.T) {
		body := []byte(`{"detail":"Translation service is not available: no credentials"}`)
		apiErr := classifyError(http.StatusServiceUnavailable, "/translation/translate", body)
		assert.Equal(t, "Translation service is not available: no credentials", apiErr.Message)
	})

	t.Run("generic retry advice when no message", func(t *testing.T) {
		apiErr := classifyError(http.StatusServiceUnavailable, "/translation/translate", nil)
		assert.Equal(t, "The service is temporarily unavailable. Please retry later.", apiErr.Message)
	})
}

// TestIsInfraFailure verifies the exact boundary of fallback
// eligibility.
func TestIsInfraFailure(t *testing.T) {
	infra := []int{StatusNetworkError, http.StatusNotFound, http.StatusInternalServerError, http.StatusServiceUnavailable}
	for _, status := range infra {
		err := &APIError{Status: status, Message: "x"}
		assert.True(t, IsInfraFailure(err), "status %d should be infra-class", status)
	}

	notInfra := []int{
		http.StatusBadRequest,
		http.StatusUnauthorized,
		http.StatusForbidden,
		http.StatusUnprocessableEntity,
		http.StatusTooManyRequests,
		http.StatusBadGateway,
	}
	for _, status := range notInfra {
		err := &APIError{Status: status, Message: "x"}
		assert.False(t, IsInfraFailure(err), "status %d should not be infra-class", status)
	}

	t.Run("wrapped APIError still detected", func(t *testing.T) {
		inner := &APIError{Status: http.StatusNotFound, Message: "gone"}
		wrapped := fmt.Errorf("list notes: %w", inner)
		assert.True(t, IsInfraFailure(wrapped))
	})

	t.Run("non-API errors are never infra", func(t *testing.T) {
		assert.False(t, IsInfraFailure(errors.New("plain error")))
		assert.False(t, IsInfraFailure(nil))
	})
}

// TestRecordNotFoundError verifies the cache not-found error is distinct
// from transport failures and carries kind and id.
func TestRecordNotFoundError(t *testing.T) {
	err := &RecordNotFoundError{Kind: "note", ID: "note-42"}
	require.EqualError(t, err, `note "note-42" not found in local store`)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
	assert.False(t, IsInfraFailure(err))
}

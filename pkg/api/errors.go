// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// -----------------------------------------------------------------------------
// Error Types
// -----------------------------------------------------------------------------

// StatusNetworkError is the sentinel status for requests that never
// reached a server (DNS failure, refused connection, closed socket).
// For fallback purposes it is treated like a 5xx-class failure.
const StatusNetworkError = 0

// APIError is the typed error produced by the transport primitive.
//
// # Description
//
// APIError carries everything a caller or collaborator needs: a
// display-ready Message, the numeric Status (StatusNetworkError for
// network-level failures), the Endpoint that was called, and the raw
// server payload for debugging. The message may have been refined by
// status-specific classification, but Status and Raw are always the
// originals.
//
// # Examples
//
//	var apiErr *api.APIError
//	if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
//	    // endpoint missing on this deployment
//	}
type APIError struct {
	// Status is the HTTP status code, or StatusNetworkError.
	Status int

	// Message is human-readable and suitable for direct display.
	Message string

	// Endpoint is the relative path that was requested.
	Endpoint string

	// Raw is the unmodified error payload from the server, if any.
	Raw json.RawMessage
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// RecordNotFoundError reports that a cache-backed update or delete could
// not locate the record. It is deliberately distinct from *APIError so
// callers can tell "your id is wrong" apart from "transport failed".
type RecordNotFoundError struct {
	// Kind is the resource kind, e.g. "note" or "quiz".
	Kind string

	// ID is the record id that was not found.
	ID string
}

// Error implements the error interface.
func (e *RecordNotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found in local store", e.Kind, e.ID)
}

// -----------------------------------------------------------------------------
// Classification
// -----------------------------------------------------------------------------

// serverErrorBody is the error shape the backend sends: a structured
// {error:{message}} object on newer endpoints, a legacy {detail} string
// on older ones. Either field may be absent.
type serverErrorBody struct {
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail string `json:"detail"`
}

// classifyError builds the APIError for a non-2xx response.
//
// # Description
//
// Parses the body tolerantly (empty or non-JSON bodies are fine), picks
// the message by precedence — structured error message, legacy detail,
// generated "HTTP <status>: <statusText>" — then applies status-specific
// refinement. The original status and raw payload are preserved on the
// returned error regardless of refinement.
//
// # Inputs
//
//   - status: HTTP status code from the response
//   - endpoint: relative path, for diagnostics and the 404 event
//   - body: raw response body (may be empty or non-JSON)
//
// # Outputs
//
//   - *APIError: never nil
func classifyError(status int, endpoint string, body []byte) *APIError {
	msg := ""
	var parsed serverErrorBody
	if len(body) > 0 {
		// Tolerate non-JSON bodies; parsed stays zero and the synthetic
		// message below applies.
		_ = json.Unmarshal(body, &parsed)
	}
	if parsed.Error != nil && parsed.Error.Message != "" {
		msg = parsed.Error.Message
	} else if parsed.Detail != "" {
		msg = parsed.Detail
	} else {
		msg = fmt.Sprintf("HTTP %d: %s", status, http.StatusText(status))
	}

	msg = refineMessage(status, msg, body)

	return &APIError{
		Status:   status,
		Message:  msg,
		Endpoint: endpoint,
		Raw:      json.RawMessage(body),
	}
}

// refineMessage rewrites the message for particular status codes when the
// payload matches known failure signatures. The rewriting is cosmetic:
// status and raw payload stay attached to the error.
func refineMessage(status int, msg string, body []byte) string {
	payload := strings.ToLower(string(body) + " " + msg)

	switch status {
	case http.StatusInternalServerError:
		switch {
		case strings.Contains(payload, "api key"),
			strings.Contains(payload, "credential"),
			strings.Contains(payload, "supabase"):
			return "The server is misconfigured (missing or invalid service credentials). Contact the administrator."
		case strings.Contains(payload, "indentationerror"),
			strings.Contains(payload, "syntaxerror"),
			strings.Contains(payload, "traceback"):
			return "The server hit an internal code error while handling this request."
		default:
			return "The server encountered an internal error. Please try again."
		}
	case http.StatusServiceUnavailable:
		// Prefer a server-supplied message; otherwise generic retry advice.
		if msg != "" && !strings.HasPrefix(msg, "HTTP ") {
			return msg
		}
		return "The service is temporarily unavailable. Please retry later."
	}
	return msg
}

// networkError builds the APIError for a request that never produced a
// response.
func networkError(endpoint string, err error) *APIError {
	return &APIError{
		Status:   StatusNetworkError,
		Message:  fmt.Sprintf("Cannot reach the server: %v", err),
		Endpoint: endpoint,
	}
}

// IsInfraFailure reports whether err looks like missing infrastructure
// rather than a rejected request: a network-level failure, 404, 500, or
// 503. These are the only statuses eligible for any fallback strategy.
// Validation failures the server legitimately reports (400, 401, 403,
// 422, ...) are never infra-class.
func IsInfraFailure(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.Status {
	case StatusNetworkError,
		http.StatusNotFound,
		http.StatusInternalServerError,
		http.StatusServiceUnavailable:
		return true
	}
	return false
}

// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package api: client.go holds the Client type and the transport
// primitive every endpoint wrapper funnels through.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/time/rate"

	"github.com/AleutianAI/Schoolhouse/pkg/localstore"
)

// -----------------------------------------------------------------------------
// Base URL Resolution
// -----------------------------------------------------------------------------

// BaseURLEnvVar overrides the backend base URL when set.
const BaseURLEnvVar = "SCHOOLHOUSE_API_URL"

// defaultLocalBaseURL is the development backend, matching the FastAPI
// service's default bind address.
const defaultLocalBaseURL = "http://localhost:8000/api"

var (
	baseURLOnce  sync.Once
	resolvedBase string
)

// ResolveBaseURL picks the backend base URL by fixed precedence:
// the SCHOOLHOUSE_API_URL environment variable, else the configured
// production URL (passed by the caller from its config file), else the
// localhost development default. The result is computed once and treated
// as static for the process lifetime.
func ResolveBaseURL(configured string) string {
	baseURLOnce.Do(func() {
		resolvedBase = resolveBaseURL(os.Getenv(BaseURLEnvVar), configured)
	})
	return resolvedBase
}

// resolveBaseURL applies the precedence without touching process state:
// env override, then configured URL, then the localhost default. A
// trailing slash is trimmed so path joining stays uniform.
func resolveBaseURL(envValue, configured string) string {
	var base string
	switch {
	case envValue != "":
		base = envValue
	case configured != "":
		base = configured
	default:
		base = defaultLocalBaseURL
	}
	return strings.TrimSuffix(base, "/")
}

// -----------------------------------------------------------------------------
// Client
// -----------------------------------------------------------------------------

// Options configures a Client. The zero value is usable for tests that
// set BaseURL and Store explicitly.
type Options struct {
	// BaseURL overrides base URL resolution entirely. When empty, the
	// process-wide ResolveBaseURL("") result applies.
	BaseURL string

	// HTTPClient is the underlying transport. Defaults to a client with
	// a 30 second timeout, matching the backend's slowest endpoints.
	HTTPClient *http.Client

	// Store is the local persisted store used by the fallback
	// strategies. Defaults to an in-memory store; the CLI passes a
	// badger-backed one.
	Store localstore.Store

	// Logger receives degradation warnings and debug output.
	// Defaults to slog.Default().
	Logger *slog.Logger

	// RequestsPerMinute caps outbound request rate, mirroring the
	// backend's 100/minute policy. Zero means 100. Negative disables
	// limiting (tests).
	RequestsPerMinute int
}

// Client is the resilient API client. One instance per process is the
// expected usage; it is safe for concurrent use, though the fallback
// contract assumes callers do not interleave two degraded writes to the
// same user's resource list.
type Client struct {
	baseURL    string
	httpClient *http.Client
	store      localstore.Store
	logger     *slog.Logger
	limiter    *rate.Limiter
	validate   *validator.Validate
	events     *ErrorHub

	// now is injectable for deterministic id/timestamp tests.
	now func() time.Time
}

// New creates a Client.
//
// # Description
//
// Builds a Client with the resolved base URL, the given local store, and
// a rate limiter. All endpoint wrappers share this one transport.
//
// # Inputs
//
//   - opts: see Options; zero values get production defaults
//
// # Outputs
//
//   - *Client: ready for use
//
// # Examples
//
//	client := api.New(api.Options{Store: store})
//	health, err := client.Health(ctx)
func New(opts Options) *Client {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = ResolveBaseURL("")
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	store := opts.Store
	if store == nil {
		store = localstore.NewMemoryStore()
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var limiter *rate.Limiter
	switch {
	case opts.RequestsPerMinute < 0:
		limiter = rate.NewLimiter(rate.Inf, 1)
	case opts.RequestsPerMinute == 0:
		limiter = rate.NewLimiter(rate.Limit(100.0/60.0), 10)
	default:
		limiter = rate.NewLimiter(rate.Limit(float64(opts.RequestsPerMinute)/60.0), 10)
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		store:      store,
		logger:     logger,
		limiter:    limiter,
		validate:   validator.New(),
		events:     NewErrorHub(),
		now:        time.Now,
	}
}

// Events returns the hub that broadcasts 404 error events.
func (c *Client) Events() *ErrorHub {
	return c.events
}

// BaseURL returns the resolved backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// -----------------------------------------------------------------------------
// Transport Primitive
// -----------------------------------------------------------------------------

// roundTrip performs one HTTP request and decodes the JSON response.
//
// # Description
//
// This is the single transport primitive: resolve the relative path
// against the base URL, send, and either decode a 2xx JSON body into out
// or classify the failure into a typed *APIError. An empty 2xx body
// leaves out at its zero value (the "empty object" case). 404 responses
// additionally publish an ErrorEvent; that is the only side effect
// beyond the HTTP call itself.
//
// # Inputs
//
//   - ctx: cancellation and deadline
//   - method: HTTP method
//   - path: relative path, query string already attached
//   - contentType: Content-Type header; empty means none
//   - body: request body reader, may be nil
//   - out: pointer to decode the success body into, may be nil
//
// # Outputs
//
//   - error: nil on 2xx, *APIError otherwise
//
// # Limitations
//
//   - No retries and no timeout beyond the http.Client's own; a request
//     is attempted exactly once.
func (c *Client) roundTrip(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return networkError(path, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return networkError(path, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return networkError(path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return networkError(path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := classifyError(resp.StatusCode, path, respBody)
		if resp.StatusCode == http.StatusNotFound {
			c.events.publish(ErrorEvent{
				Status:   apiErr.Status,
				Message:  apiErr.Message,
				Endpoint: path,
			})
		}
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		// Empty success body: the caller gets the zero value, the JSON
		// equivalent of an empty object.
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return &APIError{
			Status:   resp.StatusCode,
			Message:  fmt.Sprintf("Failed to parse server response: %v", err),
			Endpoint: path,
			Raw:      json.RawMessage(respBody),
		}
	}
	return nil
}

// getJSON issues a GET and decodes the response into out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	return c.roundTrip(ctx, http.MethodGet, path, "", nil, out)
}

// sendJSON issues method with a JSON-serialized body.
func (c *Client) sendJSON(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	contentType := ""
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request body for %s: %w", path, err)
		}
		body = bytes.NewReader(raw)
		contentType = "application/json"
	}
	return c.roundTrip(ctx, method, path, contentType, body, out)
}

// -----------------------------------------------------------------------------
// Multipart Variant
// -----------------------------------------------------------------------------

// MultipartPayload accumulates a multipart/form-data body for upload
// operations (doubt images, voice recordings). Build it with AddField
// and AddFile, then pass it to the multipart transport, which always
// issues POST and lets the writer's boundary set the content type.
type MultipartPayload struct {
	buf    bytes.Buffer
	writer *multipart.Writer
	closed bool
}

// NewMultipartPayload creates an empty payload.
func NewMultipartPayload() *MultipartPayload {
	p := &MultipartPayload{}
	p.writer = multipart.NewWriter(&p.buf)
	return p
}

// AddField appends a simple form field.
func (p *MultipartPayload) AddField(name, value string) error {
	return p.writer.WriteField(name, value)
}

// AddFile appends a file part read from r.
func (p *MultipartPayload) AddFile(field, filename string, r io.Reader) error {
	w, err := p.writer.CreateFormFile(field, filename)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, r)
	return err
}

// close finalizes the body. Idempotent.
func (p *MultipartPayload) close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	return p.writer.Close()
}

// postMultipart issues a POST with a multipart body. The content type
// comes from the writer so the boundary is preserved; the JSON content
// type is deliberately not set.
func (c *Client) postMultipart(ctx context.Context, path string, payload *MultipartPayload, out any) error {
	if err := payload.close(); err != nil {
		return fmt.Errorf("finalize multipart body for %s: %w", path, err)
	}
	return c.roundTrip(ctx, http.MethodPost, path, payload.writer.FormDataContentType(), &payload.buf, out)
}

// warnDegraded logs the non-fatal diagnostic every taken fallback path
// must surface: invisible to the end user, visible to developers.
func (c *Client) warnDegraded(op string, err error) {
	c.logger.Warn("remote call failed, serving degraded response",
		slog.String("operation", op),
		slog.String("error", err.Error()))
}

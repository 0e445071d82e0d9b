// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package api

import "context"

// HealthStatus is the backend liveness payload.
type HealthStatus struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// Health checks backend liveness. Propagates all failures; callers use
// the error itself as the signal.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	var out HealthStatus
	if err := c.getJSON(ctx, "/health", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// HealthConfig reports which backend integrations are configured,
// keyed by integration name.
func (c *Client) HealthConfig(ctx context.Context) (map[string]any, error) {
	out := map[string]any{}
	if err := c.getJSON(ctx, "/health/config", &out); err != nil {
		return nil, err
	}
	return out, nil
}

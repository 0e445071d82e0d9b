// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package api

// Origin tags where a response came from. Callers must not be able to
// distinguish sources any other way: the envelope shape is identical for
// all three.
type Origin string

const (
	// OriginRemote marks a genuine backend response.
	OriginRemote Origin = "remote"

	// OriginCache marks a response reconstructed from the local store.
	OriginCache Origin = "cache"

	// OriginSynthetic marks a locally generated response (mock payloads
	// and offline-computed answers).
	OriginSynthetic Origin = "synthetic"
)

// ListEnvelope is the uniform shape for list-returning operations:
// items, total count, and echoed pagination parameters.
type ListEnvelope[T any] struct {
	Items  []T    `json:"items"`
	Total  int    `json:"total"`
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
	Origin Origin `json:"origin"`
}

// RecordEnvelope is the uniform shape for single-record operations.
type RecordEnvelope[T any] struct {
	Record T      `json:"record"`
	Origin Origin `json:"origin"`
}

// newListEnvelope builds a ListEnvelope. Items is never nil in the
// result, so an empty degraded read still serializes as an empty list.
func newListEnvelope[T any](origin Origin, items []T, total, limit, offset int) *ListEnvelope[T] {
	if items == nil {
		items = []T{}
	}
	return &ListEnvelope[T]{
		Items:  items,
		Total:  total,
		Limit:  limit,
		Offset: offset,
		Origin: origin,
	}
}

// newRecordEnvelope builds a RecordEnvelope.
func newRecordEnvelope[T any](origin Origin, record T) *RecordEnvelope[T] {
	return &RecordEnvelope[T]{Record: record, Origin: origin}
}

// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package api

import (
	"fmt"
	"net/url"
	"strconv"
)

// queryBuilder constructs the query string for an endpoint wrapper.
//
// The construction rule is uniform across all operations: an optional
// parameter the caller left unset is omitted entirely — never sent with
// an empty value — and array-valued parameters are encoded as repeated
// keys. Optionals are pointers so "unset" and "zero" stay distinct.
type queryBuilder struct {
	values url.Values
}

func newQuery() *queryBuilder {
	return &queryBuilder{values: url.Values{}}
}

// addString adds key=v. Empty strings are treated as unset.
func (q *queryBuilder) addString(key, v string) *queryBuilder {
	if v != "" {
		q.values.Add(key, v)
	}
	return q
}

// addStringPtr adds key=*v when v is non-nil.
func (q *queryBuilder) addStringPtr(key string, v *string) *queryBuilder {
	if v != nil {
		q.values.Add(key, *v)
	}
	return q
}

// addSubject adds key=v when v is non-nil.
func (q *queryBuilder) addSubject(key string, v *Subject) *queryBuilder {
	if v != nil {
		q.values.Add(key, string(*v))
	}
	return q
}

// addInt adds key=*v when v is non-nil.
func (q *queryBuilder) addInt(key string, v *int) *queryBuilder {
	if v != nil {
		q.values.Add(key, strconv.Itoa(*v))
	}
	return q
}

// addStrings adds one key=v pair per element, preserving order.
func (q *queryBuilder) addStrings(key string, vs []string) *queryBuilder {
	for _, v := range vs {
		q.values.Add(key, v)
	}
	return q
}

// path appends the encoded query to base, or returns base unchanged when
// no parameters were added.
func (q *queryBuilder) path(base string) string {
	if len(q.values) == 0 {
		return base
	}
	return base + "?" + q.values.Encode()
}

// pathEscape escapes one path segment. Required identifiers go in the
// path; this keeps user-supplied ids from breaking the URL.
func pathEscape(segment string) string {
	return url.PathEscape(segment)
}

// intOr returns *v, or def when v is nil. Used to echo pagination
// parameters back in envelopes with server-side defaults applied.
func intOr(v *int, def int) int {
	if v != nil {
		return *v
	}
	return def
}

// validateParams runs struct validation and converts the failure into a
// display-ready error so bad parameters never reach the wire.
func (c *Client) validateParams(p any) error {
	if err := c.validate.Struct(p); err != nil {
		return fmt.Errorf("invalid parameters: %w", err)
	}
	return nil
}

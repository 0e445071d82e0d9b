// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package api: memory.go wraps the remembered-context ("memory")
// endpoints the tutoring pipeline uses to personalize answers. Same
// cache fallback contract as notes.
package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/AleutianAI/Schoolhouse/pkg/localstore"
)

// MemoryEntry is one remembered fact about a student, e.g. "struggles
// with integration by parts".
type MemoryEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Fact      string    `json:"fact"`
	Subject   Subject   `json:"subject,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RememberFactParams are the inputs for RememberFact.
type RememberFactParams struct {
	UserID  string `validate:"required"`
	Fact    string `validate:"required"`
	Subject Subject
}

// RememberFact stores a fact remotely, or in the local store on infra
// failure.
func (c *Client) RememberFact(ctx context.Context, p RememberFactParams) (*RecordEnvelope[MemoryEntry], error) {
	if err := c.validateParams(p); err != nil {
		return nil, err
	}

	body := map[string]any{
		"user_id": p.UserID,
		"fact":    p.Fact,
	}
	if p.Subject != "" {
		body["subject"] = p.Subject
	}

	var remote MemoryEntry
	err := c.sendJSON(ctx, http.MethodPost, "/memory", body, &remote)
	if err == nil {
		return newRecordEnvelope(OriginRemote, remote), nil
	}
	if !IsInfraFailure(err) {
		return nil, err
	}
	c.warnDegraded("RememberFact", err)

	now := c.now().UTC()
	entry := MemoryEntry{
		ID:        fmt.Sprintf("mem-%d", now.UnixMilli()),
		UserID:    p.UserID,
		Fact:      p.Fact,
		Subject:   p.Subject,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := prependRecord(c.store, localstore.MemoryKey(p.UserID), entry); err != nil {
		return nil, err
	}
	return newRecordEnvelope(OriginCache, entry), nil
}

// RecallFactsParams are the inputs for RecallFacts.
type RecallFactsParams struct {
	UserID  string `validate:"required"`
	Subject *Subject
	Search  *string
	Limit   *int `validate:"omitempty,min=1,max=100"`
	Offset  *int `validate:"omitempty,min=0"`
}

// RecallFacts lists remembered facts for a user. The degraded read
// filters by subject and case-insensitive substring over the fact text.
func (c *Client) RecallFacts(ctx context.Context, p RecallFactsParams) (*ListEnvelope[MemoryEntry], error) {
	if err := c.validateParams(p); err != nil {
		return nil, err
	}

	path := newQuery().
		addSubject("subject", p.Subject).
		addStringPtr("search", p.Search).
		addInt("limit", p.Limit).
		addInt("offset", p.Offset).
		path("/memory/" + pathEscape(p.UserID))

	var remote ListEnvelope[MemoryEntry]
	err := c.getJSON(ctx, path, &remote)
	if err == nil {
		remote.Origin = OriginRemote
		if remote.Items == nil {
			remote.Items = []MemoryEntry{}
		}
		return &remote, nil
	}
	if !IsInfraFailure(err) {
		return nil, err
	}
	c.warnDegraded("RecallFacts", err)

	entries, lerr := loadList[MemoryEntry](c.store, localstore.MemoryKey(p.UserID))
	if lerr != nil {
		return nil, lerr
	}

	filtered := make([]MemoryEntry, 0, len(entries))
	var needle string
	if p.Search != nil {
		needle = strings.ToLower(*p.Search)
	}
	for _, e := range entries {
		if p.Subject != nil && e.Subject != *p.Subject {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(e.Fact), needle) {
			continue
		}
		filtered = append(filtered, e)
	}

	offset := intOr(p.Offset, 0)
	limit := intOr(p.Limit, 50)
	page, total := paginate(filtered, offset, limit)
	return newListEnvelope(OriginCache, page, total, limit, offset), nil
}

// ForgetFactParams are the inputs for ForgetFact.
type ForgetFactParams struct {
	UserID  string `validate:"required"`
	EntryID string `validate:"required"`
}

// ForgetFact deletes a remembered fact remotely or from the local list.
func (c *Client) ForgetFact(ctx context.Context, p ForgetFactParams) (*RecordEnvelope[MemoryEntry], error) {
	if err := c.validateParams(p); err != nil {
		return nil, err
	}

	var remote MemoryEntry
	err := c.sendJSON(ctx, http.MethodDelete, "/memory/"+pathEscape(p.EntryID), nil, &remote)
	if err == nil {
		return newRecordEnvelope(OriginRemote, remote), nil
	}
	if !IsInfraFailure(err) {
		return nil, err
	}
	c.warnDegraded("ForgetFact", err)

	key := localstore.MemoryKey(p.UserID)
	entries, lerr := loadList[MemoryEntry](c.store, key)
	if lerr != nil {
		return nil, lerr
	}
	for i := range entries {
		if entries[i].ID != p.EntryID {
			continue
		}
		removed := entries[i]
		entries = append(entries[:i], entries[i+1:]...)
		if err := saveList(c.store, key, entries); err != nil {
			return nil, err
		}
		return newRecordEnvelope(OriginCache, removed), nil
	}
	return nil, &RecordNotFoundError{Kind: "memory entry", ID: p.EntryID}
}

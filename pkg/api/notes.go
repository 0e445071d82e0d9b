// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package api: notes.go wraps the notes endpoints. Notes are user-owned
// records, so every operation here carries the cache fallback: on an
// infra-class failure the user's namespaced list in the local store
// becomes the source of truth, with envelopes identical to the remote
// ones.
package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/AleutianAI/Schoolhouse/pkg/localstore"
)

// Note is a student note.
type Note struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Subject   Subject   `json:"subject"`
	Chapter   string    `json:"chapter,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateNoteParams are the inputs for CreateNote.
type CreateNoteParams struct {
	UserID  string  `validate:"required"`
	Title   string  `validate:"required"`
	Subject Subject `validate:"omitempty,oneof=mathematics physics chemistry biology"`
	Chapter string
	Content string
}

// CreateNote creates a note remotely, or in the local store when the
// backend is unreachable. The degraded record gets a note-<unix-ms> id
// and creation timestamps, and the returned envelope is shaped exactly
// like the remote one.
func (c *Client) CreateNote(ctx context.Context, p CreateNoteParams) (*RecordEnvelope[Note], error) {
	if err := c.validateParams(p); err != nil {
		return nil, err
	}

	body := map[string]any{
		"user_id": p.UserID,
		"title":   p.Title,
		"content": p.Content,
	}
	if p.Subject != "" {
		body["subject"] = p.Subject
	}
	if p.Chapter != "" {
		body["chapter"] = p.Chapter
	}

	var remote Note
	err := c.sendJSON(ctx, http.MethodPost, "/notes", body, &remote)
	if err == nil {
		return newRecordEnvelope(OriginRemote, remote), nil
	}
	if !IsInfraFailure(err) {
		return nil, err
	}
	c.warnDegraded("CreateNote", err)

	now := c.now().UTC()
	note := Note{
		ID:        fmt.Sprintf("note-%d", now.UnixMilli()),
		UserID:    p.UserID,
		Title:     p.Title,
		Subject:   p.Subject,
		Chapter:   p.Chapter,
		Content:   p.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := prependRecord(c.store, localstore.NotesKey(p.UserID), note); err != nil {
		return nil, err
	}
	return newRecordEnvelope(OriginCache, note), nil
}

// ListNotesParams are the inputs for ListNotes. Subject, Search, Limit
// and Offset are optional filters; nil means "not supplied" and the
// parameter is omitted from the request entirely.
type ListNotesParams struct {
	UserID  string `validate:"required"`
	Subject *Subject
	Search  *string
	Limit   *int `validate:"omitempty,min=1,max=100"`
	Offset  *int `validate:"omitempty,min=0"`
}

// ListNotes lists a user's notes with optional subject filter, free-text
// search, and pagination.
//
// The degraded read applies the same semantics the server would: subject
// equality, case-insensitive substring match across title, subject, and
// chapter, then offset/limit slicing — over the full namespaced list at
// the moment of the read.
func (c *Client) ListNotes(ctx context.Context, p ListNotesParams) (*ListEnvelope[Note], error) {
	if err := c.validateParams(p); err != nil {
		return nil, err
	}

	path := newQuery().
		addSubject("subject", p.Subject).
		addStringPtr("search", p.Search).
		addInt("limit", p.Limit).
		addInt("offset", p.Offset).
		path("/notes/" + pathEscape(p.UserID))

	var remote ListEnvelope[Note]
	err := c.getJSON(ctx, path, &remote)
	if err == nil {
		remote.Origin = OriginRemote
		if remote.Items == nil {
			remote.Items = []Note{}
		}
		return &remote, nil
	}
	if !IsInfraFailure(err) {
		return nil, err
	}
	c.warnDegraded("ListNotes", err)

	notes, lerr := loadList[Note](c.store, localstore.NotesKey(p.UserID))
	if lerr != nil {
		return nil, lerr
	}
	filtered := filterNotes(notes, p.Subject, p.Search)
	offset := intOr(p.Offset, 0)
	limit := intOr(p.Limit, 50)
	page, total := paginate(filtered, offset, limit)
	return newListEnvelope(OriginCache, page, total, limit, offset), nil
}

// filterNotes applies the server's filter semantics to a local list.
func filterNotes(notes []Note, subject *Subject, search *string) []Note {
	out := make([]Note, 0, len(notes))
	var needle string
	if search != nil {
		needle = strings.ToLower(*search)
	}
	for _, n := range notes {
		if subject != nil && n.Subject != *subject {
			continue
		}
		if needle != "" {
			haystack := strings.ToLower(n.Title + " " + string(n.Subject) + " " + n.Chapter)
			if !strings.Contains(haystack, needle) {
				continue
			}
		}
		out = append(out, n)
	}
	return out
}

// UpdateNoteParams are the inputs for UpdateNote. Nil fields are left
// unchanged.
type UpdateNoteParams struct {
	UserID  string `validate:"required"`
	NoteID  string `validate:"required"`
	Title   *string
	Chapter *string
	Content *string
}

// UpdateNote updates a note remotely or, when the backend is
// unreachable, in place in the local list. An id missing from the local
// list surfaces a *RecordNotFoundError, not a transport failure.
func (c *Client) UpdateNote(ctx context.Context, p UpdateNoteParams) (*RecordEnvelope[Note], error) {
	if err := c.validateParams(p); err != nil {
		return nil, err
	}

	body := map[string]any{}
	if p.Title != nil {
		body["title"] = *p.Title
	}
	if p.Chapter != nil {
		body["chapter"] = *p.Chapter
	}
	if p.Content != nil {
		body["content"] = *p.Content
	}

	var remote Note
	err := c.sendJSON(ctx, http.MethodPut, "/notes/"+pathEscape(p.NoteID), body, &remote)
	if err == nil {
		return newRecordEnvelope(OriginRemote, remote), nil
	}
	if !IsInfraFailure(err) {
		return nil, err
	}
	c.warnDegraded("UpdateNote", err)

	key := localstore.NotesKey(p.UserID)
	notes, lerr := loadList[Note](c.store, key)
	if lerr != nil {
		return nil, lerr
	}
	for i := range notes {
		if notes[i].ID != p.NoteID {
			continue
		}
		if p.Title != nil {
			notes[i].Title = *p.Title
		}
		if p.Chapter != nil {
			notes[i].Chapter = *p.Chapter
		}
		if p.Content != nil {
			notes[i].Content = *p.Content
		}
		notes[i].UpdatedAt = c.now().UTC()
		if err := saveList(c.store, key, notes); err != nil {
			return nil, err
		}
		return newRecordEnvelope(OriginCache, notes[i]), nil
	}
	return nil, &RecordNotFoundError{Kind: "note", ID: p.NoteID}
}

// DeleteNoteParams are the inputs for DeleteNote.
type DeleteNoteParams struct {
	UserID string `validate:"required"`
	NoteID string `validate:"required"`
}

// DeleteNote deletes a note remotely or from the local list, returning
// the removed record.
func (c *Client) DeleteNote(ctx context.Context, p DeleteNoteParams) (*RecordEnvelope[Note], error) {
	if err := c.validateParams(p); err != nil {
		return nil, err
	}

	var remote Note
	err := c.sendJSON(ctx, http.MethodDelete, "/notes/"+pathEscape(p.NoteID), nil, &remote)
	if err == nil {
		return newRecordEnvelope(OriginRemote, remote), nil
	}
	if !IsInfraFailure(err) {
		return nil, err
	}
	c.warnDegraded("DeleteNote", err)

	key := localstore.NotesKey(p.UserID)
	notes, lerr := loadList[Note](c.store, key)
	if lerr != nil {
		return nil, lerr
	}
	for i := range notes {
		if notes[i].ID != p.NoteID {
			continue
		}
		removed := notes[i]
		notes = append(notes[:i], notes[i+1:]...)
		if err := saveList(c.store, key, notes); err != nil {
			return nil, err
		}
		return newRecordEnvelope(OriginCache, removed), nil
	}
	return nil, &RecordNotFoundError{Kind: "note", ID: p.NoteID}
}

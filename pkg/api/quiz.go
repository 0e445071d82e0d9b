// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/AleutianAI/Schoolhouse/pkg/localstore"
)

// QuizQuestion is one question inside a saved quiz.
type QuizQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options,omitempty"`
	Answer   string   `json:"answer"`
	Marks    int      `json:"marks,omitempty"`
}

// Quiz is a user-authored practice quiz. Quizzes follow the same cache
// fallback contract as notes: the namespaced local list is the source of
// truth whenever the backend is unreachable.
type Quiz struct {
	ID        string         `json:"id"`
	UserID    string         `json:"user_id"`
	Title     string         `json:"title"`
	Subject   Subject        `json:"subject"`
	Chapter   string         `json:"chapter,omitempty"`
	Questions []QuizQuestion `json:"questions"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// CreateQuizParams are the inputs for CreateQuiz.
type CreateQuizParams struct {
	UserID    string `validate:"required"`
	Title     string `validate:"required"`
	Subject   Subject
	Chapter   string
	Questions []QuizQuestion
}

// CreateQuiz creates a quiz remotely, or in the local store on infra
// failure.
func (c *Client) CreateQuiz(ctx context.Context, p CreateQuizParams) (*RecordEnvelope[Quiz], error) {
	if err := c.validateParams(p); err != nil {
		return nil, err
	}

	body := map[string]any{
		"user_id":   p.UserID,
		"title":     p.Title,
		"subject":   p.Subject,
		"chapter":   p.Chapter,
		"questions": p.Questions,
	}

	var remote Quiz
	err := c.sendJSON(ctx, http.MethodPost, "/quizzes", body, &remote)
	if err == nil {
		return newRecordEnvelope(OriginRemote, remote), nil
	}
	if !IsInfraFailure(err) {
		return nil, err
	}
	c.warnDegraded("CreateQuiz", err)

	now := c.now().UTC()
	quiz := Quiz{
		ID:        fmt.Sprintf("quiz-%d", now.UnixMilli()),
		UserID:    p.UserID,
		Title:     p.Title,
		Subject:   p.Subject,
		Chapter:   p.Chapter,
		Questions: p.Questions,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := prependRecord(c.store, localstore.QuizzesKey(p.UserID), quiz); err != nil {
		return nil, err
	}
	return newRecordEnvelope(OriginCache, quiz), nil
}

// ListQuizzesParams are the inputs for ListQuizzes.
type ListQuizzesParams struct {
	UserID  string `validate:"required"`
	Subject *Subject
	Search  *string
	Limit   *int `validate:"omitempty,min=1,max=100"`
	Offset  *int `validate:"omitempty,min=0"`
}

// ListQuizzes lists a user's quizzes with the same filter semantics as
// ListNotes.
func (c *Client) ListQuizzes(ctx context.Context, p ListQuizzesParams) (*ListEnvelope[Quiz], error) {
	if err := c.validateParams(p); err != nil {
		return nil, err
	}

	path := newQuery().
		addSubject("subject", p.Subject).
		addStringPtr("search", p.Search).
		addInt("limit", p.Limit).
		addInt("offset", p.Offset).
		path("/quizzes/" + pathEscape(p.UserID))

	var remote ListEnvelope[Quiz]
	err := c.getJSON(ctx, path, &remote)
	if err == nil {
		remote.Origin = OriginRemote
		if remote.Items == nil {
			remote.Items = []Quiz{}
		}
		return &remote, nil
	}
	if !IsInfraFailure(err) {
		return nil, err
	}
	c.warnDegraded("ListQuizzes", err)

	quizzes, lerr := loadList[Quiz](c.store, localstore.QuizzesKey(p.UserID))
	if lerr != nil {
		return nil, lerr
	}

	filtered := make([]Quiz, 0, len(quizzes))
	var needle string
	if p.Search != nil {
		needle = strings.ToLower(*p.Search)
	}
	for _, q := range quizzes {
		if p.Subject != nil && q.Subject != *p.Subject {
			continue
		}
		if needle != "" {
			haystack := strings.ToLower(q.Title + " " + string(q.Subject) + " " + q.Chapter)
			if !strings.Contains(haystack, needle) {
				continue
			}
		}
		filtered = append(filtered, q)
	}

	offset := intOr(p.Offset, 0)
	limit := intOr(p.Limit, 50)
	page, total := paginate(filtered, offset, limit)
	return newListEnvelope(OriginCache, page, total, limit, offset), nil
}

// UpdateQuizParams are the inputs for UpdateQuiz. Nil fields are left
// unchanged.
type UpdateQuizParams struct {
	UserID    string `validate:"required"`
	QuizID    string `validate:"required"`
	Title     *string
	Chapter   *string
	Questions *[]QuizQuestion
}

// UpdateQuiz updates a quiz remotely or in the local list.
func (c *Client) UpdateQuiz(ctx context.Context, p UpdateQuizParams) (*RecordEnvelope[Quiz], error) {
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
	if p.Questions != nil {
		body["questions"] = *p.Questions
	}

	var remote Quiz
	err := c.sendJSON(ctx, http.MethodPut, "/quizzes/"+pathEscape(p.QuizID), body, &remote)
	if err == nil {
		return newRecordEnvelope(OriginRemote, remote), nil
	}
	if !IsInfraFailure(err) {
		return nil, err
	}
	c.warnDegraded("UpdateQuiz", err)

	key := localstore.QuizzesKey(p.UserID)
	quizzes, lerr := loadList[Quiz](c.store, key)
	if lerr != nil {
		return nil, lerr
	}
	for i := range quizzes {
		if quizzes[i].ID != p.QuizID {
			continue
		}
		if p.Title != nil {
			quizzes[i].Title = *p.Title
		}
		if p.Chapter != nil {
			quizzes[i].Chapter = *p.Chapter
		}
		if p.Questions != nil {
			quizzes[i].Questions = *p.Questions
		}
		quizzes[i].UpdatedAt = c.now().UTC()
		if err := saveList(c.store, key, quizzes); err != nil {
			return nil, err
		}
		return newRecordEnvelope(OriginCache, quizzes[i]), nil
	}
	return nil, &RecordNotFoundError{Kind: "quiz", ID: p.QuizID}
}

// DeleteQuizParams are the inputs for DeleteQuiz.
type DeleteQuizParams struct {
	UserID string `validate:"required"`
	QuizID string `validate:"required"`
}

// DeleteQuiz deletes a quiz remotely or from the local list.
func (c *Client) DeleteQuiz(ctx context.Context, p DeleteQuizParams) (*RecordEnvelope[Quiz], error) {
	if err := c.validateParams(p); err != nil {
		return nil, err
	}

	var remote Quiz
	err := c.sendJSON(ctx, http.MethodDelete, "/quizzes/"+pathEscape(p.QuizID), nil, &remote)
	if err == nil {
		return newRecordEnvelope(OriginRemote, remote), nil
	}
	if !IsInfraFailure(err) {
		return nil, err
	}
	c.warnDegraded("DeleteQuiz", err)

	key := localstore.QuizzesKey(p.UserID)
	quizzes, lerr := loadList[Quiz](c.store, key)
	if lerr != nil {
		return nil, lerr
	}
	for i := range quizzes {
		if quizzes[i].ID != p.QuizID {
			continue
		}
		removed := quizzes[i]
		quizzes = append(quizzes[:i], quizzes[i+1:]...)
		if err := saveList(c.store, key, quizzes); err != nil {
			return nil, err
		}
		return newRecordEnvelope(OriginCache, removed), nil
	}
	return nil, &RecordNotFoundError{Kind: "quiz", ID: p.QuizID}
}

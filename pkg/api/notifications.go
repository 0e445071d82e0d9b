// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package api: notifications.go holds the per-user notification queue.
// The backend has no notification endpoint, so unlike the cached
// wrappers there is no remote attempt: the queue lives entirely in the
// local store under the notifications key, newest first. The CLI pushes
// an entry whenever a 404 event reports missing content, and the student
// reads and clears the queue at their convenience.
package api

import (
	"context"
	"fmt"
	"time"

	"github.com/AleutianAI/Schoolhouse/pkg/localstore"
)

// Notification is one queued message for a user.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// PushNotificationParams are the inputs for PushNotification.
type PushNotificationParams struct {
	UserID  string `validate:"required"`
	Kind    string `validate:"required"`
	Message string `validate:"required"`
}

// PushNotification queues a notification for the user.
func (c *Client) PushNotification(ctx context.Context, p PushNotificationParams) (*Notification, error) {
	if err := c.validateParams(p); err != nil {
		return nil, err
	}
	now := c.now()
	n := Notification{
		ID:        fmt.Sprintf("notif-%d", now.UnixMilli()),
		UserID:    p.UserID,
		Kind:      p.Kind,
		Message:   p.Message,
		CreatedAt: now,
	}
	if err := prependRecord(c.store, localstore.NotificationsKey(p.UserID), n); err != nil {
		return nil, err
	}
	return &n, nil
}

// ListNotifications returns the user's queued notifications, newest
// first. An empty queue is an empty slice, never nil.
func (c *Client) ListNotifications(ctx context.Context, userID string) ([]Notification, error) {
	return loadList[Notification](c.store, localstore.NotificationsKey(userID))
}

// ClearNotifications empties the user's queue. Clearing an already empty
// queue succeeds.
func (c *Client) ClearNotifications(ctx context.Context, userID string) error {
	return c.store.Delete(localstore.NotificationsKey(userID))
}

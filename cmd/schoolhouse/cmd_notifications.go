// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"fmt"

	"github.com/AleutianAI/Schoolhouse/pkg/ux"
	"github.com/spf13/cobra"
)

// runNotifications prints the queued notifications, newest first.
func runNotifications(cmd *cobra.Command, args []string) {
	a, err := newApp()
	if err != nil {
		fail("startup", err)
	}
	defer a.Close()

	notifications, err := a.client.ListNotifications(cmd.Context(), a.userID())
	if err != nil {
		fail("list notifications", err)
	}

	if len(notifications) == 0 {
		ux.Info("no notifications")
		return
	}
	for _, n := range notifications {
		ux.Info(fmt.Sprintf("%s  [%s]  %s",
			n.CreatedAt.Local().Format("2006-01-02 15:04"), n.Kind, n.Message))
	}
	ux.Muted(fmt.Sprintf("%d notification(s); `schoolhouse notifications clear` empties the queue", len(notifications)))
}

// runNotificationsClear empties the queue.
func runNotificationsClear(cmd *cobra.Command, args []string) {
	a, err := newApp()
	if err != nil {
		fail("startup", err)
	}
	defer a.Close()

	if err := a.client.ClearNotifications(cmd.Context(), a.userID()); err != nil {
		fail("clear notifications", err)
	}
	ux.Success("notification queue cleared")
}

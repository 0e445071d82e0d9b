// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/AleutianAI/Schoolhouse/pkg/api"
	"github.com/AleutianAI/Schoolhouse/pkg/ux"
	"github.com/spf13/cobra"
)

// runFocus starts a focus session on the backend, runs a local
// countdown, and reports the session back when the timer ends or the
// user interrupts. Registering the session remotely is best-effort;
// the countdown runs regardless.
func runFocus(cmd *cobra.Command, args []string) {
	a, err := newApp()
	if err != nil {
		fail("startup", err)
	}
	defer a.Close()

	minutes, _ := cmd.Flags().GetInt("minutes")
	goal, _ := cmd.Flags().GetString("goal")
	subjectValue, _ := cmd.Flags().GetString("subject")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	params := api.StartFocusParams{
		UserID:          a.userID(),
		DurationMinutes: minutes,
		Goal:            goal,
		Subject:         a.subject(subjectValue),
	}
	session, err := a.client.StartFocusSession(ctx, params)
	if err != nil {
		ux.Warning("could not register the session; running the timer locally: " + err.Error())
	}

	if goal != "" {
		ux.Title("Focus: " + goal)
	} else {
		ux.Title("Focus")
	}
	ux.Muted("Ctrl-C ends the session early.")

	total := time.Duration(minutes) * time.Minute
	completed := countdown(ctx, total, time.Second, func(remaining time.Duration) {
		if ux.GetMode() == ux.ModePlain {
			return
		}
		fmt.Printf("\r  %s  ", ux.Styles.Highlight.Render(formatRemaining(remaining)))
	})
	fmt.Println()

	if completed {
		ux.Success(fmt.Sprintf("focus session complete: %d minutes", minutes))
	} else {
		ux.Warning("focus session ended early")
	}

	if session == nil {
		return
	}
	// Report with a fresh context; the signal context is canceled when
	// the user interrupted the timer.
	summary, err := a.client.EndFocusSession(cmd.Context(), api.EndFocusParams{
		SessionID: session.SessionID,
		UserID:    a.userID(),
		Completed: completed,
	})
	if err != nil {
		ux.Warning("could not report the session: " + err.Error())
		return
	}
	if summary.Message != "" {
		ux.Info(summary.Message)
	}
	for _, achievement := range summary.Achievements {
		ux.Success("achievement: " + achievement)
	}
}

// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"fmt"
	"strings"

	"github.com/AleutianAI/Schoolhouse/pkg/ux"
	"github.com/spf13/cobra"
)

// runProgress prints the study progress dashboard. When the backend is
// down a neutral placeholder summary is shown, marked as offline.
func runProgress(cmd *cobra.Command, args []string) {
	a, err := newApp()
	if err != nil {
		fail("startup", err)
	}
	defer a.Close()

	env, err := a.client.GetProgressSummary(cmd.Context(), a.userID())
	if err != nil {
		fail("progress", err)
	}
	summary := env.Record

	title := "Progress"
	if badge := ux.OriginBadge(string(env.Origin)); badge != "" {
		title += " " + badge
	}
	ux.Title(title)

	fmt.Printf("overall  %s\n", ux.MasteryBar(summary.OverallPct, 24))
	for _, sp := range summary.Subjects {
		fmt.Printf("%-9s %s  (%d topics)\n", sp.Subject, ux.MasteryBar(sp.MasteryPct, 24), sp.TopicCount)
	}

	ux.Muted(fmt.Sprintf("streak %d days · %d study minutes", summary.StreakDays, summary.StudyMinutes))
	if len(summary.WeakTopics) > 0 {
		ux.Warning("needs work: " + strings.Join(summary.WeakTopics, ", "))
	}
	if len(summary.StrongTopics) > 0 {
		ux.Success("strong: " + strings.Join(summary.StrongTopics, ", "))
	}
}

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

	"github.com/AleutianAI/Schoolhouse/pkg/api"
	"github.com/AleutianAI/Schoolhouse/pkg/ux"
	"github.com/spf13/cobra"
)

// runExamList lists exam sets. When the backend is down a built-in
// placeholder catalog is shown, marked as an offline answer.
func runExamList(cmd *cobra.Command, args []string) {
	a, err := newApp()
	if err != nil {
		fail("startup", err)
	}
	defer a.Close()

	params := api.ListExamSetsParams{}
	if v, _ := cmd.Flags().GetString("subject"); v != "" {
		s := api.Subject(strings.ToLower(v))
		params.Subject = &s
	}
	if v, _ := cmd.Flags().GetInt("year"); v != 0 {
		params.Year = &v
	}

	env, err := a.client.ListExamSets(cmd.Context(), params)
	if err != nil {
		fail("list exam sets", err)
	}

	if len(env.Items) == 0 {
		ux.Info("no exam sets match")
		return
	}
	for _, set := range env.Items {
		ux.Info(fmt.Sprintf("%s  %s  %d questions, %d min, %d marks",
			set.ID, set.Title, set.QuestionCount, set.DurationMinutes, set.TotalMarks))
	}
	summary := fmt.Sprintf("%d of %d exam sets", len(env.Items), env.Total)
	if badge := ux.OriginBadge(string(env.Origin)); badge != "" {
		summary += " " + badge
	}
	ux.Muted(summary)
}

// runExamShow prints a single exam set with its questions. This path
// propagates backend failures; there is no placeholder for full papers.
func runExamShow(cmd *cobra.Command, args []string) {
	a, err := newApp()
	if err != nil {
		fail("startup", err)
	}
	defer a.Close()

	set, err := a.client.GetExamSet(cmd.Context(), args[0])
	if err != nil {
		fail("show exam set", err)
	}

	ux.Title(set.Title)
	ux.Muted(fmt.Sprintf("%s %d · %d minutes · %d marks", set.Subject, set.Year,
		set.DurationMinutes, set.TotalMarks))
	for i, q := range set.Questions {
		fmt.Printf("\n%s %s\n", ux.Styles.Bold.Render(fmt.Sprintf("Q%d.", i+1)), q.Question)
		detail := fmt.Sprintf("   %d marks", q.Marks)
		if q.Difficulty != "" {
			detail += " · " + q.Difficulty
		}
		ux.Muted(detail)
	}
}

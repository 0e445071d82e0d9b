// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AleutianAI/Schoolhouse/pkg/api"
	"github.com/AleutianAI/Schoolhouse/pkg/ux"
	"github.com/spf13/cobra"
)

// runNotesAdd creates a note. The body comes from --content, or from
// stdin when the flag is omitted (so `schoolhouse notes add t < f.md`
// works).
func runNotesAdd(cmd *cobra.Command, args []string) {
	a, err := newApp()
	if err != nil {
		fail("startup", err)
	}
	defer a.Close()

	content, _ := cmd.Flags().GetString("content")
	if content == "" && !ux.IsInteractive() {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fail("read note body", err)
		}
		content = strings.TrimSpace(string(data))
	}

	subjectValue, _ := cmd.Flags().GetString("subject")
	chapter, _ := cmd.Flags().GetString("chapter")

	params := api.CreateNoteParams{
		UserID:  a.userID(),
		Title:   args[0],
		Chapter: chapter,
		Content: content,
	}
	if s := a.subject(subjectValue); s != nil {
		params.Subject = *s
	}

	env, err := a.client.CreateNote(cmd.Context(), params)
	if err != nil {
		fail("create note", err)
	}

	msg := "saved " + env.Record.ID
	if badge := ux.OriginBadge(string(env.Origin)); badge != "" {
		msg += " " + badge
	}
	ux.Success(msg)
}

// runNotesList lists notes with optional subject filter, search, and
// pagination.
func runNotesList(cmd *cobra.Command, args []string) {
	a, err := newApp()
	if err != nil {
		fail("startup", err)
	}
	defer a.Close()

	params := api.ListNotesParams{UserID: a.userID()}
	if v, _ := cmd.Flags().GetString("subject"); v != "" {
		s := api.Subject(strings.ToLower(v))
		params.Subject = &s
	}
	if v, _ := cmd.Flags().GetString("search"); v != "" {
		params.Search = &v
	}
	if v, _ := cmd.Flags().GetInt("limit"); cmd.Flags().Changed("limit") {
		params.Limit = &v
	}
	if v, _ := cmd.Flags().GetInt("offset"); cmd.Flags().Changed("offset") {
		params.Offset = &v
	}

	env, err := a.client.ListNotes(cmd.Context(), params)
	if err != nil {
		fail("list notes", err)
	}

	if len(env.Items) == 0 {
		ux.Info("no notes")
		return
	}
	for _, note := range env.Items {
		line := fmt.Sprintf("%s  %s", note.ID, note.Title)
		if note.Subject != "" {
			line += fmt.Sprintf("  (%s", note.Subject)
			if note.Chapter != "" {
				line += " / " + note.Chapter
			}
			line += ")"
		}
		ux.Info(line)
	}
	summary := fmt.Sprintf("%d of %d notes", len(env.Items), env.Total)
	if badge := ux.OriginBadge(string(env.Origin)); badge != "" {
		summary += " " + badge
	}
	ux.Muted(summary)
}

// runNotesDelete removes a note and echoes what was removed.
func runNotesDelete(cmd *cobra.Command, args []string) {
	a, err := newApp()
	if err != nil {
		fail("startup", err)
	}
	defer a.Close()

	env, err := a.client.DeleteNote(cmd.Context(), api.DeleteNoteParams{
		UserID: a.userID(),
		NoteID: args[0],
	})
	if err != nil {
		fail("delete note", err)
	}
	ux.Success(fmt.Sprintf("deleted %q", env.Record.Title))
}

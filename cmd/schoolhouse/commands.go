// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"github.com/AleutianAI/Schoolhouse/pkg/ux"
	"github.com/spf13/cobra"
)

// --- Global Command Variables ---
var (
	userID      string // CLI override for user.id from the config
	subjectFlag string // Subject scope for chat/notes/exam/ask
	outputMode  string // UX output mode (rich/minimal/plain)

	rootCmd = &cobra.Command{
		Use:   "schoolhouse",
		Short: "A cli for the Schoolhouse tutoring backend",
		Long: `Schoolhouse is a study companion backed by a RAG tutoring
				service. Every command keeps working when the backend is
				down: reads fall back to locally saved data or built-in
				placeholders, and questions get offline answers.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if outputMode != "" {
				ux.SetMode(ux.ParseMode(outputMode))
			} else {
				ux.InitMode()
			}
		},
	}

	// --- Ask (one-shot question) ---
	askCmd = &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask the tutoring pipeline a one-shot question",
		Args:  cobra.MinimumNArgs(1),
		Run:   runAskCommand, // Defined in cmd_chat.go
	}

	// --- Chat ---
	chatCmd = &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive tutoring session",
		Run:   runChatCommand, // Defined in cmd_chat.go
	}

	sessionCmd = &cobra.Command{
		Use:   "session",
		Short: "Manage tutoring sessions",
	}
	listSessionsCmd = &cobra.Command{
		Use:   "list",
		Short: "List your tutoring sessions",
		Run:   runListSessions, // Defined in cmd_chat.go
	}
	transcriptCmd = &cobra.Command{
		Use:   "transcript [session_id]",
		Short: "Print the transcript of a tutoring session",
		Args:  cobra.ExactArgs(1),
		Run:   runTranscript, // Defined in cmd_chat.go
	}

	// --- Notes ---
	notesCmd = &cobra.Command{
		Use:   "notes",
		Short: "Manage your study notes",
	}
	notesAddCmd = &cobra.Command{
		Use:   "add [title]",
		Short: "Create a note",
		Args:  cobra.ExactArgs(1),
		Run:   runNotesAdd, // Defined in cmd_notes.go
	}
	notesListCmd = &cobra.Command{
		Use:   "list",
		Short: "List your notes",
		Run:   runNotesList, // Defined in cmd_notes.go
	}
	notesDeleteCmd = &cobra.Command{
		Use:   "delete [note_id]",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		Run:   runNotesDelete, // Defined in cmd_notes.go
	}

	// --- Exams ---
	examCmd = &cobra.Command{
		Use:   "exam",
		Short: "Browse practice exam sets",
	}
	examListCmd = &cobra.Command{
		Use:   "list",
		Short: "List available exam sets",
		Run:   runExamList, // Defined in cmd_exam.go
	}
	examShowCmd = &cobra.Command{
		Use:   "show [exam_set_id]",
		Short: "Show one exam set with its questions",
		Args:  cobra.ExactArgs(1),
		Run:   runExamShow, // Defined in cmd_exam.go
	}

	// --- Progress ---
	progressCmd = &cobra.Command{
		Use:   "progress",
		Short: "Show your study progress summary",
		Run:   runProgress, // Defined in cmd_progress.go
	}

	// --- Focus ---
	focusCmd = &cobra.Command{
		Use:   "focus",
		Short: "Run a time-boxed focus session with a countdown",
		Run:   runFocus, // Defined in cmd_focus.go
	}

	// --- Notifications ---
	notificationsCmd = &cobra.Command{
		Use:   "notifications",
		Short: "Show queued notifications, like missing-content warnings",
		Run:   runNotifications, // Defined in cmd_notifications.go
	}
	notificationsClearCmd = &cobra.Command{
		Use:   "clear",
		Short: "Empty the notification queue",
		Run:   runNotificationsClear, // Defined in cmd_notifications.go
	}

	// --- Health ---
	healthCmd = &cobra.Command{
		Use:   "health",
		Short: "Check whether the backend is reachable",
		Run:   runHealth, // Defined in cmd_health.go
	}
)

// init runs when the Go program starts
func init() {
	rootCmd.PersistentFlags().StringVar(&outputMode, "output", "",
		"Output style: rich (default), minimal, or plain (scripting)")
	rootCmd.PersistentFlags().StringVarP(&userID, "user", "u", "",
		"User id (overrides user.id from the config file)")

	rootCmd.AddCommand(askCmd)
	askCmd.Flags().StringVarP(&subjectFlag, "subject", "s", "",
		"Subject scope (mathematics, physics, chemistry, biology)")

	rootCmd.AddCommand(chatCmd)
	chatCmd.Flags().String("resume", "", "Resume a session using a specific session ID.")
	chatCmd.Flags().StringVarP(&subjectFlag, "subject", "s", "",
		"Subject scope (mathematics, physics, chemistry, biology)")

	rootCmd.AddCommand(sessionCmd)
	sessionCmd.AddCommand(listSessionsCmd)
	sessionCmd.AddCommand(transcriptCmd)

	rootCmd.AddCommand(notesCmd)
	notesCmd.AddCommand(notesAddCmd)
	notesAddCmd.Flags().String("subject", "", "Subject the note belongs to")
	notesAddCmd.Flags().String("chapter", "", "Chapter the note belongs to")
	notesAddCmd.Flags().String("content", "", "Note body (reads stdin when omitted)")
	notesCmd.AddCommand(notesListCmd)
	notesListCmd.Flags().String("subject", "", "Filter by subject")
	notesListCmd.Flags().String("search", "", "Free-text search over title and chapter")
	notesListCmd.Flags().Int("limit", 50, "Page size (1-100)")
	notesListCmd.Flags().Int("offset", 0, "Page offset")
	notesCmd.AddCommand(notesDeleteCmd)

	rootCmd.AddCommand(examCmd)
	examCmd.AddCommand(examListCmd)
	examListCmd.Flags().String("subject", "", "Filter by subject")
	examListCmd.Flags().Int("year", 0, "Filter by year")
	examCmd.AddCommand(examShowCmd)

	rootCmd.AddCommand(progressCmd)

	rootCmd.AddCommand(focusCmd)
	focusCmd.Flags().IntP("minutes", "m", 25, "Session length in minutes (1-240)")
	focusCmd.Flags().String("goal", "", "What you want to get done")
	focusCmd.Flags().String("subject", "", "Subject you are focusing on")

	rootCmd.AddCommand(notificationsCmd)
	notificationsCmd.AddCommand(notificationsClearCmd)

	rootCmd.AddCommand(healthCmd)
}

// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/AleutianAI/Schoolhouse/pkg/api"
	"github.com/AleutianAI/Schoolhouse/pkg/ux"
	"github.com/spf13/cobra"
)

// runAskCommand sends a single question through the tutoring pipeline
// and prints the answer. Works offline: an unreachable backend yields a
// synthesized answer tagged as such.
func runAskCommand(cmd *cobra.Command, args []string) {
	a, err := newApp()
	if err != nil {
		fail("startup", err)
	}
	defer a.Close()

	question := strings.Join(args, " ")
	answer, err := a.client.QueryRAG(cmd.Context(), api.RAGQueryParams{
		Query:   question,
		Subject: a.subject(subjectFlag),
	})
	if err != nil {
		fail("ask", err)
	}

	printAnswer(answer.GeneratedText, answer.Sources, answer.Confidence, string(answer.Origin))
}

// runChatCommand starts (or resumes) a tutoring session and loops over
// stdin until EOF or an exit word.
func runChatCommand(cmd *cobra.Command, args []string) {
	a, err := newApp()
	if err != nil {
		fail("startup", err)
	}
	defer a.Close()

	ctx := cmd.Context()
	subject := a.subject(subjectFlag)

	sessionID, _ := cmd.Flags().GetString("resume")
	if sessionID == "" {
		params := api.StartSessionParams{UserID: a.userID()}
		if subject != nil {
			params.Subject = *subject
		}
		session, err := a.client.StartTutorSession(ctx, params)
		if err != nil {
			fail("start session", err)
		}
		sessionID = session.ID
		ux.Muted("session " + sessionID)
	}

	ux.Title("Schoolhouse tutor")
	ux.Muted("Type your question. \"exit\" or Ctrl-D to leave.")

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for {
		fmt.Print(ux.Styles.Subtitle.Render("you> "))
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}

		params := api.SendMessageParams{
			UserID:    a.userID(),
			SessionID: sessionID,
			Content:   line,
		}
		if subject != nil {
			params.Subject = *subject
		}
		turn, err := a.client.SendTutorMessage(ctx, params)
		if err != nil {
			ux.Error(err.Error())
			continue
		}
		origin := "remote"
		if turn.Offline {
			origin = "synthetic"
		}
		printAnswer(turn.Content, turn.Sources, turn.Confidence, origin)
	}
	ux.Muted("session saved: " + sessionID)
}

// runListSessions lists the user's tutoring sessions, newest first.
func runListSessions(cmd *cobra.Command, args []string) {
	a, err := newApp()
	if err != nil {
		fail("startup", err)
	}
	defer a.Close()

	sessions, err := a.client.ListTutorSessions(cmd.Context(), a.userID())
	if err != nil {
		fail("list sessions", err)
	}
	if len(sessions) == 0 {
		ux.Info("no sessions yet")
		return
	}
	for _, s := range sessions {
		line := fmt.Sprintf("%s  %s", s.ID, s.LastActivity.Local().Format("2006-01-02 15:04"))
		if s.Subject != "" {
			line += "  " + string(s.Subject)
		}
		ux.Info(line)
	}
}

// runTranscript prints one session's messages, oldest first.
func runTranscript(cmd *cobra.Command, args []string) {
	a, err := newApp()
	if err != nil {
		fail("startup", err)
	}
	defer a.Close()

	turns, err := a.client.TutorTranscript(cmd.Context(), args[0])
	if err != nil {
		fail("transcript", err)
	}
	if len(turns) == 0 {
		ux.Info("empty transcript")
		return
	}
	for _, turn := range turns {
		switch turn.Role {
		case "user":
			fmt.Printf("%s %s\n", ux.Styles.Subtitle.Render("you>"), turn.Content)
		default:
			origin := "remote"
			if turn.Offline {
				origin = "synthetic"
			}
			badge := ux.OriginBadge(origin)
			if badge != "" {
				badge = " " + badge
			}
			fmt.Printf("%s %s%s\n", ux.Styles.Highlight.Render("tutor>"), turn.Content, badge)
		}
	}
}

// printAnswer renders an assistant answer with its origin badge,
// confidence, and cited sources.
func printAnswer(text string, sources []api.Source, confidence float64, origin string) {
	badge := ux.OriginBadge(origin)
	if badge != "" {
		badge = " " + badge
	}
	fmt.Printf("%s %s%s\n", ux.Styles.Highlight.Render("tutor>"), text, badge)
	if confidence > 0 {
		ux.Muted(fmt.Sprintf("confidence %.0f%%", confidence*100))
	}
	for _, src := range sources {
		ux.Muted("  " + string(ux.IconBullet) + " " + src.Source)
	}
}

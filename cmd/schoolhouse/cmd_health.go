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

// runHealth pings the backend. This is the one command that reports an
// unreachable backend as a failure instead of degrading, since its
// whole point is to tell you which mode every other command will be in.
func runHealth(cmd *cobra.Command, args []string) {
	a, err := newApp()
	if err != nil {
		fail("startup", err)
	}
	defer a.Close()

	status, err := a.client.Health(cmd.Context())
	if err != nil {
		ux.Error("backend unreachable at " + a.client.BaseURL())
		ux.Muted("commands will use locally saved data and offline answers")
		return
	}
	msg := "backend healthy at " + a.client.BaseURL()
	if status.Message != "" {
		msg += " (" + status.Message + ")"
	}
	ux.Success(msg)
}

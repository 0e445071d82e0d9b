// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ux

import (
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
)

// OutputMode defines the richness of CLI output
type OutputMode string

const (
	// ModeRich enables colors, icons, and boxes
	ModeRich OutputMode = "rich"

	// ModeMinimal uses icons and basic formatting only
	ModeMinimal OutputMode = "minimal"

	// ModePlain outputs plain text suitable for scripting and parsing
	ModePlain OutputMode = "plain"
)

var (
	currentMode = ModeRich
	modeMu      sync.RWMutex
)

// GetMode returns the current output mode
func GetMode() OutputMode {
	modeMu.RLock()
	defer modeMu.RUnlock()
	return currentMode
}

// SetMode updates the current output mode
func SetMode(m OutputMode) {
	modeMu.Lock()
	defer modeMu.Unlock()
	currentMode = m
}

// ParseMode converts a string to OutputMode
func ParseMode(s string) OutputMode {
	switch strings.ToLower(s) {
	case "rich", "full", "r":
		return ModeRich
	case "minimal", "min", "m":
		return ModeMinimal
	case "plain", "machine", "quiet", "p", "q":
		return ModePlain
	default:
		return ModeRich
	}
}

// InitMode initializes the output mode from environment and terminal
// state. The SCHOOLHOUSE_OUTPUT environment variable wins; otherwise
// piped output falls back to plain mode.
func InitMode() {
	if env := os.Getenv("SCHOOLHOUSE_OUTPUT"); env != "" {
		SetMode(ParseMode(env))
		return
	}

	if !isTerminal() {
		SetMode(ModePlain)
		return
	}

	SetMode(ModeRich)
}

// isTerminal checks if stdout is a terminal
func isTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// IsInteractive returns true if we should show interactive prompts
func IsInteractive() bool {
	return GetMode() != ModePlain && isTerminal()
}

// ShouldShowColors returns true if we should use colors
func ShouldShowColors() bool {
	return GetMode() != ModePlain
}

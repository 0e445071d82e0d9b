// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ux

import (
	"strings"
	"testing"
)

// withMode runs fn under the given output mode, restoring the previous
// mode afterward. Mode is process-global, so these tests must not run
// in parallel.
func withMode(t *testing.T, m OutputMode, fn func()) {
	t.Helper()
	prev := GetMode()
	SetMode(m)
	defer SetMode(prev)
	fn()
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want OutputMode
	}{
		{"rich", ModeRich},
		{"full", ModeRich},
		{"r", ModeRich},
		{"minimal", ModeMinimal},
		{"min", ModeMinimal},
		{"m", ModeMinimal},
		{"plain", ModePlain},
		{"machine", ModePlain},
		{"quiet", ModePlain},
		{"PLAIN", ModePlain},
		{"", ModeRich},
		{"garbage", ModeRich},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseMode(tt.in); got != tt.want {
				t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSetMode_GetMode(t *testing.T) {
	prev := GetMode()
	defer SetMode(prev)

	SetMode(ModePlain)
	if GetMode() != ModePlain {
		t.Errorf("GetMode() = %v, want ModePlain", GetMode())
	}
	SetMode(ModeRich)
	if GetMode() != ModeRich {
		t.Errorf("GetMode() = %v, want ModeRich", GetMode())
	}
}

func TestInitMode_EnvOverride(t *testing.T) {
	prev := GetMode()
	defer SetMode(prev)

	t.Setenv("SCHOOLHOUSE_OUTPUT", "minimal")
	InitMode()
	if GetMode() != ModeMinimal {
		t.Errorf("InitMode with SCHOOLHOUSE_OUTPUT=minimal: GetMode() = %v", GetMode())
	}
}

func TestInitMode_NonTerminalFallsBackToPlain(t *testing.T) {
	prev := GetMode()
	defer SetMode(prev)

	t.Setenv("SCHOOLHOUSE_OUTPUT", "")
	// Under `go test` stdout is a pipe, not a terminal.
	InitMode()
	if isTerminal() {
		t.Skip("stdout is a terminal")
	}
	if GetMode() != ModePlain {
		t.Errorf("InitMode without terminal: GetMode() = %v, want ModePlain", GetMode())
	}
}

func TestIcon_Render(t *testing.T) {
	tests := []struct {
		icon Icon
		want string
	}{
		{IconSuccess, "✓"},
		{IconWarning, "⚠"},
		{IconError, "✗"},
		{IconPending, "○"},
		{IconArrow, "→"},
		{IconBullet, "•"},
	}

	for _, tt := range tests {
		got := tt.icon.Render()
		if !strings.Contains(got, tt.want) {
			t.Errorf("Icon(%q).Render() = %q, missing glyph %q", tt.icon, got, tt.want)
		}
	}
}

func TestOriginBadge(t *testing.T) {
	t.Run("plain mode brackets origin", func(t *testing.T) {
		withMode(t, ModePlain, func() {
			for _, origin := range []string{"remote", "cache", "synthetic"} {
				want := "[" + origin + "]"
				if got := OriginBadge(origin); got != want {
					t.Errorf("OriginBadge(%q) = %q, want %q", origin, got, want)
				}
			}
		})
	})

	t.Run("rich mode hides remote badge", func(t *testing.T) {
		withMode(t, ModeRich, func() {
			if got := OriginBadge("remote"); got != "" {
				t.Errorf("OriginBadge(remote) = %q, want empty", got)
			}
		})
	})

	t.Run("rich mode labels fallback origins", func(t *testing.T) {
		withMode(t, ModeRich, func() {
			if got := OriginBadge("cache"); !strings.Contains(got, "saved locally") {
				t.Errorf("OriginBadge(cache) = %q", got)
			}
			if got := OriginBadge("synthetic"); !strings.Contains(got, "offline answer") {
				t.Errorf("OriginBadge(synthetic) = %q", got)
			}
		})
	})

	t.Run("unknown origin passes through", func(t *testing.T) {
		withMode(t, ModeRich, func() {
			if got := OriginBadge("mystery"); !strings.Contains(got, "[mystery]") {
				t.Errorf("OriginBadge(mystery) = %q", got)
			}
		})
	})
}

func TestMasteryBar(t *testing.T) {
	t.Run("plain mode returns percentage", func(t *testing.T) {
		withMode(t, ModePlain, func() {
			if got := MasteryBar(62.5, 20); got != "62%" && got != "63%" {
				t.Errorf("MasteryBar(62.5) = %q", got)
			}
		})
	})

	t.Run("rich mode renders bar with percentage", func(t *testing.T) {
		withMode(t, ModeRich, func() {
			got := MasteryBar(50, 10)
			if !strings.Contains(got, "50%") {
				t.Errorf("MasteryBar(50) = %q, missing percentage", got)
			}
			if !strings.Contains(got, "█") || !strings.Contains(got, "░") {
				t.Errorf("MasteryBar(50) = %q, missing bar glyphs", got)
			}
		})
	})

	t.Run("clamps out of range values", func(t *testing.T) {
		withMode(t, ModePlain, func() {
			if got := MasteryBar(-10, 10); got != "0%" {
				t.Errorf("MasteryBar(-10) = %q, want 0%%", got)
			}
			if got := MasteryBar(250, 10); got != "100%" {
				t.Errorf("MasteryBar(250) = %q, want 100%%", got)
			}
		})
	})
}

func TestRepeatChar(t *testing.T) {
	if got := repeatChar('x', 3); got != "xxx" {
		t.Errorf("repeatChar('x', 3) = %q", got)
	}
	if got := repeatChar('x', 0); got != "" {
		t.Errorf("repeatChar('x', 0) = %q, want empty", got)
	}
	if got := repeatChar('x', -1); got != "" {
		t.Errorf("repeatChar('x', -1) = %q, want empty", got)
	}
}

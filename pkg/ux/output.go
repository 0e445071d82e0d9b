// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package ux provides terminal output styling for the Schoolhouse CLI.
package ux

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Schoolhouse color palette - chalkboard greens and notebook accents
var (
	// Primary palette (brightest to darkest)
	ColorGreenBright  = lipgloss.Color("#4ADE80") // Bright green - highlights, success
	ColorGreenPrimary = lipgloss.Color("#22C55E") // Primary green - main brand color
	ColorGreenMedium  = lipgloss.Color("#16A34A") // Medium green - secondary elements
	ColorGreenDeep    = lipgloss.Color("#15803D") // Deep green - borders, accents

	// Dark palette (for backgrounds, muted elements)
	ColorBoard = lipgloss.Color("#14532D") // Chalkboard - deep backgrounds
	ColorSlate = lipgloss.Color("#475569") // Slate - muted text, borders

	// Semantic colors (keeping standard conventions for clarity)
	ColorSuccess = lipgloss.Color("#4ADE80") // Bright green for success
	ColorWarning = lipgloss.Color("#F4D03F") // Gold/amber for warnings
	ColorError   = lipgloss.Color("#E74C3C") // Red for errors
	ColorMuted   = lipgloss.Color("#475569") // Slate for muted text
	ColorCache   = lipgloss.Color("#60A5FA") // Blue for locally served data
	ColorOffline = lipgloss.Color("#C084FC") // Purple for synthesized answers
)

// Styles provides pre-configured lipgloss styles
var Styles = struct {
	// Text styles
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Bold      lipgloss.Style
	Muted     lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Highlight lipgloss.Style

	// Box styles
	Box        lipgloss.Style
	WarningBox lipgloss.Style
	ErrorBox   lipgloss.Style

	// Origin badges
	BadgeRemote    lipgloss.Style
	BadgeCache     lipgloss.Style
	BadgeSynthetic lipgloss.Style
}{
	// Text styles
	Title:     lipgloss.NewStyle().Bold(true).Foreground(ColorGreenBright),
	Subtitle:  lipgloss.NewStyle().Foreground(ColorGreenPrimary),
	Bold:      lipgloss.NewStyle().Bold(true),
	Muted:     lipgloss.NewStyle().Foreground(ColorSlate),
	Success:   lipgloss.NewStyle().Foreground(ColorSuccess),
	Warning:   lipgloss.NewStyle().Foreground(ColorWarning),
	Error:     lipgloss.NewStyle().Foreground(ColorError),
	Highlight: lipgloss.NewStyle().Foreground(ColorGreenBright).Bold(true),

	// Box styles
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorGreenDeep).
		Padding(0, 1),
	WarningBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorWarning).
		Padding(0, 1),
	ErrorBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorError).
		Padding(0, 1),

	// Origin badges
	BadgeRemote:    lipgloss.NewStyle().Foreground(ColorGreenPrimary),
	BadgeCache:     lipgloss.NewStyle().Foreground(ColorCache),
	BadgeSynthetic: lipgloss.NewStyle().Foreground(ColorOffline),
}

// Icon provides themed status icons
type Icon string

const (
	IconSuccess Icon = "✓"
	IconWarning Icon = "⚠"
	IconError   Icon = "✗"
	IconPending Icon = "○"
	IconArrow   Icon = "→"
	IconBullet  Icon = "•"
	IconBook    Icon = "📖"
	IconPencil  Icon = "✎"
)

// Render returns the icon with appropriate styling
func (i Icon) Render() string {
	switch i {
	case IconSuccess:
		return Styles.Success.Render(string(i))
	case IconWarning:
		return Styles.Warning.Render(string(i))
	case IconError:
		return Styles.Error.Render(string(i))
	case IconPending:
		return Styles.Muted.Render(string(i))
	default:
		return string(i)
	}
}

// Print helpers that respect the output mode

// Title prints a styled title
func Title(text string) {
	if GetMode() == ModePlain {
		return
	}
	fmt.Println(Styles.Title.Render(text))
}

// Success prints a success message with checkmark
func Success(text string) {
	switch GetMode() {
	case ModePlain:
		fmt.Fprintf(os.Stdout, "OK: %s\n", text)
	case ModeMinimal:
		fmt.Printf("%s %s\n", IconSuccess.Render(), text)
	default:
		fmt.Printf("%s %s\n", IconSuccess.Render(), Styles.Success.Render(text))
	}
}

// Warning prints a warning message
func Warning(text string) {
	switch GetMode() {
	case ModePlain:
		fmt.Fprintf(os.Stderr, "WARN: %s\n", text)
	case ModeMinimal:
		fmt.Printf("%s %s\n", IconWarning.Render(), text)
	default:
		fmt.Printf("%s %s\n", IconWarning.Render(), Styles.Warning.Render(text))
	}
}

// Error prints an error message
func Error(text string) {
	switch GetMode() {
	case ModePlain:
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", text)
	case ModeMinimal:
		fmt.Printf("%s %s\n", IconError.Render(), text)
	default:
		fmt.Printf("%s %s\n", IconError.Render(), Styles.Error.Render(text))
	}
}

// Info prints an informational message
func Info(text string) {
	switch GetMode() {
	case ModePlain:
		fmt.Println(text)
	default:
		fmt.Printf("%s %s\n", Styles.Muted.Render("│"), text)
	}
}

// Muted prints muted/secondary text
func Muted(text string) {
	if GetMode() == ModePlain {
		return
	}
	fmt.Println(Styles.Muted.Render(text))
}

// Box prints text in a rounded box
func Box(title, content string) {
	if GetMode() == ModePlain {
		fmt.Printf("%s: %s\n", title, content)
		return
	}
	boxStyle := Styles.Box.Width(60)
	titleLine := Styles.Title.Render(title)
	fmt.Println(boxStyle.Render(titleLine + "\n" + content))
}

// WarningBox prints text in a warning-styled box
func WarningBox(title, content string) {
	if GetMode() == ModePlain {
		fmt.Fprintf(os.Stderr, "WARN %s: %s\n", title, content)
		return
	}
	boxStyle := Styles.WarningBox.Width(60)
	titleLine := Styles.Warning.Bold(true).Render(title)
	fmt.Println(boxStyle.Render(titleLine + "\n" + content))
}

// OriginBadge renders a badge describing where a response came from.
// Remote data gets no badge in rich mode since it is the normal case.
func OriginBadge(origin string) string {
	if GetMode() == ModePlain {
		return "[" + origin + "]"
	}
	switch origin {
	case "remote":
		return ""
	case "cache":
		return Styles.BadgeCache.Render("[saved locally]")
	case "synthetic":
		return Styles.BadgeSynthetic.Render("[offline answer]")
	default:
		return Styles.Muted.Render("[" + origin + "]")
	}
}

// MasteryBar renders a progress bar for a subject mastery percentage
func MasteryBar(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	if GetMode() == ModePlain {
		return fmt.Sprintf("%.0f%%", pct)
	}
	filled := int(pct / 100 * float64(width))
	empty := width - filled

	bar := Styles.Success.Render(repeatChar('█', filled)) +
		Styles.Muted.Render(repeatChar('░', empty))

	return fmt.Sprintf("%s %3.0f%%", bar, pct)
}

func repeatChar(c rune, n int) string {
	if n <= 0 {
		return ""
	}
	result := make([]rune, n)
	for i := range result {
		result[i] = c
	}
	return string(result)
}

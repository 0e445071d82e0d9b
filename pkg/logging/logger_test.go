// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// =============================================================================
// Level Tests
// =============================================================================

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(99), "UNKNOWN"},
		{Level(-1), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := tt.level.String()
			if got != tt.want {
				t.Errorf("Level.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLevel_toSlogLevel(t *testing.T) {
	tests := []struct {
		level Level
		want  slog.Level
	}{
		{LevelDebug, slog.LevelDebug},
		{LevelInfo, slog.LevelInfo},
		{LevelWarn, slog.LevelWarn},
		{LevelError, slog.LevelError},
		{Level(99), slog.LevelInfo}, // Unknown defaults to Info
		{Level(-1), slog.LevelInfo}, // Unknown defaults to Info
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			got := tt.level.toSlogLevel()
			if got != tt.want {
				t.Errorf("Level.toSlogLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLevel_Constants(t *testing.T) {
	// Verify ordering: Debug < Info < Warn < Error
	if LevelDebug >= LevelInfo {
		t.Error("LevelDebug should be < LevelInfo")
	}
	if LevelInfo >= LevelWarn {
		t.Error("LevelInfo should be < LevelWarn")
	}
	if LevelWarn >= LevelError {
		t.Error("LevelWarn should be < LevelError")
	}
}

// =============================================================================
// Logger Tests
// =============================================================================

func TestNew_DefaultConfig(t *testing.T) {
	logger := New(Config{})
	if logger == nil {
		t.Fatal("New() returned nil")
	}
	if logger.slog == nil {
		t.Error("logger.slog is nil")
	}
	if logger.file != nil {
		t.Error("logger.file should be nil without LogDir")
	}
}

func TestNew_FileLogging(t *testing.T) {
	tmpDir := t.TempDir()

	logger := New(Config{
		Level:   LevelDebug,
		LogDir:  tmpDir,
		Service: "test-service",
		Quiet:   true,
	})

	if logger.file == nil {
		t.Fatal("logger.file is nil, file logging not enabled")
	}

	logger.Info("test message", "key", "value")

	expectedFilename := "test-service_" + time.Now().Format("2006-01-02") + ".log"
	logPath := filepath.Join(tmpDir, expectedFilename)

	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	logStr := string(content)
	if !strings.Contains(logStr, "test message") {
		t.Errorf("log file missing message, got: %s", logStr)
	}
	if !strings.Contains(logStr, `"service":"test-service"`) {
		t.Errorf("log file missing service attribute, got: %s", logStr)
	}
}

func TestNew_FileLogging_DefaultServiceName(t *testing.T) {
	tmpDir := t.TempDir()

	logger := New(Config{
		LogDir: tmpDir,
		Quiet:  true,
	})
	logger.Info("hello")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	expectedFilename := "schoolhouse_" + time.Now().Format("2006-01-02") + ".log"
	if _, err := os.Stat(filepath.Join(tmpDir, expectedFilename)); err != nil {
		t.Errorf("expected log file %s: %v", expectedFilename, err)
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	tmpDir := t.TempDir()

	logger := New(Config{
		Level:   LevelWarn,
		LogDir:  tmpDir,
		Service: "filter-test",
		Quiet:   true,
	})

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	expectedFilename := "filter-test_" + time.Now().Format("2006-01-02") + ".log"
	content, err := os.ReadFile(filepath.Join(tmpDir, expectedFilename))
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	logStr := string(content)
	if strings.Contains(logStr, "debug message") {
		t.Error("Debug message should be filtered at Warn level")
	}
	if strings.Contains(logStr, "info message") {
		t.Error("Info message should be filtered at Warn level")
	}
	if !strings.Contains(logStr, "warn message") {
		t.Error("Warn message missing")
	}
	if !strings.Contains(logStr, "error message") {
		t.Error("Error message missing")
	}
}

func TestLogger_With(t *testing.T) {
	tmpDir := t.TempDir()

	logger := New(Config{
		LogDir:  tmpDir,
		Service: "with-test",
		Quiet:   true,
	})

	child := logger.With("user_id", "u-42")
	child.Info("child message")
	logger.Info("parent message")

	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	expectedFilename := "with-test_" + time.Now().Format("2006-01-02") + ".log"
	content, err := os.ReadFile(filepath.Join(tmpDir, expectedFilename))
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	for _, line := range strings.Split(strings.TrimSpace(string(content)), "\n") {
		switch {
		case strings.Contains(line, "child message"):
			if !strings.Contains(line, `"user_id":"u-42"`) {
				t.Errorf("child log missing user_id: %s", line)
			}
		case strings.Contains(line, "parent message"):
			if strings.Contains(line, "user_id") {
				t.Errorf("parent log should not carry child attrs: %s", line)
			}
		}
	}
}

func TestLogger_Close_Idempotent(t *testing.T) {
	logger := New(Config{LogDir: t.TempDir(), Quiet: true})

	if err := logger.Close(); err != nil {
		t.Fatalf("first Close() error: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("second Close() error: %v", err)
	}
}

func TestLogger_Close_NoFile(t *testing.T) {
	logger := New(Config{})
	if err := logger.Close(); err != nil {
		t.Fatalf("Close() without file error: %v", err)
	}
}

func TestDefault(t *testing.T) {
	logger := Default()
	if logger == nil {
		t.Fatal("Default() returned nil")
	}
	if logger.config.Level != LevelInfo {
		t.Errorf("Default() level = %v, want LevelInfo", logger.config.Level)
	}
	if logger.config.Service != "schoolhouse" {
		t.Errorf("Default() service = %q, want schoolhouse", logger.config.Service)
	}
}

func TestLogger_Slog(t *testing.T) {
	logger := New(Config{Quiet: true})
	if logger.Slog() == nil {
		t.Error("Slog() returned nil")
	}
}

// =============================================================================
// Multi-Handler Tests
// =============================================================================

func TestMultiHandler_FanOut(t *testing.T) {
	var buf1, buf2 bytes.Buffer
	h := &multiHandler{handlers: []slog.Handler{
		slog.NewJSONHandler(&buf1, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewJSONHandler(&buf2, &slog.HandlerOptions{Level: slog.LevelError}),
	}}

	logger := slog.New(h)
	logger.Info("info only")
	logger.Error("both")

	if !strings.Contains(buf1.String(), "info only") {
		t.Error("first handler missing info record")
	}
	if strings.Contains(buf2.String(), "info only") {
		t.Error("second handler should filter info record")
	}
	if !strings.Contains(buf1.String(), "both") || !strings.Contains(buf2.String(), "both") {
		t.Error("error record should reach both handlers")
	}
}

func TestMultiHandler_Enabled(t *testing.T) {
	h := &multiHandler{handlers: []slog.Handler{
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}),
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}),
	}}

	if !h.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("Enabled should be true when any handler accepts the level")
	}
}

// =============================================================================
// Helper Tests
// =============================================================================

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"tilde prefix", "~/logs", filepath.Join(home, "logs")},
		{"absolute path", "/var/log/schoolhouse", "/var/log/schoolhouse"},
		{"relative path", "logs", "logs"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := expandPath(tt.in); got != tt.want {
				t.Errorf("expandPath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package config loads the Schoolhouse CLI configuration from
// ~/.schoolhouse/schoolhouse.yaml, creating a default file on first run.
package config

import (
	"os"
	"path/filepath"
)

type SchoolhouseConfig struct {
	// API: how to reach the Schoolhouse backend
	API APIConfig `yaml:"api"`

	// Store: where the local fallback store lives on disk
	Store StoreConfig `yaml:"store"`

	// Logging: level and optional log directory
	Logging LoggingConfig `yaml:"logging"`

	// User: identity used for all per-user endpoints
	User UserConfig `yaml:"user"`
}

type APIConfig struct {
	// BaseURL overrides base URL detection. The SCHOOLHOUSE_API_URL
	// environment variable wins over this value.
	BaseURL string `yaml:"base_url,omitempty"`

	// RequestsPerMinute caps outbound request rate. 0 means the
	// default of 100.
	RequestsPerMinute int `yaml:"requests_per_minute"`
}

type StoreConfig struct {
	Path string `yaml:"path"` // e.g. ~/.schoolhouse/store

	// GCIntervalMinutes is how often badger value-log GC runs.
	// 0 disables GC.
	GCIntervalMinutes int `yaml:"gc_interval_minutes"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`         // debug, info, warn, error
	Dir   string `yaml:"dir,omitempty"` // empty disables file logging
}

type UserConfig struct {
	ID             string `yaml:"id"`
	DefaultSubject string `yaml:"default_subject,omitempty"`
}

func DefaultConfig() SchoolhouseConfig {
	storePath := "~/.schoolhouse/store"
	if home, err := os.UserHomeDir(); err == nil {
		storePath = filepath.Join(home, ".schoolhouse", "store")
	}
	return SchoolhouseConfig{
		API: APIConfig{
			RequestsPerMinute: 100,
		},
		Store: StoreConfig{
			Path:              storePath,
			GCIntervalMinutes: 5,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		User: UserConfig{
			ID: "student",
		},
	}
}

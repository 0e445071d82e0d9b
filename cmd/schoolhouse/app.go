// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/AleutianAI/Schoolhouse/cmd/schoolhouse/config"
	"github.com/AleutianAI/Schoolhouse/pkg/api"
	"github.com/AleutianAI/Schoolhouse/pkg/localstore"
	"github.com/AleutianAI/Schoolhouse/pkg/logging"
	"github.com/AleutianAI/Schoolhouse/pkg/ux"
)

// app bundles the wired runtime pieces every command needs: config,
// logger, the badger-backed local store, and the API client with its
// missing-content watcher.
type app struct {
	cfg    config.SchoolhouseConfig
	logger *logging.Logger
	store  *localstore.BadgerStore
	client *api.Client

	events    chan api.ErrorEvent
	watchDone chan struct{}
}

// newApp loads the config and wires the client stack. Callers must
// Close the returned app.
func newApp() (*app, error) {
	if err := config.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := config.Global

	logger := logging.New(logging.Config{
		Level:   parseLevel(cfg.Logging.Level),
		LogDir:  cfg.Logging.Dir,
		Service: "cli",
		Quiet:   cfg.Logging.Dir != "", // stderr stays clean when a file takes the logs
	})

	storeCfg := localstore.DefaultBadgerConfig(cfg.Store.Path)
	storeCfg.GCInterval = time.Duration(cfg.Store.GCIntervalMinutes) * time.Minute
	storeCfg.Logger = logger.Slog()
	store, err := localstore.OpenBadger(storeCfg)
	if err != nil {
		logger.Close()
		return nil, fmt.Errorf("open local store: %w", err)
	}

	client := api.New(api.Options{
		BaseURL:           api.ResolveBaseURL(cfg.API.BaseURL),
		Store:             store,
		Logger:            logger.Slog(),
		RequestsPerMinute: cfg.API.RequestsPerMinute,
	})

	a := &app{
		cfg:       cfg,
		logger:    logger,
		store:     store,
		client:    client,
		watchDone: make(chan struct{}),
	}
	a.events = client.Events().Subscribe()
	go a.watchEvents()
	return a, nil
}

// watchEvents surfaces missing-content events as warnings so users
// learn when the server lost something the client papered over. Each
// event is also queued as a notification so it survives the session and
// shows up under `schoolhouse notifications`.
func (a *app) watchEvents() {
	defer close(a.watchDone)
	for ev := range a.events {
		ux.Warning(fmt.Sprintf("server has no record for %s: %s", ev.Endpoint, ev.Message))
		_, err := a.client.PushNotification(context.Background(), api.PushNotificationParams{
			UserID:  a.userID(),
			Kind:    "missing-content",
			Message: fmt.Sprintf("server has no record for %s: %s", ev.Endpoint, ev.Message),
		})
		if err != nil {
			a.logger.Warn("queueing missing-content notification", "error", err)
		}
	}
}

// Close releases the store, the event subscription, and the log file.
func (a *app) Close() {
	a.client.Events().Unsubscribe(a.events)
	<-a.watchDone
	if err := a.store.Close(); err != nil {
		a.logger.Warn("closing local store", "error", err)
	}
	a.logger.Close()
}

// userID resolves the acting user: --user flag first, then the config.
func (a *app) userID() string {
	if userID != "" {
		return userID
	}
	return a.cfg.User.ID
}

// subject resolves an optional subject from a flag value, falling back
// to the config default. Returns nil when neither is set.
func (a *app) subject(flagValue string) *api.Subject {
	v := flagValue
	if v == "" {
		v = a.cfg.User.DefaultSubject
	}
	if v == "" {
		return nil
	}
	s := api.Subject(strings.ToLower(v))
	return &s
}

func parseLevel(s string) logging.Level {
	switch strings.ToLower(s) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

// fail prints the error and exits non-zero. Use only from Run funcs.
func fail(context string, err error) {
	ux.Error(fmt.Sprintf("%s: %v", context, err))
	os.Exit(1)
}
